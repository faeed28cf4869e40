package openapi

// The merge policy: records come from the fresh fetch in fetch order,
// records the server no longer reports are dropped, and for records
// present on both sides the user-curated fields (tags, security, prompt
// argument examples) are taken wholesale from the prior document while
// everything else is taken from the fresh fetch.

// MergeTools reconciles a freshly fetched tool list against the prior
// document's tool list.
func MergeTools(fresh, prior []ToolDescriptor) []ToolDescriptor {
	return mergeNamed(fresh, prior, func(d ToolDescriptor) string { return d.Name },
		func(f, p ToolDescriptor) ToolDescriptor {
			f.Tags = p.Tags
			f.Security = p.Security
			return f
		})
}

// MergePrompts reconciles prompt lists, recursing one level into each
// prompt's arguments so curated example values survive.
func MergePrompts(fresh, prior []PromptDescriptor) []PromptDescriptor {
	return mergeNamed(fresh, prior, func(d PromptDescriptor) string { return d.Name },
		func(f, p PromptDescriptor) PromptDescriptor {
			f.Arguments = MergeArguments(f.Arguments, p.Arguments)
			f.Tags = p.Tags
			f.Security = p.Security
			return f
		})
}

// MergeArguments reconciles the argument lists of a single prompt.
func MergeArguments(fresh, prior []PromptArgument) []PromptArgument {
	return mergeNamed(fresh, prior, func(d PromptArgument) string { return d.Name },
		func(f, p PromptArgument) PromptArgument {
			f.Example = p.Example
			return f
		})
}

// MergeResources reconciles resource lists.
func MergeResources(fresh, prior []ResourceDescriptor) []ResourceDescriptor {
	return mergeNamed(fresh, prior, func(d ResourceDescriptor) string { return d.Name },
		func(f, p ResourceDescriptor) ResourceDescriptor {
			f.Tags = p.Tags
			f.Security = p.Security
			return f
		})
}

// mergeNamed emits one record per fresh element, in fresh order. When a
// prior record shares the fresh record's name, overlay copies the
// curated fields from it onto a copy of the fresh record. Prior-only
// records are not emitted. If prior contains duplicate names the last
// one wins in the lookup table.
func mergeNamed[D any](fresh, prior []D, name func(D) string, overlay func(fresh, prior D) D) []D {
	if len(fresh) == 0 {
		return nil
	}

	byName := make(map[string]D, len(prior))
	for _, p := range prior {
		byName[name(p)] = p
	}

	out := make([]D, 0, len(fresh))
	for _, f := range fresh {
		if p, ok := byName[name(f)]; ok {
			f = overlay(f, p)
		}
		out = append(out, f)
	}
	return out
}
