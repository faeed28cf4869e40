package openapi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is an OpenAPI document treated as a loose mapping. Keys this
// tool does not own (paths, components, info, ...) round-trip untouched;
// only servers and the x-mcp section are ever modified.
type Document struct {
	root map[string]any
}

// Scaffold builds the minimal skeleton used when no document exists yet.
func Scaffold() *Document {
	return &Document{root: map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "MCP Server API",
			"description": "Generated from a Model Context Protocol server",
			"version":     "0.1.0",
		},
		"paths": map[string]any{},
	}}
}

// LoadFile reads and parses an existing document.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Load(data)
}

// Load parses a document from YAML.
func Load(data []byte) (*Document, error) {
	root := map[string]any{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// Save serializes the document and overwrites path in full.
func (d *Document) Save(path string) error {
	data, err := yaml.Marshal(d.root)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Marshal returns the serialized document.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d.root)
}

// EnsureServer appends url to the servers list unless an entry with
// that exact url is already present.
func (d *Document) EnsureServer(url string) {
	servers, _ := d.root["servers"].([]any)
	for _, s := range servers {
		if entry, ok := s.(map[string]any); ok {
			if entry["url"] == url {
				return
			}
		}
	}
	d.root["servers"] = append(servers, map[string]any{"url": url})
}

// XMCP decodes the x-mcp section, returning the zero value if the key
// is absent.
func (d *Document) XMCP() (XMCP, error) {
	var section XMCP
	raw, ok := d.root[ExtensionKey]
	if !ok {
		return section, nil
	}
	// Round-trip through YAML to decode the loose value into the typed
	// section regardless of whether it came from Load or a prior Apply.
	data, err := yaml.Marshal(raw)
	if err != nil {
		return section, fmt.Errorf("failed to read %s section: %w", ExtensionKey, err)
	}
	if err := yaml.Unmarshal(data, &section); err != nil {
		return section, fmt.Errorf("failed to read %s section: %w", ExtensionKey, err)
	}
	return section, nil
}

// Apply merges freshly fetched capabilities into the document.
//
// The capabilities object is machine-owned and overwritten
// unconditionally. Each collection is merged against the prior document
// and stored only when the merge produced records: an empty fetch for a
// kind leaves the prior value for that key untouched, so a transient
// server hiccup cannot wipe curated annotations. With prune set, an
// empty fetch clears the key instead.
func (d *Document) Apply(caps any, tools []ToolDescriptor, prompts []PromptDescriptor, resources []ResourceDescriptor, prune bool) error {
	prior, err := d.XMCP()
	if err != nil {
		return err
	}

	section := XMCP{Capabilities: caps}

	if merged := MergeTools(tools, prior.Tools); len(merged) > 0 || prune {
		section.Tools = merged
	} else {
		section.Tools = prior.Tools
	}
	if merged := MergePrompts(prompts, prior.Prompts); len(merged) > 0 || prune {
		section.Prompts = merged
	} else {
		section.Prompts = prior.Prompts
	}
	if merged := MergeResources(resources, prior.Resources); len(merged) > 0 || prune {
		section.Resources = merged
	} else {
		section.Resources = prior.Resources
	}

	d.root[ExtensionKey] = section
	return nil
}
