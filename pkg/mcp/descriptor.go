package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/kumolabai/specsync/pkg/openapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// plainValue flattens an SDK struct (schemas, annotations, capability
// sets) into plain maps and scalars so the YAML document carries no
// SDK-specific types.
func plainValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, err
	}
	return plain, nil
}

func toolDescriptor(t *mcp.Tool) (openapi.ToolDescriptor, error) {
	d := openapi.ToolDescriptor{
		Name:        t.Name,
		Title:       t.Title,
		Description: t.Description,
	}

	var err error
	if t.InputSchema != nil {
		if d.InputSchema, err = plainValue(t.InputSchema); err != nil {
			return d, fmt.Errorf("failed to convert input schema for tool %s: %w", t.Name, err)
		}
	}
	if t.OutputSchema != nil {
		if d.OutputSchema, err = plainValue(t.OutputSchema); err != nil {
			return d, fmt.Errorf("failed to convert output schema for tool %s: %w", t.Name, err)
		}
	}
	if t.Annotations != nil {
		if d.Annotations, err = plainValue(t.Annotations); err != nil {
			return d, fmt.Errorf("failed to convert annotations for tool %s: %w", t.Name, err)
		}
	}

	return d, nil
}

func promptDescriptor(p *mcp.Prompt) openapi.PromptDescriptor {
	d := openapi.PromptDescriptor{
		Name:        p.Name,
		Title:       p.Title,
		Description: p.Description,
	}
	for _, arg := range p.Arguments {
		d.Arguments = append(d.Arguments, openapi.PromptArgument{
			Name:        arg.Name,
			Title:       arg.Title,
			Description: arg.Description,
			Required:    arg.Required,
		})
	}
	return d
}

func resourceDescriptor(r *mcp.Resource) openapi.ResourceDescriptor {
	return openapi.ResourceDescriptor{
		Name:        r.Name,
		Title:       r.Title,
		URI:         r.URI,
		Description: r.Description,
		MIMEType:    r.MIMEType,
	}
}
