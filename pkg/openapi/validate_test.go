package openapi

import (
	"testing"
)

func TestValidateScaffoldOutput(t *testing.T) {
	doc := Scaffold()
	doc.EnsureServer("http://localhost:3000/mcp")
	if err := doc.Apply(map[string]any{"tools": map[string]any{}},
		[]ToolDescriptor{{Name: "echo", Description: "Echo text back"}}, nil, nil, false); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := Validate(data); err != nil {
		t.Errorf("scaffolded document failed validation: %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if err := Validate([]byte("not: an openapi document")); err == nil {
		t.Error("expected validation to fail")
	}
}
