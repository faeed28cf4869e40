package openapi

import (
	"reflect"
	"testing"
)

func TestMergeTools(t *testing.T) {
	tests := []struct {
		name     string
		fresh    []ToolDescriptor
		prior    []ToolDescriptor
		expected []ToolDescriptor
	}{
		{
			name:     "no prior document passes fresh through",
			fresh:    []ToolDescriptor{{Name: "t1", Description: "d1"}},
			prior:    nil,
			expected: []ToolDescriptor{{Name: "t1", Description: "d1"}},
		},
		{
			name:  "curated fields preserved, machine fields refreshed",
			fresh: []ToolDescriptor{{Name: "t1", Description: "d2"}},
			prior: []ToolDescriptor{{Name: "t1", Description: "d1", Tags: []string{"x"}}},
			expected: []ToolDescriptor{
				{Name: "t1", Description: "d2", Tags: []string{"x"}},
			},
		},
		{
			name:  "curated fields absent in prior stay absent",
			fresh: []ToolDescriptor{{Name: "t1", Description: "d2", Tags: []string{"fresh"}}},
			prior: []ToolDescriptor{{Name: "t1", Description: "d1"}},
			expected: []ToolDescriptor{
				{Name: "t1", Description: "d2"},
			},
		},
		{
			name:  "security taken wholesale from prior",
			fresh: []ToolDescriptor{{Name: "t1"}},
			prior: []ToolDescriptor{{Name: "t1", Security: []any{map[string]any{"apiKey": []any{}}}}},
			expected: []ToolDescriptor{
				{Name: "t1", Security: []any{map[string]any{"apiKey": []any{}}}},
			},
		},
		{
			name: "stale prior records dropped",
			fresh: []ToolDescriptor{
				{Name: "t2", Description: "new"},
			},
			prior: []ToolDescriptor{
				{Name: "t1", Description: "gone", Tags: []string{"keep?"}},
				{Name: "t2", Description: "old"},
			},
			expected: []ToolDescriptor{
				{Name: "t2", Description: "new"},
			},
		},
		{
			name: "fresh order preserved",
			fresh: []ToolDescriptor{
				{Name: "c"}, {Name: "a"}, {Name: "b"},
			},
			prior: []ToolDescriptor{
				{Name: "a", Tags: []string{"a"}}, {Name: "b", Tags: []string{"b"}},
			},
			expected: []ToolDescriptor{
				{Name: "c"}, {Name: "a", Tags: []string{"a"}}, {Name: "b", Tags: []string{"b"}},
			},
		},
		{
			name:     "empty fresh yields empty output",
			fresh:    nil,
			prior:    []ToolDescriptor{{Name: "t1"}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MergeTools(tt.fresh, tt.prior)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("MergeTools() = %+v, expected %+v", result, tt.expected)
			}
		})
	}
}

func TestMergeToolsIdempotent(t *testing.T) {
	fresh := []ToolDescriptor{
		{Name: "t1", Description: "d1"},
		{Name: "t2", Description: "d2"},
	}
	prior := []ToolDescriptor{
		{Name: "t1", Description: "old", Tags: []string{"x"}, Security: "none"},
		{Name: "t3", Description: "stale"},
	}

	first := MergeTools(fresh, prior)
	second := MergeTools(fresh, first)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("merge is not a fixed point: first %+v, second %+v", first, second)
	}
}

func TestMergePrompts(t *testing.T) {
	tests := []struct {
		name     string
		fresh    []PromptDescriptor
		prior    []PromptDescriptor
		expected []PromptDescriptor
	}{
		{
			name: "argument examples preserved through recursion",
			fresh: []PromptDescriptor{
				{Name: "p1", Arguments: []PromptArgument{{Name: "a1", Description: "new"}}},
			},
			prior: []PromptDescriptor{
				{Name: "p1", Arguments: []PromptArgument{{Name: "a1", Description: "old", Example: "42"}}},
			},
			expected: []PromptDescriptor{
				{Name: "p1", Arguments: []PromptArgument{{Name: "a1", Description: "new", Example: "42"}}},
			},
		},
		{
			name: "arguments added and removed follow the fresh fetch",
			fresh: []PromptDescriptor{
				{Name: "p1", Arguments: []PromptArgument{
					{Name: "a2", Required: true},
					{Name: "a3"},
				}},
			},
			prior: []PromptDescriptor{
				{Name: "p1", Tags: []string{"curated"}, Arguments: []PromptArgument{
					{Name: "a1", Example: "dropped with its argument"},
					{Name: "a2", Example: "kept"},
				}},
			},
			expected: []PromptDescriptor{
				{Name: "p1", Tags: []string{"curated"}, Arguments: []PromptArgument{
					{Name: "a2", Required: true, Example: "kept"},
					{Name: "a3"},
				}},
			},
		},
		{
			name: "prompt absent from prior passes through untouched",
			fresh: []PromptDescriptor{
				{Name: "p2", Arguments: []PromptArgument{{Name: "a1"}}},
			},
			prior: []PromptDescriptor{
				{Name: "p1", Arguments: []PromptArgument{{Name: "a1", Example: "other prompt"}}},
			},
			expected: []PromptDescriptor{
				{Name: "p2", Arguments: []PromptArgument{{Name: "a1"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MergePrompts(tt.fresh, tt.prior)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("MergePrompts() = %+v, expected %+v", result, tt.expected)
			}
		})
	}
}

func TestMergeResources(t *testing.T) {
	fresh := []ResourceDescriptor{
		{Name: "r1", URI: "file:///new", Description: "fresh"},
		{Name: "r2", URI: "file:///added"},
	}
	prior := []ResourceDescriptor{
		{Name: "r1", URI: "file:///old", Description: "stale", Tags: []string{"docs"}},
	}
	expected := []ResourceDescriptor{
		{Name: "r1", URI: "file:///new", Description: "fresh", Tags: []string{"docs"}},
		{Name: "r2", URI: "file:///added"},
	}

	result := MergeResources(fresh, prior)
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("MergeResources() = %+v, expected %+v", result, expected)
	}
}

func TestMergeArguments(t *testing.T) {
	fresh := []PromptArgument{{Name: "a1", Required: true}}
	prior := []PromptArgument{{Name: "a1", Example: map[string]any{"nested": "value"}}}
	expected := []PromptArgument{{Name: "a1", Required: true, Example: map[string]any{"nested": "value"}}}

	result := MergeArguments(fresh, prior)
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("MergeArguments() = %+v, expected %+v", result, expected)
	}
}
