package openapi

// ExtensionKey is the vendor extension under which MCP capability
// metadata is stored in the OpenAPI document.
const ExtensionKey = "x-mcp"

// XMCP is the typed shape of the x-mcp vendor extension section.
type XMCP struct {
	Capabilities any                  `yaml:"capabilities,omitempty"`
	Tools        []ToolDescriptor     `yaml:"tools,omitempty"`
	Prompts      []PromptDescriptor   `yaml:"prompts,omitempty"`
	Resources    []ResourceDescriptor `yaml:"resources,omitempty"`
}

// ToolDescriptor describes one MCP tool. Name, description and the
// schemas are owned by the server; tags and security are user-curated
// and survive re-synchronization.
type ToolDescriptor struct {
	Name         string   `yaml:"name"`
	Title        string   `yaml:"title,omitempty"`
	Description  string   `yaml:"description,omitempty"`
	InputSchema  any      `yaml:"inputSchema,omitempty"`
	OutputSchema any      `yaml:"outputSchema,omitempty"`
	Annotations  any      `yaml:"annotations,omitempty"`
	Tags         []string `yaml:"tags,omitempty"`
	Security     any      `yaml:"security,omitempty"`
}

// PromptDescriptor describes one MCP prompt template.
type PromptDescriptor struct {
	Name        string           `yaml:"name"`
	Title       string           `yaml:"title,omitempty"`
	Description string           `yaml:"description,omitempty"`
	Arguments   []PromptArgument `yaml:"arguments,omitempty"`
	Tags        []string         `yaml:"tags,omitempty"`
	Security    any              `yaml:"security,omitempty"`
}

// PromptArgument describes one argument of a prompt. Example is
// user-curated.
type PromptArgument struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Example     any    `yaml:"example,omitempty"`
}

// ResourceDescriptor describes one MCP resource.
type ResourceDescriptor struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title,omitempty"`
	URI         string   `yaml:"uri"`
	Description string   `yaml:"description,omitempty"`
	MIMEType    string   `yaml:"mimeType,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Security    any      `yaml:"security,omitempty"`
}
