package mcp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kumolabai/specsync/pkg/openapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Client wraps an MCP client session for one capability sync run.
type Client struct {
	session *mcp.ClientSession
}

// Snapshot is everything the server reported in one fetch pass.
type Snapshot struct {
	Capabilities any
	Tools        []openapi.ToolDescriptor
	Prompts      []openapi.PromptDescriptor
	Resources    []openapi.ResourceDescriptor
}

// Connect dials an MCP server over streamable HTTP. Extra headers are
// injected on every request the transport makes.
func Connect(ctx context.Context, serverURL string, headers http.Header) (*Client, error) {
	httpClient := &http.Client{}
	if len(headers) > 0 {
		httpClient.Transport = &headerTransport{base: http.DefaultTransport, headers: headers}
	}

	transport := &mcp.StreamableClientTransport{
		Endpoint:   serverURL,
		HTTPClient: httpClient,
	}

	return connect(ctx, transport)
}

func connect(ctx context.Context, transport mcp.Transport) (*Client, error) {
	client := mcp.NewClient(&mcp.Implementation{Name: "specsync", Version: "dev"}, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MCP server: %w", err)
	}
	return &Client{session: session}, nil
}

// Close terminates the session.
func (c *Client) Close() error {
	return c.session.Close()
}

// Snapshot fetches the capability lists the server advertises during
// initialization. Kinds the server does not advertise are skipped.
// Fetches are sequential: tools, then prompts, then resources.
func (c *Client) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	caps := c.session.InitializeResult().Capabilities
	if caps == nil {
		return snap, nil
	}

	plainCaps, err := plainValue(caps)
	if err != nil {
		return nil, fmt.Errorf("failed to convert server capabilities: %w", err)
	}
	snap.Capabilities = plainCaps

	if caps.Tools != nil {
		if snap.Tools, err = c.listTools(ctx); err != nil {
			return nil, err
		}
	}
	if caps.Prompts != nil {
		if snap.Prompts, err = c.listPrompts(ctx); err != nil {
			return nil, err
		}
	}
	if caps.Resources != nil {
		if snap.Resources, err = c.listResources(ctx); err != nil {
			return nil, err
		}
	}

	return snap, nil
}

func (c *Client) listTools(ctx context.Context) ([]openapi.ToolDescriptor, error) {
	var tools []openapi.ToolDescriptor
	var cursor string
	for {
		res, err := c.session.ListTools(ctx, &mcp.ListToolsParams{Cursor: cursor})
		if err != nil {
			return nil, fmt.Errorf("failed to list tools: %w", err)
		}
		for _, t := range res.Tools {
			d, err := toolDescriptor(t)
			if err != nil {
				return nil, err
			}
			tools = append(tools, d)
		}
		if res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return tools, nil
}

func (c *Client) listPrompts(ctx context.Context) ([]openapi.PromptDescriptor, error) {
	var prompts []openapi.PromptDescriptor
	var cursor string
	for {
		res, err := c.session.ListPrompts(ctx, &mcp.ListPromptsParams{Cursor: cursor})
		if err != nil {
			return nil, fmt.Errorf("failed to list prompts: %w", err)
		}
		for _, p := range res.Prompts {
			prompts = append(prompts, promptDescriptor(p))
		}
		if res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return prompts, nil
}

func (c *Client) listResources(ctx context.Context) ([]openapi.ResourceDescriptor, error) {
	var resources []openapi.ResourceDescriptor
	var cursor string
	for {
		res, err := c.session.ListResources(ctx, &mcp.ListResourcesParams{Cursor: cursor})
		if err != nil {
			return nil, fmt.Errorf("failed to list resources: %w", err)
		}
		for _, r := range res.Resources {
			resources = append(resources, resourceDescriptor(r))
		}
		if res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return resources, nil
}

// headerTransport injects a fixed header set on every outgoing request.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for key := range t.headers {
		req.Header.Set(key, t.headers.Get(key))
	}
	return t.base.RoundTrip(req)
}
