package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kumolabai/specsync/pkg/mcp"
	"github.com/kumolabai/specsync/pkg/openapi"
	"github.com/spf13/cobra"
)

var (
	openapiFile string
	serverURL   string
	headerFlags []string
	prune       bool
)

var rootCmd = &cobra.Command{
	Use:   "specsync",
	Short: "Sync MCP server capabilities into an OpenAPI document",
	Long: `specsync connects to a running MCP server, enumerates the tools,
prompts and resources it exposes, and merges them into an OpenAPI document
under the x-mcp vendor extension. User-curated fields (tags, security,
prompt argument examples) in the existing document survive re-runs.`,
	Example: `  specsync --server-url http://localhost:3000/mcp
  specsync -s http://localhost:3000/mcp -f api/openapi.yaml -H "Authorization: Bearer token"`,
	Version: version,
	RunE:    runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := mcp.Connect(ctx, serverURL, parseHeaders(headerFlags))
	if err != nil {
		return err
	}
	defer client.Close()

	// Some servers finish registering capabilities shortly after the
	// handshake; give them a beat before listing.
	time.Sleep(time.Second)

	snap, err := client.Snapshot(ctx)
	if err != nil {
		return err
	}

	var doc *openapi.Document
	created := false
	if _, err := os.Stat(openapiFile); os.IsNotExist(err) {
		doc = openapi.Scaffold()
		created = true
	} else if doc, err = openapi.LoadFile(openapiFile); err != nil {
		return err
	}

	doc.EnsureServer(serverURL)
	if err := doc.Apply(snap.Capabilities, snap.Tools, snap.Prompts, snap.Resources, prune); err != nil {
		return err
	}

	if err := doc.Save(openapiFile); err != nil {
		return err
	}

	if created {
		fmt.Printf("Created %s\n", openapiFile)
		fmt.Println("Warning: the document was scaffolded with placeholder info, please add more information")
	} else {
		fmt.Printf("Updated %s\n", openapiFile)
	}

	return nil
}

// parseHeaders splits each entry on the first ": " separator. Entries
// without one contribute nothing.
func parseHeaders(headerStrings []string) http.Header {
	headers := make(http.Header)
	for _, h := range headerStrings {
		key, value, found := strings.Cut(h, ": ")
		if !found || key == "" {
			continue
		}
		headers.Add(key, value)
	}
	return headers
}

func init() {
	rootCmd.Flags().StringVarP(&openapiFile, "openapi-file", "f", "openapi.yaml", "OpenAPI document to create or update")
	rootCmd.Flags().StringVarP(&serverURL, "server-url", "s", "", "MCP server endpoint URL (required)")
	rootCmd.Flags().StringArrayVarP(&headerFlags, "header", "H", []string{}, "extra HTTP header in the form \"Key: Value\" (repeatable)")
	rootCmd.Flags().BoolVar(&prune, "prune", false, "clear x-mcp collections the server no longer reports any entries for")
	_ = rootCmd.MarkFlagRequired("server-url")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
