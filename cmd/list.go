package cmd

import (
	"github.com/kumolabai/specsync/pkg/openapi"
	"github.com/spf13/cobra"
)

var listFile string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List MCP capabilities recorded in a document",
}

// loadXMCP reads the x-mcp section of the document named by --openapi-file.
func loadXMCP() (openapi.XMCP, error) {
	doc, err := openapi.LoadFile(listFile)
	if err != nil {
		return openapi.XMCP{}, err
	}
	return doc.XMCP()
}

func init() {
	listCmd.PersistentFlags().StringVarP(&listFile, "openapi-file", "f", "openapi.yaml", "OpenAPI document to read")
	rootCmd.AddCommand(listCmd)
}
