package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List tools recorded in the document",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, err := loadXMCP()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Name", "Description", "Tags"})
		for i, tool := range section.Tools {
			t.AppendRow(table.Row{
				i + 1, tool.Name, tool.Description, strings.Join(tool.Tags, ", "),
			})
			t.AppendSeparator()
		}
		t.Render()

		return nil
	},
}

func init() {
	listCmd.AddCommand(listToolsCmd)
}
