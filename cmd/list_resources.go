package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listResourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List resources recorded in the document",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, err := loadXMCP()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Name", "URI", "Description"})
		for i, resource := range section.Resources {
			t.AppendRow(table.Row{
				i + 1, resource.Name, resource.URI, resource.Description,
			})
			t.AppendSeparator()
		}
		t.Render()

		return nil
	},
}

func init() {
	listCmd.AddCommand(listResourcesCmd)
}
