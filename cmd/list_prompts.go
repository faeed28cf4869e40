package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listPromptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List prompts recorded in the document",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, err := loadXMCP()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Name", "Description", "Arguments"})
		for i, prompt := range section.Prompts {
			names := make([]string, 0, len(prompt.Arguments))
			for _, arg := range prompt.Arguments {
				names = append(names, arg.Name)
			}
			t.AppendRow(table.Row{
				i + 1, prompt.Name, prompt.Description, strings.Join(names, ", "),
			})
			t.AppendSeparator()
		}
		t.Render()

		return nil
	},
}

func init() {
	listCmd.AddCommand(listPromptsCmd)
}
