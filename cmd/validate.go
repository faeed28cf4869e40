package cmd

import (
	"fmt"
	"os"

	"github.com/kumolabai/specsync/pkg/openapi"
	"github.com/spf13/cobra"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a generated document as OpenAPI 3.x",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(validateFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", validateFile, err)
		}

		if err := openapi.Validate(data); err != nil {
			return err
		}

		doc, err := openapi.Load(data)
		if err != nil {
			return err
		}
		section, err := doc.XMCP()
		if err != nil {
			return err
		}

		fmt.Printf("%s is a valid OpenAPI document\n", validateFile)
		fmt.Printf("  x-mcp: %d tools, %d prompts, %d resources\n",
			len(section.Tools), len(section.Prompts), len(section.Resources))

		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "openapi-file", "f", "openapi.yaml", "OpenAPI document to validate")
	rootCmd.AddCommand(validateCmd)
}
