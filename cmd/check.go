package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when the written schema is out of date",
	Long: `Check that the schema module on disk matches the DMMF document.

This command will:
- Generate the schema in memory
- Compare it with the configured output file
- Exit with a non-zero status when they differ

Examples:
  drizzlegen check                 # Check the configured output
  drizzlegen check -o db/schema.ts # Check a custom output file
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		changes, err := outputChanges(cmd)
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if len(changes) > 0 {
			showChanges(changes, false)
			return fmt.Errorf("schema is out of date (%d change(s)); run 'drizzlegen generate'", len(changes))
		}
		fmt.Println("✅ Schema check completed successfully")
		return nil
	},
}

func init() {
	addInputFlags(checkCmd)
	checkCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Generated TypeScript module to check")
}
