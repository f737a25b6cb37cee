package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/drizzlegen/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a drizzlegen.yaml configuration file",
	Long: `Create a drizzlegen.yaml file with the default input and output paths.

Examples:
  drizzlegen init                  # Write drizzlegen.yaml
  drizzlegen init -c gen.yaml      # Write a custom config file
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFile); err == nil {
			return fmt.Errorf("%s already exists", configFile)
		}
		if err := os.WriteFile(configFile, []byte(config.Template), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", configFile, err)
		}
		color.Green("✅ Created %s", configFile)
		fmt.Println("   Export your DMMF document and run 'drizzlegen generate'")
		return nil
	},
}
