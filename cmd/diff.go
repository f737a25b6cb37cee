package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/drizzlegen/diff"
)

var diffVisual bool

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show differences between the written schema and a fresh generation",
	Long: `Show differences between the schema module on disk and what generate would write.

Examples:
  drizzlegen diff                    # Show changed declarations
  drizzlegen diff --visual           # Also print old and new declaration bodies
  drizzlegen diff -o db/schema.ts    # Compare against a custom output file
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		changes, err := outputChanges(cmd)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			color.Green("✅ No differences found between generated and written schema")
			return nil
		}
		showChanges(changes, diffVisual)
		return nil
	},
}

func init() {
	addInputFlags(diffCmd)
	diffCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Generated TypeScript module to compare against")
	diffCmd.Flags().BoolVar(&diffVisual, "visual", false, "Print declaration bodies")
}

// outputChanges generates the schema and compares it with the written module.
// A missing module compares as empty.
func outputChanges(cmd *cobra.Command) ([]diff.Change, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log := newLogger()
	defer log.Sync()

	fresh, err := generate(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("generating schema: %w", err)
	}
	written, err := os.ReadFile(cfg.Output)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", cfg.Output, err)
	}
	return diff.DiffOutputs(string(written), fresh), nil
}

func showChanges(changes []diff.Change, visual bool) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)

	fmt.Println("🌳 Schema Changes")
	fmt.Println(strings.Repeat("=", 50))
	for _, c := range changes {
		switch c.Type {
		case diff.AddDeclaration:
			green.Printf("  ➕ ADD %s\n", c.Name)
			if visual {
				printBody(color.New(color.FgGreen), "+", c.New)
			}
		case diff.RemoveDeclaration:
			red.Printf("  ❌ REMOVE %s\n", c.Name)
			if visual {
				printBody(color.New(color.FgRed), "-", c.Old)
			}
		case diff.ChangeDeclaration:
			yellow.Printf("  ⚡ MODIFY %s\n", c.Name)
			if visual {
				printBody(color.New(color.FgRed), "-", c.Old)
				printBody(color.New(color.FgGreen), "+", c.New)
			}
		case diff.ChangeImports:
			yellow.Println("  ⚡ MODIFY imports")
		}
	}
}

func printBody(c *color.Color, prefix, body string) {
	for _, line := range strings.Split(body, "\n") {
		c.Printf("      %s %s\n", prefix, line)
	}
}
