package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/drizzlegen/generator"
)

var (
	dryRunGenerate bool
	watchGenerate  bool
)

func init() {
	addInputFlags(generateCmd)
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Generated TypeScript module")
	generateCmd.Flags().BoolVar(&strictFlag, "strict", false, "Fail on fields whose type has no column mapping")
	generateCmd.Flags().BoolVar(&dryRunGenerate, "dry-run", false, "Print the generated schema without writing files")
	generateCmd.Flags().BoolVarP(&watchGenerate, "watch", "w", false, "Regenerate whenever the DMMF document or prisma schema changes")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a drizzle-orm schema from the DMMF document",
	Long: `Generate a drizzle-orm schema module from a Prisma DMMF document.

The dialect follows the datasource provider of the document unless --provider is set.
Nothing is written when generation fails.

Examples:
  drizzlegen generate                              # Use drizzlegen.yaml
  drizzlegen generate -d dmmf.json -o db/schema.ts # Explicit paths
  drizzlegen generate --provider sqlite --dry-run  # Preview the sqlite schema
  drizzlegen generate --watch                      # Regenerate on every change
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger()
		defer log.Sync()

		if watchGenerate {
			if dryRunGenerate {
				return fmt.Errorf("--watch cannot be combined with --dry-run")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch(ctx, cfg, log)
		}

		out, err := generate(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("generating schema: %w", err)
		}

		if dryRunGenerate {
			fmt.Println("================ DRY RUN: Schema Preview ================")
			fmt.Print(out)
			fmt.Println("=========================================================")
			fmt.Println("(Dry run only. No files were written.)")
			return nil
		}

		if err := generator.WriteOutput(cfg.Output, out); err != nil {
			return err
		}
		color.Green("✅ Schema generated: %s", cfg.Output)
		return nil
	},
}
