package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/drizzlegen/docs"
	"github.com/ridoystarlord/drizzlegen/generator"
	"github.com/ridoystarlord/drizzlegen/loader"
)

var (
	docsFormat string
	docsOutput string
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate an ERD from the data model",
	Long: `Generate ERD diagrams from your DMMF document. Implicit many-to-many
relations are shown through their join tables, as they are generated.

Supported formats:
  - mermaid: Mermaid ERD diagram
  - plantuml: PlantUML ERD diagram
  - all: both, written into the --output directory

Examples:
  drizzlegen docs --format mermaid --output erd.md
  drizzlegen docs --format plantuml --output erd.puml
  drizzlegen docs --format all --output docs/
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		doc, err := loader.LoadDocument(cfg.DMMF)
		if err != nil {
			return err
		}
		if len(doc.Datamodel.Models) == 0 {
			return fmt.Errorf("no models found in %s", cfg.DMMF)
		}
		models, err := generator.SynthesizeManyToMany(doc.Datamodel.Models)
		if err != nil {
			return err
		}

		switch docsFormat {
		case "mermaid":
			return writeDoc(docsOutputOr("erd.md"), docs.Mermaid(models))
		case "plantuml":
			return writeDoc(docsOutputOr("erd.puml"), docs.PlantUML(models))
		case "all":
			dir := docsOutputOr("docs")
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			if err := writeDoc(filepath.Join(dir, "erd.md"), docs.Mermaid(models)); err != nil {
				return err
			}
			return writeDoc(filepath.Join(dir, "erd.puml"), docs.PlantUML(models))
		default:
			return fmt.Errorf("unsupported format: %s (supported: mermaid, plantuml, all)", docsFormat)
		}
	},
}

func init() {
	docsCmd.Flags().StringVarP(&dmmfFile, "dmmf", "d", "", "DMMF document (JSON or YAML)")
	docsCmd.Flags().StringVarP(&docsFormat, "format", "f", "mermaid", "Output format (mermaid, plantuml, all)")
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Output file, or directory for --format all")
}

func docsOutputOr(fallback string) string {
	if docsOutput != "" {
		return docsOutput
	}
	return fallback
}

func writeDoc(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	color.Green("✅ ERD saved to: %s", path)
	return nil
}
