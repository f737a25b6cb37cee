package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/drizzlegen/loader"
	"github.com/ridoystarlord/drizzlegen/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the DMMF document before generation",
	Long: `Validate your DMMF document for problems that would stop or degrade generation.

This command checks:
- Datasource provider (postgresql, mysql, sqlite)
- Duplicate models, fields and enums
- Relation targets, foreign key fields and referenced fields
- onDelete actions
- Unique index and primary key fields
- Types the selected dialect cannot represent

Examples:
  drizzlegen validate                    # Validate the configured DMMF document
  drizzlegen validate -d dmmf.json       # Validate a specific document
  drizzlegen validate --format json      # Output validation results as JSON
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateDocument(cmd); err != nil {
			return fmt.Errorf("schema validation failed: %w", err)
		}
		return nil
	},
}

var validateFormat string

func init() {
	addInputFlags(validateCmd)
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
}

func validateDocument(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	doc, err := loader.LoadDocument(cfg.DMMF)
	if err != nil {
		return err
	}

	result := validator.NewSchemaValidator().ValidateDocument(doc, cfg.Provider)
	if validateFormat == "json" {
		if err := outputJSON(result); err != nil {
			return err
		}
	} else {
		outputText(result)
	}
	if !result.Valid {
		return fmt.Errorf("%d error(s) found", len(result.Errors))
	}
	return nil
}

func outputJSON(result *validator.ValidationResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *validator.ValidationResult) {
	if result.Valid {
		color.Green("✅ Schema validation passed!")
	} else {
		color.Red("❌ Schema validation failed!")
	}

	printIssues("🔴 Errors", result.Errors)
	printIssues("🟡 Warnings", result.Warnings)
	printIssues("🔵 Info", result.Info)

	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  • Errors: %d\n", len(result.Errors))
	fmt.Printf("  • Warnings: %d\n", len(result.Warnings))
	fmt.Printf("  • Info: %d\n", len(result.Info))

	if result.Valid {
		fmt.Printf("\n🎉 Your data model is ready for generation!\n")
	} else {
		fmt.Printf("\n💡 Fix the errors above before generating.\n")
	}
}

func printIssues(title string, issues []validator.ValidationError) {
	if len(issues) == 0 {
		return
	}
	fmt.Printf("\n%s (%d):\n", title, len(issues))
	for i, issue := range issues {
		fmt.Printf("  %d. ", i+1)
		if issue.Model != "" {
			fmt.Printf("[%s]", issue.Model)
		}
		if issue.Field != "" {
			fmt.Printf(".%s", issue.Field)
		}
		if issue.Index != "" {
			fmt.Printf(" (index: %s)", issue.Index)
		}
		fmt.Printf(": %s\n", issue.Message)
	}
}
