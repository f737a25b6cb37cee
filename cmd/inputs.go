package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ridoystarlord/drizzlegen/config"
	"github.com/ridoystarlord/drizzlegen/generator"
	"github.com/ridoystarlord/drizzlegen/loader"
	"github.com/ridoystarlord/drizzlegen/schema"
)

var (
	dmmfFile     string
	prismaFile   string
	outputFile   string
	providerFlag string
	strictFlag   bool
)

// addInputFlags registers the flags shared by commands that read a data model.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&dmmfFile, "dmmf", "d", "", "DMMF document (JSON or YAML)")
	cmd.Flags().StringVarP(&prismaFile, "schema", "s", "", "Prisma schema used for @db.* attributes")
	cmd.Flags().StringVarP(&providerFlag, "provider", "p", "", "Override datasource provider (postgresql, mysql, sqlite)")
}

// loadConfig merges the config file, the environment and the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("dmmf") {
		cfg.DMMF = dmmfFile
	}
	if flags.Changed("schema") {
		cfg.Schema = prismaFile
	}
	if flags.Changed("output") {
		cfg.Output = outputFile
	}
	if flags.Changed("provider") {
		cfg.Provider = providerFlag
	}
	if flags.Changed("strict") {
		cfg.Strict = strictFlag
	}
	return cfg, nil
}

// loadInputs reads the DMMF document and, when configured, the prisma schema.
// Both files are read concurrently.
func loadInputs(ctx context.Context, cfg config.Config) (*schema.Document, generator.NativeTypeSource, error) {
	var (
		doc *schema.Document
		src *loader.PrismaSource
	)
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if doc, err = loader.LoadDocument(cfg.DMMF); err != nil {
			return fmt.Errorf("loading dmmf: %w", err)
		}
		return nil
	})
	if cfg.Schema != "" {
		eg.Go(func() error {
			var err error
			if src, err = loader.LoadPrismaSource(cfg.Schema); err != nil {
				return fmt.Errorf("loading prisma schema: %w", err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	if src == nil {
		return doc, nil, nil
	}
	return doc, src, nil
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func generate(ctx context.Context, cfg config.Config, log *zap.Logger) (string, error) {
	doc, src, err := loadInputs(ctx, cfg)
	if err != nil {
		return "", err
	}
	return generator.Generate(doc, src, generator.Options{
		Provider: cfg.Provider,
		Strict:   cfg.Strict,
		Logger:   log,
	})
}
