package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/drizzlegen/utils"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "drizzlegen.yaml"

// Environment variables that override the configuration file.
const (
	EnvDMMF     = "DRIZZLEGEN_DMMF"
	EnvSchema   = "DRIZZLEGEN_SCHEMA"
	EnvOutput   = "DRIZZLEGEN_OUTPUT"
	EnvProvider = "DRIZZLEGEN_PROVIDER"
	EnvStrict   = "DRIZZLEGEN_STRICT"
)

type Config struct {
	// DMMF is the path of the DMMF document (JSON or YAML).
	DMMF string `yaml:"dmmf"`
	// Schema is the .prisma file used to resolve @db.* attributes. Empty disables the lookup.
	Schema string `yaml:"schema"`
	// Output is the path of the generated TypeScript module.
	Output string `yaml:"output"`
	// Provider overrides the datasource provider of the DMMF document.
	Provider string `yaml:"provider"`
	// Strict fails generation on fields without a column mapping.
	Strict bool `yaml:"strict"`
}

func Default() Config {
	return Config{
		DMMF:   "prisma/dmmf.json",
		Schema: "prisma/schema.prisma",
		Output: "drizzle/schema.ts",
	}
}

// Load reads the configuration file at path on top of the defaults and then
// applies environment overrides (.env included). A missing default file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && path == DefaultFile:
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("unmarshalling config %s: %w", path, err)
		}
	}

	utils.LoadEnv()
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.DMMF = utils.Getenv(EnvDMMF, c.DMMF)
	c.Schema = utils.Getenv(EnvSchema, c.Schema)
	c.Output = utils.Getenv(EnvOutput, c.Output)
	c.Provider = utils.Getenv(EnvProvider, c.Provider)
	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrict, err)
		}
		c.Strict = strict
	}
	return nil
}

// Template is written by `drizzlegen init`.
const Template = `# drizzlegen configuration
# Environment variables (DRIZZLEGEN_DMMF, DRIZZLEGEN_SCHEMA, DRIZZLEGEN_OUTPUT,
# DRIZZLEGEN_PROVIDER, DRIZZLEGEN_STRICT) and command line flags override these values.

# DMMF document exported from prisma (JSON or YAML)
dmmf: prisma/dmmf.json

# Prisma schema used to read @db.* native type attributes; leave empty to skip
schema: prisma/schema.prisma

# Generated drizzle-orm module
output: drizzle/schema.ts

# Override the datasource provider: postgresql, mysql or sqlite
provider: ""

# Fail instead of dropping columns whose type has no mapping
strict: false
`
