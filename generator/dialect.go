package generator

import (
	"strings"

	"github.com/ridoystarlord/drizzlegen/schema"
)

type DialectKind string

const (
	Postgres DialectKind = "postgres"
	MySQL    DialectKind = "mysql"
	SQLite   DialectKind = "sqlite"
)

// Dialect holds the leaf behaviors that differ between target backends. The
// pipeline around it (many-to-many synthesis, constraints, relations,
// emission) is shared by all dialects.
type Dialect interface {
	Kind() DialectKind
	// Module is the drizzle-orm core module the column helpers come from.
	Module() string
	// TableFunc is the table constructor, e.g. pgTable.
	TableFunc() string

	// Enum returns an enum declaration, or "" when the dialect declares
	// enums inline on the column.
	Enum(imp *Imports, e *schema.Enum) string
	// Column returns the column constructor, or "" when the field type
	// has no mapping in this dialect.
	Column(imp *Imports, c Column) (string, error)

	DefaultNow(imp *Imports, c Column) string
	Autoincrement(c Column) string
	UUIDExpression() string
	UpdatedAt(imp *Imports) string

	SupportsSetDefault() bool
	// InlineReferences reports whether single-column foreign keys are
	// written as .references() on the column.
	InlineReferences() bool
}

// Column is the input of a type mapping: the field plus everything resolved
// about it before translation.
type Column struct {
	Model  *schema.Model
	Field  *schema.Field
	Native *schema.NativeType
	Enum   *schema.Enum
}

// Name returns the quoted physical column name.
func (c Column) Name() string {
	return quote(c.Field.ColumnName())
}

func (c Column) nativeName() string {
	if c.Native == nil {
		return ""
	}
	return c.Native.Name
}

func (c Column) autoincrement() bool {
	return c.Field.DefaultFunction() == "autoincrement"
}

// ResolveDialect maps a datasource provider to its dialect.
func ResolveDialect(provider string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "postgresql", "postgres", "cockroachdb":
		return postgresDialect{}, nil
	case "mysql", "mariadb":
		return mysqlDialect{}, nil
	case "sqlite":
		return sqliteDialect{}, nil
	case "":
		return nil, newError(UnknownDialect, "", "", "no datasource provider declared")
	default:
		return nil, newError(UnknownDialect, "", "", "provider %q is not supported (expected postgresql, mysql or sqlite)", provider)
	}
}

// call renders helper(name) or helper(name, { opts }).
func call(imp *Imports, module, helper, name string, opts ...string) string {
	imp.Use(module, helper)
	if len(opts) == 0 {
		return helper + "(" + name + ")"
	}
	return helper + "(" + name + ", { " + strings.Join(opts, ", ") + " })"
}

func unsupportedBinary(c Column, d Dialect) error {
	return newError(UnsupportedFeature, c.Model.Name, c.Field.Name,
		"binary columns (Bytes) are not supported by drizzle-orm for %s", d.Kind())
}
