package generator

import (
	"github.com/ridoystarlord/drizzlegen/schema"
)

const sqliteCore = "drizzle-orm/sqlite-core"

type sqliteDialect struct{}

func (sqliteDialect) Kind() DialectKind { return SQLite }
func (sqliteDialect) Module() string    { return sqliteCore }
func (sqliteDialect) TableFunc() string { return "sqliteTable" }

func (sqliteDialect) Enum(*Imports, *schema.Enum) string { return "" }

func (sqliteDialect) Column(imp *Imports, c Column) (string, error) {
	name := c.Name()
	if c.Field.IsList {
		return "", nil
	}
	if c.Enum != nil {
		return call(imp, sqliteCore, "text", name, "enum: "+quoteAll(c.Enum.PhysicalValues())), nil
	}

	switch c.Field.Type {
	case schema.TypeInt:
		return call(imp, sqliteCore, "integer", name), nil
	case schema.TypeBigInt:
		return call(imp, sqliteCore, "blob", name, "mode: 'bigint'"), nil
	case schema.TypeBoolean:
		return call(imp, sqliteCore, "integer", name, "mode: 'boolean'"), nil
	case schema.TypeString:
		return call(imp, sqliteCore, "text", name), nil
	case schema.TypeDateTime:
		return call(imp, sqliteCore, "integer", name, "mode: 'timestamp_ms'"), nil
	case schema.TypeDecimal:
		return call(imp, sqliteCore, "numeric", name), nil
	case schema.TypeFloat:
		return call(imp, sqliteCore, "real", name), nil
	case schema.TypeJSON:
		return call(imp, sqliteCore, "text", name, "mode: 'json'"), nil
	case schema.TypeBytes:
		return call(imp, sqliteCore, "blob", name, "mode: 'buffer'"), nil
	}
	return "", nil
}

// Timestamps are stored as epoch milliseconds.
func (sqliteDialect) DefaultNow(imp *Imports, _ Column) string {
	return ".default(" + rawSQL(imp, "(cast((julianday('now') - 2440587.5) * 86400000 as integer))") + ")"
}

// INTEGER PRIMARY KEY aliases the rowid, which already auto-increments.
func (sqliteDialect) Autoincrement(Column) string { return "" }

func (sqliteDialect) UUIDExpression() string { return "(lower(hex(randomblob(16))))" }

func (sqliteDialect) UpdatedAt(*Imports) string { return ".$onUpdate(() => new Date())" }

func (sqliteDialect) SupportsSetDefault() bool { return true }
func (sqliteDialect) InlineReferences() bool   { return true }
