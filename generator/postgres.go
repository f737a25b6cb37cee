package generator

import (
	"github.com/ridoystarlord/drizzlegen/schema"
)

const pgCore = "drizzle-orm/pg-core"

type postgresDialect struct{}

func (postgresDialect) Kind() DialectKind { return Postgres }
func (postgresDialect) Module() string    { return pgCore }
func (postgresDialect) TableFunc() string { return "pgTable" }

func (postgresDialect) Enum(imp *Imports, e *schema.Enum) string {
	imp.Use(pgCore, "pgEnum")
	return "export const " + e.Name + " = pgEnum(" + quote(e.TypeName()) + ", " + quoteAll(e.PhysicalValues()) + ");"
}

func (d postgresDialect) Column(imp *Imports, c Column) (string, error) {
	text, err := d.column(imp, c)
	if err != nil || text == "" {
		return "", err
	}
	if c.Field.IsList {
		text += ".array()"
	}
	return text, nil
}

func (d postgresDialect) column(imp *Imports, c Column) (string, error) {
	name := c.Name()
	if c.Enum != nil {
		return c.Enum.Name + "(" + name + ")", nil
	}

	native := c.nativeName()
	switch c.Field.Type {
	case schema.TypeInt:
		switch {
		case native == "SmallInt" && c.autoincrement():
			return call(imp, pgCore, "smallserial", name), nil
		case native == "SmallInt":
			return call(imp, pgCore, "smallint", name), nil
		case c.autoincrement():
			return call(imp, pgCore, "serial", name), nil
		}
		return call(imp, pgCore, "integer", name), nil

	case schema.TypeBigInt:
		if c.autoincrement() {
			return call(imp, pgCore, "bigserial", name, "mode: 'bigint'"), nil
		}
		return call(imp, pgCore, "bigint", name, "mode: 'bigint'"), nil

	case schema.TypeBoolean:
		return call(imp, pgCore, "boolean", name), nil

	case schema.TypeString:
		switch native {
		case "VarChar":
			if n := c.Native.Arg(0); n != "" {
				return call(imp, pgCore, "varchar", name, "length: "+n), nil
			}
			return call(imp, pgCore, "varchar", name), nil
		case "Char":
			if n := c.Native.Arg(0); n != "" {
				return call(imp, pgCore, "char", name, "length: "+n), nil
			}
			return call(imp, pgCore, "char", name), nil
		case "Uuid":
			return call(imp, pgCore, "uuid", name), nil
		case "Inet":
			return call(imp, pgCore, "inet", name), nil
		}
		return call(imp, pgCore, "text", name), nil

	case schema.TypeDateTime:
		precision := "3"
		if p := c.Native.Arg(0); p != "" {
			precision = p
		}
		switch native {
		case "Date":
			return call(imp, pgCore, "date", name, "mode: 'date'"), nil
		case "Time":
			return call(imp, pgCore, "time", name, "precision: "+precision), nil
		case "Timetz":
			return call(imp, pgCore, "time", name, "precision: "+precision, "withTimezone: true"), nil
		case "Timestamptz":
			return call(imp, pgCore, "timestamp", name, "precision: "+precision, "withTimezone: true"), nil
		}
		return call(imp, pgCore, "timestamp", name, "precision: "+precision), nil

	case schema.TypeDecimal:
		precision, scale := "65", "30"
		if native == "Decimal" && c.Native.Arg(0) != "" {
			precision, scale = c.Native.Arg(0), c.Native.Arg(1)
			if scale == "" {
				scale = "0"
			}
		}
		return call(imp, pgCore, "decimal", name, "precision: "+precision, "scale: "+scale), nil

	case schema.TypeFloat:
		if native == "Real" {
			return call(imp, pgCore, "real", name), nil
		}
		return call(imp, pgCore, "doublePrecision", name), nil

	case schema.TypeJSON:
		if native == "Json" {
			return call(imp, pgCore, "json", name), nil
		}
		return call(imp, pgCore, "jsonb", name), nil

	case schema.TypeBytes:
		return "", unsupportedBinary(c, d)
	}
	return "", nil
}

func (postgresDialect) DefaultNow(*Imports, Column) string { return ".defaultNow()" }

// serial types carry the sequence, no modifier is needed.
func (postgresDialect) Autoincrement(Column) string { return "" }

func (postgresDialect) UUIDExpression() string { return "gen_random_uuid()" }

func (postgresDialect) UpdatedAt(*Imports) string { return ".$onUpdate(() => new Date())" }

func (postgresDialect) SupportsSetDefault() bool { return true }
func (postgresDialect) InlineReferences() bool   { return true }
