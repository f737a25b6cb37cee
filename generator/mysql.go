package generator

import (
	"github.com/ridoystarlord/drizzlegen/schema"
)

const mysqlCore = "drizzle-orm/mysql-core"

type mysqlDialect struct{}

func (mysqlDialect) Kind() DialectKind { return MySQL }
func (mysqlDialect) Module() string    { return mysqlCore }
func (mysqlDialect) TableFunc() string { return "mysqlTable" }

// MySQL enums are declared on the column.
func (mysqlDialect) Enum(*Imports, *schema.Enum) string { return "" }

func (d mysqlDialect) Column(imp *Imports, c Column) (string, error) {
	name := c.Name()
	if c.Field.IsList {
		return "", nil
	}
	if c.Enum != nil {
		imp.Use(mysqlCore, "mysqlEnum")
		return "mysqlEnum(" + name + ", " + quoteAll(c.Enum.PhysicalValues()) + ")", nil
	}

	native := c.nativeName()
	switch c.Field.Type {
	case schema.TypeInt:
		switch native {
		case "TinyInt":
			return call(imp, mysqlCore, "tinyint", name), nil
		case "SmallInt":
			return call(imp, mysqlCore, "smallint", name), nil
		case "MediumInt":
			return call(imp, mysqlCore, "mediumint", name), nil
		case "UnsignedInt":
			return call(imp, mysqlCore, "int", name, "unsigned: true"), nil
		}
		return call(imp, mysqlCore, "int", name), nil

	case schema.TypeBigInt:
		if native == "UnsignedBigInt" {
			return call(imp, mysqlCore, "bigint", name, "mode: 'bigint'", "unsigned: true"), nil
		}
		return call(imp, mysqlCore, "bigint", name, "mode: 'bigint'"), nil

	case schema.TypeBoolean:
		return call(imp, mysqlCore, "boolean", name), nil

	case schema.TypeString:
		switch native {
		case "Text":
			return call(imp, mysqlCore, "text", name), nil
		case "TinyText":
			return call(imp, mysqlCore, "tinytext", name), nil
		case "MediumText":
			return call(imp, mysqlCore, "mediumtext", name), nil
		case "LongText":
			return call(imp, mysqlCore, "longtext", name), nil
		case "Char":
			length := c.Native.Arg(0)
			if length == "" {
				length = "1"
			}
			return call(imp, mysqlCore, "char", name, "length: "+length), nil
		case "VarChar":
			if n := c.Native.Arg(0); n != "" {
				return call(imp, mysqlCore, "varchar", name, "length: "+n), nil
			}
		}
		return call(imp, mysqlCore, "varchar", name, "length: 191"), nil

	case schema.TypeDateTime:
		fsp := "3"
		if p := c.Native.Arg(0); p != "" {
			fsp = p
		}
		switch native {
		case "Date":
			return call(imp, mysqlCore, "date", name, "mode: 'date'"), nil
		case "Time":
			return call(imp, mysqlCore, "time", name, "fsp: "+fsp), nil
		case "Timestamp":
			return call(imp, mysqlCore, "timestamp", name, "mode: 'date'", "fsp: "+fsp), nil
		}
		return call(imp, mysqlCore, "datetime", name, "mode: 'date'", "fsp: "+fsp), nil

	case schema.TypeDecimal:
		precision, scale := "65", "30"
		if native == "Decimal" && c.Native.Arg(0) != "" {
			precision, scale = c.Native.Arg(0), c.Native.Arg(1)
			if scale == "" {
				scale = "0"
			}
		}
		return call(imp, mysqlCore, "decimal", name, "precision: "+precision, "scale: "+scale), nil

	case schema.TypeFloat:
		if native == "Float" {
			return call(imp, mysqlCore, "float", name), nil
		}
		return call(imp, mysqlCore, "double", name), nil

	case schema.TypeJSON:
		return call(imp, mysqlCore, "json", name), nil

	case schema.TypeBytes:
		return "", unsupportedBinary(c, d)
	}
	return "", nil
}

func (mysqlDialect) DefaultNow(*Imports, Column) string { return ".defaultNow()" }
func (mysqlDialect) Autoincrement(Column) string        { return ".autoincrement()" }
func (mysqlDialect) UUIDExpression() string             { return "(UUID())" }
func (mysqlDialect) UpdatedAt(*Imports) string          { return ".onUpdateNow()" }

// InnoDB parses but rejects SET DEFAULT.
func (mysqlDialect) SupportsSetDefault() bool { return false }

// MySQL limits identifiers to 64 characters, so foreign keys get explicit names.
func (mysqlDialect) InlineReferences() bool { return false }
