package generator

import (
	"regexp"
	"strings"

	"github.com/ridoystarlord/drizzlegen/schema"
)

var uuidFunction = regexp.MustCompile(`^(uuid|gen_random_uuid|uuid_generate_v[1-7])$`)

// translateDefault renders the .default(...) fragment of a column.
func translateDefault(d Dialect, imp *Imports, c Column) string {
	spec := c.Field.Default
	if spec == nil {
		return ""
	}

	switch spec.Kind {
	case schema.DefaultLiteral:
		return ".default(" + literal(c, spec.Literal) + ")"
	case schema.DefaultList:
		items := make([]string, len(spec.List))
		for i, lit := range spec.List {
			items[i] = literal(c, lit)
		}
		return ".default([" + strings.Join(items, ", ") + "])"
	}

	switch {
	case spec.Function == "now":
		return d.DefaultNow(imp, c)
	case spec.Function == "autoincrement":
		return d.Autoincrement(c)
	case spec.Function == "dbgenerated":
		if len(spec.Args) == 0 || spec.Args[0].Value == "" {
			return ""
		}
		return ".default(" + rawSQL(imp, spec.Args[0].Value) + ")"
	case uuidFunction.MatchString(spec.Function):
		return ".default(" + rawSQL(imp, d.UUIDExpression()) + ")"
	default:
		return ".default(" + rawSQL(imp, callExpression(spec)) + ")"
	}
}

// literal renders a default value as a TypeScript expression matching the
// column's runtime type.
func literal(c Column, lit schema.Literal) string {
	switch lit.Kind {
	case schema.LiteralBool:
		return lit.Value
	case schema.LiteralNumber:
		switch c.Field.Type {
		case schema.TypeBigInt:
			return "BigInt(" + quote(lit.Value) + ")"
		case schema.TypeDecimal:
			return quote(lit.Value)
		}
		return lit.Value
	}

	if c.Enum != nil {
		for _, v := range c.Enum.Values {
			if v.Name == lit.Value {
				return quote(v.Physical())
			}
		}
		return quote(lit.Value)
	}
	switch c.Field.Type {
	case schema.TypeDateTime:
		return "new Date(" + quote(lit.Value) + ")"
	case schema.TypeJSON:
		return "JSON.parse(" + quote(lit.Value) + ")"
	case schema.TypeBigInt:
		return "BigInt(" + quote(lit.Value) + ")"
	case schema.TypeInt, schema.TypeFloat:
		return lit.Value
	}
	return quote(lit.Value)
}

// rawSQL wraps expr in the sql`` escape of drizzle-orm.
func rawSQL(imp *Imports, expr string) string {
	imp.Use(ormModule, "sql")
	return "sql`" + Escape(expr, '`') + "`"
}

// callExpression rebuilds a SQL function call such as cuid() or
// my_func('a', 1) from a default spec.
func callExpression(spec *schema.DefaultSpec) string {
	args := make([]string, len(spec.Args))
	for i, a := range spec.Args {
		if a.Kind == schema.LiteralString {
			args[i] = "'" + strings.ReplaceAll(a.Value, "'", "''") + "'"
		} else {
			args[i] = a.Value
		}
	}
	return spec.Function + "(" + strings.Join(args, ", ") + ")"
}
