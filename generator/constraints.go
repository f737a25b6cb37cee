package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/drizzlegen/schema"
)

// constraints are the keys and indexes of one table. Inline references are
// appended to their column; everything else goes to the table's extra
// config callback.
type constraints struct {
	inline map[string]string
	extras []string
}

func (g *generator) constraints(m *schema.Model) (constraints, error) {
	c := constraints{inline: map[string]string{}}

	for _, idx := range m.UniqueIndexes {
		cols, columnNames, err := g.columnRefs(m, idx.Fields)
		if err != nil {
			return c, err
		}
		name := uniqueIndexName(m, idx, columnNames)
		g.imports.Use(g.dialect.Module(), "uniqueIndex")
		c.extras = append(c.extras, fmt.Sprintf("%s: uniqueIndex(%s).on(%s)", quote(name), quote(name), strings.Join(cols, ", ")))
	}

	if pk := m.PrimaryKey; pk != nil {
		cols, _, err := g.columnRefs(m, pk.Fields)
		if err != nil {
			return c, err
		}
		name := pk.Name
		if name == "" {
			name = m.TableName() + "_cpk"
		}
		g.imports.Use(g.dialect.Module(), "primaryKey")
		c.extras = append(c.extras, fmt.Sprintf("%s: primaryKey({ name: %s, columns: [%s] })", quote(name), quote(name), strings.Join(cols, ", ")))
	}

	for i := range m.Fields {
		f := &m.Fields[i]
		if f.Variant() != schema.OwningRelation {
			continue
		}
		if err := g.foreignKey(m, f, &c); err != nil {
			return c, err
		}
	}
	return c, nil
}

func (g *generator) foreignKey(m *schema.Model, f *schema.Field, c *constraints) error {
	target, ok := g.models[f.Type]
	if !ok {
		return lookupError(m.Name, f.Name, nil, "relation references unknown model %s", f.Type)
	}
	if len(f.RelationToFields) != len(f.RelationFromFields) {
		return lookupError(m.Name, f.Name, nil, "relation has %d foreign key fields but %d referenced fields",
			len(f.RelationFromFields), len(f.RelationToFields))
	}
	cols, columnNames, err := g.columnRefs(m, f.RelationFromFields)
	if err != nil {
		return err
	}
	refs, _, err := g.columnRefs(target, f.RelationToFields)
	if err != nil {
		return err
	}
	onDelete, err := referentialAction(g.dialect, m, f)
	if err != nil {
		return err
	}

	if g.dialect.InlineReferences() && len(cols) == 1 && target.Name != m.Name {
		c.inline[f.RelationFromFields[0]] = fmt.Sprintf(".references(() => %s, { onDelete: '%s', onUpdate: 'cascade' })", refs[0], onDelete)
		return nil
	}

	name := m.TableName() + "_" + strings.Join(columnNames, "_") + "_fkey"
	g.imports.Use(g.dialect.Module(), "foreignKey")
	c.extras = append(c.extras, fmt.Sprintf("%s: foreignKey({ name: %s, columns: [%s], foreignColumns: [%s] }).onDelete('%s').onUpdate('cascade')",
		quote(name), quote(name), strings.Join(cols, ", "), strings.Join(refs, ", "), onDelete))
	return nil
}

// columnRefs resolves logical field names of m into Model.field references
// and their physical column names.
func (g *generator) columnRefs(m *schema.Model, fields []string) ([]string, []string, error) {
	refs := make([]string, 0, len(fields))
	names := make([]string, 0, len(fields))
	for _, name := range fields {
		f, ok := m.Field(name)
		if !ok {
			return nil, nil, lookupError(m.Name, name, nil, "field does not exist")
		}
		refs = append(refs, m.Name+"."+f.Name)
		names = append(names, f.ColumnName())
	}
	return refs, names, nil
}

// uniqueIndexName keeps explicit names and rewrites Prisma's generated
// {table}_{columns}_key names to the _unique_idx suffix.
func uniqueIndexName(m *schema.Model, idx schema.Index, columns []string) string {
	switch {
	case idx.Name == "":
		return m.TableName() + "_" + strings.Join(columns, "_") + "_unique_idx"
	case strings.HasSuffix(idx.Name, "_key"):
		return strings.TrimSuffix(idx.Name, "_key") + "_unique_idx"
	}
	return idx.Name
}

func referentialAction(d Dialect, m *schema.Model, f *schema.Field) (string, error) {
	switch f.RelationOnDelete {
	case "", schema.Cascade:
		return "cascade", nil
	case schema.SetNull:
		return "set null", nil
	case schema.Restrict:
		return "restrict", nil
	case schema.NoAction:
		return "no action", nil
	case schema.SetDefault:
		if !d.SupportsSetDefault() {
			return "", newError(UnsupportedFeature, m.Name, f.Name, "onDelete: SetDefault is not supported for %s", d.Kind())
		}
		return "set default", nil
	}
	return "", newError(UnknownCascadeAction, m.Name, f.Name, "onDelete value %q is not one of Cascade, SetNull, SetDefault, Restrict, NoAction", f.RelationOnDelete)
}
