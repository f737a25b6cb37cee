package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/drizzlegen/schema"
)

// relations renders the relations(...) declaration of m.
func (g *generator) relations(m *schema.Model) (string, error) {
	if !m.HasRelations() {
		return "", nil
	}
	var (
		entries []string
		useOne  bool
		useMany bool
	)
	for i := range m.Fields {
		f := &m.Fields[i]
		if f.Kind != schema.KindObject {
			continue
		}
		target, ok := g.models[f.Type]
		if !ok {
			return "", lookupError(m.Name, f.Name, nil, "relation references unknown model %s", f.Type)
		}

		switch {
		case f.Variant() == schema.OwningRelation:
			fields, _, err := g.columnRefs(m, f.RelationFromFields)
			if err != nil {
				return "", err
			}
			refs, _, err := g.columnRefs(target, f.RelationToFields)
			if err != nil {
				return "", err
			}
			useOne = true
			entries = append(entries, fmt.Sprintf("\t%s: one(%s, { relationName: %s, fields: [%s], references: [%s] })",
				f.Name, target.Name, quote(f.RelationName), strings.Join(fields, ", "), strings.Join(refs, ", ")))
		case f.IsList:
			useMany = true
			entries = append(entries, fmt.Sprintf("\t%s: many(%s, { relationName: %s })", f.Name, target.Name, quote(f.RelationName)))
		default:
			useOne = true
			entries = append(entries, fmt.Sprintf("\t%s: one(%s, { relationName: %s })", f.Name, target.Name, quote(f.RelationName)))
		}
	}
	if len(entries) == 0 {
		return "", nil
	}

	var params []string
	if useOne {
		params = append(params, "one")
	}
	if useMany {
		params = append(params, "many")
	}
	g.imports.Use(ormModule, "relations")

	return fmt.Sprintf("export const %sRelations = relations(%s, ({ %s }) => ({\n%s\n}));",
		m.Name, m.Name, strings.Join(params, ", "), strings.Join(entries, ",\n")), nil
}
