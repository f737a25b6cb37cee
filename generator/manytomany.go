package generator

import (
	"sort"
	"strings"

	"github.com/ridoystarlord/drizzlegen/schema"
)

type fieldRef struct {
	model int
	field int
}

// joinSide is one foreign key of a join model.
type joinSide struct {
	target   *schema.Model
	id       *schema.Field
	column   string // physical name, A or B
	name     string // field name prefix on the join model
	original fieldRef
}

// SynthesizeManyToMany returns a copy of models in which every implicit
// many-to-many relation is replaced by an explicit join model. Both list
// fields of the relation are rewritten to point at the join model, and the
// join models are appended after the input models, sorted by name. The input
// slice is not modified.
//
// A relation qualifies when exactly two list fields share its name and
// neither declares foreign keys; other groups are left as they are.
func SynthesizeManyToMany(models []schema.Model) ([]schema.Model, error) {
	out := make([]schema.Model, len(models))
	for i := range models {
		out[i] = models[i].Clone()
	}

	groups := map[string][]fieldRef{}
	var names []string
	for mi := range out {
		for fi := range out[mi].Fields {
			f := &out[mi].Fields[fi]
			if !f.IsImplicitManyToMany() || f.RelationName == "" {
				continue
			}
			if _, seen := groups[f.RelationName]; !seen {
				names = append(names, f.RelationName)
			}
			groups[f.RelationName] = append(groups[f.RelationName], fieldRef{model: mi, field: fi})
		}
	}
	sort.Strings(names)

	taken := map[string]bool{}
	for _, m := range out {
		taken[m.Name] = true
	}

	var joins []schema.Model
	for _, relation := range names {
		pair := groups[relation]
		if len(pair) != 2 {
			continue
		}
		join, err := synthesizeJoin(out, relation, pair, taken)
		if err != nil {
			return nil, err
		}
		taken[join.Name] = true
		joins = append(joins, join)
	}

	sort.SliceStable(joins, func(i, j int) bool { return joins[i].Name < joins[j].Name })
	return append(out, joins...), nil
}

func synthesizeJoin(models []schema.Model, relation string, pair []fieldRef, taken map[string]bool) (schema.Model, error) {
	fieldOf := func(r fieldRef) *schema.Field { return &models[r.model].Fields[r.field] }

	// Order by referenced model, then by field name for self relations.
	sort.Slice(pair, func(i, j int) bool {
		a, b := fieldOf(pair[i]), fieldOf(pair[j])
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Name < b.Name
	})
	first, second := fieldOf(pair[0]), fieldOf(pair[1])
	self := first.Type == second.Type

	// Column A references the first model and pairs with the field that
	// lives on it, which is the second field of the sorted pair.
	sides := [2]joinSide{
		{column: "A", name: first.Type, original: pair[1]},
		{column: "B", name: second.Type, original: pair[0]},
	}
	if self {
		sides[0].name += "A"
		sides[1].name += "B"
	}
	for i, typ := range []string{first.Type, second.Type} {
		target, ok := findModel(models, typ)
		if !ok {
			f := fieldOf(pair[i])
			return schema.Model{}, lookupError(models[pair[i].model].Name, f.Name, nil,
				"many-to-many relation %q references unknown model %s", relation, typ)
		}
		id, ok := target.IDField()
		if !ok {
			return schema.Model{}, lookupError(target.Name, "", nil,
				"many-to-many relation %q needs an @id field on %s", relation, target.Name)
		}
		sides[i].target = target
		sides[i].id = id
	}

	join := schema.Model{
		Name:      joinModelName(first.Type, second.Type, relation, taken),
		DBName:    "_" + relation,
		Synthetic: true,
	}

	var fks, relations []schema.Field
	for i := range sides {
		s := &sides[i]
		relationName := models[s.original.model].Name + "To" + join.Name
		if self {
			relationName += s.column
		}

		fk := schema.Field{
			Name:       s.name + "Id",
			DBName:     s.column,
			Kind:       s.id.Kind,
			Type:       s.id.Type,
			IsRequired: true,
		}
		if s.id.NativeType != nil {
			nt := *s.id.NativeType
			fk.NativeType = &nt
		}
		fks = append(fks, fk)

		relations = append(relations, schema.Field{
			Name:               s.name,
			Kind:               schema.KindObject,
			Type:               s.target.Name,
			IsRequired:         true,
			RelationName:       relationName,
			RelationFromFields: []string{fk.Name},
			RelationToFields:   []string{s.id.Name},
			RelationOnDelete:   schema.Cascade,
		})

		orig := fieldOf(s.original)
		orig.Type = join.Name
		orig.IsList = true
		orig.RelationName = relationName
		orig.RelationFromFields = nil
		orig.RelationToFields = nil
	}

	join.Fields = append(fks, relations...)
	join.PrimaryKey = &schema.PrimaryKey{
		Name:   join.DBName + "_AB_pkey",
		Fields: []string{fks[0].Name, fks[1].Name},
	}
	return join, nil
}

// joinModelName returns {First}To{Second}, qualified by the relation name
// when two relations connect the same pair of models.
func joinModelName(first, second, relation string, taken map[string]bool) string {
	name := first + "To" + second
	if !taken[name] {
		return name
	}
	return name + "_" + strings.Map(func(r rune) rune {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, relation)
}

func findModel(models []schema.Model, name string) (*schema.Model, bool) {
	for i := range models {
		if models[i].Name == name {
			return &models[i], true
		}
	}
	return nil, false
}
