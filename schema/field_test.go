package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldVariant(t *testing.T) {
	tests := []struct {
		field Field
		want  Variant
		name  string
	}{
		{Field{Kind: KindScalar}, ScalarColumn, "scalar"},
		{Field{Kind: KindEnum}, EnumColumn, "enum"},
		{Field{Kind: KindObject, RelationFromFields: []string{"authorId"}}, OwningRelation, "owning relation"},
		{Field{Kind: KindObject, IsList: true}, InverseRelation, "inverse relation"},
		{Field{Kind: KindUnsupported}, Unsupported, "unsupported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.field.Variant()
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.name, v.String())
		})
	}
}

func TestModelHasRelations(t *testing.T) {
	m := Model{Name: "User", Fields: []Field{{Name: "id", Kind: KindScalar}}}
	assert.False(t, m.HasRelations())

	m.Fields = append(m.Fields, Field{Name: "posts", Kind: KindObject, Type: "Post", IsList: true})
	assert.True(t, m.HasRelations())
}
