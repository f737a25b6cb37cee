package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridoystarlord/drizzlegen/schema"
)

func models() []schema.Model {
	return []schema.Model{
		{
			Name:   "User",
			DBName: "users",
			Fields: []schema.Field{
				{Name: "id", Kind: schema.KindScalar, Type: schema.TypeInt, IsID: true, IsRequired: true},
				{Name: "email", Kind: schema.KindScalar, Type: schema.TypeString, IsUnique: true, IsRequired: true},
				{Name: "posts", Kind: schema.KindObject, Type: "Post", IsList: true, RelationName: "PostToUser"},
			},
		},
		{
			Name: "Post",
			Fields: []schema.Field{
				{Name: "id", Kind: schema.KindScalar, Type: schema.TypeInt, IsID: true, IsRequired: true},
				{Name: "authorId", DBName: "author_id", Kind: schema.KindScalar, Type: schema.TypeInt},
				{Name: "tags", Kind: schema.KindScalar, Type: schema.TypeString, IsList: true},
				{Name: "author", Kind: schema.KindObject, Type: "User", RelationName: "PostToUser",
					RelationFromFields: []string{"authorId"}, RelationToFields: []string{"id"}},
			},
		},
		{
			Name:       "_PostToTag",
			Fields:     []schema.Field{{Name: "A", Kind: schema.KindScalar, Type: schema.TypeInt, IsRequired: true}},
			PrimaryKey: &schema.PrimaryKey{Fields: []string{"A"}},
		},
	}
}

func TestMermaid(t *testing.T) {
	out := Mermaid(models())

	assert.Contains(t, out, "```mermaid\nerDiagram\n")
	assert.Contains(t, out, "    users {\n        Int id PK\n        String email UK\n    }\n")
	assert.Contains(t, out, "        Int author_id FK\n        String_list tags\n")
	assert.Contains(t, out, "    PostToTag {\n        Int A PK\n    }\n")
	assert.Contains(t, out, "    Post }o--o| users : \"author\"\n")
	assert.NotContains(t, out, "posts")
}

func TestPlantUML(t *testing.T) {
	out := PlantUML(models())

	assert.Contains(t, out, "entity \"users\" {\n  id : Int <<PK>> <<NN>>\n  email : String <<UQ>> <<NN>>\n}\n")
	assert.Contains(t, out, "  A : Int <<PK>> <<NN>>\n")
	assert.Contains(t, out, "\"users\" ||--o{ \"Post\" : \"author\"\n")
	assert.True(t, len(out) > 0 && out[len(out)-len("@enduml\n"):] == "@enduml\n")
}
