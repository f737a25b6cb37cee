package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/drizzlegen/schema"
)

const dmmfJSON = `{
  "datamodel": {
    "enums": [
      { "name": "Role", "values": [{ "name": "USER" }, { "name": "ADMIN", "dbName": "admin" }] }
    ],
    "models": [
      {
        "name": "User",
        "dbName": "users",
        "primaryKey": null,
        "uniqueIndexes": [{ "name": null, "fields": ["email", "tenant"] }],
        "fields": [
          { "name": "id", "kind": "scalar", "type": "Int", "isId": true, "isRequired": true,
            "default": { "name": "autoincrement", "args": [] } },
          { "name": "email", "kind": "scalar", "type": "String", "isRequired": true, "isUnique": true,
            "nativeType": ["VarChar", ["255"]] },
          { "name": "tenant", "kind": "scalar", "type": "String", "isRequired": true, "default": "main" },
          { "name": "score", "kind": "scalar", "type": "Float", "isRequired": true, "default": 1.5 },
          { "name": "active", "kind": "scalar", "type": "Boolean", "isRequired": true, "default": true },
          { "name": "tags", "kind": "scalar", "type": "String", "isList": true, "default": ["a", "b"] },
          { "name": "code", "kind": "scalar", "type": "String", "isRequired": true,
            "default": { "name": "dbgenerated", "args": ["gen_code()"] } },
          { "name": "role", "kind": "enum", "type": "Role", "isRequired": true, "default": "USER" },
          { "name": "posts", "kind": "object", "type": "Post", "isList": true, "relationName": "PostToUser",
            "relationFromFields": [], "relationToFields": [] }
        ]
      },
      {
        "name": "Post",
        "primaryKey": { "name": null, "fields": [] },
        "fields": [
          { "name": "id", "kind": "scalar", "type": "Int", "isId": true, "isRequired": true },
          { "name": "authorId", "kind": "scalar", "type": "Int", "isRequired": true },
          { "name": "author", "kind": "object", "type": "User", "isRequired": true, "relationName": "PostToUser",
            "relationFromFields": ["authorId"], "relationToFields": ["id"], "relationOnDelete": "SetNull" }
        ]
      }
    ]
  },
  "datasources": [{ "name": "db", "provider": "postgresql" }]
}`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(dmmfJSON))
	require.NoError(t, err)

	assert.Equal(t, "postgresql", doc.Provider())
	require.Len(t, doc.Datamodel.Models, 2)
	require.Len(t, doc.Datamodel.Enums, 1)
	assert.Equal(t, []string{"USER", "admin"}, doc.Datamodel.Enums[0].PhysicalValues())

	user := doc.Datamodel.Models[0]
	assert.Equal(t, "users", user.TableName())
	assert.Nil(t, user.PrimaryKey)
	require.Len(t, user.UniqueIndexes, 1)
	assert.Equal(t, "", user.UniqueIndexes[0].Name)
	assert.Equal(t, []string{"email", "tenant"}, user.UniqueIndexes[0].Fields)

	field := func(name string) *schema.Field {
		f, ok := user.Field(name)
		require.True(t, ok, name)
		return f
	}

	id := field("id")
	assert.True(t, id.IsID)
	assert.Equal(t, "autoincrement", id.DefaultFunction())

	email := field("email")
	assert.True(t, email.IsUnique)
	require.NotNil(t, email.NativeType)
	assert.Equal(t, "VarChar", email.NativeType.Name)
	assert.Equal(t, "255", email.NativeType.Arg(0))

	assert.Equal(t, schema.Literal{Kind: schema.LiteralString, Value: "main"}, field("tenant").Default.Literal)
	assert.Equal(t, schema.Literal{Kind: schema.LiteralNumber, Value: "1.5"}, field("score").Default.Literal)
	assert.Equal(t, schema.Literal{Kind: schema.LiteralBool, Value: "true"}, field("active").Default.Literal)

	tags := field("tags").Default
	assert.Equal(t, schema.DefaultList, tags.Kind)
	assert.Len(t, tags.List, 2)

	code := field("code").Default
	assert.Equal(t, schema.DefaultFunction, code.Kind)
	assert.Equal(t, "dbgenerated", code.Function)
	assert.Equal(t, []schema.Literal{{Kind: schema.LiteralString, Value: "gen_code()"}}, code.Args)

	assert.Equal(t, schema.EnumColumn, field("role").Variant())
	assert.Equal(t, schema.InverseRelation, field("posts").Variant())

	post := doc.Datamodel.Models[1]
	assert.Nil(t, post.PrimaryKey)
	author, ok := post.Field("author")
	require.True(t, ok)
	assert.Equal(t, schema.OwningRelation, author.Variant())
	assert.Equal(t, schema.SetNull, author.RelationOnDelete)
}

func TestParseDocumentErrors(t *testing.T) {
	t.Run("empty datamodel", func(t *testing.T) {
		_, err := ParseDocument([]byte(`{"datamodel": {"models": [], "enums": []}}`))
		assert.ErrorContains(t, err, "no models or enums")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseDocument([]byte(`{"datamodel": [`))
		assert.ErrorContains(t, err, "unmarshalling dmmf")
	})

	t.Run("bad native type", func(t *testing.T) {
		_, err := ParseDocument([]byte(`{"datamodel": {"models": [{"name": "A", "fields": [
			{"name": "x", "kind": "scalar", "type": "String", "nativeType": "VarChar"}]}]}}`))
		assert.ErrorContains(t, err, "native type")
	})
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dmmf.json")
	require.NoError(t, os.WriteFile(path, []byte(dmmfJSON), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Datamodel.Models, 2)

	_, err = LoadDocument(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "reading dmmf file")
}
