package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/drizzlegen/schema"
)

func TestSynthesizeManyToMany(t *testing.T) {
	t.Run("creates one join model per implicit relation", func(t *testing.T) {
		models := blogModels()
		out, err := SynthesizeManyToMany(models)
		require.NoError(t, err)
		require.Len(t, out, 4)

		join := out[3]
		assert.Equal(t, "PostToTag", join.Name)
		assert.Equal(t, "_PostToTag", join.TableName())
		assert.True(t, join.Synthetic)
		require.Len(t, join.Fields, 4)

		a, b := join.Fields[0], join.Fields[1]
		assert.Equal(t, "PostId", a.Name)
		assert.Equal(t, "A", a.DBName)
		assert.Equal(t, schema.TypeInt, a.Type)
		assert.Equal(t, "TagId", b.Name)
		assert.Equal(t, "B", b.DBName)

		postRel, tagRel := join.Fields[2], join.Fields[3]
		assert.Equal(t, schema.OwningRelation, postRel.Variant())
		assert.Equal(t, "Post", postRel.Type)
		assert.Equal(t, []string{"PostId"}, postRel.RelationFromFields)
		assert.Equal(t, []string{"id"}, postRel.RelationToFields)
		assert.Equal(t, "PostToPostToTag", postRel.RelationName)
		assert.Equal(t, "TagToPostToTag", tagRel.RelationName)

		require.NotNil(t, join.PrimaryKey)
		assert.Equal(t, "_PostToTag_AB_pkey", join.PrimaryKey.Name)
		assert.Equal(t, []string{"PostId", "TagId"}, join.PrimaryKey.Fields)
	})

	t.Run("rewrites both sides to the join model", func(t *testing.T) {
		out, err := SynthesizeManyToMany(blogModels())
		require.NoError(t, err)

		tags, ok := out[1].Field("tags")
		require.True(t, ok)
		assert.Equal(t, "PostToTag", tags.Type)
		assert.True(t, tags.IsList)
		assert.Equal(t, "PostToPostToTag", tags.RelationName)
		assert.Equal(t, schema.InverseRelation, tags.Variant())

		posts, ok := out[2].Field("posts")
		require.True(t, ok)
		assert.Equal(t, "PostToTag", posts.Type)
		assert.Equal(t, "TagToPostToTag", posts.RelationName)
	})

	t.Run("leaves one-to-many relations alone", func(t *testing.T) {
		out, err := SynthesizeManyToMany(blogModels())
		require.NoError(t, err)

		posts, _ := out[0].Field("posts")
		assert.Equal(t, "Post", posts.Type)
		assert.Equal(t, "PostToUser", posts.RelationName)
	})

	t.Run("does not modify its input", func(t *testing.T) {
		models := blogModels()
		_, err := SynthesizeManyToMany(models)
		require.NoError(t, err)

		tags, _ := models[1].Field("tags")
		assert.Equal(t, "Tag", tags.Type)
		assert.Equal(t, "PostToTag", tags.RelationName)
		assert.Len(t, models, 3)
	})

	t.Run("order of declaration does not matter", func(t *testing.T) {
		models := blogModels()
		reversed := []schema.Model{models[2], models[1], models[0]}

		a, err := SynthesizeManyToMany(models)
		require.NoError(t, err)
		b, err := SynthesizeManyToMany(reversed)
		require.NoError(t, err)

		assert.Equal(t, a[3], b[3])
	})

	t.Run("foreign keys follow the id type of each side", func(t *testing.T) {
		models := blogModels()
		models[1].Fields[0] = schema.Field{
			Name: "id", Kind: schema.KindScalar, Type: schema.TypeString, IsID: true, IsRequired: true,
			Default:    schema.FunctionDefault("cuid"),
			NativeType: &schema.NativeType{Name: "Uuid"},
		}

		out, err := SynthesizeManyToMany(models)
		require.NoError(t, err)
		join := out[3]
		assert.Equal(t, schema.TypeString, join.Fields[0].Type)
		assert.Nil(t, join.Fields[0].Default)
		require.NotNil(t, join.Fields[0].NativeType)
		assert.Equal(t, "Uuid", join.Fields[0].NativeType.Name)
		assert.Equal(t, schema.TypeInt, join.Fields[1].Type)
	})

	t.Run("self relation gets distinct sides", func(t *testing.T) {
		models := []schema.Model{{
			Name: "User",
			Fields: []schema.Field{
				intID(),
				listOf("following", "User", "follows"),
				listOf("followers", "User", "follows"),
			},
		}}

		out, err := SynthesizeManyToMany(models)
		require.NoError(t, err)
		require.Len(t, out, 2)

		join := out[1]
		assert.Equal(t, "UserToUser", join.Name)
		assert.Equal(t, "_follows", join.TableName())
		assert.Equal(t, "UserAId", join.Fields[0].Name)
		assert.Equal(t, "UserBId", join.Fields[1].Name)

		following, _ := out[0].Field("following")
		followers, _ := out[0].Field("followers")
		assert.Equal(t, "UserToUserToUserA", following.RelationName)
		assert.Equal(t, "UserToUserToUserB", followers.RelationName)
	})

	t.Run("second relation between the same models gets a qualified name", func(t *testing.T) {
		models := blogModels()
		models[1].Fields = append(models[1].Fields, listOf("featured", "Tag", "featured"))
		models[2].Fields = append(models[2].Fields, listOf("featuredIn", "Post", "featured"))

		out, err := SynthesizeManyToMany(models)
		require.NoError(t, err)
		require.Len(t, out, 5)
		assert.Equal(t, "PostToTag", out[3].Name)
		assert.Equal(t, "PostToTag_featured", out[4].Name)
		assert.Equal(t, "_featured", out[4].TableName())
	})

	t.Run("groups that are not pairs are skipped", func(t *testing.T) {
		models := blogModels()
		models[0].Fields = append(models[0].Fields, listOf("tags", "Tag", "PostToTag"))

		out, err := SynthesizeManyToMany(models)
		require.NoError(t, err)
		assert.Len(t, out, 3)
		tags, _ := out[1].Field("tags")
		assert.Equal(t, "Tag", tags.Type)
	})

	t.Run("missing id field is fatal", func(t *testing.T) {
		models := blogModels()
		models[2].Fields = models[2].Fields[1:]

		_, err := SynthesizeManyToMany(models)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchemaLookup))
		assert.Contains(t, err.Error(), "Tag")
	})

	t.Run("missing model is fatal", func(t *testing.T) {
		models := blogModels()[1:2]
		models = append(models, schema.Model{
			Name:   "Label",
			Fields: []schema.Field{intID(), listOf("posts", "Post", "PostToTag")},
		})

		_, err := SynthesizeManyToMany(models)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchemaLookup))
		assert.Contains(t, err.Error(), "unknown model Tag")
	})
}
