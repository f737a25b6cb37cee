package generator

import (
	"github.com/ridoystarlord/drizzlegen/schema"
)

func doc(provider string, models ...schema.Model) *schema.Document {
	return &schema.Document{
		Datamodel:   schema.Datamodel{Models: models},
		Datasources: []schema.Datasource{{Name: "db", Provider: provider}},
	}
}

func intID() schema.Field {
	return schema.Field{
		Name:       "id",
		Kind:       schema.KindScalar,
		Type:       schema.TypeInt,
		IsID:       true,
		IsRequired: true,
		Default:    schema.FunctionDefault("autoincrement"),
	}
}

func scalar(name, typ string, required bool) schema.Field {
	return schema.Field{Name: name, Kind: schema.KindScalar, Type: typ, IsRequired: required}
}

func listOf(name, target, relation string) schema.Field {
	return schema.Field{Name: name, Kind: schema.KindObject, Type: target, IsList: true, RelationName: relation}
}

func belongsTo(name, target, relation string, from, to []string) schema.Field {
	return schema.Field{
		Name:               name,
		Kind:               schema.KindObject,
		Type:               target,
		IsRequired:         true,
		RelationName:       relation,
		RelationFromFields: from,
		RelationToFields:   to,
	}
}

// blogModels returns User 1-n Post and an implicit Post n-m Tag.
func blogModels() []schema.Model {
	return []schema.Model{
		{
			Name: "User",
			Fields: []schema.Field{
				intID(),
				{Name: "email", Kind: schema.KindScalar, Type: schema.TypeString, IsRequired: true, IsUnique: true},
				scalar("name", schema.TypeString, false),
				listOf("posts", "Post", "PostToUser"),
			},
		},
		{
			Name: "Post",
			Fields: []schema.Field{
				intID(),
				scalar("title", schema.TypeString, true),
				scalar("authorId", schema.TypeInt, true),
				belongsTo("author", "User", "PostToUser", []string{"authorId"}, []string{"id"}),
				listOf("tags", "Tag", "PostToTag"),
			},
		},
		{
			Name: "Tag",
			Fields: []schema.Field{
				intID(),
				scalar("name", schema.TypeString, true),
				listOf("posts", "Post", "PostToTag"),
			},
		},
	}
}

type staticSource map[string]map[string]*schema.NativeType

func (s staticSource) NativeType(model, field string) (*schema.NativeType, error) {
	return s[model][field], nil
}
