package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oldModule = `import { pgTable, serial, text } from 'drizzle-orm/pg-core';

export const User = pgTable('User', {
	id: serial('id').primaryKey(),
	email: text('email').unique().notNull()
});

export const Legacy = pgTable('Legacy', {
	id: serial('id').primaryKey()
});
`

const newModule = `import { relations } from 'drizzle-orm';
import { integer, pgTable, serial, text } from 'drizzle-orm/pg-core';

export const User = pgTable('User', {
	id: serial('id').primaryKey(),
	email: text('email').notNull()
});

export const Post = pgTable('Post', {
	id: serial('id').primaryKey(),
	authorId: integer('authorId').notNull()
});

export const UserRelations = relations(User, ({ many }) => ({
	posts: many(Post, { relationName: 'PostToUser' })
}));
`

func TestParseModule(t *testing.T) {
	mod := ParseModule(newModule)

	assert.Equal(t, "import { relations } from 'drizzle-orm';\nimport { integer, pgTable, serial, text } from 'drizzle-orm/pg-core';", mod.Imports)
	assert.Equal(t, []string{"User", "Post", "UserRelations"}, mod.Order)
	assert.Equal(t, "export const UserRelations = relations(User, ({ many }) => ({\n\tposts: many(Post, { relationName: 'PostToUser' })\n}));", mod.Declarations["UserRelations"])
}

func TestParseModuleEmpty(t *testing.T) {
	mod := ParseModule("")
	assert.Empty(t, mod.Imports)
	assert.Empty(t, mod.Order)
	assert.Empty(t, mod.Declarations)
}

func TestDiffOutputs(t *testing.T) {
	changes := DiffOutputs(oldModule, newModule)
	require.Len(t, changes, 5)

	assert.Equal(t, ChangeImports, changes[0].Type)
	assert.Empty(t, changes[0].Name)

	assert.Equal(t, ChangeDeclaration, changes[1].Type)
	assert.Equal(t, "User", changes[1].Name)
	assert.Contains(t, changes[1].Old, ".unique()")
	assert.NotContains(t, changes[1].New, ".unique()")

	assert.Equal(t, Change{Type: AddDeclaration, Name: "Post", New: ParseModule(newModule).Declarations["Post"]}, changes[2])
	assert.Equal(t, AddDeclaration, changes[3].Type)
	assert.Equal(t, "UserRelations", changes[3].Name)

	assert.Equal(t, RemoveDeclaration, changes[4].Type)
	assert.Equal(t, "Legacy", changes[4].Name)
	assert.Contains(t, changes[4].Old, "pgTable('Legacy'")
}

func TestDiffOutputsUnchanged(t *testing.T) {
	assert.Empty(t, DiffOutputs(newModule, newModule))
}

func TestDiffOutputsFromNothing(t *testing.T) {
	changes := DiffOutputs("", oldModule)
	require.Len(t, changes, 3)
	assert.Equal(t, ChangeImports, changes[0].Type)
	assert.Equal(t, []ChangeType{AddDeclaration, AddDeclaration}, []ChangeType{changes[1].Type, changes[2].Type})
}
