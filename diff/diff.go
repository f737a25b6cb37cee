package diff

import (
	"strings"
)

type ChangeType string

const (
	AddDeclaration    ChangeType = "ADD_DECLARATION"
	RemoveDeclaration ChangeType = "REMOVE_DECLARATION"
	ChangeDeclaration ChangeType = "CHANGE_DECLARATION"
	ChangeImports     ChangeType = "CHANGE_IMPORTS"
)

type Change struct {
	Type ChangeType
	Name string // declaration name, empty for imports
	Old  string
	New  string
}

// Module is a generated schema module split into its import header and
// its exported declarations.
type Module struct {
	Imports      string
	Declarations map[string]string
	Order        []string
}

const exportPrefix = "export const "

// ParseModule splits generated text at each top-level "export const".
func ParseModule(text string) Module {
	mod := Module{Declarations: map[string]string{}}

	var imports []string
	var current string
	var body []string
	flush := func() {
		if current == "" {
			return
		}
		mod.Declarations[current] = strings.TrimSpace(strings.Join(body, "\n"))
		mod.Order = append(mod.Order, current)
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, exportPrefix):
			flush()
			rest := strings.TrimPrefix(line, exportPrefix)
			if end := strings.IndexAny(rest, " =:"); end > 0 {
				current = rest[:end]
			} else {
				current = rest
			}
			body = []string{line}
		case current == "" && strings.HasPrefix(line, "import "):
			imports = append(imports, line)
		case current != "":
			body = append(body, line)
		}
	}
	flush()

	mod.Imports = strings.Join(imports, "\n")
	return mod
}

// DiffOutputs compares a previously written module with a freshly generated
// one. Changes follow the declaration order of the new module, then removals.
func DiffOutputs(oldText, newText string) []Change {
	oldMod, newMod := ParseModule(oldText), ParseModule(newText)

	var changes []Change
	if oldMod.Imports != newMod.Imports {
		changes = append(changes, Change{Type: ChangeImports, Old: oldMod.Imports, New: newMod.Imports})
	}

	for _, name := range newMod.Order {
		newDecl := newMod.Declarations[name]
		oldDecl, exists := oldMod.Declarations[name]
		switch {
		case !exists:
			changes = append(changes, Change{Type: AddDeclaration, Name: name, New: newDecl})
		case oldDecl != newDecl:
			changes = append(changes, Change{Type: ChangeDeclaration, Name: name, Old: oldDecl, New: newDecl})
		}
	}

	for _, name := range oldMod.Order {
		if _, exists := newMod.Declarations[name]; !exists {
			changes = append(changes, Change{Type: RemoveDeclaration, Name: name, Old: oldMod.Declarations[name]})
		}
	}

	return changes
}
