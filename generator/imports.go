package generator

import (
	"fmt"
	"sort"
	"strings"
)

const ormModule = "drizzle-orm"

// Imports collects the helpers referenced by one generation run, per module.
// A new value is created for every run.
type Imports struct {
	modules map[string]map[string]struct{}
}

func NewImports() *Imports {
	return &Imports{modules: map[string]map[string]struct{}{}}
}

// Use records that names are imported from module.
func (i *Imports) Use(module string, names ...string) {
	set, ok := i.modules[module]
	if !ok {
		set = map[string]struct{}{}
		i.modules[module] = set
	}
	for _, n := range names {
		set[n] = struct{}{}
	}
}

// Names returns the sorted names imported from module.
func (i *Imports) Names(module string) []string {
	names := make([]string, 0, len(i.modules[module]))
	for n := range i.modules[module] {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Render returns one import statement per module, sorted by module path.
func (i *Imports) Render() string {
	modules := make([]string, 0, len(i.modules))
	for m, names := range i.modules {
		if len(names) > 0 {
			modules = append(modules, m)
		}
	}
	sort.Strings(modules)

	lines := make([]string, 0, len(modules))
	for _, m := range modules {
		lines = append(lines, fmt.Sprintf("import { %s } from '%s';", strings.Join(i.Names(m), ", "), m))
	}
	return strings.Join(lines, "\n")
}
