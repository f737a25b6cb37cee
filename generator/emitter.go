package generator

import "strings"

// output is the assembled module: imports, enums, tables, relations, in that
// order, separated by blank lines. Empty blocks are left out.
type output struct {
	imports   string
	enums     []string
	tables    []string
	relations []string
}

func (o output) String() string {
	var blocks []string
	if o.imports != "" {
		blocks = append(blocks, o.imports)
	}
	for _, block := range [][]string{o.enums, o.tables, o.relations} {
		if len(block) > 0 {
			blocks = append(blocks, strings.Join(block, "\n\n"))
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
