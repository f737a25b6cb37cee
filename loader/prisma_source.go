package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ridoystarlord/drizzlegen/schema"
)

var (
	ErrModelNotFound = errors.New("model not found in schema source")
	ErrFieldNotFound = errors.New("field not found in schema source")
)

// PrismaSource indexes the field attributes of a .prisma file so native type
// annotations (@db.*) can be looked up by model and field name.
type PrismaSource struct {
	models map[string]map[string]*schema.NativeType
}

// LoadPrismaSource reads and indexes a .prisma schema file.
func LoadPrismaSource(filename string) (*PrismaSource, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading prisma schema: %w", err)
	}
	return ParsePrismaSource(string(data))
}

// ParsePrismaSource indexes schema text. Only model blocks are inspected.
func ParsePrismaSource(text string) (*PrismaSource, error) {
	ps := &PrismaSource{models: map[string]map[string]*schema.NativeType{}}

	var current map[string]*schema.NativeType
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		if current == nil {
			name, ok := modelHeader(line)
			if !ok {
				continue
			}
			if _, dup := ps.models[name]; dup {
				return nil, fmt.Errorf("line %d: model %s declared twice", i+1, name)
			}
			current = map[string]*schema.NativeType{}
			ps.models[name] = current
			continue
		}

		if strings.HasPrefix(line, "}") {
			current = nil
			continue
		}
		closes := strings.HasSuffix(line, "}")
		if closes {
			line = strings.TrimSpace(strings.TrimSuffix(line, "}"))
		}
		// block attributes such as @@id, @@unique, @@map are skipped
		if parts := strings.Fields(line); len(parts) >= 2 && !strings.HasPrefix(line, "@@") {
			nt, err := parseNativeType(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", i+1, err)
			}
			current[parts[0]] = nt
		}
		if closes {
			current = nil
		}
	}

	if current != nil {
		return nil, fmt.Errorf("unterminated model block")
	}
	return ps, nil
}

// NativeType returns the @db.* annotation of a field, or nil when the field has none.
func (ps *PrismaSource) NativeType(model, field string) (*schema.NativeType, error) {
	fields, ok := ps.models[model]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, model)
	}
	nt, ok := fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, model, field)
	}
	return nt, nil
}

// modelHeader matches "model Name {" and "model Name{".
func modelHeader(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "model")
	if !ok || !strings.HasSuffix(rest, "{") {
		return "", false
	}
	parts := strings.Fields(strings.TrimSuffix(rest, "{"))
	if len(parts) != 1 || !(strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\t")) {
		return "", false
	}
	return parts[0], true
}

// parseNativeType finds "@db.Name" or "@db.Name(arg, ...)" outside string literals.
func parseNativeType(line string) (*schema.NativeType, error) {
	idx := indexOutsideQuotes(line, "@db.")
	if idx < 0 {
		return nil, nil
	}
	rest := line[idx+len("@db."):]

	end := 0
	for end < len(rest) && isIdentChar(rest[end]) {
		end++
	}
	if end == 0 {
		return nil, fmt.Errorf("empty native type name")
	}
	nt := &schema.NativeType{Name: rest[:end]}
	rest = rest[end:]
	if !strings.HasPrefix(rest, "(") {
		return nt, nil
	}

	closing := strings.IndexByte(rest, ')')
	if closing < 0 {
		return nil, fmt.Errorf("unterminated arguments for @db.%s", nt.Name)
	}
	for _, arg := range strings.Split(rest[1:closing], ",") {
		arg = strings.Trim(strings.TrimSpace(arg), `"`)
		if arg != "" {
			nt.Args = append(nt.Args, arg)
		}
	}
	return nt, nil
}

func stripComment(line string) string {
	if idx := indexOutsideQuotes(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}

func indexOutsideQuotes(s, needle string) int {
	inString := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && inString:
			i++
		case s[i] == '"':
			inString = !inString
		case !inString && strings.HasPrefix(s[i:], needle):
			return i
		}
	}
	return -1
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
