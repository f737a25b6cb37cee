package generator

import "strings"

// Escape makes s safe to embed between two quote characters in generated
// TypeScript. For template literals (quote == '`') interpolation markers are
// escaped as well.
func Escape(s string, quote rune) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == quote:
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '$' && quote == '`' && i+1 < len(runes) && runes[i+1] == '{':
			b.WriteString(`\$`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// quote wraps s in single quotes.
func quote(s string) string {
	return "'" + Escape(s, '\'') + "'"
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
