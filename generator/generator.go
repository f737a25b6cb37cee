package generator

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ridoystarlord/drizzlegen/schema"
)

// NativeTypeSource resolves @db.* annotations from the original schema text.
type NativeTypeSource interface {
	NativeType(model, field string) (*schema.NativeType, error)
}

type Options struct {
	// Provider overrides the datasource provider of the document.
	Provider string
	// Strict turns fields without a column mapping into errors instead of
	// dropping them from the table.
	Strict bool
	Logger *zap.Logger
}

// generator holds the state of one run. Nothing in it outlives Generate.
type generator struct {
	dialect Dialect
	imports *Imports
	log     *zap.Logger
	strict  bool

	list       []schema.Model
	models     map[string]*schema.Model
	enums      map[string]*schema.Enum
	emptyEnums map[string]bool
}

// Generate translates doc into a drizzle-orm schema module for the dialect of
// its datasource. source may be nil, in which case only native types present
// in the document are used.
func Generate(doc *schema.Document, source NativeTypeSource, opts Options) (string, error) {
	provider := opts.Provider
	if provider == "" {
		provider = doc.Provider()
	}
	d, err := ResolveDialect(provider)
	if err != nil {
		return "", err
	}
	return GenerateFor(d, doc, source, opts)
}

// GenerateFor is Generate with an explicit dialect.
func GenerateFor(d Dialect, doc *schema.Document, source NativeTypeSource, opts Options) (string, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	g := &generator{
		dialect: d,
		imports: NewImports(),
		log:     log.With(zap.String("dialect", string(d.Kind()))),
		strict:  opts.Strict,
		models:  map[string]*schema.Model{},
		enums:   map[string]*schema.Enum{},

		emptyEnums: map[string]bool{},
	}

	models := make([]schema.Model, len(doc.Datamodel.Models))
	for i := range doc.Datamodel.Models {
		models[i] = doc.Datamodel.Models[i].Clone()
	}
	if source != nil {
		if err := resolveNativeTypes(models, source); err != nil {
			return "", err
		}
	}

	list, err := SynthesizeManyToMany(models)
	if err != nil {
		return "", err
	}
	for _, m := range list[len(models):] {
		g.log.Debug("synthesized join model", zap.String("model", m.Name), zap.String("table", m.TableName()))
	}
	g.list = list
	for i := range g.list {
		g.models[g.list[i].Name] = &g.list[i]
	}

	var out output
	for i := range doc.Datamodel.Enums {
		e := &doc.Datamodel.Enums[i]
		if len(e.Values) == 0 {
			g.log.Debug("skipping empty enum", zap.String("enum", e.Name))
			g.emptyEnums[e.Name] = true
			continue
		}
		g.enums[e.Name] = e
		if decl := d.Enum(g.imports, e); decl != "" {
			out.enums = append(out.enums, decl)
		}
	}

	for i := range g.list {
		table, err := g.table(&g.list[i])
		if err != nil {
			return "", err
		}
		out.tables = append(out.tables, table)
	}
	for i := range g.list {
		rel, err := g.relations(&g.list[i])
		if err != nil {
			return "", err
		}
		if rel != "" {
			out.relations = append(out.relations, rel)
		}
	}

	out.imports = g.imports.Render()
	return out.String(), nil
}

func resolveNativeTypes(models []schema.Model, source NativeTypeSource) error {
	for mi := range models {
		m := &models[mi]
		for fi := range m.Fields {
			f := &m.Fields[fi]
			if f.NativeType != nil || (f.Kind != schema.KindScalar && f.Kind != schema.KindEnum) {
				continue
			}
			nt, err := source.NativeType(m.Name, f.Name)
			if err != nil {
				return lookupError(m.Name, f.Name, err, "resolving native type")
			}
			f.NativeType = nt
		}
	}
	return nil
}

func (g *generator) table(m *schema.Model) (string, error) {
	cons, err := g.constraints(m)
	if err != nil {
		return "", err
	}

	var columns []string
	for i := range m.Fields {
		f := &m.Fields[i]
		if v := f.Variant(); v != schema.ScalarColumn && v != schema.EnumColumn {
			continue
		}
		col, err := g.column(m, f)
		if err != nil {
			return "", err
		}
		if col == "" {
			if g.strict {
				return "", newError(UnsupportedFeature, m.Name, f.Name, "type %s has no %s column mapping", typeLabel(f), g.dialect.Kind())
			}
			g.log.Warn("dropping column without mapping",
				zap.String("model", m.Name), zap.String("field", f.Name), zap.String("type", typeLabel(f)),
				zap.Stringer("variant", f.Variant()))
			continue
		}
		columns = append(columns, fmt.Sprintf("\t%s: %s%s", f.Name, col, cons.inline[f.Name]))
	}

	g.imports.Use(g.dialect.Module(), g.dialect.TableFunc())
	var b strings.Builder
	fmt.Fprintf(&b, "export const %s = %s(%s, {\n%s\n}", m.Name, g.dialect.TableFunc(), quote(m.TableName()), strings.Join(columns, ",\n"))
	if len(cons.extras) > 0 {
		fmt.Fprintf(&b, ", (%s) => ({\n\t%s\n})", m.Name, strings.Join(cons.extras, ",\n\t"))
	}
	b.WriteString(");")
	return b.String(), nil
}

// column renders the full column expression of f, or "" when the dialect
// cannot represent its type.
func (g *generator) column(m *schema.Model, f *schema.Field) (string, error) {
	c := Column{Model: m, Field: f, Native: f.NativeType}
	if f.Kind == schema.KindEnum {
		e, ok := g.enums[f.Type]
		if !ok {
			if g.emptyEnums[f.Type] {
				return "", nil
			}
			return "", lookupError(m.Name, f.Name, nil, "enum %s does not exist", f.Type)
		}
		c.Enum = e
	}

	text, err := g.dialect.Column(g.imports, c)
	if err != nil || text == "" {
		return "", err
	}

	if f.IsID {
		text += ".primaryKey()"
	} else {
		if f.IsUnique {
			text += ".unique()"
		}
		if f.IsRequired {
			text += ".notNull()"
		}
	}
	text += translateDefault(g.dialect, g.imports, c)
	if f.IsUpdatedAt {
		text += g.dialect.UpdatedAt(g.imports)
	}
	return text, nil
}

func typeLabel(f *schema.Field) string {
	if f.IsList {
		return f.Type + "[]"
	}
	return f.Type
}
