package schema

// Document is the canonical data model handed to the generator. It mirrors the
// parts of Prisma's DMMF that matter for schema translation.
type Document struct {
	Datamodel   Datamodel    `yaml:"datamodel" json:"datamodel"`
	Datasources []Datasource `yaml:"datasources" json:"datasources"`
}

type Datamodel struct {
	Models []Model `yaml:"models" json:"models"`
	Enums  []Enum  `yaml:"enums" json:"enums"`
}

type Datasource struct {
	Name     string `yaml:"name" json:"name"`
	Provider string `yaml:"provider" json:"provider"`
}

// Provider returns the provider of the first datasource, or "" if none is declared.
func (d *Document) Provider() string {
	if len(d.Datasources) == 0 {
		return ""
	}
	return d.Datasources[0].Provider
}

type Model struct {
	Name          string      `yaml:"name" json:"name"`
	DBName        string      `yaml:"dbName" json:"dbName,omitempty"`
	Fields        []Field     `yaml:"fields" json:"fields"`
	PrimaryKey    *PrimaryKey `yaml:"primaryKey" json:"primaryKey,omitempty"`
	UniqueIndexes []Index     `yaml:"uniqueIndexes" json:"uniqueIndexes,omitempty"`

	// Synthetic marks join models created during many-to-many synthesis.
	// They have no counterpart in the schema source text.
	Synthetic bool `yaml:"-" json:"-"`
}

// TableName returns the physical table name.
func (m *Model) TableName() string {
	if m.DBName != "" {
		return m.DBName
	}
	return m.Name
}

// Field looks up a field by its logical name.
func (m *Model) Field(name string) (*Field, bool) {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i], true
		}
	}
	return nil, false
}

// IDField returns the single-column primary key field, if any.
func (m *Model) IDField() (*Field, bool) {
	for i := range m.Fields {
		if m.Fields[i].IsID {
			return &m.Fields[i], true
		}
	}
	return nil, false
}

// HasRelations reports whether the model has at least one relation field.
func (m *Model) HasRelations() bool {
	for i := range m.Fields {
		if m.Fields[i].Kind == KindObject {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the model.
func (m Model) Clone() Model {
	out := m
	out.Fields = make([]Field, len(m.Fields))
	for i, f := range m.Fields {
		out.Fields[i] = f.Clone()
	}
	if m.PrimaryKey != nil {
		pk := *m.PrimaryKey
		pk.Fields = append([]string(nil), m.PrimaryKey.Fields...)
		out.PrimaryKey = &pk
	}
	out.UniqueIndexes = make([]Index, len(m.UniqueIndexes))
	for i, idx := range m.UniqueIndexes {
		idx.Fields = append([]string(nil), idx.Fields...)
		out.UniqueIndexes[i] = idx
	}
	return out
}

type Enum struct {
	Name   string      `yaml:"name" json:"name"`
	DBName string      `yaml:"dbName" json:"dbName,omitempty"`
	Values []EnumValue `yaml:"values" json:"values"`
}

type EnumValue struct {
	Name   string `yaml:"name" json:"name"`
	DBName string `yaml:"dbName" json:"dbName,omitempty"`
}

// Physical returns the value stored in the database.
func (v EnumValue) Physical() string {
	if v.DBName != "" {
		return v.DBName
	}
	return v.Name
}

// TypeName returns the physical enum type name.
func (e *Enum) TypeName() string {
	if e.DBName != "" {
		return e.DBName
	}
	return e.Name
}

// PhysicalValues returns the database values of the enum, in declaration order.
func (e *Enum) PhysicalValues() []string {
	out := make([]string, len(e.Values))
	for i, v := range e.Values {
		out[i] = v.Physical()
	}
	return out
}

// Index is a unique index declared with @@unique.
type Index struct {
	Name   string   `yaml:"name" json:"name,omitempty"`
	Fields []string `yaml:"fields" json:"fields"`
}

// PrimaryKey is a primary key declared with @@id.
type PrimaryKey struct {
	Name   string   `yaml:"name" json:"name,omitempty"`
	Fields []string `yaml:"fields" json:"fields"`
}
