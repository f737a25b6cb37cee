package schema

type FieldKind string

const (
	KindScalar      FieldKind = "scalar"
	KindEnum        FieldKind = "enum"
	KindObject      FieldKind = "object"
	KindUnsupported FieldKind = "unsupported"
)

// Variant distinguishes what a field contributes to the generated schema.
type Variant int

const (
	// ScalarColumn is a plain column.
	ScalarColumn Variant = iota
	// EnumColumn is a column typed by an enum.
	EnumColumn
	// OwningRelation holds the foreign key columns of a relation.
	OwningRelation
	// InverseRelation is the back-reference side of a relation.
	InverseRelation
	// Unsupported fields are ignored by the generator.
	Unsupported
)

func (v Variant) String() string {
	switch v {
	case ScalarColumn:
		return "scalar"
	case EnumColumn:
		return "enum"
	case OwningRelation:
		return "owning relation"
	case InverseRelation:
		return "inverse relation"
	default:
		return "unsupported"
	}
}

// Scalar types understood by the generator.
const (
	TypeString   = "String"
	TypeBoolean  = "Boolean"
	TypeInt      = "Int"
	TypeBigInt   = "BigInt"
	TypeFloat    = "Float"
	TypeDecimal  = "Decimal"
	TypeDateTime = "DateTime"
	TypeJSON     = "Json"
	TypeBytes    = "Bytes"
)

// Referential actions for onDelete.
const (
	Cascade    = "Cascade"
	SetNull    = "SetNull"
	SetDefault = "SetDefault"
	Restrict   = "Restrict"
	NoAction   = "NoAction"
)

type Field struct {
	Name        string       `yaml:"name" json:"name"`
	DBName      string       `yaml:"dbName" json:"dbName,omitempty"`
	Kind        FieldKind    `yaml:"kind" json:"kind"`
	Type        string       `yaml:"type" json:"type"`
	IsList      bool         `yaml:"isList" json:"isList"`
	IsRequired  bool         `yaml:"isRequired" json:"isRequired"`
	IsUnique    bool         `yaml:"isUnique" json:"isUnique"`
	IsID        bool         `yaml:"isId" json:"isId"`
	IsUpdatedAt bool         `yaml:"isUpdatedAt" json:"isUpdatedAt"`
	Default     *DefaultSpec `yaml:"default" json:"default,omitempty"`
	NativeType  *NativeType  `yaml:"nativeType" json:"nativeType,omitempty"`

	RelationName       string   `yaml:"relationName" json:"relationName,omitempty"`
	RelationFromFields []string `yaml:"relationFromFields" json:"relationFromFields,omitempty"`
	RelationToFields   []string `yaml:"relationToFields" json:"relationToFields,omitempty"`
	RelationOnDelete   string   `yaml:"relationOnDelete" json:"relationOnDelete,omitempty"`
}

// Variant classifies the field.
func (f *Field) Variant() Variant {
	switch f.Kind {
	case KindScalar:
		return ScalarColumn
	case KindEnum:
		return EnumColumn
	case KindObject:
		if len(f.RelationFromFields) > 0 {
			return OwningRelation
		}
		return InverseRelation
	default:
		return Unsupported
	}
}

// ColumnName returns the physical column name.
func (f *Field) ColumnName() string {
	if f.DBName != "" {
		return f.DBName
	}
	return f.Name
}

// DefaultFunction returns the name of the default function, or "" when the
// default is absent or a literal.
func (f *Field) DefaultFunction() string {
	if f.Default == nil || f.Default.Kind != DefaultFunction {
		return ""
	}
	return f.Default.Function
}

// IsImplicitManyToMany reports whether the field is one side of a relation
// that is list-valued and declares no foreign keys.
func (f *Field) IsImplicitManyToMany() bool {
	return f.Kind == KindObject && f.IsList && len(f.RelationFromFields) == 0
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	out.RelationFromFields = append([]string(nil), f.RelationFromFields...)
	out.RelationToFields = append([]string(nil), f.RelationToFields...)
	if f.Default != nil {
		d := f.Default.clone()
		out.Default = &d
	}
	if f.NativeType != nil {
		nt := *f.NativeType
		nt.Args = append([]string(nil), f.NativeType.Args...)
		out.NativeType = &nt
	}
	return out
}

// NativeType is a database-specific type attribute such as @db.VarChar(255).
type NativeType struct {
	Name string
	Args []string
}

// Arg returns the i-th argument or "" when absent.
func (n *NativeType) Arg(i int) string {
	if n == nil || i >= len(n.Args) {
		return ""
	}
	return n.Args[i]
}
