package validator

import (
	"fmt"

	"github.com/ridoystarlord/drizzlegen/generator"
	"github.com/ridoystarlord/drizzlegen/schema"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Type     string `json:"type"`
	Model    string `json:"model,omitempty"`
	Field    string `json:"field,omitempty"`
	Index    string `json:"index,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning", "info"
}

// ValidationResult contains all validation results
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
	Info     []ValidationError `json:"info"`
}

func (r *ValidationResult) add(severity string, e ValidationError) {
	e.Severity = severity
	switch severity {
	case "error":
		r.Errors = append(r.Errors, e)
	case "warning":
		r.Warnings = append(r.Warnings, e)
	default:
		r.Info = append(r.Info, e)
	}
}

// maxIdentifierLength is the PostgreSQL limit, the strictest of the supported dialects.
const maxIdentifierLength = 63

// SchemaValidator checks a DMMF document for inconsistencies that would make
// generation fail or produce a surprising schema.
type SchemaValidator struct {
	models map[string]*schema.Model
	enums  map[string]*schema.Enum
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{}
}

// ValidateDocument validates models, enums and relations of doc
func (v *SchemaValidator) ValidateDocument(doc *schema.Document, provider string) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
		Info:     []ValidationError{},
	}
	v.models = map[string]*schema.Model{}
	v.enums = map[string]*schema.Enum{}

	if provider == "" {
		provider = doc.Provider()
	}
	var kind generator.DialectKind
	if d, err := generator.ResolveDialect(provider); err != nil {
		result.add("error", ValidationError{Type: "provider", Message: err.Error()})
	} else {
		kind = d.Kind()
	}

	for i := range doc.Datamodel.Enums {
		e := &doc.Datamodel.Enums[i]
		if _, dup := v.enums[e.Name]; dup {
			result.add("error", ValidationError{Type: "duplicate_enum", Message: fmt.Sprintf("Enum '%s' is declared twice", e.Name)})
			continue
		}
		v.enums[e.Name] = e
		if len(e.Values) == 0 {
			result.add("warning", ValidationError{Type: "empty_enum", Message: fmt.Sprintf("Enum '%s' has no values and will be skipped", e.Name)})
		}
	}

	for i := range doc.Datamodel.Models {
		m := &doc.Datamodel.Models[i]
		if m.Name == "" {
			result.add("error", ValidationError{Type: "model_name", Message: "model name cannot be empty"})
			continue
		}
		if _, dup := v.models[m.Name]; dup {
			result.add("error", ValidationError{Type: "duplicate_model", Model: m.Name, Message: fmt.Sprintf("Model '%s' is declared twice", m.Name)})
			continue
		}
		v.models[m.Name] = m
	}

	for i := range doc.Datamodel.Models {
		v.validateModel(&doc.Datamodel.Models[i], kind, result)
	}
	v.validateRelationPairs(doc.Datamodel.Models, result)

	result.Valid = len(result.Errors) == 0
	return result
}

// validateModel validates a single model
func (v *SchemaValidator) validateModel(m *schema.Model, kind generator.DialectKind, result *ValidationResult) {
	if len(m.TableName()) > maxIdentifierLength {
		result.add("warning", ValidationError{
			Type:    "table_name",
			Model:   m.Name,
			Message: fmt.Sprintf("Table name '%s' is longer than %d characters", m.TableName(), maxIdentifierLength),
		})
	}
	if len(m.Fields) == 0 {
		result.add("error", ValidationError{Type: "no_fields", Model: m.Name, Message: fmt.Sprintf("Model '%s' must have at least one field", m.Name)})
		return
	}

	seen := map[string]bool{}
	_, hasID := m.IDField()
	for i := range m.Fields {
		f := &m.Fields[i]
		if seen[f.Name] {
			result.add("error", ValidationError{Type: "duplicate_field", Model: m.Name, Field: f.Name, Message: fmt.Sprintf("Duplicate field '%s' in model '%s'", f.Name, m.Name)})
			continue
		}
		seen[f.Name] = true
		v.validateField(m, f, kind, result)
	}

	if !hasID && m.PrimaryKey == nil {
		result.add("warning", ValidationError{Type: "no_primary_key", Model: m.Name, Message: fmt.Sprintf("Model '%s' has no primary key defined", m.Name)})
	}
	if m.PrimaryKey != nil {
		v.validateFieldList(m, "primary_key", m.PrimaryKey.Name, m.PrimaryKey.Fields, result)
	}
	for _, idx := range m.UniqueIndexes {
		if len(idx.Fields) == 0 {
			result.add("error", ValidationError{Type: "unique_index", Model: m.Name, Index: idx.Name, Message: "unique index has no fields"})
			continue
		}
		v.validateFieldList(m, "unique_index", idx.Name, idx.Fields, result)
	}
}

func (v *SchemaValidator) validateField(m *schema.Model, f *schema.Field, kind generator.DialectKind, result *ValidationResult) {
	switch f.Kind {
	case schema.KindEnum:
		if _, ok := v.enums[f.Type]; !ok {
			result.add("error", ValidationError{Type: "unknown_enum", Model: m.Name, Field: f.Name, Message: fmt.Sprintf("Enum '%s' does not exist", f.Type)})
		}
	case schema.KindScalar:
		if f.Type == schema.TypeBytes && kind != "" && kind != generator.SQLite {
			result.add("error", ValidationError{Type: "unsupported_type", Model: m.Name, Field: f.Name, Message: "Bytes columns are only supported for sqlite"})
		}
		if f.IsList && kind != "" && kind != generator.Postgres {
			result.add("warning", ValidationError{Type: "scalar_list", Model: m.Name, Field: f.Name, Message: "Scalar lists are only supported on postgres; the column will be dropped"})
		}
	case schema.KindObject:
		v.validateRelation(m, f, kind, result)
	default:
		result.add("info", ValidationError{Type: "unsupported_field", Model: m.Name, Field: f.Name, Message: fmt.Sprintf("Field kind '%s' is ignored", f.Kind)})
	}
}

func (v *SchemaValidator) validateRelation(m *schema.Model, f *schema.Field, kind generator.DialectKind, result *ValidationResult) {
	target, ok := v.models[f.Type]
	if !ok {
		result.add("error", ValidationError{Type: "unknown_model", Model: m.Name, Field: f.Name, Message: fmt.Sprintf("Relation target '%s' does not exist", f.Type)})
		return
	}
	if f.Variant() != schema.OwningRelation {
		return
	}

	switch f.RelationOnDelete {
	case "", schema.Cascade, schema.SetNull, schema.Restrict, schema.NoAction:
	case schema.SetDefault:
		if kind == generator.MySQL {
			result.add("error", ValidationError{Type: "on_delete", Model: m.Name, Field: f.Name, Message: "onDelete: SetDefault is not supported on mysql"})
		}
	default:
		result.add("error", ValidationError{Type: "on_delete", Model: m.Name, Field: f.Name, Message: fmt.Sprintf("Unknown onDelete action '%s'", f.RelationOnDelete)})
	}

	if len(f.RelationFromFields) != len(f.RelationToFields) {
		result.add("error", ValidationError{Type: "foreign_key", Model: m.Name, Field: f.Name, Message: "relation fields and references must have the same length"})
		return
	}
	for _, name := range f.RelationFromFields {
		if _, ok := m.Field(name); !ok {
			result.add("error", ValidationError{Type: "foreign_key", Model: m.Name, Field: f.Name, Message: fmt.Sprintf("Foreign key field '%s' does not exist", name)})
		}
	}
	for _, name := range f.RelationToFields {
		if _, ok := target.Field(name); !ok {
			result.add("error", ValidationError{Type: "foreign_key", Model: m.Name, Field: f.Name, Message: fmt.Sprintf("Referenced field '%s.%s' does not exist", target.Name, name)})
		}
	}
}

func (v *SchemaValidator) validateFieldList(m *schema.Model, kind, name string, fields []string, result *ValidationResult) {
	for _, field := range fields {
		if _, ok := m.Field(field); !ok {
			result.add("error", ValidationError{Type: kind, Model: m.Name, Index: name, Field: field, Message: fmt.Sprintf("Field '%s' does not exist", field)})
		}
	}
}

// validateRelationPairs checks that every relation name is shared by exactly two fields
func (v *SchemaValidator) validateRelationPairs(models []schema.Model, result *ValidationResult) {
	counts := map[string]int{}
	var order []string
	for i := range models {
		for j := range models[i].Fields {
			f := &models[i].Fields[j]
			if f.Kind != schema.KindObject || f.RelationName == "" {
				continue
			}
			if counts[f.RelationName] == 0 {
				order = append(order, f.RelationName)
			}
			counts[f.RelationName]++
		}
	}
	for _, name := range order {
		if counts[name] != 2 {
			result.add("warning", ValidationError{
				Type:    "relation_pair",
				Message: fmt.Sprintf("Relation '%s' has %d fields instead of 2", name, counts[name]),
			})
		}
	}
}
