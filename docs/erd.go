package docs

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/drizzlegen/schema"
)

// Mermaid renders an ERD of the models as a markdown document with a mermaid block.
func Mermaid(models []schema.Model) string {
	var content strings.Builder

	content.WriteString("# Database Schema ERD\n\n")
	content.WriteString("```mermaid\nerDiagram\n")

	for _, m := range models {
		content.WriteString(fmt.Sprintf("    %s {\n", entityName(m.TableName())))
		for _, f := range m.Fields {
			if f.Kind != schema.KindScalar && f.Kind != schema.KindEnum {
				continue
			}
			line := fmt.Sprintf("        %s %s", displayType(f), f.ColumnName())
			if key := keyMarker(&m, &f); key != "" {
				line += " " + key
			}
			content.WriteString(line + "\n")
		}
		content.WriteString("    }\n")
	}

	for _, m := range models {
		for _, f := range m.Fields {
			if f.Variant() != schema.OwningRelation {
				continue
			}
			target := tableOf(models, f.Type)
			cardinality := "}o--||"
			if !f.IsRequired {
				cardinality = "}o--o|"
			}
			content.WriteString(fmt.Sprintf("    %s %s %s : \"%s\"\n", entityName(m.TableName()), cardinality, entityName(target), f.Name))
		}
	}

	content.WriteString("```\n")
	return content.String()
}

// PlantUML renders an ERD of the models in PlantUML syntax.
func PlantUML(models []schema.Model) string {
	var content strings.Builder

	content.WriteString("@startuml\n")
	content.WriteString("!theme plain\n")
	content.WriteString("skinparam linetype ortho\n\n")

	for _, m := range models {
		content.WriteString(fmt.Sprintf("entity \"%s\" {\n", m.TableName()))
		for _, f := range m.Fields {
			if f.Kind != schema.KindScalar && f.Kind != schema.KindEnum {
				continue
			}
			line := fmt.Sprintf("  %s : %s", f.ColumnName(), displayType(f))
			if f.IsID || inPrimaryKey(&m, f.Name) {
				line += " <<PK>>"
			}
			if f.IsUnique {
				line += " <<UQ>>"
			}
			if f.IsRequired {
				line += " <<NN>>"
			}
			content.WriteString(line + "\n")
		}
		content.WriteString("}\n\n")
	}

	for _, m := range models {
		for _, f := range m.Fields {
			if f.Variant() == schema.OwningRelation {
				content.WriteString(fmt.Sprintf("\"%s\" ||--o{ \"%s\" : \"%s\"\n", tableOf(models, f.Type), m.TableName(), f.Name))
			}
		}
	}

	content.WriteString("@enduml\n")
	return content.String()
}

// tableOf returns the table name of the named model, or name itself when the
// model is unknown.
func tableOf(models []schema.Model, name string) string {
	for i := range models {
		if models[i].Name == name {
			return models[i].TableName()
		}
	}
	return name
}

func displayType(f schema.Field) string {
	if f.IsList {
		return f.Type + "_list"
	}
	return f.Type
}

func keyMarker(m *schema.Model, f *schema.Field) string {
	switch {
	case f.IsID || inPrimaryKey(m, f.Name):
		return "PK"
	case isForeignKey(m, f.Name):
		return "FK"
	case f.IsUnique:
		return "UK"
	}
	return ""
}

func inPrimaryKey(m *schema.Model, field string) bool {
	if m.PrimaryKey == nil {
		return false
	}
	for _, name := range m.PrimaryKey.Fields {
		if name == field {
			return true
		}
	}
	return false
}

func isForeignKey(m *schema.Model, field string) bool {
	for _, f := range m.Fields {
		for _, name := range f.RelationFromFields {
			if name == field {
				return true
			}
		}
	}
	return false
}

// entityName strips characters mermaid does not accept in entity names.
func entityName(name string) string {
	return strings.TrimLeft(name, "_")
}
