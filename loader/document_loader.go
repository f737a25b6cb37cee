package loader

import (
	"fmt"
	"os"

	"github.com/ridoystarlord/drizzlegen/schema"
	"gopkg.in/yaml.v3"
)

// LoadDocument reads a DMMF document. JSON and YAML files are both accepted.
func LoadDocument(filename string) (*schema.Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading dmmf file: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}

// ParseDocument decodes a DMMF document from JSON or YAML bytes.
func ParseDocument(data []byte) (*schema.Document, error) {
	var doc schema.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshalling dmmf: %w", err)
	}
	if len(doc.Datamodel.Models) == 0 && len(doc.Datamodel.Enums) == 0 {
		return nil, fmt.Errorf("dmmf document has no models or enums")
	}
	for i := range doc.Datamodel.Models {
		m := &doc.Datamodel.Models[i]
		if m.PrimaryKey != nil && len(m.PrimaryKey.Fields) == 0 {
			m.PrimaryKey = nil
		}
	}
	return &doc, nil
}
