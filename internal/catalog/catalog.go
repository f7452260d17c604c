package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// Dependency is a single selectable entry in the catalog.
type Dependency struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Category groups dependencies under a heading. Values keep catalog order.
type Category struct {
	Name   string       `json:"name"`
	Values []Dependency `json:"values"`
}

// SelectOption is one choice of a single-select field.
type SelectOption struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// SelectField is a single-select field with an optional default.
type SelectField struct {
	Type    string         `json:"type"`
	Default string         `json:"default,omitempty"`
	Values  []SelectOption `json:"values"`
}

// DefaultOrFirst returns the default id, the first value's id when there is
// no default, or "" when the field has neither.
func (f *SelectField) DefaultOrFirst() string {
	if f == nil {
		return ""
	}
	if f.Default != "" {
		return f.Default
	}
	if len(f.Values) > 0 {
		return f.Values[0].ID
	}
	return ""
}

// TextField is a free-text field with an optional default.
type TextField struct {
	Type    string `json:"type"`
	Default string `json:"default,omitempty"`
}

// DefaultOrEmpty returns the default value or "".
func (f *TextField) DefaultOrEmpty() string {
	if f == nil {
		return ""
	}
	return f.Default
}

// DependencyField is the hierarchical dependency section of the metadata.
type DependencyField struct {
	Type   string     `json:"type"`
	Values []Category `json:"values"`
}

// Metadata is the project metadata document the host loads before showing
// the configuration screen.
type Metadata struct {
	Type              *SelectField     `json:"type,omitempty"`
	Packaging         *SelectField     `json:"packaging,omitempty"`
	JavaVersion       *SelectField     `json:"javaVersion,omitempty"`
	Language          *SelectField     `json:"language,omitempty"`
	BootVersion       *SelectField     `json:"bootVersion,omitempty"`
	GroupID           *TextField       `json:"groupId,omitempty"`
	ArtifactID        *TextField       `json:"artifactId,omitempty"`
	Version           *TextField       `json:"version,omitempty"`
	Name              *TextField       `json:"name,omitempty"`
	Description       *TextField       `json:"description,omitempty"`
	PackageName       *TextField       `json:"packageName,omitempty"`
	Dependencies      *DependencyField `json:"dependencies,omitempty"`
	ApplicationFormat *SelectField     `json:"applicationFormat,omitempty"`
}

// Parse decodes a metadata document. Hand-edited documents may carry //
// and /* */ comments and trailing commas.
func Parse(data []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return Metadata{}, fmt.Errorf("parsing metadata: %w", err)
	}
	return m, nil
}

// Load reads and decodes a metadata document from path.
func Load(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("reading metadata: %w", err)
	}
	return Parse(data)
}

// Categories returns the dependency catalog, or nil when the document has
// no dependency section.
func (m Metadata) Categories() []Category {
	if m.Dependencies == nil {
		return nil
	}
	return m.Dependencies.Values
}

// ApplicationFormatOrDefault returns the application format field, falling
// back to a properties/yaml choice when the metadata omits it.
func (m Metadata) ApplicationFormatOrDefault() *SelectField {
	if m.ApplicationFormat != nil {
		return m.ApplicationFormat
	}
	return &SelectField{
		Type:    "single-select",
		Default: "properties",
		Values: []SelectOption{
			{ID: "properties", Name: "Properties"},
			{ID: "yaml", Name: "YAML"},
		},
	}
}

// Lookup finds a dependency by id across all categories.
func (m Metadata) Lookup(id string) (Dependency, bool) {
	for _, c := range m.Categories() {
		for _, d := range c.Values {
			if d.ID == id {
				return d, true
			}
		}
	}
	return Dependency{}, false
}

// DisplayName returns the option's name (or id when unnamed) with legacy
// version suffixes cleaned up for display.
func DisplayName(o SelectOption) string {
	name := o.Name
	if name == "" {
		name = o.ID
	}
	name = strings.ReplaceAll(name, ".RELEASE", "")
	return strings.ReplaceAll(name, ".BUILD-SNAPSHOT", " (SNAPSHOT)")
}
