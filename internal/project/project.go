package project

import (
	"slices"
	"strings"

	"github.com/ruminaider/springinit/internal/catalog"
	"github.com/ruminaider/springinit/internal/prefs"
)

// Config is the project being configured: the form fields plus the ordered
// set of selected dependency ids.
type Config struct {
	ProjectType       string
	Language          string
	BootVersion       string
	GroupID           string
	ArtifactID        string
	Name              string
	Description       string
	PackageName       string
	Packaging         string
	JavaVersion       string
	ApplicationFormat string

	selected []string
}

// New returns a config with the stock defaults used before any metadata
// has been applied.
func New() *Config {
	c := &Config{
		ProjectType:       "gradle-project",
		Language:          "java",
		GroupID:           "com.example",
		ArtifactID:        "demo",
		Name:              "demo",
		Description:       "Demo project for Spring Boot",
		Packaging:         "jar",
		JavaVersion:       "25",
		ApplicationFormat: "properties",
	}
	c.updatePackageName()
	return c
}

// SetGroupID sets the group id and recomputes the package name.
func (c *Config) SetGroupID(groupID string) {
	c.GroupID = groupID
	c.updatePackageName()
}

// SetArtifactID sets the artifact id, mirrors it into the project name and
// recomputes the package name.
func (c *Config) SetArtifactID(artifactID string) {
	c.ArtifactID = artifactID
	c.Name = artifactID
	c.updatePackageName()
}

func (c *Config) updatePackageName() {
	c.PackageName = c.GroupID + "." + c.ArtifactID
}

// ToggleDependency adds id when absent and removes it when present.
func (c *Config) ToggleDependency(id string) {
	if i := slices.Index(c.selected, id); i >= 0 {
		c.selected = slices.Delete(c.selected, i, i+1)
		return
	}
	c.selected = append(c.selected, id)
}

// Toggle implements picker.Selection.
func (c *Config) Toggle(id string) { c.ToggleDependency(id) }

// IsSelected implements picker.Selection.
func (c *Config) IsSelected(id string) bool {
	return slices.Contains(c.selected, id)
}

// SelectedCount returns the number of selected dependencies.
func (c *Config) SelectedCount() int {
	return len(c.selected)
}

// SelectedDependencies returns a copy of the selected ids in selection order.
func (c *Config) SelectedDependencies() []string {
	return slices.Clone(c.selected)
}

// ClearDependencies deselects everything.
func (c *Config) ClearDependencies() {
	c.selected = nil
}

// ApplyDefaults copies the metadata defaults into the config.
func (c *Config) ApplyDefaults(m catalog.Metadata) {
	setIf(&c.ProjectType, m.Type.DefaultOrFirst())
	setIf(&c.Language, m.Language.DefaultOrFirst())
	setIf(&c.BootVersion, CleanBootVersion(m.BootVersion.DefaultOrFirst()))
	setIf(&c.Packaging, m.Packaging.DefaultOrFirst())
	setIf(&c.JavaVersion, m.JavaVersion.DefaultOrFirst())
	setIf(&c.ApplicationFormat, m.ApplicationFormat.DefaultOrFirst())
	setIf(&c.GroupID, m.GroupID.DefaultOrEmpty())
	setIf(&c.ArtifactID, m.ArtifactID.DefaultOrEmpty())
	setIf(&c.Name, m.Name.DefaultOrEmpty())
	setIf(&c.Description, m.Description.DefaultOrEmpty())
	c.updatePackageName()
	setIf(&c.PackageName, m.PackageName.DefaultOrEmpty())
}

// ApplyPreferences overlays the user's last-used values. Empty values leave
// the current setting alone.
func (c *Config) ApplyPreferences(p prefs.Preferences) {
	setIf(&c.ProjectType, p.LastProjectType)
	setIf(&c.Language, p.LastLanguage)
	setIf(&c.JavaVersion, p.LastJavaVersion)
	setIf(&c.Packaging, p.LastPackaging)
	if p.LastGroupID != "" {
		c.SetGroupID(p.LastGroupID)
	}
}

// Remember writes the config's last-used values back into p.
func (c *Config) Remember(p *prefs.Preferences) {
	p.LastProjectType = c.ProjectType
	p.LastLanguage = c.Language
	p.LastJavaVersion = c.JavaVersion
	p.LastGroupID = c.GroupID
	p.LastPackaging = c.Packaging
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// CleanBootVersion converts legacy version suffixes: ".RELEASE" is dropped
// and ".BUILD-SNAPSHOT" becomes "-SNAPSHOT".
func CleanBootVersion(v string) string {
	v = strings.ReplaceAll(v, ".RELEASE", "")
	return strings.ReplaceAll(v, ".BUILD-SNAPSHOT", "-SNAPSHOT")
}
