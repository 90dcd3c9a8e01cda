// Package config defines the 'keyview' extension of the Grove configuration file.
package config

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

import (
	"encoding/json"

	coreconfig "github.com/grovetools/core/config"
	"github.com/invopop/jsonschema"
)

// ExtensionName is the configuration section keyview reads.
const ExtensionName = "keyview"

// Config defines the structure for the 'keyview' section in grove.yml / grove.toml.
type Config struct {
	PackagesPath    string   `yaml:"packages_path,omitempty" toml:"packages_path,omitempty" jsonschema:"description=Editor Packages directory to scan. Defaults to the platform's standard location."`
	IgnoredPackages []string `yaml:"ignored_packages,omitempty" toml:"ignored_packages,omitempty" jsonschema:"description=Package names excluded from scans in addition to the editor's own ignored_packages."`
	Platform        string   `yaml:"platform,omitempty" toml:"platform,omitempty" jsonschema:"description=Keymap platform to read (osx/linux/windows). Defaults to the host."`
	Editor          string   `yaml:"editor,omitempty" toml:"editor,omitempty" jsonschema:"description=Command used to open keymap files. Defaults to $VISUAL or $EDITOR."`
	ReadPreferences *bool    `yaml:"read_preferences,omitempty" toml:"read_preferences,omitempty" jsonschema:"description=Also honour ignored_packages from User/Preferences.sublime-settings (default true)."`
}

// ShouldReadPreferences reports whether the editor preferences should be consulted.
func (c Config) ShouldReadPreferences() bool {
	return c.ReadPreferences == nil || *c.ReadPreferences
}

// FromCore extracts the keyview extension from a loaded Grove config. A nil config or a
// missing section yields the zero Config.
func FromCore(cfg *coreconfig.Config) Config {
	var ext Config
	if cfg != nil {
		_ = cfg.UnmarshalExtension(ExtensionName, &ext)
	}
	return ext
}

// Load reads the default Grove configuration and returns its keyview extension.
// A missing or unreadable config file is treated as empty.
func Load() Config {
	cfg, err := coreconfig.LoadDefault()
	if err != nil {
		cfg = &coreconfig.Config{}
	}
	return FromCore(cfg)
}

// Schema returns the JSON schema of the keyview extension.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Keyview Configuration"
	schema.Description = "Schema for the 'keyview' extension in grove.yml."

	// Make all fields optional - Grove configs should not require any fields
	schema.Required = nil

	return schema
}

// SchemaJSON returns the indented JSON encoding of Schema.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
