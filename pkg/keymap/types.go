// Package keymap discovers the keybindings that installed editor packages ship in
// their platform-specific keymap files and flattens them into one ordered list.
package keymap

// KeyBinding is a single keymap entry tagged with the package that defines it.
// Package and Command are never empty and Keys always holds at least one chord.
type KeyBinding struct {
	Keys    []string       `json:"keys" yaml:"keys" toml:"keys"`          // e.g. ["ctrl+k", "ctrl+b"]
	Package string         `json:"package" yaml:"package" toml:"package"` // directory name under the packages root
	Command string         `json:"command" yaml:"command" toml:"command"` // e.g. "toggle_side_bar"
	Args    map[string]any `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
}

// HasArgs reports whether the binding passes arguments to its command.
func (b KeyBinding) HasArgs() bool {
	return b.Args != nil
}

// PackageEntry is a package directory that contains a keymap for the scanned platform.
type PackageEntry struct {
	Name           string `json:"name" yaml:"name" toml:"name"`
	KeymapFilePath string `json:"keymap_file,omitempty" yaml:"keymap_file,omitempty" toml:"keymap_file,omitempty"`
}

// HasKeymap reports whether a keymap file was found for the package.
func (p PackageEntry) HasKeymap() bool {
	return p.KeymapFilePath != ""
}

// IgnoreSet holds package names excluded from a scan.
type IgnoreSet map[string]struct{}

// NewIgnoreSet builds an IgnoreSet from one or more name lists. Empty names are skipped.
func NewIgnoreSet(lists ...[]string) IgnoreSet {
	s := make(IgnoreSet)
	for _, names := range lists {
		for _, name := range names {
			if name != "" {
				s[name] = struct{}{}
			}
		}
	}
	return s
}

// Contains reports whether name is ignored. A nil set ignores nothing.
func (s IgnoreSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Conflict represents one key sequence bound to different commands by
// more than one package.
type Conflict struct {
	Keys     string       // Key sequence joined with ", "
	Bindings []KeyBinding // All bindings using the sequence, in scan order
}

// Packages returns the distinct package names involved in the conflict, in order.
func (c Conflict) Packages() []string {
	seen := make(map[string]bool)
	var names []string
	for _, b := range c.Bindings {
		if !seen[b.Package] {
			seen[b.Package] = true
			names = append(names, b.Package)
		}
	}
	return names
}
