package keymap

import (
	"fmt"
	"path/filepath"

	"github.com/grovetools/keyview/pkg/jsonc"
)

// PreferencesFile is the user preferences file that lists disabled packages.
const PreferencesFile = "Preferences.sublime-settings"

// preferences is the subset of the editor preferences keyview reads.
type preferences struct {
	IgnoredPackages []string `json:"ignored_packages"`
}

// PreferencesPath returns the location of the user preferences file under root.
func PreferencesPath(root string) string {
	return filepath.Join(root, "User", PreferencesFile)
}

// ReadIgnoredPackages returns the "ignored_packages" list from the user preferences
// under root. A missing preferences file is not an error.
func ReadIgnoredPackages(fsys FileSystem, root string) ([]string, error) {
	path := PreferencesPath(root)
	if !fsys.Exists(path) {
		return nil, nil
	}

	content, err := fsys.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var prefs preferences
	if err := jsonc.ParseInto(content, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return prefs.IgnoredPackages, nil
}
