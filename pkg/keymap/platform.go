package keymap

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Platform identifies the host operating system using the editor's own names.
type Platform string

const (
	PlatformMacOS   Platform = "osx"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// ErrUnsupportedPlatform is returned for platforms without a keymap file suffix.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// platformSuffixes maps each platform to the token used in keymap file names.
var platformSuffixes = map[Platform]string{
	PlatformMacOS:   "OSX",
	PlatformLinux:   "Linux",
	PlatformWindows: "Windows",
}

// String returns the string representation of the platform.
func (p Platform) String() string {
	return string(p)
}

// Suffix returns the token used in the platform's keymap file name.
func (p Platform) Suffix() (string, error) {
	suffix, ok := platformSuffixes[p]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, string(p))
	}
	return suffix, nil
}

// KeymapFileName returns the keymap file name a package ships for the platform,
// e.g. "Default (Linux).sublime-keymap".
func (p Platform) KeymapFileName() (string, error) {
	suffix, err := p.Suffix()
	if err != nil {
		return "", err
	}
	return "Default (" + suffix + ").sublime-keymap", nil
}

// ParsePlatform converts a user-supplied platform name. Accepted names are the
// editor's ("osx", "linux", "windows"), the file suffixes, and Go's GOOS values.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "osx", "macos", "darwin", "mac":
		return PlatformMacOS, nil
	case "linux":
		return PlatformLinux, nil
	case "windows", "win":
		return PlatformWindows, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, name)
	}
}

// PlatformFromGOOS maps a Go GOOS value to a Platform.
func PlatformFromGOOS(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return PlatformMacOS, nil
	case "linux":
		return PlatformLinux, nil
	case "windows":
		return PlatformWindows, nil
	default:
		return "", fmt.Errorf("%w: GOOS %q", ErrUnsupportedPlatform, goos)
	}
}

// HostPlatform returns the platform keyview is running on.
func HostPlatform() (Platform, error) {
	return PlatformFromGOOS(runtime.GOOS)
}

// ResolveFilePath composes the path of a package's keymap file. It does not touch
// the file system.
func ResolveFilePath(root, packageName string, platform Platform) (string, error) {
	fileName, err := platform.KeymapFileName()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, packageName, fileName), nil
}

// DefaultPackagesPath returns the conventional Packages directory of the editor for
// the platform. appData is only consulted on Windows.
func DefaultPackagesPath(platform Platform, home, appData string) (string, error) {
	switch platform {
	case PlatformMacOS:
		return filepath.Join(home, "Library", "Application Support", "Sublime Text", "Packages"), nil
	case PlatformLinux:
		return filepath.Join(home, ".config", "sublime-text", "Packages"), nil
	case PlatformWindows:
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Sublime Text", "Packages"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, string(platform))
	}
}
