package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/keyview/pkg/config"
	"github.com/grovetools/keyview/pkg/keymap"
	"github.com/grovetools/keyview/pkg/navigate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// flagValues are the command-line overrides for the keyview config extension.
type flagValues struct {
	packagesPath  string
	ignore        []string
	platform      string
	editor        string
	noPreferences bool
}

// environment carries the host details settings resolution depends on.
type environment struct {
	home    string
	appData string
	fs      keymap.FileSystem
}

// settings is the fully resolved input of one scan.
type settings struct {
	root     string
	ignore   keymap.IgnoreSet
	platform keymap.Platform
	editor   string
}

// keymapPath returns the keymap file of a package under the resolved root.
func (s settings) keymapPath(packageName string) (string, error) {
	return keymap.ResolveFilePath(s.root, packageName, s.platform)
}

// resolveSettings merges flags over the config extension. Platform and root
// failures are returned; unreadable editor preferences are only logged.
func resolveSettings(ext config.Config, f flagValues, env environment, logger *logrus.Entry) (settings, error) {
	var s settings

	platformName := f.platform
	if platformName == "" {
		platformName = ext.Platform
	}

	var err error
	if platformName != "" {
		s.platform, err = keymap.ParsePlatform(platformName)
	} else {
		s.platform, err = keymap.HostPlatform()
	}
	if err != nil {
		return settings{}, fmt.Errorf("failed to determine platform: %w", err)
	}

	s.root = f.packagesPath
	if s.root == "" {
		s.root = ext.PackagesPath
	}
	if s.root == "" {
		if env.home == "" {
			return settings{}, fmt.Errorf("no packages path configured and home directory is unknown")
		}
		s.root, err = keymap.DefaultPackagesPath(s.platform, env.home, env.appData)
		if err != nil {
			return settings{}, err
		}
	}

	var prefsIgnored []string
	if !f.noPreferences && ext.ShouldReadPreferences() && env.fs != nil {
		prefsIgnored, err = keymap.ReadIgnoredPackages(env.fs, s.root)
		if err != nil {
			logger.WithField("error", err).Warn("Could not read editor preferences, ignoring them")
			prefsIgnored = nil
		}
	}
	s.ignore = keymap.NewIgnoreSet(ext.IgnoredPackages, prefsIgnored, f.ignore)

	s.editor = f.editor
	if s.editor == "" {
		s.editor = ext.Editor
	}
	if s.editor == "" {
		s.editor = navigate.DefaultEditor()
	}

	logger.WithFields(logrus.Fields{
		"root":     s.root,
		"platform": s.platform,
		"ignored":  len(s.ignore),
	}).Debug("Resolved scan settings")

	return s, nil
}

// loadSettings resolves settings for cmd from the Grove config, the flags and the host.
func loadSettings(cmd *cobra.Command) (settings, *logrus.Logger, error) {
	logger := cli.GetLogger(cmd)
	home, _ := os.UserHomeDir()

	s, err := resolveSettings(config.Load(), flags, environment{
		home:    home,
		appData: os.Getenv("APPDATA"),
		fs:      keymap.OSFileSystem{},
	}, logrus.NewEntry(logger))
	return s, logger, err
}

// newScanner returns a disk scanner logging through logger.
func newScanner(logger *logrus.Logger) *keymap.Scanner {
	return keymap.NewScanner(logger.WithField("component", "keymap"))
}
