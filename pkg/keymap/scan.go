package keymap

import (
	"fmt"
	"path/filepath"

	"github.com/grovetools/core/logging"
	"github.com/grovetools/keyview/pkg/jsonc"
	"github.com/sirupsen/logrus"
)

// Scanner walks a packages root and collects keybindings. It holds no state between
// calls; every Scan returns a fresh slice owned by the caller.
type Scanner struct {
	FS     FileSystem
	Logger *logrus.Entry
}

// NewScanner creates a Scanner that reads from disk and logs through logger.
// A nil logger falls back to the "keymap" component logger.
func NewScanner(logger *logrus.Entry) *Scanner {
	if logger == nil {
		logger = logging.NewLogger("keymap")
	}
	return &Scanner{
		FS:     OSFileSystem{},
		Logger: logger,
	}
}

func (s *Scanner) log() *logrus.Entry {
	if s.Logger == nil {
		s.Logger = logging.NewLogger("keymap")
	}
	return s.Logger
}

func (s *Scanner) fs() FileSystem {
	if s.FS == nil {
		return OSFileSystem{}
	}
	return s.FS
}

// Scan returns every keybinding defined by the non-ignored packages under root, in
// package listing order and then file order. A package whose keymap cannot be read or
// parsed contributes nothing; only an invalid platform or an unlistable root is an error.
func (s *Scanner) Scan(root string, ignore IgnoreSet, platform Platform) ([]KeyBinding, error) {
	packages, err := s.ListPackagesWithKeymap(root, ignore, platform)
	if err != nil {
		return nil, err
	}

	bindings := []KeyBinding{}
	for _, pkg := range packages {
		bindings = append(bindings, s.loadPackage(pkg)...)
	}

	s.log().WithFields(logrus.Fields{
		"root":     root,
		"packages": len(packages),
		"bindings": len(bindings),
	}).Debug("Scanned keymaps")

	return bindings, nil
}

// ListPackagesWithKeymap returns the non-ignored package directories under root that
// contain a keymap file for the platform. Keymap files are not parsed.
func (s *Scanner) ListPackagesWithKeymap(root string, ignore IgnoreSet, platform Platform) ([]PackageEntry, error) {
	fileName, err := platform.KeymapFileName()
	if err != nil {
		return nil, err
	}

	entries, err := s.fs().ListDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages in %s: %w", root, err)
	}

	packages := []PackageEntry{}
	for _, entry := range entries {
		if ignore.Contains(entry.Name) {
			continue
		}
		if !entry.IsDir {
			continue
		}

		keymapFile := filepath.Join(root, entry.Name, fileName)
		if !s.fs().Exists(keymapFile) {
			continue
		}

		packages = append(packages, PackageEntry{
			Name:           entry.Name,
			KeymapFilePath: keymapFile,
		})
	}

	return packages, nil
}

// loadPackage reads and flattens one package's keymap. Failures are logged and
// yield no bindings.
func (s *Scanner) loadPackage(pkg PackageEntry) []KeyBinding {
	logger := s.log().WithFields(logrus.Fields{
		"package": pkg.Name,
		"file":    pkg.KeymapFilePath,
	})

	content, err := s.fs().ReadText(pkg.KeymapFilePath)
	if err != nil {
		logger.WithField("error", err).Debug("Skipping unreadable keymap")
		return nil
	}

	parsed, err := jsonc.Parse(content)
	if err != nil {
		logger.WithField("error", err).Debug("Skipping malformed keymap")
		return nil
	}

	elements, ok := parsed.([]any)
	if !ok {
		logger.Debug("Skipping keymap without a top-level array")
		return nil
	}

	var bindings []KeyBinding
	for i, element := range elements {
		b, ok := newKeyBinding(pkg.Name, element)
		if !ok {
			logger.WithField("index", i).Debug("Dropping keymap entry without command or keys")
			continue
		}
		bindings = append(bindings, b)
	}
	return bindings
}

// newKeyBinding builds a binding from one decoded keymap element. It reports false
// for elements that are not objects, lack a command or keys, or carry malformed
// keys or args.
func newKeyBinding(packageName string, element any) (KeyBinding, bool) {
	obj, ok := element.(map[string]any)
	if !ok {
		return KeyBinding{}, false
	}

	command, _ := obj["command"].(string)
	if command == "" {
		return KeyBinding{}, false
	}

	keys := parseKeys(obj["keys"])
	if len(keys) == 0 {
		return KeyBinding{}, false
	}

	b := KeyBinding{
		Keys:    keys,
		Package: packageName,
		Command: command,
	}

	if raw, present := obj["args"]; present && raw != nil {
		args, ok := raw.(map[string]any)
		if !ok {
			return KeyBinding{}, false
		}
		b.Args = args
	}

	return b, true
}

// parseKeys converts a decoded "keys" value to a chord list. Anything other than an
// array of strings yields nil.
func parseKeys(val any) []string {
	items, ok := val.([]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		keys = append(keys, s)
	}
	return keys
}
