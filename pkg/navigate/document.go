package navigate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrNotFound is returned by Locate when the text does not occur in the document.
var ErrNotFound = errors.New("text not found")

// Location is a 1-based line and column plus the byte offset of a match.
type Location struct {
	Line   int
	Column int
	Offset int
}

// FileDocument is a Document read from disk on a background goroutine.
type FileDocument struct {
	path    string
	loading atomic.Bool

	mu      sync.RWMutex
	content string
	err     error
}

// Open starts loading path and returns immediately.
func Open(path string) *FileDocument {
	doc := &FileDocument{path: path}
	doc.loading.Store(true)

	go func() {
		data, err := os.ReadFile(path)
		doc.mu.Lock()
		doc.content = string(data)
		doc.err = err
		doc.mu.Unlock()
		doc.loading.Store(false)
	}()

	return doc
}

// Path returns the file the document was opened from.
func (d *FileDocument) Path() string {
	return d.path
}

// Loading reports whether the file is still being read.
func (d *FileDocument) Loading() bool {
	return d.loading.Load()
}

// Err returns the read error once loading has finished.
func (d *FileDocument) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

// Find returns the location of the first literal occurrence of text. It reports
// false while the document is loading.
func (d *FileDocument) Find(text string) (Location, bool) {
	if d.Loading() || text == "" {
		return Location{}, false
	}

	d.mu.RLock()
	content := d.content
	d.mu.RUnlock()

	return findLocation(content, text)
}

func findLocation(content, text string) (Location, bool) {
	offset := strings.Index(content, text)
	if offset < 0 {
		return Location{}, false
	}

	before := content[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndex(before, "\n") + 1

	return Location{
		Line:   line,
		Column: len([]rune(before[lineStart:])) + 1,
		Offset: offset,
	}, true
}

// Locate opens path, waits for it to load, and returns where text first occurs.
func Locate(ctx context.Context, path, text string, config PollConfig) (Location, error) {
	doc := Open(path)
	if err := WaitUntilLoaded(ctx, doc, config); err != nil {
		return Location{}, err
	}
	if err := doc.Err(); err != nil {
		return Location{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	loc, ok := doc.Find(text)
	if !ok {
		return Location{}, fmt.Errorf("%w: %q in %s", ErrNotFound, text, path)
	}
	return loc, nil
}
