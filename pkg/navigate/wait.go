// Package navigate opens keymap files and locates text inside them once they have
// finished loading.
package navigate

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotLoaded is returned when a document is still loading after every retry.
var ErrNotLoaded = errors.New("document did not finish loading")

// PollConfig holds configuration for waiting on a document to load.
type PollConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Timeout        time.Duration
}

// DefaultPollConfig returns the default poll configuration.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		MaxRetries:     50,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     100 * time.Millisecond,
		Timeout:        5 * time.Second,
	}
}

// Document is a file opened for viewing that may still be loading.
type Document interface {
	// Path returns the file the document was opened from.
	Path() string
	// Loading reports whether the content is still being read.
	Loading() bool
	// Find returns the location of the first literal occurrence of text.
	Find(text string) (Location, bool)
}

// WaitUntilLoaded polls doc until it reports it has loaded, the retries are used up,
// the timeout elapses or ctx is cancelled.
func WaitUntilLoaded(ctx context.Context, doc Document, config PollConfig) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	backoff := config.InitialBackoff
	attempt := 0

	for {
		if !doc.Loading() {
			return nil
		}

		attempt++
		if attempt > config.MaxRetries {
			return fmt.Errorf("%w: %s after %d attempts", ErrNotLoaded, doc.Path(), config.MaxRetries)
		}

		select {
		case <-timeoutCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %s after %v", ErrNotLoaded, doc.Path(), config.Timeout)
		case <-time.After(backoff):
		}

		// Exponential backoff with cap
		backoff = backoff * 2
		if backoff > config.MaxBackoff {
			backoff = config.MaxBackoff
		}
	}
}
