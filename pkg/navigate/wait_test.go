package navigate

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocument finishes loading after a fixed number of Loading calls.
type fakeDocument struct {
	remaining atomic.Int32
	calls     atomic.Int32
}

func newFakeDocument(loadingPolls int32) *fakeDocument {
	d := &fakeDocument{}
	d.remaining.Store(loadingPolls)
	return d
}

func (d *fakeDocument) Path() string { return "fake.sublime-keymap" }

func (d *fakeDocument) Loading() bool {
	d.calls.Add(1)
	return d.remaining.Add(-1) >= 0
}

func (d *fakeDocument) Find(string) (Location, bool) { return Location{}, false }

func fastConfig() PollConfig {
	return PollConfig{
		MaxRetries:     5,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		Timeout:        time.Second,
	}
}

func TestDefaultPollConfig(t *testing.T) {
	config := DefaultPollConfig()
	assert.Equal(t, 50, config.MaxRetries)
	assert.Equal(t, 10*time.Millisecond, config.InitialBackoff)
	assert.Equal(t, 100*time.Millisecond, config.MaxBackoff)
	assert.Equal(t, 5*time.Second, config.Timeout)
}

func TestWaitUntilLoaded(t *testing.T) {
	t.Run("AlreadyLoaded", func(t *testing.T) {
		doc := newFakeDocument(0)
		require.NoError(t, WaitUntilLoaded(context.Background(), doc, fastConfig()))
		assert.Equal(t, int32(1), doc.calls.Load())
	})

	t.Run("LoadsAfterRetries", func(t *testing.T) {
		doc := newFakeDocument(3)
		require.NoError(t, WaitUntilLoaded(context.Background(), doc, fastConfig()))
		assert.Equal(t, int32(4), doc.calls.Load())
	})

	t.Run("RetriesExhausted", func(t *testing.T) {
		doc := newFakeDocument(100)
		err := WaitUntilLoaded(context.Background(), doc, fastConfig())
		assert.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("Timeout", func(t *testing.T) {
		doc := newFakeDocument(100)
		config := PollConfig{
			MaxRetries:     1000,
			InitialBackoff: 5 * time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
			Timeout:        20 * time.Millisecond,
		}
		err := WaitUntilLoaded(context.Background(), doc, config)
		assert.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("Cancelled", func(t *testing.T) {
		doc := newFakeDocument(100)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		config := fastConfig()
		config.MaxRetries = 1000
		config.InitialBackoff = time.Second
		err := WaitUntilLoaded(ctx, doc, config)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
