package settings

import "context"

// Watcher observes a source for changes and emits raw bytes on a channel.
// Implementations must emit the current value immediately upon Watch()
// being called so initial settings load without an external change.
type Watcher interface {
	// Watch begins observing the source and returns a channel that emits
	// raw bytes when changes occur. The channel is closed when the
	// context is canceled or an unrecoverable error occurs.
	Watch(ctx context.Context) (<-chan []byte, error)
}

// ChannelWatcher adapts a caller-owned feed to the Watcher interface.
// Push data with Send; tests and programmatic sources use it in place of a
// file.
type ChannelWatcher struct {
	feed chan []byte
}

// NewChannelWatcher creates a ChannelWatcher with the given buffer size.
func NewChannelWatcher(buffer int) *ChannelWatcher {
	return &ChannelWatcher{feed: make(chan []byte, buffer)}
}

// Send pushes raw bytes to the watcher. It blocks when the buffer is full.
func (w *ChannelWatcher) Send(data []byte) {
	w.feed <- data
}

// Close closes the feed; the watch channel closes after draining.
func (w *ChannelWatcher) Close() {
	close(w.feed)
}

// Watch forwards the feed until the context is canceled or the feed is
// closed.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case data, ok := <-w.feed:
				if !ok {
					return
				}
				select {
				case out <- data:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
