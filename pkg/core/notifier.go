package core

import "sync"

// Notifier broadcasts value-less notifications to registered listeners.
// It is the value-free counterpart of [Observable]: every Notify reaches
// every listener, there is no equality gate. Notifier implements
// [Listenable].
type Notifier struct {
	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		listeners: make(map[int]func()),
	}
}

// AddListener registers a listener and returns its deregistration function.
func (n *Notifier) AddListener(listener func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = listener
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Notify invokes every registered listener. All listeners run before Notify
// returns; order is unspecified.
func (n *Notifier) Notify() {
	n.mu.Lock()
	listeners := make([]func(), 0, len(n.listeners))
	for _, listener := range n.listeners {
		listeners = append(listeners, listener)
	}
	n.mu.Unlock()

	for _, listener := range listeners {
		listener()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
