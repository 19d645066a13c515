package core

import (
	"reflect"
	"sync"
)

// Observable is a standalone reactive cell holding a value, with a registry
// of listeners that are notified synchronously on change. It is independent
// of any element tree: external code owns it, mutates it directly, and it
// fans out to whatever has registered. Use it to coordinate unrelated
// subtrees or to hold state that must survive tree teardown.
//
// Observable is thread-safe. Listeners are snapshotted under the lock and
// invoked outside it, but always before Set or Notify returns, so a single
// change fans out completely before control returns to the writer.
// Iteration order across listeners is unspecified.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	equals    func(a, b T) bool
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable with the given initial value.
// Change detection uses reflect.DeepEqual; use NewObservableWithEquality
// for a custom comparison.
func NewObservable[T any](initial T) *Observable[T] {
	return NewObservableWithEquality(initial, func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	})
}

// NewObservableWithEquality creates an observable with a custom equality
// function. Set is a no-op when equals reports the new value equal to the
// current one.
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		equals:    equals,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores a new value and notifies all listeners. Setting a value equal
// to the current one is a complete no-op: no store, no notification.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals != nil && o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := o.snapshotLocked()
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(value)
	}
}

// Notify re-broadcasts the current value to all listeners unconditionally,
// without requiring a change. Use it for re-fetch semantics where
// identity-equal data still needs a forced notification.
func (o *Observable[T]) Notify() {
	o.mu.Lock()
	value := o.value
	listeners := o.snapshotLocked()
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(value)
	}
}

// AddListener registers a listener and returns its deregistration function.
// The registrant must call it before becoming invalid; calling it more than
// once is harmless.
func (o *Observable[T]) AddListener(listener func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = listener
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}

func (o *Observable[T]) snapshotLocked() []func(T) {
	listeners := make([]func(T), 0, len(o.listeners))
	for _, listener := range o.listeners {
		listeners = append(listeners, listener)
	}
	return listeners
}
