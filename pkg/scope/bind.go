package scope

import (
	"github.com/go-drift/relay/pkg/core"
)

// Bind owns one mutable typed value and scopes it to its child subtree.
// On every render it republishes the current value as a [Value] slot and a
// fresh [Updater] channel. Writes reaching the channel mutate the
// container's state, schedule a rebuild, and invoke OnChange.
//
// The container reconciles its own configuration too: when a parent
// rebuilds it with a different Initial, the new value is applied with
// Update (equality-gated) semantics.
//
// T must not have a primitive numeric kind; construction panics with
// *errors.BindingError otherwise. Wrap counters and the like in a nominal
// struct type.
type Bind[T comparable] struct {
	// Initial seeds the container's state on mount and reconciles it on
	// configuration change.
	Initial T
	// OnChange, if set, is invoked after every applied write with the
	// written value. It is caller-supplied and unconstrained.
	OnChange func(T)
	// Child is the subtree the value is scoped to.
	Child core.Widget
}

// CreateElement validates the type binding eagerly, then hosts the
// container in a stateful element.
func (b Bind[T]) CreateElement() core.Element {
	mustBindableKind[T]()
	return core.NewStatefulElement(b, nil)
}

// Key returns nil (no key).
func (b Bind[T]) Key() any { return nil }

func (b Bind[T]) CreateState() core.State { return &bindState[T]{} }

type bindState[T comparable] struct {
	core.StateBase
	current T
}

func (s *bindState[T]) widget() Bind[T] {
	return s.Element().Widget().(Bind[T])
}

func (s *bindState[T]) InitState() {
	s.current = s.widget().Initial
}

// DidUpdateWidget reconciles a changed Initial against the container's own
// state with Update semantics.
func (s *bindState[T]) DidUpdateWidget(old core.StatefulWidget) {
	s.write(s.widget().Initial, false)
}

// write is the container's single state transition. force bypasses the
// equality gate. Every applied write mutates current, schedules a rebuild,
// and fires OnChange.
func (s *bindState[T]) write(value T, force bool) {
	if !force && value == s.current {
		return
	}
	s.SetState(func() {
		s.current = value
	})
	if onChange := s.widget().OnChange; onChange != nil {
		onChange(value)
	}
}

func (s *bindState[T]) Build(ctx core.BuildContext) core.Widget {
	updater := Updater[T]{
		Update:  func(value T) { s.write(value, false) },
		Trigger: func(value T) { s.write(value, true) },
	}
	return updaterSlot[T]{
		updater: updater,
		child:   Provide(s.current, s.widget().Child),
	}
}
