package scope

import (
	"reflect"

	"github.com/go-drift/relay/pkg/core"
	"github.com/go-drift/relay/pkg/errors"
)

// Updater is the write-back channel a [Bind] container exposes to its
// descendants. There is no access control: any descendant below the
// publish point may write.
type Updater[T comparable] struct {
	// Update applies an equality-gated write: a value equal to the
	// container's current one is a complete no-op (no state transition,
	// no rebuild, no OnChange).
	Update func(value T)
	// Trigger applies an unconditional write: the state transition runs
	// and OnChange fires even when the value is unchanged. Use it when
	// identity-equal data still needs a forced notification.
	Trigger func(value T)
}

// updaterSlot carries the channel through the tree. Its republication never
// notifies dependents: the closures are recreated on every render but the
// channel is logically stable for the container's lifetime.
type updaterSlot[T comparable] struct {
	core.InheritedBase
	updater Updater[T]
	child   core.Widget
}

func (u updaterSlot[T]) ChildWidget() core.Widget { return u.child }

func (u updaterSlot[T]) UpdateShouldNotify(core.InheritedWidget) bool { return false }

// MaybeUpdaterOf returns the update channel of the nearest enclosing
// [Bind] for T, and whether one exists.
func MaybeUpdaterOf[T comparable](ctx core.BuildContext) (Updater[T], bool) {
	w := ctx.DependOnInherited(reflect.TypeOf(updaterSlot[T]{}))
	if w == nil {
		return Updater[T]{}, false
	}
	return w.(updaterSlot[T]).updater, true
}

// UpdaterOf is the required variant of [MaybeUpdaterOf]; it panics with
// *errors.LookupError when no enclosing container publishes a channel
// for T.
func UpdaterOf[T comparable](ctx core.BuildContext) Updater[T] {
	updater, ok := MaybeUpdaterOf[T](ctx)
	if !ok {
		panic(&errors.LookupError{Slot: reflect.TypeFor[T]().String(), Op: "scope.UpdaterOf"})
	}
	return updater
}

// MaybeWrite pushes value through the nearest enclosing update channel for
// T with Update semantics. It reports whether a channel was found; absence
// is a no-op.
func MaybeWrite[T comparable](ctx core.BuildContext, value T) bool {
	updater, ok := MaybeUpdaterOf[T](ctx)
	if !ok {
		return false
	}
	updater.Update(value)
	return true
}

// Write pushes value through the nearest enclosing update channel for T
// with Update semantics, panicking with *errors.LookupError when no
// channel is in scope.
func Write[T comparable](ctx core.BuildContext, value T) {
	updater, ok := MaybeUpdaterOf[T](ctx)
	if !ok {
		panic(&errors.LookupError{Slot: reflect.TypeFor[T]().String(), Op: "scope.Write"})
	}
	updater.Update(value)
}

// MaybeForceWrite is [MaybeWrite] with Trigger semantics.
func MaybeForceWrite[T comparable](ctx core.BuildContext, value T) bool {
	updater, ok := MaybeUpdaterOf[T](ctx)
	if !ok {
		return false
	}
	updater.Trigger(value)
	return true
}

// ForceWrite is [Write] with Trigger semantics.
func ForceWrite[T comparable](ctx core.BuildContext, value T) {
	updater, ok := MaybeUpdaterOf[T](ctx)
	if !ok {
		panic(&errors.LookupError{Slot: reflect.TypeFor[T]().String(), Op: "scope.ForceWrite"})
	}
	updater.Trigger(value)
}
