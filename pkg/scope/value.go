package scope

import (
	"reflect"

	"github.com/go-drift/relay/pkg/core"
	"github.com/go-drift/relay/pkg/errors"
)

// Value is a typed slot: an immutable container binding one value to the
// subtree below it. A new Value replaces the old one when the published
// value changes; identity is the type T within the enclosing scope, not the
// instance. Descendants observe a replacement iff the new value differs
// from the previous one.
type Value[T comparable] struct {
	core.InheritedBase
	Val   T
	Child core.Widget
}

// Provide publishes value to every descendant of child.
func Provide[T comparable](value T, child core.Widget) Value[T] {
	return Value[T]{Val: value, Child: child}
}

func (v Value[T]) ChildWidget() core.Widget { return v.Child }

// UpdateShouldNotify gates notification on value equality.
func (v Value[T]) UpdateShouldNotify(old core.InheritedWidget) bool {
	return v.Val != old.(Value[T]).Val
}

// MaybeOf returns the nearest published value of type T above ctx, and
// whether one exists. Reading registers ctx as a dependent: it rebuilds
// when the publisher republishes an unequal value.
func MaybeOf[T comparable](ctx core.BuildContext) (T, bool) {
	w := ctx.DependOnInherited(reflect.TypeOf(Value[T]{}))
	if w == nil {
		var zero T
		return zero, false
	}
	return w.(Value[T]).Val, true
}

// Of is the required variant of [MaybeOf]. Absence of a publisher is a
// programmer error: Of panics with *errors.LookupError rather than
// silently hiding a wiring bug.
func Of[T comparable](ctx core.BuildContext) T {
	value, ok := MaybeOf[T](ctx)
	if !ok {
		panic(&errors.LookupError{Slot: reflect.TypeFor[T]().String(), Op: "scope.Of"})
	}
	return value
}
