package core

import "reflect"

// Widget is an immutable description of part of the tree.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element
	// Key identifies the widget across rebuilds. Widgets of the same type
	// with equal keys update in place; otherwise the old element is
	// unmounted and a new one inflated.
	Key() any
}

// StatelessWidget composes other widgets from its configuration alone.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state via an associated State object.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable companion of a StatefulWidget.
type State interface {
	// InitState is called once after the state is attached to its element.
	InitState()
	// Build returns the subtree for the current state.
	Build(ctx BuildContext) Widget
	// DidChangeDependencies is called when an inherited value this state
	// depends on has changed.
	DidChangeDependencies()
	// DidUpdateWidget is called when the element is updated with a new
	// widget configuration. oldWidget is the previous configuration.
	DidUpdateWidget(oldWidget StatefulWidget)
	// Dispose releases resources held by the state.
	Dispose()
}

// InheritedWidget publishes a value to every descendant of its element.
// Descendants read it through [BuildContext.DependOnInherited], which also
// registers them for change notification.
type InheritedWidget interface {
	Widget
	// ChildWidget returns the subtree the published value is scoped to.
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must be rebuilt after
	// this widget replaced oldWidget at the same position.
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// MultiChildWidget hosts an ordered list of children.
type MultiChildWidget interface {
	Widget
	Children() []Widget
}

// BuildContext is the location of a widget in the tree, passed to build
// functions. Elements implement it.
type BuildContext interface {
	// DependOnInherited walks up the tree to the nearest InheritedElement
	// whose widget has the given type, registers the caller as a
	// dependent, and returns the widget. Returns nil when no publisher of
	// that type encloses the caller.
	DependOnInherited(inheritedType reflect.Type) any
	// FindAncestor returns the nearest ancestor element satisfying the
	// predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular tree position.
type Element interface {
	BuildContext

	Widget() Widget
	Depth() int
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
}

// Listenable is anything that fans out value-less notifications and hands
// back a deregistration function.
type Listenable interface {
	AddListener(listener func()) func()
}

// Disposable is anything with resources to release.
type Disposable interface {
	Dispose()
}
