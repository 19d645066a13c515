// Package core provides the widget and element framework for Relay.
//
// This package defines the foundational types for typed value propagation:
// Widget, Element, State, and BuildContext. It follows a declarative model
// where widgets describe what the tree should look like, and the framework
// updates the element tree to match. There is no layout or painting here;
// the tree exists to give published values a scope.
//
// # Core Types
//
// Widget is an immutable description of part of the tree. Widgets are
// lightweight configuration objects that can be created frequently without
// performance concerns.
//
// Element is the instantiation of a Widget at a particular location in the
// tree. Elements manage lifecycle and identity, and serve as the
// BuildContext passed to build functions.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: fmt.Sprintf("Count: %d", s.count)}
//	}
//
// # Rebuild Scheduling
//
// Mutation never triggers a hidden scheduler. SetState and inherited-value
// updates mark elements dirty on a BuildOwner; the host calls
// [BuildOwner.FlushBuild] to run one re-evaluation pass. Tests call it
// directly.
//
// # Broadcast State
//
// Observable holds a value and fans out changes to registered listeners
// outside any tree scope:
//
//	counter := core.NewObservable(0)
//	core.UseObservable(&s.StateBase, counter) // Subscribe to changes
//
// Notifier is the value-less variant. Both return a deregistration function
// from AddListener so cleanup is tied to the registrant.
//
// # Hooks
//
// UseController, UseListenable, and UseObservable manage resources and
// subscriptions with automatic cleanup on disposal.
package core
