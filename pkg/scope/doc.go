// Package scope implements typed value propagation with tree-scoped
// visibility: publish a value at one position, read it from any descendant,
// and write it back through an update channel.
//
// # Publishing and reading
//
// [Provide] binds a value to a subtree; [Of] and [MaybeOf] look up the
// nearest enclosing publisher of the requested type:
//
//	scope.Provide(Theme{Dark: true},
//	    widgets.Builder{BuildFn: func(ctx core.BuildContext) core.Widget {
//	        theme := scope.Of[Theme](ctx)
//	        ...
//	    }},
//	)
//
// Lookup walks outward to the nearest publisher, so an inner publisher of
// the same type shadows an outer one. One live value per type per level;
// use distinct nominal types for independent channels.
//
// # Ownership and write-back
//
// [Bind] owns a mutable value: it publishes the value and an [Updater]
// channel around its child. Any descendant may push a new value through
// [Write] (equality-gated) or [ForceWrite] (unconditional); the write flows
// back into the container's state, schedules a rebuild, republishes, and
// invokes the container's OnChange callback.
//
// Required lookups ([Of], [UpdaterOf], [Write], [ForceWrite]) treat absence
// as a structural wiring bug and panic with *errors.LookupError. The
// Maybe* variants exist for callers that expect absence.
package scope
