// Package widgets provides the small composition vocabulary used by Relay
// trees: text leaves, tappable regions, inline builders, and grouping.
// There is no layout or painting; these widgets exist so values published
// through scope have something to be read by.
package widgets

import "github.com/go-drift/relay/pkg/core"

// Text is a leaf carrying visible content. Hosts and test harnesses
// collect it when rendering or asserting on a tree.
type Text struct {
	core.StatelessBase
	Content string
}

func (t Text) Build(ctx core.BuildContext) core.Widget { return nil }

// Tappable wraps a child with an activation callback. Hosts invoke OnTap
// when the region is activated; the test harness taps by TapKey.
type Tappable struct {
	core.StatelessBase
	TapKey any
	OnTap  func()
	Child  core.Widget
}

// Key returns TapKey so tappables keep identity across rebuilds.
func (t Tappable) Key() any { return t.TapKey }

func (t Tappable) Build(ctx core.BuildContext) core.Widget { return t.Child }

// Builder defers building to a closure, giving inline code a BuildContext
// at exactly the tree position where it needs to read published values.
type Builder struct {
	core.StatelessBase
	BuildFn func(ctx core.BuildContext) core.Widget
}

func (b Builder) Build(ctx core.BuildContext) core.Widget {
	if b.BuildFn == nil {
		return nil
	}
	return b.BuildFn(ctx)
}

// Column groups an ordered list of children.
type Column struct {
	core.MultiChildBase
	Items []core.Widget
}

func (c Column) Children() []core.Widget { return c.Items }
