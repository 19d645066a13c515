package testing

import (
	"fmt"
	"testing"

	"github.com/go-drift/relay/pkg/core"
	"github.com/go-drift/relay/pkg/widgets"
)

// WidgetTester provides isolated widget testing without a real host.
// It drives the same mount and rebuild phases as a live tree, with the
// flush under the test's control.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
}

// NewWidgetTester creates a tester. Call Cleanup() when done, or use
// NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree. Must be called if not using
// NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// BuildOwner returns the owner driving this tester's tree.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// Root returns the root element, or nil before the first PumpWidget.
func (t *WidgetTester) Root() core.Element {
	return t.root
}

// PumpWidget mounts (or remounts) a widget and flushes the initial build.
func (t *WidgetTester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	t.Pump()
}

// Pump runs a single re-evaluation pass over the dirty elements.
func (t *WidgetTester) Pump() {
	t.buildOwner.FlushBuild()
}

// Find evaluates a finder against the current tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{elements: finder.Evaluate(t.root), finder: finder}
}

// Tap activates the first Tappable matched by the finder. Call Pump
// afterwards to apply any scheduled rebuilds.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	for _, element := range result.All() {
		if tappable, ok := element.Widget().(widgets.Tappable); ok {
			if tappable.OnTap != nil {
				tappable.OnTap()
			}
			return nil
		}
	}
	return fmt.Errorf("no Tappable found: %s", finder.Description())
}

// Texts returns the content of every Text widget in traversal order.
func (t *WidgetTester) Texts() []string {
	if t.root == nil {
		return nil
	}
	elements := collectMatches(t.root, func(e core.Element) bool {
		_, ok := e.Widget().(widgets.Text)
		return ok
	})
	contents := make([]string, 0, len(elements))
	for _, element := range elements {
		contents = append(contents, element.Widget().(widgets.Text).Content)
	}
	return contents
}
