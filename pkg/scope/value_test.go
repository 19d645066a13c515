package scope_test

import (
	"testing"

	"github.com/go-drift/relay/pkg/core"
	"github.com/go-drift/relay/pkg/errors"
	"github.com/go-drift/relay/pkg/scope"
	relaytest "github.com/go-drift/relay/pkg/testing"
	"github.com/go-drift/relay/pkg/widgets"
)

// Theme is the slot type used throughout these tests.
type Theme struct {
	Name string
}

func TestProvide_ReadsPublishedValue(t *testing.T) {
	tester := relaytest.NewWidgetTesterWithT(t)

	tester.PumpWidget(scope.Provide(Theme{Name: "dark"}, widgets.Builder{
		BuildFn: func(ctx core.BuildContext) core.Widget {
			return widgets.Text{Content: scope.Of[Theme](ctx).Name}
		},
	}))

	if !tester.Find(relaytest.ByText("dark")).Exists() {
		t.Errorf("expected reader to see the published value, got %v", tester.Texts())
	}
}

func TestProvide_NearestPublisherShadowsOuter(t *testing.T) {
	tester := relaytest.NewWidgetTesterWithT(t)

	reader := func(label string) core.Widget {
		return widgets.Builder{BuildFn: func(ctx core.BuildContext) core.Widget {
			return widgets.Text{Content: label + "=" + scope.Of[Theme](ctx).Name}
		}}
	}

	tester.PumpWidget(scope.Provide(Theme{Name: "outer"}, widgets.Column{Items: []core.Widget{
		reader("above"),
		scope.Provide(Theme{Name: "inner"}, reader("below")),
	}}))

	if !tester.Find(relaytest.ByText("above=outer")).Exists() {
		t.Errorf("reader above the inner publisher should see the outer value, got %v", tester.Texts())
	}
	if !tester.Find(relaytest.ByText("below=inner")).Exists() {
		t.Errorf("reader below the inner publisher should see the inner value, got %v", tester.Texts())
	}
}

func TestMaybeOf_MissingPublisherReturnsZero(t *testing.T) {
	tester := relaytest.NewWidgetTesterWithT(t)

	var got Theme
	var ok bool
	tester.PumpWidget(widgets.Builder{BuildFn: func(ctx core.BuildContext) core.Widget {
		got, ok = scope.MaybeOf[Theme](ctx)
		return nil
	}})

	if ok {
		t.Error("expected ok=false without a publisher")
	}
	if got != (Theme{}) {
		t.Errorf("expected zero value, got %+v", got)
	}
}

func TestOf_PanicsWithLookupError(t *testing.T) {
	tester := relaytest.NewWidgetTesterWithT(t)

	var ctx core.BuildContext
	tester.PumpWidget(widgets.Builder{BuildFn: func(c core.BuildContext) core.Widget {
		ctx = c
		return nil
	}})

	defer func() {
		r := recover()
		lookupErr, ok := r.(*errors.LookupError)
		if !ok {
			t.Fatalf("expected *errors.LookupError, got %T (%v)", r, r)
		}
		if lookupErr.Op != "scope.Of" {
			t.Errorf("Op = %q, want %q", lookupErr.Op, "scope.Of")
		}
		if lookupErr.Slot == "" {
			t.Error("expected Slot to name the requested type")
		}
	}()
	scope.Of[Theme](ctx)
}

// buildErrorRecorder captures build errors reported during a pump.
type buildErrorRecorder struct {
	errors.LogHandler
	builds []*errors.BuildError
}

func (h *buildErrorRecorder) HandleBuildError(err *errors.BuildError) {
	h.builds = append(h.builds, err)
}

func TestOf_PanicDuringBuildIsReportedAndSubtreeDropped(t *testing.T) {
	handler := &buildErrorRecorder{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	tester := relaytest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Column{Items: []core.Widget{
		widgets.Text{Content: "before"},
		widgets.Builder{BuildFn: func(ctx core.BuildContext) core.Widget {
			return widgets.Text{Content: scope.Of[Theme](ctx).Name}
		}},
		widgets.Text{Content: "after"},
	}})

	if len(handler.builds) != 1 {
		t.Fatalf("expected 1 reported build error, got %d", len(handler.builds))
	}
	if _, ok := handler.builds[0].Recovered.(*errors.LookupError); !ok {
		t.Errorf("expected recovered *errors.LookupError, got %T", handler.builds[0].Recovered)
	}

	// Siblings survive; only the failing subtree is dropped.
	texts := tester.Texts()
	if len(texts) != 2 || texts[0] != "before" || texts[1] != "after" {
		t.Errorf("expected siblings to survive the failed build, got %v", texts)
	}
}

func TestValue_ChangePropagatesToReader(t *testing.T) {
	tester := relaytest.NewWidgetTesterWithT(t)

	themeBuilds := 0
	app := core.Stateful(
		func() Theme { return Theme{Name: "light"} },
		func(theme Theme, ctx core.BuildContext, setState func(func(Theme) Theme)) core.Widget {
			return widgets.Column{Items: []core.Widget{
				widgets.Tappable{TapKey: "toggle", OnTap: func() {
					setState(func(Theme) Theme { return Theme{Name: "dark"} })
				}},
				scope.Provide(theme, widgets.Builder{BuildFn: func(ctx core.BuildContext) core.Widget {
					themeBuilds++
					return widgets.Text{Content: scope.Of[Theme](ctx).Name}
				}}),
			}}
		},
	)
	tester.PumpWidget(app)

	if themeBuilds != 1 {
		t.Fatalf("expected 1 build after mount, got %d", themeBuilds)
	}

	if err := tester.Tap(relaytest.ByKey("toggle")); err != nil {
		t.Fatal(err)
	}
	tester.Pump()
	if !tester.Find(relaytest.ByText("dark")).Exists() {
		t.Errorf("expected reader to see the new value, got %v", tester.Texts())
	}
}
