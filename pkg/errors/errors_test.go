package errors

import (
	"strings"
	"testing"
	"time"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLookup, "lookup"},
		{KindBinding, "binding"},
		{KindBuild, "build"},
		{KindPanic, "panic"},
		{KindSettings, "settings"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRelayErrorString(t *testing.T) {
	err := &RelayError{
		Op:   "settings.Source.process",
		Kind: KindSettings,
		Err:  &LookupError{Slot: "main.Counter", Op: "scope.Of"},
	}
	got := err.Error()
	if !strings.Contains(got, "settings.Source.process") {
		t.Errorf("error string %q should contain the op", got)
	}
	if !strings.Contains(got, "[settings]") {
		t.Errorf("error string %q should contain the kind", got)
	}
}

func TestLookupErrorString(t *testing.T) {
	err := &LookupError{Slot: "main.Counter", Op: "scope.Of"}
	got := err.Error()
	want := "scope.Of[main.Counter]: no publisher in scope"
	if got != want {
		t.Errorf("LookupError.Error() = %q, want %q", got, want)
	}
}

func TestBindingErrorString(t *testing.T) {
	err := &BindingError{Type: "int", Kind: "int"}
	got := err.Error()
	if !strings.Contains(got, "int") || !strings.Contains(got, "nominal struct") {
		t.Errorf("BindingError.Error() = %q, want type and remediation hint", got)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "core.FlushBuild"
	if got, want := err.Error(), "panic in core.FlushBuild: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{
		Widget:    "main.badWidget",
		Element:   "*core.StatelessElement",
		Recovered: "boom",
	}
	got := err.Error()
	want := "panic in main.badWidget.Build(): boom"
	if got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}
}

// capturingHandler records everything reported to it.
type capturingHandler struct {
	errs   []*RelayError
	panics []*PanicError
	builds []*BuildError
}

func (h *capturingHandler) HandleError(err *RelayError)      { h.errs = append(h.errs, err) }
func (h *capturingHandler) HandlePanic(err *PanicError)      { h.panics = append(h.panics, err) }
func (h *capturingHandler) HandleBuildError(err *BuildError) { h.builds = append(h.builds, err) }

func TestReportRoutesToHandler(t *testing.T) {
	handler := &capturingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&RelayError{Op: "test.op", Kind: KindLookup, Err: &LookupError{Slot: "T", Op: "scope.Of"}})
	if len(handler.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.errs))
	}
	if handler.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero timestamp")
	}

	Report(nil)
	if len(handler.errs) != 1 {
		t.Error("Report(nil) should be a no-op")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	handler := &capturingHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("recovered value")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(handler.panics))
	}
	if handler.panics[0].Value != "recovered value" {
		t.Errorf("expected panic value 'recovered value', got %v", handler.panics[0].Value)
	}
	if handler.panics[0].StackTrace == "" {
		t.Error("expected captured stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&capturingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}

func TestItoa(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{-13, "-13"},
	}
	for _, tt := range tests {
		if got := itoa(tt.in); got != tt.want {
			t.Errorf("itoa(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
