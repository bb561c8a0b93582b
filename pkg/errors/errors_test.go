package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestPresentErrorString(t *testing.T) {
	err := &PresentError{
		Op:   "presentation.Engine.layout",
		Kind: KindLayout,
		Err:  stderrors.New("zero dismiss distance"),
	}
	want := "presentation.Engine.layout [layout]: zero dismiss distance"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestPresentErrorWithPresentation(t *testing.T) {
	err := &PresentError{
		Op:           "presentation.Engine.HandlePan",
		Kind:         KindGesture,
		Presentation: "1234",
		Err:          stderrors.New("boom"),
	}
	if got := err.Error(); !strings.Contains(got, "presentation=1234") {
		t.Errorf("error string %q should contain presentation id", got)
	}
}

func TestPresentErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &PresentError{Op: "op", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvariant, "invariant"},
		{KindLifecycle, "lifecycle"},
		{KindLayout, "layout"},
		{KindGesture, "gesture"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "content.WillAppear"
	if got, want := err.Error(), "panic in content.WillAppear: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *PresentError
	handler := &testHandler{onError: func(err *PresentError) { captured = err }}

	old := SetHandler(handler)
	defer SetHandler(old)

	Report(&PresentError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	old := SetHandler(handler)
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestInvariantPanics(t *testing.T) {
	var reported *InvariantError
	handler := &testHandler{onInvariant: func(err *InvariantError) { reported = err }}

	old := SetHandler(handler)
	defer SetHandler(old)

	defer func() {
		r := recover()
		inv, ok := r.(*InvariantError)
		if !ok {
			t.Fatalf("recovered %T, want *InvariantError", r)
		}
		if inv.Message != "rate 2.00 outside (0, 1)" {
			t.Errorf("Message = %q", inv.Message)
		}
		if reported != inv {
			t.Error("handler should see the same error that is raised")
		}
	}()
	Invariant("dynamics.ProjectedDistance", "rate %.2f outside (0, 1)", 2.0)
}

func TestRecoverReraisesInvariant(t *testing.T) {
	old := SetHandler(&testHandler{})
	defer SetHandler(old)

	defer func() {
		if _, ok := recover().(*InvariantError); !ok {
			t.Error("Recover must not swallow invariant violations")
		}
	}()
	func() {
		defer Recover("outer")
		Invariant("inner", "broken")
	}()
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNilRestoresLogHandler(t *testing.T) {
	old := SetHandler(&testHandler{})
	defer SetHandler(old)

	if _, ok := SetHandler(nil).(*testHandler); !ok {
		t.Error("SetHandler should return the handler it replaced")
	}
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("Handler() = %T after SetHandler(nil), want *LogHandler", Handler())
	}
}

func TestReportIgnoresNil(t *testing.T) {
	called := false
	old := SetHandler(&testHandler{
		onError: func(*PresentError) { called = true },
		onPanic: func(*PanicError) { called = true },
	})
	defer SetHandler(old)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil errors must not reach the handler")
	}
}

func TestErrorKindOutOfRange(t *testing.T) {
	if got := ErrorKind(42).String(); got != "unknown" {
		t.Errorf("ErrorKind(42).String() = %q, want unknown", got)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	h.HandleError(&PresentError{Op: "op.name", Kind: KindLayout, Err: stderrors.New("clamped")})
	out := buf.String()
	if !strings.Contains(out, "op=op.name") || !strings.Contains(out, "kind=layout") {
		t.Errorf("unexpected log output: %s", out)
	}
}

type testHandler struct {
	onError     func(*PresentError)
	onPanic     func(*PanicError)
	onInvariant func(*InvariantError)
}

func (h *testHandler) HandleError(err *PresentError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleInvariant(err *InvariantError) {
	if h.onInvariant != nil {
		h.onInvariant(err)
	}
}
