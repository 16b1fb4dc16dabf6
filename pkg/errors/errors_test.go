package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestLoomErrorString(t *testing.T) {
	err := &LoomError{
		Op:   "core.Context.Layout",
		Kind: KindAddressing,
		Err:  ErrUnbalancedPath,
		Path: 2,
	}
	got := err.Error()
	want := "core.Context.Layout [addressing] depth=2: unbalanced id path"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPlatform, "platform"},
		{KindInit, "init"},
		{KindRender, "render"},
		{KindPaint, "paint"},
		{KindAddressing, "addressing"},
		{KindState, "state"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindOfAndUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("frame: %w", New("rendering.NewRaster", KindInit, ErrNoAdapter))
	if got := KindOf(wrapped); got != KindInit {
		t.Errorf("KindOf = %v, want %v", got, KindInit)
	}
	if !stderrors.Is(wrapped, ErrNoAdapter) {
		t.Error("expected wrapped error to match ErrNoAdapter")
	}
	if got := KindOf(stderrors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want %v", got, KindUnknown)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Op: "core.Context.Process", Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic in core.Context.Process: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	bare := &PanicError{Value: "boom"}
	if got, want := bare.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *LoomError
	handler := &testHandler{onError: func(err *LoomError) { captured = err }}

	defer SetHandler(SetHandler(handler))

	Report(&LoomError{Op: "test.op", Kind: KindPaint, Err: ErrUnsupported})

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

	defer SetHandler(SetHandler(handler))

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	defer SetHandler(SetHandler(&testHandler{}))

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestSetHandlerNil(t *testing.T) {
	custom := &testHandler{}
	prev := SetHandler(custom)
	defer SetHandler(prev)

	if got := SetHandler(nil); got != ErrorHandler(custom) {
		t.Errorf("SetHandler returned %T, want the replaced handler", got)
	}
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("Handler() after SetHandler(nil) = %T, want *LogHandler", Handler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&LoomError{Op: "rendering.Fill", Kind: KindPaint, Err: ErrUnsupported})
	h.HandlePanic(&PanicError{Op: "widgets.Tap", Value: "nil func"})

	out := buf.String()
	for _, want := range []string{
		"[loom error] rendering.Fill: unsupported rendering capability",
		"[loom panic] widgets.Tap: nil func",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.HasPrefix(stack, "github.com/go-drift/loom/pkg/errors.TestCaptureStack\n") {
		t.Errorf("stack trace should start at the caller, got: %s", stack)
	}
	if strings.Contains(stack, "runtime.goexit") {
		t.Errorf("stack trace should stop before runtime.goexit, got: %s", stack)
	}
}

type testHandler struct {
	onError func(*LoomError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *LoomError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
