package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/widgets"
)

func TestCaptureSnapshot_Contents(t *testing.T) {
	tester := NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	tester.PumpView(widgets.VStackOf(widgets.RectangleOf(graphics.RGB(255, 0, 0)), widgets.TextOf("label")))

	snap := tester.CaptureSnapshot()
	if len(snap.DisplayOps) == 0 {
		t.Fatal("expected display ops")
	}
	var fills, texts int
	for _, op := range snap.DisplayOps {
		switch op.Op {
		case "fill":
			fills++
		case "text":
			texts++
		}
	}
	if fills != 1 || texts != 1 {
		t.Errorf("fills, texts = %d, %d, want 1, 1", fills, texts)
	}

	var label *SemanticsNode
	for i := range snap.Semantics {
		if snap.Semantics[i].Name == "label" {
			label = &snap.Semantics[i]
		}
	}
	if label == nil {
		t.Fatal("expected label node")
	}
	if label.Role != "label" {
		t.Errorf("role = %q, want label", label.Role)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := NewViewTesterWithT(t)
	tester.PumpView(widgets.SizedOf(50, 50, widgets.RectangleOf(graphics.ColorRed)))

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := NewViewTesterWithT(t)

	tester.PumpView(widgets.SizedOf(50, 50, widgets.RectangleOf(graphics.RGB(255, 0, 0))))
	a := tester.CaptureSnapshot()

	tester.PumpView(widgets.SizedOf(100, 50, widgets.RectangleOf(graphics.RGB(0, 255, 0))))
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv("LOOM_UPDATE_SNAPSHOTS", "")
	tester := NewViewTesterWithT(t)
	tester.PumpView(widgets.Padded(widgets.TextOf("snap")))

	snap := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "text.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv("LOOM_UPDATE_SNAPSHOTS", "")
	tester := NewViewTesterWithT(t)
	tester.PumpView(widgets.Spacer{})
	snap := tester.CaptureSnapshot()

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, "/nonexistent/path/snap.json")

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv("LOOM_UPDATE_SNAPSHOTS", "")
	tester := NewViewTesterWithT(t)

	tester.PumpView(widgets.SizedOf(50, 50, widgets.RectangleOf(graphics.RGB(255, 0, 0))))
	first := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester.PumpView(widgets.SizedOf(99, 99, widgets.RectangleOf(graphics.RGB(0, 0, 255))))
	second := tester.CaptureSnapshot()

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	tester := NewViewTesterWithT(t)
	tester.PumpView(widgets.Spacer{})
	snap := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "update.snapshot.json")

	t.Setenv("LOOM_UPDATE_SNAPSHOTS", "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
