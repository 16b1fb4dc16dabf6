package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/loom/pkg/semantics"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the accessibility tree and the display list of a frame.
type Snapshot struct {
	Semantics  []SemanticsNode `json:"semantics,omitempty"`
	DisplayOps []DisplayOp     `json:"displayOps,omitempty"`
}

// SemanticsNode is a serialized accessibility node.
type SemanticsNode struct {
	ID       uint64     `json:"id"`
	Role     string     `json:"role"`
	Name     string     `json:"name,omitempty"`
	Value    string     `json:"value,omitempty"`
	Bounds   [4]float64 `json:"bounds"`
	Children []uint64   `json:"children,omitempty"`
}

// CaptureSnapshot captures the last frame.
func (t *ViewTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{DisplayOps: serializeOps(t.recorder.Ops())}
	for _, e := range t.cx.AccessNodes() {
		snap.Semantics = append(snap.Semantics, serializeNode(e))
	}
	return snap
}

func serializeNode(e semantics.Entry) SemanticsNode {
	b := e.Node.Bounds
	node := SemanticsNode{
		ID:     uint64(e.ID),
		Role:   e.Node.Role.String(),
		Name:   e.Node.Name,
		Value:  e.Node.Value,
		Bounds: [4]float64{round2(b.Left), round2(b.Top), round2(b.Right), round2(b.Bottom)},
	}
	for _, child := range e.Node.Children {
		node.Children = append(node.Children, uint64(child))
	}
	return node
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When LOOM_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("LOOM_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: LOOM_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: LOOM_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff reports how this snapshot differs from other, compared in their
// JSON form. It returns the empty string when they match.
func (s *Snapshot) Diff(other *Snapshot) string {
	got, _ := marshalSnapshot(s)
	want, _ := marshalSnapshot(other)
	if bytes.Equal(got, want) {
		return ""
	}
	var gotTree, wantTree any
	if json.Unmarshal(got, &gotTree) != nil || json.Unmarshal(want, &wantTree) != nil {
		return fmt.Sprintf("-%s\n+%s", want, got)
	}
	return cmp.Diff(wantTree, gotTree)
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
