// Package testing provides a view testing harness for loom.
//
// # Quick Start
//
// Create a tester, pump a view, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := loomtest.NewViewTesterWithT(t)
//	    tester.PumpView(counterView())
//
//	    // Simulate gestures
//	    tester.TapAt(graphics.Offset{X: 10, Y: 10})
//
//	    // Assert state
//	    if _, ok := tester.FindByName("1"); !ok {
//	        t.Error("expected label '1'")
//	    }
//	}
//
// Every event sent through the tester is followed by a frame, so layout,
// accessibility and the recorded display list always reflect the latest
// state.
//
// # Addressing Nodes
//
// Nodes are addressed by the child indices leading to them from the root:
//
//	box, ok := tester.LayoutOf(0, 1) // second child of the first child
//
// # Snapshot Testing
//
// Capture and compare the display list and accessibility tree:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	LOOM_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import loomtest "github.com/go-drift/loom/pkg/testing"
package testing
