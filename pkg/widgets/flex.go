package widgets

import (
	"fmt"
	"log"
	"math"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// Axis represents the layout direction of a Stack.
// AxisVertical is the zero value.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func (a Axis) main(s graphics.Size) float64 {
	if a == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func (a Axis) cross(s graphics.Size) float64 {
	if a == AxisHorizontal {
		return s.Height
	}
	return s.Width
}

func (a Axis) size(main, cross float64) graphics.Size {
	if a == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (a Axis) offset(main, cross float64) graphics.Offset {
	if a == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

// Stack lays out its children in a line along Axis.
//
// # Sizing Behavior
//
// Children that are not flexible are laid out first and keep the size they
// ask for. The space left on the main axis is then split evenly between the
// flexible children (Rectangle, Canvas, Spacer, ...). Children are centered
// on the cross axis.
//
// The stack takes the space it is offered. On an unbounded axis it shrinks
// to its content instead, and flexible children get no main-axis space:
//
//	HStackOf(
//	    TextOf("name"),   // measured width
//	    Spacer{},         // leftover width
//	    TextOf("value"),  // measured width
//	)
//
// Use [HStackOf], [VStackOf] and [List] to build stacks.
type Stack struct {
	core.ViewBase
	Axis     Axis
	Children []core.View
}

// flexWarning remembers that a stack has already logged its unbounded-flex
// warning.
type flexWarning bool

func (s Stack) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	cx := args.Cx
	offerMain := s.Axis.main(args.Size)
	offerCross := s.Axis.cross(args.Size)

	sizes := make([]graphics.Size, len(s.Children))
	var fixedMain float64
	flexCount := 0
	for i, child := range s.Children {
		if child.IsFlexible() {
			flexCount++
			continue
		}
		sizes[i] = core.LayoutChild(path, i, child, args)
		fixedMain += s.Axis.main(sizes[i])
	}

	var flexMain float64
	if flexCount > 0 {
		if isUnbounded(offerMain) {
			warned := core.GetState[flexWarning](cx, cx.ViewID(path), nil)
			if !*warned {
				log.Printf("WARNING: flexible children in a %s stack offered unbounded space. "+
					"Flexible children cannot expand in unbounded space and are given none.", s.Axis)
				*warned = true
			}
		} else {
			flexMain = math.Max(offerMain-fixedMain, 0) / float64(flexCount)
		}
		offer := args.WithSize(s.Axis.size(flexMain, offerCross))
		for i, child := range s.Children {
			if child.IsFlexible() {
				sizes[i] = core.LayoutChild(path, i, child, offer)
			}
		}
	}

	var contentMain, contentCross float64
	for _, size := range sizes {
		contentMain += s.Axis.main(size)
		contentCross = math.Max(contentCross, s.Axis.cross(size))
	}
	stackMain := offerMain
	if isUnbounded(stackMain) {
		stackMain = contentMain
	}
	stackCross := offerCross
	if isUnbounded(stackCross) {
		stackCross = contentCross
	}

	var pos float64
	for i, size := range sizes {
		cross := (stackCross - s.Axis.cross(size)) / 2
		core.PlaceChild(path, i, cx, s.Axis.offset(pos, cross))
		pos += s.Axis.main(size)
	}
	return recordLayout(path, cx, s.Axis.size(stackMain, stackCross))
}

func (s Stack) Draw(path *core.IdPath, cx *core.Context) {
	drawChildren(path, s.Children, cx)
}

func (s Stack) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return hitTestChildren(path, s.Children, pt, cx)
}

func (s Stack) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	for i, child := range s.Children {
		core.ProcessChild(event, path, i, child, cx)
	}
}

func (s Stack) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	for i, child := range s.Children {
		core.DirtyChild(path, i, child, xform, cx)
	}
}

func (s Stack) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return accessGroup(path, s.Children, cx, nodes)
}

func (s Stack) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	for i, child := range s.Children {
		core.CommandsChild(path, i, child, cx, cmds)
	}
}

func (s Stack) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	for i, child := range s.Children {
		core.GCChild(path, i, child, cx, ids)
	}
}

func (s Stack) IsFlexible() bool { return true }

func drawChildren(path *core.IdPath, children []core.View, cx *core.Context) {
	for i, child := range children {
		core.DrawChild(path, i, child, cx)
	}
}

// hitTestChildren returns the hit of the last child containing pt, so
// later siblings win over earlier ones.
func hitTestChildren(path *core.IdPath, children []core.View, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	for i := len(children) - 1; i >= 0; i-- {
		if id, ok := core.HitTestChild(path, i, children[i], pt, cx); ok {
			return id, true
		}
	}
	return 0, false
}

// accessGroup emits a group node over the children's nodes. Subtrees without
// accessible content emit nothing.
func accessGroup(path *core.IdPath, children []core.View, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	var ids []semantics.NodeID
	for i, child := range children {
		if id, ok := core.AccessChild(path, i, child, cx, nodes); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, false
	}
	id := cx.ViewID(path).AccessID()
	*nodes = append(*nodes, semantics.Entry{
		ID: id,
		Node: semantics.Node{
			Role:     semantics.RoleGroup,
			Bounds:   cx.AccessBounds(path),
			Children: ids,
		},
	})
	return id, true
}
