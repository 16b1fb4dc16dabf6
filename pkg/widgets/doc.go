// Package widgets provides the concrete view types: leaves that paint
// (Rectangle, Circle, Text, Canvas), layout containers (HStack, VStack,
// ZStack, Padding, Sized, Spacer) and modifiers that add behavior to a child
// (Tap, Drag, Clip, Geom, Background, Accessible, Command, OnKey,
// WindowTitle, State).
//
// # Construction
//
// Views are plain values. The struct literal is the canonical form:
//
//	widgets.Padding{
//	    Amount: 10,
//	    Child:  widgets.Rectangle{Paint: graphics.SolidPaint(graphics.ColorRed)},
//	}
//
// Helpers cover the common cases:
//
//	widgets.HStackOf(
//	    widgets.RectangleOf(graphics.ColorRed),
//	    widgets.Padded(widgets.TextOf("hello")),
//	)
//
// WithX methods on leaves return a modified copy:
//
//	widgets.RectangleOf(graphics.ColorBlue).WithCornerRadius(4)
//
// # Identity
//
// Containers give each child the child's index as its path element, so a
// view's identity is its position in the tree. Items of a List are
// identified by ordinal: reordering items moves their state to whichever
// item lands at the old position.
package widgets
