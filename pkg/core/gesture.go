package core

// Touch routing.
//
// A TouchBegin hit-tests the whole tree and records the topmost view under
// the touch as the touch's target. Gesture views then process the event in
// child-first order; a gesture captures the touch only when its child's hit
// is the target and no inner gesture has claimed it already. Capture is kept
// in a state cell owned by the gesture, keyed by touch id, so it survives
// tree rebuilds and distinct touches are tracked independently.

// gestureCapture is the per-gesture set of captured touch ids.
type gestureCapture struct {
	touches map[int]struct{}
}

func newGestureCapture() gestureCapture {
	return gestureCapture{touches: make(map[int]struct{})}
}

// TouchTarget returns the view hit by the TouchBegin that started touch.
func (cx *Context) TouchTarget(touch int) (ViewID, bool) {
	id, ok := cx.touchTargets[touch]
	return id, ok
}

// BeginGesture captures touch for the gesture owner when hit, the result of
// hit-testing the gesture's child, matches the touch target. It reports
// whether the capture was taken.
func (cx *Context) BeginGesture(owner ViewID, touch int, hit ViewID, ok bool) bool {
	if !ok || cx.claimed[touch] {
		return false
	}
	target, found := cx.touchTargets[touch]
	if !found || target != hit {
		return false
	}
	cx.claimed[touch] = true
	GetState(cx, owner, newGestureCapture).touches[touch] = struct{}{}
	return true
}

// IsCaptured reports whether owner holds the capture for touch.
func (cx *Context) IsCaptured(owner ViewID, touch int) bool {
	if !HasState[gestureCapture](cx, owner) {
		return false
	}
	_, ok := GetState(cx, owner, newGestureCapture).touches[touch]
	return ok
}

// ReleaseGesture drops owner's capture of touch.
func (cx *Context) ReleaseGesture(owner ViewID, touch int) {
	if !HasState[gestureCapture](cx, owner) {
		return
	}
	delete(GetState(cx, owner, newGestureCapture).touches, touch)
}
