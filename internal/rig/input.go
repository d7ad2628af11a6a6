package rig

// Action is a logical key the rig reacts to.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionAscend
	ActionDescend

	actionCount
)

var actionNames = [actionCount]string{
	ActionForward:     "forward",
	ActionBack:        "back",
	ActionStrafeLeft:  "strafe_left",
	ActionStrafeRight: "strafe_right",
	ActionAscend:      "ascend",
	ActionDescend:     "descend",
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// String returns the action's config key name.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputSource is what the rig samples each frame. A windowing backend
// implements it; tests use a scripted fake.
type InputSource interface {
	// IsKeyDown reports whether the key bound to a is currently held.
	IsKeyDown(a Action) bool
	// CursorPos returns the cursor position in window coordinates.
	CursorPos() (x, y float64)
	// SetCursorPos moves the cursor to the given window coordinates.
	SetCursorPos(x, y float64)
	// ViewportSize returns the window's drawable size in pixels.
	ViewportSize() (width, height int)
}
