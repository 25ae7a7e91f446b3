package touch

import (
	"time"

	"github.com/ayusman/sparsha/internal/calc"
)

// TouchRadius is the maximum distance from a button's center at which a
// containment hit still counts as that button. Rectangle containment alone
// is too permissive where buttons abut; the radius plus nearest-center
// tie-break keeps activation unambiguous near shared edges.
const TouchRadius = 30

// PressPulse is how long a button stays visually pressed after activation.
const PressPulse = 200 * time.Millisecond

// Snapshot is an immutable per-frame view of transient button state for the
// renderer. A fresh snapshot is produced every frame instead of mutating
// flags on the buttons themselves, so a resize or theme change can never
// observe stale state.
type Snapshot struct {
	Hovered calc.ButtonID `json:"hovered,omitempty"` // button under the fingertip
	Pressed calc.ButtonID `json:"pressed,omitempty"` // button inside its press pulse
}

// Resolve finds the single button the point lands on: of the buttons whose
// bounds contain the point and whose center lies within TouchRadius, the
// nearest center wins. The second return is false when no button matches.
func Resolve(layout Layout, p Point) (calc.ButtonID, bool) {
	var best calc.ButtonID
	bestDist := -1.0

	for _, b := range layout.Buttons {
		if !b.Bounds.Contains(p) {
			continue
		}
		d := distance(p, b.Center)
		if d > TouchRadius {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best = b.ID
			bestDist = d
		}
	}

	return best, bestDist >= 0
}

// Tester resolves fingertip positions against the current layout and tracks
// the press-feedback pulse. It is owned by the frame pipeline and needs no
// locking.
type Tester struct {
	layout    Layout
	pressed   calc.ButtonID
	pressedAt time.Time
}

// NewTester creates a Tester over the given layout.
func NewTester(layout Layout) *Tester {
	return &Tester{layout: layout}
}

// SetLayout replaces the layout after a panel resize.
func (t *Tester) SetLayout(layout Layout) {
	t.layout = layout
}

// Layout returns the current layout.
func (t *Tester) Layout() Layout {
	return t.layout
}

// Observe resolves the fingertip point (nil when no hand is visible) into a
// per-frame snapshot. Absence of a point is a normal outcome, not an error:
// the snapshot simply carries no hovered button.
func (t *Tester) Observe(point *Point, now time.Time) Snapshot {
	var snap Snapshot

	if t.pressed != "" && now.Sub(t.pressedAt) <= PressPulse {
		snap.Pressed = t.pressed
	}

	if point == nil {
		return snap
	}

	if id, ok := Resolve(t.layout, *point); ok {
		snap.Hovered = id
	}
	return snap
}

// MarkPressed starts the visual press pulse for an activated button.
func (t *Tester) MarkPressed(id calc.ButtonID, now time.Time) {
	t.pressed = id
	t.pressedAt = now
}
