package touch

import (
	"time"

	"github.com/ayusman/sparsha/internal/calc"
)

// DefaultCooldown is the minimum elapsed time between two accepted
// activations. The cooldown is global across all buttons so one human touch
// gesture is never re-read as dozens of activations across frames.
const DefaultCooldown = 300 * time.Millisecond

// Debouncer converts the continuous per-frame (pointing, candidate) stream
// into discrete rate-limited activation events. Evaluated against a caller
// supplied clock; nothing is scheduled.
type Debouncer struct {
	cooldown       time.Duration
	lastActivation time.Time // zero means never
}

// NewDebouncer creates a Debouncer with the given cooldown.
// Non-positive cooldowns fall back to DefaultCooldown.
func NewDebouncer(cooldown time.Duration) *Debouncer {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Debouncer{cooldown: cooldown}
}

// Observe emits an activation for the candidate iff the pointing gesture is
// held, a candidate resolved this frame, and the cooldown window has
// elapsed since the last accepted activation. The cooldown clock is only
// advanced on emission: pointing at empty space leaves it untouched, so a
// quick retract-and-repoint can still activate within the same window.
func (d *Debouncer) Observe(isPointing bool, candidate calc.ButtonID, now time.Time) (calc.ButtonID, bool) {
	if !isPointing || candidate == "" {
		return "", false
	}
	if !d.lastActivation.IsZero() && now.Sub(d.lastActivation) < d.cooldown {
		return "", false
	}

	d.lastActivation = now
	return candidate, true
}

// Cooldown returns the configured cooldown window.
func (d *Debouncer) Cooldown() time.Duration {
	return d.cooldown
}

// Reset forgets the last activation so the next observation may emit
// immediately.
func (d *Debouncer) Reset() {
	d.lastActivation = time.Time{}
}
