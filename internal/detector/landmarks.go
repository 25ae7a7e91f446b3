// Package detector provides hand detection interfaces and the
// pointing-gesture classifier for virtual touch input.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point in space with x, y, z coordinates.
// X and Y are normalized to the frame (0..1); image Y grows downward.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// IsPointing reports whether the hand forms the pointing gesture: the index
// fingertip extended above its PIP joint while the middle, ring and pinky
// tips sit below theirs. Image Y grows downward, so extended means a
// smaller Y. The thumb is ignored; its extension axis is too unreliable to
// gate touch input on.
func (h *HandLandmarks) IsPointing() bool {
	if h == nil {
		return false
	}

	indexExtended := h.Points[IndexTip].Y < h.Points[IndexPIP].Y
	middleClosed := h.Points[MiddleTip].Y > h.Points[MiddlePIP].Y
	ringClosed := h.Points[RingTip].Y > h.Points[RingPIP].Y
	pinkyClosed := h.Points[PinkyTip].Y > h.Points[PinkyPIP].Y

	return indexExtended && middleClosed && ringClosed && pinkyClosed
}

// Fingertip returns the index fingertip position scaled to frame pixels.
func (h *HandLandmarks) Fingertip(frameWidth, frameHeight int) (x, y float64) {
	tip := h.Points[IndexTip]
	return tip.X * float64(frameWidth), tip.Y * float64(frameHeight)
}
