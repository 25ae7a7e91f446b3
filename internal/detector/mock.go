package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingLandmarks returns a preset HandLandmarks forming the pointing
// gesture with the index fingertip at the frame center.
func PointingLandmarks() HandLandmarks {
	return PointingLandmarksAt(0.5, 0.5)
}

// PointingLandmarksAt returns a pointing-gesture hand whose index fingertip
// sits at the given normalized frame position. The index finger is extended
// upward while the middle, ring and pinky fingers are curled back toward
// the palm.
func PointingLandmarksAt(tipX, tipY float64) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	// Anchor the wrist below and slightly left of the fingertip
	landmarks.Points[Wrist] = Point3D{X: tipX - 0.05, Y: tipY + 0.35, Z: 0.0}

	// Thumb folded across the palm
	landmarks.Points[ThumbCMC] = Point3D{X: tipX - 0.02, Y: tipY + 0.32, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: tipX + 0.01, Y: tipY + 0.28, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: tipX + 0.02, Y: tipY + 0.25, Z: -0.02}
	landmarks.Points[ThumbTip] = Point3D{X: tipX + 0.02, Y: tipY + 0.23, Z: -0.03}

	// Index finger extended upward toward the tip
	landmarks.Points[IndexMCP] = Point3D{X: tipX - 0.01, Y: tipY + 0.22, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: tipX, Y: tipY + 0.14, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: tipX, Y: tipY + 0.07, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: tipX, Y: tipY, Z: 0.0}

	// Middle finger curled (tip below its PIP)
	landmarks.Points[MiddleMCP] = Point3D{X: tipX - 0.05, Y: tipY + 0.20, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: tipX - 0.05, Y: tipY + 0.16, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: tipX - 0.06, Y: tipY + 0.20, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: tipX - 0.07, Y: tipY + 0.24, Z: -0.02}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: tipX - 0.09, Y: tipY + 0.22, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: tipX - 0.09, Y: tipY + 0.18, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: tipX - 0.10, Y: tipY + 0.22, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: tipX - 0.11, Y: tipY + 0.26, Z: -0.02}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: tipX - 0.13, Y: tipY + 0.24, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: tipX - 0.13, Y: tipY + 0.20, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: tipX - 0.14, Y: tipY + 0.24, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: tipX - 0.15, Y: tipY + 0.28, Z: -0.02}

	return landmarks
}

// OpenPalmLandmarks returns a preset HandLandmarks representing an open
// palm. All fingers are extended, so this is not a pointing gesture.
func OpenPalmLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist at base
	landmarks.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	landmarks.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	landmarks.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	landmarks.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward
	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended upward
	landmarks.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return landmarks
}
