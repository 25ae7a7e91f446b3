// Package testdata builds synthetic camera frames for tests, so no real
// capture device or recorded footage is needed.
package testdata

import "gocv.io/x/gocv"

// SolidFrame returns a BGR frame filled with a single intensity.
// The caller is responsible for closing the returned Mat.
func SolidFrame(width, height int, value float64) *gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(value, value, value, 0),
		height, width, gocv.MatTypeCV8UC3,
	)
	return &mat
}

// MotionSequence returns n frames alternating between dark and bright, so
// consecutive frames always register as motion when played back.
func MotionSequence(width, height, n int) []*gocv.Mat {
	frames := make([]*gocv.Mat, 0, n)
	for i := 0; i < n; i++ {
		value := 0.0
		if i%2 == 1 {
			value = 255.0
		}
		frames = append(frames, SolidFrame(width, height, value))
	}
	return frames
}

// CloseFrames releases every Mat in the slice.
func CloseFrames(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
