package app

import (
	"log"
	"time"

	"github.com/ayusman/sparsha/internal/touch"
)

// runPipeline is the main loop that turns camera frames into button
// activations. It manages the state transitions between idle and active
// modes based on motion detection.
//
// Pipeline logic:
// 1. Start in idle mode (IdleFPS)
// 2. On motion detected, switch to active mode (ActiveFPS)
// 3. Run hand detection and take the fingertip of the first hand
// 4. Resolve the fingertip against the button layout
// 5. While the pointing gesture is held, emit debounced activations
// 6. Feed activations through the calculator engine
// 7. After 2s without motion, switch back to idle mode
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()
	layoutWidth, layoutHeight := 0, 0

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Skip processing if detection is disabled
			if !a.IsEnabled() {
				continue
			}

			// Read a frame from the camera
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > IdleTimeout {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			// Skip hand detection while idle; the press pulse still
			// needs to decay so the overlay does not freeze mid-press.
			if !activeMode || a.detector == nil {
				frame.Close()
				a.observeFrame(nil, false)
				continue
			}

			frameWidth := frame.Cols()
			frameHeight := frame.Rows()

			// Rebuild the layout when the frame size changes, so the
			// button column stays anchored at the right edge.
			if frameWidth != layoutWidth || frameHeight != layoutHeight {
				layoutWidth, layoutHeight = frameWidth, frameHeight
				a.mu.Lock()
				a.tester.SetLayout(touch.BuildLayout(float64(frameWidth), float64(frameHeight)))
				a.mu.Unlock()
			}

			// Step 2: Hand detection
			hands, err := a.detector.Detect(frame)
			frame.Close() // Done with the frame

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			if len(hands) == 0 {
				a.observeFrame(nil, false)
				continue
			}

			// Step 3: Fingertip and gesture of the first hand
			hand := &hands[0]
			x, y := hand.Fingertip(frameWidth, frameHeight)
			point := touch.Point{X: x, Y: y}

			a.observeFrame(&point, hand.IsPointing())
		}
	}
}

// observeFrame folds one frame's fingertip observation into the hit tester,
// the debouncer and, when an activation fires, the calculator engine.
func (a *App) observeFrame(point *touch.Point, isPointing bool) {
	now := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	snap := a.tester.Observe(point, now)
	a.fingertip = point
	a.hovered = snap.Hovered
	a.pressed = snap.Pressed

	switch {
	case point == nil:
		a.status = StatusNoHand
	case isPointing && snap.Hovered != "":
		a.status = StatusTouching
	case isPointing:
		a.status = StatusPointing
	default:
		a.status = StatusHand
	}

	if id, ok := a.debouncer.Observe(isPointing, snap.Hovered, now); ok {
		log.Printf("Button activated: %s", id)
		a.applyLocked(id, now)
	}
}
