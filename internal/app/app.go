// Package app wires the capture, detection, touch and calculator layers into
// the virtual-touch calculator pipeline and exposes its state to renderers.
package app

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ayusman/sparsha/internal/calc"
	"github.com/ayusman/sparsha/internal/capture"
	"github.com/ayusman/sparsha/internal/detector"
	"github.com/ayusman/sparsha/internal/plugin"
	"github.com/ayusman/sparsha/internal/store"
	"github.com/ayusman/sparsha/internal/touch"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeout is how long without motion before dropping back to idle.
	IdleTimeout = 2 * time.Second
	// PluginTimeout bounds a single result-plugin execution.
	PluginTimeout = 5 * time.Second
)

// Hand status values shown in the overlay.
const (
	StatusNoHand   = "NO HAND"
	StatusHand     = "HAND"
	StatusPointing = "POINTING"
	StatusTouching = "TOUCHING"
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	PluginDir    string
	CameraID     int
	MotionThresh float64
	Cooldown     time.Duration
}

// Snapshot is the renderable state of the calculator at one instant.
type Snapshot struct {
	Display       string        `json:"display"`
	DisplayError  bool          `json:"display_error"`
	Operator      calc.ButtonID `json:"operator,omitempty"`
	Hovered       calc.ButtonID `json:"hovered,omitempty"`
	Pressed       calc.ButtonID `json:"pressed,omitempty"`
	LastActivated calc.ButtonID `json:"last_activated,omitempty"`
	Fingertip     *touch.Point  `json:"fingertip,omitempty"`
	Status        string        `json:"status"`
	History       []calc.Entry  `json:"history"`
}

// App orchestrates frame capture, fingertip detection, hit testing and the
// calculator state machine.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	engine     *calc.Engine
	tester     *touch.Tester
	debouncer  *touch.Debouncer
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor

	enabled      bool
	onActivation func(calc.ButtonID)
	mu           sync.RWMutex
	stopCh       chan struct{}

	// Transient per-frame state refreshed by the pipeline.
	fingertip     *touch.Point
	status        string
	hovered       calc.ButtonID
	pressed       calc.ButtonID
	lastActivated calc.ButtonID
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		engine:     calc.NewEngine(),
		tester:     touch.NewTester(touch.BuildLayout(capture.DefaultWidth, capture.DefaultHeight)),
		debouncer:  touch.NewDebouncer(config.Cooldown),
		pluginMgr:  plugin.NewManager(config.PluginDir),
		pluginExec: plugin.NewExecutor(PluginTimeout),
		status:     StatusNoHand,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables touch detection. Disabling also resets the
// debounce window so the next activation after re-enabling is immediate.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
	if !enabled {
		a.debouncer.Reset()
		a.status = StatusNoHand
		a.fingertip = nil
		a.hovered = ""
	}
}

// IsEnabled returns whether touch detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// OnActivation sets the callback invoked after every accepted button
// activation, from camera touches and forced presses alike. The callback
// runs on its own goroutine and must not block on calculator state.
func (a *App) OnActivation(fn func(calc.ButtonID)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onActivation = fn
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the camera before the pipeline starts. Tests use this
// to feed recorded or synthetic frames.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (a *App) DiscoverPlugins() error {
	return a.pluginMgr.Discover()
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Touch pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Touch pipeline stopped")
}

// Snapshot returns the current renderable state of the calculator.
func (a *App) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Snapshot{
		Display:       a.engine.Display(),
		DisplayError:  a.engine.DisplayValue().IsError(),
		Operator:      a.engine.PendingOperator(),
		Hovered:       a.hovered,
		Pressed:       a.pressed,
		LastActivated: a.lastActivated,
		Fingertip:     a.fingertip,
		Status:        a.status,
		History:       a.engine.History().Recent(0),
	}
}

// ForceButton applies a button activation directly, bypassing the camera.
// Invalid button ids are rejected; valid ones go through the same engine
// transition and press feedback as a fingertip touch.
func (a *App) ForceButton(id calc.ButtonID) error {
	if !id.IsValid() {
		return calc.ErrUnknownButton
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.applyLocked(id, time.Now())
	return nil
}

// History returns the completed calculations, oldest first.
func (a *App) History() []calc.Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.engine.History().Recent(0)
}

// ResetHistory clears the calculation log.
func (a *App) ResetHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine.History().Clear()
}

// Layout returns the current button layout.
func (a *App) Layout() touch.Layout {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tester.Layout()
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// applyLocked feeds one activation through the engine and triggers press
// feedback and event bindings. Callers must hold a.mu.
func (a *App) applyLocked(id calc.ButtonID, now time.Time) {
	if !a.engine.Apply(id) {
		return
	}

	a.tester.MarkPressed(id, now)
	a.pressed = id
	a.lastActivated = id

	if a.onActivation != nil {
		go a.onActivation(id)
	}

	switch id {
	case calc.BtnEquals:
		// Apply returned true, so "=" completed; a non-error display
		// means the evaluation succeeded and was logged.
		if a.engine.DisplayValue().IsError() {
			return
		}
		recent := a.engine.History().Recent(1)
		if len(recent) == 0 {
			return
		}
		expression, result := splitCalculation(recent[0].Text)
		go a.fireActions(store.EventCalculation, expression, result)
	case calc.BtnClear:
		go a.fireActions(store.EventClear, "", "")
	}
}

// splitCalculation splits a history line "a op b = r" into its expression
// and result halves.
func splitCalculation(text string) (expression, result string) {
	idx := strings.LastIndex(text, " = ")
	if idx < 0 {
		return text, ""
	}
	return text[:idx], text[idx+3:]
}

// fireActions runs every enabled plugin binding for the event. Failures are
// logged and never surface into the calculator state.
func (a *App) fireActions(event store.Event, expression, result string) {
	if a.config.Store == nil {
		return
	}

	bindings, err := a.config.Store.Actions().ListByEvent(event)
	if err != nil {
		log.Printf("Failed to list %s bindings: %v", event, err)
		return
	}

	for _, binding := range bindings {
		p, err := a.pluginMgr.Get(binding.PluginName)
		if err != nil {
			log.Printf("Plugin %q not found for %s binding", binding.PluginName, event)
			continue
		}

		req := &plugin.Request{
			Action:     binding.ActionName,
			Event:      string(event),
			Expression: expression,
			Result:     result,
			Config:     json.RawMessage(binding.Config),
		}

		resp, err := a.pluginExec.Execute(context.Background(), p, req)
		if err != nil {
			log.Printf("Plugin %q failed: %v", binding.PluginName, err)
			continue
		}
		if !resp.Success {
			log.Printf("Plugin %q reported error: %s", binding.PluginName, resp.Error)
		}
	}
}
