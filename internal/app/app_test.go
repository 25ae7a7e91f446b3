package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/sparsha/internal/calc"
	"github.com/ayusman/sparsha/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return New(Config{PluginDir: t.TempDir()})
}

func pressAll(t *testing.T, a *App, buttons ...calc.ButtonID) {
	t.Helper()
	for _, b := range buttons {
		if err := a.ForceButton(b); err != nil {
			t.Fatalf("ForceButton(%q) error = %v", b, err)
		}
	}
}

func TestApp_ForceButton_Arithmetic(t *testing.T) {
	a := newTestApp(t)

	pressAll(t, a, "7", calc.BtnAdd, "3", calc.BtnEquals)

	snap := a.Snapshot()
	if snap.Display != "10" {
		t.Errorf("Display = %q, want %q", snap.Display, "10")
	}
	if snap.DisplayError {
		t.Error("DisplayError = true, want false")
	}
	if snap.LastActivated != calc.BtnEquals {
		t.Errorf("LastActivated = %q, want %q", snap.LastActivated, calc.BtnEquals)
	}
	if snap.Pressed != calc.BtnEquals {
		t.Errorf("Pressed = %q, want %q", snap.Pressed, calc.BtnEquals)
	}

	if len(snap.History) != 1 {
		t.Fatalf("History length = %d, want 1", len(snap.History))
	}
	if snap.History[0].Text != "7 + 3 = 10" {
		t.Errorf("History entry = %q, want %q", snap.History[0].Text, "7 + 3 = 10")
	}
}

func TestApp_ForceButton_Invalid(t *testing.T) {
	a := newTestApp(t)

	if err := a.ForceButton("q"); err == nil {
		t.Fatal("ForceButton(\"q\") error = nil, want error")
	}

	if snap := a.Snapshot(); snap.Display != "0" {
		t.Errorf("Display after invalid button = %q, want %q", snap.Display, "0")
	}
}

func TestApp_ForceButton_DivideByZero(t *testing.T) {
	a := newTestApp(t)

	pressAll(t, a, "5", calc.BtnDivide, "0", calc.BtnEquals)

	snap := a.Snapshot()
	if !snap.DisplayError {
		t.Error("DisplayError = false, want true")
	}
	if len(snap.History) != 0 {
		t.Errorf("History length = %d, want 0 (failed evaluations are not logged)", len(snap.History))
	}
}

func TestApp_ResetHistory(t *testing.T) {
	a := newTestApp(t)

	pressAll(t, a, "2", calc.BtnAdd, "2", calc.BtnEquals)
	if len(a.History()) != 1 {
		t.Fatal("expected one history entry before reset")
	}

	a.ResetHistory()

	if got := a.History(); len(got) != 0 {
		t.Errorf("History length after reset = %d, want 0", len(got))
	}
}

func TestApp_SetEnabled_ClearsTransientState(t *testing.T) {
	a := newTestApp(t)

	a.SetEnabled(true)
	if !a.IsEnabled() {
		t.Fatal("IsEnabled() = false after SetEnabled(true)")
	}

	a.mu.Lock()
	a.status = StatusTouching
	a.hovered = "5"
	a.mu.Unlock()

	a.SetEnabled(false)

	snap := a.Snapshot()
	if snap.Status != StatusNoHand {
		t.Errorf("Status = %q, want %q", snap.Status, StatusNoHand)
	}
	if snap.Hovered != "" {
		t.Errorf("Hovered = %q, want empty", snap.Hovered)
	}
}

func TestApp_OnActivation_ReceivesEveryAcceptedButton(t *testing.T) {
	a := newTestApp(t)

	activated := make(chan calc.ButtonID, 8)
	a.OnActivation(func(id calc.ButtonID) { activated <- id })

	pressAll(t, a, "7", calc.BtnAdd, "3", calc.BtnEquals)

	// Callbacks run on their own goroutines, so collect without assuming
	// delivery order.
	got := make(map[calc.ButtonID]int)
	for i := 0; i < 4; i++ {
		select {
		case id := <-activated:
			got[id]++
		case <-time.After(time.Second):
			t.Fatalf("only %d of 4 activation callbacks fired", i)
		}
	}

	for _, id := range []calc.ButtonID{"7", calc.BtnAdd, "3", calc.BtnEquals} {
		if got[id] != 1 {
			t.Errorf("activations for %q = %d, want 1", id, got[id])
		}
	}
}

func TestApp_OnActivation_SkipsNoOps(t *testing.T) {
	a := newTestApp(t)

	activated := make(chan calc.ButtonID, 1)
	a.OnActivation(func(id calc.ButtonID) { activated <- id })

	// "=" with no pending operation is a no-op and must not report.
	if err := a.ForceButton(calc.BtnEquals); err != nil {
		t.Fatalf("ForceButton(=) error = %v", err)
	}

	select {
	case id := <-activated:
		t.Errorf("activation callback fired for no-op, got %q", id)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSplitCalculation(t *testing.T) {
	tests := []struct {
		text       string
		expression string
		result     string
	}{
		{"7 + 3 = 10", "7 + 3", "10"},
		{"10 - 20 = -10", "10 - 20", "-10"},
		{"5 ÷ 4 = 1.25", "5 ÷ 4", "1.25"},
		{"no separator", "no separator", ""},
	}

	for _, tt := range tests {
		expression, result := splitCalculation(tt.text)
		if expression != tt.expression || result != tt.result {
			t.Errorf("splitCalculation(%q) = (%q, %q), want (%q, %q)",
				tt.text, expression, result, tt.expression, tt.result)
		}
	}
}

func TestApp_CalculationBinding_FiresPlugin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	tmpDir := t.TempDir()

	// Plugin that appends its stdin to a capture file.
	pluginDir := filepath.Join(tmpDir, "plugins", "recorder")
	if err := os.MkdirAll(pluginDir, 0755); err != nil {
		t.Fatalf("failed to create plugin dir: %v", err)
	}

	captureFile := filepath.Join(tmpDir, "captured.json")
	script := "#!/bin/sh\ncat >> " + captureFile + "\necho '{\"success\":true}'\n"
	if err := os.WriteFile(filepath.Join(pluginDir, "recorder.sh"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	manifest := `{"name":"recorder","version":"1.0.0","executable":"recorder.sh","actions":["record"]}`
	if err := os.WriteFile(filepath.Join(pluginDir, "plugin.json"), []byte(manifest), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	s, err := store.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	binding := &store.Action{
		ID:         "binding-1",
		Event:      store.EventCalculation,
		PluginName: "recorder",
		ActionName: "record",
		Enabled:    true,
	}
	if err := s.Actions().Create(binding); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	a := New(Config{Store: s, PluginDir: filepath.Join(tmpDir, "plugins")})
	if err := a.DiscoverPlugins(); err != nil {
		t.Fatalf("DiscoverPlugins() error = %v", err)
	}

	pressAll(t, a, "7", calc.BtnAdd, "3", calc.BtnEquals)

	// The binding runs on a background goroutine; poll for the side effect.
	deadline := time.Now().Add(3 * time.Second)
	var captured []byte
	for time.Now().Before(deadline) {
		captured, err = os.ReadFile(captureFile)
		if err == nil && len(captured) > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if len(captured) == 0 {
		t.Fatal("plugin was never executed")
	}

	var req struct {
		Action     string `json:"action"`
		Event      string `json:"event"`
		Expression string `json:"expression"`
		Result     string `json:"result"`
	}
	if err := json.Unmarshal(captured, &req); err != nil {
		t.Fatalf("failed to parse captured request %q: %v", captured, err)
	}

	if req.Action != "record" || req.Event != "calculation" {
		t.Errorf("captured request = %+v, want record/calculation", req)
	}
	if req.Expression != "7 + 3" || req.Result != "10" {
		t.Errorf("captured calculation = %q = %q, want %q = %q", req.Expression, req.Result, "7 + 3", "10")
	}

	if !strings.Contains(string(captured), "7 + 3") {
		t.Errorf("captured request missing expression: %s", captured)
	}
}
