package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/sparsha/internal/app"
	"github.com/ayusman/sparsha/internal/capture"
	"github.com/ayusman/sparsha/internal/detector"
	"github.com/ayusman/sparsha/internal/server"
	"github.com/ayusman/sparsha/internal/store"
	"github.com/ayusman/sparsha/testdata"
)

// Normalized fingertip position of the "7" key in a 1280x720 frame.
const (
	tipXSeven = 940.0 / 1280.0
	tipYSeven = 298.0 / 720.0
)

func TestE2E_PressWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	s, err := store.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	application := app.New(app.Config{
		Store:     s,
		PluginDir: filepath.Join(tmpDir, "plugins"),
	})

	srv := server.New(server.Config{Store: s, App: application})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("PressButtons", func(t *testing.T) {
		for _, b := range []string{"1", "2", "×", "4", "="} {
			body := `{"button":"` + b + `"}`
			resp, err := client.Post(ts.URL+"/api/press", "application/json", strings.NewReader(body))
			if err != nil {
				t.Fatalf("press %q error = %v", b, err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("press %q status = %d, want %d", b, resp.StatusCode, http.StatusOK)
			}
			resp.Body.Close()
		}
	})

	t.Run("StateShowsResult", func(t *testing.T) {
		resp, _ := client.Get(ts.URL + "/api/state")
		var state struct {
			Display string `json:"display"`
		}
		json.NewDecoder(resp.Body).Decode(&state)
		resp.Body.Close()

		if state.Display != "48" {
			t.Errorf("display = %q, want %q", state.Display, "48")
		}
	})

	t.Run("HistoryHoldsCalculation", func(t *testing.T) {
		resp, _ := client.Get(ts.URL + "/api/history")
		var history struct {
			Entries []struct {
				Text string `json:"text"`
			} `json:"entries"`
		}
		json.NewDecoder(resp.Body).Decode(&history)
		resp.Body.Close()

		if len(history.Entries) != 1 || history.Entries[0].Text != "12 × 4 = 48" {
			t.Errorf("history = %+v, want [12 × 4 = 48]", history.Entries)
		}
	})

	t.Run("APIStillWorks", func(t *testing.T) {
		resp, _ := client.Get(ts.URL + "/api/health")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after calculator operations")
		}
		resp.Body.Close()
	})
}

func TestE2E_TouchToHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	s, _ := store.New(filepath.Join(tmpDir, "data.db"))
	defer s.Close()

	application := app.New(app.Config{
		Store:        s,
		PluginDir:    filepath.Join(tmpDir, "plugins"),
		MotionThresh: 0.05,
	})

	// Play back synthetic frames with constant motion and a hand pointing
	// at the "7" key.
	frames := testdata.MotionSequence(1280, 720, 2)
	defer testdata.CloseFrames(frames)

	mockDetector := detector.NewMockDetector()
	mockDetector.SetHands([]detector.HandLandmarks{detector.PointingLandmarksAt(tipXSeven, tipYSeven)})
	application.SetDetector(mockDetector)
	application.SetCamera(capture.NewMockCamera(frames, true))

	if err := application.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer application.Stop()
	application.SetEnabled(true)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if snap := application.Snapshot(); snap.LastActivated == "7" {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	snap := application.Snapshot()
	if snap.LastActivated != "7" {
		t.Fatalf("LastActivated = %q, want %q (status %q)", snap.LastActivated, "7", snap.Status)
	}
	if !strings.HasPrefix(snap.Display, "7") {
		t.Errorf("display = %q, want it to start with the touched digit", snap.Display)
	}
}

func TestE2E_ActionBinding(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	s, _ := store.New(filepath.Join(tmpDir, "data.db"))
	defer s.Close()

	srv := server.New(server.Config{Store: s})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	resp, err := client.Post(
		ts.URL+"/api/actions",
		"application/json",
		strings.NewReader(`{"event": "calculation", "plugin_name": "clipboard", "action_name": "copy-result"}`),
	)
	if err != nil {
		t.Fatalf("create action error = %v", err)
	}

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("create action status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	resp.Body.Close()

	resp, err = client.Get(ts.URL + "/api/actions")
	if err != nil {
		t.Fatalf("list actions error = %v", err)
	}

	var listResp struct {
		Actions []struct {
			ID         string `json:"id"`
			Event      string `json:"event"`
			PluginName string `json:"plugin_name"`
			ActionName string `json:"action_name"`
			Enabled    bool   `json:"enabled"`
		} `json:"actions"`
	}
	json.NewDecoder(resp.Body).Decode(&listResp)
	resp.Body.Close()

	if len(listResp.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(listResp.Actions))
	}

	if listResp.Actions[0].Event != "calculation" {
		t.Errorf("action event mismatch: got %s, want calculation", listResp.Actions[0].Event)
	}
	if !listResp.Actions[0].Enabled {
		t.Error("new binding should be enabled")
	}
}
