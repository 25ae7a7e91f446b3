package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ayusman/sparsha/internal/app"
	"github.com/ayusman/sparsha/internal/calc"
	"github.com/ayusman/sparsha/internal/server"
	"github.com/ayusman/sparsha/internal/store"
	"github.com/ayusman/sparsha/internal/touch"
	"github.com/ayusman/sparsha/internal/tray"
)

const serverAddr = ":8080"

func main() {
	fmt.Println("Sparsha - Virtual Touch Calculator")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".sparsha")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "sparsha.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the application from persisted settings
	settings := st.Settings()
	cooldownMs := settings.GetIntOr(store.SettingCooldownMs, int(touch.DefaultCooldown/time.Millisecond))

	a := app.New(app.Config{
		Store:     st,
		PluginDir: filepath.Join(dataDir, "plugins"),
		CameraID:  settings.GetIntOr(store.SettingCameraID, 0),
		Cooldown:  time.Duration(cooldownMs) * time.Millisecond,
	})

	if err := a.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	}

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start touch pipeline: %v", err)
	}
	defer a.Stop()
	a.SetEnabled(true)

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start the server
	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       a,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", serverAddr)
		if err := srv.ListenAndServe(serverAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// The tray owns the main thread until quit
	tr := tray.New()
	tr.OnToggle(a.SetEnabled)
	tr.OnClear(func() { a.ForceButton("C") })
	tr.OnResetHistory(a.ResetHistory)
	tr.OnOpenPanel(func() { openBrowser("http://localhost" + serverAddr) })
	tr.OnQuit(a.Stop)
	a.OnActivation(func(id calc.ButtonID) { tr.SetLastButton(string(id)) })
	tr.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.sparsha/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".sparsha", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
