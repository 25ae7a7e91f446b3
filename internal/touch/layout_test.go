package touch

import (
	"testing"

	"github.com/ayusman/sparsha/internal/calc"
)

func TestBuildLayout_Deterministic(t *testing.T) {
	a := BuildLayout(1280, 720)
	b := BuildLayout(1280, 720)

	if len(a.Buttons) != len(b.Buttons) {
		t.Fatalf("button counts differ: %d vs %d", len(a.Buttons), len(b.Buttons))
	}
	for i := range a.Buttons {
		if a.Buttons[i] != b.Buttons[i] {
			t.Errorf("button %d differs between identical builds", i)
		}
	}
}

func TestBuildLayout_AllSymbolsPresent(t *testing.T) {
	layout := BuildLayout(1280, 720)

	if len(layout.Buttons) != 20 {
		t.Fatalf("button count = %d, want 20", len(layout.Buttons))
	}

	seen := make(map[calc.ButtonID]bool)
	for _, b := range layout.Buttons {
		if seen[b.ID] {
			t.Errorf("symbol %q appears twice in the layout", b.ID)
		}
		seen[b.ID] = true

		if !b.ID.IsValid() {
			t.Errorf("laid-out symbol %q is not in the button set", b.ID)
		}
	}
}

func TestBuildLayout_ZeroIsDoubleWidth(t *testing.T) {
	layout := BuildLayout(1280, 720)

	zero, ok := layout.ButtonAt("0")
	if !ok {
		t.Fatal("layout has no 0 button")
	}
	one, ok := layout.ButtonAt("1")
	if !ok {
		t.Fatal("layout has no 1 button")
	}

	zeroWidth := zero.Bounds.Max.X - zero.Bounds.Min.X
	oneWidth := one.Bounds.Max.X - one.Bounds.Min.X

	if zeroWidth != oneWidth*2+ButtonMargin {
		t.Errorf("zero width = %v, want %v", zeroWidth, oneWidth*2+ButtonMargin)
	}
}

func TestBuildLayout_ClampsSmallPanels(t *testing.T) {
	layout := BuildLayout(100, 100)

	if layout.Width < PanelWidth {
		t.Errorf("Width = %v, want at least %v", layout.Width, PanelWidth)
	}
	if layout.Height < minPanelHeight {
		t.Errorf("Height = %v, want at least %v", layout.Height, float64(minPanelHeight))
	}

	// Every button must lie within the clamped panel
	for _, b := range layout.Buttons {
		if b.Bounds.Min.X < 0 || b.Bounds.Max.X > layout.Width ||
			b.Bounds.Min.Y < 0 || b.Bounds.Max.Y > layout.Height {
			t.Errorf("button %q spills outside the panel: %+v", b.ID, b.Bounds)
		}
	}
}

func TestBuildLayout_CentersInsideBounds(t *testing.T) {
	layout := BuildLayout(1280, 720)

	for _, b := range layout.Buttons {
		if !b.Bounds.Contains(b.Center) {
			t.Errorf("center of %q lies outside its bounds", b.ID)
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Min: Point{X: 10, Y: 10}, Max: Point{X: 20, Y: 20}}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "inside", p: Point{X: 15, Y: 15}, want: true},
		{name: "on border", p: Point{X: 10, Y: 20}, want: true},
		{name: "left of rect", p: Point{X: 9, Y: 15}, want: false},
		{name: "below rect", p: Point{X: 15, Y: 21}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
