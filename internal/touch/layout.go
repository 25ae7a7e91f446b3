// Package touch turns fingertip positions into debounced button
// activations: it lays out the button grid, resolves which button a point
// lands on, and rate-limits activations with a global cooldown.
package touch

import (
	"math"

	"github.com/ayusman/sparsha/internal/calc"
)

// Panel geometry in reference pixels. The button grid occupies a fixed
// column anchored at the right edge of the panel, below the display area.
const (
	PanelWidth   = 400
	ButtonWidth  = 80
	ButtonHeight = 60
	ButtonMargin = 8
	PanelPadding = 20
	GridTop      = 200
)

// GridRows is the calculator button arrangement, top row first.
// Symbols are unique across the grid; the digit 0 spans two cells.
var GridRows = [][]calc.ButtonID{
	{calc.BtnClear, calc.BtnNegate, calc.BtnPercent, calc.BtnDivide},
	{"7", "8", "9", calc.BtnMultiply},
	{"4", "5", "6", calc.BtnSubtract},
	{"1", "2", "3", calc.BtnAdd},
	{"0", calc.BtnDot, calc.BtnEquals, calc.BtnDelete},
}

// Point is a 2D point in panel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle given by two corner points.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Contains reports whether p lies inside the rectangle, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Button is a laid-out calculator button. Buttons are immutable once a
// layout is built; a panel resize produces a new layout.
type Button struct {
	ID     calc.ButtonID `json:"id"`
	Bounds Rect          `json:"bounds"`
	Center Point         `json:"center"`
}

// Layout maps every button to its hit region and activation center for a
// given panel size.
type Layout struct {
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Buttons []Button `json:"buttons"`

	byID map[calc.ButtonID]int
}

// minPanelHeight is the natural height of the grid: top offset plus five
// rows of buttons with margins between them.
const minPanelHeight = GridTop + 5*ButtonHeight + 4*ButtonMargin

// BuildLayout computes button hit regions for the given panel size.
// Deterministic: the same dimensions always produce the same rectangles.
// Dimensions smaller than the grid's natural size are clamped up to it.
func BuildLayout(panelWidth, panelHeight float64) Layout {
	if panelWidth < PanelWidth {
		panelWidth = PanelWidth
	}
	if panelHeight < minPanelHeight {
		panelHeight = minPanelHeight
	}

	layout := Layout{
		Width:  panelWidth,
		Height: panelHeight,
		byID:   make(map[calc.ButtonID]int),
	}

	startX := panelWidth - PanelWidth + PanelPadding
	startY := float64(GridTop)

	for rowIdx, row := range GridRows {
		for colIdx, id := range row {
			x := startX + float64(colIdx)*(ButtonWidth+ButtonMargin)
			y := startY + float64(rowIdx)*(ButtonHeight+ButtonMargin)

			width := float64(ButtonWidth)
			if id == "0" {
				width = ButtonWidth*2 + ButtonMargin
			}

			button := Button{
				ID:     id,
				Bounds: Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + width, Y: y + ButtonHeight}},
				Center: Point{X: x + width/2, Y: y + ButtonHeight/2},
			}

			layout.byID[id] = len(layout.Buttons)
			layout.Buttons = append(layout.Buttons, button)
		}
	}

	return layout
}

// ButtonAt returns the laid-out button for the given id.
func (l Layout) ButtonAt(id calc.ButtonID) (Button, bool) {
	idx, ok := l.byID[id]
	if !ok {
		return Button{}, false
	}
	return l.Buttons[idx], true
}

// distance is the Euclidean distance between two points.
func distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
