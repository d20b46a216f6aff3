package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbText       = tcell.NewRGBColor(192, 202, 245)
	RgbDim        = tcell.NewRGBColor(86, 95, 137)
	RgbBorder     = tcell.NewRGBColor(65, 72, 104)

	RgbTyped      = tcell.NewRGBColor(158, 206, 106) // Green for typed prefix
	RgbCursor     = tcell.NewRGBColor(255, 165, 0)   // Orange cursor
	RgbCursorText = tcell.NewRGBColor(0, 0, 0)
	RgbError      = tcell.NewRGBColor(255, 0, 0) // Error flash background

	RgbGuide = tcell.NewRGBColor(122, 162, 247) // Blue target polyline
	RgbTrace = tcell.NewRGBColor(255, 158, 100) // Orange player polyline

	RgbGaugeHigh  = tcell.NewRGBColor(158, 206, 106)
	RgbGaugeMid   = tcell.NewRGBColor(224, 175, 104)
	RgbGaugeLow   = tcell.NewRGBColor(247, 118, 142)
	RgbGaugeEmpty = tcell.NewRGBColor(50, 50, 50)

	RgbStatusBg  = tcell.NewRGBColor(36, 40, 59)
	RgbOverlayBg = tcell.NewRGBColor(200, 50, 50)
	RgbPausedBg  = tcell.NewRGBColor(135, 206, 250)
	RgbOverlayFg = tcell.NewRGBColor(0, 0, 0)
)

// GaugeColor returns the bar color for a fill ratio in [0,1]
func GaugeColor(ratio float64) tcell.Color {
	switch {
	case ratio > 0.5:
		return RgbGaugeHigh
	case ratio > 0.25:
		return RgbGaugeMid
	default:
		return RgbGaugeLow
	}
}

// AccuracyColor grades an accuracy readout
func AccuracyColor(acc float64, success bool) tcell.Color {
	switch {
	case success:
		return RgbGaugeHigh
	case acc > 0.5:
		return RgbGaugeMid
	default:
		return RgbGaugeLow
	}
}
