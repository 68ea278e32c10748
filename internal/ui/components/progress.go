package components

import (
	"strings"

	"github.com/mathpech/mathpech/internal/ui/theme"
)

// ProgressBar renders a horizontal bar filled to ratio (0.0 - 1.0).
func ProgressBar(width int, ratio float64) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(float64(width)*ratio + 0.5)
	if filled > width {
		filled = width
	}

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", width-filled))
}
