package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampFraction(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

func progressStyleFor(pct float64) func(...string) string {
	switch {
	case pct < 0.33:
		return StyleRed.Render
	case pct < 0.66:
		return StyleYellow.Render
	default:
		return StyleGreen.Render
	}
}

func bar(pct float64, width int) string {
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a bar like [████░░░░] 45.0% for a 0..1 fraction.
// Green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct = clampFraction(pct)
	if width < 2 {
		width = 2
	}
	return fmt.Sprintf("[%s] %5.1f%%", progressStyleFor(pct)(bar(pct, width)), pct*100)
}

// RenderCompactBar renders the bar alone, without brackets or a label.
// dim renders it muted regardless of value.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampFraction(pct)
	if width < 2 {
		width = 2
	}
	if dim {
		return StyleDim.Render(bar(pct, width))
	}
	return progressStyleFor(pct)(bar(pct, width))
}
