package formatter

import (
	"strings"
	"time"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderThresholdBar draws how much of a phase's target time has been used.
// The bar fills green, turns yellow past two thirds and red once the
// threshold is exceeded.
func RenderThresholdBar(elapsed, threshold time.Duration, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 1.0
	if threshold > 0 {
		pct = float64(elapsed) / float64(threshold)
	}
	over := elapsed > threshold
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case over:
		style = StyleRed
	case pct >= 0.66:
		style = StyleYellow
	}
	return style.Render(bar)
}
