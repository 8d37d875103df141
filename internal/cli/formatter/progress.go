package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderConfidence renders a confidence bar like [████░░░░] 67%.
// The bar is colored by band: green >=70, yellow 40-69, red <40.
func RenderConfidence(confidence int, width int) string {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	if width < 2 {
		width = 2
	}

	filled := confidence * width / 100
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if confidence < 40 {
		style = StyleRed
	} else if confidence < 70 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d%%", style.Render(bar), confidence)
}
