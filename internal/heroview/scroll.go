package heroview

import (
	"fmt"
	"math"
)

const (
	// heroPages is how many viewport heights the hero section scrolls
	// through: a 300vh section minus one visible viewport.
	heroPages = 2
	// wheelStep is the scroll distance of one wheel notch in pixels.
	wheelStep = 60
)

// virtualScrollable is the scrollable height of the hero for a viewport.
func virtualScrollable(viewportHeight int) float64 {
	return float64(max(viewportHeight, 0)) * heroPages
}

// scrollBy moves offset by delta pixels and clamps it to [0, scrollable].
func scrollBy(offset, delta, scrollable float64) float64 {
	return math.Min(math.Max(offset+delta, 0), math.Max(scrollable, 0))
}

// sectionOffset is where section i starts scrolling in, used for the
// Page Up/Page Down keys.
func sectionOffset(i, n int, scrollable float64) float64 {
	if n <= 0 {
		return 0
	}
	i = min(max(i, 0), n-1)
	// Land just past the bucket boundary so the section is active.
	return scrollBy(0, (float64(i)/float64(n))*scrollable+1, scrollable)
}

// styleCache remembers the last value written per key so unchanged
// styles are not rewritten every frame.
type styleCache map[string]string

func (c styleCache) changed(key, value string) bool {
	if c[key] == value {
		return false
	}
	c[key] = value
	return true
}

func opacity(v float64) string { return fmt.Sprintf("%.3f", v) }

func translateY(px float64) string { return fmt.Sprintf("translateY(%.1fpx)", px) }

func overlayTransform(scale float64) string { return fmt.Sprintf("scale(%.4f)", scale) }

func widthPercent(p float64) string { return fmt.Sprintf("%.2f%%", p) }

func dotTransform(active bool) string {
	if active {
		return "scale(1.4)"
	}
	return "scale(1)"
}

func dotColor(active bool) string {
	if active {
		return "hsl(var(--primary))"
	}
	return "hsl(var(--muted-foreground) / 0.4)"
}
