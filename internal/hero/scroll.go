package hero

import (
	"fmt"
	"math"
)

// Silhouettes past this progress are pushed out of view.
const silhouetteCutoff = 0.85

// State is everything derived from one scroll position. It is a plain
// value; applying it to the scene and the page is the caller's job.
type State struct {
	Progress          float64
	Camera            Vec3
	Section           int
	Label             string
	ProgressWidth     float64
	OverlayScale      float64
	OverlayOpacity    float64
	Crossfade         []float64
	SilhouettesHidden bool
	NebulaZ           float64
}

// Progress normalizes a scroll offset against the scrollable height
// (element height minus viewport height) into [0, 1].
func Progress(offset, scrollable float64) float64 {
	if scrollable <= 0 {
		return 0
	}
	q := offset / scrollable
	if math.IsNaN(q) {
		return 0
	}
	return clamp(q, 0, 1)
}

// CameraAt maps progress onto the keyframe timeline. The timeline has
// len(keys)-1 segments; the camera moves continuously across them.
func CameraAt(keys []Vec3, p float64) Vec3 {
	switch n := len(keys); {
	case n == 0:
		return Vec3{}
	case n == 1 || p <= 0 || math.IsNaN(p):
		return keys[0]
	case p >= 1:
		return keys[n-1]
	}
	total := p * float64(len(keys)-1)
	idx := int(math.Floor(total))
	if last := len(keys) - 2; idx > last {
		idx = last
	}
	return Lerp(keys[idx], keys[idx+1], total-float64(idx))
}

// SectionAt buckets progress into one of n discrete sections. Unlike
// the camera segment this switches at 1/n boundaries.
func SectionAt(p float64, n int) int {
	if n <= 0 || math.IsNaN(p) {
		return 0
	}
	idx := int(math.Floor(clamp(p, 0, 1) * float64(n)))
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// Crossfade returns one opacity weight per section background. Weights
// peak at each section's keyframe and always sum to 1.
func Crossfade(p float64, n int) []float64 {
	weights := make([]float64, n)
	if n == 1 {
		weights[0] = 1
	}
	if n <= 1 {
		return weights
	}
	x := clamp(p, 0, 1) * float64(n-1)
	for i := range weights {
		weights[i] = clamp(1-math.Abs(x-float64(i)), 0, 1)
	}
	return weights
}

// SectionLabel renders the HUD counter, e.g. "02 / 03".
func SectionLabel(section, n int) string {
	return fmt.Sprintf("%02d / %02d", section+1, n)
}

// NebulaZ is the nebula depth for a raw scroll offset. It follows the
// farthest silhouette layer, which scrolls fastest.
func NebulaZ(offset float64) float64 {
	layers := DefaultSilhouetteLayers()
	last := layers[len(layers)-1]
	speed := 1 + float64(len(layers)-1)*0.9
	return last.Distance + offset*speed*0.5 - 100
}

// Mapper converts scroll offsets into hero State for a fixed set of
// sections.
type Mapper struct {
	keys     []Vec3
	sections int
}

func NewMapper(sections []Section) Mapper {
	return Mapper{keys: Keyframes(sections), sections: len(sections)}
}

// Map is pure: the same offset and scrollable height always yield the
// same State.
func (m Mapper) Map(offset, scrollable float64) State {
	p := Progress(offset, scrollable)
	sec := SectionAt(p, m.sections)
	return State{
		Progress:          p,
		Camera:            CameraAt(m.keys, p),
		Section:           sec,
		Label:             SectionLabel(sec, m.sections),
		ProgressWidth:     p * 100,
		OverlayScale:      1 + p*0.15,
		OverlayOpacity:    math.Max(0, 1-p*2.5),
		Crossfade:         Crossfade(p, m.sections),
		SilhouettesHidden: p > silhouetteCutoff,
		NebulaZ:           NebulaZ(offset),
	}
}
