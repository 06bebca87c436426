package hero

import (
	"math"
	"math/rand/v2"
)

// Palette colors shared by the star layers, nebula and atmosphere.
var (
	Green  = HSL(145, 0.8, 0.5)
	Orange = HSL(20, 0.9, 0.6)
	White  = Color{0.95, 0.95, 0.95}
)

// Field is a randomized point cloud. All slices have the same length.
type Field struct {
	Positions []Vec3
	Colors    []Color
	Sizes     []float64
	Depth     float64
}

func (f Field) Len() int { return len(f.Positions) }

func newField(count int, depth float64) Field {
	return Field{
		Positions: make([]Vec3, 0, count),
		Colors:    make([]Color, 0, count),
		Sizes:     make([]float64, 0, count),
		Depth:     depth,
	}
}

func (f *Field) add(rng *rand.Rand, p Vec3, palette []Color) {
	c := White
	if len(palette) > 0 {
		c = palette[rng.IntN(len(palette))]
	}
	f.Positions = append(f.Positions, p)
	f.Colors = append(f.Colors, c.Scale(0.6+rng.Float64()*0.4))
	f.Sizes = append(f.Sizes, rng.Float64()*2+0.5)
}

// SphereField scatters count points uniformly over directions in a thick
// spherical shell with radius in [200, 1000).
func SphereField(rng *rand.Rand, count int, depth float64, palette []Color) Field {
	f := newField(count, depth)
	for range count {
		r := 200 + rng.Float64()*800
		theta := rng.Float64() * math.Pi * 2
		phi := math.Acos(rng.Float64()*2 - 1)
		f.add(rng, Vec3{
			X: r * math.Sin(phi) * math.Cos(theta),
			Y: r * math.Sin(phi) * math.Sin(theta),
			Z: r * math.Cos(phi),
		}, palette)
	}
	return f
}

// PlaneField scatters count points over a horizontal width x length
// rectangle centered on center.
func PlaneField(rng *rand.Rand, count int, depth float64, center Vec3, width, length float64, palette []Color) Field {
	f := newField(count, depth)
	for range count {
		f.add(rng, Vec3{
			X: center.X + (rng.Float64()-0.5)*width,
			Y: center.Y,
			Z: center.Z + (rng.Float64()-0.5)*length,
		}, palette)
	}
	return f
}

// StarLayer describes one generated point cloud.
type StarLayer struct {
	Name    string
	Count   int
	Depth   float64
	Palette []Color
	Plane   bool
}

func DefaultStarLayers() []StarLayer {
	return []StarLayer{
		{Name: "crowd", Count: 5000, Depth: 0, Palette: []Color{White, White, White, Green, Orange}},
		{Name: "home", Count: 3000, Depth: 1, Palette: []Color{Green, White, Green}},
		{Name: "away", Count: 2000, Depth: 2, Palette: []Color{Orange, White, Orange}},
		{Name: "pitch", Count: 1200, Depth: 2, Palette: []Color{Green, Green, White}, Plane: true},
	}
}

// Generate builds the layer's point cloud.
func (l StarLayer) Generate(rng *rand.Rand) Field {
	if l.Plane {
		return PlaneField(rng, l.Count, l.Depth, Vec3{0, -110, -200}, 2000, 1600, l.Palette)
	}
	return SphereField(rng, l.Count, l.Depth, l.Palette)
}

// SilhouetteLayer is one stand of the stadium skyline.
type SilhouetteLayer struct {
	Distance float64
	Height   float64
	Color    Color
	Opacity  float64
}

func DefaultSilhouetteLayers() []SilhouetteLayer {
	return []SilhouetteLayer{
		{Distance: -50, Height: 60, Color: Hex(0x0d1f0d), Opacity: 1.0},
		{Distance: -100, Height: 80, Color: Hex(0x0a2e0a), Opacity: 0.85},
		{Distance: -150, Height: 100, Color: Hex(0x083808), Opacity: 0.65},
		{Distance: -200, Height: 120, Color: Hex(0x052805), Opacity: 0.45},
	}
}

const ridgeSteps = 50

// Ridge builds the closed outline of a silhouette layer: a noisy ridge
// line across x in [-500, 500] closed by two far-away floor anchors.
func Ridge(rng *rand.Rand, l SilhouetteLayer) []Vec2 {
	pts := make([]Vec2, 0, ridgeSteps+3)
	for i := 0; i <= ridgeSteps; i++ {
		fi := float64(i)
		pts = append(pts, Vec2{
			X: (fi/ridgeSteps - 0.5) * 1000,
			Y: math.Sin(fi*0.1)*l.Height +
				math.Sin(fi*0.05)*l.Height*0.5 +
				rng.Float64()*l.Height*0.2 - 100,
		})
	}
	return append(pts, Vec2{5000, -300}, Vec2{-5000, -300})
}
