package hero

import "math/rand/v2"

// Scene constants shared by every renderer.
const (
	FogDensity       = 0.00025
	NebulaWidth      = 8000
	NebulaHeight     = 4000
	NebulaBaseZ      = -1050
	AtmosphereRadius = 600
)

// Kind identifies how a Layer is drawn.
type Kind int

const (
	KindPoints Kind = iota
	KindPlane
	KindSilhouette
	KindShell
)

func (k Kind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindPlane:
		return "plane"
	case KindSilhouette:
		return "silhouette"
	case KindShell:
		return "shell"
	}
	return "unknown"
}

// Layer is one drawable piece of the scene.
type Layer interface {
	Kind() Kind
	Name() string
}

// PointUniforms are the per-frame inputs of a star layer.
type PointUniforms struct {
	Time  float64
	Depth float64
}

// Points is a rotating star field.
type Points struct {
	Label    string
	Field    Field
	Uniforms PointUniforms
}

func (p *Points) Kind() Kind   { return KindPoints }
func (p *Points) Name() string { return p.Label }

// PlaneUniforms are the per-frame inputs of the nebula.
type PlaneUniforms struct {
	Time    float64
	Color1  Color
	Color2  Color
	Opacity float64
}

// Plane is the rippling nebula backdrop.
type Plane struct {
	Width, Height float64
	Position      Vec3
	Uniforms      PlaneUniforms
}

func (p *Plane) Kind() Kind   { return KindPlane }
func (p *Plane) Name() string { return "nebula" }

// Silhouette is one filled stadium outline. Position.Y starts at the
// layer distance; Sway moves it around that base.
type Silhouette struct {
	Index    int
	Layer    SilhouetteLayer
	Outline  []Vec2
	Position Vec3
	Hidden   bool
}

func (s *Silhouette) Kind() Kind   { return KindSilhouette }
func (s *Silhouette) Name() string { return "silhouette" }

// ShellUniforms are the per-frame inputs of the atmosphere glow.
type ShellUniforms struct {
	Time float64
}

// Shell is the back-facing glow sphere around the scene.
type Shell struct {
	Radius   float64
	Uniforms ShellUniforms
}

func (s *Shell) Kind() Kind   { return KindShell }
func (s *Shell) Name() string { return "atmosphere" }

// Scene is the whole hero graph. It is only mutated by the render loop.
type Scene struct {
	Stars       []*Points
	Nebula      *Plane
	Silhouettes []*Silhouette
	Atmosphere  *Shell
	Fog         float64
}

// NewScene builds the scene from a seed. The same seed always yields the
// same particles and outlines.
func NewScene(seed uint64) *Scene {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := &Scene{Fog: FogDensity}
	for _, l := range DefaultStarLayers() {
		s.Stars = append(s.Stars, &Points{
			Label:    l.Name,
			Field:    l.Generate(rng),
			Uniforms: PointUniforms{Depth: l.Depth},
		})
	}
	s.Nebula = &Plane{
		Width:    NebulaWidth,
		Height:   NebulaHeight,
		Position: Vec3{Z: NebulaBaseZ},
		Uniforms: PlaneUniforms{Color1: Green, Color2: Orange, Opacity: 0.25},
	}
	for i, l := range DefaultSilhouetteLayers() {
		s.Silhouettes = append(s.Silhouettes, &Silhouette{
			Index:    i,
			Layer:    l,
			Outline:  Ridge(rng, l),
			Position: Vec3{Y: l.Distance},
		})
	}
	s.Atmosphere = &Shell{Radius: AtmosphereRadius}
	return s
}

// Layers lists every drawable in back-to-front order.
func (s *Scene) Layers() []Layer {
	layers := make([]Layer, 0, len(s.Stars)+len(s.Silhouettes)+2)
	layers = append(layers, s.Atmosphere, s.Nebula)
	for _, p := range s.Stars {
		layers = append(layers, p)
	}
	for i := len(s.Silhouettes) - 1; i >= 0; i-- {
		layers = append(layers, s.Silhouettes[i])
	}
	return layers
}

// Animate advances every time uniform and the idle silhouette sway to t.
func (s *Scene) Animate(t float64) {
	for _, p := range s.Stars {
		p.Uniforms.Time = t
	}
	s.Nebula.Uniforms.Time = t * 0.5
	s.Atmosphere.Uniforms.Time = t
	for _, sil := range s.Silhouettes {
		dx, dy := Sway(sil.Index, t)
		sil.Position.X = dx
		sil.Position.Y = sil.Layer.Distance + dy
	}
}

// applyScroll pushes scroll-driven parallax into the scene.
func (s *Scene) applyScroll(hidden bool, nebulaZ float64) {
	for _, sil := range s.Silhouettes {
		sil.Hidden = hidden
	}
	s.Nebula.Position.Z = nebulaZ
}
