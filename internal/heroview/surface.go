package heroview

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/riradoro03/sports-insights-hub/internal/hero"
)

const spriteSize = 32

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// layerBuffer is the per-layer state a Surface keeps after Upload.
type layerBuffer interface {
	hero.Buffer
	draw(dst *ebiten.Image, v *view)
}

// view is the per-frame projection shared by every layer.
type view struct {
	frame *hero.Frame
	proj  hero.Projector
	w, h  float64
}

// Surface renders a hero scene with ebiten. Frames submitted by the
// render loop are drawn on the next Render call.
type Surface struct {
	logger *slog.Logger

	width, height int
	buffers       map[hero.Layer]layerBuffer
	frame         *hero.Frame

	offscreen *ebiten.Image
	sprite    *ebiten.Image
	shaders   *shaderSet
	bloom     bloomPass

	verts []ebiten.Vertex
	inds  []uint32

	lost     error
	disposed bool
}

func NewSurface(logger *slog.Logger) *Surface {
	if logger == nil {
		logger = slog.Default()
	}
	return &Surface{
		logger:  logger,
		buffers: make(map[hero.Layer]layerBuffer),
	}
}

func (s *Surface) Upload(l hero.Layer) (hero.Buffer, error) {
	if s.disposed {
		return nil, hero.ErrSurfaceLost
	}
	var b layerBuffer
	switch l := l.(type) {
	case *hero.Points:
		b = &pointsBuffer{surface: s, layer: l}
	case *hero.Plane:
		b = &planeBuffer{surface: s, layer: l}
	case *hero.Silhouette:
		b = &silhouetteBuffer{surface: s, layer: l}
	case *hero.Shell:
		b = &shellBuffer{surface: s, layer: l}
	default:
		return nil, fmt.Errorf("unsupported layer kind %s", l.Kind())
	}
	s.buffers[l] = b
	return b, nil
}

func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
}

// Draw queues f for the next Render.
func (s *Surface) Draw(f *hero.Frame) error {
	if s.disposed {
		return hero.ErrSurfaceLost
	}
	if s.lost != nil {
		return fmt.Errorf("%w: %v", hero.ErrSurfaceLost, s.lost)
	}
	s.frame = f
	return nil
}

// Render draws the latest frame onto screen.
func (s *Surface) Render(screen *ebiten.Image) {
	if s.disposed || s.lost != nil || s.frame == nil || s.width <= 0 || s.height <= 0 {
		return
	}
	if err := s.ensure(); err != nil {
		s.lost = err
		s.logger.Warn("Hero surface unavailable", "error", err)
		return
	}

	v := &view{
		frame: s.frame,
		proj:  s.frame.Camera.Projector(float64(s.width), float64(s.height)),
		w:     float64(s.width),
		h:     float64(s.height),
	}
	s.offscreen.Clear()
	for _, l := range s.frame.Scene.Layers() {
		if b, ok := s.buffers[l]; ok {
			b.draw(s.offscreen, v)
		}
	}

	screen.DrawImage(s.offscreen, nil)
	if bloom := s.frame.Bloom; bloom != nil {
		s.bloom.apply(s.offscreen, screen, *bloom, s.shaders.threshold)
	}
}

func (s *Surface) ensure() error {
	if s.shaders == nil {
		shaders, err := compileShaders()
		if err != nil {
			return err
		}
		s.shaders = shaders
	}
	if s.sprite == nil {
		s.sprite = newSprite(spriteSize)
	}
	if s.offscreen == nil || s.offscreen.Bounds().Dx() != s.width || s.offscreen.Bounds().Dy() != s.height {
		if s.offscreen != nil {
			s.offscreen.Deallocate()
		}
		s.offscreen = ebiten.NewImage(s.width, s.height)
	}
	return nil
}

// Dispose releases the shared GPU resources. Layer buffers are released
// by their owner.
func (s *Surface) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, img := range []*ebiten.Image{s.offscreen, s.sprite} {
		if img != nil {
			img.Deallocate()
		}
	}
	s.offscreen, s.sprite = nil, nil
	if s.shaders != nil {
		s.shaders.deallocate()
		s.shaders = nil
	}
	s.bloom.deallocate()
	s.frame = nil
}

// newSprite draws the soft round point sprite.
func newSprite(size int) *ebiten.Image {
	pix := make([]byte, size*size*4)
	c := float64(size) / 2
	for y := range size {
		for x := range size {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / float64(size)
			a := byte(hero.SpriteAlpha(d) * 255)
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = a, a, a, a
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// appendSprite appends one screen-aligned quad centered on (x, y).
func appendSprite(verts []ebiten.Vertex, inds []uint32, x, y, size float64, c hero.Color, alpha float64) ([]ebiten.Vertex, []uint32) {
	half := float32(size / 2)
	cx, cy := float32(x), float32(y)
	r, g, b, a := float32(c.R*alpha), float32(c.G*alpha), float32(c.B*alpha), float32(alpha)
	base := uint32(len(verts))
	corners := [4][4]float32{
		{cx - half, cy - half, 0, 0},
		{cx + half, cy - half, spriteSize, 0},
		{cx - half, cy + half, 0, spriteSize},
		{cx + half, cy + half, spriteSize, spriteSize},
	}
	for _, q := range corners {
		verts = append(verts, ebiten.Vertex{
			DstX: q[0], DstY: q[1],
			SrcX: q[2], SrcY: q[3],
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	inds = append(inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
	return verts, inds
}

type pointsBuffer struct {
	surface *Surface
	layer   *hero.Points
}

func (b *pointsBuffer) draw(dst *ebiten.Image, v *view) {
	s := b.surface
	f := &b.layer.Field
	angle := hero.StarAngle(b.layer.Uniforms.Time, b.layer.Uniforms.Depth)

	verts, inds := s.verts[:0], s.inds[:0]
	for i, pos := range f.Positions {
		pr, ok := v.proj.Project(hero.RotateXY(pos, angle))
		if !ok {
			continue
		}
		size := max(hero.PointSize(f.Sizes[i], pr.Depth), 1)
		if pr.X < -size || pr.Y < -size || pr.X > v.w+size || pr.Y > v.h+size {
			continue
		}
		alpha := hero.FogFactor(v.frame.Scene.Fog, pr.Depth)
		verts, inds = appendSprite(verts, inds, pr.X, pr.Y, size, f.Colors[i], alpha)
	}
	s.verts, s.inds = verts, inds
	if len(verts) == 0 {
		return
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = ebiten.BlendLighter
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.Filter = ebiten.FilterLinear
	dst.DrawTriangles32(verts, inds, s.sprite, &op)
}

func (b *pointsBuffer) Dispose() { b.surface.release(b.layer) }

func (s *Surface) release(l hero.Layer) { delete(s.buffers, l) }

func viewUniforms(v *view) map[string]any {
	right, up, forward := v.proj.Basis()
	pos := v.frame.Camera.Position
	return map[string]any{
		"Camera":  vec3(pos),
		"Right":   vec3(right),
		"Up":      vec3(up),
		"Forward": vec3(forward),
		"Focal":   float32(v.proj.Focal()),
		"Center":  []float32{float32(v.w / 2), float32(v.h / 2)},
	}
}

func vec3(v hero.Vec3) []float32 { return []float32{float32(v.X), float32(v.Y), float32(v.Z)} }

func rgb(c hero.Color) []float32 { return []float32{float32(c.R), float32(c.G), float32(c.B)} }

type planeBuffer struct {
	surface *Surface
	layer   *hero.Plane
	op      ebiten.DrawRectShaderOptions
}

func (b *planeBuffer) draw(dst *ebiten.Image, v *view) {
	p := b.layer
	u := viewUniforms(v)
	u["Time"] = float32(p.Uniforms.Time)
	u["PlaneZ"] = float32(p.Position.Z)
	u["PlaneSize"] = []float32{float32(p.Width), float32(p.Height)}
	u["Color1"] = rgb(p.Uniforms.Color1)
	u["Color2"] = rgb(p.Uniforms.Color2)
	u["Opacity"] = float32(p.Uniforms.Opacity)
	u["Fog"] = float32(v.frame.Scene.Fog)
	u["Far"] = float32(v.frame.Camera.Far)
	b.op.Uniforms = u
	b.op.Blend = ebiten.BlendSourceOver
	dst.DrawRectShader(int(v.w), int(v.h), b.surface.shaders.nebula, &b.op)
}

func (b *planeBuffer) Dispose() { b.surface.release(b.layer) }

type shellBuffer struct {
	surface *Surface
	layer   *hero.Shell
	op      ebiten.DrawRectShaderOptions
}

func (b *shellBuffer) draw(dst *ebiten.Image, v *view) {
	u := viewUniforms(v)
	u["Time"] = float32(b.layer.Uniforms.Time)
	u["Radius"] = float32(b.layer.Radius)
	b.op.Uniforms = u
	b.op.Blend = ebiten.BlendLighter
	dst.DrawRectShader(int(v.w), int(v.h), b.surface.shaders.atmosphere, &b.op)
}

func (b *shellBuffer) Dispose() { b.surface.release(b.layer) }

type silhouetteBuffer struct {
	surface *Surface
	layer   *hero.Silhouette
	vs      []ebiten.Vertex
	is      []uint16
}

// outlinePath projects a silhouette outline into screen space. ok is
// false when any point falls outside the view frustum depth range.
func outlinePath(proj hero.Projector, sil *hero.Silhouette) (*vector.Path, bool) {
	var path vector.Path
	for i, pt := range sil.Outline {
		pr, ok := proj.Project(hero.Vec3{
			X: pt.X + sil.Position.X,
			Y: pt.Y + sil.Position.Y,
			Z: sil.Position.Z,
		})
		if !ok {
			return nil, false
		}
		if i == 0 {
			path.MoveTo(float32(pr.X), float32(pr.Y))
			continue
		}
		path.LineTo(float32(pr.X), float32(pr.Y))
	}
	path.Close()
	return &path, true
}

func (b *silhouetteBuffer) draw(dst *ebiten.Image, v *view) {
	sil := b.layer
	if sil.Hidden || len(sil.Outline) < 3 {
		return
	}
	path, ok := outlinePath(v.proj, sil)
	if !ok {
		return
	}
	b.vs, b.is = path.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])

	a := sil.Layer.Opacity
	r, g, bl := float32(sil.Layer.Color.R*a), float32(sil.Layer.Color.G*a), float32(sil.Layer.Color.B*a)
	for i := range b.vs {
		b.vs[i].SrcX, b.vs[i].SrcY = 1, 1
		b.vs[i].ColorR, b.vs[i].ColorG, b.vs[i].ColorB, b.vs[i].ColorA = r, g, bl, float32(a)
	}

	var op ebiten.DrawTrianglesOptions
	op.FillRule = ebiten.FillRuleNonZero
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(b.vs, b.is, whiteSubImage, &op)
}

func (b *silhouetteBuffer) Dispose() {
	b.surface.release(b.layer)
	b.vs, b.is = nil, nil
}

// bloomPass adds a blurred copy of the bright parts of a frame.
type bloomPass struct {
	bright   *ebiten.Image
	chain    []*ebiten.Image
	shaderOp ebiten.DrawRectShaderOptions
	op       ebiten.DrawImageOptions
}

// bloomPasses is the number of halvings for a given radius.
func bloomPasses(radius float64) int {
	return 2 + int(math.Round(radius*5))
}

func (b *bloomPass) apply(src, dst *ebiten.Image, cfg hero.Bloom, threshold *ebiten.Shader) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if b.bright == nil || b.bright.Bounds() != bounds {
		b.deallocate()
		b.bright = ebiten.NewImage(w, h)
	}
	b.bright.Clear()
	b.shaderOp.Images[0] = src
	b.shaderOp.Uniforms = map[string]any{"Threshold": float32(cfg.Threshold)}
	b.bright.DrawRectShader(w, h, threshold, &b.shaderOp)

	passes := bloomPasses(cfg.Radius)
	for len(b.chain) < passes {
		b.chain = append(b.chain, nil)
	}
	current := b.bright
	for i := range passes {
		w, h = max(w/2, 1), max(h/2, 1)
		if b.chain[i] == nil || b.chain[i].Bounds().Dx() != w || b.chain[i].Bounds().Dy() != h {
			if b.chain[i] != nil {
				b.chain[i].Deallocate()
			}
			b.chain[i] = ebiten.NewImage(w, h)
		} else {
			b.chain[i].Clear()
		}
		b.scaleInto(b.chain[i], current, ebiten.BlendSourceOver, 1)
		current = b.chain[i]
	}
	for i := passes - 2; i >= 0; i-- {
		b.scaleInto(b.chain[i], current, ebiten.BlendLighter, 1)
		current = b.chain[i]
	}
	b.scaleInto(dst, current, ebiten.BlendLighter, float32(cfg.Strength))
}

func (b *bloomPass) scaleInto(dst, src *ebiten.Image, blend ebiten.Blend, strength float32) {
	op := &b.op
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.GeoM.Scale(
		float64(dst.Bounds().Dx())/float64(src.Bounds().Dx()),
		float64(dst.Bounds().Dy())/float64(src.Bounds().Dy()),
	)
	op.ColorScale.Scale(strength, strength, strength, strength)
	op.Filter = ebiten.FilterLinear
	op.Blend = blend
	dst.DrawImage(src, op)
}

func (b *bloomPass) deallocate() {
	if b.bright != nil {
		b.bright.Deallocate()
		b.bright = nil
	}
	for i, img := range b.chain {
		if img != nil {
			img.Deallocate()
		}
		b.chain[i] = nil
	}
	b.chain = b.chain[:0]
}
