package hero

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func TestNewSceneDeterministic(t *testing.T) {
	a, b := NewScene(42), NewScene(42)
	if a.Stars[0].Field.Positions[10] != b.Stars[0].Field.Positions[10] {
		t.Error("expected the same seed to produce the same stars")
	}
	if a.Silhouettes[2].Outline[5] != b.Silhouettes[2].Outline[5] {
		t.Error("expected the same seed to produce the same outlines")
	}
	if len(a.Layers()) != len(a.Stars)+len(a.Silhouettes)+2 {
		t.Errorf("unexpected layer count %d", len(a.Layers()))
	}
}

func TestSphereFieldShell(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	f := SphereField(rng, 500, 1, []Color{Green})
	if f.Len() != 500 || len(f.Colors) != 500 || len(f.Sizes) != 500 {
		t.Fatalf("expected 500 points, got %d", f.Len())
	}
	for i, p := range f.Positions {
		if r := p.Len(); r < 200-1e-9 || r > 1000+1e-9 {
			t.Fatalf("point %d radius %v outside shell", i, r)
		}
		if s := f.Sizes[i]; s < 0.5 || s >= 2.5 {
			t.Fatalf("point %d size %v out of range", i, s)
		}
	}
}

func TestRidgeOutline(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	l := DefaultSilhouetteLayers()[0]
	pts := Ridge(rng, l)
	if len(pts) != ridgeSteps+3 {
		t.Fatalf("expected %d points, got %d", ridgeSteps+3, len(pts))
	}
	if pts[0].X != -500 || pts[ridgeSteps].X != 500 {
		t.Errorf("expected ridge to span -500..500, got %v..%v", pts[0].X, pts[ridgeSteps].X)
	}
	if pts[len(pts)-1] != (Vec2{-5000, -300}) {
		t.Errorf("expected closing anchor, got %+v", pts[len(pts)-1])
	}
}

func TestSpriteAlpha(t *testing.T) {
	if SpriteAlpha(0) != 1 {
		t.Error("expected opaque sprite center")
	}
	if SpriteAlpha(0.5) != 0 || SpriteAlpha(0.7) != 0 {
		t.Error("expected transparent sprite rim")
	}
	if a := SpriteAlpha(0.25); a <= 0 || a >= 1 {
		t.Errorf("expected soft falloff, got %v", a)
	}
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(Vec3{0, 10, 0}, 1)
	cam.Target = Vec3{0, 10, -100}

	p, ok := cam.Project(Vec3{0, 10, -100}, 800, 800)
	if !ok {
		t.Fatal("expected point ahead of the camera to project")
	}
	if math.Abs(p.X-400) > 1e-9 || math.Abs(p.Y-400) > 1e-9 {
		t.Errorf("expected look-at point at the center, got %+v", p)
	}
	if _, ok := cam.Project(Vec3{0, 10, 100}, 800, 800); ok {
		t.Error("expected point behind the camera to be culled")
	}
	right, _ := cam.Project(Vec3{10, 10, -100}, 800, 800)
	if right.X <= 400 {
		t.Error("expected +X to project right of center")
	}
}

func TestHeroInertWithoutSurface(t *testing.T) {
	h := New(Config{}, nil, nil)
	if h.Ready() {
		t.Fatal("expected hero without a surface to be inert")
	}
	s := h.OnScroll(1000, 1000)
	if s.Section != 2 {
		t.Errorf("expected scroll mapping to work while inert, got section %d", s.Section)
	}
	if h.AnimState() != NotReady {
		t.Error("inert hero must not animate")
	}
	h.OnResize(800, 600)
	h.Advance(time.Now())
	h.Close()
	h.Close()
}

func TestHeroUploadFailure(t *testing.T) {
	surface := newFakeSurface()
	surface.failAt = 3
	q := &FrameQueue{}

	h := New(Config{}, surface, q)
	if h.Ready() {
		t.Fatal("expected failed upload to leave the hero inert")
	}
	if q.Pending() {
		t.Error("expected no frame to be scheduled")
	}
	for i, b := range surface.buffers {
		if b.disposed != 1 {
			t.Errorf("buffer %d disposed %d times, want 1", i, b.disposed)
		}
	}
}

func TestHeroLifecycle(t *testing.T) {
	surface := newFakeSurface()
	q := &FrameQueue{}
	clock := newFakeClock()

	h := New(Config{Seed: 3, Width: 1280, Height: 720, Now: clock.Now}, surface, q)
	if !h.Ready() {
		t.Fatal("expected hero to be ready")
	}
	if h.AnimState() != Idle {
		t.Errorf("expected entrance to start on setup, got %v", h.AnimState())
	}
	if surface.width != 1280 || surface.height != 720 {
		t.Errorf("expected surface sized 1280x720, got %dx%d", surface.width, surface.height)
	}
	if len(surface.buffers) != len(h.scene.Layers()) {
		t.Errorf("expected one buffer per layer, got %d", len(surface.buffers))
	}

	h.OnScroll(1000, 2000)
	if h.AnimState() != Transitioning {
		t.Errorf("expected section change to animate, got %v", h.AnimState())
	}
	q.Fire(clock.Add(16 * time.Millisecond))
	h.Advance(clock.Now())
	if len(surface.frames) != 1 {
		t.Fatalf("expected one frame drawn, got %d", len(surface.frames))
	}

	h.OnResize(640, 480)
	if h.Camera().Aspect != 640.0/480.0 {
		t.Errorf("expected aspect updated, got %v", h.Camera().Aspect)
	}

	h.Close()
	h.Close()
	if q.Pending() {
		t.Error("expected Close to cancel the frame callback")
	}
	for i, b := range surface.buffers {
		if b.disposed != 1 {
			t.Errorf("buffer %d disposed %d times, want 1", i, b.disposed)
		}
	}
	if h.Ready() {
		t.Error("closed hero should not report ready")
	}
	h.OnScroll(0, 2000)
	h.OnResize(100, 100)
	if surface.width != 640 {
		t.Error("closed hero must not touch the surface")
	}
}
