package heroview

import (
	"testing"

	"github.com/riradoro03/sports-insights-hub/internal/hero"
)

func TestScrollBy(t *testing.T) {
	tests := []struct {
		offset, delta, scrollable, want float64
	}{
		{0, 60, 1000, 60},
		{990, 60, 1000, 1000},
		{30, -60, 1000, 0},
		{100, 10, 0, 0},
	}
	for _, tt := range tests {
		if got := scrollBy(tt.offset, tt.delta, tt.scrollable); got != tt.want {
			t.Errorf("scrollBy(%v, %v, %v) = %v, want %v", tt.offset, tt.delta, tt.scrollable, got, tt.want)
		}
	}
}

func TestVirtualScrollable(t *testing.T) {
	if got := virtualScrollable(720); got != 1440 {
		t.Errorf("expected 1440, got %v", got)
	}
	if got := virtualScrollable(-5); got != 0 {
		t.Errorf("expected 0 for a negative viewport, got %v", got)
	}
}

func TestSectionOffsetActivatesSection(t *testing.T) {
	scrollable := 2160.0
	for i := range 3 {
		off := sectionOffset(i, 3, scrollable)
		got := hero.SectionAt(hero.Progress(off, scrollable), 3)
		if got != i {
			t.Errorf("sectionOffset(%d) landed in section %d", i, got)
		}
	}
	if got := sectionOffset(7, 3, scrollable); got != sectionOffset(2, 3, scrollable) {
		t.Errorf("expected out-of-range section to clamp, got %v", got)
	}
}

func TestStyleCache(t *testing.T) {
	c := styleCache{}
	if !c.changed("hero-cta.opacity", "1.000") {
		t.Error("expected first write to be a change")
	}
	if c.changed("hero-cta.opacity", "1.000") {
		t.Error("expected repeated value to be skipped")
	}
	if !c.changed("hero-cta.opacity", "0.000") {
		t.Error("expected new value to be a change")
	}
}

func TestStyleFormatting(t *testing.T) {
	if got := translateY(40); got != "translateY(40.0px)" {
		t.Errorf("unexpected transform %q", got)
	}
	if got := widthPercent(12.5); got != "12.50%" {
		t.Errorf("unexpected width %q", got)
	}
	if got := opacity(0.5); got != "0.500" {
		t.Errorf("unexpected opacity %q", got)
	}
}

func TestAppendSprite(t *testing.T) {
	verts, inds := appendSprite(nil, nil, 100, 50, 10, hero.Color{R: 1, G: 0.5, B: 0}, 0.5)
	verts, inds = appendSprite(verts, inds, 0, 0, 2, hero.White, 1)

	if len(verts) != 8 || len(inds) != 12 {
		t.Fatalf("expected 8 vertices and 12 indices, got %d and %d", len(verts), len(inds))
	}
	if verts[0].DstX != 95 || verts[0].DstY != 45 || verts[3].DstX != 105 || verts[3].DstY != 55 {
		t.Errorf("unexpected quad corners %+v %+v", verts[0], verts[3])
	}
	if verts[0].ColorR != 0.5 || verts[0].ColorA != 0.5 {
		t.Errorf("expected premultiplied color, got %+v", verts[0])
	}
	if inds[6] != 4 {
		t.Errorf("expected second quad indices offset by 4, got %d", inds[6])
	}
}

func TestBloomPasses(t *testing.T) {
	if got := bloomPasses(hero.DefaultBloom().Radius); got != 4 {
		t.Errorf("expected 4 passes, got %d", got)
	}
	if got := bloomPasses(0); got != 2 {
		t.Errorf("expected 2 passes, got %d", got)
	}
}

func TestOutlinePath(t *testing.T) {
	scene := hero.NewScene(5)
	cam := hero.NewCamera(hero.Vec3{X: 0, Y: 60, Z: 900}, 16.0/9.0)
	proj := cam.Projector(1280, 720)

	if _, ok := outlinePath(proj, scene.Silhouettes[0]); !ok {
		t.Error("expected silhouette in front of the camera to project")
	}

	behind := *scene.Silhouettes[0]
	behind.Position.Z = 2000
	if _, ok := outlinePath(proj, &behind); ok {
		t.Error("expected silhouette behind the camera to be skipped")
	}
}

func TestSectionDots(t *testing.T) {
	if dotTransform(true) != "scale(1.4)" || dotTransform(false) != "scale(1)" {
		t.Error("unexpected dot transforms")
	}
	if dotColor(true) == dotColor(false) {
		t.Error("expected the active dot to be highlighted")
	}
}
