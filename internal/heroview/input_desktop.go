//go:build !js

package heroview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/riradoro03/sports-insights-hub/internal/hero"
)

// wheelScroll emulates page scrolling with the mouse wheel and keys.
type wheelScroll struct {
	offset   float64
	sections int
}

func newScrollSource() scrollSource {
	return &wheelScroll{sections: len(hero.DefaultSections())}
}

func (w *wheelScroll) Read(viewportHeight int) (float64, float64) {
	scrollable := virtualScrollable(viewportHeight)
	_, dy := ebiten.Wheel()
	w.offset = scrollBy(w.offset, -dy*wheelStep, scrollable)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		w.offset = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		w.offset = scrollable
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		cur := hero.SectionAt(hero.Progress(w.offset, scrollable), w.sections)
		w.offset = sectionOffset(cur+1, w.sections, scrollable)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		cur := hero.SectionAt(hero.Progress(w.offset, scrollable), w.sections)
		w.offset = sectionOffset(cur-1, w.sections, scrollable)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		w.offset = scrollBy(w.offset, wheelStep/4, scrollable)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		w.offset = scrollBy(w.offset, -wheelStep/4, scrollable)
	}
	return w.offset, scrollable
}

func (w *wheelScroll) Close() {}

var accent = color.RGBA{0x2e, 0xcc, 0x71, 0xff}

// canvasOverlay draws the hero text straight onto the window.
type canvasOverlay struct {
	sections []hero.Section
	face     text.Face
	state    hero.State
	anim     hero.Overlay
}

func newOverlay(sections []hero.Section) overlay {
	return &canvasOverlay{
		sections: sections,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

func (c *canvasOverlay) Apply(s hero.State, o hero.Overlay) {
	c.state, c.anim = s, o
}

func (c *canvasOverlay) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	fade := c.state.OverlayOpacity

	for i, sec := range c.sections {
		if i >= len(c.anim.Titles) {
			break
		}
		title, sub := c.anim.Titles[i], c.anim.Subtitles[i]
		c.drawText(screen, sec.Title, w/2, h*0.4+title.OffsetY, 4, title.Opacity*fade, color.White)
		c.drawText(screen, sec.Sub1, w/2, h*0.4+70+sub.OffsetY, 1.5, sub.Opacity*fade, color.White)
		c.drawText(screen, sec.Sub2, w/2, h*0.4+95+sub.OffsetY, 1.5, sub.Opacity*fade, color.White)
	}
	c.drawText(screen, "DISCOVER MORE   |   VIEW PROJECTS", w/2, h*0.4+150+c.anim.CTA.OffsetY, 1.5, c.anim.CTA.Opacity*fade, accent)
	c.drawText(screen, "SCROLL", w/2, h-60, 1, c.anim.Hint.Opacity*fade, color.White)

	c.drawText(screen, c.state.Label, 120, h-24, 1, 1, color.White)
	for i := range c.sections {
		r, clr := float32(3), color.Color(color.Gray{Y: 0x70})
		if i == c.state.Section {
			r, clr = 4.2, accent
		}
		vector.DrawFilledCircle(screen, float32(w-80+float64(i)*14), float32(h-24), r, clr, true)
	}
	vector.DrawFilledRect(screen, 0, float32(h-3), float32(w*c.state.ProgressWidth/100), 3, accent, false)
}

func (c *canvasOverlay) drawText(dst *ebiten.Image, s string, x, y, scale, alpha float64, clr color.Color) {
	if alpha <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, c.face, op)
}

func (c *canvasOverlay) Close() {}
