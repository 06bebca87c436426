//go:build js

package heroview

import (
	"fmt"
	"syscall/js"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/riradoro03/sports-insights-hub/internal/hero"
)

// The wasm module runs inside an iframe on the home page; scroll position
// and overlay elements live in the parent document.
func host() js.Value {
	win := js.Global()
	if parent := win.Get("parent"); parent.Truthy() {
		return parent
	}
	return win
}

type domScroll struct {
	win js.Value
	doc js.Value
}

func newScrollSource() scrollSource {
	win := host()
	return &domScroll{win: win, doc: win.Get("document")}
}

func (d *domScroll) Read(int) (float64, float64) {
	el := d.doc.Call("getElementById", "hero")
	if !el.Truthy() {
		return 0, 0
	}
	offset := d.win.Get("scrollY").Float() - el.Get("offsetTop").Float()
	scrollable := el.Get("offsetHeight").Float() - d.win.Get("innerHeight").Float()
	return offset, scrollable
}

func (d *domScroll) Close() {}

// domOverlay writes hero state into the page's presentational elements.
type domOverlay struct {
	doc      js.Value
	sections int
	cache    styleCache
}

func newOverlay(sections []hero.Section) overlay {
	doc := host().Get("document")
	if body := doc.Get("body"); body.Truthy() {
		body.Get("classList").Call("add", "hero-live")
	}
	return &domOverlay{
		doc:      doc,
		sections: len(sections),
		cache:    styleCache{},
	}
}

func (d *domOverlay) style(id, prop, value string) {
	if !d.cache.changed(id+"."+prop, value) {
		return
	}
	el := d.doc.Call("getElementById", id)
	if !el.Truthy() {
		return
	}
	el.Get("style").Set(prop, value)
}

func (d *domOverlay) text(id, value string) {
	if !d.cache.changed(id+".text", value) {
		return
	}
	if el := d.doc.Call("getElementById", id); el.Truthy() {
		el.Set("textContent", value)
	}
}

func (d *domOverlay) element(id string, e hero.Element) {
	d.style(id, "opacity", opacity(e.Opacity))
	d.style(id, "transform", translateY(e.OffsetY))
}

func (d *domOverlay) Apply(s hero.State, o hero.Overlay) {
	d.style("hero-progress", "width", widthPercent(s.ProgressWidth))
	d.text("hero-label", s.Label)
	d.style("hero-overlay", "opacity", opacity(s.OverlayOpacity))
	d.style("hero-overlay", "transform", overlayTransform(s.OverlayScale))
	for i, w := range s.Crossfade {
		d.style(fmt.Sprintf("hero-bg-%d", i), "opacity", opacity(w))
	}
	for i := 0; i < d.sections && i < len(o.Titles); i++ {
		d.element(fmt.Sprintf("hero-title-%d", i), o.Titles[i])
		d.element(fmt.Sprintf("hero-sub-%d", i), o.Subtitles[i])
	}
	for i := 0; i < d.sections; i++ {
		d.style(fmt.Sprintf("hero-dot-%d", i), "transform", dotTransform(i == s.Section))
		d.style(fmt.Sprintf("hero-dot-%d", i), "backgroundColor", dotColor(i == s.Section))
	}
	d.element("hero-cta", o.CTA)
	d.style("hero-hint", "opacity", opacity(o.Hint.Opacity))
}

func (d *domOverlay) Draw(*ebiten.Image) {}

// Close hands the overlay back to the page's static styles.
func (d *domOverlay) Close() {
	if el := d.doc.Get("body"); el.Truthy() {
		el.Get("classList").Call("remove", "hero-live")
	}
}
