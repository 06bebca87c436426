package hero

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimState is the animator's lifecycle state.
type AnimState int

const (
	NotReady AnimState = iota
	Idle
	Transitioning
)

func (s AnimState) String() string {
	switch s {
	case NotReady:
		return "not-ready"
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	}
	return "unknown"
}

// Element is the animated style of one overlay element. OffsetY is in
// CSS pixels below the resting position.
type Element struct {
	Opacity float64
	OffsetY float64
}

// Overlay is the animated text layer over the hero.
type Overlay struct {
	Titles    []Element
	Subtitles []Element
	CTA       Element
	Hint      Element
}

func (o Overlay) clone() Overlay {
	o.Titles = append([]Element(nil), o.Titles...)
	o.Subtitles = append([]Element(nil), o.Subtitles...)
	return o
}

type tween struct {
	field *float64
	tw    *gween.Tween
	end   float64
	delay float32
	done  bool
}

func (t *tween) update(dt float32) bool {
	if t.done {
		return true
	}
	if t.delay > 0 {
		if dt < t.delay {
			t.delay -= dt
			return false
		}
		dt -= t.delay
		t.delay = 0
	}
	v, finished := t.tw.Update(dt)
	*t.field = float64(v)
	t.done = finished
	return finished
}

// timeline is a set of tweens sharing one clock. Each tween starts after
// its own delay.
type timeline struct {
	tweens []*tween
}

// fromTo snaps field to from and tweens it to to.
func (tl *timeline) fromTo(field *float64, from, to float64, at, duration float32, fn ease.TweenFunc) {
	*field = from
	tl.to(field, to, at, duration, fn)
}

// to tweens field from whatever value it holds when the tween begins.
// The start value is captured now; tweens on the same field must not
// overlap.
func (tl *timeline) to(field *float64, to float64, at, duration float32, fn ease.TweenFunc) {
	tl.tweens = append(tl.tweens, &tween{
		field: field,
		tw:    gween.New(float32(*field), float32(to), duration, fn),
		end:   to,
		delay: at,
	})
}

func (tl *timeline) update(dt float32) bool {
	done := true
	for _, t := range tl.tweens {
		if !t.update(dt) {
			done = false
		}
	}
	return done
}

// finish jumps every tween to its end value.
func (tl *timeline) finish() {
	for _, t := range tl.tweens {
		*t.field = t.end
		t.done = true
	}
}

// Entrance timing in seconds.
const (
	entranceDelay float32 = 0.4
	titleIn       float32 = 1.4
	subtitleIn    float32 = 1.0
	ctaIn         float32 = 0.8
	hintIn        float32 = 0.8
)

// Animator plays the entrance timeline once and a transition on every
// section change.
type Animator struct {
	sections []Section
	state    AnimState
	section  int
	overlay  Overlay
	entrance *timeline
	change   *timeline
	killed   bool
}

func NewAnimator(sections []Section) *Animator {
	return &Animator{
		sections: sections,
		overlay: Overlay{
			Titles:    make([]Element, len(sections)),
			Subtitles: make([]Element, len(sections)),
		},
	}
}

func (a *Animator) State() AnimState { return a.state }

func (a *Animator) Section() int { return a.section }

// Overlay returns a copy of the current element styles.
func (a *Animator) Overlay() Overlay { return a.overlay.clone() }

// Ready moves NotReady to Idle and starts the entrance timeline. Only the
// first call has an effect.
func (a *Animator) Ready() {
	if a.killed || a.state != NotReady || len(a.sections) == 0 {
		return
	}
	a.state = Idle

	o := &a.overlay
	i := a.section
	tl := &timeline{}

	title := entranceDelay
	sub := title + titleIn - 0.7
	cta := sub + subtitleIn - 0.5
	hint := cta + ctaIn - 0.3

	tl.fromTo(&o.Titles[i].OffsetY, 80, 0, title, titleIn, ease.OutQuart)
	tl.fromTo(&o.Titles[i].Opacity, 0, 1, title, titleIn, ease.OutQuart)
	tl.fromTo(&o.Subtitles[i].OffsetY, 30, 0, sub, subtitleIn, ease.OutCubic)
	tl.fromTo(&o.Subtitles[i].Opacity, 0, 1, sub, subtitleIn, ease.OutCubic)
	if a.sections[i].ShowCTA {
		tl.fromTo(&o.CTA.OffsetY, 20, 0, cta, ctaIn, ease.OutCubic)
		tl.fromTo(&o.CTA.Opacity, 0, 1, cta, ctaIn, ease.OutCubic)
	}
	tl.fromTo(&o.Hint.Opacity, 0, 1, hint, hintIn, ease.OutQuad)
	a.entrance = tl
}

// SetSection records the active section. Once ready, a change of
// section starts a transition; the same section again does nothing.
func (a *Animator) SetSection(i int) {
	if a.killed || i < 0 || i >= len(a.sections) || i == a.section {
		return
	}
	a.section = i
	if a.state == NotReady {
		return
	}
	if a.entrance != nil {
		a.entrance.finish()
		a.entrance = nil
	}
	if a.change != nil {
		a.change.finish()
	}

	o := &a.overlay
	tl := &timeline{}
	for j := range a.sections {
		if j == i {
			tl.fromTo(&o.Titles[j].OffsetY, 40, 0, 0, 0.9, ease.OutCubic)
			tl.fromTo(&o.Titles[j].Opacity, 0, 1, 0, 0.9, ease.OutCubic)
			tl.fromTo(&o.Subtitles[j].OffsetY, 20, 0, 0.15, 0.7, ease.OutCubic)
			tl.fromTo(&o.Subtitles[j].Opacity, 0, 1, 0.15, 0.7, ease.OutCubic)
			continue
		}
		tl.to(&o.Titles[j].Opacity, 0, 0, 0.4, ease.OutQuad)
		tl.to(&o.Subtitles[j].Opacity, 0, 0, 0.3, ease.OutQuad)
	}
	cta := 0.0
	if i == 0 {
		cta = 1
	}
	tl.to(&o.CTA.Opacity, cta, 0, 0.5, ease.OutQuad)
	a.change = tl
	a.state = Transitioning
}

// Update advances the running timelines by dt seconds.
func (a *Animator) Update(dt float64) {
	if a.killed {
		return
	}
	step := float32(dt)
	if a.entrance != nil && a.entrance.update(step) {
		a.entrance = nil
	}
	if a.change != nil && a.change.update(step) {
		a.change = nil
		a.state = Idle
	}
}

// Kill drops every in-flight timeline. The animator ignores all calls
// afterwards.
func (a *Animator) Kill() {
	a.killed = true
	a.entrance = nil
	a.change = nil
}
