package hero

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-4 }

func TestAnimatorEntrance(t *testing.T) {
	a := NewAnimator(DefaultSections())
	if a.State() != NotReady {
		t.Fatalf("expected not-ready, got %v", a.State())
	}

	a.Ready()
	if a.State() != Idle {
		t.Fatalf("expected idle after Ready, got %v", a.State())
	}
	o := a.Overlay()
	if o.Titles[0].Opacity != 0 || o.Titles[0].OffsetY != 80 {
		t.Errorf("expected title to start hidden and lowered, got %+v", o.Titles[0])
	}

	// Still inside the initial delay.
	a.Update(0.2)
	if a.Overlay().Titles[0].Opacity != 0 {
		t.Error("title should not move before the entrance delay")
	}

	a.Update(1.0)
	o = a.Overlay()
	if o.Titles[0].Opacity <= 0 {
		t.Error("expected title to be fading in")
	}
	if o.Hint.Opacity != 0 {
		t.Error("scroll hint should wait for the call-to-action")
	}

	a.Update(5)
	o = a.Overlay()
	for name, el := range map[string]Element{
		"title": o.Titles[0], "subtitle": o.Subtitles[0], "cta": o.CTA, "hint": o.Hint,
	} {
		if !near(el.Opacity, 1) || !near(el.OffsetY, 0) {
			t.Errorf("expected %s fully shown, got %+v", name, el)
		}
	}
	if o.Titles[1].Opacity != 0 {
		t.Error("inactive sections should stay hidden")
	}
}

func TestAnimatorReadyOnce(t *testing.T) {
	a := NewAnimator(DefaultSections())
	a.Ready()
	a.Update(5)
	a.Ready()
	if o := a.Overlay(); !near(o.Titles[0].Opacity, 1) {
		t.Error("second Ready should not replay the entrance")
	}
}

func TestAnimatorSectionChange(t *testing.T) {
	a := NewAnimator(DefaultSections())
	a.Ready()
	a.Update(5)

	a.SetSection(1)
	if a.State() != Transitioning {
		t.Fatalf("expected transitioning, got %v", a.State())
	}
	o := a.Overlay()
	if o.Titles[1].OffsetY != 40 || o.Titles[1].Opacity != 0 {
		t.Errorf("expected new title to start lowered, got %+v", o.Titles[1])
	}

	a.Update(2)
	if a.State() != Idle {
		t.Fatalf("expected idle after the transition, got %v", a.State())
	}
	o = a.Overlay()
	if !near(o.Titles[1].Opacity, 1) || !near(o.Subtitles[1].Opacity, 1) {
		t.Errorf("expected section 1 text shown, got %+v %+v", o.Titles[1], o.Subtitles[1])
	}
	if !near(o.Titles[0].Opacity, 0) || !near(o.Subtitles[0].Opacity, 0) {
		t.Error("expected section 0 text hidden")
	}
	if !near(o.CTA.Opacity, 0) {
		t.Error("expected call-to-action hidden away from the first section")
	}

	a.SetSection(1)
	if a.State() != Idle {
		t.Error("same section should not start a transition")
	}

	a.SetSection(0)
	a.Update(2)
	if !near(a.Overlay().CTA.Opacity, 1) {
		t.Error("expected call-to-action back on the first section")
	}
}

func TestAnimatorSectionBeforeReady(t *testing.T) {
	a := NewAnimator(DefaultSections())
	a.SetSection(2)
	if a.State() != NotReady {
		t.Fatal("section changes before ready must not animate")
	}
	a.Ready()
	a.Update(5)
	o := a.Overlay()
	if !near(o.Titles[2].Opacity, 1) {
		t.Error("expected entrance to reveal the current section")
	}
	if o.CTA.Opacity != 0 {
		t.Error("expected no call-to-action outside the first section")
	}
}

func TestAnimatorKill(t *testing.T) {
	a := NewAnimator(DefaultSections())
	a.Ready()
	a.Update(0.6)
	before := a.Overlay()

	a.Kill()
	a.Kill()
	a.Update(5)
	a.SetSection(2)

	after := a.Overlay()
	if after.Titles[0] != before.Titles[0] || after.Titles[2] != before.Titles[2] {
		t.Error("killed animator must not touch the overlay")
	}
}
