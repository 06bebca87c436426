// Package hero drives the animated stadium scene at the top of the home
// page: scroll mapping, particle scene, render loop and overlay
// animation. Drawing is delegated to a Surface.
package hero

import (
	"log/slog"
	"time"
)

// Config configures a Hero.
type Config struct {
	Sections []Section
	Seed     uint64
	Width    int
	Height   int
	// NoBloom submits frames without the glow pass.
	NoBloom bool
	Logger  *slog.Logger
	Now     func() time.Time
}

// Hero wires the mapper, scene, loop and animator together for one page
// view.
type Hero struct {
	logger *slog.Logger
	now    func() time.Time

	mapper  Mapper
	state   State
	surface Surface
	scene   *Scene
	bundle  *Bundle
	loop    *Loop
	anim    *Animator
	last    time.Time

	ready  bool
	closed bool
}

// New sets up the scene on surface and starts the loop. If surface or
// sched is nil, or the upload fails, the returned Hero is inert: scroll
// mapping still works but nothing is drawn or animated.
func New(cfg Config, surface Surface, sched Scheduler) *Hero {
	if len(cfg.Sections) == 0 {
		cfg.Sections = DefaultSections()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	h := &Hero{
		logger: cfg.Logger,
		now:    cfg.Now,
		mapper: NewMapper(cfg.Sections),
		anim:   NewAnimator(cfg.Sections),
	}
	h.state = h.mapper.Map(0, 0)

	if surface == nil || sched == nil {
		h.logger.Debug("Hero surface unavailable, skipping setup")
		return h
	}

	scene := NewScene(cfg.Seed)
	bundle, err := Upload(surface, scene)
	if err != nil {
		h.logger.Debug("Hero setup failed, skipping", "error", err)
		return h
	}

	var bloom *Bloom
	if !cfg.NoBloom {
		bloom = DefaultBloom()
	}
	camera := NewCamera(cfg.Sections[0].Keyframe, aspect(cfg.Width, cfg.Height))
	if cfg.Width > 0 && cfg.Height > 0 {
		surface.Resize(cfg.Width, cfg.Height)
	}

	h.surface = surface
	h.scene = scene
	h.bundle = bundle
	h.loop = NewLoop(sched, surface, scene, camera, bloom, h.logger)

	start := h.now()
	h.loop.Start(start)
	h.last = start
	h.ready = true
	h.anim.Ready()
	return h
}

func aspect(w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 16.0 / 9.0
	}
	return float64(w) / float64(h)
}

// Ready reports whether setup succeeded and the hero has not been closed.
func (h *Hero) Ready() bool { return h.ready && !h.closed }

// State is the result of the latest scroll mapping.
func (h *Hero) State() State { return h.state }

// Overlay is the current animated style of the hero text.
func (h *Hero) Overlay() Overlay { return h.anim.Overlay() }

func (h *Hero) AnimState() AnimState { return h.anim.State() }

// Camera is the live camera, or the zero Camera when inert.
func (h *Hero) Camera() Camera {
	if h.loop == nil {
		return Camera{}
	}
	return h.loop.Camera()
}

// OnScroll maps a scroll position and, once ready, forwards the result
// to the loop and the animator. It may be called at any rate.
func (h *Hero) OnScroll(offset, scrollable float64) State {
	h.state = h.mapper.Map(offset, scrollable)
	if !h.Ready() {
		return h.state
	}
	h.loop.SetTarget(h.state.Camera)
	h.loop.SetParallax(h.state.SilhouettesHidden, h.state.NebulaZ)
	h.anim.SetSection(h.state.Section)
	return h.state
}

// OnResize updates the surface and the camera aspect.
func (h *Hero) OnResize(width, height int) {
	if !h.Ready() || width <= 0 || height <= 0 {
		return
	}
	h.surface.Resize(width, height)
	h.loop.SetAspect(aspect(width, height))
}

// Advance steps the overlay animation to now. Hosts call it once per
// frame alongside the scheduler.
func (h *Hero) Advance(now time.Time) {
	if !h.Ready() {
		return
	}
	dt := now.Sub(h.last).Seconds()
	h.last = now
	if dt > 0 {
		h.anim.Update(dt)
	}
}

// Close cancels the loop, kills the animator and releases every buffer.
// It is safe to call more than once.
func (h *Hero) Close() {
	if h.closed {
		return
	}
	h.closed = true
	if h.loop != nil {
		h.loop.Stop()
	}
	h.anim.Kill()
	h.bundle.Dispose()
	h.logger.Debug("Hero closed")
}
