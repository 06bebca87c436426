package hero

import (
	"log/slog"
	"time"
)

// EaseFactor is how far the live camera moves toward its target on each
// tick. It is per tick, so higher refresh rates move faster.
const EaseFactor = 0.05

// FrameID identifies one pending frame callback.
type FrameID uint64

// Scheduler delivers frame callbacks once per display refresh.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler for hosts that already run their own update
// loop: the host calls Fire once per frame.
type FrameQueue struct {
	next    FrameID
	pending FrameID
	fn      func(now time.Time)
}

func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.next++
	q.pending = q.next
	q.fn = fn
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	if id != 0 && id == q.pending {
		q.pending = 0
		q.fn = nil
	}
}

// Pending reports whether a callback is waiting.
func (q *FrameQueue) Pending() bool { return q.fn != nil }

// Fire runs the pending callback, if any.
func (q *FrameQueue) Fire(now time.Time) bool {
	fn := q.fn
	if fn == nil {
		return false
	}
	q.pending = 0
	q.fn = nil
	fn(now)
	return true
}

// Loop is the per-frame driver of the scene. It owns the live camera;
// everything else only sets targets.
type Loop struct {
	sched   Scheduler
	surface Surface
	scene   *Scene
	bloom   *Bloom
	logger  *slog.Logger

	camera  Camera
	live    Vec3
	target  Vec3
	hidden  bool
	nebulaZ float64

	start   time.Time
	elapsed float64
	frame   FrameID
	running bool
	frames  uint64
}

func NewLoop(sched Scheduler, surface Surface, scene *Scene, camera Camera, bloom *Bloom, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		sched:   sched,
		surface: surface,
		scene:   scene,
		bloom:   bloom,
		logger:  logger,
		camera:  camera,
		live:    camera.Position,
		target:  camera.Position,
		nebulaZ: scene.Nebula.Position.Z,
	}
}

// Start schedules the first frame. Calling it on a running loop is a
// no-op.
func (l *Loop) Start(now time.Time) {
	if l.running {
		return
	}
	l.running = true
	l.start = now
	l.frame = l.sched.RequestFrame(l.tick)
}

// Stop cancels the pending frame. It is safe to call more than once.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame(l.frame)
	l.frame = 0
}

func (l *Loop) Running() bool { return l.running }

// SetTarget records where the camera should drift to.
func (l *Loop) SetTarget(v Vec3) { l.target = v }

// SetParallax records the scroll-driven silhouette and nebula state.
func (l *Loop) SetParallax(hidden bool, nebulaZ float64) {
	l.hidden = hidden
	l.nebulaZ = nebulaZ
}

// SetAspect updates the projection after a resize.
func (l *Loop) SetAspect(aspect float64) { l.camera.Aspect = aspect }

// Camera returns the camera as of the last tick.
func (l *Loop) Camera() Camera { return l.camera }

// Elapsed is the loop time in seconds as of the last tick.
func (l *Loop) Elapsed() float64 { return l.elapsed }

func (l *Loop) Frames() uint64 { return l.frames }

func (l *Loop) tick(now time.Time) {
	if !l.running {
		return
	}
	l.frame = l.sched.RequestFrame(l.tick)
	l.advance(now.Sub(l.start).Seconds())

	if err := l.surface.Draw(&Frame{
		Scene:  l.scene,
		Camera: l.camera,
		Time:   l.elapsed,
		Bloom:  l.bloom,
	}); err != nil {
		l.logger.Warn("Hero frame failed, stopping", "error", err)
		l.Stop()
		return
	}
	l.frames++
}

// advance moves the scene and camera to loop time t.
func (l *Loop) advance(t float64) {
	l.elapsed = t
	l.scene.Animate(t)
	l.scene.applyScroll(l.hidden, l.nebulaZ)

	l.live = Ease(l.live, l.target, EaseFactor)
	l.camera.Position = l.live.Add(Jitter(t))
	l.camera.Target = LookAt
}
