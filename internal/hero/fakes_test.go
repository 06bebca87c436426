package hero

import (
	"errors"
	"time"
)

type fakeBuffer struct {
	layer    Layer
	disposed int
}

func (b *fakeBuffer) Dispose() { b.disposed++ }

type fakeSurface struct {
	buffers []*fakeBuffer
	frames  []Frame
	failAt  int
	drawErr error
	width   int
	height  int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{failAt: -1}
}

var errUploadFailed = errors.New("out of memory")

func (s *fakeSurface) Upload(l Layer) (Buffer, error) {
	if len(s.buffers) == s.failAt {
		return nil, errUploadFailed
	}
	b := &fakeBuffer{layer: l}
	s.buffers = append(s.buffers, b)
	return b, nil
}

func (s *fakeSurface) Resize(w, h int) {
	s.width, s.height = w, h
}

func (s *fakeSurface) Draw(f *Frame) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	s.frames = append(s.frames, *f)
	return nil
}

// fakeClock hands out times relative to a fixed origin.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 2, 13, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}
