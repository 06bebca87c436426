package hero

import (
	"errors"
	"fmt"
)

// ErrSurfaceLost is returned by a Surface that can no longer draw.
var ErrSurfaceLost = errors.New("hero: surface lost")

// Buffer is a GPU-side resource created from one Layer.
type Buffer interface {
	Dispose()
}

// Bloom holds the glow post-process settings.
type Bloom struct {
	Strength  float64
	Radius    float64
	Threshold float64
}

func DefaultBloom() *Bloom {
	return &Bloom{Strength: 1.0, Radius: 0.4, Threshold: 0.82}
}

// Frame is everything a Surface needs to draw one image.
type Frame struct {
	Scene  *Scene
	Camera Camera
	Time   float64
	Bloom  *Bloom
}

// Surface is the rendering backend. Upload is called once per layer
// before the first Draw.
type Surface interface {
	Upload(layer Layer) (Buffer, error)
	Resize(width, height int)
	Draw(f *Frame) error
}

// Bundle owns every Buffer uploaded for a scene.
type Bundle struct {
	buffers  []Buffer
	disposed bool
}

// Upload creates one buffer per scene layer. On failure the buffers
// created so far are released.
func Upload(surface Surface, scene *Scene) (*Bundle, error) {
	b := &Bundle{}
	for _, l := range scene.Layers() {
		buf, err := surface.Upload(l)
		if err != nil {
			b.Dispose()
			return nil, fmt.Errorf("upload %s layer %q: %w", l.Kind(), l.Name(), err)
		}
		b.buffers = append(b.buffers, buf)
	}
	return b, nil
}

func (b *Bundle) Len() int { return len(b.buffers) }

// Dispose releases every buffer. Calling it again is a no-op.
func (b *Bundle) Dispose() {
	if b == nil || b.disposed {
		return
	}
	b.disposed = true
	for _, buf := range b.buffers {
		if buf != nil {
			buf.Dispose()
		}
	}
	b.buffers = nil
}
