package hero

import "math"

var worldUp = Vec3{0, 1, 0}

// Camera is a perspective camera. FOV is the vertical field of view in
// degrees.
type Camera struct {
	Position Vec3
	Target   Vec3
	FOV      float64
	Aspect   float64
	Near     float64
	Far      float64
}

func NewCamera(position Vec3, aspect float64) Camera {
	return Camera{
		Position: position,
		Target:   LookAt,
		FOV:      75,
		Aspect:   aspect,
		Near:     0.1,
		Far:      2000,
	}
}

// Projection is a point mapped onto a width x height viewport.
type Projection struct {
	X, Y  float64
	Depth float64
	Scale float64
}

// Projector maps world points onto a fixed viewport for one camera pose.
type Projector struct {
	camera               Camera
	right, up, forward   Vec3
	focal, width, height float64
}

// Projector precomputes the view basis for a width x height viewport.
func (c Camera) Projector(width, height float64) Projector {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(worldUp).Normalize()
	return Projector{
		camera:  c,
		right:   right,
		up:      right.Cross(forward),
		forward: forward,
		focal:   (height / 2) / math.Tan(c.FOV*math.Pi/360),
		width:   width,
		height:  height,
	}
}

// Basis returns the right, up and forward unit vectors of the view.
func (p Projector) Basis() (right, up, forward Vec3) { return p.right, p.up, p.forward }

// Focal is the focal length in pixels.
func (p Projector) Focal() float64 { return p.focal }

// Project maps v onto the viewport. ok is false when v is outside the
// near/far range.
func (p Projector) Project(v Vec3) (Projection, bool) {
	d := v.Sub(p.camera.Position)
	z := d.Dot(p.forward)
	if z < p.camera.Near || z > p.camera.Far {
		return Projection{}, false
	}
	scale := p.focal / z
	return Projection{
		X:     p.width/2 + d.Dot(p.right)*scale,
		Y:     p.height/2 - d.Dot(p.up)*scale,
		Depth: z,
		Scale: scale,
	}, true
}

// Project is a one-off projection; use a Projector for many points.
func (c Camera) Project(v Vec3, width, height float64) (Projection, bool) {
	return c.Projector(width, height).Project(v)
}

// Ease moves current toward target by a fixed fraction. The factor is
// applied per call, not per second.
func Ease(current, target Vec3, factor float64) Vec3 {
	return current.Add(target.Sub(current).Scale(factor))
}
