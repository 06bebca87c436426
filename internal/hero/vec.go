package hero

import "math"

// Vec3 is a point or direction in scene space. Y is up, the camera looks
// down -Z.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp interpolates componentwise between a and b. The a*(1-t)+b*t form
// returns a and b exactly at t=0 and t=1.
func Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		lerp(a.X, b.X, t),
		lerp(a.Y, b.Y, t),
		lerp(a.Z, b.Z, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Vec2 is a point in a silhouette outline.
type Vec2 struct {
	X, Y float64
}

// Color is a linear RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Scale multiplies every channel by s, used to vary star brightness.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// HSL builds a Color from hue (degrees), saturation and lightness in [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360) / 360
	if h < 0 {
		h++
	}
	if s == 0 {
		return Color{l, l, l}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{
		R: hueToRGB(p, q, h+1.0/3),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// Hex converts a 0xRRGGBB literal into a Color.
func Hex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
