package hero

import "math"

// CPU halves of the per-layer shaders. Point rotation and sizing happen
// here because the renderer only has fragment shaders; the fragment
// math is mirrored so both sides agree.

// StarAngle is the drift rotation of a star layer at time t. Deeper
// layers turn more slowly.
func StarAngle(t, depth float64) float64 {
	return t * 0.04 * (1 - depth*0.3)
}

// RotateXY rotates p around the Z axis.
func RotateXY(p Vec3, angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{c*p.X - s*p.Y, s*p.X + c*p.Y, p.Z}
}

// PointSize is the on-screen sprite diameter for a star of the given
// size at view distance z.
func PointSize(size, z float64) float64 {
	if z <= 0 {
		return 0
	}
	return size * (300 / z)
}

// SpriteAlpha is the soft circular falloff of a point sprite; d is the
// distance from the sprite center in sprite units (0.5 is the rim).
func SpriteAlpha(d float64) float64 {
	if d > 0.5 {
		return 0
	}
	return 1 - smoothstep(0, 0.5, d)
}

// NebulaElevation is the ripple height of the nebula plane at (x, y).
func NebulaElevation(x, y, t float64) float64 {
	return math.Sin(x*0.01+t) * math.Cos(y*0.01+t) * 20
}

// NebulaColor blends the two nebula colors at uv coordinate (u, v) and
// returns the color and its alpha.
func NebulaColor(u, v, t float64, u1 PlaneUniforms) (Color, float64) {
	m := math.Sin(u*10+t)*math.Cos(v*10+t)*0.5 + 0.5
	c := Color{
		R: lerp(u1.Color1.R, u1.Color2.R, m),
		G: lerp(u1.Color1.G, u1.Color2.G, m),
		B: lerp(u1.Color1.B, u1.Color2.B, m),
	}
	d := math.Hypot(u-0.5, v-0.5)
	return c, math.Max(0, u1.Opacity*(1-d*2))
}

// AtmospherePulse is the slow brightness breathing of the glow shell.
func AtmospherePulse(t float64) float64 {
	return math.Sin(t*1.5)*0.08 + 0.92
}

// AtmosphereIntensity is the fresnel-like rim factor for a surface
// whose normal has the given z component facing the viewer.
func AtmosphereIntensity(normalZ float64) float64 {
	return math.Pow(math.Max(0.7-normalZ, 0), 2)
}

// Sway is the idle parallax offset of silhouette layer i at time t.
func Sway(i int, t float64) (dx, dy float64) {
	k := 1 + float64(i)*0.5
	return math.Sin(t*0.1) * 2 * k, math.Cos(t*0.15) * k
}

// Jitter is the hand-held camera wobble added on top of the eased
// position.
func Jitter(t float64) Vec3 {
	return Vec3{X: math.Sin(t*0.1) * 2, Y: math.Cos(t * 0.14)}
}

// FogFactor is exponential-squared fog visibility at distance z.
func FogFactor(density, z float64) float64 {
	f := density * z
	return math.Exp(-f * f)
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}
