package heroview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kage sources. All shaders use pixel units and return premultiplied
// alpha. Ray setup mirrors hero.Projector: a pixel p maps to the view
// direction Forward*Focal + Right*p.x - Up*p.y around the screen center.

const nebulaShaderSrc = `//kage:unit pixels
package main

var Time float
var Camera vec3
var Right vec3
var Up vec3
var Forward vec3
var Focal float
var Center vec2
var PlaneZ float
var PlaneSize vec2
var Color1 vec3
var Color2 vec3
var Opacity float
var Fog float
var Far float

func elevation(p vec2) float {
	return sin(p.x*0.01+Time) * cos(p.y*0.01+Time) * 20
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := dst.xy - Center
	dir := Forward*Focal + Right*p.x - Up*p.y
	if abs(dir.z) < 0.0001 {
		return vec4(0)
	}
	t := (PlaneZ - Camera.z) / dir.z
	if t <= 0 {
		return vec4(0)
	}
	hit := Camera + dir*t
	// One refinement step against the rippled surface.
	t = (PlaneZ + elevation(hit.xy) - Camera.z) / dir.z
	if t <= 0 {
		return vec4(0)
	}
	hit = Camera + dir*t
	dist := t * length(dir)
	if dist > Far {
		return vec4(0)
	}
	uv := hit.xy/PlaneSize + 0.5
	if uv.x < 0 || uv.x > 1 || uv.y < 0 || uv.y > 1 {
		return vec4(0)
	}
	m := sin(uv.x*10+Time)*cos(uv.y*10+Time)*0.5 + 0.5
	c := mix(Color1, Color2, m)
	a := max(0, Opacity*(1-length(uv-0.5)*2))
	f := Fog * dist
	a *= exp(-f * f)
	return vec4(c*a, a)
}
`

const atmosphereShaderSrc = `//kage:unit pixels
package main

var Time float
var Camera vec3
var Right vec3
var Up vec3
var Forward vec3
var Focal float
var Center vec2
var Radius float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := dst.xy - Center
	dir := normalize(Forward*Focal + Right*p.x - Up*p.y)
	b := dot(Camera, dir)
	c := dot(Camera, Camera) - Radius*Radius
	h := b*b - c
	if h < 0 {
		return vec4(0)
	}
	// Far side of the shell only.
	t := -b + sqrt(h)
	if t <= 0 {
		return vec4(0)
	}
	n := normalize(Camera + dir*t)
	i := pow(max(0.7-dot(n, -Forward), 0), 2)
	pulse := sin(Time*1.5)*0.08 + 0.92
	glow := mix(vec3(0.1, 0.6, 0.2), vec3(1.0, 0.4, 0.0), clamp(i, 0, 1)) * i * pulse
	a := clamp(i*0.3, 0, 1)
	return vec4(glow*a, a)
}
`

const thresholdShaderSrc = `//kage:unit pixels
package main

var Threshold float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	l := dot(c.rgb, vec3(0.2126, 0.7152, 0.0722))
	return c * smoothstep(Threshold, Threshold+0.1, l)
}
`

type shaderSet struct {
	nebula     *ebiten.Shader
	atmosphere *ebiten.Shader
	threshold  *ebiten.Shader
}

func compileShaders() (*shaderSet, error) {
	var s shaderSet
	for _, sh := range []struct {
		name string
		src  string
		dst  **ebiten.Shader
	}{
		{"nebula", nebulaShaderSrc, &s.nebula},
		{"atmosphere", atmosphereShaderSrc, &s.atmosphere},
		{"threshold", thresholdShaderSrc, &s.threshold},
	} {
		compiled, err := ebiten.NewShader([]byte(sh.src))
		if err != nil {
			s.deallocate()
			return nil, fmt.Errorf("compile %s shader: %w", sh.name, err)
		}
		*sh.dst = compiled
	}
	return &s, nil
}

func (s *shaderSet) deallocate() {
	for _, sh := range []*ebiten.Shader{s.nebula, s.atmosphere, s.threshold} {
		if sh != nil {
			sh.Deallocate()
		}
	}
	*s = shaderSet{}
}
