// Package mesh turns a sampled path into geometry: a tube around the curve,
// and the bounds of the curve for framing a camera.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/cloudy-native/lucid/math3d"
)

const (
	DefaultRadius         = 0.05
	DefaultRadialSegments = 8

	// Consecutive points closer than this are treated as the same point when
	// working out which way the curve is heading.
	minTangent = 1e-12

	// A path whose ends are closer than this is treated as a loop.
	closeTolerance = 1e-6
)

// ErrDegeneratePath is returned when a path doesn't go anywhere, so there's no
// direction to build a tube around.
var ErrDegeneratePath = errors.New("path has fewer than two distinct points")

// TubeOptions control the shape of a tube.
type TubeOptions struct {
	Radius         float64
	RadialSegments int

	// Closed joins the last ring of the tube to the first, which is right for
	// paths sampled over a whole period.
	Closed bool
}

func DefaultTubeOptions() TubeOptions {
	return TubeOptions{
		Radius:         DefaultRadius,
		RadialSegments: DefaultRadialSegments,
		Closed:         true,
	}
}

// Tube is an indexed triangle mesh. Rings has one entry per path point, and
// each ring has RadialSegments+1 vertices, the last duplicating the first so
// that texture coordinates can wrap.
type Tube struct {
	Vertices []vec3.T
	Normals  []vec3.T
	Indices  []int
	Rings    int
	Radial   int
}

// Triangles returns the number of triangles in the mesh.
func (t *Tube) Triangles() int {
	return len(t.Indices) / 3
}

// BuildTube returns a tube of the given radius around the path. The frame of
// each ring is carried along the path by parallel transport, so the tube
// doesn't twist the way Frenet frames do at inflection points.
func BuildTube(points []math3d.Vector3, o TubeOptions) (*Tube, error) {
	if !(o.Radius > 0) {
		return nil, fmt.Errorf("radius must be positive, got %v", o.Radius)
	}

	if o.RadialSegments < 3 {
		return nil, fmt.Errorf("radial segments must be at least 3, got %d", o.RadialSegments)
	}

	pts := make([]vec3.T, len(points))
	for i, p := range points {
		pts[i] = vec3.T{p.X, p.Y, p.Z}
	}

	// A closed path's last point repeats its first, so neighbours wrap around
	// it and the frames must meet up again.
	last := len(pts) - 1
	wrap := o.Closed && last > 1 && vec3.Distance(&pts[0], &pts[last]) < closeTolerance

	tangents, err := computeTangents(pts, wrap)
	if err != nil {
		return nil, err
	}

	normals, binormals := transportFrames(tangents)
	if wrap {
		closeFrames(tangents, normals, binormals)
	}

	t := &Tube{
		Vertices: make([]vec3.T, 0, len(pts)*(o.RadialSegments+1)),
		Normals:  make([]vec3.T, 0, len(pts)*(o.RadialSegments+1)),
		Indices:  make([]int, 0, (len(pts)-1)*o.RadialSegments*6),
		Rings:    len(pts),
		Radial:   o.RadialSegments,
	}

	for i := range pts {
		for j := 0; j <= o.RadialSegments; j++ {
			v := float64(j) / float64(o.RadialSegments) * 2 * math.Pi
			sin, cos := math.Sincos(v)

			n := normals[i].Scaled(-cos)
			b := binormals[i].Scaled(sin)
			dir := vec3.Add(&n, &b)
			dir.Normalize()

			off := dir.Scaled(o.Radius)
			t.Vertices = append(t.Vertices, vec3.Add(&pts[i], &off))
			t.Normals = append(t.Normals, dir)
		}
	}

	stride := o.RadialSegments + 1
	for i := 1; i < len(pts); i++ {
		for j := 1; j <= o.RadialSegments; j++ {
			a := stride*(i-1) + (j - 1)
			b := stride*i + (j - 1)
			c := stride*i + j
			d := stride*(i-1) + j

			t.Indices = append(t.Indices, a, b, d, b, c, d)
		}
	}

	return t, nil
}

// computeTangents returns the unit direction of the path at every point, using
// central differences. Where the path stalls, the previous direction is kept.
func computeTangents(pts []vec3.T, wrap bool) ([]vec3.T, error) {
	n := len(pts)
	tangents := make([]vec3.T, n)

	var last *vec3.T
	for i := range pts {
		prev, next := i-1, i+1
		if prev < 0 {
			prev = 0
			if wrap {
				prev = n - 2
			}
		}
		if next >= n {
			next = n - 1
			if wrap {
				next = 1
			}
		}

		d := vec3.Sub(&pts[next], &pts[prev])
		if d.Length() < minTangent {
			if last != nil {
				tangents[i] = *last
			}
			continue
		}

		tangents[i] = d.Normalized()
		last = &tangents[i]
	}

	if last == nil {
		return nil, ErrDegeneratePath
	}

	// Any points before the path started moving take the first real direction.
	first := -1
	for i := range tangents {
		if tangents[i].Length() > 0 {
			first = i
			break
		}
	}
	for i := 0; i < first; i++ {
		tangents[i] = tangents[first]
	}

	return tangents, nil
}

// transportFrames returns a normal and binormal for every tangent. The first
// normal is perpendicular to the first tangent and the world axis it is least
// aligned with; each subsequent one is the previous normal rotated by the
// change in tangent.
func transportFrames(tangents []vec3.T) (normals, binormals []vec3.T) {
	normals = make([]vec3.T, len(tangents))
	binormals = make([]vec3.T, len(tangents))

	t0 := tangents[0]
	axis := leastAlignedAxis(t0)
	tmp := vec3.Cross(&t0, &axis)
	tmp.Normalize()
	normals[0] = vec3.Cross(&t0, &tmp)
	binormals[0] = vec3.Cross(&t0, &normals[0])

	for i := 1; i < len(tangents); i++ {
		normals[i] = normals[i-1]

		k := vec3.Cross(&tangents[i-1], &tangents[i])
		if k.Length() > minTangent {
			k.Normalize()
			cos := math.Max(-1, math.Min(1, vec3.Dot(&tangents[i-1], &tangents[i])))
			normals[i] = rotateAbout(normals[i], k, math.Acos(cos))
		}

		binormals[i] = vec3.Cross(&tangents[i], &normals[i])
	}

	return normals, binormals
}

// closeFrames removes the twist which parallel transport accumulates around a
// loop. The last normal differs from the first by some angle about the shared
// tangent; each frame is turned back by its share of that angle, so the last
// ring lands on the first.
func closeFrames(tangents, normals, binormals []vec3.T) {
	last := len(normals) - 1
	if last < 1 {
		return
	}

	cross := vec3.Cross(&normals[0], &normals[last])
	angle := math.Atan2(vec3.Dot(&tangents[0], &cross), vec3.Dot(&normals[0], &normals[last]))

	for i := 1; i <= last; i++ {
		normals[i] = rotateAbout(normals[i], tangents[i], -angle*float64(i)/float64(last))
		binormals[i] = vec3.Cross(&tangents[i], &normals[i])
	}
}

func leastAlignedAxis(t vec3.T) vec3.T {
	x, y, z := math.Abs(t[0]), math.Abs(t[1]), math.Abs(t[2])
	switch {
	case x <= y && x <= z:
		return vec3.T{1, 0, 0}
	case y <= z:
		return vec3.T{0, 1, 0}
	default:
		return vec3.T{0, 0, 1}
	}
}

// rotateAbout rotates v by angle radians about the unit axis k, using
// Rodrigues' formula.
func rotateAbout(v, k vec3.T, angle float64) vec3.T {
	sin, cos := math.Sincos(angle)

	a := v.Scaled(cos)
	kxv := vec3.Cross(&k, &v)
	b := kxv.Scaled(sin)
	c := k.Scaled(vec3.Dot(&k, &v) * (1 - cos))

	r := vec3.Add(&a, &b)
	return vec3.Add(&r, &c)
}
