package mesh

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/cloudy-native/lucid/math3d"
)

// Bounds is the axis-aligned box around a path, plus the smallest sphere about
// the box center which contains every point. Renderers use it to place the
// camera.
type Bounds struct {
	Min    vec3.T  `json:"min"`
	Max    vec3.T  `json:"max"`
	Center vec3.T  `json:"center"`
	Radius float64 `json:"radius"`
}

// ComputeBounds returns the bounds of the points. The bounds of no points are
// all zero.
func ComputeBounds(points []math3d.Vector3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	lo := vec3.T{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := vec3.T{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for _, p := range points {
		v := p.Array()
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}

	center := vec3.Interpolate(&lo, &hi, 0.5)

	r := 0.0
	for _, p := range points {
		v := vec3.T(p.Array())
		r = math.Max(r, vec3.Distance(&center, &v))
	}

	return Bounds{
		Min:    lo,
		Max:    hi,
		Center: center,
		Radius: r,
	}
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() vec3.T {
	return vec3.Sub(&b.Max, &b.Min)
}

// CameraDistance returns how far from the center a camera with the given
// vertical field of view (in radians) must be to see the whole path.
func (b Bounds) CameraDistance(fov float64) float64 {
	if b.Radius == 0 || fov <= 0 {
		return 1
	}
	return b.Radius / math.Sin(fov/2)
}
