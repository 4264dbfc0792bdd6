/*package geom contains small value types for points and directions in three
dimensions.

Everything here is hot-path code and does no validation. Functions which
construct these types at public API boundaries are responsible for checking
their inputs.
*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Add returns the sum of v and u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns the difference of v and u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns v multiplied by the scalar a.
func (v Vec) Scale(a float64) Vec {
	return Vec{v[0] * a, v[1] * a, v[2] * a}
}

// Dot returns the inner product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the Euclidean distance between v and u.
func (v Vec) Dist(u Vec) float64 {
	dx, dy, dz := v[0]-u[0], v[1]-u[1], v[2]-u[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Direction converts an (azimuth, polar) angle pair in radians to a unit
// vector, (sin(phi) cos(theta), sin(phi) sin(theta), cos(phi)).
func Direction(theta, phi float64) Vec {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return Vec{sp * ct, sp * st, cp}
}

// Ray is a half line extending from Origin along the unit vector Dir.
type Ray struct {
	Origin, Dir Vec
}

// At returns the point a distance t along the ray.
func (r *Ray) At(t float64) Vec {
	return Vec{
		r.Origin[0] + t*r.Dir[0],
		r.Origin[1] + t*r.Dir[1],
		r.Origin[2] + t*r.Dir[2],
	}
}
