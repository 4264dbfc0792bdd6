/*package surface locates closed isosurfaces of promolecule densities and
stockholder weights by root finding along rays from an origin, sampled on
spherical angle grids.
*/
package surface

import (
	"math"
)

// brent finds a root of f inside [lo, hi] with Brent's method. It assumes
// the caller has bracketed the root: f(lo) and f(hi) are not checked for
// opposite signs, which keeps the two extra field evaluations out of the
// per-direction cost. With an invalid bracket the iteration still
// terminates, but the returned value is meaningless.
//
// The search stops once the bracket is narrower than tol. If that does not
// happen within maxIter iterations, brent returns hi with ok set to false.
func brent(
	f func(float64) float64, lo, hi, tol float64, maxIter int,
) (t float64, ok bool) {
	a, b := lo, hi
	fa, fb := f(a), f(b)
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	d := 0.0
	mflag := true
	s, fs := b, fb

	for i := 0; i < maxIter; i++ {
		if math.Abs(b-a) < tol {
			return s, true
		}

		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant step.
			s = b - fb*(b-a)/(fb-fa)
		}

		if s < (3*a+b)/4 || s > b ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2) ||
			(mflag && math.Abs(b-c) < tol) ||
			(!mflag && math.Abs(c-d) < tol) {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs = f(s)
		d = c
		c, fc = b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}

	return hi, false
}
