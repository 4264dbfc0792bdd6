/*package interpolate implements interpolators over tabulated 1D functions.

The interpolators here are tuned for the radial density tables used
elsewhere in this module: strictly increasing domains whose node spacing is
approximately geometric.
*/
package interpolate

type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &LogLinear{}
)
