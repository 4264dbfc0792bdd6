package density

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/promol/geom"
)

func expTable(t *testing.T, scale float64) *RadialTable {
	rs := make([]float64, 64)
	vals := make([]float64, 64)
	llo, lhi := math.Log(0.01), math.Log(40.0)
	for i := range rs {
		rs[i] = math.Exp(llo + (lhi-llo)*float64(i)/float64(len(rs)-1))
		vals[i] = scale * math.Exp(-rs[i])
	}
	tab, err := NewRadialTable(rs, vals)
	assert.NoError(t, err)
	return tab
}

func TestNewRadialTableErrors(t *testing.T) {
	_, err := NewRadialTable([]float64{1, 2}, []float64{1})
	assert.Error(t, err, "length mismatch")
	_, err = NewRadialTable([]float64{1}, []float64{1})
	assert.Error(t, err, "too short")
	_, err = NewRadialTable([]float64{-1, 2}, []float64{1, 2})
	assert.Error(t, err, "non-positive radius")
	_, err = NewRadialTable([]float64{1, 3, 2}, []float64{1, 2, 3})
	assert.Error(t, err, "non-monotonic")

	tab, err := NewRadialTable([]float64{1, 2, 4}, []float64{3, 2, 1})
	assert.NoError(t, err)
	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, 4.0, tab.MaxRadius())
}

func TestNewPromoleculeDensityErrors(t *testing.T) {
	tab := expTable(t, 1)

	_, err := NewPromoleculeDensity(
		[]geom.Vec{{0, 0, 0}}, []*RadialTable{tab, tab}, nil,
	)
	assert.Error(t, err, "parallel slice mismatch")

	_, err = NewPromoleculeDensity(nil, nil, nil)
	assert.Error(t, err, "no atoms")

	_, err = NewPromoleculeDensity(
		[]geom.Vec{{0, 0, 0}}, []*RadialTable{nil}, nil,
	)
	assert.Error(t, err, "nil table")

	_, err = NewPromoleculeDensity(
		[]geom.Vec{{0, 0, 0}}, []*RadialTable{tab}, []Element{1, 6},
	)
	assert.Error(t, err, "element slice mismatch")
}

func TestRhoMatchesTable(t *testing.T) {
	tab := expTable(t, 2.5)
	p, err := NewPromoleculeDensity(
		[]geom.Vec{{1, 0, 0}}, []*RadialTable{tab}, nil,
	)
	assert.NoError(t, err)

	pts := []geom.Vec{{2, 0, 0}, {1, 1, 1}, {0, 0, 0}, {-3, 2, 5}}
	for _, pt := range pts {
		r := pt.Dist(geom.Vec{1, 0, 0}) / AngstromPerBohr
		assert.InDelta(t, tab.Eval(r), p.Rho(pt), 1e-14)
	}
}

func TestRhoAdditivity(t *testing.T) {
	tabA, tabB := expTable(t, 1), expTable(t, 3)
	posA, posB := geom.Vec{0, 0, 0}, geom.Vec{1.5, 0, 0}

	a, _ := NewPromoleculeDensity(
		[]geom.Vec{posA}, []*RadialTable{tabA}, nil)
	b, _ := NewPromoleculeDensity(
		[]geom.Vec{posB}, []*RadialTable{tabB}, nil)
	ab, _ := NewPromoleculeDensity(
		[]geom.Vec{posA, posB}, []*RadialTable{tabA, tabB}, nil)

	pts := []geom.Vec{{0.7, 0.1, -0.3}, {2, 2, 2}, {1.5, 0, 0}, {-4, 0, 1}}
	for _, pt := range pts {
		assert.InDelta(t, a.Rho(pt)+b.Rho(pt), ab.Rho(pt), 1e-13)
	}
}

func TestRhoAllMatchesRho(t *testing.T) {
	tab := expTable(t, 1)
	p, _ := NewPromoleculeDensity(
		[]geom.Vec{{0, 0, 0}, {1, 1, 0}, {0, -2, 1}},
		[]*RadialTable{tab, tab, tab}, nil,
	)

	pts := []geom.Vec{{0.2, 0.3, 0.4}, {1, 1, 1}, {-1, 2, 0}, {3, 3, 3}}
	out := p.RhoAll(pts)
	for i, pt := range pts {
		assert.InDelta(t, p.Rho(pt), out[i], 1e-13)
	}

	buf := make([]float64, len(pts))
	ret := p.RhoAll(pts, buf)
	assert.Equal(t, out, buf)
	assert.Equal(t, out, ret)

	assert.Panics(t, func() { p.RhoAll(pts, make([]float64, 2)) },
		"output length mismatch")
}

func TestWeightSymmetry(t *testing.T) {
	tabA, tabB := expTable(t, 1), expTable(t, 2)
	a, _ := NewPromoleculeDensity(
		[]geom.Vec{{0, 0, 0}}, []*RadialTable{tabA}, nil)
	b, _ := NewPromoleculeDensity(
		[]geom.Vec{{2, 0, 0}}, []*RadialTable{tabB}, nil)

	sAB, err := NewStockholderWeight(a, b)
	assert.NoError(t, err)
	sBA, err := NewStockholderWeight(b, a)
	assert.NoError(t, err)

	pts := []geom.Vec{{1, 0, 0}, {0.3, 0.5, -0.2}, {1.9, 0.1, 0}, {1, 1, 1}}
	for _, pt := range pts {
		assert.InDelta(t, 1.0, sAB.Weight(pt)+sBA.Weight(pt), 1e-13)
	}

	out := sAB.WeightAll(pts)
	for i, pt := range pts {
		assert.InDelta(t, sAB.Weight(pt), out[i], 1e-13)
	}
}

func TestWeightMidplane(t *testing.T) {
	// Identical atoms mirrored about x = 1: the weight on that plane is
	// exactly one half.
	tab := expTable(t, 1)
	a, _ := NewPromoleculeDensity(
		[]geom.Vec{{0, 0, 0}}, []*RadialTable{tab}, nil)
	b, _ := NewPromoleculeDensity(
		[]geom.Vec{{2, 0, 0}}, []*RadialTable{tab}, nil)
	s, _ := NewStockholderWeight(a, b)

	assert.InDelta(t, 0.5, s.Weight(geom.Vec{1, 0, 0}), 1e-13)
	assert.InDelta(t, 0.5, s.Weight(geom.Vec{1, 0.7, -0.4}), 1e-13)
}

func TestWeightBackground(t *testing.T) {
	tab := expTable(t, 1)
	a, _ := NewPromoleculeDensity(
		[]geom.Vec{{0, 0, 0}}, []*RadialTable{tab}, nil)
	b, _ := NewPromoleculeDensity(
		[]geom.Vec{{2, 0, 0}}, []*RadialTable{tab}, nil)

	s, _ := NewStockholderWeight(a, b)
	s.Background = 1e-3

	pt := geom.Vec{1, 0, 0}
	assert.Less(t, s.Weight(pt), 0.5)
}

func TestDNorm(t *testing.T) {
	tab := expTable(t, 1)
	els := []Element{6} // carbon, vdw 1.70
	a, _ := NewPromoleculeDensity(
		[]geom.Vec{{0, 0, 0}}, []*RadialTable{tab}, els)
	b, _ := NewPromoleculeDensity(
		[]geom.Vec{{4, 0, 0}}, []*RadialTable{tab}, els)
	s, _ := NewStockholderWeight(a, b)

	vdw := Element(6).VdwRadius()
	pt := geom.Vec{1, 0, 0}
	want := (1.0-vdw)/vdw + (3.0-vdw)/vdw
	assert.InDelta(t, want, s.DNorm(pt), 1e-13)

	out := s.DNormAll([]geom.Vec{pt})
	assert.InDelta(t, want, out[0], 1e-13)
}

func TestElementData(t *testing.T) {
	assert.Equal(t, "H", Element(1).Symbol())
	assert.Equal(t, "C", Element(6).Symbol())
	assert.Equal(t, 1.70, Element(6).VdwRadius())
	assert.Equal(t, 0.68, Element(6).CovalentRadius())
	assert.Equal(t, "Lr", MaxElement.Symbol())

	el, ok := ElementFromSymbol("cl")
	assert.True(t, ok)
	assert.Equal(t, Element(17), el)

	_, ok = ElementFromSymbol("Xx")
	assert.False(t, ok)

	assert.Panics(t, func() { Element(0).Symbol() })
	assert.Panics(t, func() { Element(104).VdwRadius() })
}
