package curve

import (
	"fmt"
	"math/big"

	"github.com/smartcontractkit/weierstrass/internal/math"
)

// p.Add(q) returns p + q.
//
// The case split happens before any slope is computed:
//   - O is the neutral element on either side,
//   - p = q is doubling (tangent slope),
//   - equal x and different y means q = -p, and the sum is O,
//   - otherwise λ = (y₂ - y₁) / (x₂ - x₁), x₃ = λ² - x₁ - x₂, y₃ = λ(x₁ - x₃) - y₁.
//
// Adding finite points bound to different curves panics with ErrCurveMismatch.
func (p *Point) Add(q *Point) *Point {
	if p.IsInfinity() {
		return q.Clone()
	}
	if q.IsInfinity() {
		return p.Clone()
	}
	requireSameCurve(p, q)

	if p.x.Equal(q.x) {
		if p.y.Equal(q.y) {
			return p.double()
		}
		return p.curve.Infinity()
	}

	denominator := q.x.Clone().Subtract(p.x) // x₂ - x₁
	λ := q.y.Clone().Subtract(p.y)           // y₂ - y₁
	λ.Multiply(invert(denominator))

	return p.chord(λ, q.x)
}

// p.Subtract(q) returns p - q = p + (-q).
func (p *Point) Subtract(q *Point) *Point {
	return p.Add(q.Negate())
}

// p.double() returns 2p with λ = (3x² + a) / 2y. Points with y = 0 are their own negation and double to O.
func (p *Point) double() *Point {
	if p.IsInfinity() {
		return p.Clone()
	}
	if p.y.IsZero() {
		return p.curve.Infinity()
	}

	c := p.curve
	numerator := p.x.Clone().Square().Multiply(c.three).Add(c.coeffA) // 3x² + a
	denominator := p.y.Clone().Add(p.y)                                // 2y
	λ := numerator.Multiply(invert(denominator))

	return p.chord(λ, p.x)
}

// p.chord(λ, x₂) returns the third intersection of the line through p with slope λ, reflected over the x-axis:
// x₃ = λ² - x₁ - x₂, y₃ = λ(x₁ - x₃) - y₁.
func (p *Point) chord(λ math.Element, x2 math.Element) *Point {
	x3 := λ.Clone().Square().Subtract(p.x).Subtract(x2)
	y3 := p.x.Clone().Subtract(x3).Multiply(λ).Subtract(p.y)
	return &Point{curve: p.curve, x: x3, y: y3, finite: true}
}

// p.ScalarMult(k) returns k·p using left-to-right double-and-add. The scalar is not reduced modulo the group order.
// k = 0 and p = O both yield O. Negative scalars panic with ErrNegativeScalar.
func (p *Point) ScalarMult(k *big.Int) *Point {
	if k.Sign() < 0 {
		panic(ErrNegativeScalar)
	}

	var result *Point
	if p == nil {
		result = Infinity()
	} else {
		result = p.curve.Infinity()
	}
	if p.IsInfinity() {
		return result
	}

	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.double()
		if k.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}

// invert returns a new element holding x⁻¹. A zero denominator at this point means the case analysis of the caller was
// bypassed, e.g. by points with mismatched or malformed coordinates, and panics.
func invert(x math.Element) math.Element {
	inverse, ok := x.Clone().InverseVarTime()
	if !ok {
		panic(fmt.Errorf("%w: %s mod %s", ErrNotInvertible, x, x.Modulus()))
	}
	return inverse
}

func requireSameCurve(p, q *Point) {
	if p.curve != q.curve && !p.curve.Equal(q.curve) {
		panic(fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p.curve, q.curve))
	}
}

// Points is a list of points, typically all bound to the same curve.
type Points []*Point

// Sum returns the sum of all points in w, O for an empty list.
func (w Points) Sum() *Point {
	result := Infinity()
	for _, wᵢ := range w {
		result = result.Add(wᵢ)
	}
	return result
}
