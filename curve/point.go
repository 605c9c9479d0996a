package curve

import (
	"fmt"
	"math/big"

	"github.com/smartcontractkit/weierstrass/internal/math"
)

// Point is either the point at infinity O, or an affine point (x, y) on the curve it is bound to.
// The zero value is O. Arithmetic never modifies its operands.
type Point struct {
	curve  *Params
	x, y   math.Element
	finite bool
}

// Infinity returns the point at infinity, not bound to any curve. It is the identity for every curve.
func Infinity() *Point {
	return &Point{}
}

// p.Curve() returns the curve p is bound to. The unbound point at infinity returns nil.
func (p *Point) Curve() *Params {
	return p.curve
}

// p.IsInfinity() reports whether p is the point at infinity. A nil *Point is treated as O.
func (p *Point) IsInfinity() bool {
	return p == nil || !p.finite
}

// p.X() returns a copy of the x-coordinate, zero for O.
func (p *Point) X() *big.Int {
	if p.IsInfinity() {
		return new(big.Int)
	}
	return p.x.BigInt()
}

// p.Y() returns a copy of the y-coordinate, zero for O.
func (p *Point) Y() *big.Int {
	if p.IsInfinity() {
		return new(big.Int)
	}
	return p.y.BigInt()
}

// p.P() returns the field modulus of p's curve, or nil for the unbound point at infinity.
func (p *Point) P() *big.Int {
	if p == nil || p.curve == nil {
		return nil
	}
	return p.curve.P()
}

// p.SetX(x) sets the x-coordinate of the finite point p to x mod p, and returns p.
// Low-level coordinate assembly only: the result is not checked against the curve equation. Panics for O.
func (p *Point) SetX(x *big.Int) *Point {
	if p.IsInfinity() {
		panic(ErrInfinityCoordinates)
	}
	p.x = math.NewElement(p.curve.field).SetBigInt(x)
	return p
}

// p.SetY(y) sets the y-coordinate of the finite point p to y mod p, and returns p. See SetX.
func (p *Point) SetY(y *big.Int) *Point {
	if p.IsInfinity() {
		panic(ErrInfinityCoordinates)
	}
	p.y = math.NewElement(p.curve.field).SetBigInt(y)
	return p
}

// p.Clone() returns an independent copy of p with the same curve binding.
func (p *Point) Clone() *Point {
	if p.IsInfinity() {
		if p == nil {
			return Infinity()
		}
		return p.curve.Infinity()
	}
	return &Point{curve: p.curve, x: p.x.Clone(), y: p.y.Clone(), finite: true}
}

// p.Negate() returns -p. For (x, y) this is (x, p - y mod p), and O for O.
func (p *Point) Negate() *Point {
	if p.IsInfinity() {
		return p.Clone()
	}
	return &Point{curve: p.curve, x: p.x.Clone(), y: p.y.Clone().Negate(), finite: true}
}

// p.Equal(q) returns true if both points are O, or both are finite with identical coordinates.
// Curve bindings are not consulted; comparing points of different curves is meaningless.
func (p *Point) Equal(q *Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	if p.x.Modulus().Equal(q.x.Modulus()) {
		return p.x.Equal(q.x) && p.y.Equal(q.y)
	}
	return p.x.BigInt().Cmp(q.x.BigInt()) == 0 && p.y.BigInt().Cmp(q.y.BigInt()) == 0
}

// p.IsOnCurve() reports whether p satisfies the equation of its curve. O is on every curve.
func (p *Point) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	return p.curve.isOnCurve(p.x, p.y)
}

// String renders p for debugging, with hexadecimal coordinates.
func (p *Point) String() string {
	if p.IsInfinity() {
		return "Point at Infinity"
	}
	return fmt.Sprintf("x = %s, y = %s", p.x.Text(16), p.y.Text(16))
}
