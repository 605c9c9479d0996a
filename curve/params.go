package curve

import (
	"fmt"
	"math/big"

	"github.com/smartcontractkit/weierstrass/internal/math"
)

// Params holds the parameters of a curve y² = x³ + ax + b over the field of order p, with generator G = (Gx, Gy) of
// order n. A Params value is immutable after construction and may be shared between goroutines.
type Params struct {
	name string

	a, b, p  *big.Int
	gx, gy   *big.Int
	n        *big.Int
	field    *math.Modulus
	order    *math.Modulus
	coeffA   math.Element
	three    math.Element
	equation math.Polynomial // x³ + ax + b
}

// NewParams returns the parameters of the curve y² = x³ + ax + b over F_p, with generator (gx, gy) of order n.
//
// Only structurally unusable input is rejected: nil values, p not odd and larger than 3, n not larger than 1, and
// a, b, gx, gy not reduced modulo p. Neither primality of p and n nor membership of the generator are checked; these
// are trusted.
func NewParams(name string, a, b, p, gx, gy, n *big.Int) (*Params, error) {
	for _, v := range []*big.Int{a, b, p, gx, gy, n} {
		if v == nil {
			return nil, fmt.Errorf("%w: %s: missing value", ErrInvalidParams, name)
		}
	}
	three := big.NewInt(3)
	if p.Cmp(three) <= 0 || p.Bit(0) == 0 {
		return nil, fmt.Errorf("%w: %s: field modulus must be odd and larger than 3", ErrInvalidParams, name)
	}
	if n.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: %s: group order must be larger than 1", ErrInvalidParams, name)
	}
	labels := []string{"a", "b", "Gx", "Gy"}
	for i, v := range []*big.Int{a, b, gx, gy} {
		if v.Sign() < 0 || v.Cmp(p) >= 0 {
			return nil, fmt.Errorf("%w: %s: %s is not reduced modulo p", ErrInvalidParams, name, labels[i])
		}
	}

	field, err := math.NewModulusFromBig(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParams, name, err)
	}
	order, err := math.NewModulusFromBig(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParams, name, err)
	}

	c := &Params{
		name:  name,
		a:     new(big.Int).Set(a),
		b:     new(big.Int).Set(b),
		p:     new(big.Int).Set(p),
		gx:    new(big.Int).Set(gx),
		gy:    new(big.Int).Set(gy),
		n:     new(big.Int).Set(n),
		field: field,
		order: order,
	}
	c.coeffA = math.NewElement(field).SetBigInt(a)
	c.three = math.NewElement(field).SetUint(3)
	c.equation = math.Polynomial{
		math.NewElement(field).SetBigInt(b),
		c.coeffA.Clone(),
		math.NewElement(field),
		math.NewElement(field).SetUint(1),
	}
	return c, nil
}

// mustParamsFromHex builds a catalog entry from hexadecimal literals, panicking on malformed constants.
func mustParamsFromHex(name, a, b, p, gx, gy, n string) *Params {
	values := make([]*big.Int, 6)
	for i, s := range []string{a, b, p, gx, gy, n} {
		v, ok := new(big.Int).SetString(s, 16)
		if !ok {
			panic(fmt.Sprintf("curve %s: invalid hex constant %q", name, s))
		}
		values[i] = v
	}
	c, err := NewParams(name, values[0], values[1], values[2], values[3], values[4], values[5])
	if err != nil {
		panic(err)
	}
	return c
}

// Returns the name of the curve, used for debugging and logging purposes.
func (c *Params) Name() string { return c.name }

func (c *Params) A() *big.Int  { return new(big.Int).Set(c.a) }
func (c *Params) B() *big.Int  { return new(big.Int).Set(c.b) }
func (c *Params) P() *big.Int  { return new(big.Int).Set(c.p) }
func (c *Params) Gx() *big.Int { return new(big.Int).Set(c.gx) }
func (c *Params) Gy() *big.Int { return new(big.Int).Set(c.gy) }
func (c *Params) N() *big.Int  { return new(big.Int).Set(c.n) }

// Field returns the modulus of the base field F_p. Must not be modified by the caller.
func (c *Params) Field() *math.Modulus { return c.field }

// GroupOrder returns the order n of the generator as modulus. This is NOT the prime modulus of the base field.
func (c *Params) GroupOrder() *math.Modulus { return c.order }

// BitSize returns the bit length of the field modulus.
func (c *Params) BitSize() int { return c.p.BitLen() }

// Equal reports whether c and d describe the same curve and generator. Names are ignored.
func (c *Params) Equal(d *Params) bool {
	if c == d {
		return true
	}
	if c == nil || d == nil {
		return false
	}
	return c.a.Cmp(d.a) == 0 && c.b.Cmp(d.b) == 0 && c.p.Cmp(d.p) == 0 &&
		c.gx.Cmp(d.gx) == 0 && c.gy.Cmp(d.gy) == 0 && c.n.Cmp(d.n) == 0
}

// Infinity returns the point at infinity bound to c. A nil receiver yields the unbound identity.
func (c *Params) Infinity() *Point {
	return &Point{curve: c}
}

// Generator returns a new copy of the base point G.
func (c *Params) Generator() *Point {
	return c.NewPoint(c.gx, c.gy)
}

// NewPoint returns the finite point (x, y) bound to c. The coordinates are reduced modulo p but not checked against
// the curve equation; supplying coordinates of a point on the curve is the caller's obligation.
func (c *Params) NewPoint(x, y *big.Int) *Point {
	return &Point{
		curve:  c,
		x:      math.NewElement(c.field).SetBigInt(x),
		y:      math.NewElement(c.field).SetBigInt(y),
		finite: true,
	}
}

// NewPointChecked is like NewPoint, but rejects coordinates outside [0, p) and points not on the curve.
func (c *Params) NewPointChecked(x, y *big.Int) (*Point, error) {
	for _, v := range []*big.Int{x, y} {
		if v == nil || v.Sign() < 0 || v.Cmp(c.p) >= 0 {
			return nil, fmt.Errorf("%w: coordinate out of range for %s", ErrNotOnCurve, c.name)
		}
	}
	if !c.IsOnCurve(x, y) {
		return nil, fmt.Errorf("%w: %s", ErrNotOnCurve, c.name)
	}
	return c.NewPoint(x, y), nil
}

// IsOnCurve reports whether y² ≡ x³ + ax + b (mod p).
func (c *Params) IsOnCurve(x, y *big.Int) bool {
	return c.isOnCurve(math.NewElement(c.field).SetBigInt(x), math.NewElement(c.field).SetBigInt(y))
}

func (c *Params) isOnCurve(x, y math.Element) bool {
	return c.equation.Eval(x).Equal(y.Clone().Square())
}

// ScalarBaseMult returns k·G.
func (c *Params) ScalarBaseMult(k *big.Int) *Point {
	return c.Generator().ScalarMult(k)
}

func (c *Params) String() string {
	return c.name
}
