// Package reference wraps audited third-party curve implementations behind a common interface, so that results of the
// affine arithmetic in package curve can be cross-checked against them.
package reference

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smartcontractkit/weierstrass/curve"
)

var ErrNoBackend = errors.New("no reference backend for curve")

// Backend computes point operations with an independent implementation. Inputs and outputs are points of package
// curve bound to Curve().
type Backend interface {
	// Returns the name of the backing implementation, for logging.
	Name() string

	Curve() *curve.Params

	// b.ScalarBaseMult(k) returns k·G. The scalar is reduced modulo the group order.
	ScalarBaseMult(k *big.Int) (*curve.Point, error)

	// b.ScalarMult(p, k) returns k·p. The scalar is reduced modulo the group order.
	ScalarMult(p *curve.Point, k *big.Int) (*curve.Point, error)

	// b.Add(p, q) returns p + q.
	Add(p, q *curve.Point) (*curve.Point, error)
}

// ForCurve returns the reference backend for a catalog curve.
func ForCurve(c *curve.Params) (Backend, error) {
	switch c {
	case curve.P256:
		return newP256Backend(), nil
	case curve.P521:
		return newP521Backend(), nil
	case curve.Secp256k1:
		return newSecp256k1Backend(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoBackend, c)
	}
}

// reduce returns k mod n, left-padded to size bytes.
func reduce(k *big.Int, n *big.Int, size int) ([]byte, error) {
	if k.Sign() < 0 {
		return nil, curve.ErrNegativeScalar
	}
	out := make([]byte, size)
	new(big.Int).Mod(k, n).FillBytes(out)
	return out, nil
}

func requireCurve(c *curve.Params, points ...*curve.Point) error {
	for _, p := range points {
		if !p.IsInfinity() && !p.Curve().Equal(c) {
			return fmt.Errorf("%w: expected %s, got %s", curve.ErrCurveMismatch, c, p.Curve())
		}
	}
	return nil
}
