package reference

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/smartcontractkit/weierstrass/curve"
)

// secp256k1Backend uses the elliptic.Curve compatible API of decred's secp256k1 package, where (0, 0) denotes the point
// at infinity.
type secp256k1Backend struct {
	koblitz *secp256k1.KoblitzCurve
}

func newSecp256k1Backend() Backend {
	return &secp256k1Backend{secp256k1.S256()}
}

func (b *secp256k1Backend) Name() string {
	return "decred/secp256k1"
}

func (b *secp256k1Backend) Curve() *curve.Params {
	return curve.Secp256k1
}

func (b *secp256k1Backend) ScalarBaseMult(k *big.Int) (*curve.Point, error) {
	scalar, err := reduce(k, curve.Secp256k1.N(), 32)
	if err != nil {
		return nil, err
	}
	return b.decode(b.koblitz.ScalarBaseMult(scalar)), nil
}

func (b *secp256k1Backend) ScalarMult(p *curve.Point, k *big.Int) (*curve.Point, error) {
	if err := requireCurve(curve.Secp256k1, p); err != nil {
		return nil, err
	}
	scalar, err := reduce(k, curve.Secp256k1.N(), 32)
	if err != nil {
		return nil, err
	}
	if p.IsInfinity() {
		return curve.Secp256k1.Infinity(), nil
	}
	return b.decode(b.koblitz.ScalarMult(p.X(), p.Y(), scalar)), nil
}

func (b *secp256k1Backend) Add(p, q *curve.Point) (*curve.Point, error) {
	if err := requireCurve(curve.Secp256k1, p, q); err != nil {
		return nil, err
	}
	// X() and Y() of the point at infinity are (0, 0), matching the convention of the backend.
	return b.decode(b.koblitz.Add(p.X(), p.Y(), q.X(), q.Y())), nil
}

func (b *secp256k1Backend) decode(x, y *big.Int) *curve.Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return curve.Secp256k1.Infinity()
	}
	return curve.Secp256k1.NewPoint(x, y)
}
