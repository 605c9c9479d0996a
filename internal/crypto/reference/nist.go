package reference

import (
	"fmt"
	"math/big"

	"filippo.io/nistec"
	"github.com/smartcontractkit/weierstrass/curve"
)

// nistPoint is the subset of the nistec point API shared by all NIST curves.
type nistPoint[T any] interface {
	Bytes() []byte
	SetBytes([]byte) (T, error)
	Add(T, T) T
	ScalarMult(T, []byte) (T, error)
	ScalarBaseMult([]byte) (T, error)
}

type nistBackend[P nistPoint[P]] struct {
	curve     *curve.Params
	newPoint  func() P
	fieldSize int // bytes per coordinate, also the scalar length expected by nistec
}

func newP256Backend() Backend {
	return &nistBackend[*nistec.P256Point]{curve.P256, nistec.NewP256Point, 32}
}

func newP521Backend() Backend {
	return &nistBackend[*nistec.P521Point]{curve.P521, nistec.NewP521Point, 66}
}

func (b *nistBackend[P]) Name() string {
	return "nistec/" + b.curve.Name()
}

func (b *nistBackend[P]) Curve() *curve.Params {
	return b.curve
}

func (b *nistBackend[P]) ScalarBaseMult(k *big.Int) (*curve.Point, error) {
	scalar, err := reduce(k, b.curve.N(), b.fieldSize)
	if err != nil {
		return nil, err
	}
	r, err := b.newPoint().ScalarBaseMult(scalar)
	if err != nil {
		return nil, err
	}
	return b.decode(r.Bytes())
}

func (b *nistBackend[P]) ScalarMult(p *curve.Point, k *big.Int) (*curve.Point, error) {
	scalar, err := reduce(k, b.curve.N(), b.fieldSize)
	if err != nil {
		return nil, err
	}
	q, err := b.encode(p)
	if err != nil {
		return nil, err
	}
	r, err := b.newPoint().ScalarMult(q, scalar)
	if err != nil {
		return nil, err
	}
	return b.decode(r.Bytes())
}

func (b *nistBackend[P]) Add(p, q *curve.Point) (*curve.Point, error) {
	p1, err := b.encode(p)
	if err != nil {
		return nil, err
	}
	p2, err := b.encode(q)
	if err != nil {
		return nil, err
	}
	return b.decode(b.newPoint().Add(p1, p2).Bytes())
}

// encode converts p into a nistec point via the uncompressed SEC 1 encoding, 0x00 standing for infinity.
// nistec rejects points that are not on the curve.
func (b *nistBackend[P]) encode(p *curve.Point) (P, error) {
	var zero P
	if err := requireCurve(b.curve, p); err != nil {
		return zero, err
	}

	var encoding []byte
	if p.IsInfinity() {
		encoding = []byte{0}
	} else {
		encoding = make([]byte, 1+2*b.fieldSize)
		encoding[0] = 4
		p.X().FillBytes(encoding[1 : 1+b.fieldSize])
		p.Y().FillBytes(encoding[1+b.fieldSize:])
	}

	r, err := b.newPoint().SetBytes(encoding)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return r, nil
}

func (b *nistBackend[P]) decode(encoding []byte) (*curve.Point, error) {
	switch {
	case len(encoding) == 1 && encoding[0] == 0:
		return b.curve.Infinity(), nil
	case len(encoding) == 1+2*b.fieldSize && encoding[0] == 4:
		x := new(big.Int).SetBytes(encoding[1 : 1+b.fieldSize])
		y := new(big.Int).SetBytes(encoding[1+b.fieldSize:])
		return b.curve.NewPoint(x, y), nil
	default:
		return nil, fmt.Errorf("%s: unexpected point encoding of length %d", b.Name(), len(encoding))
	}
}
