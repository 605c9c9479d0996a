package curve

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestP256Scenario(t *testing.T) {
	g := P256.Generator()

	twoG := g.ScalarMult(big.NewInt(2))
	assert.Equal(t, hexInt(t, "7cf27b188d034f7e8a52380304b51ac3c08969e277f21b35a60b48fc47669978"), twoG.X())
	assert.Equal(t, hexInt(t, "07775510db8ed040293d9ac69f7430dbba7dade63ce982299e04b79d227873d1"), twoG.Y())
	assert.True(t, twoG.Equal(g.Add(g)))

	assert.True(t, g.Add(g.Negate()).IsInfinity())
	assert.True(t, g.ScalarMult(big.NewInt(0)).IsInfinity())
	assert.False(t, g.Equal(Infinity()))
	assert.False(t, Infinity().Equal(g))
	assert.False(t, g.Equal(new(Point)))
}

func TestKnownMultiples(t *testing.T) {
	testCases := []struct {
		curve *Params
		k     int64
		x, y  string
	}{
		{P256, 3,
			"5ecbe4d1a6330a44c8f7ef951d4bf165e6c6b721efada985fb41661bc6e7fd6c",
			"8734640c4998ff7e374b06ce1a64a2ecd82ab036384fb83d9a79b127a27d5032"},
		{Secp256k1, 2,
			"c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
			"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"},
		{Secp256k1, 3,
			"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9",
			"388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672"},
		{P521, 2,
			"433c219024277e7e682fcb288148c282747403279b1ccc06352c6e5505d769be97b3b204da6ef55507aa104a3a35c5af41cf2fa364d60fd967f43e3933ba6d783d",
			"f4bb8cc7f86db26700a7f3eceeeed3f0b5c6b5107c4da97740ab21a29906c42dbbb3e377de9f251f6b93937fa99a3248f4eafcbe95edc0f4f71be356d661f41b02"},
		{P521, 3,
			"1a73d352443de29195dd91d6a64b5959479b52a6e5b123d9ab9e5ad7a112d7a8dd1ad3f164a3a4832051da6bd16b59fe21baeb490862c32ea05a5919d2ede37ad7d",
			"13e9b03b97dfa62ddd9979f86c6cab814f2f1557fa82a9d0317d2f8ab1fa355ceec2e2dd4cf8dc575b02d5aced1dec3c70cf105c9bc93a590425f588ca1ee86c0e5"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%d", tc.curve.Name(), tc.k), func(t *testing.T) {
			p := tc.curve.ScalarBaseMult(big.NewInt(tc.k))
			assert.Equal(t, hexInt(t, tc.x), p.X())
			assert.Equal(t, hexInt(t, tc.y), p.Y())
			assert.True(t, p.IsOnCurve())

			// repeated addition reaches the same point
			sum := tc.curve.Infinity()
			for i := int64(0); i < tc.k; i++ {
				sum = sum.Add(tc.curve.Generator())
			}
			assert.True(t, sum.Equal(p))
		})
	}
}

func TestOrderProperty(t *testing.T) {
	for _, c := range SupportedCurves {
		t.Run(c.Name(), func(t *testing.T) {
			assert.True(t, c.ScalarBaseMult(c.N()).IsInfinity())

			nMinusOne := new(big.Int).Sub(c.N(), big.NewInt(1))
			assert.True(t, c.ScalarBaseMult(nMinusOne).Equal(c.Generator().Negate()))
		})
	}
	assert.True(t, toyCurve.ScalarBaseMult(toyCurve.N()).IsInfinity())
}

func TestNegation(t *testing.T) {
	g := P256.Generator()
	neg := g.Negate()
	assert.Equal(t, g.X(), neg.X())
	assert.Equal(t, new(big.Int).Sub(P256.P(), g.Y()), neg.Y())
	assert.True(t, neg.IsOnCurve())
	assert.True(t, neg.Negate().Equal(g))

	for _, p := range allToyPoints() {
		assert.True(t, p.Negate().Negate().Equal(p), "P = %s", p)
	}

	assert.True(t, Infinity().Negate().IsInfinity())
	assert.Same(t, toyCurve, toyCurve.Infinity().Negate().Curve())
}

func TestPointAccessors(t *testing.T) {
	g := Secp256k1.Generator()
	assert.Equal(t, Secp256k1.Gx(), g.X())
	assert.Equal(t, Secp256k1.Gy(), g.Y())
	assert.Equal(t, Secp256k1.P(), g.P())
	assert.Same(t, Secp256k1, g.Curve())
	assert.False(t, g.IsInfinity())

	// accessors hand out copies
	g.X().SetInt64(1)
	g.P().SetInt64(1)
	assert.Equal(t, Secp256k1.Gx(), g.X())
	assert.Equal(t, Secp256k1.P(), g.P())

	o := Infinity()
	assert.True(t, o.IsInfinity())
	assert.Equal(t, 0, o.X().Sign())
	assert.Equal(t, 0, o.Y().Sign())
	assert.Nil(t, o.P())
	assert.Nil(t, o.Curve())
	assert.Equal(t, P256.P(), P256.Infinity().P())

	var zero Point
	assert.True(t, zero.IsInfinity())
	assert.True(t, zero.IsOnCurve())
}

func TestNewPointReducesCoordinates(t *testing.T) {
	p := toyCurve.NewPoint(big.NewInt(5+17), big.NewInt(1-17))
	assert.True(t, p.Equal(toyCurve.Generator()))
	assert.Equal(t, int64(5), p.X().Int64())
	assert.Equal(t, int64(1), p.Y().Int64())
}

func TestSetCoordinates(t *testing.T) {
	p := toyCurve.Generator()
	q := p.Clone()

	q.SetX(big.NewInt(6)).SetY(big.NewInt(3 + 17))
	assert.True(t, q.Equal(toyPoint(2)))
	assert.True(t, p.Equal(toyPoint(1)), "clone must not share coordinates")

	// setters do not validate
	q.SetY(big.NewInt(4))
	assert.False(t, q.IsOnCurve())

	requirePanicsWithError(t, ErrInfinityCoordinates, func() { Infinity().SetX(big.NewInt(1)) })
	requirePanicsWithError(t, ErrInfinityCoordinates, func() { toyCurve.Infinity().SetY(big.NewInt(1)) })
}

func TestEqualityIgnoresCurveBinding(t *testing.T) {
	assert.True(t, Infinity().Equal(P256.Infinity()))
	assert.True(t, P256.Infinity().Equal(Secp256k1.Infinity()))

	// same coordinates on different fields compare by value
	a := toyCurve.NewPoint(big.NewInt(1), big.NewInt(5))
	b := torsionCurve.NewPoint(big.NewInt(1), big.NewInt(5))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(torsionCurve.Generator().Negate()))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "Point at Infinity", Infinity().String())
	assert.Equal(t, "Point at Infinity", P256.Infinity().String())
	assert.Equal(t, "x = 6, y = 3", toyPoint(2).String())
	assert.Equal(t,
		"x = 6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296, "+
			"y = 4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
		P256.Generator().String(),
	)
	assert.Equal(t, "x = 5, y = 1", fmt.Sprint(toyCurve.Generator()))
}

func TestCloneInfinity(t *testing.T) {
	var nilPoint *Point
	require.True(t, nilPoint.Clone().IsInfinity())
	assert.Same(t, P521, P521.Infinity().Clone().Curve())
}
