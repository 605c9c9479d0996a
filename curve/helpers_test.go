package curve

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// toyCurve is y² = x³ + 2x + 2 over F_17, generated by (5, 1) of prime order 19.
var toyCurve = mustParams("toy17", 2, 2, 17, 5, 1, 19)

// torsionCurve is y² = x³ + x over F_23. G = (1, 5) has order 4, and 2G = (0, 0) has y = 0.
var torsionCurve = mustParams("torsion23", 1, 0, 23, 1, 5, 4)

// toyMultiples[k] = k·G on toyCurve, nil standing for O.
var toyMultiples = [][2]int64{
	{}, {5, 1}, {6, 3}, {10, 6}, {3, 1}, {9, 16}, {16, 13}, {0, 6}, {13, 7}, {7, 6},
	{7, 11}, {13, 10}, {0, 11}, {16, 4}, {9, 1}, {3, 16}, {10, 11}, {6, 14}, {5, 16},
}

func mustParams(name string, a, b, p, gx, gy, n int64) *Params {
	c, err := NewParams(name, big.NewInt(a), big.NewInt(b), big.NewInt(p), big.NewInt(gx), big.NewInt(gy), big.NewInt(n))
	if err != nil {
		panic(err)
	}
	return c
}

func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "invalid hex literal %q", s)
	return v
}

func toyPoint(k int) *Point {
	if k%19 == 0 {
		return toyCurve.Infinity()
	}
	xy := toyMultiples[k%19]
	return toyCurve.NewPoint(big.NewInt(xy[0]), big.NewInt(xy[1]))
}

// allToyPoints returns every point of the toy group, O first.
func allToyPoints() []*Point {
	points := make([]*Point, 19)
	for k := range points {
		points[k] = toyPoint(k)
	}
	return points
}

func requirePanicsWithError(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v is not %v", err, target)
	}()
	f()
}
