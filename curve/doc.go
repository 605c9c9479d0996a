// Package curve implements affine point arithmetic on short-Weierstrass curves y² = x³ + ax + b over a prime field.
//
// A curve is described by an immutable *Params value, either taken from the catalog (P256, Secp256k1, P521) or built
// with NewParams. Points carry a handle to their Params and are never modified by arithmetic; every operation returns
// a new *Point:
//
//	g := curve.P256.Generator()
//	twoG := g.Add(g)
//	same := g.ScalarMult(big.NewInt(2)).Equal(twoG) // true
//	zero := g.Add(g.Negate()).IsInfinity()          // true
//
// The zero value of Point is the point at infinity, the identity of the group.
//
// The implementation is not constant time; it must not be used with secret scalars where timing leaks matter.
package curve
