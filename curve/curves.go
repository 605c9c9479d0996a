package curve

import (
	"fmt"
	"strings"
)

// SupportedCurves lists the catalog in a fixed order.
var SupportedCurves = []*Params{
	P256,
	Secp256k1,
	P521,
}

// See:
//   - https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-186.pdf
//   - https://www.secg.org/sec2-v2.pdf

var (
	// NIST 800-186, Section 3.2.1.3 (a.k.a. secp256r1, prime256v1)
	P256 = mustParamsFromHex("P256",
		"ffffffff00000001000000000000000000000000fffffffffffffffffffffffc",
		"5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
		"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		"4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
		"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
	)

	// SEC 2, Section 2.4.1, the Koblitz curve y² = x³ + 7
	Secp256k1 = mustParamsFromHex("secp256k1",
		"0",
		"7",
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
	)

	// NIST 800-186, Section 3.2.1.5 (a.k.a. secp521r1), p = 2^521 - 1
	P521 = mustParamsFromHex("P521",
		"01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffc",
		"0051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00",
		"01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"00c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66",
		"011839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650",
		"01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409",
	)
)

var curveAliases = map[string]*Params{
	"p256":       P256,
	"p-256":      P256,
	"secp256r1":  P256,
	"prime256v1": P256,
	"secp256k1":  Secp256k1,
	"k256":       Secp256k1,
	"p521":       P521,
	"p-521":      P521,
	"secp521r1":  P521,
}

// CurveByName looks up a catalog curve by its name or a common alias, ignoring case.
func CurveByName(name string) (*Params, error) {
	if c, ok := curveAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// CurveNames returns the canonical names of the catalog curves.
func CurveNames() []string {
	names := make([]string, len(SupportedCurves))
	for i, c := range SupportedCurves {
		names[i] = c.Name()
	}
	return names
}
