// Implementation of modular arithmetic for curve coordinates, based on the bigmod package from Go's internal stdlib,
// exported via filippo.io/bigmod. Conversions from and to math/big are non-constant time.

package math

import (
	"errors"
	"io"
	"math/big"

	"filippo.io/bigmod"
)

// Element represents a value in the ring of integers modulo some modulus, i.e., in [0, modulus).
// Elements of different moduli are not compatible, and cannot be used together in arithmetic operations.
// Executing any arithmetic operation on elements with different moduli will result in a panic.
type Element = *element
type Elements []Element

type Nat = *bigmod.Nat

type element struct {
	value   Nat
	modulus *Modulus
}

// NewElement creates a new element with the given modulus.
// The value is initialized to zero.
func NewElement(m *Modulus) Element {
	return &element{bigmod.NewNat().ExpandFor(&m.value), m}
}

// Non-constant time function, to be used for testing purposes and initialization only.
// Panics on invalid inputs; value must represent a number in the given base. The value is reduced modulo m.
func NewElementFromString(value string, base int, m *Modulus) Element {
	n, ok := new(big.Int).SetString(value, base)
	if !ok {
		panic("invalid element value: " + value)
	}
	return NewElement(m).SetBigInt(n)
}

func (x *element) IsNil() bool {
	return x == nil
}

// x.Set(y) sets x = y, and returns x.
// This creates a copy of the value of y, so that x and y can be modified independently.
func (x *element) Set(y Element) Element {
	requireEqualModulus(x, y)
	copy(x.value.Bits(), y.value.Bits())
	return x
}

// x.SetUint(y) sets x = y, returns x.
// y must be smaller than the modulus of x.
func (x *element) SetUint(y uint) Element {
	x.value.SetUint(y).ExpandFor(&x.modulus.value)
	return x
}

// x.SetBytes(y) sets x to the big-endian value y, and returns x.
// If y is not smaller than x.modulus, SetBytes returns an error and the receiver is unchanged.
func (x *element) SetBytes(y []byte) (Element, error) {
	if _, err := x.value.SetBytes(y, &x.modulus.value); err != nil {
		return nil, err
	}
	return x, nil
}

// x.SetBigInt(y) sets x = y mod modulus, and returns x. Negative values are mapped to their non-negative residue.
// Non-constant time.
func (x *element) SetBigInt(y *big.Int) Element {
	r := new(big.Int).Mod(y, x.modulus.n)
	if _, err := x.value.SetBytes(r.Bytes(), &x.modulus.value); err != nil {
		// r < modulus holds by construction.
		panic("reduced value does not fit the modulus: " + err.Error())
	}
	return x
}

// x.SetRandom(rand) sets x to a value statistically close to uniform in {0, 1, ..., modulus - 1} and returns x.
// A constant number of bytes is read from rand, so the same value is derived from the same stream.
func (x *element) SetRandom(rand io.Reader) (Element, error) {
	rngBytes := make([]byte, x.modulus.Size()+16)
	if _, err := io.ReadFull(rand, rngBytes); err != nil {
		return nil, err
	}

	largeModBytes := make([]byte, len(rngBytes)+1)
	largeModBytes[0] = 1
	largeMod, err := bigmod.NewModulus(largeModBytes)
	if err != nil {
		return nil, err
	}

	t := bigmod.NewNat()
	if _, err := t.SetBytes(rngBytes, largeMod); err != nil {
		return nil, err
	}
	x.value.Mod(t, &x.modulus.value)
	return x, nil
}

// x.Add(y) computes x = x + y (mod modulus), and returns x.
func (x *element) Add(y Element) Element {
	requireEqualModulus(x, y)
	x.value.Add(y.value, &x.modulus.value)
	return x
}

// x.Subtract(y) computes x = x - y (mod modulus), and returns x.
func (x *element) Subtract(y Element) Element {
	requireEqualModulus(x, y)
	x.value.Sub(y.value, &x.modulus.value)
	return x
}

// x.Multiply(y) computes x = x * y (mod modulus), and returns x.
func (x *element) Multiply(y Element) Element {
	requireEqualModulus(x, y)
	x.value.Mul(y.value, &x.modulus.value)
	return x
}

// x.Square() computes x = x² (mod modulus), and returns x.
func (x *element) Square() Element {
	return x.Multiply(x.Clone())
}

// x.Negate() computes x = -x (mod modulus), i.e. modulus - x for non-zero x, and returns x.
func (x *element) Negate() Element {
	negated := bigmod.NewNat().ExpandFor(&x.modulus.value)
	negated.Sub(x.value, &x.modulus.value)
	x.value = negated
	return x
}

// x.InverseVarTime() computes x = x⁻¹ (mod modulus) and returns (x, true) if the inverse exists, or (nil, false)
// otherwise. In the latter case x is left unchanged.
func (x *element) InverseVarTime() (Element, bool) {
	inverse := bigmod.NewNat().ExpandFor(&x.modulus.value)
	if _, ok := inverse.InverseVarTime(x.value, &x.modulus.value); !ok {
		return nil, false
	}
	x.value = inverse
	return x, true
}

// x.Exp(e) computes x = x^e (mod modulus), and returns x.
// The exponent e is interpreted as a big-endian integer.
func (x *element) Exp(e []byte) Element {
	x.value.Exp(x.value, e, &x.modulus.value)
	return x
}

func (x *element) IsZero() bool {
	return x.value.IsZero() == 1
}

func (x *element) IsOne() bool {
	return x.value.IsOne() == 1
}

// Returns an independent copy of the element.
func (x *element) Clone() Element {
	return NewElement(x.modulus).Set(x)
}

// Returns the internal reference to the modulus underlying the element.
// Must not be modified by the caller.
func (x *element) Modulus() *Modulus {
	return x.modulus
}

// x.Bytes() returns the big-endian encoding of x, padded to the size of the modulus.
func (x *element) Bytes() []byte {
	return x.value.Bytes(&x.modulus.value)
}

// x.BigInt() returns the value of x as a new big.Int. Non-constant time.
func (x *element) BigInt() *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

// x.Text(base) renders x in the given base, without prefix and without leading zeros.
func (x *element) Text(base int) string {
	return x.BigInt().Text(base)
}

// x.Equal(y) tests two elements for equality. Equality is defined as having the same value and the same modulus.
func (x *element) Equal(y Element) bool {
	return x == y || (x.modulus.Equal(y.modulus) && x.value.Equal(y.value) == 1)
}

// Non-constant time function, to be used for testing and debugging purposes.
func (x *element) String() string {
	return x.BigInt().String()
}

func requireEqualModulus(x Element, y Element) {
	if !x.modulus.Equal(y.modulus) {
		panic(ErrModulusMismatch)
	}
}

// ErrModulusMismatch is the panic value of arithmetic on elements with different moduli.
var ErrModulusMismatch = errors.New("elements have different moduli")

// w.Sum() returns the sum of all elements in w. If w is empty, Sum returns nil.
func (w Elements) Sum() Element {
	var result Element
	for _, wᵢ := range w {
		if result == nil {
			result = wᵢ.Clone()
		} else {
			result.Add(wᵢ)
		}
	}
	return result
}
