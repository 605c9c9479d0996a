package math

import (
	"errors"
	"fmt"
	"math/big"

	"filippo.io/bigmod"
)

// Modulus is an immutable modulus for Element arithmetic, typically the prime order of a curve's base field.
// The big.Int form is kept alongside for the non-constant time conversions (parsing, rendering).
type Modulus struct {
	value bigmod.Modulus
	n     *big.Int
}

// Non-constant time function, to be used for testing purposes and initialization only.
// Panics on invalid input; value must represent a natural number.
func NewModulus(value string) *Modulus {
	return mustParseModulus(value, 10)
}

// Non-constant time function, to be used for initialization of compiled-in constants only.
// Panics on invalid input; value must be a hexadecimal natural number, without 0x prefix.
func NewModulusFromHex(value string) *Modulus {
	return mustParseModulus(value, 16)
}

// NewModulusFromBig returns a modulus for the given value. The value must be larger than one.
func NewModulusFromBig(value *big.Int) (*Modulus, error) {
	if value == nil || value.Cmp(big.NewInt(1)) <= 0 {
		return nil, errors.New("modulus must be larger than one")
	}
	m, err := bigmod.NewModulus(value.Bytes())
	if err != nil {
		return nil, err
	}
	return &Modulus{*m, new(big.Int).Set(value)}, nil
}

func mustParseModulus(value string, base int) *Modulus {
	n, ok := new(big.Int).SetString(value, base)
	if !ok {
		panic("invalid modulus value: " + value)
	}
	m, err := NewModulusFromBig(n)
	if err != nil {
		panic(fmt.Sprintf("invalid modulus value: %s, error: %v", value, err))
	}
	return m
}

func (m *Modulus) Equal(other *Modulus) bool {
	return m == other || m.n.Cmp(other.n) == 0
}

// Size returns the length of the modulus in bytes.
func (m *Modulus) Size() int {
	return (&m.value).Size()
}

func (m *Modulus) BitLen() int {
	return m.n.BitLen()
}

func (m *Modulus) Bytes() []byte {
	return (&m.value).Nat().Bytes(&m.value)
}

// BigInt returns a copy of the modulus.
func (m *Modulus) BigInt() *big.Int {
	return new(big.Int).Set(m.n)
}

func (m *Modulus) String() string {
	return m.n.String()
}
