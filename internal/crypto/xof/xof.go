package xof

import (
	"crypto/sha3"
	"encoding/binary"
	"errors"
	"io"
	"math/big"

	"github.com/smartcontractkit/weierstrass/internal/math"
)

// Deterministic byte stream based on the SHAKE256 XOF, with domain separation and unique encoding of parameters.
// Initialization with a domain separation tag (DST) is enforced. Used to derive reproducible sample scalars, e.g. for
// cross-checking point arithmetic; it is not a key derivation function.

var _ io.Reader = &xof{}

type xof struct {
	dst        string
	shake      *sha3.SHAKE
	readCalled bool
}

type argType byte

const (
	_ argType = iota
	argTypeInt
	argTypeString
)

// New initializes a new XOF instance, applying the given domain separation tag.
// Parameters are absorbed with WriteInt(...) and WriteString(...), which enforce a unique encoding.
func New(dst string) *xof {
	h := &xof{dst: dst, shake: sha3.NewSHAKE256()}
	h.WriteString(h.dst)
	return h
}

func (h *xof) writeArgType(t argType) {
	if h.readCalled {
		panic("cannot write to the XOF after Read")
	}
	_, _ = h.shake.Write([]byte{byte(t)})
}

// Writes an integer to the XOF's internal state.
func (h *xof) WriteInt(value int) {
	h.writeArgType(argTypeInt)
	_ = binary.Write(h.shake, binary.BigEndian, uint64(value))
}

// Writes a string to the XOF's internal state.
func (h *xof) WriteString(str string) {
	h.writeArgType(argTypeString)
	_ = binary.Write(h.shake, binary.BigEndian, uint64(len(str)))
	_, _ = h.shake.Write([]byte(str))
}

// Read squeezes output from the XOF. Any write after the first call to Read panics.
// The error is always nil; it is required by io.Reader.
func (h *xof) Read(out []byte) (int, error) {
	h.readCalled = true
	return h.shake.Read(out)
}

// Scalars squeezes count values, each statistically close to uniform in [1, order). Zero is skipped so that every
// returned scalar yields a finite multiple of a generator of that order.
func (h *xof) Scalars(order *math.Modulus, count int) ([]*big.Int, error) {
	if count < 0 {
		return nil, errors.New("negative scalar count")
	}
	scalars := make([]*big.Int, 0, count)
	for len(scalars) < count {
		s, err := math.NewElement(order).SetRandom(h)
		if err != nil {
			return nil, err
		}
		if s.IsZero() {
			continue
		}
		scalars = append(scalars, s.BigInt())
	}
	return scalars, nil
}

// Reset restores the state right after New, re-applying the domain separation tag.
func (h *xof) Reset() {
	h.shake.Reset()
	h.readCalled = false
	h.WriteString(h.dst)
}
