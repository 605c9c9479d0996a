package math

import "errors"

// Polynomial holds the coefficients w[0], w[1], ..., w[d] of ω(x) = w[0] + w[1]·x + ... + w[d]·x^d, all sharing one
// modulus.
type Polynomial = Elements

// NewPolynomial returns the polynomial with the given coefficients (lowest degree first), reduced modulo m.
func NewPolynomial(m *Modulus, coefficients ...uint) (Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, errors.New("polynomial requires at least one coefficient")
	}
	w := make(Polynomial, len(coefficients))
	for i, c := range coefficients {
		w[i] = NewElement(m).SetUint(c)
	}
	return w, nil
}

// Evaluate a polynomial ω(x) with coefficients w[0], w[1], ..., w[d] at the point x.
// ω(x) = w[0] + w[1] * x + w[2] * x^2 + ... + w[d] * x^d
func (w Polynomial) Eval(x Element) Element {
	sum := w[0].Clone()
	xPowI := x.Clone() // holds x^i for i = 1, 2, ..., d
	for i := 1; i < len(w); i++ {
		if !w[i].IsZero() {
			t := w[i].Clone().Multiply(xPowI) // t = w[i] * x^i
			sum.Add(t)                        // sum += t
		}
		if i != len(w)-1 {
			xPowI.Multiply(x) // x^(i+1) = x^i * x
		}
	}
	return sum
}

// Degree returns the index of the highest non-zero coefficient, or -1 for the zero polynomial.
func (w Polynomial) Degree() int {
	for i := len(w) - 1; i >= 0; i-- {
		if !w[i].IsZero() {
			return i
		}
	}
	return -1
}
