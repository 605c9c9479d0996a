// Package engine evaluates point operations on a single configured curve, with logging, metrics and a self-check
// that validates the group law and compares results against an independent implementation.
package engine

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartcontractkit/weierstrass/curve"
	"github.com/smartcontractkit/weierstrass/internal/crypto/reference"
	"github.com/smartcontractkit/weierstrass/internal/logger"
)

var ErrSelfCheckFailed = errors.New("self-check failed")

type Engine struct {
	curve   *curve.Params
	backend reference.Backend // nil for curves without a reference implementation
	logger  *logger.Entry
	metrics *metrics
}

// New returns an engine for c. Metrics are registered with reg unless it is nil.
func New(c *curve.Params, lggr *logger.Logger, reg prometheus.Registerer) (*Engine, error) {
	if c == nil {
		return nil, errors.New("engine: curve must not be nil")
	}
	if lggr == nil {
		lggr = logger.NewNop()
	}
	m, err := newMetrics(reg, c.Name())
	if err != nil {
		return nil, fmt.Errorf("engine: registering metrics: %w", err)
	}

	e := &Engine{curve: c, logger: lggr.With(logger.Fields{"curve": c.Name()}), metrics: m}
	backend, err := reference.ForCurve(c)
	switch {
	case err == nil:
		e.backend = backend
	case errors.Is(err, reference.ErrNoBackend):
		e.logger.Debug("no reference backend, cross-checks disabled", nil)
	default:
		return nil, err
	}
	return e, nil
}

func (e *Engine) Curve() *curve.Params {
	return e.curve
}

func (e *Engine) Generator() *curve.Point {
	return e.curve.Generator()
}

// Point validates (x, y) as a finite point of the engine's curve.
func (e *Engine) Point(x, y *big.Int) (*curve.Point, error) {
	p, err := e.curve.NewPointChecked(x, y)
	e.observe("point", time.Now(), err)
	return p, err
}

// Multiply returns k·p. A nil p stands for the generator.
func (e *Engine) Multiply(p *curve.Point, k *big.Int) (*curve.Point, error) {
	start := time.Now()
	if k.Sign() < 0 {
		err := fmt.Errorf("%w: %s", curve.ErrNegativeScalar, k)
		e.observe("multiply", start, err)
		return nil, err
	}
	if p == nil {
		p = e.curve.Generator()
	} else if err := e.require(p); err != nil {
		e.observe("multiply", start, err)
		return nil, err
	}

	r := p.ScalarMult(k)
	e.observe("multiply", start, nil)
	e.logger.Debug("multiply", logger.Fields{"bits": k.BitLen(), "infinity": r.IsInfinity()})
	return r, nil
}

func (e *Engine) Add(p, q *curve.Point) (*curve.Point, error) {
	start := time.Now()
	if err := e.require(p, q); err != nil {
		e.observe("add", start, err)
		return nil, err
	}
	r := p.Add(q)
	e.observe("add", start, nil)
	return r, nil
}

func (e *Engine) Negate(p *curve.Point) (*curve.Point, error) {
	start := time.Now()
	if err := e.require(p); err != nil {
		e.observe("negate", start, err)
		return nil, err
	}
	r := p.Negate()
	e.observe("negate", start, nil)
	return r, nil
}

func (e *Engine) Equal(p, q *curve.Point) bool {
	start := time.Now()
	r := p.Equal(q)
	e.observe("equal", start, nil)
	return r
}

// require rejects points bound to another curve, which would otherwise make the arithmetic panic.
func (e *Engine) require(points ...*curve.Point) error {
	for _, p := range points {
		if p == nil {
			return errors.New("nil point")
		}
		if !p.IsInfinity() && !p.Curve().Equal(e.curve) {
			return fmt.Errorf("%w: expected %s, got %s", curve.ErrCurveMismatch, e.curve.Name(), p.Curve().Name())
		}
	}
	return nil
}

func (e *Engine) observe(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	e.metrics.operations.WithLabelValues(operation, outcome).Inc()
	e.metrics.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
