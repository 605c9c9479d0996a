package engine

import (
	"context"
	"fmt"
	"math/big"

	"github.com/smartcontractkit/weierstrass/curve"
	"github.com/smartcontractkit/weierstrass/internal/crypto/xof"
	"github.com/smartcontractkit/weierstrass/internal/logger"
)

const selfCheckDST = "weierstrass/selfcheck"

// Report summarizes a self-check run.
type Report struct {
	Curve    string
	Samples  int
	Checks   int
	Failures []string
}

func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

type checker struct {
	e      *Engine
	report *Report
}

func (c *checker) check(name string, ok bool) {
	c.report.Checks++
	if ok {
		return
	}
	c.report.Failures = append(c.report.Failures, name)
	c.e.metrics.failures.Inc()
	c.e.logger.Error("self-check property violated", logger.Fields{"property": name})
}

// SelfCheck verifies the group law on samples pseudo-random points, derived deterministically from seed, and compares
// scalar multiplication and addition against the reference backend where one exists. It returns ErrSelfCheckFailed
// if any property is violated. Cancelling ctx stops the run between samples.
func (e *Engine) SelfCheck(ctx context.Context, samples int, seed string) (*Report, error) {
	h := xof.New(selfCheckDST)
	h.WriteString(e.curve.Name())
	h.WriteString(seed)
	// three scalars per sample: P = aG, Q = bG, R = cG
	scalars, err := h.Scalars(e.curve.GroupOrder(), 3*samples)
	if err != nil {
		return nil, err
	}

	report := &Report{Curve: e.curve.Name(), Samples: samples}
	c := &checker{e, report}
	g, o := e.curve.Generator(), e.curve.Infinity()

	c.check("generator on curve", g.IsOnCurve())
	c.check("n·G = O", g.ScalarMult(e.curve.N()).IsInfinity())
	c.check("(n-1)·G = -G", g.ScalarMult(new(big.Int).Sub(e.curve.N(), big.NewInt(1))).Equal(g.Negate()))
	c.check("0·G = O", g.ScalarMult(big.NewInt(0)).IsInfinity())
	c.check("O + O = O", o.Add(o).IsInfinity())

	for i := 0; i < samples; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		a, b, s := scalars[3*i], scalars[3*i+1], scalars[3*i+2]
		p, q, r := g.ScalarMult(a), g.ScalarMult(b), g.ScalarMult(s)
		c.checkSample(i, a, b, p, q, r)
	}

	e.logger.Info("self-check finished", logger.Fields{
		"samples": samples, "checks": report.Checks, "failures": len(report.Failures),
	})
	if !report.OK() {
		return report, fmt.Errorf("%w: %d of %d checks on %s", ErrSelfCheckFailed, len(report.Failures), report.Checks,
			report.Curve)
	}
	return report, nil
}

func (c *checker) checkSample(i int, a, b *big.Int, p, q, r *curve.Point) {
	name := func(property string) string { return fmt.Sprintf("sample %d: %s", i, property) }
	o := c.e.curve.Infinity()
	sum := p.Add(q)

	c.check(name("P on curve"), p.IsOnCurve())
	c.check(name("P + Q on curve"), sum.IsOnCurve())
	c.check(name("P + O = P"), p.Add(o).Equal(p) && o.Add(p).Equal(p))
	c.check(name("P + (-P) = O"), p.Add(p.Negate()).IsInfinity())
	c.check(name("-(-P) = P"), p.Negate().Negate().Equal(p))
	c.check(name("P + Q = Q + P"), sum.Equal(q.Add(p)))
	c.check(name("(P + Q) + R = P + (Q + R)"), sum.Add(r).Equal(p.Add(q.Add(r))))
	c.check(name("P + P = 2P"), p.Add(p).Equal(p.ScalarMult(big.NewInt(2))))
	c.check(name("aG + bG = (a + b)G"), sum.Equal(c.e.curve.ScalarBaseMult(new(big.Int).Add(a, b))))
	c.check(name("b·(aG) = (ab)G"), p.ScalarMult(b).Equal(c.e.curve.ScalarBaseMult(new(big.Int).Mul(a, b))))

	backend := c.e.backend
	if backend == nil {
		return
	}
	ref, err := backend.ScalarBaseMult(a)
	c.check(name("aG matches "+backend.Name()), err == nil && ref.Equal(p))
	ref, err = backend.ScalarMult(q, a)
	c.check(name("a·Q matches "+backend.Name()), err == nil && ref.Equal(q.ScalarMult(a)))
	ref, err = backend.Add(p, q)
	c.check(name("P + Q matches "+backend.Name()), err == nil && ref.Equal(sum))
}
