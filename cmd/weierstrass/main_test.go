package main

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/smartcontractkit/weierstrass/curve"
	"github.com/smartcontractkit/weierstrass/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	p256G  = "0x6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296,0x4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"
	p256G2 = "0x7cf27b188d034f7e8a52380304b51ac3c08969e277f21b35a60b48fc47669978,0x7775510db8ed040293d9ac69f7430dbba7dade63ce982299e04b79d227873d1"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	rootCmd, _ := newRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return strings.TrimSpace(stdout.String()), stderr.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := run(t, args...)
	require.NoError(t, err, stderr)
	return out
}

func TestGenerator(t *testing.T) {
	assert.Equal(t, p256G, mustRun(t, "generator"))
	assert.Equal(t, formatPoint(curve.Secp256k1.Generator()), mustRun(t, "generator", "--curve", "secp256k1"))
	assert.Equal(t, formatPoint(curve.P521.Generator()), mustRun(t, "generator", "--curve", "p-521"))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, p256G2, mustRun(t, "multiply", "2"))
	assert.Equal(t, p256G2, mustRun(t, "multiply", "0x2", p256G))
	assert.Equal(t, infinityLiteral, mustRun(t, "multiply", "0"))
	assert.Equal(t, infinityLiteral, mustRun(t, "multiply", hexNumber(curve.P256.N())))
	assert.Equal(t, infinityLiteral, mustRun(t, "multiply", "5", "infinity"))

	_, _, err := run(t, "multiply", "--", "-1")
	assert.ErrorIs(t, err, curve.ErrNegativeScalar)

	_, _, err = run(t, "multiply", "seven")
	assert.Error(t, err)
}

func TestAddNegateEqual(t *testing.T) {
	assert.Equal(t, p256G2, mustRun(t, "add", p256G, p256G))
	assert.Equal(t, p256G, mustRun(t, "add", p256G, "INFINITY"))

	negG := mustRun(t, "negate", p256G)
	assert.Equal(t, formatPoint(curve.P256.Generator().Negate()), negG)
	assert.Equal(t, infinityLiteral, mustRun(t, "add", p256G, negG))
	assert.Equal(t, p256G, mustRun(t, "negate", negG))
	assert.Equal(t, infinityLiteral, mustRun(t, "negate", "infinity"))

	assert.Equal(t, "true", mustRun(t, "equal", p256G, p256G))
	assert.Equal(t, "false", mustRun(t, "equal", p256G, negG))
	assert.Equal(t, "false", mustRun(t, "equal", p256G, "infinity"))
	assert.Equal(t, "true", mustRun(t, "equal", "infinity", "infinity"))
}

func TestInvalidPoints(t *testing.T) {
	_, _, err := run(t, "negate", "0x1,0x2")
	assert.ErrorIs(t, err, curve.ErrNotOnCurve)

	// P256's generator is not on secp256k1
	_, _, err = run(t, "negate", p256G, "--curve", "secp256k1")
	assert.ErrorIs(t, err, curve.ErrNotOnCurve)

	_, _, err = run(t, "add", p256G, "0x1")
	assert.Error(t, err)

	_, _, err = run(t, "add", p256G)
	assert.Error(t, err)
}

func TestCurveSelection(t *testing.T) {
	_, stderr, err := run(t, "generator", "--curve", "P256,secp256k1")
	assert.ErrorIs(t, err, config.ErrMultipleCurvesSelected)
	assert.Contains(t, stderr, "CRITICAL")

	_, _, err = run(t, "generator", "--curve", "P384")
	assert.ErrorIs(t, err, config.ErrUnknownCurve)

	t.Setenv("WEIERSTRASS_CURVE", "")
	_, _, err = run(t, "generator")
	assert.ErrorIs(t, err, config.ErrNoCurveSelected)

	// flags take precedence over the environment
	assert.Equal(t, p256G, mustRun(t, "generator", "--curve", "prime256v1"))

	// listing curves does not need a valid selection
	out := mustRun(t, "curves")
	for _, name := range curve.CurveNames() {
		assert.Contains(t, out, name)
	}
}

func TestSelfCheck(t *testing.T) {
	out := mustRun(t, "selfcheck", "--curve", "secp256k1", "--samples", "1", "--seed", "cli")
	assert.Equal(t, "secp256k1: 1 samples, 18 checks, 0 failures", out)
}

func TestDebugLoggingReportsMetrics(t *testing.T) {
	_, stderr, err := run(t, "multiply", "3", "--log-level", "debug", "--log-json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"weierstrass_operations_total"`)
	assert.Contains(t, stderr, `"operation":"multiply"`)

	_, _, err = run(t, "generator", "--log-level", "loud")
	assert.Error(t, err)
}

func TestParseInt(t *testing.T) {
	p521 := curve.P521.P()
	testCases := []struct {
		input    string
		expected *big.Int
	}{
		{"0x1", big.NewInt(1)},
		{"0xabc", big.NewInt(0xabc)},
		{"0x00ff", big.NewInt(255)},
		{"255", big.NewInt(255)},
		{"-5", big.NewInt(-5)},
		{hexNumber(p521), p521},
		{p521.String(), p521},
	}
	for _, tc := range testCases {
		v, err := parseInt(tc.input)
		require.NoError(t, err, tc.input)
		assert.Zero(t, tc.expected.Cmp(v), tc.input)
	}

	for _, input := range []string{"0xzz", "abc", "", "1.5"} {
		_, err := parseInt(input)
		assert.Error(t, err, input)
	}
}

func hexNumber(v *big.Int) string {
	return "0x" + v.Text(16)
}
