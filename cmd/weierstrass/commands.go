package main

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/smartcontractkit/weierstrass/curve"
	"github.com/smartcontractkit/weierstrass/internal/config"
	"github.com/spf13/cobra"
)

const infinityLiteral = "infinity"

const pointHelp = `A point is written as X,Y with 0x-prefixed hexadecimal or decimal coordinates, or as "infinity".`

func (a *app) curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the supported curves",
		Args:  cobra.NoArgs,
		// listing curves must work whatever curve is configured
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		PersistentPostRun: func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range curve.SupportedCurves {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tp = %s\tn = %s\n",
					c.Name(), hexutil.EncodeBig(c.P()), hexutil.EncodeBig(c.N()))
			}
			return nil
		},
	}
}

func (a *app) generatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generator",
		Short: "Print the base point G of the configured curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatPoint(a.engine.Generator()))
			return nil
		},
	}
}

func (a *app) multiplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multiply K [POINT]",
		Short: "Compute K·POINT by double-and-add; POINT defaults to G",
		Long:  "Compute K·POINT by double-and-add; POINT defaults to G. K must not be negative.\n" + pointHelp,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseInt(args[0])
			if err != nil {
				return errors.Wrap(err, "scalar")
			}
			var p *curve.Point
			if len(args) == 2 {
				if p, err = a.parsePoint(args[1]); err != nil {
					return err
				}
			}
			r, err := a.engine.Multiply(p, k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPoint(r))
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add P Q",
		Short: "Compute P + Q",
		Long:  "Compute P + Q.\n" + pointHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.parsePoints(args)
			if err != nil {
				return err
			}
			r, err := a.engine.Add(points[0], points[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPoint(r))
			return nil
		},
	}
}

func (a *app) negateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "negate P",
		Short: "Compute -P",
		Long:  "Compute -P.\n" + pointHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parsePoint(args[0])
			if err != nil {
				return err
			}
			r, err := a.engine.Negate(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPoint(r))
			return nil
		},
	}
}

func (a *app) equalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal P Q",
		Short: "Report whether P and Q are the same point",
		Long:  "Report whether P and Q are the same point.\n" + pointHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.parsePoints(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.Equal(points[0], points[1]))
			return nil
		},
	}
}

func (a *app) selfCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify the group law on sampled points and compare against a reference implementation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			report, err := a.engine.SelfCheck(ctx, a.config.SelfCheck.Samples, a.config.SelfCheck.Seed)
			if report != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples, %d checks, %d failures\n",
					report.Curve, report.Samples, report.Checks, len(report.Failures))
				for _, failure := range report.Failures {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", failure)
				}
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.Int("samples", 16, "number of sampled point triples")
	flags.String("seed", "weierstrass", "seed from which sample scalars are derived")
	_ = a.viper.BindPFlag(config.KeySamples, flags.Lookup("samples"))
	_ = a.viper.BindPFlag(config.KeySeed, flags.Lookup("seed"))
	return cmd
}

// parseInt accepts 0x-prefixed hexadecimal of any length or signed decimal. hexutil.DecodeBig is limited to 256 bits,
// which is too small for P521, so hex input goes through hexutil.Decode with an even number of digits.
func parseInt(s string) (*big.Int, error) {
	if digits, ok := strings.CutPrefix(s, "0x"); ok {
		if len(digits)%2 == 1 {
			digits = "0" + digits
		}
		b, err := hexutil.Decode("0x" + digits)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid hex number %q", s)
		}
		return new(big.Int).SetBytes(b), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("invalid number %q", s)
	}
	return v, nil
}

func (a *app) parsePoint(s string) (*curve.Point, error) {
	if strings.EqualFold(s, infinityLiteral) {
		return a.engine.Curve().Infinity(), nil
	}
	coordinates := strings.Split(s, ",")
	if len(coordinates) != 2 {
		return nil, errors.Errorf("invalid point %q, expected X,Y or %s", s, infinityLiteral)
	}
	x, err := parseInt(strings.TrimSpace(coordinates[0]))
	if err != nil {
		return nil, errors.Wrap(err, "x coordinate")
	}
	y, err := parseInt(strings.TrimSpace(coordinates[1]))
	if err != nil {
		return nil, errors.Wrap(err, "y coordinate")
	}
	return a.engine.Point(x, y)
}

func (a *app) parsePoints(args []string) ([]*curve.Point, error) {
	points := make([]*curve.Point, len(args))
	for i, arg := range args {
		p, err := a.parsePoint(arg)
		if err != nil {
			return nil, errors.WithMessagef(err, "point %d", i+1)
		}
		points[i] = p
	}
	return points, nil
}

// formatPoint renders p in the form accepted by parsePoint.
func formatPoint(p *curve.Point) string {
	if p.IsInfinity() {
		return infinityLiteral
	}
	return fmt.Sprintf("%s,%s", hexutil.EncodeBig(p.X()), hexutil.EncodeBig(p.Y()))
}
