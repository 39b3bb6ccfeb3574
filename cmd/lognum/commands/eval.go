package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/db47h/lognum"
	"github.com/db47h/lognum/context"
	"github.com/db47h/lognum/math"
	"github.com/spf13/cobra"
)

type (
	unaryFunc  func(c *context.Context, x lognum.LogValue) lognum.LogValue
	binaryFunc func(c *context.Context, x, y lognum.LogValue) lognum.LogValue
)

var unaryOps = map[string]unaryFunc{
	"neg":   (*context.Context).Neg,
	"abs":   (*context.Context).Abs,
	"sqrt":  (*context.Context).Sqrt,
	"ln":    (*context.Context).Ln,
	"log10": (*context.Context).Log10,
	"cbrt":  lift(lognum.LogValue.Cbrt),
	"log2":  lift(lognum.LogValue.Log2),
	"exp":   lift(lognum.LogValue.Exp),
	"exp2":  lift(lognum.LogValue.Exp2),
	"floor": lift(lognum.LogValue.Floor),
	"ceil":  lift(lognum.LogValue.Ceil),
	"round": lift(lognum.LogValue.Round),
	"trunc": lift(lognum.LogValue.Trunc),
	"fract": lift(lognum.LogValue.Fract),
	"recip": lift(lognum.LogValue.Recip),
	"gamma": lift(math.Gamma),
	"sin":   liftf(lognum.LogValue.Sin),
	"cos":   liftf(lognum.LogValue.Cos),
	"tan":   liftf(lognum.LogValue.Tan),
}

var binaryOps = map[string]binaryFunc{
	"+":     (*context.Context).Add,
	"-":     (*context.Context).Sub,
	"*":     (*context.Context).Mul,
	"x":     (*context.Context).Mul,
	"/":     (*context.Context).Quo,
	"%":     (*context.Context).Rem,
	"^":     (*context.Context).Pow,
	"pow":   (*context.Context).Pow,
	"min":   lift2(lognum.LogValue.Min),
	"max":   lift2(lognum.LogValue.Max),
	"hypot": lift2(lognum.LogValue.Hypot),
	"log":   lift2(math.LogN),
}

func lift(f func(lognum.LogValue) lognum.LogValue) unaryFunc {
	return func(_ *context.Context, x lognum.LogValue) lognum.LogValue { return f(x) }
}

func liftf(f func(lognum.LogValue) float64) unaryFunc {
	return func(_ *context.Context, x lognum.LogValue) lognum.LogValue { return lognum.NewFloat64(f(x)) }
}

func lift2(f func(x, y lognum.LogValue) lognum.LogValue) binaryFunc {
	return func(_ *context.Context, x, y lognum.LogValue) lognum.LogValue { return f(x, y) }
}

func opNames[T any](m map[string]T) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

type evalResult struct {
	Expr   string          `json:"expr"`
	Result lognum.LogValue `json:"result"`
	Text   string          `json:"text"`
	Cmp    *int            `json:"cmp,omitempty"`
}

func newEvalCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "eval VALUE | UNARY VALUE | VALUE BINARY VALUE | VALUE cmp VALUE",
		Short: "Evaluate a unary or binary expression",
		Long: "Evaluate a unary or binary expression.\n\n" +
			"Unary operators: " + opNames(unaryOps) + "\n" +
			"Binary operators: " + opNames(binaryOps) + " cmp\n\n" +
			"Values are accepted in decimal (1234.5), scientific (1.5e300, 1e1e200)\n" +
			"or logarithmic (e300.176, -e1e200) notation.",
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := evaluate(e, args)
			if err != nil {
				return err
			}
			e.logger.Debug("evaluated", "expr", res.Expr, "result", res.Result)
			if e.json {
				return e.writeJSON(cmd.OutOrStdout(), res)
			}
			if res.Cmp != nil {
				fmt.Fprintln(cmd.OutOrStdout(), *res.Cmp)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
}

func evaluate(e *env, args []string) (*evalResult, error) {
	ctx := e.newContext()
	res := &evalResult{Expr: strings.Join(args, " ")}

	switch len(args) {
	case 1:
		x, err := ctx.Parse(args[0])
		if err != nil {
			return nil, err
		}
		res.Result = x
	case 2:
		f, ok := unaryOps[args[0]]
		if !ok {
			return nil, fmt.Errorf("unknown unary operator %q", args[0])
		}
		x, err := ctx.Parse(args[1])
		if err != nil {
			return nil, err
		}
		res.Result = f(ctx, x)
	case 3:
		x, err := ctx.Parse(args[0])
		if err != nil {
			return nil, err
		}
		y, err := ctx.Parse(args[2])
		if err != nil {
			return nil, err
		}
		if args[1] == "cmp" {
			r, ok := x.Cmp(y)
			if !ok {
				return nil, errors.New("values are not comparable")
			}
			res.Cmp = &r
			res.Result = lognum.NewFloat64(float64(r))
			break
		}
		f, ok := binaryOps[args[1]]
		if !ok {
			return nil, fmt.Errorf("unknown binary operator %q", args[1])
		}
		res.Result = f(ctx, x, y)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", res.Expr, err)
	}
	res.Text = ctx.Text(res.Result)
	return res, nil
}
