package context_test

import (
	"errors"
	"fmt"

	"github.com/db47h/lognum"
	"github.com/db47h/lognum/context"
)

var (
	_four = lognum.NewFloat64(-4)
	two   = lognum.Two
)

// solve solves the quadratic equation ax² + bx + c = 0. It can fail with
// various combinations of inputs, for example a = 0, b = 2, c = -3 will result
// in dividing zero by zero when computing x0. So we need to check errors.
func solve(ctx *context.Context, a, b, c lognum.LogValue) (x0, x1 lognum.LogValue, err error) {
	// compute discriminant
	d := ctx.Mul(a, _four)        // d = a × -4
	d = ctx.Mul(d, c)             //     × c
	d = ctx.Add(ctx.Mul(b, b), d) //     + b × b
	if err = ctx.Err(); err != nil {
		return lognum.NaN, lognum.NaN, fmt.Errorf("error computing discriminant: %w", err)
	}
	if d.Sign() < 0 {
		return lognum.NaN, lognum.NaN, errors.New("no real roots")
	}
	// d = √d
	d = ctx.Sqrt(d)
	twoA := ctx.Mul(a, two)
	negB := ctx.Neg(b)

	x0 = ctx.Quo(ctx.Add(negB, d), twoA)
	x1 = ctx.Quo(ctx.Sub(negB, d), twoA)

	if err = ctx.Err(); err != nil {
		return lognum.NaN, lognum.NaN, fmt.Errorf("error computing roots: %w", err)
	}
	return
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.New(2, context.Fixed)
	a, b, c := ctx.NewInt64(1), ctx.NewInt64(2), ctx.NewInt64(-3)
	x0, x1, err := solve(ctx, a, b, c)
	if err != nil {
		fmt.Printf("failed to solve %g×x²%+gx%+g: %v\n", a, b, c, err)
		return
	}
	fmt.Printf("roots of %g×x²%+gx%+g: %s, %s\n", a, b, c, ctx.Text(x0), ctx.Text(x1))

	a = lognum.Zero
	x0, x1, err = solve(ctx, a, b, c)
	if err != nil {
		// obviously, our solve() algorithm cannot handle a == 0
		fmt.Printf("failed to solve %g×x²%+gx%+g: %v\n", a, b, c, err)
		return
	}
	fmt.Printf("roots of %g×x²%+gx%+g: %s, %s\n", a, b, c, ctx.Text(x0), ctx.Text(x1))
	//
	// Output:
	// roots of 1.00×x²+2.00x-3.00: 1.00, -3.00
	// failed to solve 0×x²+2.00x-3.00: error computing roots: division of zero by zero or infinity by infinity
}
