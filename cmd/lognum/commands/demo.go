package commands

import (
	"bufio"
	"fmt"
	"time"

	"github.com/db47h/lognum"
	"github.com/spf13/cobra"
)

type demoResult struct {
	Iterations int               `json:"iterations"`
	ElapsedUS  int64             `json:"elapsed_us"`
	Values     []lognum.LogValue `json:"values"`
}

func newDemoCmd(e *env) *cobra.Command {
	var (
		maxIter int
		pause   bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print 2^fib(n) until it overflows to infinity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(e, cmd, maxIter, pause)
		},
	}
	cmd.Flags().IntVar(&maxIter, "max-iterations", 0, "stop after this many iterations (0 for no limit)")
	cmd.Flags().BoolVar(&pause, "pause", false, "wait for Enter before starting and before exiting")
	return cmd
}

func runDemo(e *env, cmd *cobra.Command, maxIter int, pause bool) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())
	ctx := e.newContext()

	if !e.json {
		fmt.Fprintln(out, "lognum demo")
		fmt.Fprintln(out, "===========")
		fmt.Fprintln(out, "A LogValue can hold numbers up to e1.79e308, that is 10 to the power of the largest float64.")
		fmt.Fprintln(out, "Starting from 1, the demonstration prints 2^fib(n) until it overflows to infinity.")
		fmt.Fprintln(out)
	}
	if pause {
		fmt.Fprintln(out, "Press Enter to start the demonstration.")
		_, _ = in.ReadString('\n')
	}

	var (
		cur, prev = lognum.One, lognum.One
		res       demoResult
		start     = time.Now()
	)
	for maxIter <= 0 || res.Iterations < maxIter {
		cur, prev = ctx.Add(cur, prev), cur
		res.Iterations++

		r := ctx.Pow(lognum.Two, cur)
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("iteration %d: %w", res.Iterations, err)
		}
		if e.json {
			res.Values = append(res.Values, r)
		} else {
			fmt.Fprintf(out, "Iteration %d: %s\n", res.Iterations, ctx.Text(r))
		}
		e.logger.Trace("iteration", "n", res.Iterations, "fib", cur, "value", r)

		if r.IsInf() {
			if !e.json {
				fmt.Fprintf(out, "\nThe number has reached infinity after %d iterations.\n", res.Iterations)
			}
			break
		}
	}
	elapsed := time.Since(start)
	res.ElapsedUS = elapsed.Microseconds()
	e.logger.Info("demo finished", "iterations", res.Iterations, "elapsed", elapsed)

	if e.json {
		return e.writeJSON(out, &res)
	}
	fmt.Fprintf(out, "It took %d microseconds.\n", res.ElapsedUS)
	if pause {
		fmt.Fprintln(out, "Press Enter to exit.")
		_, _ = in.ReadString('\n')
	}
	return nil
}
