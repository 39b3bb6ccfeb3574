package commands

import (
	"fmt"
	"strconv"

	"github.com/db47h/lognum"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const maxTableRows = 1 << 20

type tableRow struct {
	N     int64           `json:"n"`
	Value lognum.LogValue `json:"value"`
	Text  string          `json:"text"`
}

func newTableCmd(e *env) *cobra.Command {
	var step int64
	cmd := &cobra.Command{
		Use:   "table BASE FROM TO",
		Short: "Print BASE^n for n in [FROM, TO]",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := lognum.Parse(args[0])
			if err != nil {
				return err
			}
			from, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("FROM: %w", err)
			}
			to, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("TO: %w", err)
			}
			rows, err := powTable(e, base, from, to, step)
			if err != nil {
				return err
			}

			if e.json {
				return e.writeJSON(cmd.OutOrStdout(), rows)
			}
			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", r.N, r.Text)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&step, "step", 1, "increment of n between rows")
	return cmd
}

// powTable computes base^n for every row concurrently, using at most
// e.config.Workers goroutines. Rows are returned in increasing order of n.
func powTable(e *env, base lognum.LogValue, from, to, step int64) ([]tableRow, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}
	if to < from {
		return nil, fmt.Errorf("empty range [%d, %d]", from, to)
	}
	// to-from may overflow an int64 but always fits a uint64
	n := uint64(to-from)/uint64(step) + 1
	if n > maxTableRows {
		return nil, fmt.Errorf("too many rows: %d > %d", n, maxTableRows)
	}

	rows := make([]tableRow, n)
	var g errgroup.Group
	g.SetLimit(e.config.Workers)
	for i := range rows {
		i := i
		g.Go(func() error {
			ctx := e.newContext()
			// may wrap in between, but the sum is in [from, to]
			exp := from + int64(i)*step
			v := ctx.Pow(base, lognum.From(exp))
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%v^%d: %w", base, exp, err)
			}
			rows[i] = tableRow{N: exp, Value: v, Text: ctx.Text(v)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.logger.Debug("table computed", "rows", len(rows), "workers", e.config.Workers)
	return rows, nil
}
