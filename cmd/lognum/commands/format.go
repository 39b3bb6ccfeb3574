package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/db47h/lognum"
	"github.com/spf13/cobra"
)

type formatResult struct {
	Input      string          `json:"input"`
	Value      lognum.LogValue `json:"value"`
	Fixed      string          `json:"fixed,omitempty"`
	Scientific string          `json:"scientific"`
	Log        string          `json:"logarithmic"`
	Class      string          `json:"class"`
}

func newFormatCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "format VALUE...",
		Short: "Print values in every notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prec := e.config.Precision
			results := make([]formatResult, 0, len(args))
			for _, arg := range args {
				x, err := lognum.Parse(arg)
				if err != nil {
					return err
				}
				r := formatResult{
					Input:      arg,
					Value:      x,
					Scientific: x.TextSci(sciPrec(prec)),
					Log:        x.TextLog(logPrec(prec)),
					Class:      x.Classify().String(),
				}
				if s, ok := x.TextNum(prec); ok {
					r.Fixed = s
				}
				results = append(results, r)
			}

			if e.json {
				return e.writeJSON(cmd.OutOrStdout(), results)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INPUT\tFIXED\tSCIENTIFIC\tLOGARITHMIC\tCLASS")
			for _, r := range results {
				fixed := r.Fixed
				if fixed == "" {
					fixed = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Input, fixed, r.Scientific, r.Log, r.Class)
			}
			return w.Flush()
		},
	}
}

func sciPrec(prec int) int {
	if prec < 0 {
		return 2
	}
	return prec
}

func logPrec(prec int) int {
	if prec < 0 {
		return 3
	}
	return prec
}
