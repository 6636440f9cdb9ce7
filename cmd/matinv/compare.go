// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/matinv/matrix"
)

var compareExample = heredoc.Doc(`
	# Run both methods on the same matrix and compare the diagnostics
	matinv compare --input a.txt

	# Same for a reproducible random matrix
	matinv compare --random 8 --seed 3`)

// comparison is the outcome of one method in the compare command.
type comparison struct {
	method   matrix.Method
	rep      *matrix.Report
	residual float64
	err      error
}

// NewCmdCompare returns the compare subcommand.
func NewCmdCompare(load configLoader) *cobra.Command {
	f := &InvertFlags{}
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Invert one matrix with every method and tabulate the diagnostics",
		Example: compareExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			o, err := f.ToOptions(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			results, err := compareMethods(cmd.Context(), o.Matrix, cfg.MatrixOptions()...)
			if err != nil {
				return err
			}

			return printComparison(o.Out, results)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&f.Input, "input", "i", "", `matrix file ("-" for stdin)`)
	fs.StringVar(&f.InputFormat, "input-format", "", "input encoding: text, yaml or json (default: by extension)")
	fs.IntVar(&f.Random, "random", 0, "generate a random N×N matrix with entries in [0,10)")
	fs.Int64Var(&f.Seed, "seed", 0, "seed for --random (0 = time-based)")
	fs.BoolVar(&f.SkipDetCheck, "skip-det-check", false, "do not reject near-singular matrices before inverting")
	cmd.MarkFlagsMutuallyExclusive("input", "random")
	cmd.MarkFlagsOneRequired("input", "random")

	return cmd
}

// compareMethods inverts a with every method concurrently. Per-method
// numeric failures are recorded in the result rather than aborting the group.
func compareMethods(ctx context.Context, a *matrix.Dense, opts ...matrix.Option) ([]comparison, error) {
	methods := []matrix.Method{matrix.MethodSchulz, matrix.MethodLUP}
	results := make([]comparison, len(methods))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range methods {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := comparison{method: m}
			res.rep, res.err = matrix.Invert(a, m, opts...)
			if res.err == nil {
				r, err := matrix.Residual(a, res.rep.Inverse)
				if err != nil {
					return err
				}
				res.residual = r
			}
			klog.V(2).InfoS("Method finished", "method", m, "err", res.err)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// printComparison renders results as an aligned table.
func printComparison(w io.Writer, results []comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tITERATIONS\tELAPSED(ms)\tOPS\tRESIDUAL\tSTATUS")
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%v\n", r.method, r.err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%d\t%.3e\tok\n",
			r.method, r.rep.Iterations, r.rep.ElapsedMillis(), r.rep.Ops, r.residual)
	}

	return tw.Flush()
}
