// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/matinv/matrix"
	"github.com/katalvlaran/matinv/report"
)

var (
	invertLong = heredoc.Doc(`
		Invert a square matrix and print the inverse rounded to three decimals.

		Unless --skip-det-check is given the matrix is first rejected when its
		cofactor determinant is smaller than --det-threshold in magnitude. With
		--output the original matrix, the inverse and the full method log are
		written to a result file.`)

	invertExample = heredoc.Doc(`
		# Invert a matrix stored as tab-separated text with LUP
		matinv invert --input a.txt

		# Invert a random 5x5 matrix with Schulz and save the result file
		matinv invert --random 5 --seed 42 --method schulz --output result.txt

		# Read YAML from stdin and print the trace
		cat a.yaml | matinv invert --input - --input-format yaml --show-log`)
)

// errNotInvertible is returned by the determinant pre-check.
var errNotInvertible = errors.New("matrix is not invertible")

// InvertFlags holds the raw command-line values of the invert command.
type InvertFlags struct {
	Input        string
	InputFormat  string
	Random       int
	Seed         int64
	Output       string
	ShowLog      bool
	SkipDetCheck bool
}

// InvertOptions is the validated, ready-to-run form of InvertFlags.
type InvertOptions struct {
	Matrix       *matrix.Dense
	Method       matrix.Method
	Config       *Config
	Output       string
	ShowLog      bool
	SkipDetCheck bool

	In  io.Reader
	Out io.Writer
}

// NewCmdInvert returns the invert subcommand.
func NewCmdInvert(load configLoader) *cobra.Command {
	f := &InvertFlags{}
	cmd := &cobra.Command{
		Use:     "invert",
		Short:   "Invert a square matrix",
		Long:    invertLong,
		Example: invertExample,
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

			return o.Run()
		},
	}
	f.AddFlags(cmd)

	return cmd
}

// AddFlags registers the invert flags on cmd.
func (f *InvertFlags) AddFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.Input, "input", "i", f.Input, `matrix file ("-" for stdin)`)
	fs.StringVar(&f.InputFormat, "input-format", f.InputFormat, "input encoding: text, yaml or json (default: by extension)")
	fs.IntVar(&f.Random, "random", f.Random, "generate a random N×N matrix with entries in [0,10) instead of reading one")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for --random (0 = time-based)")
	fs.StringVarP(&f.Output, "output", "o", f.Output, "write the result file to this path")
	fs.BoolVar(&f.ShowLog, "show-log", f.ShowLog, "print the method log after the inverse")
	fs.BoolVar(&f.SkipDetCheck, "skip-det-check", f.SkipDetCheck, "do not reject near-singular matrices before inverting")
	cmd.MarkFlagsMutuallyExclusive("input", "random")
	cmd.MarkFlagsOneRequired("input", "random")
}

// ToOptions resolves the input matrix and method.
func (f *InvertFlags) ToOptions(in io.Reader, out io.Writer, cfg *Config) (*InvertOptions, error) {
	method, err := matrix.ParseMethod(cfg.Method)
	if err != nil {
		return nil, err
	}

	if f.Random < 0 {
		return nil, fmt.Errorf("--random must be > 0, got %d", f.Random)
	}

	var m *matrix.Dense
	if f.Random > 0 {
		m, err = matrix.Random(newRand(f.Seed), f.Random, matrix.DefaultRandomMin, matrix.DefaultRandomMax)
	} else {
		m, err = loadMatrix(in, f.Input, f.InputFormat)
	}
	if err != nil {
		return nil, err
	}

	return &InvertOptions{
		Matrix:       m,
		Method:       method,
		Config:       cfg,
		Output:       f.Output,
		ShowLog:      f.ShowLog,
		SkipDetCheck: f.SkipDetCheck,
		In:           in,
		Out:          out,
	}, nil
}

// Validate applies the input bounds and the determinant pre-check.
func (o *InvertOptions) Validate() error {
	if err := matrix.ValidateBounds(o.Matrix, o.Config.MaxSize, o.Config.MaxAbs); err != nil {
		return err
	}
	if o.SkipDetCheck {
		return nil
	}
	ok, err := matrix.IsInvertible(o.Matrix, o.Config.DetThreshold)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: |det| < %g", errNotInvertible, o.Config.DetThreshold)
	}

	return nil
}

// Run inverts the matrix, prints the inverse and optionally saves the result file.
func (o *InvertOptions) Run() error {
	klog.V(2).InfoS("Inverting matrix", "method", o.Method, "size", o.Matrix.Size())

	rep, err := matrix.Invert(o.Matrix, o.Method, o.Config.MatrixOptions()...)
	if err != nil {
		var cerr *matrix.ConvergenceError
		if errors.As(err, &cerr) {
			klog.V(4).InfoS("Schulz trace", "log", cerr.Log)
		}
		return err
	}
	klog.V(1).InfoS("Inversion finished",
		"method", rep.Method,
		"iterations", rep.Iterations,
		"elapsedMs", rep.ElapsedMillis(),
		"ops", rep.Ops,
	)

	rounded, err := matrix.Round(rep.Inverse, matrix.DisplayDecimals)
	if err != nil {
		return err
	}
	fmt.Fprintln(o.Out, report.HeaderInverted)
	fmt.Fprint(o.Out, matrix.FormatDisplay(rounded))
	if o.ShowLog {
		fmt.Fprintf(o.Out, "\n%s\n%s\n", report.LogHeader(rep.Method), rep.Log)
	}

	if o.Output != "" {
		if err := report.Save(o.Output, o.Matrix, rep); err != nil {
			return err
		}
		klog.InfoS("Result saved", "path", o.Output)
	}

	return nil
}
