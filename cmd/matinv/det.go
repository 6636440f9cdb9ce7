// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matinv/matrix"
)

var detExample = heredoc.Doc(`
	# Cofactor determinant of a text matrix
	matinv det --input a.txt

	# Pivoted elimination instead of cofactor expansion
	matinv det --input a.json --lu`)

// NewCmdDet returns the det subcommand.
func NewCmdDet(load configLoader) *cobra.Command {
	var (
		input, inputFormat string
		useLU              bool
	)
	cmd := &cobra.Command{
		Use:     "det",
		Short:   "Print the determinant of a square matrix",
		Example: detExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			m, err := loadMatrix(cmd.InOrStdin(), input, inputFormat)
			if err != nil {
				return err
			}
			if err := matrix.ValidateBounds(m, cfg.MaxSize, cfg.MaxAbs); err != nil {
				return err
			}

			det := matrix.Determinant
			if useLU {
				det = matrix.DeterminantLU
			}
			d, err := det(m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%g\n", d)
			if math.Abs(d) < cfg.DetThreshold {
				fmt.Fprintf(out, "singular: |det| < %g\n", cfg.DetThreshold)
			}

			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&input, "input", "i", "", `matrix file ("-" for stdin)`)
	fs.StringVar(&inputFormat, "input-format", "", "input encoding: text, yaml or json (default: by extension)")
	fs.BoolVar(&useLU, "lu", false, "use pivoted elimination instead of cofactor expansion")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
