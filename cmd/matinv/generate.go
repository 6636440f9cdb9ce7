// SPDX-License-Identifier: MIT

package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/matinv/matrix"
)

var generateExample = heredoc.Doc(`
	# A reproducible 4x4 matrix as text
	matinv generate --size 4 --seed 7

	# Entries in [-5,5) as YAML, ready for "matinv invert --input m.yaml"
	matinv generate --size 3 --min -5 --max 5 --format yaml > m.yaml`)

// NewCmdGenerate returns the generate subcommand.
func NewCmdGenerate() *cobra.Command {
	var (
		size, lo, hi int
		seed         int64
		format       string
	)
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Print a random square matrix of integers",
		Example: generateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := detectFormat(format, "")
			if err != nil {
				return err
			}
			m, err := matrix.Random(newRand(seed), size, lo, hi)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("Generated matrix", "size", size, "min", lo, "max", hi, "seed", seed)

			return writeMatrix(cmd.OutOrStdout(), m, f)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&size, "size", "n", 3, "matrix order")
	fs.IntVar(&lo, "min", matrix.DefaultRandomMin, "smallest entry (inclusive)")
	fs.IntVar(&hi, "max", matrix.DefaultRandomMax, "largest entry (exclusive)")
	fs.Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	fs.StringVar(&format, "format", formatText, "output encoding: text, yaml or json")

	return cmd
}
