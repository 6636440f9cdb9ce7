// SPDX-License-Identifier: MIT

package main

import (
	goflag "flag"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootLong is the top-level help text.
var rootLong = heredoc.Doc(`
	Invert square matrices with Newton–Schulz iteration or LUP decomposition.

	Every inversion produces a trace of the algorithm (initial approximation and
	iterates for Schulz; L, U and the permutation for LUP) together with the
	elapsed time and an operation count. Matrices are read from text files (one
	row per line, cells separated by tabs or spaces), from YAML/JSON documents
	with a "rows" key, or generated at random.

	Defaults may be overridden with a config file (--config) or with environment
	variables prefixed MATINV_, e.g. MATINV_MAX_ITERATIONS=200.`)

// NewCmdMatinv builds the root command and its subcommands.
func NewCmdMatinv(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "matinv",
		Short:         "Invert square matrices and report how it went",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	addConfigFlags(flags)
	// klog's -v, -logtostderr, ... become persistent flags of every subcommand.
	flags.AddGoFlagSet(goflag.CommandLine)

	load := func() (*Config, error) {
		return loadConfig(v, cmd.PersistentFlags(), cfgFile)
	}

	cmd.AddCommand(
		NewCmdInvert(load),
		NewCmdDet(load),
		NewCmdCompare(load),
		NewCmdGenerate(),
	)

	return cmd
}

// configLoader resolves the shared configuration once flags are parsed.
type configLoader func() (*Config, error)
