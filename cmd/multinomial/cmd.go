// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/qcgm1978/tfjs-core/multinomial"
)

// Command returns the root command with its subcommands attached.
func Command() *cobra.Command {
	c := &cobra.Command{
		Use:           "multinomial",
		Short:         "Categorical sampling from probability tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(SampleCommand())
	return c
}

// SampleCommand returns the "sample" subcommand.
func SampleCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "sample [file]",
		Short: "Draws outcome indices from a JSON [K] or [B,K] probability tensor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sampleFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func sampleFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	if config.NoColor {
		color.NoColor = true
	}
	log := newLogger(c.ErrOrStderr(), config.LogLevel)
	defer func() { _ = log.Sync() }()

	in, closeIn, err := openInput(config.Input, c.InOrStdin())
	if err != nil {
		return err
	}
	defer closeIn()

	probs, err := readProbs(in)
	if err != nil {
		return err
	}

	out, err := multinomial.Multinomial(probs, config.Samples, config.options(log)...)
	if err != nil {
		return err
	}
	log.Info("sampled",
		zap.Ints("shape", out.Shape()),
		zap.String("generator", config.Generator.String()),
		zap.Bool("seeded", config.Seeded),
	)

	return writeSamples(c.OutOrStdout(), out, config.Pretty)
}

// newLogger writes console-encoded entries at level and above to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}
