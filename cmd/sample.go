package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/pilosa/pdsample/sample"
	"github.com/spf13/cobra"
)

// NewSampleCommand returns the command which draws one sample and writes
// its species counts.
func NewSampleCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	m := sample.NewMain(stdout, stderr)
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample species counts from a finite Poisson-Dirichlet process.",
		Long: `Samples individuals one at a time from the two-parameter
Poisson-Dirichlet process and writes the number of individuals in each
species, one per line, in order of first appearance.

Each new individual joins an existing species with count c with
probability (c + kappa)/(total + theta), and founds a new species
otherwise. Unless theta is given, it is kappa times the population size.

See Pitman & Yor, Annals of Probability 1995, sec 9.1, or Hansen &
Pitman, Statistics & Probability Letters 2000, eqs 13 & 14.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt)
			defer signal.Stop(sigs)
			go func() {
				select {
				case <-sigs:
					cancel()
				case <-ctx.Done():
				}
			}()
			return m.RunContext(ctx)
		},
	}

	flags := sampleCmd.Flags()
	flags.Float64VarP(&m.Kappa, "kappa", "k", m.Kappa, "Kappa (discount) parameter, must be positive.")
	flags.IntVarP(&m.PopSize, "pop-size", "m", m.PopSize, "Size of the population being sampled from.")
	flags.StringVarP(&m.Theta, "theta", "t", "", "Theta (concentration) parameter. Defaults to kappa times pop-size.")
	flags.IntVarP(&m.N, "sample-size", "n", m.N, "Number of individuals to sample.")
	flags.StringVarP(&m.Seed, "seed", "s", "", "Seed for the random number generator. Integers are used directly, other strings are hashed. Defaults to the clock.")
	flags.StringVarP(&m.Output, "output", "o", "", "File to write counts to (will be truncated). Defaults to stdout.")
	flags.BoolVarP(&m.Verbose, "verbose", "V", false, "Print run information to stderr.")

	return sampleCmd
}

func init() {
	subcommandFns["sample"] = NewSampleCommand
}
