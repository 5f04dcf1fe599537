package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var subcommandFns = map[string]func(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command{}

// errDryRun is returned instead of running a subcommand when --dry-run is set.
var errDryRun = fmt.Errorf("dry run")

// NewRootCommand returns the pdsample command tree. Every subcommand is
// configured from its flags, PDS_-prefixed environment variables, and an
// optional TOML config file, in that order of priority.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "pdsample",
		Short: "Poisson-Dirichlet species sampling",
		Long: `Draws random species-abundance counts following the finite
two-parameter Poisson-Dirichlet process.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := setAllConfig(viper.New(), cmd.Flags(), "PDS")
			if err != nil {
				return err
			}
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return fmt.Errorf("problem getting dry-run flag: %v", err)
			}
			if dryRun && cmd.Parent() != nil {
				return errDryRun
			}
			return nil
		},
	}
	rc.PersistentFlags().Bool("dry-run", false, "Stop before executing. Useful for testing.")
	_ = rc.PersistentFlags().MarkHidden("dry-run")
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")
	for _, subcomFn := range subcommandFns {
		rc.AddCommand(subcomFn(stdin, stdout, stderr))
	}
	rc.SetOutput(stderr)
	return rc
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, as well as their defaults. It then reads from the command line,
// the environment, and a config file (if specified), and applies the
// configuration in that priority order. Each flag holds a pointer to where
// its value is stored, so the winning value is written straight into the
// subcommand's configuration struct.
//
// Environment variables are the flag names, upper-cased, with dashes
// replaced by underscores and prefixed with envPrefix plus an underscore:
// --sample-size becomes PDS_SAMPLE_SIZE.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet, envPrefix string) error {
	err := v.BindPFlags(flags)
	if err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if c := v.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		err := v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("error reading configuration file '%s': %v", c, err)
		}

		validKeys := make(map[string]bool)
		flags.VisitAll(func(f *pflag.Flag) {
			validKeys[f.Name] = true
		})
		for _, key := range v.AllKeys() {
			if !validKeys[key] {
				return fmt.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		// A flag given on the command line already holds the
		// highest-priority value.
		if flagErr != nil || f.Changed {
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil {
			flagErr = fmt.Errorf("invalid value for %s: %v", f.Name, err)
		}
	})
	return flagErr
}
