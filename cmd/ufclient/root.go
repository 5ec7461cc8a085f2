package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlath-fundamentals/internal/config"
	"github.com/katalvlaran/lvlath-fundamentals/scenario"
	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ufclient [file]",
		Short: "Replay a union-find workload",
		Long: "ufclient reads an element count followed by p q pairs (or a .toml scenario),\n" +
			"merges every pair that is not yet connected and prints it, then prints the component count.\n" +
			"With no file, or with \"-\", the text format is read from stdin.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		RunE: runReplay,
	}

	cmd.PersistentFlags().String("config", "", "config file (default .ufclient.yaml in . or $HOME)")
	cmd.Flags().String("variant", "", "union-find variant: quick-union or quick-find")
	cmd.Flags().Bool("trace", false, "print the internal array after every merge")

	return cmd
}

func initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		viper.SetConfigName(".ufclient")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = viper.ReadInConfig()
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.BindPFlag("variant", cmd.Flags().Lookup("variant")); err != nil {
		return err
	}

	return viper.BindPFlag("trace", cmd.Flags().Lookup("trace"))
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s, err := readScenario(cmd.InOrStdin(), args)
	if err != nil {
		return fmt.Errorf("failed to read scenario: %w", err)
	}

	var opts []unionfind.Option
	if cfg.Variant != "" {
		opts = append(opts, unionfind.WithVariant(cfg.Variant))
	}
	uf, err := scenario.Build(s, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Trace {
		fmt.Fprintf(out, "# %s\n", uf)
	}
	res, err := scenario.Replay(s, uf, func(ev scenario.Event) {
		if ev.Kind != scenario.Merged {
			return
		}
		fmt.Fprintf(out, "%d %d\n", ev.Pair.P, ev.Pair.Q)
		if cfg.Trace {
			fmt.Fprintf(out, "# %s\n", uf)
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d components\n", res.Components)

	return nil
}

func readScenario(stdin io.Reader, args []string) (*scenario.Scenario, error) {
	if len(args) == 0 || args[0] == "-" {
		return scenario.ParseText(stdin)
	}

	return scenario.Load(args[0])
}
