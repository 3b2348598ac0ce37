package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	scenarioPath string
	seed         uint64
	verbose      bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nationsim",
		Short: "Nation economy simulator",
		Long: `nationsim advances a world of nations one day at a time: provinces
yield resources, military factories turn out equipment, civilian factories
work through the construction queue and national focuses pay out buildings.

Examples:
  nationsim run --days 365
  nationsim run --interval 1s --metrics --journal
  nationsim play
  nationsim inspect Romania --days 30
  nationsim scenario generate --nations 4 --seed 7 -o world.yaml
  nationsim journal runs
  nationsim config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: nationsim.yaml in ., ./configs or /etc/nationsim)")
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "",
		"Scenario YAML file (default: built-in scenario)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"Seed for focus targeting (0 = random)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewInspectCommand())
	rootCmd.AddCommand(NewScenarioCommand())
	rootCmd.AddCommand(NewJournalCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
