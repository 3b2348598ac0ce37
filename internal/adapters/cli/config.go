package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect nationsim configuration settings.

Configuration is loaded from multiple sources with priority:
1. Command-line flags (--scenario, --seed, --verbose)
2. Environment variables (NS_* prefix, DATABASE_URL)
3. Config file (nationsim.yaml)
4. Default values

Examples:
  nationsim config show
  NS_SIMULATION_DAY_INTERVAL=1s nationsim config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "nationsim Configuration")
			fmt.Fprintln(out, "=======================")

			fmt.Fprintln(out, "Simulation:")
			scenarioPath := cfg.Simulation.ScenarioPath
			if scenarioPath == "" {
				scenarioPath = "(built-in)"
			}
			fmt.Fprintf(out, "  Scenario:         %s\n", scenarioPath)
			if cfg.Simulation.Seed == 0 {
				fmt.Fprintf(out, "  Seed:             (random)\n")
			} else {
				fmt.Fprintf(out, "  Seed:             %d\n", cfg.Simulation.Seed)
			}
			fmt.Fprintf(out, "  Day Interval:     %s\n", cfg.Simulation.DayInterval)
			fmt.Fprintf(out, "  Days:             %d\n", cfg.Simulation.Days)
			fmt.Fprintf(out, "  Start Paused:     %t\n", cfg.Simulation.StartPaused)

			fmt.Fprintln(out, "\nJournal:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Journal.Enabled)
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Journal.Type)
			switch {
			case cfg.Journal.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Journal.URL))
			case cfg.Journal.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Journal.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Journal.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Journal.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Journal.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Journal.User)
			}
			fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Journal.Pool.MaxOpen)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Endpoint:         http://%s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)
			if cfg.Logging.Output == "file" {
				fmt.Fprintf(out, "  File:             %s (rotation %t)\n", cfg.Logging.FilePath, cfg.Logging.Rotation.Enabled)
			}

			return nil
		},
	}

	return cmd
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Redacted()
}
