package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/nationsim-go/internal/adapters/metrics"
	"github.com/andrescamacho/nationsim-go/internal/adapters/persistence"
	"github.com/andrescamacho/nationsim-go/internal/application/journal"
	"github.com/andrescamacho/nationsim-go/internal/application/scheduler"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/config"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/database"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/pidfile"
	"github.com/andrescamacho/nationsim-go/pkg/utils"
)

// NewRunCommand creates the batch run command
func NewRunCommand() *cobra.Command {
	var (
		days        int
		interval    time.Duration
		withMetrics bool
		withJournal bool
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a scenario in batch",
		Long: `Simulate the scenario day by day until --days have passed or the process
is interrupted, then print a summary of every nation.

Every day is logged. With --metrics the nation gauges are served for Prometheus
while the run lasts; with --journal every day is recorded to the journal database.

Examples:
  nationsim run --days 365
  nationsim run --days 0 --interval 500ms --metrics
  nationsim run --days 90 --journal --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("days") {
					cfg.Simulation.Days = days
				}
				if flags.Changed("interval") {
					cfg.Simulation.DayInterval = interval
				}
				if withMetrics {
					cfg.Metrics.Enabled = true
				}
				if withJournal {
					cfg.Journal.Enabled = true
				}
				// Batch runs never wait for a resume
				cfg.Simulation.StartPaused = false
			})
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(a.context(cmd.Context()), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !quiet {
				a.scheduler.AddObserver("log", scheduler.NewLogReporter(a.logger))
			}

			if a.registry != nil {
				server := metrics.NewServer(a.cfg.Metrics, a.registry, a.logger)
				if err := server.Start(); err != nil {
					return err
				}
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = server.Shutdown(shutdownCtx)
				}()
				fmt.Fprintf(cmd.OutOrStdout(), "Serving metrics on http://%s%s\n", server.Addr(), a.cfg.Metrics.Path)
			}

			var recorder *journal.Recorder
			if a.cfg.Journal.Enabled {
				if a.cfg.Journal.Type == "sqlite" && a.cfg.Journal.Path != ":memory:" && a.cfg.Journal.URL == "" {
					lock := pidfile.ForDatabase(a.cfg.Journal.Path)
					if err := lock.Acquire(); err != nil {
						return fmt.Errorf("journal is in use by another run: %w", err)
					}
					defer func() { _ = lock.Release() }()
				}

				db, err := database.Open(&a.cfg.Journal)
				if err != nil {
					return err
				}
				defer func() { _ = database.Close(db) }()

				recorder = journal.NewRecorder(persistence.NewGormJournalRepository(db), journal.Run{
					ID:       utils.GenerateRunID(a.scenario.Name),
					Scenario: a.scenario.Name,
					Seed:     a.cfg.Simulation.Seed,
				}, nil)
				if err := recorder.Start(ctx); err != nil {
					return err
				}
				a.scheduler.AddObserver("journal", recorder)
			}

			runErr := a.scheduler.Run(ctx, a.cfg.Simulation.Days)
			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return runErr
			}

			if recorder != nil {
				// The run context may already be cancelled
				if err := recorder.Finish(context.Background(), a.scheduler.DaysRun()); err != nil {
					a.logger.Error("failed to finish journal run", "run", recorder.RunID(), "error", err)
				}
			}

			list, err := a.listNations(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n%s: %s simulated, now on day %s (%s)\n",
				a.scenario.Name,
				pluralDays(a.scheduler.DaysRun()),
				humanize.Comma(int64(list.Day)),
				a.scheduler.Elapsed().Round(time.Millisecond),
			)
			if recorder != nil {
				fmt.Fprintf(out, "Journal run: %s\n", recorder.RunID())
			}
			fmt.Fprintln(out)
			writeNationTable(out, list.Nations)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days to simulate (0 = until interrupted; default from config)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Wall time between days (default from config)")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "Serve Prometheus metrics during the run")
	cmd.Flags().BoolVar(&withJournal, "journal", false, "Record every day to the journal database")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not log every simulated day")

	return cmd
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return humanize.Comma(int64(n)) + " days"
}
