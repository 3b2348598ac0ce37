package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/nationsim-go/internal/adapters/persistence"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/database"
)

// NewJournalCommand creates the journal command with subcommands
func NewJournalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Browse recorded runs",
		Long: `Browse the runs recorded with 'nationsim run --journal'.

Examples:
  nationsim journal runs
  nationsim journal show danube-1936-3f2a91c0 --nation Romania`,
	}

	cmd.AddCommand(newJournalRunsCommand())
	cmd.AddCommand(newJournalShowCommand())

	return cmd
}

func openJournal(cmd *cobra.Command) (*persistence.GormJournalRepository, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(&cfg.Journal)
	if err != nil {
		return nil, nil, err
	}
	return persistence.NewGormJournalRepository(db), func() { _ = database.Close(db) }, nil
}

func newJournalRunsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := openJournal(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			runs, err := repo.ListRuns(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintf(out, "%-32s %-20s %8s %20s  %s\n", "Run", "Scenario", "Days", "Seed", "Started")
			for _, run := range runs {
				days := "running"
				if run.FinishedAt != nil {
					days = humanize.Comma(int64(run.Days))
				}
				fmt.Fprintf(out, "%-32s %-20s %8s %20d  %s\n",
					run.ID, run.Scenario, days, run.Seed, humanize.Time(run.StartedAt))
			}
			return nil
		},
	}
}

func newJournalShowCommand() *cobra.Command {
	var nationName string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the recorded days of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := openJournal(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			entries, err := repo.ListEntries(cmd.Context(), args[0], nationName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No entries for run %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "%5s %-14s %10s %5s %5s %10s %10s  %s\n",
				"Day", "Nation", "Fuel", "Civ", "Mil", "Guns", "Artillery", "Events")
			for _, e := range entries {
				events := ""
				if e.CompletedBuilding != "" {
					events = fmt.Sprintf("built %s in %s", e.CompletedBuilding, e.CompletedBuildingProvince)
				}
				if e.CompletedFocus != "" {
					if events != "" {
						events += "; "
					}
					events += fmt.Sprintf("focus %q", e.CompletedFocus)
				}
				fmt.Fprintf(out, "%5d %-14s %10s %5d %5d %10s %10s  %s\n",
					e.Day, e.Nation, humanize.Comma(int64(e.Fuel)), e.Civ, e.Mil,
					humanize.Comma(e.Guns), humanize.Comma(e.Artillery), events)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nationName, "nation", "", "Only show this nation")
	return cmd
}
