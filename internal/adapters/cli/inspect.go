package cli

import (
	"strings"

	"github.com/spf13/cobra"

	nationCmd "github.com/andrescamacho/nationsim-go/internal/application/nation/commands"
	nationQuery "github.com/andrescamacho/nationsim-go/internal/application/nation/queries"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "inspect [nation]",
		Short: "Show the nations of a scenario",
		Long: `Show every nation of the scenario, or one nation in detail, optionally
after simulating some days first.

Examples:
  nationsim inspect
  nationsim inspect Hungary --days 60`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := a.context(cmd.Context())
			out := cmd.OutOrStdout()

			if days > 0 {
				resp, err := a.mediator.Send(ctx, &nationCmd.AdvanceDaysCommand{Days: days})
				if err != nil {
					return err
				}
				writeDayResults(out, resp.(*nationCmd.AdvanceDaysResponse).Results)
			}

			if len(args) == 0 {
				list, err := a.listNations(ctx)
				if err != nil {
					return err
				}
				writeNationTable(out, list.Nations)
				return nil
			}

			resp, err := a.mediator.Send(ctx, &nationQuery.GetNationQuery{Nation: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			writeNationDetail(out, resp.(*nationQuery.NationView))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Simulate this many days before showing")
	return cmd
}
