package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
	nationCmd "github.com/andrescamacho/nationsim-go/internal/application/nation/commands"
	nationQuery "github.com/andrescamacho/nationsim-go/internal/application/nation/queries"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/config"
)

const playHelp = `Commands:
  nations                              list every nation
  select <nation>                      choose the nation other commands act on (name or #)
  status [nation]                      show a nation in detail
  focus <index>                        start a national focus
  build <building> <province> [count]  queue construction (CIV, MIL, INFRA, DOCKYARD, AIRFIELD, *_RF)
  line <equipment> <factories> [cost]  open a production line (GUN, ARTILLERY, ANTI_AIR, CAS)
  resize <line> <factories>            reassign a line's factories
  day [n]                              simulate n days (default 1)
  pause | resume                       control the background clock (--realtime only)
  help                                 show this help
  quit                                 leave
`

// NewPlayCommand creates the interactive command
func NewPlayCommand() *cobra.Command {
	var realtime bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a scenario interactively",
		Long: `Start an interactive session on a scenario. Days advance only when asked,
unless --realtime is set, in which case the clock advances every
simulation.day_interval and can be paused and resumed.

Example:
  nationsim play --scenario world.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, func(cfg *config.Config) {
				if !realtime {
					cfg.Simulation.StartPaused = false
				}
			})
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithCancel(a.context(cmd.Context()))
			defer cancel()

			p := &player{app: a, out: cmd.OutOrStdout(), realtime: realtime}
			if realtime {
				done := make(chan error, 1)
				go func() { done <- a.scheduler.Run(ctx, 0) }()
				defer func() {
					_ = a.scheduler.Stop()
					cancel()
					<-done
				}()
			}
			return p.loop(ctx, cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolVar(&realtime, "realtime", false, "Advance days on a wall clock")
	return cmd
}

type player struct {
	app      *app
	out      io.Writer
	realtime bool
}

var errQuit = errors.New("quit")

func (p *player) loop(ctx context.Context, in io.Reader) error {
	if list, err := p.app.listNations(ctx); err == nil {
		fmt.Fprintf(p.out, "%s, day %d. Type 'help' for commands.\n", p.app.scenario.Name, list.Day)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(p.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(p.out)
			return scanner.Err()
		}

		err := p.execute(ctx, strings.Fields(scanner.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(p.out, "error: %v\n", err)
		}
	}
}

func (p *player) execute(ctx context.Context, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "help", "?":
		fmt.Fprint(p.out, playHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	case "nations", "ls":
		list, err := p.app.listNations(ctx)
		if err != nil {
			return err
		}
		writeNationTable(p.out, list.Nations)
		return nil
	case "select":
		if len(args) != 1 {
			return fmt.Errorf("usage: select <nation>")
		}
		resp, err := p.send(ctx, &nationCmd.SelectNationCommand{Nation: args[0]})
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "Selected %s\n", resp.(*nationCmd.SelectNationResponse).Nation)
		return nil
	case "status", "st":
		ref := ""
		if len(args) > 0 {
			ref = strings.Join(args, " ")
		}
		resp, err := p.send(ctx, &nationQuery.GetNationQuery{Nation: ref})
		if err != nil {
			return err
		}
		writeNationDetail(p.out, resp.(*nationQuery.NationView))
		return nil
	case "focus":
		ints, err := parseInts(args, 1, 1, "focus <index>")
		if err != nil {
			return err
		}
		resp, err := p.send(ctx, &nationCmd.StartFocusCommand{FocusIndex: ints[0]})
		if err != nil {
			return err
		}
		started := resp.(*nationCmd.StartFocusResponse)
		fmt.Fprintf(p.out, "%s started %q (%d days)\n", started.Nation, started.Focus, started.Days)
		return nil
	case "build":
		if len(args) < 2 {
			return fmt.Errorf("usage: build <building> <province> [count]")
		}
		ints, err := parseInts(args[1:], 1, 2, "build <building> <province> [count]")
		if err != nil {
			return err
		}
		count := 1
		if len(ints) == 2 {
			count = ints[1]
		}
		resp, err := p.send(ctx, &nationCmd.QueueConstructionCommand{Building: args[0], ProvinceIndex: ints[0], Count: count})
		if err != nil {
			return err
		}
		queued := resp.(*nationCmd.QueueConstructionResponse)
		fmt.Fprintf(p.out, "%s queued %d %s in %s (%d in queue)\n",
			queued.Nation, queued.Queued, queued.Building, queued.Province, queued.QueueDepth)
		return nil
	case "line":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: line <equipment> <factories> [cost]")
		}
		factories, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("factories must be a number: %q", args[1])
		}
		cost := 0.0
		if len(args) == 3 {
			if cost, err = strconv.ParseFloat(args[2], 64); err != nil {
				return fmt.Errorf("cost must be a number: %q", args[2])
			}
		}
		resp, err := p.send(ctx, &nationCmd.AddProductionLineCommand{Equipment: args[0], Factories: factories, UnitCost: cost})
		if err != nil {
			return err
		}
		writeLineChange(p.out, "opened", resp.(*nationCmd.ProductionLineResponse))
		return nil
	case "resize":
		ints, err := parseInts(args, 2, 2, "resize <line> <factories>")
		if err != nil {
			return err
		}
		resp, err := p.send(ctx, &nationCmd.ResizeProductionLineCommand{LineIndex: ints[0], Factories: ints[1]})
		if err != nil {
			return err
		}
		writeLineChange(p.out, "resized", resp.(*nationCmd.ProductionLineResponse))
		return nil
	case "day", "next", "n":
		days := 1
		if len(args) > 0 {
			ints, err := parseInts(args, 1, 1, "day [n]")
			if err != nil {
				return err
			}
			days = ints[0]
		}
		resp, err := p.send(ctx, &nationCmd.AdvanceDaysCommand{Days: days})
		if err != nil {
			return err
		}
		advanced := resp.(*nationCmd.AdvanceDaysResponse)
		writeDayResults(p.out, advanced.Results)
		fmt.Fprintf(p.out, "Day %d\n", advanced.Day)
		return nil
	case "pause":
		if !p.realtime {
			return fmt.Errorf("the clock only runs with --realtime")
		}
		return p.app.scheduler.Pause()
	case "resume":
		if !p.realtime {
			return fmt.Errorf("the clock only runs with --realtime")
		}
		return p.app.scheduler.Resume()
	}
	return fmt.Errorf("unknown command %q (try 'help')", name)
}

func (p *player) send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return p.app.mediator.Send(ctx, request)
}

func writeLineChange(w io.Writer, verb string, line *nationCmd.ProductionLineResponse) {
	fmt.Fprintf(w, "%s %s line %d: %s, %d factories, %d/day (%d factories free)\n",
		line.Nation, verb, line.LineIndex, line.Equipment, line.Factories, line.DailyOutput, line.FreeMilFactories)
}

func parseInts(args []string, lo, hi int, usage string) ([]int, error) {
	if len(args) < lo || len(args) > hi {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number (usage: %s)", arg, usage)
		}
		out[i] = n
	}
	return out, nil
}
