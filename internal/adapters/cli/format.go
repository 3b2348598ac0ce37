package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	nationCmd "github.com/andrescamacho/nationsim-go/internal/application/nation/commands"
	nationQuery "github.com/andrescamacho/nationsim-go/internal/application/nation/queries"
	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// writeNationTable prints one summary row per nation
func writeNationTable(w io.Writer, nations []*nationQuery.NationView) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNATION\tFUEL\tMANPOWER\tCIV\tMIL\tGUNS\tARTILLERY\tAA\tCAS\tFOCUS")
	fmt.Fprintln(tw, "-\t------\t----\t--------\t---\t---\t----\t---------\t--\t---\t-----")
	for _, n := range nations {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d/%d\t%s\t%s\t%s\t%s\t%s\n",
			n.Index,
			n.Name,
			humanize.Comma(int64(n.Fuel)),
			humanize.Comma(int64(n.Manpower)),
			n.CivFactories,
			n.UsedMilFactories, n.MilFactories,
			humanize.Comma(n.Equipment[shared.EquipmentGun]),
			humanize.Comma(n.Equipment[shared.EquipmentArtillery]),
			humanize.Comma(n.Equipment[shared.EquipmentAntiAir]),
			humanize.Comma(n.Equipment[shared.EquipmentCAS]),
			focusLabel(n),
		)
	}
	_ = tw.Flush()
}

func focusLabel(n *nationQuery.NationView) string {
	if n.FocusDaysLeft == 0 {
		return n.ActiveFocus
	}
	return fmt.Sprintf("%s (%d days left)", n.ActiveFocus, n.FocusDaysLeft)
}

// writeNationDetail prints everything the status view knows about one nation
func writeNationDetail(w io.Writer, n *nationQuery.NationView) {
	fmt.Fprintf(w, "%s (%s), day %d\n", n.Name, n.Ideology, n.Day)
	fmt.Fprintln(w, strings.Repeat("=", len(n.Name)+len(n.Ideology)+12))

	fmt.Fprintf(w, "Fuel: %s  Manpower: %s\n", humanize.Comma(int64(n.Fuel)), humanize.Comma(int64(n.Manpower)))
	fmt.Fprintf(w, "Factories: %d civilian, %d military (%d assigned, %d free)\n",
		n.CivFactories, n.MilFactories, n.UsedMilFactories, n.FreeMilFactories)
	fmt.Fprintf(w, "Resources: oil %d, steel %d, tungsten %d, aluminum %d, chromium %d\n",
		n.Oil, n.Steel, n.Tungsten, n.Aluminum, n.Chromium)
	fmt.Fprintf(w, "Equipment: guns %s, artillery %s, anti-air %s, CAS %s\n",
		humanize.Comma(n.Equipment[shared.EquipmentGun]),
		humanize.Comma(n.Equipment[shared.EquipmentArtillery]),
		humanize.Comma(n.Equipment[shared.EquipmentAntiAir]),
		humanize.Comma(n.Equipment[shared.EquipmentCAS]),
	)

	fmt.Fprintln(w, "\nProvinces:")
	for i, p := range n.Provinces {
		fmt.Fprintf(w, "  [%d] %-16s pop %6s  civ %d  mil %d  infra %2d  dock %d  air %d  oil %d\n",
			i, p.Name, humanize.Comma(int64(p.Population)),
			p.CivFactories, p.MilFactories, p.Infrastructure, p.Dockyards, p.Airfields, p.Oil)
	}

	fmt.Fprintln(w, "\nProduction lines:")
	if len(n.Lines) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, l := range n.Lines {
		fmt.Fprintf(w, "  [%d] %-10s %d factories  %s/day (unit cost %s)\n",
			i, l.Equipment, l.Factories, humanize.Comma(l.DailyOutput), humanize.Ftoa(l.UnitCost))
	}

	fmt.Fprintln(w, "\nConstruction queue:")
	if len(n.Queue) == 0 {
		fmt.Fprintln(w, "  (empty)")
	}
	for i, t := range n.Queue {
		province := fmt.Sprintf("#%d", t.ProvinceIndex)
		if t.ProvinceIndex >= 0 && t.ProvinceIndex < len(n.Provinces) {
			province = n.Provinces[t.ProvinceIndex].Name
		}
		fmt.Fprintf(w, "  %s %-10s in %-16s %5.1f%% (%s BP left)\n",
			humanize.Ordinal(i+1), t.Building, province, t.Percent, humanize.Ftoa(t.RemainingBP))
	}

	fmt.Fprintln(w, "\nFocuses:")
	for i, f := range n.Focuses {
		fmt.Fprintf(w, "  [%d] %-24s %3d days  %-12s %s\n", i, f.Name, f.Days, f.Effect, f.Status)
	}
}

// writeDayResults prints completions; quiet days print nothing
func writeDayResults(w io.Writer, results []nationCmd.DayResult) {
	for _, result := range results {
		for _, report := range result.Reports {
			writeCompletions(w, result.Day, report)
		}
	}
}

func writeCompletions(w io.Writer, day int, report nation.DayReport) {
	if done := report.CompletedConstruction; done != nil {
		if done.Applied {
			fmt.Fprintf(w, "day %d: %s completed %s in %s\n", day, report.Nation, done.Building, done.ProvinceName)
		} else {
			fmt.Fprintf(w, "day %d: %s completed %s for missing province #%d\n", day, report.Nation, done.Building, done.ProvinceIndex)
		}
	}
	if done := report.CompletedFocus; done != nil {
		target := "no province"
		if done.ProvinceIndex >= 0 {
			target = done.ProvinceName
		}
		fmt.Fprintf(w, "day %d: %s completed focus %q (%s, %s)\n", day, report.Nation, done.Name, done.Effect, target)
	}
}
