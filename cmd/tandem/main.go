// Command tandem computes budget summaries from snapshot files.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tandembudget/tandem/internal/budget"
	"github.com/tandembudget/tandem/internal/config"
	"github.com/tandembudget/tandem/internal/console"
	"github.com/tandembudget/tandem/internal/period"
	"github.com/tandembudget/tandem/internal/snapshot"
)

var (
	flagFile     string
	flagDate     string
	flagPeriod   string
	flagTimezone string
	flagView     string
	flagViewer   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tandem",
		Short: "Household budget summary engine",
		Long: "tandem reconciles expected income, category budgets, recurring-expense\n" +
			"defaults, actual spend, and goal/asset contributions into one periodic\n" +
			"budget report.",
		SilenceUsage: true,
	}

	root.AddCommand(newSummaryCmd())
	root.AddCommand(newPeriodCmd())
	return root
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Compute the budget summary for a snapshot file",
		RunE:  runSummary,
	}
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "snapshot file (YAML or JSON)")
	cmd.Flags().StringVar(&flagDate, "date", "", "reference date (YYYY-MM-DD or RFC3339, default: snapshot's reference)")
	cmd.Flags().StringVar(&flagPeriod, "period", "", "period type: weekly, fortnightly, monthly")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "IANA timezone for period boundaries")
	cmd.Flags().StringVar(&flagView, "view", "", "view mode: shared or individual")
	cmd.Flags().StringVar(&flagViewer, "viewer", "", "viewer user ID for individual view")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	snap, err := snapshot.Load(flagFile)
	if err != nil {
		return err
	}

	if flagDate != "" {
		ref, err := parseDate(flagDate)
		if err != nil {
			return err
		}
		snap.Reference = ref
	}
	if flagPeriod != "" {
		snap.PeriodType = period.Type(flagPeriod)
	}
	if flagTimezone != "" {
		snap.Timezone = flagTimezone
	}
	if flagView != "" {
		snap.View = budget.ViewMode(flagView)
	}
	if flagViewer != "" {
		snap.ViewerUserID = flagViewer
	}

	summary, err := budget.Summarize(snap)
	if err != nil {
		return err
	}

	console.RenderSummary(summary)
	return nil
}

func newPeriodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Resolve period boundaries for a date",
		RunE:  runPeriod,
	}
	cmd.Flags().StringVar(&flagDate, "date", "", "reference date (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&flagPeriod, "period", "monthly", "period type: weekly, fortnightly, monthly")
	cmd.Flags().StringVar(&flagTimezone, "timezone", config.DefaultTimezone, "IANA timezone")
	return cmd
}

func runPeriod(cmd *cobra.Command, args []string) error {
	ref := time.Now()
	if flagDate != "" {
		parsed, err := parseDate(flagDate)
		if err != nil {
			return err
		}
		ref = parsed
	}

	pt := period.Type(flagPeriod)
	if err := pt.Validate(); err != nil {
		return err
	}

	rng := period.GetRange(ref, pt, flagTimezone)
	pterm.DefaultSection.Println(rng.Label)
	pterm.Info.Printfln("start:     %s", rng.Start.Format(time.RFC3339))
	pterm.Info.Printfln("end:       %s", rng.End.Format(time.RFC3339))
	pterm.Info.Printfln("month key: %s", period.MonthKey(ref, flagTimezone))
	pterm.Info.Printfln("next:      %s", period.Next(ref, pt, flagTimezone).Format(time.RFC3339))
	pterm.Info.Printfln("previous:  %s", period.Previous(ref, pt, flagTimezone).Format(time.RFC3339))
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or RFC3339)", s)
	}
	return t, nil
}
