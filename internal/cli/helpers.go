package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/leetboo/leetboo/internal/app/habit"
	"github.com/leetboo/leetboo/internal/daemon"
	"github.com/leetboo/leetboo/internal/domain"
)

// parseTypeArg resolves an activity-type argument, listing the valid
// values on failure.
func parseTypeArg(arg string) (domain.ActivityType, error) {
	t, err := domain.ParseActivityType(arg)
	if err != nil {
		return "", fmt.Errorf("%q is not an activity type (valid: %s, %s, %s)",
			arg, domain.DailyCheckIn, domain.DailyProblem, domain.WeeklyLuck)
	}
	return t, nil
}

// withDaemon runs fn against a freshly wired daemon after the app-open
// refresh pair, closing it afterwards.
func withDaemon(fn func(d *daemon.Daemon) error) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	d.Engine.RefreshDay()
	return fn(d)
}

// printSummary renders the dashboard snapshot.
func printSummary(sum habit.Summary) error {
	fmt.Printf("Coins: %d / %d (%.1f%%)\n", sum.CurrentCoins, sum.TargetCoins, sum.ProgressPct)
	if sum.EstimatedMonthlyCoins > 0 {
		fmt.Printf("Earning ~%d coins/month — about %d days to target\n",
			sum.EstimatedMonthlyCoins, sum.DaysToTarget)
	} else {
		fmt.Println("No activities enabled — no target ETA")
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTIVITY\tENABLED\tDONE TODAY\tSTREAK\tTHIS MONTH\tBANNER")
	for _, a := range sum.Activities {
		fmt.Fprintf(w, "%s\t%v\t%v\t%d\t%d\t%v\n",
			a.Title, a.IsEnabled, a.CompletedToday, a.Streak, a.MonthlyCount, a.BannerVisible)
	}
	return w.Flush()
}
