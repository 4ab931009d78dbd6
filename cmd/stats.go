// ABOUTME: Stats command for the agenus-admin CLI
// ABOUTME: Shows aggregated catalog metrics for CI checks and quick inspection

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/logger"
	"github.com/juliomonteiiro/agenus-admin/internal/storage"
	"github.com/spf13/cobra"
)

var statsMinActive int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog-wide metrics",
	Long: `Display aggregated catalog metrics: totals by status, activity rate,
products created per month, and the most recently created products.

With --min-active-rate the command exits 1 when the activity rate falls
below the threshold, for use in CI.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init()
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runStats(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsMinActive, "min-active-rate", 0, "Fail when activity rate is below this percentage")
	rootCmd.AddCommand(statsCmd)
}

// runStats fetches the working set, aggregates, and returns an exit code
func runStats(ctx context.Context, w io.Writer) int {
	store := storage.New(storage.DefaultConfigDir())
	api, _, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	controller := newController(api)
	items, err := controller.WorkingSet(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	m := catalog.ComputeMetrics(items)

	if IsJSONOutput() {
		fmt.Fprintln(w, formatStatsJSON(m))
	} else {
		fmt.Fprintln(w, formatStatsHuman(m))
	}

	if statsMinActive > 0 && m.ActivityRate < statsMinActive {
		fmt.Fprintf(w, "\nActivity rate %d%% is below the required %d%%\n", m.ActivityRate, statsMinActive)
		return 1
	}
	return 0
}

// formatStatsHuman formats metrics for human readability
func formatStatsHuman(m catalog.Metrics) string {
	out := fmt.Sprintf(`Products:      %d
Active:        %d
Inactive:      %d
Activity rate: %d%%`,
		m.Total, m.Active, m.Inactive, m.ActivityRate)

	if len(m.ByMonth) > 0 {
		out += "\n\nCreated per month:"
		for _, mc := range m.ByMonth {
			out += fmt.Sprintf("\n  %s  %d", mc.Month, mc.Count)
		}
	}

	if len(m.Recent) > 0 {
		out += "\n\nRecently created:"
		for _, p := range m.Recent {
			status := "inactive"
			if p.Status {
				status = "active"
			}
			out += fmt.Sprintf("\n  %s [%s]", p.Title, status)
		}
	}

	return out
}

// formatStatsJSON formats metrics as JSON
func formatStatsJSON(m catalog.Metrics) string {
	data, _ := json.MarshalIndent(m, "", "  ")
	return string(data)
}
