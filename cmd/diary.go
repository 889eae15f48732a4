package main

import (
	"context"
	"fmt"
	"time"

	"github.com/trainpartner/tpx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Diary renders the diary calendar for the requested month. The current day
// is highlighted when showing the current month.
func (r *Runner) Diary(ctx context.Context, cmd *cli.Command) error {
	now := time.Now()
	year := int(cmd.Int("year"))
	month := int(cmd.Int("month"))

	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	highlight := 0
	if year == now.Year() && time.Month(month) == now.Month() {
		highlight = now.Day()
	}

	return r.writePlain("%s\n", ui.RenderCalendar(year, time.Month(month), highlight))
}
