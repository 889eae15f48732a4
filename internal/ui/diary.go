package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderCalendar draws a month grid with the given day highlighted. A zero
// highlight leaves every day unstyled.
func RenderCalendar(year int, month time.Month, highlight int) string {
	var b strings.Builder

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	heading := fmt.Sprintf("%s %d", month.String(), year)
	b.WriteString(styles.title.Render(heading))
	b.WriteString("\n")
	b.WriteString(styles.header.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	// time.Weekday starts on Sunday; shift so Monday leads the row.
	offset := (int(first.Weekday()) + 6) % 7
	col := 0
	for i := 0; i < offset; i++ {
		b.WriteString("   ")
		col++
	}

	days := daysIn(year, month)
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		if day == highlight {
			cell = styles.selected.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(b.String())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
