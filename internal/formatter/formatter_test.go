package formatter

import (
	"strings"
	"testing"

	"github.com/trainpartner/tpx/internal/models"
)

func testProgram() *models.Program {
	return &models.Program{
		ID:    5,
		Title: "Leg day",
		Exercises: []models.Exercise{
			{ID: 21, Day: 1, Name: "Squat", Series: 3, RepeatsPerSeries: 10},
			{ID: 22, Day: 2, Name: "Lunge", Series: 2, RepeatsPerSeries: 12},
		},
	}
}

func TestFormatter(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		data, err := ProgramToCSV(testProgram())
		if err != nil {
			t.Fatalf("csv failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "Day,Exercise,Series,RepeatsPerSeries,TotalRepeats" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if lines[1] != "1,Squat,3,10,30" {
			t.Errorf("unexpected row: %s", lines[1])
		}
	})

	t.Run("Markdown", func(t *testing.T) {
		data := ProgramToMarkdown(testProgram())
		out := string(data)

		if !strings.HasPrefix(out, "# Leg day") {
			t.Errorf("expected title heading, got %q", out)
		}
		if !strings.Contains(out, "| 2 | Lunge | 2 | 12 | 24 |") {
			t.Errorf("expected lunge row, got %q", out)
		}
	})

	t.Run("Text", func(t *testing.T) {
		data, err := ProgramToText(testProgram())
		if err != nil {
			t.Fatalf("text failed: %v", err)
		}
		out := string(data)

		if !strings.Contains(out, "Leg day") {
			t.Errorf("expected title, got %q", out)
		}
		if !strings.Contains(out, "Squat") || !strings.Contains(out, "30") {
			t.Errorf("expected derived totals in table, got %q", out)
		}
	})

	t.Run("Text with empty title", func(t *testing.T) {
		data, err := ProgramToText(&models.Program{})
		if err != nil {
			t.Fatalf("text failed: %v", err)
		}
		if !strings.Contains(string(data), "New program") {
			t.Errorf("expected placeholder title, got %q", string(data))
		}
	})
}
