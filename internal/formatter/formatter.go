// package formatter renders programs to various output formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/trainpartner/tpx/internal/models"
)

// ProgramToCSV converts a program to CSV with columns: Day, Exercise, Series, RepeatsPerSeries, TotalRepeats
func ProgramToCSV(program *models.Program) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Day", "Exercise", "Series", "RepeatsPerSeries", "TotalRepeats"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, e := range program.Exercises {
		record := []string{
			strconv.Itoa(e.Day),
			e.Name,
			strconv.Itoa(e.Series),
			strconv.Itoa(e.RepeatsPerSeries),
			strconv.Itoa(e.TotalRepeats()),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ProgramToMarkdown converts a program to a Markdown document with an exercise table.
func ProgramToMarkdown(program *models.Program) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", program.Title))
	if program.ID != 0 {
		buf.WriteString(fmt.Sprintf("**Program**: #%d\n", program.ID))
	}
	buf.WriteString(fmt.Sprintf("**Exercises**: %d\n\n", len(program.Exercises)))

	buf.WriteString("| Day | Exercise | Series | Repeats per Series | Total Repeats |\n")
	buf.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range program.Exercises {
		buf.WriteString(fmt.Sprintf("| %d | %s | %d | %d | %d |\n",
			e.Day, e.Name, e.Series, e.RepeatsPerSeries, e.TotalRepeats()))
	}

	return buf.Bytes()
}

// ProgramToText converts a program to an aligned plain-text table.
func ProgramToText(program *models.Program) ([]byte, error) {
	var buf bytes.Buffer

	title := program.Title
	if title == "" {
		title = "New program"
	}
	buf.WriteString(title + "\n\n")

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tEXERCISE\tSERIES\tREPEATS\tTOTAL")
	for _, e := range program.Exercises {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", e.Day, e.Name, e.Series, e.RepeatsPerSeries, e.TotalRepeats())
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush table: %w", err)
	}

	return buf.Bytes(), nil
}
