package editor

import (
	"fmt"
	"strconv"

	"github.com/trainpartner/tpx/internal/models"
	"github.com/trainpartner/tpx/internal/shared"
)

// defaultExerciseName seeds new rows.
const defaultExerciseName = "New exercise"

// Column identifies an editable column of the exercise table.
type Column int

const (
	ColDay Column = iota
	ColExercise
	ColSeries
	ColRepeats
)

// Title returns the column header label.
func (c Column) Title() string {
	switch c {
	case ColDay:
		return "Day"
	case ColExercise:
		return "Exercise"
	case ColSeries:
		return "Series"
	case ColRepeats:
		return "Repeats per Series"
	default:
		return ""
	}
}

// numeric reports whether the column holds an integer value.
func (c Column) numeric() bool {
	return c != ColExercise
}

// RowController manages the exercise rows of a program being edited.
//
// Rows are identified by their key, never by slice position: keys are
// assigned from a monotonic counter at creation and survive reorders and
// deletions. The table is never empty while being edited; construction seeds
// a default row and deletion is rejected at one remaining row.
//
// Only one cell is typically being edited at a time, but that is a UI
// policy; the controller accepts commits for any row.
type RowController struct {
	rows    []models.Exercise
	nextKey int
}

// NewRowController creates a controller seeded with one default row.
func NewRowController() *RowController {
	c := &RowController{}
	c.AddRow()
	return c
}

// NewRowControllerFrom creates a controller over rows loaded from the
// backend, assigning fresh sequential keys 0..n-1 in the server's order.
// An empty slice falls back to the default seed row.
func NewRowControllerFrom(rows []models.Exercise) *RowController {
	if len(rows) == 0 {
		return NewRowController()
	}

	c := &RowController{rows: make([]models.Exercise, len(rows))}
	for i, row := range rows {
		row.Key = c.nextKey
		c.nextKey++
		c.rows[i] = row
	}
	return c
}

// Rows returns the rows in display order. The slice is shared; callers must
// not mutate it.
func (c *RowController) Rows() []models.Exercise {
	return c.rows
}

// Len returns the current row count.
func (c *RowController) Len() int {
	return len(c.rows)
}

// Row returns the row with the given key.
func (c *RowController) Row(key int) (models.Exercise, bool) {
	if i := c.index(key); i >= 0 {
		return c.rows[i], true
	}
	return models.Exercise{}, false
}

// AddRow appends a new default row and returns it. The key comes from the
// monotonic counter and is never reused.
func (c *RowController) AddRow() models.Exercise {
	row := models.Exercise{
		Key:  c.nextKey,
		Name: defaultExerciseName,
	}
	c.nextKey++
	c.rows = append(c.rows, row)
	return row
}

// CommitRow merges the editable fields of row into the stored row with the
// same key. Unknown keys are a silent no-op; the server-assigned ID is
// never overwritten by a cell edit.
func (c *RowController) CommitRow(row models.Exercise) {
	i := c.index(row.Key)
	if i < 0 {
		return
	}

	c.rows[i].Day = row.Day
	c.rows[i].Name = row.Name
	c.rows[i].Series = row.Series
	c.rows[i].RepeatsPerSeries = row.RepeatsPerSeries
}

// CommitCell validates and commits a single cell edit. An empty value keeps
// the cell in its editing session with an inline error; numeric columns
// additionally require a non-negative integer.
func (c *RowController) CommitCell(key int, col Column, raw string) error {
	i := c.index(key)
	if i < 0 {
		return nil
	}

	if raw == "" {
		return fmt.Errorf("%w: %s is required", shared.ErrValidation, col.Title())
	}

	if !col.numeric() {
		c.rows[i].Name = raw
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number", shared.ErrValidation, col.Title())
	}

	switch col {
	case ColDay:
		c.rows[i].Day = n
	case ColSeries:
		c.rows[i].Series = n
	case ColRepeats:
		c.rows[i].RepeatsPerSeries = n
	}
	return nil
}

// CanDelete reports whether row deletion is currently offered. A program
// must retain at least one exercise row while being edited.
func (c *RowController) CanDelete() bool {
	return len(c.rows) > 1
}

// DeleteRow removes the row with the given key. The deletion is rejected
// when it would empty the table or when the key is unknown.
func (c *RowController) DeleteRow(key int) bool {
	if !c.CanDelete() {
		return false
	}

	i := c.index(key)
	if i < 0 {
		return false
	}

	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	return true
}

func (c *RowController) index(key int) int {
	for i, row := range c.rows {
		if row.Key == key {
			return i
		}
	}
	return -1
}
