package editor

import (
	"context"
	"fmt"

	"github.com/trainpartner/tpx/internal/models"
	"github.com/trainpartner/tpx/internal/services"
	"github.com/trainpartner/tpx/internal/validate"
)

// Model is the in-memory state of one program being edited: its title field,
// its exercise rows and the availability checker for the title. The owning
// view holds exactly one Model for its lifetime.
type Model struct {
	ID      int64
	Title   models.FieldState
	Rows    *RowController
	checker *Checker
	svc     services.Service
}

// NewModel creates an empty editing model for a new program, seeded with one
// default exercise row.
func NewModel(svc services.Service, checker *Checker) *Model {
	return &Model{
		Rows:    NewRowController(),
		checker: checker,
		svc:     svc,
	}
}

// Load hydrates the model from an existing program. Exercise rows get fresh
// sequential keys in the server's order. The title of a persisted program is
// known-available, so it is marked successful without a uniqueness check.
func (m *Model) Load(ctx context.Context, id int64) error {
	program, err := m.svc.Program(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}

	m.ID = program.ID
	if m.ID == 0 {
		m.ID = id
	}
	m.Title = models.FieldState{Value: program.Title, Status: models.StatusSuccess}
	m.Rows = NewRowControllerFrom(program.Exercises)
	return nil
}

// SetTitle records a title keystroke, rerunning the format rule.
func (m *Model) SetTitle(value string) {
	Input(&m.Title, value, validate.ProgramTitle)
}

// BeginTitleCheck starts the title availability check (the blur handler).
// It reports whether a round-trip should be issued via [Model.CheckTitle].
func (m *Model) BeginTitleCheck() bool {
	return Begin(&m.Title, validate.ProgramTitle)
}

// CheckTitle performs the availability round-trip for the title value
// captured when the check began. Feed the outcome to [Model.ApplyTitle].
func (m *Model) CheckTitle(ctx context.Context, value string) Outcome {
	return m.checker.ProgramTitle(ctx, value, m.ID)
}

// ApplyTitle commits a title check outcome, dropping it when stale.
func (m *Model) ApplyTitle(o Outcome) bool {
	return Apply(&m.Title, o)
}

// Valid reports whether the form may be submitted.
func (m *Model) Valid() bool {
	return m.Title.Valid()
}

// Program assembles the wire payload: id, title and the exercise rows in
// display order. Derived columns are not part of the payload.
func (m *Model) Program() models.Program {
	exercises := make([]models.Exercise, len(m.Rows.Rows()))
	copy(exercises, m.Rows.Rows())

	return models.Program{
		ID:        m.ID,
		Title:     m.Title.Value,
		Exercises: exercises,
	}
}

// Save submits the program. On failure the model is left exactly as it was
// so the user can retry without re-entering anything; on success the saved
// record (with server-assigned ids) is returned and the model adopts its id.
func (m *Model) Save(ctx context.Context) (*models.Program, error) {
	saved, err := m.svc.SaveProgram(ctx, m.Program())
	if err != nil {
		return nil, fmt.Errorf("failed to save program: %w", err)
	}

	if saved != nil && saved.ID != 0 {
		m.ID = saved.ID
	}
	return saved, nil
}
