package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trainpartner/tpx/internal/editor"
	"github.com/trainpartner/tpx/internal/shared"
	"github.com/trainpartner/tpx/internal/ui"
)

// runEditor launches the interactive program editor. A zero id starts a new
// program.
func (r *Runner) runEditor(ctx context.Context, id int64) error {
	_, closer, err := r.restoreSession()
	if err != nil {
		return err
	}
	defer closer()

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.UI.LogPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, editor.NewModel(r.svc, editor.NewChecker(r.svc)), id)
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running editor: %w", err)
	}

	if m, ok := final.(*ui.Model); ok && m.Failed() {
		return fmt.Errorf("editor exited with an error")
	}
	return nil
}
