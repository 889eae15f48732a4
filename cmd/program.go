package main

import (
	"context"
	"fmt"

	"github.com/trainpartner/tpx/internal/formatter"
	"github.com/urfave/cli/v3"
)

// ProgramShow fetches a program and prints it in the requested format.
func (r *Runner) ProgramShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("program id is required")
	}

	_, closer, err := r.restoreSession()
	if err != nil {
		return err
	}
	defer closer()

	r.logger.Info("fetching program", "id", id)
	program, err := r.svc.Program(ctx, int64(id))
	if err != nil {
		return fmt.Errorf("failed to fetch program %d: %w", id, err)
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(program, cmd.Bool("pretty"))
	case cmd.Bool("csv"):
		data, err := formatter.ProgramToCSV(program)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case cmd.Bool("markdown"):
		return r.writePlain("%s", formatter.ProgramToMarkdown(program))
	default:
		data, err := formatter.ProgramToText(program)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}
}

// ProgramEdit opens an existing program in the interactive editor.
func (r *Runner) ProgramEdit(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("program id is required")
	}
	return r.runEditor(ctx, int64(id))
}

// ProgramNew opens the interactive editor for a new program.
func (r *Runner) ProgramNew(ctx context.Context, cmd *cli.Command) error {
	return r.runEditor(ctx, 0)
}
