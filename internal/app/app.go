package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/bookshelf/internal/catalog"
	"github.com/atomicstack/bookshelf/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Limits     catalog.Limits
	StartDir   string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Options converts the configuration into UI model options.
func (c Config) Options() ui.Options {
	return ui.Options{
		StartDir:   c.StartDir,
		Width:      c.Width,
		Height:     c.Height,
		ShowFooter: c.ShowFooter,
		Verbose:    c.Verbose,
	}
}

// NewModel builds the UI model over an empty catalog sized by cfg.Limits.
func NewModel(ctx context.Context, cfg Config) (*ui.Model, error) {
	if err := cfg.Limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	return ui.NewModel(ctx, catalog.New(cfg.Limits), cfg.Options()), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	model, err := NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
