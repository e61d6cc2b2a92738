// Package app wires a built catalog, the frecency store, and the UI
// into one interactive session.
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Beinsezii/linch/internal/catalog"
	"github.com/Beinsezii/linch/internal/commit"
	"github.com/Beinsezii/linch/internal/frecency"
	"github.com/Beinsezii/linch/internal/logging"
	"github.com/Beinsezii/linch/internal/rank"
	"github.com/Beinsezii/linch/internal/ui"
	"github.com/Beinsezii/linch/internal/ui/state"
)

// Config describes user-provided application options.
type Config struct {
	Prompt      string
	Rows        int
	MaxColumns  int
	Match       state.MatchMode
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	ExitUnfocus bool
	AllowCustom bool
}

// Run ranks the catalog, executes the Bubble Tea program, and returns
// the committed entry, nil when the session was cancelled.
func Run(cfg Config, entries []catalog.Entry, store *frecency.Store) (catalog.Entry, error) {
	counts, err := store.Counts()
	if err != nil {
		// An unreadable cache degrades to natural order rather than
		// blocking the session.
		logging.Error(err)
		counts = nil
	}
	ranked := rank.Order(entries, counts)
	grid := state.NewGrid(ranked, cfg.Rows, cfg.MaxColumns, cfg.Match)
	model := ui.NewModel(grid, commit.New(store), ui.Options{
		Prompt:       cfg.Prompt,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		ExitUnfocus:  cfg.ExitUnfocus,
		AllowCustom:  cfg.AllowCustom,
		CacheEnabled: store.Enabled(),
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Result(), nil
	}
	return model.Result(), nil
}
