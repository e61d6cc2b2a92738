package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Beinsezii/linch/internal/catalog"
	"github.com/Beinsezii/linch/internal/logging"
	"github.com/Beinsezii/linch/internal/logging/events"
	"github.com/Beinsezii/linch/internal/rank"
	"github.com/Beinsezii/linch/internal/ui/command"
)

// commitResultMsg carries the committer's resolution of the session.
type commitResultMsg struct {
	entry  catalog.Entry
	custom bool
	err    error
}

// deleteResultMsg carries the store contents left after a deletion.
type deleteResultMsg struct {
	name   string
	counts map[string]uint64
	err    error
}

// commitSelection resolves the entry under the cursor and runs the
// commit through the bus. The session ends when the result arrives,
// with or without an entry.
func (m *Model) commitSelection() tea.Cmd {
	if m.committing {
		return nil
	}
	m.committing = true
	var selected catalog.Entry
	label := ""
	if entry, ok := m.grid.Selected(); ok {
		selected = entry
		label = entry.Name()
	}
	input := m.grid.Input
	index := m.grid.AbsoluteIndex()
	allowCustom := m.allowCustom
	return m.bus.Execute(command.Request{
		ID:    "commit",
		Label: label,
		Run: func() tea.Msg {
			entry, err := m.committer.Commit(selected, input, allowCustom)
			_, custom := entry.(catalog.FreeText)
			if entry != nil {
				events.UI.Commit(entry.Name(), index, custom)
			}
			return commitResultMsg{entry: entry, custom: custom, err: err}
		},
	})
}

func (m *Model) handleCommitResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(commitResultMsg)
	if !ok {
		return nil
	}
	m.committing = false
	if result.err != nil {
		// The count write failed; the selection still stands.
		logging.Error(result.err)
		events.Action.Error(result.err)
	}
	m.result = result.entry
	m.resultCustom = result.custom
	return tea.Quit
}

// deleteSelection forgets the entry under the cursor. The session
// continues with the catalog re-ranked against the remaining counts.
func (m *Model) deleteSelection() tea.Cmd {
	if !m.cacheEnabled {
		return nil
	}
	entry, ok := m.grid.Selected()
	if !ok {
		return nil
	}
	name := entry.Name()
	return m.bus.Execute(command.Request{
		ID:    "forget",
		Label: name,
		Run: func() tea.Msg {
			counts, err := m.committer.Remove(name)
			return deleteResultMsg{name: name, counts: counts, err: err}
		},
	})
}

func (m *Model) handleDeleteResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(deleteResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		logging.Error(result.err)
		events.Action.Error(result.err)
		return nil
	}
	m.errMsg = ""
	m.grid.ReplaceEntries(rank.Order(m.grid.Entries(), result.counts))
	if m.verbose {
		m.setInfo(fmt.Sprintf("Forgot %s", result.name))
	}
	events.Action.Success("forgot " + result.name)
	return nil
}
