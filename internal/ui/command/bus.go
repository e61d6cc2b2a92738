// Package command wraps store mutations into Bubble Tea commands so
// their results come back through the event loop as messages.
package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Beinsezii/linch/internal/logging/events"
)

// Request names one store mutation and carries its work function.
type Request struct {
	ID    string
	Label string
	Run   func() tea.Msg
}

// Bus coordinates the execution of commit and delete requests.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting
// trace logs around it.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := req.Run()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
