// Package ui contains the Bubble Tea program that powers the launcher.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, text input,
// and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so
//     every tea.Msg is handled by a focused function: key presses in
//     navigation.go, mouse and resize events alongside them, and the
//     results of store mutations in commands.go.
//   - Text entry (internal/ui/input.go) edits the grid's input line and
//     keeps caret bookkeeping away from the event loop.
//
// State ownership:
//   - All cursor, scroll, input, and filter state lives in
//     internal/ui/state.Grid; the model never touches indices directly.
//   - Frecency mutations run through internal/commit, wrapped by the
//     internal/ui/command bus so results flow back as messages with
//     trace logging around them.
//
// The final selection is carried by the model itself: when the program
// ends, the caller reads Model.Result instead of sharing a result slot
// across goroutines.
package ui
