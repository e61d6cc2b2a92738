package events

import "github.com/Beinsezii/linch/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(cursor, scroll int) {
	logging.Trace("grid.cursor", map[string]interface{}{"cursor": cursor, "scroll": scroll})
}

func (UITracer) Scroll(page int) {
	logging.Trace("grid.scroll", map[string]interface{}{"page": page})
}

func (UITracer) Focus(input bool) {
	logging.Trace("grid.focus", map[string]interface{}{"input": input})
}

func (UITracer) Commit(name string, index int, custom bool) {
	logging.Trace("grid.commit", map[string]interface{}{
		"name":   name,
		"index":  index,
		"custom": custom,
	})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(input string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"input": input})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(input string) {
	logging.Trace("filter.append", map[string]interface{}{"input": input})
}

func (FilterTracer) Backspace(input string) {
	logging.Trace("filter.backspace", map[string]interface{}{"input": input})
}

func (FilterTracer) Compile(input string, ok bool) {
	logging.Trace("filter.compile", map[string]interface{}{"input": input, "ok": ok})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
