package events

import "github.com/Beinsezii/linch/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(name string, custom bool) {
	logging.Trace("app.exit", map[string]interface{}{"name": name, "custom": custom})
}

func (AppTracer) Cancel(reason string) {
	logging.Trace("app.cancel", map[string]interface{}{"reason": reason})
}
