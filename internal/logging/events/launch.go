package events

import "github.com/Beinsezii/linch/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Attempt(tool, target string) {
	logging.Trace("launch.attempt", map[string]interface{}{"tool": tool, "target": target})
}

func (LaunchTracer) Fallback(tool string, err error) {
	payload := map[string]interface{}{"tool": tool}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("launch.fallback", payload)
}

func (LaunchTracer) Spawned(name string, argv []string) {
	logging.Trace("launch.spawn", map[string]interface{}{"name": name, "argv": argv})
}

func (LaunchTracer) Printed(name string) {
	logging.Trace("launch.print", map[string]interface{}{"name": name})
}
