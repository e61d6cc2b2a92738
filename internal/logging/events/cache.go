package events

import "github.com/Beinsezii/linch/internal/logging"

type CacheTracer struct{}

var Cache = CacheTracer{}

func (CacheTracer) Loaded(namespace string, records int) {
	logging.Trace("cache.load", map[string]interface{}{"namespace": namespace, "records": records})
}

func (CacheTracer) Saved(namespace string, records int) {
	logging.Trace("cache.save", map[string]interface{}{"namespace": namespace, "records": records})
}

func (CacheTracer) Increment(namespace, name string, count uint64) {
	logging.Trace("cache.increment", map[string]interface{}{
		"namespace": namespace,
		"name":      name,
		"count":     count,
	})
}

func (CacheTracer) Delete(namespace, name string, removed int) {
	logging.Trace("cache.delete", map[string]interface{}{
		"namespace": namespace,
		"name":      name,
		"removed":   removed,
	})
}

func (CacheTracer) Clear(namespace string) {
	logging.Trace("cache.clear", map[string]interface{}{"namespace": namespace})
}

func (CacheTracer) Unwritable(namespace, name string) {
	logging.Trace("cache.unwritable-name", map[string]interface{}{"namespace": namespace, "name": name})
}
