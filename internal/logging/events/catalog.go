package events

import (
	"time"

	"github.com/Beinsezii/linch/internal/logging"
)

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Scanned(source string, items int, elapsed time.Duration) {
	logging.Trace("catalog.scan", map[string]interface{}{
		"source":  source,
		"items":   items,
		"elapsed": elapsed.String(),
	})
}

func (CatalogTracer) SkippedDir(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("catalog.skip-dir", payload)
}

func (CatalogTracer) SkippedEntry(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("catalog.skip-entry", payload)
}
