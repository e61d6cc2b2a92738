package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Beinsezii/linch/internal/app"
	"github.com/Beinsezii/linch/internal/catalog"
	"github.com/Beinsezii/linch/internal/config"
	"github.com/Beinsezii/linch/internal/frecency"
	"github.com/Beinsezii/linch/internal/launch"
	"github.com/Beinsezii/linch/internal/logging"
	"github.com/Beinsezii/linch/internal/logging/events"
	"github.com/Beinsezii/linch/internal/theme"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	theme.Apply(runtimeCfg.Theme.Foreground, runtimeCfg.Theme.Background, runtimeCfg.Theme.Accent)

	traceStartup(runtimeCfg)

	if err := run(runtimeCfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	entries, err := buildCatalog(cfg)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	store, err := frecency.NewStore(cfg.Cache.Namespace)
	if err != nil {
		return err
	}
	if cfg.Cache.Clear {
		if err := store.Clear(); err != nil {
			return err
		}
	}

	appCfg := cfg.App
	// Free-text commits only make sense when dmenu runs without a
	// catalog to pick from.
	appCfg.AllowCustom = cfg.Mode == config.ModeDmenu && len(entries) == 0

	entry, err := app.Run(appCfg, entries, store)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}
	return deliver(cfg.Mode, entry)
}

func buildCatalog(cfg config.Config) ([]catalog.Entry, error) {
	switch cfg.Mode {
	case config.ModeBin:
		return catalog.ScanPath(os.Getenv("PATH")), nil
	case config.ModeApp:
		return catalog.ScanApplications(catalog.ApplicationDirs(), cfg.Features.IncludeHidden), nil
	case config.ModeDmenu:
		return catalog.ReadLines(os.Stdin)
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

// deliver hands a committed entry to its consumer: stdout for dmenu,
// the process spawner otherwise.
func deliver(mode config.Mode, entry catalog.Entry) error {
	_, custom := entry.(catalog.FreeText)
	events.App.Exit(entry.Name(), custom)
	if mode == config.ModeDmenu {
		events.Launch.Printed(entry.Name())
		fmt.Println(entry.Name())
		return nil
	}
	return launch.Launch(entry)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"mode":   string(cfg.Mode),
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
