package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Beinsezii/linch/internal/app"
	"github.com/Beinsezii/linch/internal/ui/state"
)

// Mode selects the catalog source and launch behaviour.
type Mode string

const (
	ModeBin   Mode = "bin"
	ModeApp   Mode = "app"
	ModeDmenu Mode = "dmenu"
)

// Config captures runtime configuration for the application.
type Config struct {
	Mode     Mode
	App      app.Config
	Cache    Cache
	Theme    Theme
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

// Cache scopes the frecency store for this run.
type Cache struct {
	Namespace string
	Clear     bool
}

// Theme holds color overrides, empty meaning default.
type Theme struct {
	Foreground string
	Background string
	Accent     string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose       bool
	IncludeHidden bool
}

const (
	envPrompt      = "LINCH_PROMPT"
	envRows        = "LINCH_ROWS"
	envColumns     = "LINCH_COLUMNS"
	envMatch       = "LINCH_MATCH"
	envCache       = "LINCH_CACHE"
	envAll         = "LINCH_ALL"
	envExitUnfocus = "LINCH_EXIT_UNFOCUS"
	envWidth       = "LINCH_WIDTH"
	envHeight      = "LINCH_HEIGHT"
	envFooter      = "LINCH_FOOTER"
	envForeground  = "LINCH_FG"
	envBackground  = "LINCH_BG"
	envAccent      = "LINCH_ACCENT"
	envVerbose     = "LINCH_VERBOSE"
	envTrace       = "LINCH_TRACE"
	envLogFile     = "LINCH_LOG_FILE"
)

// fileConfig is the TOML surface of the per-user config file. Pointer
// fields distinguish "unset" from zero values so the file only
// overrides what it names.
type fileConfig struct {
	Prompt      *string `toml:"prompt"`
	Rows        *int    `toml:"rows"`
	Columns     *int    `toml:"columns"`
	Match       *string `toml:"match"`
	Footer      *bool   `toml:"footer"`
	ExitUnfocus *bool   `toml:"exit_unfocus"`
	Foreground  *string `toml:"fg"`
	Background  *string `toml:"bg"`
	Accent      *string `toml:"accent"`
}

// defaults is the fully-resolved bottom layer of the precedence chain:
// built-in values overlaid with the config file.
type defaults struct {
	Prompt      string
	Rows        int
	Columns     int
	Match       string
	Footer      bool
	ExitUnfocus bool
	Foreground  string
	Background  string
	Accent      string
}

func builtinDefaults() defaults {
	return defaults{
		Prompt:  "Run",
		Rows:    15,
		Columns: 3,
		Match:   "pattern",
	}
}

func (d defaults) overlay(file fileConfig) defaults {
	if file.Prompt != nil {
		d.Prompt = *file.Prompt
	}
	if file.Rows != nil {
		d.Rows = *file.Rows
	}
	if file.Columns != nil {
		d.Columns = *file.Columns
	}
	if file.Match != nil {
		d.Match = *file.Match
	}
	if file.Footer != nil {
		d.Footer = *file.Footer
	}
	if file.ExitUnfocus != nil {
		d.ExitUnfocus = *file.ExitUnfocus
	}
	if file.Foreground != nil {
		d.Foreground = *file.Foreground
	}
	if file.Background != nil {
		d.Background = *file.Background
	}
	if file.Accent != nil {
		d.Accent = *file.Accent
	}
	return d
}

// readFileConfig decodes a TOML config file. A missing file yields the
// zero fileConfig; a malformed one is an error so typos do not pass
// silently.
func readFileConfig(path string) (fileConfig, error) {
	var file fileConfig
	if path == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return file, nil
		}
		return file, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linch", "linch.toml")
}

func parseMode(arg string) (Mode, error) {
	switch Mode(arg) {
	case ModeBin, ModeApp, ModeDmenu:
		return Mode(arg), nil
	}
	return "", fmt.Errorf("unknown mode %q (expected bin, app, or dmenu)", arg)
}

// defaultNamespace is the per-mode frecency namespace; dmenu runs
// uncached unless a namespace is requested explicitly.
func defaultNamespace(mode Mode) string {
	switch mode {
	case ModeBin:
		return "bin"
	case ModeApp:
		return "app"
	default:
		return ""
	}
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence
// is built-in defaults, then the config file, then environment
// variables, then flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	if len(args) == 0 {
		return Config{}, fmt.Errorf("usage: linch <bin|app|dmenu> [flags]")
	}
	mode, err := parseMode(args[0])
	if err != nil {
		return Config{}, err
	}

	file, err := readFileConfig(defaultConfigPath())
	if err != nil {
		return Config{}, err
	}
	base := builtinDefaults().overlay(file)

	fs := flag.NewFlagSet("linch "+string(mode), flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	prompt := fs.String("prompt", envOrDefault(env, envPrompt, base.Prompt), "placeholder text for the input line")
	rows := fs.Int("rows", envOrInt(env, envRows, base.Rows), "grid rows")
	columns := fs.Int("columns", envOrInt(env, envColumns, base.Columns), "maximum grid columns")
	match := fs.String("match", envOrDefault(env, envMatch, base.Match), "filter mode: pattern, literal, or fuzzy")
	cache := fs.String("cache", envOrDefault(env, envCache, defaultNamespace(mode)), "frecency namespace (empty disables caching)")
	clearCache := fs.Bool("clear-cache", false, "remove the namespace's cache file before starting")
	all := fs.Bool("all", envOrBool(env, envAll, false), "app mode: include Hidden/NoDisplay desktop entries")
	exitUnfocus := fs.Bool("exit-unfocus", envOrBool(env, envExitUnfocus, base.ExitUnfocus), "end the session when the terminal loses focus")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, base.Footer), "enable footer hint row (disabled by default)")
	fg := fs.String("fg", envOrDefault(env, envForeground, base.Foreground), "text color override (hex or ANSI-256)")
	bg := fs.String("bg", envOrDefault(env, envBackground, base.Background), "highlight text color override (hex or ANSI-256)")
	accent := fs.String("accent", envOrDefault(env, envAccent, base.Accent), "accent color override (hex or ANSI-256)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args[1:]); err != nil {
		return Config{}, err
	}

	matchMode, err := state.ParseMatchMode(*match)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Mode: mode,
		App: app.Config{
			Prompt:      *prompt,
			Rows:        *rows,
			MaxColumns:  *columns,
			Match:       matchMode,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			ExitUnfocus: *exitUnfocus,
		},
		Cache: Cache{
			Namespace: *cache,
			Clear:     *clearCache,
		},
		Theme: Theme{
			Foreground: *fg,
			Background: *bg,
			Accent:     *accent,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:       *verbose,
			IncludeHidden: *all,
		},
		Flags: map[string]string{
			"prompt":       *prompt,
			"rows":         strconv.Itoa(*rows),
			"columns":      strconv.Itoa(*columns),
			"match":        matchMode.String(),
			"cache":        *cache,
			"clear-cache":  strconv.FormatBool(*clearCache),
			"all":          strconv.FormatBool(*all),
			"exit-unfocus": strconv.FormatBool(*exitUnfocus),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"fg":           *fg,
			"bg":           *bg,
			"accent":       *accent,
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Rows < 1 {
		return fmt.Errorf("rows must be >= 1 (got %d)", cfg.App.Rows)
	}
	if cfg.App.MaxColumns < 1 {
		return fmt.Errorf("columns must be >= 1 (got %d)", cfg.App.MaxColumns)
	}
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	return nil
}
