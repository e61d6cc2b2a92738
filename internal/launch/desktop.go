package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Beinsezii/linch/internal/catalog"
	"github.com/Beinsezii/linch/internal/logging/events"
)

// Desktop launches a desktop entry through the usual chain of helpers:
// dex, gio launch, and exo-open are tried detached; gtk-launch is run
// to completion since it reports missing entries through its exit
// code. When no helper is available the Exec line is executed
// directly.
func Desktop(entry catalog.DesktopEntry) error {
	helpers := [][]string{
		{"dex", entry.File},
		{"gio", "launch", entry.File},
		{"exo-open", entry.File},
	}
	for _, argv := range helpers {
		events.Launch.Attempt(argv[0], entry.File)
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
		if err := cmd.Start(); err != nil {
			events.Launch.Fallback(argv[0], err)
			continue
		}
		return cmd.Process.Release()
	}

	stem := strings.TrimSuffix(filepath.Base(entry.File), ".desktop")
	events.Launch.Attempt("gtk-launch", stem)
	err := exec.Command("gtk-launch", stem).Run()
	if err == nil {
		return nil
	}
	events.Launch.Fallback("gtk-launch", err)

	argv, err := execArgv(entry)
	if err != nil {
		return err
	}
	events.Launch.Attempt("exec", argv[0])
	return Spawn(entry.WorkDir, argv...)
}

// execArgv turns an Exec= line into an argv: whitespace-split with
// freedesktop %-field codes dropped, and a relative argv[0] resolved
// against the entry's working directory when a file exists there.
func execArgv(entry catalog.DesktopEntry) ([]string, error) {
	fields := strings.Fields(entry.Exec)
	argv := fields[:0]
	for _, f := range fields {
		if strings.HasPrefix(f, "%") {
			continue
		}
		argv = append(argv, f)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("desktop entry %s: empty Exec line", entry.File)
	}
	if entry.WorkDir != "" && !filepath.IsAbs(argv[0]) {
		candidate := filepath.Join(entry.WorkDir, argv[0])
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			argv[0] = candidate
		}
	}
	return argv, nil
}
