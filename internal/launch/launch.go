// Package launch hands committed catalog entries to the operating
// system. Processes are started detached in their own session so the
// launcher can exit immediately without killing what it started.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/Beinsezii/linch/internal/catalog"
	"github.com/Beinsezii/linch/internal/logging/events"
)

// Launch dispatches a committed entry by its kind. Path entries run
// their resolved file, desktop entries go through the desktop-launch
// chain, and free-text entries are split into an argv and spawned.
func Launch(entry catalog.Entry) error {
	switch e := entry.(type) {
	case catalog.PathEntry:
		return Spawn("", e.Path)
	case catalog.DesktopEntry:
		return Desktop(e)
	case nil:
		return errors.New("launch: nil entry")
	default:
		argv := strings.Fields(e.Name())
		if len(argv) == 0 {
			return errors.New("launch: blank command")
		}
		return Spawn("", argv...)
	}
}

// Spawn starts argv detached, optionally in a working directory, and
// releases the child without waiting on it.
func Spawn(dir string, argv ...string) error {
	if len(argv) == 0 {
		return errors.New("launch: empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", argv[0], err)
	}
	events.Launch.Spawned(argv[0], argv)
	return cmd.Process.Release()
}
