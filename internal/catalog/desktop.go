package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Beinsezii/linch/internal/logging/events"
)

const defaultDataDirs = "/usr/local/share/:/usr/share/"

// ApplicationDirs resolves the freedesktop data directories holding
// application entries: $XDG_DATA_DIRS reversed, then $XDG_DATA_HOME last.
// The basedir spec resolves name clashes by first match; appending in
// reverse lets later (user) entries shadow earlier ones on screen instead.
func ApplicationDirs() []string {
	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = defaultDataDirs
	}
	split := splitNonEmpty(dataDirs)

	var dirs []string
	for i := len(split) - 1; i >= 0; i-- {
		dirs = append(dirs, split[i])
	}
	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		dirs = append(dirs, home)
	} else if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".local", "share"))
	}

	for i, dir := range dirs {
		dirs[i] = filepath.Join(dir, "applications")
	}
	return dirs
}

// ScanApplications parses every *.desktop file under the given directories.
// Hidden entries (Hidden or NoDisplay set) are dropped unless includeHidden.
// Directories are scanned concurrently with a deterministic merge order,
// matching ScanPath.
func ScanApplications(dirs []string, includeHidden bool) []Entry {
	start := time.Now()
	entries := scanDirs(dirs, func(dir string) []Entry {
		return scanAppDir(dir, includeHidden)
	})
	events.Catalog.Scanned("applications", len(entries), time.Since(start))
	return entries
}

func scanAppDir(dir string, includeHidden bool) []Entry {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			events.Catalog.SkippedEntry(path, err)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".desktop") {
			return nil
		}
		entry, err := ParseDesktopFile(path)
		if err != nil {
			events.Catalog.SkippedEntry(path, err)
			return nil
		}
		if entry.Hidden && !includeHidden {
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		events.Catalog.SkippedDir(dir, err)
		return nil
	}
	return entries
}

// ParseDesktopFile extracts the [Desktop Entry] group from a .desktop file.
// Parsing stops at the next group header; later duplicate keys overwrite
// earlier ones. Entries without a Name are rejected.
func ParseDesktopFile(path string) (DesktopEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DesktopEntry{}, err
	}

	keys := make(map[string]string)
	inGroup := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "[Desktop Entry]":
			inGroup = true
		case strings.HasPrefix(trimmed, "["):
			if inGroup {
				return buildDesktopEntry(path, keys)
			}
		case inGroup:
			if key, value, ok := strings.Cut(line, "="); ok {
				keys[strings.TrimSpace(key)] = strings.TrimLeft(value, " \t")
			}
		}
	}
	if !inGroup {
		return DesktopEntry{}, fmt.Errorf("desktop entry %s: no [Desktop Entry] group", path)
	}
	return buildDesktopEntry(path, keys)
}

func buildDesktopEntry(path string, keys map[string]string) (DesktopEntry, error) {
	name, ok := keys["Name"]
	if !ok || name == "" {
		return DesktopEntry{}, fmt.Errorf("desktop entry %s: missing Name", path)
	}
	return DesktopEntry{
		Title:   name,
		File:    path,
		Exec:    keys["Exec"],
		WorkDir: keys["Path"],
		Icon:    keys["Icon"],
		Hidden:  keys["Hidden"] == "true" || keys["NoDisplay"] == "true",
	}, nil
}
