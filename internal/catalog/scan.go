package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Beinsezii/linch/internal/logging/events"
)

// ScanPath enumerates executable files under every directory named in
// pathVar. Directories are scanned concurrently; the merged result keeps
// PATH order, then walk order within each directory, so repeated runs see
// the same catalog. Unreadable directories are skipped.
func ScanPath(pathVar string) []Entry {
	start := time.Now()
	entries := scanDirs(splitNonEmpty(pathVar), scanBinDir)
	events.Catalog.Scanned("path", len(entries), time.Since(start))
	return entries
}

func scanBinDir(dir string) []Entry {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			events.Catalog.SkippedEntry(path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		// Stat rather than d.Info so symlinked binaries resolve to
		// their target mode.
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || info.Mode()&0o111 == 0 {
			return nil
		}
		entries = append(entries, PathEntry{Base: d.Name(), Path: path})
		return nil
	})
	if err != nil {
		events.Catalog.SkippedDir(dir, err)
		return nil
	}
	return entries
}

// scanDirs walks every directory in its own goroutine and flattens the
// per-directory results in input order once all walks finish.
func scanDirs(dirs []string, scan func(string) []Entry) []Entry {
	results := make([][]Entry, len(dirs))
	var wg sync.WaitGroup
	for i, dir := range dirs {
		wg.Add(1)
		go func(slot int, dir string) {
			defer wg.Done()
			results[slot] = scan(dir)
		}(i, dir)
	}
	wg.Wait()

	var entries []Entry
	for _, chunk := range results {
		entries = append(entries, chunk...)
	}
	return entries
}

func splitNonEmpty(list string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(list) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
