// Package frecency persists per-item launch counts between sessions.
//
// Each namespace owns one plain-text file in the user cache directory,
// named "linch_<namespace>". Grammar (v1): UTF-8 text, one record per
// line of the form
//
//	<count> <name>
//
// where <count> is a decimal unsigned integer and <name> is everything
// after the first run of whitespace, up to the end of the line. Writers
// emit a "#v1" header line; readers treat any line that does not match
// ^(\d+)\s+(.+)$ as noise and skip it, so the header is invisible to
// old and new parsers alike. Names containing newline or carriage
// return cannot be represented and are dropped at save time. Names with
// leading digits are unambiguous because the count field always ends at
// the first whitespace run.
package frecency

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"github.com/Beinsezii/linch/internal/logging/events"
)

// Record is one name/count pair from a namespace file.
type Record struct {
	Name  string
	Count uint64
}

// Store reads and mutates the launch counts of a single namespace.
// A store built from the empty namespace is disabled: every operation
// is a no-op and no file is ever touched.
type Store struct {
	namespace string
	path      string
}

var recordPattern = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// NewStore resolves the backing file for a namespace inside the user
// cache directory. The empty namespace yields a disabled store.
func NewStore(namespace string) (*Store, error) {
	if namespace == "" {
		return &Store{}, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache directory: %w", err)
	}
	return NewStoreAt(namespace, dir), nil
}

// NewStoreAt builds a store rooted at an explicit directory.
func NewStoreAt(namespace, dir string) *Store {
	if namespace == "" {
		return &Store{}
	}
	return &Store{
		namespace: namespace,
		path:      filepath.Join(dir, "linch_"+namespace),
	}
}

// Enabled reports whether the store persists anything at all.
func (s *Store) Enabled() bool { return s.namespace != "" }

// Namespace returns the namespace this store was built for.
func (s *Store) Namespace() string { return s.namespace }

// Path returns the backing file path, empty for disabled stores.
func (s *Store) Path() string { return s.path }

// Load returns every record in the namespace, highest count first and
// names ascending within equal counts. A missing file is an empty
// store, not an error.
func (s *Store) Load() ([]Record, error) {
	if !s.Enabled() {
		return nil, nil
	}

	lock := flock.New(s.lockPath())
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer lock.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}
	events.Cache.Loaded(s.namespace, len(records))
	return records, nil
}

// Counts returns the loaded records as a name-to-count map. When the
// file carries duplicate names the highest count wins.
func (s *Store) Counts() (map[string]uint64, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	if records == nil {
		return nil, nil
	}
	counts := make(map[string]uint64, len(records))
	for _, r := range records {
		if _, ok := counts[r.Name]; !ok {
			counts[r.Name] = r.Count
		}
	}
	return counts, nil
}

// Increment raises the count for a name by one, saturating at the
// maximum, inserting the name with count one when absent.
func (s *Store) Increment(name string) error {
	if !s.Enabled() {
		return nil
	}
	return s.update(func(records []Record) []Record {
		for i := range records {
			if records[i].Name == name {
				if records[i].Count < math.MaxUint64 {
					records[i].Count++
				}
				events.Cache.Increment(s.namespace, name, records[i].Count)
				return records
			}
		}
		events.Cache.Increment(s.namespace, name, 1)
		return append(records, Record{Name: name, Count: 1})
	})
}

// Delete drops every record matching the name exactly. Deleting an
// absent name rewrites the file unchanged and is not an error.
func (s *Store) Delete(name string) error {
	if !s.Enabled() {
		return nil
	}
	return s.update(func(records []Record) []Record {
		kept := records[:0]
		for _, r := range records {
			if r.Name != name {
				kept = append(kept, r)
			}
		}
		events.Cache.Delete(s.namespace, name, len(records)-len(kept))
		return kept
	})
}

// Clear removes the backing file. A missing file counts as success.
func (s *Store) Clear() error {
	if !s.Enabled() {
		return nil
	}

	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer lock.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear cache %s: %w", s.path, err)
	}
	events.Cache.Clear(s.namespace)
	return nil
}

// update runs a load-modify-save cycle under one exclusive lock.
func (s *Store) update(mutate func([]Record) []Record) error {
	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer lock.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	return s.save(mutate(records))
}

func (s *Store) read() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache %s: %w", s.path, err)
	}

	var records []Record
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		m := recordPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		count, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			continue
		}
		records = append(records, Record{Name: m[2], Count: count})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Count != records[j].Count {
			return records[i].Count > records[j].Count
		}
		return records[i].Name < records[j].Name
	})
	return records, nil
}

func (s *Store) save(records []Record) error {
	var b strings.Builder
	b.WriteString("#v1\n")
	written := 0
	for _, r := range records {
		if strings.ContainsAny(r.Name, "\n\r") {
			events.Cache.Unwritable(s.namespace, r.Name)
			continue
		}
		fmt.Fprintf(&b, "%d %s\n", r.Count, r.Name)
		written++
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write cache %s: %w", s.path, err)
	}
	events.Cache.Saved(s.namespace, written)
	return nil
}

func (s *Store) lockPath() string { return s.path + ".lock" }
