// Package rank orders catalog entries for display: most-launched first,
// natural name order as the tie break.
package rank

import (
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/Beinsezii/linch/internal/catalog"
)

// Order sorts entries in place and returns them. With a non-nil counts
// map the primary key is the frecency count, descending; names absent
// from the map count as zero. Within equal counts, and always when
// counts is nil (caching disabled), natural name order decides. The
// sort is stable, so equal keys keep their catalog order.
func Order(entries []catalog.Entry, counts map[string]uint64) []catalog.Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		if counts != nil {
			ci, cj := counts[entries[i].Name()], counts[entries[j].Name()]
			if ci != cj {
				return ci > cj
			}
		}
		return Less(entries[i].Name(), entries[j].Name())
	})
	return entries
}

// Less compares names naturally: case-folded first so "alpha" sorts
// near "Alpha", numeric runs by value so "file2" precedes "file10",
// with the exact form as the final tie break for determinism.
func Less(a, b string) bool {
	fa, fb := strings.ToLower(a), strings.ToLower(b)
	if fa != fb {
		return natural.Less(fa, fb)
	}
	return natural.Less(a, b)
}
