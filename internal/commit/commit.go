// Package commit applies the outcome of a session to the frecency
// store: launched items gain a count, forgotten items lose their
// record. Free-text commits bypass the store entirely.
package commit

import (
	"github.com/Beinsezii/linch/internal/catalog"
	"github.com/Beinsezii/linch/internal/frecency"
)

// Committer mediates between the selection surface and one store.
type Committer struct {
	store *frecency.Store
}

// New binds a committer to a store. The store may be disabled; every
// store call is then a no-op.
func New(store *frecency.Store) *Committer {
	return &Committer{store: store}
}

// Commit resolves the final entry of a session. A concrete selection is
// counted in the store and returned; a count write failure is returned
// alongside the entry, which still stands. With no selection, a
// non-empty input becomes a FreeText entry when custom commits are
// allowed, and is never cached. Otherwise the commit yields nothing.
func (c *Committer) Commit(selected catalog.Entry, input string, allowCustom bool) (catalog.Entry, error) {
	if selected != nil {
		return selected, c.store.Increment(selected.Name())
	}
	if allowCustom && input != "" {
		return catalog.FreeText(input), nil
	}
	return nil, nil
}

// Remove drops a name from the store and returns the counts that
// remain, so the caller can re-rank its catalog against them.
func (c *Committer) Remove(name string) (map[string]uint64, error) {
	if err := c.store.Delete(name); err != nil {
		return nil, err
	}
	return c.store.Counts()
}
