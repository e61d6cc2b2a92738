// Package catalog enumerates launchable items: executables on $PATH,
// freedesktop application entries, or lines piped on standard input.
// Every source yields Entry values; the name is the identity used for
// filtering and frecency ranking, so duplicate names from different
// directories rank as one entity while remaining distinct catalog items.
package catalog

// Entry is one selectable catalog item.
type Entry interface {
	Name() string
}

// PathEntry is an executable file discovered on $PATH.
type PathEntry struct {
	Base string
	Path string
}

func (e PathEntry) Name() string { return e.Base }

// DesktopEntry is a parsed freedesktop application entry.
type DesktopEntry struct {
	Title   string
	File    string
	Exec    string
	WorkDir string
	Icon    string
	Hidden  bool
}

func (e DesktopEntry) Name() string { return e.Title }

// LineEntry is a catalog item read from standard input.
type LineEntry string

func (e LineEntry) Name() string { return string(e) }

// FreeText is a synthetic entry carrying raw input committed while no
// catalog item matched. It is never written to the frecency cache.
type FreeText string

func (e FreeText) Name() string { return string(e) }
