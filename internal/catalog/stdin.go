package catalog

import (
	"bufio"
	"io"
	"strings"
)

// ReadLines builds a catalog from a reader, one entry per non-blank line.
// Lines are kept verbatim apart from the trailing newline.
func ReadLines(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []Entry
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, LineEntry(line))
	}
	return entries, scanner.Err()
}
