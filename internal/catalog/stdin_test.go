package catalog

import (
	"strings"
	"testing"
)

func TestReadLinesSkipsBlanks(t *testing.T) {
	input := "alpha\n\n   \nbeta\n"
	entries, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %#v", entries)
	}
	if entries[0].Name() != "alpha" || entries[1].Name() != "beta" {
		t.Fatalf("unexpected names %v", names(entries))
	}
}

func TestReadLinesKeepsInteriorWhitespace(t *testing.T) {
	entries, err := ReadLines(strings.NewReader("  padded name  \n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "  padded name  " {
		t.Fatalf("expected verbatim line, got %#v", entries)
	}
}

func TestReadLinesHandlesCRLF(t *testing.T) {
	entries, err := ReadLines(strings.NewReader("one\r\ntwo\r\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 2 || entries[0].Name() != "one" || entries[1].Name() != "two" {
		t.Fatalf("expected CR stripped, got %#v", names(entries))
	}
}

func TestReadLinesEmptyInput(t *testing.T) {
	entries, err := ReadLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty catalog, got %#v", entries)
	}
}
