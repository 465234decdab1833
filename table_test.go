package symcode

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	if table.Len() != 27 {
		t.Fatalf("default table should have 27 entries, has %d", table.Len())
	}
	seen := make(map[string]string)
	for _, e := range table.Entries() {
		if other, dup := seen[e.Code]; dup {
			t.Fatalf("code %q used by %q and %q", e.Code, other, e.Symbol)
		}
		seen[e.Code] = e.Symbol
		if s, ok := table.Symbol(e.Code); !ok || s != e.Symbol {
			t.Fatalf("reverse lookup of %q: got %q, want %q", e.Code, s, e.Symbol)
		}
	}
}

func TestDefaultTableIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("default table should be constructed once")
	}
}

func TestEntriesSortedBySymbol(t *testing.T) {
	entries := Default().Entries()
	if entries[0].Symbol != "A" || entries[25].Symbol != "Z" {
		t.Fatalf("entries not sorted: first=%q, 26th=%q", entries[0].Symbol, entries[25].Symbol)
	}
	last := entries[len(entries)-1]
	if last.Symbol != Heart || last.Code != "+++" {
		t.Fatalf("heart should sort last, got %q %q", last.Symbol, last.Code)
	}
	if !reflect.DeepEqual(last.Aliases, []string{"❤"}) {
		t.Fatalf("heart aliases: got %v", last.Aliases)
	}
}

func TestEntriesAreCopies(t *testing.T) {
	entries := Default().Entries()
	entries[len(entries)-1].Aliases[0] = "X"
	entries[0].Code = "+++"
	if code, _ := Default().Code("A"); code != "..." {
		t.Fatalf("table modified through Entries: A => %q", code)
	}
	if Default().Entries()[len(entries)-1].Aliases[0] != "❤" {
		t.Fatalf("aliases modified through Entries")
	}
}

func TestAliasLookup(t *testing.T) {
	table := Default()
	code, ok := table.Code("❤")
	if !ok || code != "+++" {
		t.Fatalf("alias lookup: got %q, %v", code, ok)
	}
	if s, _ := table.Symbol(code); s != Heart {
		t.Fatalf("alias code should decode to the canonical heart, got %q", s)
	}
}

func TestCodesWithPrefix(t *testing.T) {
	got := Default().CodesWithPrefix("++")
	want := []string{"+++", "++-", "++."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("codes with prefix ++: got %v, want %v", got, want)
	}
	if n := len(Default().CodesWithPrefix("")); n != 27 {
		t.Fatalf("empty prefix should select all 27 codes, got %d", n)
	}
}

func TestNewTableRejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{
			name:    "duplicate code",
			entries: []Entry{{Symbol: "A", Code: "..."}, {Symbol: "B", Code: "..."}},
			want:    ErrDuplicateCode,
		},
		{
			name:    "duplicate symbol",
			entries: []Entry{{Symbol: "A", Code: "..."}, {Symbol: "A", Code: "..-"}},
			want:    ErrDuplicateSymbol,
		},
		{
			name:    "alias clashes with symbol",
			entries: []Entry{{Symbol: "A", Code: "..."}, {Symbol: "B", Code: "..-", Aliases: []string{"A"}}},
			want:    ErrDuplicateSymbol,
		},
		{
			name:    "short code",
			entries: []Entry{{Symbol: "A", Code: ".."}},
			want:    ErrInvalidCode,
		},
		{
			name:    "foreign code symbol",
			entries: []Entry{{Symbol: "A", Code: ".*."}},
			want:    ErrInvalidCode,
		},
		{
			name:    "lower case symbol",
			entries: []Entry{{Symbol: "a", Code: "..."}},
			want:    ErrInvalidSymbol,
		},
		{
			name:    "two characters",
			entries: []Entry{{Symbol: "AB", Code: "..."}},
			want:    ErrInvalidSymbol,
		},
		{
			name:    "space",
			entries: []Entry{{Symbol: " ", Code: "..."}},
			want:    ErrInvalidSymbol,
		},
		{
			name:    "empty",
			entries: []Entry{{Symbol: "", Code: "..."}},
			want:    ErrInvalidSymbol,
		},
	}
	for _, tt := range tests {
		_, err := NewTable(tt.name, tt.entries)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

type failingEntryReader struct{}

var errBrokenStream = errors.New("broken stream")

func (failingEntryReader) Next() (Entry, error) {
	return Entry{}, errBrokenStream
}

func TestLoadTablePropagatesReaderError(t *testing.T) {
	if _, err := LoadTable("broken", failingEntryReader{}); !errors.Is(err, errBrokenStream) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

func TestLoadTableEmpty(t *testing.T) {
	table, err := LoadTable("empty", &sliceEntryReader{})
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 0 {
		t.Fatalf("expected empty table, has %d entries", table.Len())
	}
	if got := NewCodec(table).Encode("A"); got != "?" {
		t.Fatalf("empty table should not know A, got %q", got)
	}
	if _, err := (&sliceEntryReader{}).Next(); err != io.EOF {
		t.Fatalf("expected io.EOF from empty reader, got %v", err)
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if _, ok := table.Code("A"); ok {
		t.Fatalf("nil table should not resolve symbols")
	}
	if _, ok := table.Symbol("..."); ok {
		t.Fatalf("nil table should not resolve codes")
	}
	if table.Len() != 0 || table.Entries() != nil {
		t.Fatalf("nil table should be empty")
	}
}
