package symcode

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/rivo/uniseg"
)

// CodeAlphabet holds the code symbols a code may be built from.
const CodeAlphabet = ".-+"

// CodeLength is the number of code symbols per code.
const CodeLength = 3

// Heart is the heart glyph of the default table (U+2764 U+FE0F).
const Heart = "❤️"

// Errors reported when constructing a table.
var (
	ErrInvalidSymbol   = errors.New("invalid symbol")
	ErrInvalidCode     = errors.New("invalid code")
	ErrDuplicateSymbol = errors.New("duplicate symbol")
	ErrDuplicateCode   = errors.New("duplicate code")
)

// Entry is one row of an alphabet table.
//
// Aliases are alternative spellings of Symbol. They encode to Code, but
// decoding Code always yields Symbol.
type Entry struct {
	Symbol  string
	Code    string
	Aliases []string
}

// EntryReader yields table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (Entry, error)
}

// Table is an immutable bidirectional alphabet table.
// It is safe for concurrent use.
type Table struct {
	forward    map[string]string // symbol => code
	aliases    map[string]string // alias => symbol
	maxRunes   int               // length of the longest symbol or alias in runes
	reverse    *trie.Trie        // code => symbol
	entries    []Entry           // sorted by symbol
	Identifier string            // Identifies the table
}

var defaultEntries = []Entry{
	{Symbol: "A", Code: "..."},
	{Symbol: "B", Code: "..-"},
	{Symbol: "C", Code: "..+"},
	{Symbol: "D", Code: ".-."},
	{Symbol: "E", Code: ".--"},
	{Symbol: "F", Code: ".-+"},
	{Symbol: "G", Code: ".+."},
	{Symbol: "H", Code: ".+-"},
	{Symbol: "I", Code: ".++"},
	{Symbol: "J", Code: "-.."},
	{Symbol: "K", Code: "-.-"},
	{Symbol: "L", Code: "-.+"},
	{Symbol: "M", Code: "--."},
	{Symbol: "N", Code: "---"},
	{Symbol: "O", Code: "--+"},
	{Symbol: "P", Code: "-+."},
	{Symbol: "Q", Code: "-+-"},
	{Symbol: "R", Code: "-++"},
	{Symbol: "S", Code: "+.."},
	{Symbol: "T", Code: "+.-"},
	{Symbol: "U", Code: "+.+"},
	{Symbol: "V", Code: "+-."},
	{Symbol: "W", Code: "+--"},
	{Symbol: "X", Code: "+-+"},
	{Symbol: "Y", Code: "++."},
	{Symbol: "Z", Code: "++-"},
	{Symbol: Heart, Code: "+++", Aliases: []string{"❤"}},
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the built-in table (A to Z plus heart).
// It panics if the built-in entries are inconsistent.
func Default() *Table {
	defaultTableOnce.Do(func() {
		t, err := NewTable("default", defaultEntries)
		assert(err == nil, fmt.Sprintf("built-in alphabet table is broken: %v", err))
		defaultTable = t
	})
	return defaultTable
}

// NewTable builds a table from a list of entries.
//
// Symbols must be single grapheme clusters which are not changed by upper
// casing. Codes must consist of exactly CodeLength symbols from CodeAlphabet.
// Neither symbols, aliases nor codes may repeat.
func NewTable(name string, entries []Entry) (*Table, error) {
	return LoadTable(name, &sliceEntryReader{entries: entries})
}

// LoadTable builds a table from a streaming, format-agnostic source.
//
// File format parsing is outside of this package. Use adapters like
// package tabfile to parse concrete formats and feed this API.
func LoadTable(name string, reader EntryReader) (table *Table, err error) {
	table = &Table{
		forward:    make(map[string]string),
		aliases:    make(map[string]string),
		reverse:    trie.New(),
		Identifier: fmt.Sprintf("table: %s", name),
	}
	var entry Entry
	for {
		entry, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err = table.add(entry); err != nil {
			tracer().Errorf("%s rejected: %v", table.Identifier, err)
			return nil, err
		}
	}
	sort.Slice(table.entries, func(i, j int) bool {
		return table.entries[i].Symbol < table.entries[j].Symbol
	})
	tracer().Infof("%s with %d entries", table.Identifier, len(table.entries))
	return table, nil
}

func (t *Table) add(entry Entry) error {
	if err := checkSymbol(entry.Symbol); err != nil {
		return err
	}
	if err := checkCode(entry.Code); err != nil {
		return fmt.Errorf("symbol %q: %w", entry.Symbol, err)
	}
	if t.known(entry.Symbol) {
		return fmt.Errorf("%w: %q", ErrDuplicateSymbol, entry.Symbol)
	}
	if _, found := t.reverse.Find(entry.Code); found {
		return fmt.Errorf("%w: %q for symbol %q", ErrDuplicateCode, entry.Code, entry.Symbol)
	}
	aliases := make([]string, 0, len(entry.Aliases))
	for _, alias := range entry.Aliases {
		if err := checkSymbol(alias); err != nil {
			return fmt.Errorf("alias of %q: %w", entry.Symbol, err)
		}
		if alias == entry.Symbol || t.known(alias) {
			return fmt.Errorf("%w: alias %q", ErrDuplicateSymbol, alias)
		}
		t.aliases[alias] = entry.Symbol
		t.maxRunes = max(t.maxRunes, utf8.RuneCountInString(alias))
		aliases = append(aliases, alias)
	}
	t.forward[entry.Symbol] = entry.Code
	t.maxRunes = max(t.maxRunes, utf8.RuneCountInString(entry.Symbol))
	t.reverse.Add(entry.Code, entry.Symbol)
	t.entries = append(t.entries, Entry{
		Symbol:  entry.Symbol,
		Code:    entry.Code,
		Aliases: aliases,
	})
	return nil
}

func (t *Table) known(symbol string) bool {
	if _, ok := t.forward[symbol]; ok {
		return true
	}
	_, ok := t.aliases[symbol]
	return ok
}

func checkSymbol(symbol string) error {
	if symbol == "" || strings.ContainsAny(symbol, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	if uniseg.GraphemeClusterCount(symbol) != 1 {
		return fmt.Errorf("%w: %q is not a single character", ErrInvalidSymbol, symbol)
	}
	if upper(symbol) != symbol {
		return fmt.Errorf("%w: %q is not in upper case", ErrInvalidSymbol, symbol)
	}
	return nil
}

func checkCode(code string) error {
	if utf8.RuneCountInString(code) != CodeLength {
		return fmt.Errorf("%w: %q must have %d code symbols", ErrInvalidCode, code, CodeLength)
	}
	for _, r := range code {
		if !strings.ContainsRune(CodeAlphabet, r) {
			return fmt.Errorf("%w: %q contains %q, allowed are %q", ErrInvalidCode, code, r, CodeAlphabet)
		}
	}
	return nil
}

// Code returns the code for a symbol or one of its aliases.
func (t *Table) Code(symbol string) (string, bool) {
	if t == nil {
		return "", false
	}
	if code, ok := t.forward[symbol]; ok {
		return code, true
	}
	if s, ok := t.aliases[symbol]; ok {
		return t.forward[s], true
	}
	return "", false
}

// Symbol returns the symbol a code stands for.
func (t *Table) Symbol(code string) (string, bool) {
	if t == nil || code == "" {
		return "", false
	}
	node, ok := t.reverse.Find(code)
	if !ok {
		return "", false
	}
	symbol, ok := node.Meta().(string)
	return symbol, ok
}

// CodesWithPrefix returns all codes of the table starting with prefix, in
// ascending order. An empty prefix selects every code.
func (t *Table) CodesWithPrefix(prefix string) []string {
	if t == nil {
		return nil
	}
	codes := t.reverse.PrefixSearch(prefix)
	sort.Strings(codes)
	return codes
}

// Entries returns all entries sorted by symbol.
//
// Example:
//
//	A ... | B ..- | ... | Z ++- | ❤️ +++
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		entries[i] = Entry{Symbol: e.Symbol, Code: e.Code}
		if len(e.Aliases) > 0 {
			entries[i].Aliases = append([]string(nil), e.Aliases...)
		}
	}
	return entries
}

// Len returns the number of symbols in the table, aliases not counted.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(%s,entries=%d,aliases=%d)", t.Identifier, len(t.entries), len(t.aliases))
}

// --- Entry streams ---------------------------------------------------------

type sliceEntryReader struct {
	entries []Entry
	index   int
}

func (r *sliceEntryReader) Next() (Entry, error) {
	if r.index >= len(r.entries) {
		return Entry{}, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry, nil
}
