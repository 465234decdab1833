package symcode

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CharReader streams the logical characters of a text with respect to a
// table. Symbols and aliases of the table spanning several code points, like
// the heart emoji, are delivered as one character, preferring the longest
// match. Everything else is delivered one rune at a time.
type CharReader struct {
	rest  string
	table *Table
}

// NewCharReader creates a reader for the logical characters of text.
// A nil table selects Default().
func NewCharReader(text string, table *Table) *CharReader {
	if table == nil {
		table = Default()
	}
	return &CharReader{rest: text, table: table}
}

// Next returns the next logical character.
// It returns io.EOF when exhausted.
//
// Example, for the default table:
//
//	"A❤️E\u0301" => "A", "❤️", "E", "\u0301".
func (r *CharReader) Next() (string, error) {
	if r.rest == "" {
		return "", io.EOF
	}
	_, size := utf8.DecodeRuneInString(r.rest)
	ch := r.rest[:size]
	end, n := size, 1
	for end < len(r.rest) && n < r.table.maxRunes {
		_, size = utf8.DecodeRuneInString(r.rest[end:])
		end += size
		n++
		if r.table.known(r.rest[:end]) {
			ch = r.rest[:end]
		}
	}
	r.rest = r.rest[len(ch):]
	return ch, nil
}

// upper folds s to upper case, independent of any locale.
// A Caser is stateful and must not be shared, so a fresh one is used per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
