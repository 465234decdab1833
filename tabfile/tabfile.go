/*
Package tabfile reads and writes alphabet tables in a plain text format.

Every line holds one entry: a symbol, its code and optional aliases of the
symbol, separated by white space.

	% my alphabet
	A   ...
	B   ..-
	❤️  +++  ❤

Lines starting with '#' or '%' are comments. Blank lines are ignored.
*/
package tabfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/symcode"
)

// Reader streams table entries from a table file.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadTable parses table data and returns a ready-to-use table.
func LoadTable(name string, reader io.Reader) (*symcode.Table, error) {
	return symcode.LoadTable(name, NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (symcode.Entry, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return symcode.Entry{}, fmt.Errorf("line %d: expected symbol and code, got %q", r.line, line)
		}
		entry := symcode.Entry{
			Symbol: fields[0],
			Code:   fields[1],
		}
		if len(fields) > 2 {
			entry.Aliases = fields[2:]
		}
		return entry, nil
	}
	if err := r.scanner.Err(); err != nil {
		return symcode.Entry{}, err
	}
	return symcode.Entry{}, io.EOF
}

// WriteTable writes all entries of table in table file format, sorted by
// symbol. Loading the output yields a table with the same entries.
func WriteTable(w io.Writer, table *symcode.Table) error {
	if table == nil {
		return errors.New("cannot write nil table")
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%% %s\n", table.Identifier); err != nil {
		return err
	}
	for _, e := range table.Entries() {
		fields := append([]string{e.Symbol, e.Code}, e.Aliases...)
		if _, err := fmt.Fprintln(bw, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
