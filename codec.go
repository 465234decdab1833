package symcode

import (
	"io"
	"strings"
)

// Unrecognized is substituted for every character or token a table cannot
// resolve.
const Unrecognized = "?"

// Codec encodes and decodes text with a fixed alphabet table.
// The zero value uses the default table.
type Codec struct {
	table *Table
}

// NewCodec creates a codec for table. A nil table selects Default().
func NewCodec(table *Table) *Codec {
	return &Codec{table: table}
}

// Table returns the alphabet table of the codec.
func (c *Codec) Table() *Table {
	if c == nil || c.table == nil {
		return Default()
	}
	return c.table
}

// Encode encodes text with the default table.
func Encode(text string) string {
	return NewCodec(nil).Encode(text)
}

// Decode decodes a code-string with the default table.
func Decode(codes string) string {
	return NewCodec(nil).Decode(codes)
}

// Encode transforms text into a code-string.
//
// The text is folded to upper case and every character is replaced by its
// code. Multi-code-point symbols of the table count as one character.
// Spaces are dropped, unknown characters become Unrecognized. Codes are
// separated by a single space.
//
// Example:
//
//	"Hi ❤️" => ".+- .++ +++".
func (c *Codec) Encode(text string) string {
	table := c.Table()
	tokens := make([]string, 0, len(text))
	chars := NewCharReader(upper(text), table)
	for {
		ch, err := chars.Next()
		if err == io.EOF {
			break
		}
		if code, ok := table.Code(ch); ok {
			tokens = append(tokens, code)
			continue
		}
		if ch == "" || ch == " " {
			continue
		}
		tracer().Debugf("no code for %q", ch)
		tokens = append(tokens, Unrecognized)
	}
	return strings.Join(tokens, " ")
}

// Decode transforms a code-string back into text.
//
// Tokens are separated by single spaces; unknown tokens become Unrecognized.
// An empty code-string decodes to Unrecognized. A backslash in the result is
// turned into a space.
//
// Example:
//
//	".+- .++ +++" => "HI❤️".
func (c *Codec) Decode(codes string) string {
	if codes == "" {
		return Unrecognized
	}
	table := c.Table()
	tokens := strings.Split(strings.TrimSpace(codes), " ")
	var b strings.Builder
	for _, token := range tokens {
		if symbol, ok := table.Symbol(token); ok {
			b.WriteString(symbol)
			continue
		}
		tracer().Debugf("no symbol for token %q", token)
		b.WriteString(Unrecognized)
	}
	return strings.ReplaceAll(b.String(), `\`, " ")
}
