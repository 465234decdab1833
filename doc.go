/*
Package symcode implements a small two-way text transform between upper-case
letters and a 3-symbol code alphabet.

Every symbol of an alphabet table (A to Z plus a heart glyph for the default
table) is assigned a unique code of exactly three code symbols drawn from
".", "-" and "+". Encoding folds the input to upper case, walks it rune by
rune, taking multi-rune table symbols like the heart emoji as one character,
and emits one code per recognized character, separated by single spaces.
Decoding splits a code-string at spaces and looks every token up in the
inverted table.

Nothing ever fails: characters and tokens the table cannot resolve are
replaced by the unrecognized-marker "?".

	s := symcode.Encode("Hi")     // ".+- .++"
	t := symcode.Decode(".+- .++") // "HI"

Encoding and decoding are not inverse to each other: spaces are dropped by the
encoder, and the decoder maps an empty input to "?".

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package symcode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'symcode'
func tracer() tracing.Trace {
	return tracing.Select("symcode")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
