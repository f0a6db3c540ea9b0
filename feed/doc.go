/*
Package feed provides API helpers to load key/value records into an index.

Records are read from text, one record per line:

	# comment
	10 100
	20,200

Key and value are separated by white space or a single comma; blank lines
and lines starting with '#' are skipped.

Reading and parsing run in a background goroutine, while records are
applied to the index by the calling goroutine only. Progress is broadcast to
any number of observers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package feed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aggtree'
func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}
