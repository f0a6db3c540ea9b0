/*
Package aggtree offers an ordered index with range aggregates.

Aggregate Trees

An aggregate tree maps ordered keys to values, like a sorted map, and
additionally maintains the aggregate ("sum") of the values of every subtree.
This lets clients ask questions about positions and ranges of keys without
scanning:

	Operation          |   Index         |  Sorted slice
	-------------------+-----------------+--------------
	Get                |   O(log n)      |   O(log n)
	Put / Remove       |   O(log n)      |   O(n)
	Rank / Select      |   O(log n)      |   O(log n) / O(1)
	Sum over [lo,hi]   |   O(log n)      |   O(n)

The sum is computed by a monoid supplied by the client, so "sum" may be an
addition of numbers, a count/min/max statistic, or any other associative
combination with a neutral element (see package agg).

Package tree23 contains the core tree, a 2-3 tree with values stored in the
leaves. Index wraps it with upsert semantics and protection against
duplicate keys, which the core tree does not support.

An Index is not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package aggtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IndexError is an error type for the aggtree module
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged whenever a key to be inserted is already present
// in an index.
const ErrDuplicateKey = IndexError("key already present in index")

// ErrIndexOutOfBounds is flagged whenever a position is outside the range
// 1…Len() of an index.
const ErrIndexOutOfBounds = IndexError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = IndexError("illegal arguments")
