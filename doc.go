/*
Package avlmap offers persistent ordered maps with string keys.

Maps

A Map is an immutable, height-balanced binary search tree (an AVL tree).
Operations which change a map, like Add or Remove, never modify their
receiver: they return a new map which shares all untouched subtrees with
the previous version. Old versions stay valid and may be read concurrently
without any synchronization.

	m := avlmap.Empty[int]().Add("b", 2).Add("a", 1)
	m.ToSlice()  // [(a,1) (b,2)]

Besides the usual lookups and updates, maps support an efficient algebra
of split, join and merge operations, which run in logarithmic time or,
for merges of comparably sized maps, in O(n log n).

Keys are ordered byte-wise, as by strings.Compare. Maps with keys of other
types may use package avltree directly, which the string map is built on.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package avlmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avlmap'
func tracer() tracing.Trace {
	return tracing.Select("avlmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// MapError is an error type for the avlmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrBuilderCompleted signals that a map builder has already completed a map
// and it's illegal to further add bindings.
const ErrBuilderCompleted = MapError("forbidden to add bindings; map has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")
