/*
Package console prints the tree shape of maps to terminals.

Trees are printed sideways, with the root on the left and the right subtree
above the left one, so that keys read in descending order from top to
bottom:

	    ┌── g  h=1
	┌── f  h=2
	│   └── e  h=1
	d  h=3
	│   ┌── c  h=1
	└── b  h=2
	    └── a  h=1

Output is meant for debugging. Keys may be truncated to a maximum display
width, honoring grapheme boundaries and East Asian character widths.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// tracer writes to trace with key 'avlmap'
func tracer() tracing.Trace {
	return tracing.Select("avlmap")
}

var setupGraphemes sync.Once

func graphemesReady() {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
}
