package console

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/avlmap"
	"github.com/npillmayer/avlmap/avltree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ErrInvalidConfig is returned for configurations which cannot be printed with.
var ErrInvalidConfig = errors.New("console: invalid configuration")

// Config represents a set of configuration parameters for printing trees.
type Config struct {
	Color       bool           // colorize keys, heights and unbalanced nodes
	MaxKeyWidth int            // truncate keys wider than this; 0 means no limit
	ShowValues  bool           // print values next to keys
	Context     *uax11.Context // context for display widths; nil means Latin
}

func (cfg *Config) validate() error {
	if cfg.MaxKeyWidth < 0 {
		return fmt.Errorf("%w: negative key width %d", ErrInvalidConfig, cfg.MaxKeyWidth)
	}
	if cfg.MaxKeyWidth == 1 {
		return fmt.Errorf("%w: key width must leave room for an ellipsis", ErrInvalidConfig)
	}
	return nil
}

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks whether stdout is a terminal, and if so it enables colors and
// limits the width of keys with respect to the terminal's width.
func ConfigFromTerminal() *Config {
	config := &Config{
		ShowValues: true,
		Context:    uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err != nil {
			config.MaxKeyWidth = 16
		} else if w > 80 {
			config.MaxKeyWidth = w / 4
		} else if w > 40 {
			config.MaxKeyWidth = 16
		} else {
			config.MaxKeyWidth = 8
		}
	}
	tracer().Infof("console: colors=%v, key width=%d", config.Color, config.MaxKeyWidth)
	return config
}

// Print outputs the tree of m to stdout, using a config derived from the
// terminal.
func Print[V any](m avlmap.Map[V]) (int, error) {
	return Fprint(os.Stdout, m, ConfigFromTerminal())
}

// Fprint outputs the tree of m sideways to w and returns the depth of the
// tree. If config is nil, keys are printed uncolored, untruncated and
// without values.
func Fprint[V any](w io.Writer, m avlmap.Map[V], config *Config) (int, error) {
	if w == nil {
		return 0, avlmap.ErrIllegalArguments
	}
	if config == nil {
		config = &Config{}
	} else if err := config.validate(); err != nil {
		return 0, err
	}
	p := newPrinter[V](w, config)
	p.node(m.Tree().Root(), "", atRoot, 1)
	return p.depth, p.err
}

type direction int8

const (
	atRoot direction = iota
	above
	below
)

type printer[V any] struct {
	w       io.Writer
	config  *Config
	context *uax11.Context
	keys    *color.Color
	heights *color.Color
	skewed  *color.Color
	depth   int
	err     error
}

func newPrinter[V any](w io.Writer, config *Config) *printer[V] {
	p := &printer[V]{
		w:       w,
		config:  config,
		context: config.Context,
		keys:    color.New(color.FgBlue),
		heights: color.New(color.FgHiBlack),
		skewed:  color.New(color.FgRed, color.Bold),
	}
	if p.context == nil {
		p.context = uax11.LatinContext
	}
	for _, c := range []*color.Color{p.keys, p.heights, p.skewed} {
		if config.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// node prints the subtree n, right subtree first.
func (p *printer[V]) node(n *avltree.Node[string, V], prefix string, dir direction, depth int) {
	if n == nil || p.err != nil {
		return
	}
	p.depth = max(p.depth, depth)
	upper, lower, branch := prefix, prefix, ""
	switch dir {
	case above:
		upper, lower, branch = prefix+"    ", prefix+"│   ", "┌── "
	case below:
		upper, lower, branch = prefix+"│   ", prefix+"    ", "└── "
	}
	p.node(n.Right(), upper, above, depth+1)
	p.line(n, prefix+branch)
	p.node(n.Left(), lower, below, depth+1)
}

func (p *printer[V]) line(n *avltree.Node[string, V], indent string) {
	var b strings.Builder
	b.WriteString(indent)
	key := p.truncate(n.Key())
	if n.Left().Height() != n.Right().Height() {
		b.WriteString(p.skewed.Sprint(key))
	} else {
		b.WriteString(p.keys.Sprint(key))
	}
	if p.config.ShowValues {
		fmt.Fprintf(&b, " = %v", n.Value())
	}
	b.WriteString("  ")
	b.WriteString(p.heights.Sprintf("h=%d", n.Height()))
	b.WriteByte('\n')
	_, p.err = io.WriteString(p.w, b.String())
}

const ellipsis = "…"

// truncate shortens key to the configured display width, cutting between
// grapheme clusters and appending an ellipsis.
func (p *printer[V]) truncate(key string) string {
	limit := p.config.MaxKeyWidth
	if limit == 0 {
		return key
	}
	graphemesReady()
	gstr := grapheme.StringFromString(key)
	if uax11.StringWidth(gstr, p.context) <= limit {
		return key
	}
	var b strings.Builder
	width := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), p.context)
		if width+gw > limit-1 {
			break
		}
		b.WriteString(g)
		width += gw
	}
	b.WriteString(ellipsis)
	return b.String()
}
