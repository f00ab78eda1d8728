package avlmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/avlmap/avltree"
	"golang.org/x/net/html"
)

type nodeids[V any] struct {
	idTable map[*avltree.Node[string, V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*avltree.Node[string, V]]int),
		max:     1,
	}
}

func (ids nodeids[V]) find(node *avltree.Node[string, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[V]) alloc(node *avltree.Node[string, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal tree structure of a map in Graphviz DOT format
// (for debugging purposes). Node labels show key, value and height.
func ToDot[V any](m Map[V], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[V]()
	nilid := 0 // empty children live in their own "nil%d" namespace
	var visit func(n *avltree.Node[string, V]) int
	visit = func(n *avltree.Node[string, V]) int {
		ID := ids.alloc(n)
		for _, child := range [2]*avltree.Node[string, V]{n.Left(), n.Right()} {
			if child == nil {
				nilid++
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, visit(child))
		}
		label := fmt.Sprintf("%s<br/>%s<br/><i>h=%d</i>",
			html.EscapeString(n.Key()),
			html.EscapeString(fmt.Sprint(n.Value())),
			n.Height())
		fmt.Fprintf(&nodelist, "\"%d\" [label=<%s> %s];\n", ID, label, nodeDotStyles(n))
		return ID
	}
	if root := m.Tree().Root(); root != nil {
		visit(root)
	} else {
		tracer().Debugf("map DOT: map is empty")
	}
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			tracer().Errorf("map DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

// nodeDotStyles colors nodes by balance factor.
func nodeDotStyles[V any](n *avltree.Node[string, V]) string {
	s := ",style=filled,color=black,shape=box"
	d := n.Left().Height() - n.Right().Height()
	return s + fmt.Sprintf(",fillcolor=\"%s\"", balanceColors[d+1])
}

// indexed by balance factor + 1
var balanceColors = [...]string{"#CCDDFF", "#a3d7e4", "#FFDDCC"}
