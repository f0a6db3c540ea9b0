package tree23

import (
	"bufio"
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Leaves are labelled with key and value, inner nodes with their cached
// maximum key and subtree size.
func (t *Tree[K, V]) ToDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if !t.IsEmpty() {
		var nodelist, edgelist []string
		t.eachNode(t.root, func(x nodeRef, n *node[K, V]) {
			if n.isLeaf() {
				label := fmt.Sprintf("%v\\n%v", n.key, n.value)
				nodelist = append(nodelist, fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", x, label, nodeDotStyles(true)))
				return
			}
			label := fmt.Sprintf("≤%v\\n#%d", n.key, n.size)
			nodelist = append(nodelist, fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", x, label, nodeDotStyles(false)))
			for _, c := range n.children {
				if c != nilRef {
					edgelist = append(edgelist, fmt.Sprintf("\t\"%d\" -> \"%d\";\n", x, c))
				}
			}
		})
		for _, s := range nodelist {
			bw.WriteString(s)
		}
		for _, s := range edgelist {
			bw.WriteString(s)
		}
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("tree23 DOT: %s", err.Error())
		return err
	}
	return nil
}

// eachNode visits the subtree below x in pre-order.
func (t *Tree[K, V]) eachNode(x nodeRef, fn func(nodeRef, *node[K, V])) {
	n := t.arena.at(x)
	fn(x, n)
	for _, c := range n.children {
		if c != nilRef {
			t.eachNode(c, fn)
		}
	}
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
