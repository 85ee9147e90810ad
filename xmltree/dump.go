package xmltree

import (
	"fmt"
	"io"
)

// Dump writes a line-per-node description of the tree rooted at n to w.
// The root line is unindented; each descendant is indented two spaces per
// level and suffixed with its sibling index. Childless nodes with content
// (text nodes) print their content in quotes:
//
//	- 'si'
//	  - 't' [0]
//	    - 'text' [0] "甲"
func (n *Node) Dump(w io.Writer) {
	fmt.Fprint(w, "- ")
	dumpNode(w, n)
	fmt.Fprintln(w)

	n.Visit(func(c *Node, depth, index int) Action {
		fmt.Fprintf(w, "%*s- ", depth*2, "")
		dumpNode(w, c)
		fmt.Fprintf(w, " [%d]", index)
		if len(c.Children) == 0 && c.Content != "" {
			fmt.Fprintf(w, " \"%s\"", c.Content)
		}
		fmt.Fprintln(w)
		return Continue
	})
}

// dumpNode prints one node's name and attributes without a newline.
func dumpNode(w io.Writer, n *Node) {
	fmt.Fprintf(w, "'%s'", n.Name)
	for _, a := range n.Attrs {
		fmt.Fprintf(w, " (%s=[%s])", a.Name, a.Value)
	}
}
