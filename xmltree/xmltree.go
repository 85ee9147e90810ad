// Package xmltree parses an XML document into a navigable tree of named
// nodes and provides the generic traversal primitives that the OOXML part
// readers are built on: visitation with an explicit control signal,
// dotted-path lookup, and attribute lookup.
//
// Character data is materialized as child nodes named [TextName] so that a
// dotted path can address it directly:
//
//	if t := node.Find("si.t.text"); t != nil {
//	    fmt.Println(t.Content)
//	}
//
// Namespace prefixes are not preserved; element and attribute names are the
// local names, which is also what path and attribute matching use.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
)

// TextName is the name given to character-data nodes. Path lookups address
// text content through it ("si.t.text").
const TextName = "text"

// MaxDepth bounds tree traversal. Visiting past this depth stops the
// traversal; see [Node.Visit].
const MaxDepth = 1000

// Attr is one name/value attribute pair of an element node.
type Attr struct {
	Name  string
	Value string
}

// Node is a single node of a parsed XML tree: either an element, with a
// name, attributes, and ordered children, or a character-data node named
// [TextName] whose Content holds the text verbatim (whitespace included).
type Node struct {
	Name     string
	Content  string
	Attrs    []Attr
	Children []*Node
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Parse decodes the XML document from r and returns its root element.
// Documents that declare a non-UTF-8 encoding are transcoded via the
// charset's registered decoder. Comments, processing instructions, and
// directives are dropped; character data is kept verbatim.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, fmt.Errorf("xmltree: parse: multiple root elements")
			}
			n := &Node{Name: t.Name.Local, Attrs: elementAttrs(t.Attr)}
			if len(stack) == 0 {
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue // whitespace outside the root element
			}
			parent := stack[len(stack)-1]
			// Coalesce adjacent runs (CDATA sections arrive as separate tokens).
			if k := len(parent.Children); k > 0 && parent.Children[k-1].Name == TextName {
				parent.Children[k-1].Content += string(t)
				continue
			}
			parent.Children = append(parent.Children, &Node{Name: TextName, Content: string(t)})
		}
	}

	if root == nil {
		return nil, fmt.Errorf("xmltree: parse: document has no root element")
	}
	return root, nil
}

// ParseBytes decodes an XML document held in memory.
func ParseBytes(b []byte) (*Node, error) {
	return Parse(bytes.NewReader(b))
}

// elementAttrs converts decoder attributes, dropping xmlns declarations the
// same way a namespace-aware parser keeps them out of the attribute list.
func elementAttrs(attrs []xml.Attr) []Attr {
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		out = append(out, Attr{Name: a.Name.Local, Value: a.Value})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// charsetReader resolves a declared document encoding to a transcoding
// reader. The name lookup follows the WHATWG encoding registry, which covers
// every label a spreadsheet writer realistically emits.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("xmltree: unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}
