// Package stringtable parses the shared-strings part of a spreadsheet
// package and provides indexed access to the string values.
package stringtable

import (
	"fmt"
	"log"
	"strconv"

	"github.com/beeselmane/zhdict/xmltree"
)

// Table holds the shared strings of one document, indexed by position.
// Entries are copied out of the source tree at parse time, so the table
// keeps nothing of the tree alive.
type Table struct {
	strings []string
}

// Parse builds a Table from the parsed shared-strings part.
//
// The sst element's count attribute sizes the table exactly when it holds a
// valid non-negative integer; otherwise a diagnostic is logged and the
// entries are counted in a preliminary pass. Each entry's nested text is
// then assigned to its positional slot. An entry without the expected text
// node is logged and its slot left empty; an entry index at or beyond the
// declared or discovered size is a document error.
func Parse(root *xmltree.Node) (*Table, error) {
	table := root.Find("sst")
	if table == nil {
		return nil, fmt.Errorf("stringtable: document has malformed strings table")
	}

	count := -1
	if v, ok := table.Attr("count"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			count = n
		}
	}
	if count < 0 {
		log.Printf("stringtable: document does not declare string table size; counting entries")
		count = 0
		table.Visit(func(_ *xmltree.Node, _, _ int) xmltree.Action {
			count++
			return xmltree.SkipChildren
		})
	}

	strs := make([]string, count)
	var fillErr error

	stopped := table.Visit(func(n *xmltree.Node, _, index int) xmltree.Action {
		// The capacity bound comes first: leaving an invalid entry's slot
		// empty presupposes the slot exists.
		if index >= count {
			fillErr = fmt.Errorf("stringtable: document has more strings than indicated (%d)", count)
			return xmltree.Stop
		}
		t := n.Find("si.t.text")
		if t == nil {
			log.Printf("stringtable: string entry %d is invalid", index)
			return xmltree.SkipChildren
		}
		strs[index] = t.Content
		return xmltree.SkipChildren
	})
	if fillErr == nil && stopped {
		fillErr = fmt.Errorf("stringtable: strings traversal stopped early")
	}
	if fillErr != nil {
		return nil, fillErr
	}
	return &Table{strings: strs}, nil
}

// ParseBytes is a convenience wrapper that parses the raw bytes of a
// shared-strings part.
func ParseBytes(b []byte) (*Table, error) {
	root, err := xmltree.ParseBytes(b)
	if err != nil {
		return nil, fmt.Errorf("stringtable: %w", err)
	}
	return Parse(root)
}

// Get returns the shared string at index i. It panics if i is out of range,
// matching the behaviour of a slice index.
func (t *Table) Get(i int) string {
	return t.strings[i]
}

// Len returns the total number of entries in the table.
func (t *Table) Len() int {
	return len(t.strings)
}
