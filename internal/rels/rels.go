// Package rels resolves the workbook relationships part into the archive
// paths of the two parts the reader needs: the worksheet and the shared
// string table.
//
// It operates on the already-parsed tree rather than decoding the part
// again, since the document open path has the tree in hand to validate the
// root element anyway.
package rels

import (
	"fmt"
	"strings"

	"github.com/beeselmane/zhdict/ooxml"
	"github.com/beeselmane/zhdict/xmltree"
)

// Parts holds the normalized archive paths discovered from the
// relationships part.
type Parts struct {
	Worksheet     string
	SharedStrings string
}

// Resolve scans the parsed relationships document for the worksheet and
// shared-strings entries. Each Relationship's Type attribute is compared by
// its final path segment only; Target paths are normalized through
// [ooxml.PartPath]. The scan stops as soon as both parts are known.
// Missing either relationship, or an entry without its Type or Target
// attribute, is a document error.
func Resolve(root *xmltree.Node) (Parts, error) {
	rdata := root.Find("Relationships")
	if rdata == nil {
		return Parts{}, fmt.Errorf("rels: document is missing relationship info")
	}

	var p Parts
	var scanErr error

	rdata.Visit(func(n *xmltree.Node, _, index int) xmltree.Action {
		if n.Name != "Relationship" {
			return xmltree.SkipChildren
		}
		typ, ok := n.Attr("Type")
		if !ok {
			scanErr = fmt.Errorf("rels: relationship entry %d has no Type attribute", index)
			return xmltree.Stop
		}
		target, ok := n.Attr("Target")
		if !ok {
			scanErr = fmt.Errorf("rels: relationship entry %d has no Target attribute", index)
			return xmltree.Stop
		}

		switch typ[strings.LastIndex(typ, "/")+1:] {
		case ooxml.TypeWorksheet:
			p.Worksheet = ooxml.PartPath(target)
		case ooxml.TypeSharedStrings:
			p.SharedStrings = ooxml.PartPath(target)
		}

		if p.Worksheet != "" && p.SharedStrings != "" {
			return xmltree.Stop
		}
		return xmltree.SkipChildren
	})

	if scanErr != nil {
		return Parts{}, scanErr
	}
	if p.Worksheet == "" || p.SharedStrings == "" {
		return Parts{}, fmt.Errorf("rels: document is missing worksheet and/or shared strings")
	}
	return p, nil
}
