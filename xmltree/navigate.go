package xmltree

import (
	"log"
	"strings"
)

// PathSep separates the segments of a [Node.Find] path.
const PathSep = "."

// Action is the control signal a [VisitFunc] returns to steer traversal.
type Action int

const (
	// Continue recurses into the child's subtree before moving on.
	Continue Action = iota
	// SkipChildren moves to the next sibling without descending.
	SkipChildren
	// Stop aborts the whole traversal immediately.
	Stop
)

// VisitFunc is called once per visited node. depth is the node's level below
// the traversal root (immediate children are at 1) and index is its zero-based
// position among its siblings.
type VisitFunc func(n *Node, depth, index int) Action

// Visit applies fn to each child of n in document order, recursing into a
// child's subtree when fn returns [Continue]. It reports whether the
// traversal was stopped before completion, either by fn returning [Stop] or
// by the [MaxDepth] bound; the bound is logged once per traversal.
func (n *Node) Visit(fn VisitFunc) bool {
	var reported bool
	return visit(n, 1, fn, &reported)
}

func visit(n *Node, depth int, fn VisitFunc, reported *bool) bool {
	for i, child := range n.Children {
		switch fn(child, depth, i) {
		case Stop:
			return true
		case SkipChildren:
			continue
		default:
			if depth >= MaxDepth {
				if !*reported {
					log.Printf("xmltree: visit reached maximum nesting depth %d; stopping", MaxDepth)
					*reported = true
				}
				return true
			}
			if visit(child, depth+1, fn, reported) {
				return true
			}
		}
	}
	return false
}

// Find resolves a [PathSep]-separated path of node names against the tree
// rooted at n. The first segment must match n's own name; each later segment
// is resolved depth-first against children, and the first node satisfying
// the full path wins. A segment matches a node whose name begins with it,
// bounded by the segment's length. Malformed paths (an empty segment from a
// leading, trailing, or doubled separator, or an empty path) and unresolved
// segments yield nil.
func (n *Node) Find(path string) *Node {
	return find(n, 1, path)
}

func find(n *Node, depth int, path string) *Node {
	seg, rest, more := strings.Cut(path, PathSep)
	if seg == "" {
		return nil
	}
	if !strings.HasPrefix(n.Name, seg) {
		return nil
	}
	if !more {
		return n
	}
	if depth >= MaxDepth {
		log.Printf("xmltree: find reached maximum nesting depth %d", MaxDepth)
		return nil
	}
	for _, child := range n.Children {
		if m := find(child, depth+1, rest); m != nil {
			return m
		}
	}
	return nil
}
