package tree

import (
	"bytes"
	"iter"

	"github.com/arloliu/bjevko/affix"
	"github.com/arloliu/bjevko/format"
	"github.com/arloliu/bjevko/internal/hash"
)

// Edge links a node to one of its children.
type Edge struct {
	// Label is the payload of the opening affix.
	Label []byte
	// Node is the subtree built from the affixes following the opener.
	Node *Node
}

// Node is one reconstructed tree node.
type Node struct {
	// Children are the labelled subtrees, in encoding order.
	Children []Edge
	// Payload is the payload of the node's closing affix. It is nil when the
	// sequence ended before the node was closed.
	Payload []byte
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.Children)
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Child returns the i-th child edge. Panics if i is out of range.
func (n *Node) Child(i int) Edge {
	return n.Children[i]
}

// All returns an iterator over the (label, subtree) pairs of n.
func (n *Node) All() iter.Seq2[[]byte, *Node] {
	return func(yield func([]byte, *Node) bool) {
		for _, e := range n.Children {
			if !yield(e.Label, e.Node) {
				return
			}
		}
	}
}

// Walk visits n and its descendants depth-first in pre-order. The root is
// visited at depth 0 with a nil label. Returning false from fn stops the walk.
func (n *Node) Walk(fn func(depth int, label []byte, node *Node) bool) {
	n.walk(0, nil, fn)
}

func (n *Node) walk(depth int, label []byte, fn func(int, []byte, *Node) bool) bool {
	if !fn(depth, label, n) {
		return false
	}
	for _, e := range n.Children {
		if !e.Node.walk(depth+1, e.Label, fn) {
			return false
		}
	}

	return true
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node) Size() int {
	size := 0
	n.Walk(func(int, []byte, *Node) bool {
		size++
		return true
	})

	return size
}

// Equal reports whether n and other have the same shape, labels and payloads.
// Nil and empty byte slices compare equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if len(n.Children) != len(other.Children) || !bytes.Equal(n.Payload, other.Payload) {
		return false
	}
	for i, e := range n.Children {
		o := other.Children[i]
		if !bytes.Equal(e.Label, o.Label) || !e.Node.Equal(o.Node) {
			return false
		}
	}

	return true
}

// Affixes flattens n back into an affix sequence: for each child an opening affix
// with the edge label followed by the child's own flattening, then one closing
// affix with n's payload.
//
// Every node ends with an explicit closer, so a tree built from a truncated
// sequence flattens to a well-formed one. For a terminated sequence whose tags are all
// TagOpen or TagClose, Build(seq).Affixes() equals seq.
func (n *Node) Affixes() affix.Sequence {
	return n.appendAffixes(make(affix.Sequence, 0, 2*n.Size()-1))
}

func (n *Node) appendAffixes(seq affix.Sequence) affix.Sequence {
	for _, e := range n.Children {
		seq = append(seq, affix.Open(e.Label))
		seq = e.Node.appendAffixes(seq)
	}

	return append(seq, affix.Close(n.Payload))
}

// Fingerprint returns an xxHash64 digest of the tree's flattened encoding.
// Equal trees have equal fingerprints.
func (n *Node) Fingerprint() uint64 {
	d := hash.NewDigest()
	n.digest(d)

	return d.Sum64()
}

func (n *Node) digest(d *hash.Digest) {
	for _, e := range n.Children {
		d.WriteRecord(format.TagOpen.Byte(), e.Label)
		e.Node.digest(d)
	}
	d.WriteRecord(format.TagClose.Byte(), n.Payload)
}
