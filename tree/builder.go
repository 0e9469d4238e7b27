package tree

import "github.com/arloliu/bjevko/affix"

// Build builds the tree encoded by seq, starting at its first affix.
//
// Each call uses its own cursor, so repeated builds over the same sequence yield
// equal trees.
func Build(seq affix.Sequence) *Node {
	cursor := 0
	return BuildFrom(seq, &cursor)
}

// BuildFrom builds one node starting at seq[*cursor] and advances *cursor past
// every affix it consumes.
//
// Nested calls share the cursor, so when a subtree returns the parent resumes at
// the affix right after the subtree's closer. A nil cursor starts at 0.
//
// Labels and payloads in the result borrow from the sequence's source buffer.
func BuildFrom(seq affix.Sequence, cursor *int) *Node {
	if cursor == nil {
		cursor = new(int)
	}

	node := &Node{}
	for *cursor < len(seq) {
		a := seq[*cursor]
		data := a.Bytes()
		*cursor++

		if a.Tag.IsOpen() {
			node.Children = append(node.Children, Edge{Label: data, Node: BuildFrom(seq, cursor)})
			continue
		}

		node.Payload = data

		break
	}

	return node
}
