// Package tree rebuilds the nested structure encoded by an affix sequence.
//
// Every node is one run of affixes: zero or more opening affixes, each followed
// by the run of its subtree, and then one closing affix carrying the node's own
// payload. The opening affix's payload labels the edge to the subtree.
//
//	Open  [1 2 3]      root ─┬─ [1 2 3] ─> node{payload: [4 5 6]}
//	Close [4 5 6]            ├─ [1 2 4] ─> node{payload: [7 8 9]}
//	Open  [1 2 4]            └─ payload: [7 8 9]
//	Close [7 8 9]
//	Close [7 8 9]
//
// Building never fails. Any tag other than TagOpen closes the current node, and
// running out of affixes closes every open node with an empty payload.
package tree
