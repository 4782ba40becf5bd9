package matchtree

import (
	"slices"

	"codeclass/internal/token"
)

// Node is one position in the trie. It owns its children; there are no
// back references.
type Node struct {
	kind     token.Kind
	level    int
	score    float64
	examples map[string]struct{}
	children map[token.Kind]*Node
}

func newNode(kind token.Kind, level int, score float64, firstExample string) *Node {
	return &Node{
		kind:     kind,
		level:    level,
		score:    score,
		examples: map[string]struct{}{firstExample: {}},
		children: nil,
	}
}

// Kind returns the token kind labelling the node.
func (n *Node) Kind() token.Kind { return n.kind }

// Level returns the depth of the node; the root is 0.
func (n *Node) Level() int { return n.level }

// Score returns the node weight.
func (n *Node) Score() float64 { return n.score }

// HasExample reports whether text was observed at this node during training.
func (n *Node) HasExample(text string) bool {
	_, ok := n.examples[text]
	return ok
}

// ExampleCount returns the number of distinct literals recorded at the node.
func (n *Node) ExampleCount() int { return len(n.examples) }

// Child returns the child labelled kind, or nil.
func (n *Node) Child(kind token.Kind) *Node {
	return n.children[kind]
}

// Children returns the children ordered by kind.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Node) int { return int(a.kind) - int(b.kind) })
	return out
}

func (n *Node) addChild(c *Node) {
	if n.children == nil {
		n.children = make(map[token.Kind]*Node, 4)
	}
	n.children[c.kind] = c
}

func (n *Node) count() int {
	total := 1
	for _, c := range n.children {
		total += c.count()
	}
	return total
}
