package matchtree

import (
	"fmt"
	"slices"

	"codeclass/internal/token"
)

// NodeSnapshot is the serializable form of a node and its subtree.
type NodeSnapshot struct {
	Kind     token.Kind
	Score    float64
	Examples []string
	Children []NodeSnapshot
}

// TreeSnapshot is the serializable form of a Tree.
type TreeSnapshot struct {
	Language           string
	Options            Options
	TotalPossibleScore float64
	Root               NodeSnapshot
}

// Snapshot exports the tree. Children are ordered by kind and examples
// sorted, so equal trees produce equal snapshots.
func (t *Tree) Snapshot() TreeSnapshot {
	return TreeSnapshot{
		Language:           t.language,
		Options:            t.opts,
		TotalPossibleScore: t.totalPossibleScore,
		Root:               snapshotNode(t.root),
	}
}

func snapshotNode(n *Node) NodeSnapshot {
	examples := make([]string, 0, len(n.examples))
	for ex := range n.examples {
		examples = append(examples, ex)
	}
	slices.Sort(examples)
	children := n.Children()
	out := NodeSnapshot{
		Kind:     n.kind,
		Score:    n.score,
		Examples: examples,
		Children: make([]NodeSnapshot, 0, len(children)),
	}
	for _, c := range children {
		out.Children = append(out.Children, snapshotNode(c))
	}
	return out
}

// FromSnapshot rebuilds a tree, validating depth, kinds and child uniqueness.
func FromSnapshot(s TreeSnapshot) (*Tree, error) {
	root, err := restoreNode(s.Root, 0)
	if err != nil {
		return nil, fmt.Errorf("matchtree %q: %w", s.Language, err)
	}
	root.examples = nil
	t := &Tree{
		language:           s.Language,
		opts:               s.Options.WithDefaults(),
		root:               root,
		totalPossibleScore: s.TotalPossibleScore,
	}
	t.nodes = root.count()
	return t, nil
}

func restoreNode(s NodeSnapshot, level int) (*Node, error) {
	if level > MaxDepth {
		return nil, fmt.Errorf("node deeper than %d", MaxDepth)
	}
	if !s.Kind.Valid() {
		return nil, fmt.Errorf("invalid kind %d at level %d", s.Kind, level)
	}
	n := &Node{
		kind:     s.Kind,
		level:    level,
		score:    s.Score,
		examples: make(map[string]struct{}, len(s.Examples)),
	}
	for _, ex := range s.Examples {
		n.examples[ex] = struct{}{}
	}
	for _, cs := range s.Children {
		if n.children[cs.Kind] != nil {
			return nil, fmt.Errorf("duplicate child %v at level %d", cs.Kind, level)
		}
		c, err := restoreNode(cs, level+1)
		if err != nil {
			return nil, err
		}
		n.addChild(c)
	}
	return n, nil
}
