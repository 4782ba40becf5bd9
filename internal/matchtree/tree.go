package matchtree

import (
	"codeclass/internal/token"
)

// Tree is the frozen match tree of one language.
type Tree struct {
	language           string
	opts               Options
	root               *Node
	totalPossibleScore float64
	nodes              int
}

// Language returns the language the tree was trained for.
func (t *Tree) Language() string { return t.language }

// Root returns the root node (level 0, score 1).
func (t *Tree) Root() *Node { return t.root }

// TotalPossibleScore is the sum of the scores of every node created while
// building; it normalizes Score results.
func (t *Tree) TotalPossibleScore() float64 { return t.totalPossibleScore }

// NodeCount returns the number of nodes, root included.
func (t *Tree) NodeCount() int { return t.nodes }

// Options returns the multipliers the tree was built with.
func (t *Tree) Options() Options { return t.opts }

// Builder accumulates token sequences of one language into a tree.
type Builder struct {
	tree *Tree
}

// NewBuilder starts an empty tree for language.
func NewBuilder(language string, opts Options) *Builder {
	return &Builder{
		tree: &Tree{
			language: language,
			opts:     opts.WithDefaults(),
			root:     &Node{kind: token.Unknown, level: 0, score: 1},
		},
	}
}

// Add folds every subsequence of tokens starting at each index but the last
// into the tree. Successive calls accumulate into the same tree and total.
func (b *Builder) Add(tokens []token.Token) {
	for i := 0; i < len(tokens)-1; i++ {
		b.tree.totalPossibleScore += b.addFrom(tokens, i)
	}
}

func (b *Builder) addFrom(tokens []token.Token, index int) float64 {
	added := 0.0
	node := b.tree.root
	for index < len(tokens) && node.level < MaxDepth {
		tok := tokens[index]
		next := node.children[tok.Kind]
		if next == nil {
			next = newNode(tok.Kind, node.level+1, node.score*b.tree.opts.LevelMultiplier, tok.Text)
			node.addChild(next)
			added += next.score
		} else {
			next.examples[tok.Text] = struct{}{}
		}
		node = next
		index++
	}
	return added
}

// Tree freezes and returns the built tree. The builder must not be used
// afterwards.
func (b *Builder) Tree() *Tree {
	t := b.tree
	b.tree = nil
	t.nodes = t.root.count()
	return t
}

// Build is a shorthand for a builder fed with each token sequence in order.
func Build(language string, opts Options, sequences ...[]token.Token) *Tree {
	b := NewBuilder(language, opts)
	for _, seq := range sequences {
		b.Add(seq)
	}
	return b.Tree()
}
