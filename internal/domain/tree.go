package domain

// TreeNode is one prefix in a speaker's reasoning tree. The root carries the
// start marker as Prefix, the target world as Word and probability 1.
type TreeNode struct {
	Prefix   string  `json:"prefix"`
	Parent   string  `json:"parent,omitempty"`
	Word     string  `json:"word"`
	Prob     float64 `json:"prob"`
	Children []int   `json:"children,omitempty"`
}

func (n TreeNode) Leaf() bool {
	return n.Word == EndMarker
}

// ReasoningTree is an arena of nodes addressed by index; node 0 is the root.
type ReasoningTree struct {
	World string     `json:"world"`
	Depth int        `json:"depth"`
	Nodes []TreeNode `json:"nodes"`
}

type TreeEdge struct {
	Prefix string  `json:"prefix"`
	Parent string  `json:"parent"`
	Word   string  `json:"word"`
	Prob   float64 `json:"prob"`
}

func NewReasoningTree(world string, depth int) *ReasoningTree {
	return &ReasoningTree{
		World: world,
		Depth: depth,
		Nodes: []TreeNode{{Prefix: StartMarker, Word: world, Prob: 1}},
	}
}

func (t *ReasoningTree) Root() TreeNode {
	return t.Nodes[0]
}

// AddChild appends a node under parent and returns its index.
func (t *ReasoningTree) AddChild(parent int, word string, prob float64) int {
	parentPrefix := t.Nodes[parent].Prefix
	t.Nodes = append(t.Nodes, TreeNode{
		Prefix: parentPrefix + " " + word,
		Parent: parentPrefix,
		Word:   word,
		Prob:   prob,
	})
	idx := len(t.Nodes) - 1
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	return idx
}

// Edges lists every non-root node in insertion order.
func (t *ReasoningTree) Edges() []TreeEdge {
	if len(t.Nodes) <= 1 {
		return nil
	}

	edges := make([]TreeEdge, 0, len(t.Nodes)-1)
	for _, n := range t.Nodes[1:] {
		edges = append(edges, TreeEdge{Prefix: n.Prefix, Parent: n.Parent, Word: n.Word, Prob: n.Prob})
	}
	return edges
}

// Leaves returns the complete utterances reachable in the tree.
func (t *ReasoningTree) Leaves() []string {
	var leaves []string
	for _, n := range t.Nodes {
		if n.Leaf() {
			leaves = append(leaves, n.Prefix)
		}
	}
	return leaves
}
