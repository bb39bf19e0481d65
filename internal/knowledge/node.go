package knowledge

import "fmt"

// DefaultQuestion is the seed question of a brand-new knowledge base.
const DefaultQuestion = "¿Es un piloto de la parrilla actual?"

// Kind classifies a node by which fields are populated.
type Kind int

const (
	KindEmpty     Kind = iota // Unexplored branch
	KindLeaf                  // A guessed subject
	KindInterior              // A yes/no question
	KindMalformed             // Violates the node invariants
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindLeaf:
		return "leaf"
	case KindInterior:
		return "interior"
	default:
		return "malformed"
	}
}

// Node is a single node of the decision tree. A node is Interior when
// Question is set (and then both Yes and No must be non-nil), a Leaf when
// Name is set, and Empty when neither is set.
type Node struct {
	Question string `json:"question,omitempty" yaml:"question,omitempty"`
	Yes      *Node  `json:"yes,omitempty" yaml:"yes,omitempty"`
	No       *Node  `json:"no,omitempty" yaml:"no,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Seed returns the tree used when no persisted state exists.
func Seed() *Node {
	return NewInterior(DefaultQuestion, Empty(), Empty())
}

// Empty returns a new unexplored node.
func Empty() *Node {
	return &Node{}
}

// NewLeaf returns a leaf guessing name.
func NewLeaf(name string) *Node {
	return &Node{Name: name}
}

// NewInterior returns a question node with the given children.
func NewInterior(question string, yes, no *Node) *Node {
	return &Node{Question: question, Yes: yes, No: no}
}

// Kind reports the node's kind. A nil node is Empty.
func (n *Node) Kind() Kind {
	switch {
	case n == nil:
		return KindEmpty
	case n.Question != "" && n.Name != "":
		return KindMalformed
	case n.Question != "":
		if n.Yes == nil || n.No == nil {
			return KindMalformed
		}
		return KindInterior
	case n.Name != "":
		if n.Yes != nil || n.No != nil {
			return KindMalformed
		}
		return KindLeaf
	case n.Yes != nil || n.No != nil:
		return KindMalformed
	default:
		return KindEmpty
	}
}

// IsEmpty reports whether the branch has never been explored.
func (n *Node) IsEmpty() bool { return n.Kind() == KindEmpty }

// IsLeaf reports whether the node holds a guess.
func (n *Node) IsLeaf() bool { return n.Kind() == KindLeaf }

// IsInterior reports whether the node holds a question.
func (n *Node) IsInterior() bool { return n.Kind() == KindInterior }

// Child returns the yes or no child.
func (n *Node) Child(yes bool) *Node {
	if n == nil {
		return nil
	}
	if yes {
		return n.Yes
	}
	return n.No
}

// SetChild replaces the yes or no child.
func (n *Node) SetChild(yes bool, child *Node) {
	if yes {
		n.Yes = child
	} else {
		n.No = child
	}
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Question: n.Question,
		Name:     n.Name,
		Yes:      n.Yes.Clone(),
		No:       n.No.Clone(),
	}
}

// Equal reports whether two trees are structurally equal. A nil node and an
// Empty node are not distinguished.
func (n *Node) Equal(o *Node) bool {
	if n.IsEmpty() && o.IsEmpty() {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	return n.Question == o.Question &&
		n.Name == o.Name &&
		n.Yes.Equal(o.Yes) &&
		n.No.Equal(o.No)
}

// Validate walks the tree and returns a *MalformedTreeError for the first
// invariant violation found, including shared or cyclic nodes.
func (n *Node) Validate() error {
	if n == nil {
		return &MalformedTreeError{Path: "root", Reason: "nil root"}
	}
	seen := make(map[*Node]bool)
	return validate(n, "root", seen)
}

// Check validates n alone without descending into its children. path is
// reported in the returned *MalformedTreeError.
func (n *Node) Check(path string) error {
	if n.Kind() == KindMalformed {
		return &MalformedTreeError{Path: path, Reason: describeMalformed(n)}
	}
	return nil
}

func validate(n *Node, path string, seen map[*Node]bool) error {
	if seen[n] {
		return &MalformedTreeError{Path: path, Reason: "node is shared or cyclic"}
	}
	seen[n] = true

	if err := n.Check(path); err != nil {
		return err
	}
	if n.Kind() == KindInterior {
		if err := validate(n.Yes, path+".yes", seen); err != nil {
			return err
		}
		return validate(n.No, path+".no", seen)
	}
	return nil
}

func describeMalformed(n *Node) string {
	switch {
	case n.Question != "" && n.Name != "":
		return fmt.Sprintf("both question %q and name %q are set", n.Question, n.Name)
	case n.Question != "":
		return fmt.Sprintf("question %q is missing a yes or no branch", n.Question)
	case n.Name != "":
		return fmt.Sprintf("leaf %q has children", n.Name)
	default:
		return "empty node has children"
	}
}

// Stats summarises the shape of a tree.
type Stats struct {
	Questions  int // Interior nodes
	Subjects   int // Leaves
	Unexplored int // Empty branches
	Depth      int // Longest root-to-node path, counted in questions
}

// Stats computes the shape summary of the tree rooted at n.
func (n *Node) Stats() Stats {
	var s Stats
	collectStats(n, 0, &s)
	return s
}

func collectStats(n *Node, depth int, s *Stats) {
	if depth > s.Depth {
		s.Depth = depth
	}
	switch n.Kind() {
	case KindInterior:
		s.Questions++
		collectStats(n.Yes, depth+1, s)
		collectStats(n.No, depth+1, s)
	case KindLeaf:
		s.Subjects++
	case KindEmpty:
		s.Unexplored++
	}
}

// Subjects returns every leaf name in pre-order (yes before no).
func (n *Node) Subjects() []string {
	var out []string
	var walk func(*Node)
	walk = func(c *Node) {
		switch c.Kind() {
		case KindInterior:
			walk(c.Yes)
			walk(c.No)
		case KindLeaf:
			out = append(out, c.Name)
		}
	}
	walk(n)
	return out
}
