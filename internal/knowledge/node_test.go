package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want Kind
	}{
		{"nil", nil, KindEmpty},
		{"empty", Empty(), KindEmpty},
		{"leaf", NewLeaf("Lando Norris"), KindLeaf},
		{"interior", NewInterior("q", Empty(), Empty()), KindInterior},
		{"question and name", &Node{Question: "q", Name: "n", Yes: Empty(), No: Empty()}, KindMalformed},
		{"question without no", &Node{Question: "q", Yes: Empty()}, KindMalformed},
		{"leaf with child", &Node{Name: "n", Yes: Empty()}, KindMalformed},
		{"children without question", &Node{Yes: Empty(), No: Empty()}, KindMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Kind())
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, sampleTree().Validate())
	require.NoError(t, Seed().Validate())

	bad := sampleTree()
	bad.No.No = &Node{Question: "q", Name: "n", Yes: Empty(), No: Empty()}
	err := bad.Validate()
	var mte *MalformedTreeError
	require.ErrorAs(t, err, &mte)
	assert.Equal(t, "root.no.no", mte.Path)
	assert.Contains(t, mte.Reason, "both question")

	var nilRoot *Node
	require.ErrorAs(t, nilRoot.Validate(), &mte)
}

func TestValidateDetectsSharingAndCycles(t *testing.T) {
	shared := NewLeaf("Lewis Hamilton")
	tree := NewInterior("q", shared, shared)
	var mte *MalformedTreeError
	require.ErrorAs(t, tree.Validate(), &mte)
	assert.Equal(t, "root.no", mte.Path)

	cyclic := NewInterior("q", Empty(), Empty())
	cyclic.Yes = cyclic
	require.ErrorAs(t, cyclic.Validate(), &mte)
	assert.Equal(t, "root.yes", mte.Path)
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleTree()
	c := orig.Clone()
	require.True(t, orig.Equal(c))

	c.Yes.Yes.Name = "Someone else"
	assert.Equal(t, "Max Verstappen", orig.Yes.Yes.Name)
	assert.False(t, orig.Equal(c))
}

func TestEqualTreatsNilAsEmpty(t *testing.T) {
	var n *Node
	assert.True(t, n.Equal(Empty()))
	assert.True(t, Empty().Equal(nil))
	assert.False(t, Empty().Equal(NewLeaf("x")))
	assert.False(t, NewLeaf("x").Equal(nil))
}

func TestStats(t *testing.T) {
	st := sampleTree().Stats()
	assert.Equal(t, Stats{Questions: 3, Subjects: 3, Unexplored: 1, Depth: 2}, st)

	assert.Equal(t, Stats{Questions: 1, Unexplored: 2, Depth: 1}, Seed().Stats())
}

func TestSubjects(t *testing.T) {
	assert.Equal(t,
		[]string{"Max Verstappen", "Michael Schumacher", "Ayrton Senna"},
		sampleTree().Subjects(),
	)
	assert.Empty(t, Seed().Subjects())
}
