package components

import (
	"strings"

	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/ui/theme"
)

// renderFunc has the signature of lipgloss.Style.Render.
type renderFunc func(...string) string

// TreeStyles styles the parts of a rendered decision tree.
type TreeStyles struct {
	Question   renderFunc
	Subject    renderFunc
	Unexplored renderFunc
	Invalid    renderFunc
	Branch     renderFunc
}

// DefaultTreeStyles uses the application palette.
func DefaultTreeStyles() TreeStyles {
	return TreeStyles{
		Question:   theme.Question.Render,
		Subject:    theme.Subject.Render,
		Unexplored: theme.Unexplored.Render,
		Invalid:    theme.Incorrect.Render,
		Branch:     theme.Branch.Render,
	}
}

// PlainTreeStyles renders without escape sequences, for pipes and files.
func PlainTreeStyles() TreeStyles {
	return TreeStyles{plain, plain, plain, plain, plain}
}

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

// RenderTree draws root as an indented outline, yes branch first.
func RenderTree(root *knowledge.Node, st TreeStyles) string {
	var b strings.Builder
	b.WriteString(st.label(root))
	b.WriteString("\n")
	st.children(&b, root, "")
	return b.String()
}

func (st TreeStyles) children(b *strings.Builder, n *knowledge.Node, indent string) {
	if n.Kind() != knowledge.KindInterior {
		return
	}
	for i, yes := range []bool{true, false} {
		last := i == 1
		elbow, pad := "├── ", "│   "
		if last {
			elbow, pad = "└── ", "    "
		}
		answer := "sí: "
		if !yes {
			answer = "no: "
		}

		child := n.Child(yes)
		b.WriteString(st.Branch(indent + elbow))
		b.WriteString(answer)
		b.WriteString(st.label(child))
		b.WriteString("\n")
		st.children(b, child, indent+pad)
	}
}

func (st TreeStyles) label(n *knowledge.Node) string {
	switch n.Kind() {
	case knowledge.KindInterior:
		return st.Question(n.Question)
	case knowledge.KindLeaf:
		return st.Subject("● " + n.Name)
	case knowledge.KindEmpty:
		return st.Unexplored("(sin explorar)")
	}
	return st.Invalid("✗ nodo inválido")
}
