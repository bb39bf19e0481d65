package tree

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adivina/internal/knowledge"
	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screen"
	sess "github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/ui/components"
	"github.com/abhisek/adivina/internal/ui/layout"
	"github.com/abhisek/adivina/internal/ui/theme"
)

// TreeScreen shows the knowledge base as a scrollable outline.
type TreeScreen struct {
	stats knowledge.Stats
	vp    viewport.Model
}

var _ screen.Screen = (*TreeScreen)(nil)
var _ screen.KeyHintProvider = (*TreeScreen)(nil)

// New renders svc's current tree.
func New(svc *sess.Service) *TreeScreen {
	root := svc.Root()
	vp := viewport.New()
	vp.SetContent(components.RenderTree(root, components.DefaultTreeStyles()))
	return &TreeScreen{
		stats: root.Stats(),
		vp:    vp,
	}
}

func (s *TreeScreen) Init() tea.Cmd {
	return nil
}

func (s *TreeScreen) Title() string {
	return "Árbol de conocimiento"
}

func (s *TreeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Desplazar"},
		{Key: "PgUp/PgDn", Description: "Página"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *TreeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *TreeScreen) View(width, height int) string {
	summary := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d preguntas · %d personajes · %d ramas sin explorar · profundidad %d",
			s.stats.Questions, s.stats.Subjects, s.stats.Unexplored, s.stats.Depth))

	bodyHeight := height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	s.vp.SetWidth(width - 2)
	s.vp.SetHeight(bodyHeight)

	return summary + "\n\n" + lipgloss.NewStyle().PaddingLeft(2).Render(s.vp.View())
}
