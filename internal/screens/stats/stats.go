package stats

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adivina/internal/router"
	"github.com/abhisek/adivina/internal/screen"
	sess "github.com/abhisek/adivina/internal/session"
	"github.com/abhisek/adivina/internal/store"
	"github.com/abhisek/adivina/internal/ui/layout"
	"github.com/abhisek/adivina/internal/ui/theme"
)

// recentLimit bounds the sessions listed under the totals.
const recentLimit = 15

type overviewLoadedMsg struct {
	Overview *sess.Overview
	Err      error
}

// StatsScreen shows tree statistics and past plays.
type StatsScreen struct {
	svc      *sess.Service
	overview *sess.Overview
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(svc *sess.Service) *StatsScreen {
	return &StatsScreen{
		svc:      svc,
		expanded: make(map[int]bool),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ov, err := svc.Overview(context.Background(), recentLimit)
		return overviewLoadedMsg{Overview: ov, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Estadísticas"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detalles"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.overview = msg.Overview
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.overview != nil && s.selected < len(s.overview.Recent)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			"\n\n  Cargando estadísticas...")
	}

	ov := s.overview
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTotals(ov)))
	b.WriteString("\n\n")

	if len(ov.Recent) == 0 {
		b.WriteString(layout.Centered(width, theme.Hint, "Aún no hay partidas. ¡Juega una!"))
		return b.String()
	}

	for i, rec := range ov.Recent {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %-11s  %2d %s  %s",
			prefix,
			rec.StartedAt.Local().Format("02 Jan 2006 15:04"),
			OutcomeLabel(rec.Outcome),
			rec.Steps, plural(rec.Steps, "respuesta ", "respuestas"),
			formatDuration(rec))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := lipgloss.NewStyle().Foreground(outcomeColor(rec.Outcome)).Italic(true).
				Render("    " + Describe(rec))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderTotals(ov *sess.Overview) string {
	h := ov.History
	rate := "-"
	if h.Guessed+h.Learned > 0 {
		rate = fmt.Sprintf("%.0f%%", h.GuessRate()*100)
	}
	avg := "-"
	if h.Total > 0 {
		avg = fmt.Sprintf("%.1f", h.AvgSteps)
	}

	rows := [][2]string{
		{"Personajes", fmt.Sprint(ov.Tree.Subjects)},
		{"Preguntas", fmt.Sprint(ov.Tree.Questions)},
		{"Ramas sin explorar", fmt.Sprint(ov.Tree.Unexplored)},
		{"Profundidad", fmt.Sprint(ov.Tree.Depth)},
		{"Partidas", fmt.Sprint(h.Total)},
		{"Acertadas / aprendidas", fmt.Sprintf("%d / %d", h.Guessed, h.Learned)},
		{"Tasa de acierto", rate},
		{"Respuestas por partida", avg},
		{"Copias de seguridad", fmt.Sprint(ov.Snapshots)},
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(24)
	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, label.Render(r[0])+value.Render(r[1]))
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

// Describe summarises a recorded play in one sentence.
func Describe(rec store.SessionRecord) string {
	switch rec.Outcome {
	case store.OutcomeGuessed:
		return "Adiviné a " + rec.Guess
	case store.OutcomeLearned:
		if rec.Discarded != "" {
			return fmt.Sprintf("Aprendí a %s en lugar de %s: %q", rec.Subject, rec.Discarded, rec.Question)
		}
		return fmt.Sprintf("Aprendí a %s: %q", rec.Subject, rec.Question)
	case store.OutcomeFailed:
		return "Nodo inválido en " + rec.Path
	}
	return "Partida abandonada"
}

// OutcomeLabel names an outcome in Spanish.
func OutcomeLabel(outcome string) string {
	switch outcome {
	case store.OutcomeGuessed:
		return "acertada"
	case store.OutcomeLearned:
		return "aprendida"
	case store.OutcomeFailed:
		return "fallida"
	}
	return "abandonada"
}

func outcomeColor(outcome string) color.Color {
	switch outcome {
	case store.OutcomeGuessed:
		return theme.Success
	case store.OutcomeLearned:
		return theme.Accent
	case store.OutcomeFailed:
		return theme.Error
	}
	return theme.TextDim
}

func formatDuration(rec store.SessionRecord) string {
	secs := int(rec.Duration().Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
