package game

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adivina/internal/engine"
	"github.com/abhisek/adivina/internal/ui/layout"
	"github.com/abhisek/adivina/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	if s.play == nil {
		if s.errMsg != "" {
			return renderError(width, height, s.errMsg)
		}
		return renderLoading(width, height)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseQuestion:
		b.WriteString(s.renderPrompt(width, s.question))
		b.WriteString(s.renderChoice(width))

	case phaseGuess:
		b.WriteString(s.renderPrompt(width, fmt.Sprintf("¿Tu personaje es %s?", s.guess)))
		b.WriteString(s.renderChoice(width))

	case phaseLearnName:
		b.WriteString(s.renderGiveUp(width))
		b.WriteString(s.renderInput(width, s.nameInput.View()))

	case phaseLearnQuestion:
		b.WriteString(s.renderInput(width, s.qInput.View()))

	case phaseLearnAnswer:
		b.WriteString(s.renderPrompt(width,
			fmt.Sprintf("¿Cuál sería la respuesta a \"%s\" para %s?", s.newQ, s.name)))
		b.WriteString(s.renderChoice(width))

	case phaseSaving:
		b.WriteString(layout.Centered(width, theme.Hint, "Guardando..."))

	case phaseEnded:
		b.WriteString(s.renderResult(width))
	}

	return b.String()
}

func (s *GameScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Pregunta %d", s.play.Engine.Steps()+1))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(s.play.Engine.Cursor().Path())

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	rule := width - 4
	if rule < 0 {
		rule = 0
	}
	return line + "\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", rule))
}

func (s *GameScreen) renderPrompt(width int, text string) string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	return layout.Centered(width, style, text) + "\n\n"
}

func (s *GameScreen) renderChoice(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View())
}

func (s *GameScreen) renderGiveUp(width int) string {
	msg := "¡Me rindo!"
	if s.wrongGuess != "" {
		msg = fmt.Sprintf("¡Vaya! No era %s.", s.wrongGuess)
	}
	return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), msg) + "\n\n"
}

func (s *GameScreen) renderInput(width int, view string) string {
	box := theme.Card.Width(min(width-4, 70)).Render(view)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func (s *GameScreen) renderResult(width int) string {
	var b strings.Builder

	switch {
	case s.end.Outcome == engine.OutcomeGuessed:
		b.WriteString(layout.Centered(width, theme.Correct, "¡Genial! ¡Lo adiviné!"))
	case s.end.Outcome == engine.OutcomeLearned && s.errMsg == "":
		b.WriteString(layout.Centered(width, theme.Correct, "Gracias, ¡he aprendido algo nuevo!"))
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Hint,
			fmt.Sprintf("La próxima vez reconoceré a %s.", s.name)))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Incorrect, "Error: "+s.errMsg))
	}

	if s.record != nil {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Hint,
			fmt.Sprintf("%d %s en %s", s.record.Steps, plural(s.record.Steps, "respuesta", "respuestas"),
				s.record.Duration().Round(time.Second))))
	}

	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Body, "¿Quieres jugar de nuevo? (s/n)"))
	return b.String()
}

func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Piensa en un personaje...")
}

func renderError(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render("Error: " + msg + "\n\nPulsa cualquier tecla para volver")
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render("¿Abandonar la partida?\n\n" +
		theme.Hint.Render("No aprenderé nada de esta partida."))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
