package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adivina/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"¡Terminal demasiado pequeña!\n\nAmplíala hasta al menos\n%d x %d\n\nActual: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

var (
	brandStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(theme.Text)
	badgeStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle   = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the brand on the left, the screen title in the
// middle and badges such as "● 12 personajes" on the right.
func RenderHeader(title string, badges []string, width int) string {
	inner := max(width-4, 0) // border + padding
	brand := brandStyle.Render("  Adivina")
	right := badgeStyle.Render(strings.Join(badges, "   "))

	middle := max(inner-lipgloss.Width(brand)-lipgloss.Width(right), 0)
	center := lipgloss.PlaceHorizontal(middle, lipgloss.Center, titleStyle.Render(title))

	return bar(width).Render(brand + center + right)
}

// RenderFooter lists key hints, e.g. "Esc Volver".
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

// Centered renders s horizontally centered in width with the given style.
func Centered(width int, style lipgloss.Style, s string) string {
	return style.Width(width).Align(lipgloss.Center).Render(s)
}
