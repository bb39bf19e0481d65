package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Hotkey, when set, activates the item
// directly, e.g. "a" for ÁRBOL.
type MenuItem struct {
	Label    string
	Hotkey   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions. Navigation skips disabled items
// and wraps around at both ends.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Selected = m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch k := key.String(); k {
	case "up", "k", "shift+tab":
		if i := m.step(-1); i >= 0 {
			m.Selected = i
		}
	case "down", "j", "tab":
		if i := m.step(1); i >= 0 {
			m.Selected = i
		}
	case "enter":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Hotkey == k && !item.Disabled {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

// step returns the nearest enabled item in direction dir from the
// selection, or -1 when there is none.
func (m Menu) step(dir int) int {
	n := len(m.Items)
	for d := 1; d <= n; d++ {
		i := ((m.Selected+dir*d)%n + n) % n
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// View renders the items one per line with a marker on the selection.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(theme.Hint.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ "+item.Label) + hotkeyHint(item))
		default:
			b.WriteString(theme.Unselected.Render("    "+item.Label) + hotkeyHint(item))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hotkeyHint(item MenuItem) string {
	if item.Hotkey == "" {
		return ""
	}
	return theme.Hint.Render(" [" + item.Hotkey + "]")
}
