package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adivina/internal/knowledge"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestYesNo_Hotkeys(t *testing.T) {
	c := NewYesNo().Update(keyPress('n'))
	if !c.Answered() || c.Chosen {
		t.Errorf("after n: answered=%v chosen=%v, want true false", c.Answered(), c.Chosen)
	}

	c = NewYesNo().Update(keyPress('s'))
	if !c.Answered() || !c.Chosen {
		t.Errorf("after s: answered=%v chosen=%v, want true true", c.Answered(), c.Chosen)
	}
}

func TestYesNo_ArrowsThenEnter(t *testing.T) {
	c := NewYesNo()
	c = c.Update(specialKey(tea.KeyRight))
	if c.Yes {
		t.Fatal("expected No selected after right")
	}
	if c.Answered() {
		t.Fatal("moving the selection must not answer")
	}
	c = c.Update(specialKey(tea.KeyEnter))
	if !c.Answered() || c.Chosen {
		t.Errorf("enter on No: answered=%v chosen=%v", c.Answered(), c.Chosen)
	}

	// Answered selectors ignore further keys.
	c = c.Update(keyPress('s'))
	if c.Chosen {
		t.Error("answered selector changed its choice")
	}
}

func TestYesNo_IgnoresOtherKeys(t *testing.T) {
	c := NewYesNo().Update(keyPress('x'))
	if c.Answered() {
		t.Error("x must not answer")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { picked = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { picked = "D"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Fatalf("Selected = %d after down, want 3", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyEnter))
	if picked != "D" {
		t.Errorf("picked = %q, want D", picked)
	}

	if !strings.Contains(m.View(), "▸ D") {
		t.Error("view does not mark the selected item")
	}
}

func TestMenu_WrapsAndHotkeys(t *testing.T) {
	var picked string
	pick := func(name string) func() tea.Cmd {
		return func() tea.Cmd { picked = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "JUGAR", Hotkey: "p", Action: pick("jugar")},
		{Label: "ÁRBOL", Hotkey: "a", Action: pick("arbol"), Disabled: true},
		{Label: "SALIR", Hotkey: "q", Action: pick("salir")},
	})

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 2 {
		t.Fatalf("Selected = %d after up from the top, want 2", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 0 {
		t.Fatalf("Selected = %d after down from the bottom, want 0", m.Selected)
	}

	m, _ = m.Update(keyPress('a'))
	if picked != "" || m.Selected != 0 {
		t.Errorf("disabled hotkey fired: picked=%q selected=%d", picked, m.Selected)
	}
	m, _ = m.Update(keyPress('q'))
	if picked != "salir" || m.Selected != 2 {
		t.Errorf("hotkey q: picked=%q selected=%d", picked, m.Selected)
	}
}

func TestTextInput_RejectClearsOnKey(t *testing.T) {
	ti := NewTextInput("Nombre", "", 0)
	ti.Reject("no puede estar vacío")
	if !strings.Contains(ti.View(), "no puede estar vacío") {
		t.Fatal("rejection not shown")
	}

	ti, _ = ti.Update(keyPress('a'))
	if ti.Err() != "" {
		t.Errorf("Err = %q after typing, want empty", ti.Err())
	}
}

func TestTextInput_ValueIsTrimmed(t *testing.T) {
	ti := NewTextInput("", "", 0)
	ti.Model.SetValue("  Fernando Alonso ")
	if got := ti.Value(); got != "Fernando Alonso" {
		t.Errorf("Value = %q, want %q", got, "Fernando Alonso")
	}
}

func TestRenderTree_Plain(t *testing.T) {
	root := knowledge.NewInterior("¿Es un piloto de la parrilla actual?",
		knowledge.NewInterior("¿Es neerlandés?", knowledge.NewLeaf("Max Verstappen"), knowledge.Empty()),
		knowledge.Empty(),
	)

	want := strings.Join([]string{
		"¿Es un piloto de la parrilla actual?",
		"├── sí: ¿Es neerlandés?",
		"│   ├── sí: ● Max Verstappen",
		"│   └── no: (sin explorar)",
		"└── no: (sin explorar)",
		"",
	}, "\n")

	if got := RenderTree(root, PlainTreeStyles()); got != want {
		t.Errorf("RenderTree =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTree_Degenerate(t *testing.T) {
	if got := RenderTree(knowledge.NewLeaf("Ayrton Senna"), PlainTreeStyles()); got != "● Ayrton Senna\n" {
		t.Errorf("leaf root = %q", got)
	}
	if got := RenderTree(nil, PlainTreeStyles()); got != "(sin explorar)\n" {
		t.Errorf("nil root = %q", got)
	}
}
