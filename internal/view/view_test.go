package view

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
)

func testPages() []Page {
	line := plot.New().Plot([]float64{0, 1, 2}, []float64{0, 1, 4}).SetTitle("squares")
	dots := plot.New().Scatter([]float64{0, 1}, []float64{1, 0}).SetTitle("dots")
	return []Page{
		{Name: "line", Figure: line, Theme: plot.ThemeDefault},
		{Name: "dots", Figure: dots, Theme: plot.ThemeSeaborn},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

func TestPaging(t *testing.T) {
	m := NewModel(testPages())

	m, _ = press(m, "left")
	if m.Index() != 0 {
		t.Errorf("expected to stay on first page, got %d", m.Index())
	}

	m, _ = press(m, "right")
	if m.Index() != 1 {
		t.Errorf("expected page 1, got %d", m.Index())
	}

	m, _ = press(m, "right", "right")
	if m.Index() != 1 {
		t.Errorf("expected to stay on last page, got %d", m.Index())
	}

	m, _ = press(m, "h")
	if m.Index() != 0 {
		t.Errorf("expected page 0, got %d", m.Index())
	}
}

func TestPageThemeAndOverride(t *testing.T) {
	m := NewModel(testPages())
	if m.Theme().Name != "default" {
		t.Errorf("expected default theme, got %s", m.Theme().Name)
	}

	m, _ = press(m, "right")
	if m.Theme().Name != "seaborn" {
		t.Errorf("expected page theme seaborn, got %s", m.Theme().Name)
	}

	m, _ = press(m, "t")
	if m.Theme().Name != plot.NextTheme("seaborn").Name {
		t.Errorf("expected theme after seaborn, got %s", m.Theme().Name)
	}

	m, _ = press(m, "r")
	if m.Theme().Name != "seaborn" {
		t.Errorf("expected reset to page theme, got %s", m.Theme().Name)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		_, cmd := press(NewModel(testPages()), k)
		if cmd == nil {
			t.Fatalf("%s: expected a command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected quit message", k)
		}
	}
}

func TestWindowResize(t *testing.T) {
	next, _ := NewModel(testPages()).Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := next.(Model)
	if got := m.plotSize(); got.Width != 86 || got.Height != 30 {
		t.Errorf("unexpected plot size %+v", got)
	}
}

func TestView(t *testing.T) {
	m := NewModel(testPages())
	out := m.View()
	if !strings.Contains(out, "line  (1/2)") || !strings.Contains(out, "squares") {
		t.Errorf("unexpected view:\n%s", out)
	}

	m, _ = press(m, "right")
	out = m.View()
	if !strings.Contains(out, "dots  (2/2)") || !strings.Contains(out, "theme: seaborn") {
		t.Errorf("unexpected view:\n%s", out)
	}
}

func TestEmpty(t *testing.T) {
	if err := Run(nil); !errors.Is(err, ErrNoPages) {
		t.Errorf("expected ErrNoPages, got %v", err)
	}
	if !strings.Contains(NewModel(nil).View(), "nothing to show") {
		t.Error("expected empty view message")
	}
}
