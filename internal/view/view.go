// Package view shows figures in a full-screen terminal window, the
// counterpart of a blocking plt.show().
package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
)

var ErrNoPages = errors.New("view: nothing to show")

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	themeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Page is one figure in the viewer, drawn in its own theme unless the user
// cycles to another.
type Page struct {
	Name   string
	Figure *plot.Figure
	Theme  plot.Theme
}

type Model struct {
	pages         []Page
	index         int
	override      *plot.Theme
	width, height int
}

func NewModel(pages []Page) Model {
	return Model{
		pages:  pages,
		width:  plot.DefaultSize.Width + 12,
		height: plot.DefaultSize.Height + 8,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "n", " ":
			if m.index < len(m.pages)-1 {
				m.index++
			}
		case "left", "h", "p":
			if m.index > 0 {
				m.index--
			}
		case "t":
			next := plot.NextTheme(m.Theme().Name)
			m.override = &next
		case "r":
			m.override = nil
		}
	}
	return m, nil
}

// Index is the page currently on screen.
func (m Model) Index() int {
	return m.index
}

// Theme is the theme the current page is drawn in.
func (m Model) Theme() plot.Theme {
	if m.override != nil {
		return *m.override
	}
	if len(m.pages) == 0 {
		return plot.ThemeDefault
	}
	return m.pages[m.index].Theme
}

func (m Model) plotSize() plot.Size {
	return plot.Size{Width: m.width - 14, Height: m.height - 10}
}

func (m Model) View() string {
	if len(m.pages) == 0 {
		return errorStyle.Render(ErrNoPages.Error()) + "\n"
	}
	page := m.pages[m.index]
	theme := m.Theme()

	header := headerStyle.Render(fmt.Sprintf("%s  (%d/%d)", page.Name, m.index+1, len(m.pages)) +
		themeStyle.Render("  theme: "+theme.Name))

	body, err := plot.RenderTerminal(page.Figure, theme, m.plotSize())
	if err != nil {
		body = errorStyle.Render(err.Error())
	}

	help := helpStyle.Render(strings.Join([]string{
		"←/→ page", "t theme", "r reset theme", "q quit",
	}, " • "))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help) + "\n"
}

// Run blocks until the user closes the viewer.
func Run(pages []Page) error {
	if len(pages) == 0 {
		return ErrNoPages
	}
	p := tea.NewProgram(NewModel(pages), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
