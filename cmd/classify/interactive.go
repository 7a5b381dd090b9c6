package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fpgaio/config"
	"github.com/wippyai/fpgaio/fixed"
	"github.com/wippyai/fpgaio/pointnn"
	"github.com/wippyai/fpgaio/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	regStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	mismatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historySize = 10

type classification struct {
	point    pointnn.Point
	actual   fixed.I7F25
	expected fixed.I7F25
}

type interactiveModel struct {
	err      error
	sess     *session.Session
	target   string
	history  []classification
	inputs   []textinput.Model
	focusIdx int
}

func newInteractiveModel(s *session.Session, dev config.Device) *interactiveModel {
	target := fmt.Sprintf("%s @ 0x%X", dev.Path, dev.Base)
	if dev.Simulate {
		target = "simulator"
	}

	inputs := make([]textinput.Model, 2)
	for i, name := range []string{"x", "y"} {
		ti := textinput.New()
		ti.Placeholder = "-64 .. 64"
		ti.Prompt = name + ": "
		ti.Width = 20
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}

	return &interactiveModel{
		sess:   s,
		target: target,
		inputs: inputs,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
			return m, nil

		case "enter":
			m.classify()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) classify() {
	m.err = nil

	p, err := parsePoint(m.inputs[0].Value(), m.inputs[1].Value())
	if err != nil {
		m.err = err
		return
	}
	actual, err := pointnn.Classify(m.sess, p)
	if err != nil {
		m.err = err
		return
	}

	m.history = append([]classification{{
		point:    p,
		actual:   actual,
		expected: pointnn.Expected(p),
	}}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}
}

func parsePoint(xs, ys string) (pointnn.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return pointnn.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return pointnn.Point{}, fmt.Errorf("y: %w", err)
	}
	return pointnn.NewPoint(x, y)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Point Classifier"))
	b.WriteString(" ")
	b.WriteString(m.target)
	b.WriteString("\n\n")

	b.WriteString("Writing to ")
	b.WriteString(regStyle.Render(pointnn.InputVector.Descriptor().String()))
	b.WriteString("\n\n")
	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	for _, c := range m.history {
		line := fmt.Sprintf("%-36s -> %s", formatPoint(c.point), formatValue(c.actual))
		if c.actual == c.expected {
			b.WriteString(resultStyle.Render(line))
		} else {
			b.WriteString(mismatchStyle.Render(line + fmt.Sprintf(" (expected %s)", c.expected)))
		}
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab next field • enter classify • esc quit"))
	return b.String()
}

func runInteractive(s *session.Session, dev config.Device) error {
	p := tea.NewProgram(newInteractiveModel(s, dev), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
