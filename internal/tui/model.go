package tui

import (
	"fmt"
	"strings"

	"github.com/andy/contactbook/internal/assistant"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type lineKind int

const (
	lineCommand lineKind = iota
	lineReply
	lineError
)

type transcriptLine struct {
	kind lineKind
	text string
}

// Model is the Bubble Tea model for the interactive shell
type Model struct {
	assistant  *assistant.Assistant
	input      textinput.Model
	transcript []transcriptLine
	width      int
	height     int
	quitting   bool
}

// New creates a shell model with the greeting already in the transcript
func New(a *assistant.Assistant) Model {
	input := textinput.New()
	input.Prompt = a.Prompt()
	input.Placeholder = "help"
	input.Focus()

	m := Model{assistant: a, input: input}
	if g := a.Greeting(); g != "" {
		m.transcript = append(m.transcript, transcriptLine{kind: lineReply, text: g})
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, DefaultKeyMap.Clear):
			m.transcript = nil
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, transcriptLine{kind: lineCommand, text: line})
	reply := m.assistant.Handle(line)
	for _, text := range strings.Split(reply.Text, "\n") {
		m.transcript = append(m.transcript, transcriptLine{kind: classify(text), text: text})
	}

	if reply.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func classify(text string) lineKind {
	switch {
	case strings.HasPrefix(text, "Error:"), text == "Contact not found.", text == "Invalid command.":
		return lineError
	default:
		return lineReply
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render("contactbook")
	footer := footerStyle.Render(fmt.Sprintf("[%s] %s  [%s] %s  [%s] %s",
		DefaultKeyMap.Submit.Help().Key, DefaultKeyMap.Submit.Help().Desc,
		DefaultKeyMap.Clear.Help().Key, DefaultKeyMap.Clear.Help().Desc,
		DefaultKeyMap.Quit.Help().Key, DefaultKeyMap.Quit.Help().Desc))

	body := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", header, m.renderTranscript(), m.input.View(), footer)
	if m.width == 0 {
		return body
	}

	innerWidth := max(m.width-6, 20) // border (2) + padding (4)
	return appBorderStyle.Width(innerWidth).Render(body)
}

// renderTranscript shows the most recent lines that fit the window
func (m Model) renderTranscript() string {
	lines := m.transcript
	if m.height > 0 {
		visible := max(m.height-12, 1) // header, input, footer, border and padding
		if len(lines) > visible {
			lines = lines[len(lines)-visible:]
		}
	}

	rendered := make([]string, len(lines))
	for i, l := range lines {
		switch l.kind {
		case lineCommand:
			rendered[i] = commandStyle.Render("> " + l.text)
		case lineError:
			rendered[i] = errorStyle.Render(l.text)
		default:
			rendered[i] = replyStyle.Render(l.text)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// Run starts the shell
func Run(a *assistant.Assistant) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
