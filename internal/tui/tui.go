// Package tui is the interactive bubbletea front-end for the trainer.
// It runs inline (no alt screen) so the session transcript stays in the
// terminal scrollback after exit.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tuxtrain/tuxtrain/internal/session"
	"github.com/tuxtrain/tuxtrain/internal/tui/styles"
)

// transcriptTail caps how many feedback lines stay on screen.
const transcriptTail = 14

type stepMsg struct {
	res session.StepResult
}

type appModel struct {
	ctx  context.Context
	sess *session.Session

	keyMap KeyMap
	help   help.Model
	input  textinput.Model

	transcript []string
	width      int
	judging    bool
	quitting   bool
}

// New creates the trainer TUI over an already positioned session.
func New(ctx context.Context, sess *session.Session) tea.Model {
	t := styles.CurrentTheme()

	ti := textinput.New()
	ti.Placeholder = "Type a command, or 'hint'"
	ti.SetVirtualCursor(false)
	ti.SetStyles(t.S().TextInput)
	ti.Focus()

	h := help.New()
	h.Styles = t.S().Help

	return &appModel{
		ctx:    ctx,
		sess:   sess,
		keyMap: DefaultKeyMap(),
		help:   h,
		input:  ti,
	}
}

func (m *appModel) Init() tea.Cmd {
	return nil
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(20, msg.Width-4))
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			m.quitting = true
			m.say(styles.CurrentTheme().S().Muted, "Exiting the trainer. Goodbye!")
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Hint):
			return m, m.submit("hint")
		case key.Matches(msg, m.keyMap.Submit):
			value := m.input.Value()
			m.input.SetValue("")
			return m, m.submit(value)
		}

	case stepMsg:
		m.judging = false
		return m, m.renderStep(msg.res)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands one line to the engine. Steps run as a command so a slow
// demonstration does not freeze the input loop.
func (m *appModel) submit(value string) tea.Cmd {
	if m.judging || m.sess.Done() {
		return nil
	}
	m.judging = true
	m.say(styles.CurrentTheme().S().Muted, "> "+value)
	return func() tea.Msg {
		return stepMsg{res: m.sess.Step(m.ctx, value)}
	}
}

func (m *appModel) renderStep(res session.StepResult) tea.Cmd {
	s := styles.CurrentTheme().S()

	switch res.Outcome {
	case session.OutcomeQuit:
		m.quitting = true
		m.say(s.Muted, "Exiting the trainer. Goodbye!")
		return tea.Quit

	case session.OutcomeHint:
		if res.Hint == "" {
			m.say(s.Warning, "No hint available for this level.")
		} else {
			m.say(s.Warning, "Hint: "+res.Hint)
		}

	case session.OutcomeIncorrect:
		m.say(s.Error, "Oops, that's not the right command. Try again or type 'hint' for help.")

	case session.OutcomeCorrect, session.OutcomeFinished:
		m.say(s.Success, "Correct! Well done.")
		m.sayDemonstration(res)
		if res.Outcome == session.OutcomeFinished {
			summary := m.sess.Summary()
			m.say(s.Success, "Congratulations! You have completed all the levels!")
			m.say(s.Text, fmt.Sprintf("%d levels in %d attempts, took %s. Keep practising!",
				summary.Solved, summary.TotalAttempts, summary.Elapsed()))
			m.quitting = true
			return tea.Quit
		}
		m.transcript = append(m.transcript, "")
	}
	return nil
}

func (m *appModel) sayDemonstration(res session.StepResult) {
	s := styles.CurrentTheme().S()
	if res.ExecSkipped {
		m.say(s.Info, "(Command execution skipped for safety.)")
		return
	}
	if res.Stdout != "" {
		m.say(s.Text, res.Stdout)
	}
	if res.Stderr != "" {
		m.say(s.Error, res.Stderr)
	}
}

func (m *appModel) say(style lipgloss.Style, line string) {
	m.transcript = append(m.transcript, style.Render(line))
	if len(m.transcript) > transcriptTail {
		m.transcript = m.transcript[len(m.transcript)-transcriptTail:]
	}
}

func (m *appModel) View() string {
	sections := m.aboveInput()
	if !m.quitting {
		sections = append(sections, "", m.input.View(), m.help.View(m.keyMap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// aboveInput renders everything drawn above the input line.
func (m *appModel) aboveInput() []string {
	s := styles.CurrentTheme().S()

	sections := []string{
		s.Title.Render("tuxtrain") + s.Muted.Render("  learn the Linux command line"),
		"",
	}

	if current, ok := m.sess.Current(); ok {
		progress := fmt.Sprintf("Level %d/%d", m.sess.Index()+1, m.sess.Total())
		sections = append(sections,
			s.Subtitle.Render(fmt.Sprintf("** Level %d: %s **", current.Number, current.DisplayTitle()))+
				"  "+s.Subtle.Render(progress),
			s.Text.Render(current.Description),
			"",
		)
	}

	return append(sections, m.transcript...)
}

// Cursor places the terminal cursor inside the input line.
func (m *appModel) Cursor() *tea.Cursor {
	if m.quitting {
		return nil
	}
	cursor := m.input.Cursor()
	if cursor != nil {
		cursor.Y += lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, m.aboveInput()...)) + 1
	}
	return cursor
}
