package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kelly/internal/chat"
	"kelly/internal/config"
	"kelly/internal/reply"
)

// Replier produces a styled answer for a question. Satisfied by
// *reply.Controller.
type Replier interface {
	Reply(ctx context.Context, prompt, model string, maxAttempts int) reply.Result
}

// Options configures the chat screen.
type Options struct {
	Replier     Replier
	Model       string
	Models      []string
	MaxAttempts int
	Styles      *Styles
}

type replyMsg struct {
	result reply.Result
}

// Model is the bubbletea model for the chat screen.
type Model struct {
	replier  Replier
	session  *chat.Session
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   Styles

	model    string
	models   []string
	attempts int

	busy   bool
	ready  bool
	status string
	width  int
	height int
}

// New builds the chat screen model.
func New(opts Options) Model {
	input := textinput.New()
	input.Prompt = "❯ "
	input.Placeholder = "Ask Kelly anything..."
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#c792ea"))

	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	models := opts.Models
	if len(models) == 0 {
		models = config.KnownModels
	}
	attempts := opts.MaxAttempts
	if attempts == 0 {
		attempts = config.Default().Reply.MaxAttempts
	}

	return Model{
		replier:  opts.Replier,
		session:  chat.NewSession(),
		input:    input,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		styles:   styles,
		model:    opts.Model,
		models:   models,
		attempts: clampAttempts(attempts),
		status:   "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.refreshTranscript()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case replyMsg:
		m.busy = false
		m.session.AppendAssistant(msg.result)
		if msg.result.Source == reply.SourceFallback {
			m.status = "local fallback shown"
		} else {
			m.status = "ready"
		}
		m.refreshTranscript()
		m.viewport.GotoBottom()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if cmd := m.submit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case "ctrl+l":
			m.session.Clear()
			m.status = "transcript cleared"
			m.refreshTranscript()
		case "tab":
			m.model = nextModel(m.model, m.models)
			m.status = "model set to " + m.model
		case "f2":
			m.attempts = clampAttempts(m.attempts - 1)
			m.status = fmt.Sprintf("attempt budget %d", m.attempts)
		case "f3":
			m.attempts = clampAttempts(m.attempts + 1)
			m.status = fmt.Sprintf("attempt budget %d", m.attempts)
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		default:
			if !m.busy {
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Key messages are routed explicitly above; letting them fall through
	// to the viewport would hijack letters bound to its scroll keymap.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit sends the current input line to the reply controller. Empty
// submissions are ignored, as is input while a request is in flight.
func (m *Model) submit() tea.Cmd {
	if m.busy {
		return nil
	}
	question := strings.TrimSpace(m.input.Value())
	if question == "" {
		return nil
	}

	m.session.AppendUser(question)
	m.input.Reset()
	m.busy = true
	m.status = "thinking..."
	m.refreshTranscript()
	m.viewport.GotoBottom()

	replier := m.replier
	model := m.model
	attempts := m.attempts
	return func() tea.Msg {
		res := replier.Reply(context.Background(), question, model, attempts)
		return replyMsg{result: res}
	}
}

func (m *Model) resize() {
	inputHeight := 3
	chromeHeight := 3
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-inputHeight-chromeHeight, 1)
	m.input.Width = max(m.width-6, 10)
	m.styles.InputBox = m.styles.InputBox.Width(max(m.width-2, 12))
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(renderTranscript(m.session.Turns(), m.styles))
}

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("Kelly"),
		m.styles.Status.Render(fmt.Sprintf("  %s · attempts=%d · %s", m.model, m.attempts, m.status)),
	)

	var inputLine string
	if m.busy {
		inputLine = m.styles.InputBox.Render(m.spinner.View() + " composing a reply...")
	} else {
		inputLine = m.styles.InputBox.Render(m.input.View())
	}

	help := m.styles.Help.Render("enter send · tab model · f2/f3 attempts · ctrl+l clear · esc quit")

	return strings.Join([]string{header, m.viewport.View(), inputLine, help}, "\n")
}

// renderTranscript lays out the session turns as alternating speaker
// blocks. The fallback notice line keeps its own style so it stands
// apart from poem text.
func renderTranscript(turns []chat.Turn, styles Styles) string {
	if len(turns) == 0 {
		return styles.Status.Render("No messages yet. Ask a question to begin.")
	}

	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch turn.Role {
		case chat.RoleUser:
			b.WriteString(styles.User.Render("You"))
			b.WriteString("\n")
			b.WriteString(turn.Content)
		case chat.RoleAssistant:
			b.WriteString(styles.Assistant.Render("Kelly"))
			b.WriteString("\n")
			b.WriteString(styleAssistantContent(turn.Content, styles))
		}
	}
	return b.String()
}

func styleAssistantContent(content string, styles Styles) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "(Kelly note:") {
			lines[i] = styles.Notice.Render(line)
		} else {
			lines[i] = styles.Poem.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// nextModel cycles through the known model list, falling back to the
// first entry when the current value is unknown.
func nextModel(current string, models []string) string {
	if len(models) == 0 {
		return current
	}
	for i, model := range models {
		if model == current {
			return models[(i+1)%len(models)]
		}
	}
	return models[0]
}

func clampAttempts(n int) int {
	if n < config.MinAttempts {
		return config.MinAttempts
	}
	if n > config.MaxAttempts {
		return config.MaxAttempts
	}
	return n
}
