package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/agora/pkg/domain"
)

// -- messages --

type commentsLoadedMsg struct {
	topicID  int64
	comments []domain.Comment
	err      error
}

type commentPostedMsg struct {
	topicID int64
	err     error
}

// cursorBlinkMsg toggles the composer cursor. Ticks from an older focus
// are dropped so only one blink chain runs.
type cursorBlinkMsg struct {
	id int
}

func cursorBlinkCmd(id int) tea.Cmd {
	return tea.Tick(530*time.Millisecond, func(time.Time) tea.Msg {
		return cursorBlinkMsg{id: id}
	})
}

// -- model --

// commentsModel shows one topic's comments with a composer underneath.
type commentsModel struct {
	forum        Forum
	topic        domain.Topic
	comments     []domain.Comment
	cursor       int
	loading      bool
	err          string
	input        string
	inputFocused bool
	cursorOn     bool
	blinkID      int
	posting      bool
	width        int
	height       int
}

func newCommentsModel(f Forum) commentsModel {
	return commentsModel{forum: f}
}

// open switches the model to topic and starts loading its comments.
func (m commentsModel) open(topic domain.Topic) (commentsModel, tea.Cmd) {
	m.topic = topic
	m.comments = nil
	m.cursor = 0
	m.err = ""
	m.input = ""
	m.inputFocused = false
	m.posting = false
	m.loading = true
	return m, m.loadComments()
}

func (m commentsModel) loadComments() tea.Cmd {
	f := m.forum
	topicID := m.topic.ID
	return func() tea.Msg {
		comments, err := f.ListComments(context.Background(), topicID)
		return commentsLoadedMsg{topicID: topicID, comments: comments, err: err}
	}
}

func (m commentsModel) postComment(content string) tea.Cmd {
	f := m.forum
	topicID := m.topic.ID
	return func() tea.Msg {
		err := f.PostComment(context.Background(), topicID, content)
		return commentPostedMsg{topicID: topicID, err: err}
	}
}

func (m commentsModel) Update(msg tea.Msg) (commentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case commentsLoadedMsg:
		if msg.topicID != m.topic.ID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.comments = msg.comments
		if m.cursor >= len(m.comments) {
			m.cursor = max(len(m.comments)-1, 0)
		}

	case commentPostedMsg:
		if msg.topicID != m.topic.ID {
			return m, nil
		}
		m.posting = false
		if msg.err != nil {
			return m, nil
		}
		m.input = ""
		m.loading = true
		return m, m.loadComments()

	case cursorBlinkMsg:
		if !m.inputFocused || msg.id != m.blinkID {
			return m, nil
		}
		m.cursorOn = !m.cursorOn
		return m, cursorBlinkCmd(m.blinkID)

	case tea.KeyMsg:
		m.cursorOn = true
		if m.inputFocused {
			return m.updateInput(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

func (m commentsModel) updateInput(msg tea.KeyMsg) (commentsModel, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc":
		m.inputFocused = false
	case "enter":
		content := strings.TrimSpace(m.input)
		if content == "" || m.topic.ID == 0 || m.posting {
			return m, nil
		}
		m.posting = true
		return m, m.postComment(content)
	default:
		m.input = editRune(m.input, key)
	}
	return m, nil
}

func (m commentsModel) updateNav(msg tea.KeyMsg) (commentsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.comments)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "i", "enter":
		m.inputFocused = true
		m.blinkID++
		return m, cursorBlinkCmd(m.blinkID)
	case "c":
		if m.cursor < len(m.comments) {
			return m, copyCmd("comment", m.comments[m.cursor].Line())
		}
	case "r":
		m.loading = true
		return m, m.loadComments()
	}
	return m, nil
}

func (m commentsModel) View() string {
	var b strings.Builder

	b.WriteString(" " + titleStyle.Render(oneLine(m.topic.Title)) + "\n")
	if m.topic.Description != "" {
		wrapped := lipgloss.NewStyle().Width(max(m.width-2, 20)).Render(m.topic.Description)
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString(" " + dimStyle.Render(line) + "\n")
		}
	}
	sep := strings.Repeat("─", max(m.width-2, 4))
	b.WriteString(" " + metaStyle.Render(sep) + "\n")

	used := strings.Count(b.String(), "\n")
	// composer + status line below the list
	listHeight := max(m.height-used-2, 1)

	switch {
	case m.loading && len(m.comments) == 0:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
	case m.err != "" && len(m.comments) == 0:
		b.WriteString(" " + dimStyle.Render("could not load comments · press r to retry") + "\n")
	case len(m.comments) == 0:
		b.WriteString(" " + dimStyle.Render("no comments yet · press i to write the first one") + "\n")
	default:
		start, end := visibleRange(m.cursor, len(m.comments), listHeight)
		for i := start; i < end; i++ {
			b.WriteString(m.renderComment(i) + "\n")
		}
	}

	b.WriteString("\n")
	if m.posting {
		b.WriteString(" " + dimStyle.Render("posting..."))
	} else {
		b.WriteString(renderInputLine(m.input, "write a comment...", m.inputFocused, m.cursorOn))
	}
	b.WriteString("\n")
	return b.String()
}

func (m commentsModel) renderComment(i int) string {
	c := m.comments[i]
	cursor := "  "
	if i == m.cursor && !m.inputFocused {
		cursor = accentStyle.Render("▸") + " "
	}
	name := c.CreatedBy.Username
	if name == "" {
		name = "anonymous"
	}
	bodyWidth := max(m.width-len(name)-8, 10)
	body := truncStr(oneLine(c.Content), bodyWidth)
	return fmt.Sprintf(" %s%s%s %s", cursor, AuthorStyle(name).Render(name), sepStyle.Render(":"), commentTextStyle.Render(body))
}

func (m commentsModel) helpKeys() string {
	if m.inputFocused {
		return helpEntry("enter", "post") + "  " + helpEntry("esc", "nav")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("i", "write") + "  " + helpEntry("c", "copy") + "  " + helpEntry("r", "reload") + "  " + helpEntry("esc", "back") + "  " + helpEntry("q", "quit")
}
