package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/agora/pkg/domain"
)

// -- messages --

type topicsLoadedMsg struct {
	topics []domain.Topic
	err    error
}

// openTopicMsg asks the app to show the comments of a topic.
type openTopicMsg struct {
	topic domain.Topic
}

type copyResultMsg struct {
	what string
	err  error
}

// copyCmd writes text to the system clipboard off the UI goroutine.
func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

// -- model --

type topicsModel struct {
	forum   Forum
	topics  []domain.Topic
	cursor  int
	loading bool
	err     string
	width   int
	height  int
}

func newTopicsModel(f Forum) topicsModel {
	return topicsModel{forum: f, loading: true}
}

func (m topicsModel) Init() tea.Cmd {
	return m.loadTopics()
}

func (m topicsModel) loadTopics() tea.Cmd {
	f := m.forum
	return func() tea.Msg {
		topics, err := f.ListTopics(context.Background())
		return topicsLoadedMsg{topics: topics, err: err}
	}
}

// reload marks the list as loading and fetches it again.
func (m topicsModel) reload() (topicsModel, tea.Cmd) {
	m.loading = true
	return m, m.loadTopics()
}

func (m topicsModel) selected() (domain.Topic, bool) {
	if m.cursor < 0 || m.cursor >= len(m.topics) {
		return domain.Topic{}, false
	}
	return m.topics[m.cursor], true
}

func (m topicsModel) Update(msg tea.Msg) (topicsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case topicsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.topics = msg.topics
		m.err = ""
		if m.cursor >= len(m.topics) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m topicsModel) handleKey(msg tea.KeyMsg) (topicsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.topics)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.topics) > 0 {
			m.cursor = len(m.topics) - 1
		}
	case "enter":
		if topic, ok := m.selected(); ok {
			return m, func() tea.Msg { return openTopicMsg{topic: topic} }
		}
	case "c":
		if topic, ok := m.selected(); ok {
			return m, copyCmd("title", topic.Title)
		}
	case "r":
		return m.reload()
	}
	return m, nil
}

func (m topicsModel) View() string {
	var b strings.Builder

	b.WriteString(" " + titleStyle.Render("Topics") + "\n")
	sep := strings.Repeat("─", max(m.width-2, 4))
	b.WriteString(" " + metaStyle.Render(sep) + "\n")

	if m.loading && len(m.topics) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" && len(m.topics) == 0 {
		b.WriteString(" " + dimStyle.Render("could not load topics · press r to retry") + "\n")
		return b.String()
	}
	if len(m.topics) == 0 {
		b.WriteString("\n " + dimStyle.Render("no topics yet · press n to start one") + "\n")
		return b.String()
	}

	titleWidth := 32
	descWidth := max(m.width-titleWidth-8, 10)
	start, end := visibleRange(m.cursor, len(m.topics), m.height-2)
	for i := start; i < end; i++ {
		topic := m.topics[i]
		cursor := "  "
		title := normalStyle.Render(fmt.Sprintf("%-*s", titleWidth, truncStr(oneLine(topic.Title), titleWidth)))
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			title = selectedStyle.Render(fmt.Sprintf("%-*s", titleWidth, truncStr(oneLine(topic.Title), titleWidth)))
		}
		desc := dimStyle.Render(truncStr(oneLine(topic.Description), descWidth))
		fmt.Fprintf(&b, " %s%s  %s\n", cursor, title, desc)
	}

	return b.String()
}

func (m topicsModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("n", "new") + "  " + helpEntry("c", "copy") + "  " + helpEntry("r", "reload") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
}
