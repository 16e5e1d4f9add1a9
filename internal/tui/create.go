package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/agora/pkg/client"
)

type createField int

const (
	fieldTitle createField = iota
	fieldDescription
	numFields
)

type createModel struct {
	forum     Forum
	fields    [numFields]string
	focus     createField
	statusMsg string
	submitted bool
}

type topicCreatedMsg struct {
	title string
	err   error
}

func newCreateModel(f Forum) createModel {
	return createModel{forum: f}
}

func (m createModel) Update(msg tea.Msg) (createModel, tea.Cmd) {
	switch msg := msg.(type) {
	case topicCreatedMsg:
		m.submitted = false
		if msg.err != nil {
			return m, nil
		}
		m.fields = [numFields]string{}
		m.focus = fieldTitle
		return m, nil

	case tea.KeyMsg:
		if m.submitted {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m createModel) updateKeys(msg tea.KeyMsg) (createModel, tea.Cmd) {
	m.statusMsg = ""

	switch key := msg.String(); key {
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.focus = (m.focus + 1) % numFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numFields) % numFields
	case "enter":
		if m.focus == numFields-1 {
			return m.submit()
		}
		m.focus++
	default:
		m.fields[m.focus] = editRune(m.fields[m.focus], key)
	}
	return m, nil
}

func (m createModel) submit() (createModel, tea.Cmd) {
	title := strings.TrimSpace(m.fields[fieldTitle])
	if title == "" {
		m.statusMsg = "title is required"
		return m, nil
	}

	m.submitted = true
	req := client.CreateTopicRequest{
		Title:       title,
		Description: strings.TrimSpace(m.fields[fieldDescription]),
	}
	f := m.forum
	return m, func() tea.Msg {
		err := f.CreateTopic(context.Background(), req)
		return topicCreatedMsg{title: title, err: err}
	}
}

func (m createModel) View() string {
	var b strings.Builder

	b.WriteString(" " + titleStyle.Render("New topic") + "\n\n")

	labels := [numFields]string{"title", "description"}
	for i := createField(0); i < numFields; i++ {
		cursor := " "
		style := metaStyle
		value := m.fields[i]
		if i == m.focus {
			cursor = accentStyle.Render(">")
			style = selectedStyle
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(fmt.Sprintf("%-11s", labels[i])), value)
	}

	b.WriteString("\n")
	if m.submitted {
		b.WriteString(" " + dimStyle.Render("creating..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.statusMsg))
	}
	return b.String()
}

func (m createModel) helpKeys() string {
	return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "submit") + "  " + helpEntry("esc", "cancel")
}
