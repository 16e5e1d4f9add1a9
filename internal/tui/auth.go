package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/agora/pkg/client"
	"github.com/naveenspark/agora/pkg/domain"
)

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

func (m authMode) String() string {
	if m == authRegister {
		return "Register"
	}
	return "Log in"
}

type formField struct {
	label  string
	value  string
	secret bool
}

type loggedInMsg struct {
	resp *domain.LoginResponse
	err  error
}

type registeredMsg struct {
	username string
	err      error
}

// authModel is the login / registration form.
type authModel struct {
	forum      Forum
	mode       authMode
	fields     []formField
	focus      int
	statusMsg  string
	submitting bool
}

func newAuthModel(f Forum, mode authMode) authModel {
	m := authModel{forum: f, mode: mode}
	switch mode {
	case authRegister:
		m.fields = []formField{
			{label: "username"},
			{label: "email"},
			{label: "password", secret: true},
		}
	default:
		m.fields = []formField{
			{label: "email"},
			{label: "password", secret: true},
		}
	}
	return m
}

func (m authModel) value(label string) string {
	for _, f := range m.fields {
		if f.label == label {
			return f.value
		}
	}
	return ""
}

func (m authModel) Update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loggedInMsg, registeredMsg:
		m.submitting = false
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m authModel) updateKeys(msg tea.KeyMsg) (authModel, tea.Cmd) {
	m.statusMsg = ""
	n := len(m.fields)

	switch key := msg.String(); key {
	case "tab", "down":
		m.focus = (m.focus + 1) % n
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + n) % n
	case "enter":
		if m.focus < n-1 {
			m.focus++
			return m, nil
		}
		return m.submit()
	default:
		m.fields[m.focus].value = editRune(m.fields[m.focus].value, key)
	}
	return m, nil
}

func (m authModel) submit() (authModel, tea.Cmd) {
	for _, f := range m.fields {
		v := f.value
		if !f.secret {
			v = strings.TrimSpace(v)
		}
		if v == "" {
			m.statusMsg = f.label + " is required"
			return m, nil
		}
	}

	m.submitting = true
	forum := m.forum
	email := strings.TrimSpace(m.value("email"))
	password := m.value("password")

	if m.mode == authRegister {
		username := strings.TrimSpace(m.value("username"))
		req := client.RegisterRequest{Username: username, Email: email, Password: password}
		return m, func() tea.Msg {
			err := forum.Register(context.Background(), req)
			return registeredMsg{username: username, err: err}
		}
	}
	return m, func() tea.Msg {
		resp, err := forum.Login(context.Background(), email, password)
		return loggedInMsg{resp: resp, err: err}
	}
}

func (m authModel) View() string {
	var b strings.Builder

	b.WriteString(" " + titleStyle.Render(m.mode.String()) + "\n\n")
	for i, f := range m.fields {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = accentStyle.Render(">")
			style = selectedStyle
		}
		value := f.value
		if f.secret {
			value = maskSecret(value)
		}
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(fmt.Sprintf("%-8s", f.label)), value)
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(" " + dimStyle.Render("submitting..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.statusMsg))
	}
	return b.String()
}

func (m authModel) helpKeys() string {
	return helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("esc", "cancel")
}
