package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

func printHelp(w io.Writer) {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f5c451")).
		Bold(true).
		Render("A G O R A")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Topics and comments from your terminal.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"agora", "Browse topics (interactive TUI)"},
		{"agora topics", "Print all topics"},
		{"agora comments <id>", "Print the comments of a topic"},
		{"agora register", "Create an account"},
		{"agora post <id> <text>", "Log in and comment on a topic"},
		{"agora docs", "Open the API docs"},
		{"agora --version", "Show version"},
		{"agora help", "You are here"},
	}

	fmt.Fprintf(w, "\n  %s\n  %s\n\n  Commands:\n", title, tagline)
	for _, c := range commands {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", c.cmd)), descStyle.Render(c.desc))
	}

	env := []struct{ name, desc string }{
		{"AGORA_API_URL", "API base URL (default http://localhost:8000)"},
		{"AGORA_TOKEN", "pre-issued token, kept in memory only"},
		{"AGORA_TIMEOUT", "request timeout, e.g. 10s (0 disables)"},
		{"LOG_LEVEL", "debug, info, warn or error"},
		{"LOG_FILE", "log file (default ~/.agora/agora.log)"},
		{"LOG_FORMAT", "text or json"},
	}
	fmt.Fprintf(w, "\n  Environment:\n")
	for _, e := range env {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", e.name)), descStyle.Render(e.desc))
	}
	fmt.Fprintln(w)
}
