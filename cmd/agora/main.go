package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/naveenspark/agora/internal/browser"
	"github.com/naveenspark/agora/internal/config"
	"github.com/naveenspark/agora/internal/logger"
	"github.com/naveenspark/agora/internal/tui"
	"github.com/naveenspark/agora/pkg/client"
	"github.com/naveenspark/agora/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// openBrowser is swapped out in tests.
var openBrowser = browser.Open

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Fprintln(stdout, "agora "+version)
			return nil
		case "help", "--help", "-h":
			printHelp(stdout)
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	closeLog := logger.Init(cfg.Log)
	defer closeLog()

	c := client.New(cfg.APIURL,
		client.WithSession(domain.NewSession(cfg.Token)),
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(slog.Default()),
	)
	slog.Info("agora starting", "version", version, "api", c.BaseURL(), "command", strings.Join(args, " "))

	if len(args) == 0 {
		return runTUI(c)
	}

	ctx := context.Background()
	switch args[0] {
	case "topics":
		return printTopics(ctx, c, stdout)
	case "comments":
		if len(args) != 2 {
			return errors.New("usage: agora comments <topic-id>")
		}
		id, err := parseTopicID(args[1])
		if err != nil {
			return err
		}
		return printComments(ctx, c, stdout, id)
	case "register":
		return runRegister(ctx, c, newPrompter(stdin, stdout), stdout)
	case "post":
		if len(args) < 3 {
			return errors.New("usage: agora post <topic-id> <text>")
		}
		id, err := parseTopicID(args[1])
		if err != nil {
			return err
		}
		return runPost(ctx, c, newPrompter(stdin, stdout), stdout, id, strings.Join(args[2:], " "))
	case "docs":
		url := docsURL(c.BaseURL())
		fmt.Fprintln(stdout, "opening "+url)
		return openBrowser(url)
	default:
		return fmt.Errorf("unknown command %q (see agora help)", args[0])
	}
}

func runTUI(c *client.Client) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive mode needs a terminal (see agora help)")
	}
	app := tui.NewApp(c, version, docsURL(c.BaseURL()))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func docsURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/docs"
}

func parseTopicID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid topic id %q", raw)
	}
	return id, nil
}

var (
	idStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c451"))
	descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nameStyle = lipgloss.NewStyle().Bold(true)
)

func printTopics(ctx context.Context, c *client.Client, w io.Writer) error {
	topics, err := c.ListTopics(ctx)
	if err != nil {
		return fmt.Errorf("loading topics failed: %s", client.Message(err))
	}
	if len(topics) == 0 {
		fmt.Fprintln(w, "no topics yet.")
		return nil
	}
	for _, t := range topics {
		line := fmt.Sprintf("%s  %s", idStyle.Render(fmt.Sprintf("%4d", t.ID)), t.Title)
		if t.Description != "" {
			line += "  " + descStyle.Render(t.Description)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func printComments(ctx context.Context, c *client.Client, w io.Writer, topicID int64) error {
	comments, err := c.ListComments(ctx, topicID)
	if err != nil {
		return fmt.Errorf("loading comments failed: %s", client.Message(err))
	}
	if len(comments) == 0 {
		fmt.Fprintln(w, "no comments yet.")
		return nil
	}
	for _, cm := range comments {
		fmt.Fprintf(w, "%s: %s\n", nameStyle.Render(cm.CreatedBy.Username), cm.Content)
	}
	return nil
}

func runRegister(ctx context.Context, c *client.Client, p *prompter, w io.Writer) error {
	username, err := p.line("username")
	if err != nil {
		return err
	}
	email, err := p.line("email")
	if err != nil {
		return err
	}
	password, err := p.secret("password")
	if err != nil {
		return err
	}
	req := client.RegisterRequest{Username: username, Email: email, Password: password}
	if err := c.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %s", client.Message(err))
	}
	fmt.Fprintln(w, "registration successful! you can now log in.")
	return nil
}

// runPost logs in unless a token was supplied, posts, and logs out again.
func runPost(ctx context.Context, c *client.Client, p *prompter, w io.Writer, topicID int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New("comment text is empty")
	}

	if !c.Session().Authenticated() {
		email, err := p.line("email")
		if err != nil {
			return err
		}
		password, err := p.secret("password")
		if err != nil {
			return err
		}
		resp, err := c.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("login failed: %s", client.Message(err))
		}
		if resp.User != nil {
			fmt.Fprintf(w, "logged in as %s.\n", resp.User.Username)
		}
		defer func() {
			if err := c.Logout(ctx); err != nil {
				slog.Warn("logout after post failed", "error", err)
			}
		}()
	}

	if err := c.PostComment(ctx, topicID, content); err != nil {
		return fmt.Errorf("posting comment failed: %s", client.Message(err))
	}
	fmt.Fprintf(w, "comment posted to topic %d.\n", topicID)
	return nil
}
