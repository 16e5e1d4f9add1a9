package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/agora/internal/browser"
	"github.com/naveenspark/agora/pkg/client"
)

type view int

const (
	viewTopics view = iota
	viewComments
	viewAuth
	viewCreate
)

type loggedOutMsg struct {
	err error
}

// App is the root Bubbletea model.
type App struct {
	forum      Forum
	version    string
	docsURL    string
	view       view
	topics     topicsModel
	comments   commentsModel
	auth       authModel
	create     createModel
	helpOpen   bool
	helpCursor int
	status     string
	statusErr  bool
	username   string
	loggedIn   bool
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates the TUI for f. docsURL is the link offered in the help overlay.
func NewApp(f Forum, version, docsURL string) App {
	a := App{
		forum:    f,
		version:  version,
		docsURL:  docsURL,
		topics:   newTopicsModel(f),
		comments: newCommentsModel(f),
		auth:     newAuthModel(f, authLogin),
		create:   newCreateModel(f),
	}
	if s := f.Session(); s != nil && s.Authenticated() {
		a.loggedIn = true
		if u := s.User(); u != nil {
			a.username = u.Username
		}
	}
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.topics.Init(), shimmerTickCmd())
}

func (a App) logout() tea.Cmd {
	f := a.forum
	return func() tea.Msg {
		return loggedOutMsg{err: f.Logout(context.Background())}
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setFailure(action string, err error) {
	a.status = fmt.Sprintf("%s failed: %s", action, client.Message(err))
	a.statusErr = true
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + status(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.topics, _ = a.topics.Update(bodyMsg)
		a.comments, _ = a.comments.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case topicsLoadedMsg:
		if msg.err != nil {
			a.setFailure("loading topics", msg.err)
		}
		var cmd tea.Cmd
		a.topics, cmd = a.topics.Update(msg)
		return a, cmd

	case openTopicMsg:
		a.view = viewComments
		var cmd tea.Cmd
		a.comments, cmd = a.comments.open(msg.topic)
		return a, cmd

	case commentsLoadedMsg:
		if msg.err != nil && msg.topicID == a.comments.topic.ID {
			a.setFailure("loading comments", msg.err)
		}
		var cmd tea.Cmd
		a.comments, cmd = a.comments.Update(msg)
		return a, cmd

	case commentPostedMsg:
		if msg.err != nil {
			a.setFailure("posting comment", msg.err)
		} else {
			a.setStatus("comment posted.")
		}
		var cmd tea.Cmd
		a.comments, cmd = a.comments.Update(msg)
		return a, cmd

	case cursorBlinkMsg:
		var cmd tea.Cmd
		a.comments, cmd = a.comments.Update(msg)
		return a, cmd

	case loggedInMsg:
		a.auth, _ = a.auth.Update(msg)
		if msg.err != nil {
			a.setFailure("login", msg.err)
			return a, nil
		}
		a.loggedIn = true
		a.username = ""
		if msg.resp != nil && msg.resp.User != nil {
			a.username = msg.resp.User.Username
		}
		a.setStatus(fmt.Sprintf("login successful! welcome, %s.", a.displayName()))
		a.view = viewTopics
		var cmd tea.Cmd
		a.topics, cmd = a.topics.reload()
		return a, cmd

	case registeredMsg:
		a.auth, _ = a.auth.Update(msg)
		if msg.err != nil {
			a.setFailure("registration", msg.err)
			return a, nil
		}
		a.setStatus("registration successful! you can now log in.")
		a.auth = newAuthModel(a.forum, authLogin)
		return a, nil

	case loggedOutMsg:
		if msg.err != nil {
			a.setFailure("logout", msg.err)
			return a, nil
		}
		a.loggedIn = false
		a.username = ""
		a.setStatus("logged out successfully.")
		return a, nil

	case topicCreatedMsg:
		a.create, _ = a.create.Update(msg)
		if msg.err != nil {
			a.setFailure("creating topic", msg.err)
			return a, nil
		}
		a.setStatus(fmt.Sprintf("topic created: %s", msg.title))
		a.view = viewTopics
		var cmd tea.Cmd
		a.topics, cmd = a.topics.reload()
		return a, cmd

	case copyResultMsg:
		if msg.err != nil {
			a.setFailure("copy", msg.err)
		} else {
			a.setStatus(fmt.Sprintf("copied %s to clipboard.", msg.what))
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay captures all keys when open
	if a.helpOpen {
		items := helpItems(a.docsURL)
		switch msg.String() {
		case "h", "esc":
			a.helpOpen = false
		case "q", "ctrl+c":
			return a, tea.Quit
		case "j", "down":
			if a.helpCursor < len(items)-1 {
				a.helpCursor++
			}
		case "k", "up":
			if a.helpCursor > 0 {
				a.helpCursor--
			}
		case "enter":
			if item := items[a.helpCursor]; item.url != "" {
				if err := browser.Open(item.url); err != nil {
					a.setFailure("opening docs", err)
				}
			}
		}
		return a, nil
	}

	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.isEditing() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "h":
			a.helpOpen = true
			a.helpCursor = 0
			return a, nil
		case "l":
			a.view = viewAuth
			a.auth = newAuthModel(a.forum, authLogin)
			return a, nil
		case "u":
			a.view = viewAuth
			a.auth = newAuthModel(a.forum, authRegister)
			return a, nil
		case "o":
			if !a.loggedIn {
				return a, nil
			}
			return a, a.logout()
		case "n":
			a.view = viewCreate
			a.create = newCreateModel(a.forum)
			return a, nil
		case "esc":
			if a.view == viewComments {
				a.view = viewTopics
			}
			return a, nil
		}
	} else if msg.String() == "esc" && (a.view == viewAuth || a.view == viewCreate) {
		a.view = viewTopics
		return a, nil
	}

	var cmd tea.Cmd
	switch a.view {
	case viewTopics:
		a.topics, cmd = a.topics.Update(msg)
	case viewComments:
		a.comments, cmd = a.comments.Update(msg)
	case viewAuth:
		a.auth, cmd = a.auth.Update(msg)
	case viewCreate:
		a.create, cmd = a.create.Update(msg)
	}
	return a, cmd
}

// isEditing reports whether keystrokes belong to a text field.
func (a App) isEditing() bool {
	switch a.view {
	case viewAuth, viewCreate:
		return true
	case viewComments:
		return a.comments.inputFocused
	}
	return false
}

func (a App) displayName() string {
	if a.username == "" {
		return "friend"
	}
	return a.username
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)
	logoPad := max((a.width-lipgloss.Width(logo))/2, 0)
	header := strings.Repeat(" ", logoPad) + logo + "\n"

	if a.loggedIn {
		who := metaStyle.Render("Logged in as: ") + AuthorStyle(a.username).Render(a.displayName())
		header += strings.Repeat(" ", max((a.width-lipgloss.Width(who))/2, 0)) + who
	}

	var body, help string
	switch a.view {
	case viewTopics:
		body = a.topics.View()
		help = " " + a.topics.helpKeys()
	case viewComments:
		body = a.comments.View()
		help = " " + a.comments.helpKeys()
	case viewAuth:
		body = a.auth.View()
		help = " " + a.auth.helpKeys()
	case viewCreate:
		body = a.create.View()
		help = " " + a.create.helpKeys()
	}

	if a.helpOpen {
		body = helpView(a.docsURL, a.version, a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = " " + errorStyle.Render(a.status)
		} else {
			status = " " + successStyle.Render(a.status)
		}
	}

	// Chrome budget: header(2) + status(1) + help(1)
	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, body, status, help)
}
