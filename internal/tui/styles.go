package tui

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the AGORA logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "A G O R A" as a slow wave of warm light,
// deep bronze (#3a2a12) to bright amber (#f5c451).
func renderShimmerLogo(frame int) string {
	const text = "AGORA"
	n := len(text)
	t := float64(frame)

	var out strings.Builder
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18
		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		r := clampByte(58 + b*(245-58))
		g := clampByte(42 + b*(196-42))
		bl := clampByte(18 + b*(81-18))

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, bl)))
		out.WriteString(s.Render(string(text[i])))

		if i < n-1 {
			out.WriteString("  ")
		}
	}
	return out.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5c451"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d474"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0")).
			Bold(true)

	commentTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c0c4d0"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f5c451")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#404858"))

	// authorColors is the palette usernames hash into.
	authorColors = []lipgloss.Color{
		lipgloss.Color("#43e88c"),
		lipgloss.Color("#f0944a"),
		lipgloss.Color("#b8ccdf"),
		lipgloss.Color("#c084e0"),
		lipgloss.Color("#60a0e0"),
		lipgloss.Color("#3ecce4"),
	}
)

// AuthorStyle returns a bold style whose color is stable for a username.
func AuthorStyle(username string) lipgloss.Style {
	if username == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")).Bold(true)
	}
	h := fnv.New32a()
	h.Write([]byte(username)) //nolint:errcheck // hash writes never fail
	return lipgloss.NewStyle().Foreground(authorColors[h.Sum32()%uint32(len(authorColors))]).Bold(true)
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

func helpItems(docsURL string) []helpItem {
	return []helpItem{
		{"API docs", docsURL, docsURL},
	}
}

var helpCommands = []struct{ cmd, desc string }{
	{"agora", "Browse topics (interactive)"},
	{"agora topics", "Print all topics"},
	{"agora comments <id>", "Print the comments of a topic"},
	{"agora register", "Create an account"},
	{"agora post <id> <text>", "Log in and comment on a topic"},
	{"agora docs", "Open the API docs"},
	{"agora --version", "Show version"},
}

var helpKeys = []struct{ key, desc string }{
	{"l", "log in"},
	{"u", "register"},
	{"o", "log out"},
	{"n", "new topic"},
	{"enter", "open topic / post comment"},
	{"c", "copy selection"},
	{"r", "reload"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(docsURL, version string, cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f5c451")).
		Bold(true).
		Render("A G O R A")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c451"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s  %s\n\n", title, metaStyle.Render(version))

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Keys"))
	for _, k := range helpKeys {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", k.key)), descStyle.Render(k.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Commands"))
	for _, c := range helpCommands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems(docsURL) {
		label := cmdStyle.Render(fmt.Sprintf("%-24s", item.label))
		prefix := "    "
		if i == cursor {
			label = selected.Render(fmt.Sprintf("%-24s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
