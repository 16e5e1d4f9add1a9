package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/naveenspark/agora/internal/tui/mocks"
	"github.com/naveenspark/agora/pkg/domain"
)

const testDocsURL = "http://localhost:8000/docs"

func newMockForum(t *testing.T) *mocks.MockForum {
	t.Helper()
	return mocks.NewMockForum(gomock.NewController(t))
}

func newTestApp(t *testing.T) (App, *mocks.MockForum) {
	t.Helper()
	f := newMockForum(t)
	f.EXPECT().Session().Return(domain.NewSession("")).AnyTimes()
	a := NewApp(f, "v0.0.0-test", testDocsURL)
	a.width = 80
	a.height = 30
	return a, f
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText[M interface{ Update(tea.Msg) (M, tea.Cmd) }](m M, s string) M {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab  = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyCtrlS     = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

var sampleTopics = []domain.Topic{
	{ID: 1, Title: "Welcome", Description: "say hi"},
	{ID: 2, Title: "Go tips", Description: "share them"},
	{ID: 3, Title: "Off topic"},
}
