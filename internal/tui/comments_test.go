package tui

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/naveenspark/agora/internal/tui/mocks"
	"github.com/naveenspark/agora/pkg/domain"
)

var sampleComments = []domain.Comment{
	{Content: "hi there", CreatedBy: domain.Author{Username: "alice"}},
	{Content: "welcome", CreatedBy: domain.Author{Username: "bob"}},
}

func openedCommentsModel(t *testing.T) (commentsModel, *mocks.MockForum) {
	t.Helper()
	f := newMockForum(t)
	f.EXPECT().ListComments(gomock.Any(), int64(1)).Return(sampleComments, nil)
	m := newCommentsModel(f)
	m.width = 80
	m.height = 20
	m, cmd := m.open(sampleTopics[0])
	m, _ = m.Update(cmd())
	return m, f
}

func TestCommentsOpenLoads(t *testing.T) {
	m, _ := openedCommentsModel(t)
	if m.loading {
		t.Error("expected loading=false")
	}
	if len(m.comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(m.comments))
	}
	view := m.View()
	for _, want := range []string{"Welcome", "say hi", "alice", "hi there", "bob"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCommentsIgnoresStaleLoad(t *testing.T) {
	m, _ := openedCommentsModel(t)
	m, _ = m.Update(commentsLoadedMsg{topicID: 99, comments: nil})
	if len(m.comments) != 2 {
		t.Errorf("stale load replaced comments: got %d", len(m.comments))
	}
}

func TestCommentsLoadError(t *testing.T) {
	f := newMockForum(t)
	f.EXPECT().ListComments(gomock.Any(), int64(1)).Return(nil, errors.New("boom"))
	m := newCommentsModel(f)
	m, cmd := m.open(sampleTopics[0])
	m, _ = m.Update(cmd())
	if m.err != "boom" {
		t.Errorf("expected err=boom, got %q", m.err)
	}
}

func TestCommentsPost(t *testing.T) {
	m, f := openedCommentsModel(t)
	posted := append(sampleComments, domain.Comment{Content: "hello", CreatedBy: domain.Author{Username: "carol"}})
	gomock.InOrder(
		f.EXPECT().PostComment(gomock.Any(), int64(1), "hello").Return(nil),
		f.EXPECT().ListComments(gomock.Any(), int64(1)).Return(posted, nil),
	)

	m, _ = m.Update(runes("i"))
	if !m.inputFocused {
		t.Fatal("expected input focused after i")
	}
	m = typeText(m, "hello")
	if m.input != "hello" {
		t.Fatalf("expected input=hello, got %q", m.input)
	}

	m, cmd := m.Update(keyEnter)
	if cmd == nil || !m.posting {
		t.Fatal("expected a post command")
	}
	m, cmd = m.Update(cmd())
	if m.input != "" {
		t.Errorf("expected input cleared, got %q", m.input)
	}
	if cmd == nil {
		t.Fatal("expected a reload command after posting")
	}
	m, _ = m.Update(cmd())
	if len(m.comments) != 3 {
		t.Errorf("expected 3 comments after reload, got %d", len(m.comments))
	}
}

func TestCommentsPostFailureKeepsInput(t *testing.T) {
	m, f := openedCommentsModel(t)
	f.EXPECT().PostComment(gomock.Any(), int64(1), "hello").Return(errors.New("unauthorized"))

	m, _ = m.Update(runes("i"))
	m = typeText(m, "hello")
	m, cmd := m.Update(keyEnter)
	m, cmd = m.Update(cmd())
	if cmd != nil {
		t.Error("expected no reload after a failed post")
	}
	if m.input != "hello" {
		t.Errorf("expected input kept, got %q", m.input)
	}
}

func TestCommentsEmptyInputIgnored(t *testing.T) {
	m, _ := openedCommentsModel(t)
	m, _ = m.Update(runes("i"))
	m = typeText(m, "   ")
	if _, cmd := m.Update(keyEnter); cmd != nil {
		t.Error("expected no command for whitespace-only content")
	}
}

func TestCommentsNoTopicIgnored(t *testing.T) {
	m := newCommentsModel(nil)
	m.inputFocused = true
	m.input = "hello"
	if _, cmd := m.Update(keyEnter); cmd != nil {
		t.Error("expected no command without a selected topic")
	}
}

func TestCommentsEscUnfocuses(t *testing.T) {
	m, _ := openedCommentsModel(t)
	m, _ = m.Update(runes("i"))
	m, _ = m.Update(keyEsc)
	if m.inputFocused {
		t.Error("expected input unfocused after esc")
	}
}

func TestCommentsNavigation(t *testing.T) {
	m, _ := openedCommentsModel(t)
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	if m.cursor != 1 {
		t.Errorf("expected cursor=1, got %d", m.cursor)
	}
	m, _ = m.Update(runes("k"))
	if m.cursor != 0 {
		t.Errorf("expected cursor=0, got %d", m.cursor)
	}
}

func TestCommentsBlinkDropsStaleTicks(t *testing.T) {
	m, _ := openedCommentsModel(t)

	m, _ = m.Update(runes("i"))
	stale := m.blinkID
	m, _ = m.Update(keyEsc)
	m, _ = m.Update(runes("i"))
	if m.blinkID == stale {
		t.Fatal("expected a new blink generation after refocusing")
	}

	on := m.cursorOn
	m, cmd := m.Update(cursorBlinkMsg{id: stale})
	if cmd != nil {
		t.Error("stale tick should not schedule another blink")
	}
	if m.cursorOn != on {
		t.Error("stale tick should not toggle the cursor")
	}

	m, cmd = m.Update(cursorBlinkMsg{id: m.blinkID})
	if cmd == nil {
		t.Error("current tick should keep blinking")
	}
	if m.cursorOn == on {
		t.Error("current tick should toggle the cursor")
	}
}

func TestCommentsBlinkStopsWhenUnfocused(t *testing.T) {
	m, _ := openedCommentsModel(t)
	m, _ = m.Update(runes("i"))
	m, _ = m.Update(keyEsc)
	if _, cmd := m.Update(cursorBlinkMsg{id: m.blinkID}); cmd != nil {
		t.Error("expected no blink while unfocused")
	}
}
