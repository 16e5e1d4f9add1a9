package tui

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
)

func loadedTopicsModel(t *testing.T) topicsModel {
	t.Helper()
	f := newMockForum(t)
	f.EXPECT().ListTopics(gomock.Any()).Return(sampleTopics, nil)
	m := newTopicsModel(f)
	m.width = 80
	m.height = 20
	m, _ = m.Update(m.Init()())
	return m
}

func TestTopicsLoad(t *testing.T) {
	m := loadedTopicsModel(t)
	if m.loading {
		t.Error("expected loading=false after topicsLoadedMsg")
	}
	if len(m.topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(m.topics))
	}
	view := m.View()
	for _, want := range []string{"Topics", "Welcome", "Go tips", "say hi"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTopicsLoadError(t *testing.T) {
	f := newMockForum(t)
	f.EXPECT().ListTopics(gomock.Any()).Return(nil, errors.New("boom"))
	m := newTopicsModel(f)
	m, _ = m.Update(m.Init()())
	if m.err != "boom" {
		t.Errorf("expected err=boom, got %q", m.err)
	}
	if !strings.Contains(m.View(), "press r to retry") {
		t.Error("expected retry hint in view")
	}
}

func TestTopicsEmpty(t *testing.T) {
	m := newTopicsModel(nil)
	m, _ = m.Update(topicsLoadedMsg{})
	if !strings.Contains(m.View(), "no topics yet") {
		t.Error("expected empty state in view")
	}
}

func TestTopicsNavigation(t *testing.T) {
	m := loadedTopicsModel(t)

	m, _ = m.Update(runes("k"))
	if m.cursor != 0 {
		t.Errorf("k at top: expected cursor=0, got %d", m.cursor)
	}
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	if m.cursor != 2 {
		t.Errorf("j past end: expected cursor=2, got %d", m.cursor)
	}
	m, _ = m.Update(runes("g"))
	if m.cursor != 0 {
		t.Errorf("g: expected cursor=0, got %d", m.cursor)
	}
	m, _ = m.Update(runes("G"))
	if m.cursor != 2 {
		t.Errorf("G: expected cursor=2, got %d", m.cursor)
	}
}

func TestTopicsEnterOpensSelected(t *testing.T) {
	m := loadedTopicsModel(t)
	m, _ = m.Update(runes("j"))

	_, cmd := m.Update(keyEnter)
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(openTopicMsg)
	if !ok {
		t.Fatalf("expected openTopicMsg, got %T", cmd())
	}
	if msg.topic.ID != 2 {
		t.Errorf("expected topic 2, got %d", msg.topic.ID)
	}
}

func TestTopicsEnterWithoutTopics(t *testing.T) {
	m := newTopicsModel(nil)
	m, _ = m.Update(topicsLoadedMsg{})
	if _, cmd := m.Update(keyEnter); cmd != nil {
		t.Error("expected no command when the list is empty")
	}
}

func TestTopicsReload(t *testing.T) {
	f := newMockForum(t)
	gomock.InOrder(
		f.EXPECT().ListTopics(gomock.Any()).Return(sampleTopics[:1], nil),
		f.EXPECT().ListTopics(gomock.Any()).Return(sampleTopics, nil),
	)
	m := newTopicsModel(f)
	m, _ = m.Update(m.Init()())
	if len(m.topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(m.topics))
	}

	m, cmd := m.Update(runes("r"))
	if !m.loading {
		t.Error("expected loading=true after r")
	}
	m, _ = m.Update(cmd())
	if len(m.topics) != 3 {
		t.Errorf("expected 3 topics after reload, got %d", len(m.topics))
	}
}
