package tui

import (
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/naveenspark/agora/pkg/client"
	"github.com/naveenspark/agora/pkg/domain"
)

func TestAuthFields(t *testing.T) {
	if n := len(newAuthModel(nil, authLogin).fields); n != 2 {
		t.Errorf("login: expected 2 fields, got %d", n)
	}
	if n := len(newAuthModel(nil, authRegister).fields); n != 3 {
		t.Errorf("register: expected 3 fields, got %d", n)
	}
}

func TestAuthFocusCycles(t *testing.T) {
	m := newAuthModel(nil, authRegister)
	m, _ = m.Update(keyTab)
	m, _ = m.Update(keyTab)
	if m.focus != 2 {
		t.Errorf("expected focus=2, got %d", m.focus)
	}
	m, _ = m.Update(keyTab)
	if m.focus != 0 {
		t.Errorf("expected focus to wrap to 0, got %d", m.focus)
	}
	m, _ = m.Update(keyShiftTab)
	if m.focus != 2 {
		t.Errorf("expected focus to wrap back to 2, got %d", m.focus)
	}
}

func TestAuthRequiredFields(t *testing.T) {
	m := newAuthModel(nil, authLogin)
	m = typeText(m, "a@example.com")
	m, _ = m.Update(keyEnter)
	m, cmd := m.Update(keyEnter)
	if cmd != nil {
		t.Error("expected no command with an empty password")
	}
	if m.statusMsg != "password is required" {
		t.Errorf("expected required message, got %q", m.statusMsg)
	}
}

func TestAuthLoginSubmit(t *testing.T) {
	f := newMockForum(t)
	resp := &domain.LoginResponse{Token: "abc", User: &domain.User{ID: 1, Username: "alice"}}
	f.EXPECT().Login(gomock.Any(), "a@example.com", "x").Return(resp, nil)

	m := newAuthModel(f, authLogin)
	m = typeText(m, "a@example.com")
	m, _ = m.Update(keyEnter)
	m = typeText(m, "x")
	m, cmd := m.Update(keyEnter)
	if cmd == nil || !m.submitting {
		t.Fatal("expected a login command")
	}
	msg, ok := cmd().(loggedInMsg)
	if !ok {
		t.Fatal("expected loggedInMsg")
	}
	if msg.err != nil || msg.resp.User.Username != "alice" {
		t.Errorf("unexpected result: %+v", msg)
	}
	m, _ = m.Update(msg)
	if m.submitting {
		t.Error("expected submitting=false after result")
	}
}

func TestAuthRegisterSubmit(t *testing.T) {
	f := newMockForum(t)
	f.EXPECT().Register(gomock.Any(), client.RegisterRequest{
		Username: "alice",
		Email:    "a@example.com",
		Password: "pw",
	}).Return(nil)

	m := newAuthModel(f, authRegister)
	m = typeText(m, "alice")
	m, _ = m.Update(keyEnter)
	m = typeText(m, "a@example.com")
	m, _ = m.Update(keyEnter)
	m = typeText(m, "pw")
	_, cmd := m.Update(keyEnter)
	if cmd == nil {
		t.Fatal("expected a register command")
	}
	msg, ok := cmd().(registeredMsg)
	if !ok {
		t.Fatal("expected registeredMsg")
	}
	if msg.err != nil || msg.username != "alice" {
		t.Errorf("unexpected result: %+v", msg)
	}
}

func TestAuthMasksPassword(t *testing.T) {
	m := newAuthModel(nil, authLogin)
	m, _ = m.Update(keyTab)
	m = typeText(m, "hunter2")
	view := m.View()
	if strings.Contains(view, "hunter2") {
		t.Error("password rendered in clear text")
	}
	if !strings.Contains(view, maskSecret("hunter2")) {
		t.Error("expected masked password in view")
	}
}
