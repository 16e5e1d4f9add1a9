package tui

import (
	"context"

	"github.com/naveenspark/agora/pkg/client"
	"github.com/naveenspark/agora/pkg/domain"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_forum.go github.com/naveenspark/agora/internal/tui Forum

// Forum is the part of the API client the UI drives. *client.Client satisfies it.
type Forum interface {
	Session() *domain.Session
	Register(ctx context.Context, req client.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*domain.LoginResponse, error)
	Logout(ctx context.Context) error
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	CreateTopic(ctx context.Context, req client.CreateTopicRequest) error
	ListComments(ctx context.Context, topicID int64) ([]domain.Comment, error)
	PostComment(ctx context.Context, topicID int64, content string) error
}

var _ Forum = (*client.Client)(nil)
