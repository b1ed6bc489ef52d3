package storage

import (
	"context"

	"github.com/starchase/starchase-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)

	// Summary operations
	SaveSummary(ctx context.Context, summary *model.SessionSummary) error
	GetSummary(ctx context.Context, id model.SessionID) (*model.SessionSummary, error)

	// Question catalog operations
	SaveQuestions(ctx context.Context, questions []model.Question) error
	GetQuestions(ctx context.Context) ([]model.Question, error)
}
