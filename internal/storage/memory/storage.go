package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
//
// Sessions and summaries are stored and returned as deep copies (the same
// JSON round-trip the redis backend gets for free), so a caller holding a
// loaded session never shares mutable state with the stored one or with
// other callers.
type Storage struct {
	mu sync.RWMutex

	sessions  map[model.SessionID]*model.Session
	summaries map[model.SessionID]*model.SessionSummary
	questions []model.Question
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:  make(map[model.SessionID]*model.Session),
		summaries: make(map[model.SessionID]*model.SessionSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func cloneSession(session *model.Session) (*model.Session, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("cloning session: %w", err)
	}
	clone := &model.Session{}
	if err := json.Unmarshal(data, clone); err != nil {
		return nil, fmt.Errorf("cloning session: %w", err)
	}
	return clone, nil
}

func cloneSummary(summary *model.SessionSummary) (*model.SessionSummary, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("cloning summary: %w", err)
	}
	clone := &model.SessionSummary{}
	if err := json.Unmarshal(data, clone); err != nil {
		return nil, fmt.Errorf("cloning summary: %w", err)
	}
	return clone, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	clone, err := cloneSession(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = clone
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return cloneSession(session)
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Storage) SessionExists(ctx context.Context, id model.SessionID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok, nil
}

// Summary operations

func (s *Storage) SaveSummary(ctx context.Context, summary *model.SessionSummary) error {
	clone, err := cloneSummary(summary)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.ID] = clone
	return nil
}

func (s *Storage) GetSummary(ctx context.Context, id model.SessionID) (*model.SessionSummary, error) {
	s.mu.RLock()
	summary, ok := s.summaries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrSummaryNotFound
	}
	return cloneSummary(summary)
}

// Question catalog operations

func (s *Storage) SaveQuestions(ctx context.Context, questions []model.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = make([]model.Question, len(questions))
	copy(s.questions, questions)
	return nil
}

func (s *Storage) GetQuestions(ctx context.Context) ([]model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.questions == nil {
		return nil, model.ErrCatalogNotLoaded
	}
	result := make([]model.Question, len(s.questions))
	copy(result, s.questions)
	return result, nil
}
