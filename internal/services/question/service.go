// Package question implements the difficulty/category-aware question pool
// with cascading fallback selection.
package question

import (
	"context"
	"log/slog"
	"sync"

	"github.com/starchase/starchase-go/internal/catalog"
	"github.com/starchase/starchase-go/internal/dependencies/random"
	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/storage"
)

// Provider supplies trivia questions from an external source. The core
// makes a single attempt against it; on failure the built-in bank is
// authoritative and no retry loop runs.
type Provider interface {
	FetchQuestions(ctx context.Context, categories []string, hint string, count int) ([]model.Question, error)
}

// Service holds the loaded question pool and selects questions for turns
type Service struct {
	storage  storage.Storage
	provider Provider // nil when no external provider is configured
	random   random.Random
	logger   *slog.Logger

	mu        sync.RWMutex
	questions []model.Question
	loaded    bool
}

// New creates a new question Service
func New(store storage.Storage, provider Provider, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage:  store,
		provider: provider,
		random:   rnd,
		logger:   logger.With(slog.String("component", "question-pool")),
	}
}

// LoadBuiltin loads the deterministic built-in question bank
func (s *Service) LoadBuiltin() {
	s.loadQuestions(catalog.BuiltinQuestions())
}

// LoadQuestions directly loads a slice of questions (useful for testing)
func (s *Service) LoadQuestions(questions []model.Question) {
	s.loadQuestions(questions)
}

// LoadFromStorage loads the question catalog persisted in storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	questions, err := s.storage.GetQuestions(ctx)
	if err != nil {
		return err
	}
	s.loadQuestions(questions)
	return nil
}

// LoadForSettings fills the pool for a new game. It asks the configured
// provider once; any failure falls back to the built-in bank. This is a
// recovered condition, never surfaced to the player.
func (s *Service) LoadForSettings(ctx context.Context, settings model.Settings) {
	if s.provider == nil {
		s.LoadBuiltin()
		return
	}

	questions, err := s.provider.FetchQuestions(ctx, settings.Categories, settings.CustomCategory, 50)
	if err != nil || len(questions) == 0 {
		s.logger.Warn("question provider unavailable, using built-in bank",
			slog.Any("error", err),
		)
		s.LoadBuiltin()
		return
	}

	if err := s.storage.SaveQuestions(ctx, questions); err != nil {
		s.logger.Warn("failed to persist question catalog",
			slog.Any("error", err),
		)
	}
	s.loadQuestions(questions)
}

func (s *Service) loadQuestions(questions []model.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = make([]model.Question, len(questions))
	copy(s.questions, questions)
	s.loaded = true
}

// IsLoaded returns whether the pool has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of questions in the pool
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}

// SelectByDifficulty picks an unused question for the session, preferring
// the exact difficulty and the forced category when given. Fallback order:
//
//  1. exact difficulty, honoring the category filter
//  2. difficulties d-1, d+1, d-2, d+2 (clipped to the valid range), same filter
//  3. any unused question honoring the category filter
//  4. any unused question at all (only when a category was forced)
//
// Difficulty and category are best-effort, never hard constraints: nil is
// returned only when every question in the pool has been consumed. The
// selected question is marked used on the session.
func (s *Service) SelectByDifficulty(sess *model.Session, difficulty int, forcedCategory string) *model.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pool := s.filter(sess, difficulty, forcedCategory)

	if len(pool) == 0 {
		for _, d := range []int{difficulty - 1, difficulty + 1, difficulty - 2, difficulty + 2} {
			if d < model.MinDifficulty || d > model.MaxDifficulty {
				continue
			}
			pool = s.filter(sess, d, forcedCategory)
			if len(pool) > 0 {
				break
			}
		}
	}

	if len(pool) == 0 {
		pool = s.filter(sess, 0, forcedCategory)
	}

	if len(pool) == 0 && forcedCategory != "" {
		pool = s.filter(sess, 0, "")
	}

	if len(pool) == 0 {
		return nil
	}

	q := pool[s.random.Intn(len(pool))]
	sess.MarkQuestionUsed(q.ID)
	return &q
}

// filter returns unused questions matching the difficulty (0 = any) and
// category ("" = any)
func (s *Service) filter(sess *model.Session, difficulty int, category string) []model.Question {
	var pool []model.Question
	for _, q := range s.questions {
		if sess.QuestionUsed(q.ID) {
			continue
		}
		if difficulty != 0 && q.Difficulty != difficulty {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		pool = append(pool, q)
	}
	return pool
}
