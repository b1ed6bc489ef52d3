package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/starchase/starchase-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour
	cfg.SummaryTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		ID:    "session-1",
		Phase: model.PhaseQuestion,
		Players: []model.Player{
			{ID: "p1", DisplayName: "Alice", Kind: model.PlayerKindHuman, Position: 5},
		},
		Stars: []model.Star{
			{ID: 0, Value: 250},
		},
		Modifiers: model.ModifierSet{
			{PlayerID: "p1", Type: model.ModifierShield, TurnsRemaining: 2},
		},
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(model.PhaseQuestion, retrieved.Phase)
	s.Equal(5, retrieved.Players[0].Position)
	s.True(retrieved.Modifiers.HasShield("p1"))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, &model.Session{ID: "session-1"})

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "session-1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, &model.Session{ID: "session-1"})

	exists, err = s.storage.SessionExists(s.ctx, "session-1")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestSessionHasTTL() {
	_ = s.storage.SaveSession(s.ctx, &model.Session{ID: "session-1"})

	ttl := s.mini.TTL(sessionKey("session-1"))
	s.True(ttl > 0, "session should have a TTL")
}

func (s *StorageSuite) TestSaveAndGetSummary() {
	summary := &model.SessionSummary{
		ID:             "session-1",
		FinalScores:    map[model.PlayerID]int{"p1": 600},
		StarsCollected: map[model.PlayerID]int{"p1": 4},
		Winner:         "p1",
		CompletedAt:    time.Now(),
	}

	err := s.storage.SaveSummary(s.ctx, summary)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSummary(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), retrieved.Winner)
	s.Equal(4, retrieved.StarsCollected["p1"])
}

func (s *StorageSuite) TestGetSummaryNotFound() {
	_, err := s.storage.GetSummary(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSummaryNotFound)
}

func (s *StorageSuite) TestQuestionCatalogRoundTrip() {
	questions := []model.Question{
		{ID: "q1", Text: "Question one", Options: [4]string{"a", "b", "c", "d"}, CorrectIndex: 2, Difficulty: 3, Category: "science"},
	}

	err := s.storage.SaveQuestions(s.ctx, questions)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetQuestions(s.ctx)
	s.Require().NoError(err)
	s.Len(retrieved, 1)
	s.Equal(2, retrieved[0].CorrectIndex)

	// Catalog has no TTL
	s.Equal(time.Duration(0), s.mini.TTL(questionsKey()))
}

func (s *StorageSuite) TestQuestionsNotLoaded() {
	_, err := s.storage.GetQuestions(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}
