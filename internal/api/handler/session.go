// Package handler implements the HTTP endpoints for game sessions.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/starchase/starchase-go/internal/api/request"
	"github.com/starchase/starchase-go/internal/api/response"
	"github.com/starchase/starchase-go/internal/api/sse"
	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/services/auto"
	"github.com/starchase/starchase-go/internal/services/game"
	"github.com/starchase/starchase-go/internal/services/twist"
)

// SessionHandler handles session-related endpoints
type SessionHandler struct {
	games      *game.Controller
	auto       *auto.Service
	hubManager *sse.HubManager
	logger     *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	games *game.Controller,
	autoService *auto.Service,
	hubManager *sse.HubManager,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		games:      games,
		auto:       autoService,
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "api")),
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if len(req.HumanNames)+req.AutomatedPlayers < 2 {
		WriteError(w, NewInvalidRequestError("a game needs at least two players"))
		return
	}

	settings := model.Settings{
		HumanNames:       req.HumanNames,
		AutomatedPlayers: req.AutomatedPlayers,
		Categories:       req.Categories,
		CustomCategory:   req.CustomCategory,
	}

	sess, err := h.games.CreateSession(r.Context(), settings)
	if err != nil {
		WriteError(w, err)
		return
	}

	// A hub exists from the start so no early event is lost
	if h.hubManager != nil {
		h.hubManager.GetOrCreateHub(sess.ID)
	}

	// An automated player may hold the opening turn
	h.processAutoActions(r.Context(), sess.ID)

	sess, err = h.games.GetSession(r.Context(), sess.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(sess, viewerID(r)))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	sess, err := h.games.GetSession(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess, viewerID(r)))
}

// Summary handles GET /api/v1/sessions/{id}/summary
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	summary, err := h.games.Summary(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SummaryFromModel(summary))
}

// Spin handles POST /api/v1/sessions/{id}/spin
func (h *SessionHandler) Spin(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	var req request.SpinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.games.Spin(r.Context(), id, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	h.processAutoActions(r.Context(), id)
	h.writeSnapshot(w, r, id, model.PlayerID(req.PlayerID))
}

// Answer handles POST /api/v1/sessions/{id}/answers
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	var req request.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.games.SubmitAnswer(r.Context(), id, model.PlayerID(req.PlayerID), req.Option); err != nil {
		WriteError(w, err)
		return
	}

	h.processAutoActions(r.Context(), id)
	h.writeSnapshot(w, r, id, model.PlayerID(req.PlayerID))
}

// SelectStar handles POST /api/v1/sessions/{id}/stars
func (h *SessionHandler) SelectStar(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	var req request.StarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.games.SelectStar(r.Context(), id, model.PlayerID(req.PlayerID), req.StarID); err != nil {
		WriteError(w, err)
		return
	}

	h.processAutoActions(r.Context(), id)
	h.writeSnapshot(w, r, id, model.PlayerID(req.PlayerID))
}

// TwistChoice handles POST /api/v1/sessions/{id}/twist-choice
func (h *SessionHandler) TwistChoice(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	var req request.TwistChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	target := twist.ChoiceTarget{
		PlayerID:   model.PlayerID(req.TargetPlayerID),
		Gate:       -1,
		Difficulty: req.Difficulty,
		Category:   req.Category,
		StarID:     -1,
	}
	if req.Gate != nil {
		target.Gate = *req.Gate
	}
	if req.StarID != nil {
		target.StarID = *req.StarID
	}

	if err := h.games.SubmitTwistChoice(r.Context(), id, model.PlayerID(req.PlayerID), target); err != nil {
		WriteError(w, err)
		return
	}

	h.processAutoActions(r.Context(), id)
	h.writeSnapshot(w, r, id, model.PlayerID(req.PlayerID))
}

// Candidates handles GET /api/v1/sessions/{id}/twist-choice
func (h *SessionHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	candidates, err := h.games.Candidates(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CandidatesFromModel(candidates))
}

// Events handles GET /api/v1/sessions/{id}/events (SSE)
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	if _, err := h.games.GetSession(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, viewerID(r))
}

// writeSnapshot responds with the session state as seen by one player
func (h *SessionHandler) writeSnapshot(w http.ResponseWriter, r *http.Request, id model.SessionID, viewer model.PlayerID) {
	sess, err := h.games.GetSession(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionFromModel(sess, viewer))
}

// processAutoActions lets automated players act until a human is needed.
// Auto-play failures never fail the triggering request.
func (h *SessionHandler) processAutoActions(ctx context.Context, id model.SessionID) {
	if h.auto == nil {
		return
	}
	if err := h.auto.ProcessAutoActions(ctx, id); err != nil {
		h.logger.Warn("auto-play pass failed",
			slog.String("session_id", string(id)),
			slog.Any("error", err))
	}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

func viewerID(r *http.Request) model.PlayerID {
	return model.PlayerID(r.URL.Query().Get("viewer"))
}
