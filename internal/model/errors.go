package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionFinished  = errors.New("session is finished")
	ErrWrongPhase       = errors.New("action not valid in current phase")
	ErrNotActingPlayer  = errors.New("not the acting player")
	ErrSummaryNotFound  = errors.New("session summary not found")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Answer errors
	ErrAlreadyAnswered = errors.New("player has already answered this question")
	ErrInvalidOption   = errors.New("invalid answer option")
	ErrNoQuestionPosed = errors.New("no question has been posed")

	// Star errors
	ErrStarNotFound      = errors.New("star not found")
	ErrStarAlreadyEarned = errors.New("star has already been earned")
	ErrNotSelectingStar  = errors.New("player is not selecting a star")

	// Twist errors
	ErrNoChoicePending = errors.New("no twist choice is pending")
	ErrInvalidTarget   = errors.New("invalid twist choice target")

	// Catalog errors
	ErrCatalogNotLoaded = errors.New("question catalog not loaded")
)
