package redis

import (
	"fmt"

	"github.com/starchase/starchase-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "starchase"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// summaryKey returns the Redis key for a SessionSummary
func summaryKey(id model.SessionID) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

// questionsKey returns the Redis key for the question catalog
func questionsKey() string {
	return fmt.Sprintf("%s:questions", keyPrefix)
}
