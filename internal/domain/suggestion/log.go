package suggestion

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is one recorded generation run. Past runs are kept so users
// can revisit suggestions without paying for another generator call.
type LogEntry struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"ownerId"`
	Suggestions []Suggestion `json:"suggestions"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// NewLogEntry records a generation run for an owner.
func NewLogEntry(ownerID uuid.UUID, suggestions []Suggestion) LogEntry {
	return LogEntry{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Suggestions: suggestions,
		GeneratedAt: time.Now(),
	}
}
