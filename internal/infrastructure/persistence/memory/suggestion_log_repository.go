package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/suggestion"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// SuggestionLogRepository implements the generation log in memory.
type SuggestionLogRepository struct {
	entries []suggestion.LogEntry
	mutex   sync.RWMutex
}

// NewSuggestionLogRepository creates a new in-memory generation log.
func NewSuggestionLogRepository() outbound.SuggestionLogRepository {
	return &SuggestionLogRepository{}
}

// Save appends a generation run.
func (r *SuggestionLogRepository) Save(ctx context.Context, entry suggestion.LogEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// FindRecentByOwner lists an owner's runs, newest first. limit <= 0
// returns all of them.
func (r *SuggestionLogRepository) FindRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]suggestion.LogEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []suggestion.LogEntry
	for _, entry := range r.entries {
		if entry.OwnerID == ownerID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GeneratedAt.After(out[j].GeneratedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
