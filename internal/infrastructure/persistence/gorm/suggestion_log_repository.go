package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrysage/v2/internal/domain/suggestion"
	"github.com/pantrysage/v2/internal/ports/outbound"
	apperrors "github.com/pantrysage/v2/pkg/errors"
)

// SuggestionLogRepository implements the generation log using GORM
type SuggestionLogRepository struct {
	db *gorm.DB
}

// NewSuggestionLogRepository creates a new GORM generation log repository
func NewSuggestionLogRepository(db *gorm.DB) outbound.SuggestionLogRepository {
	return &SuggestionLogRepository{db: db}
}

// Save persists one generation run
func (r *SuggestionLogRepository) Save(ctx context.Context, entry suggestion.LogEntry) error {
	model := SuggestionLogToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewDatabaseError("save suggestion log entry", err)
	}
	return nil
}

// FindRecentByOwner lists an owner's runs, newest first. limit <= 0
// returns all of them.
func (r *SuggestionLogRepository) FindRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]suggestion.LogEntry, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("generated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []SuggestionLogModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.NewDatabaseError("list suggestion log", err)
	}

	entries := make([]suggestion.LogEntry, 0, len(models))
	for i := range models {
		entries = append(entries, ModelToSuggestionLog(&models[i]))
	}
	return entries, nil
}
