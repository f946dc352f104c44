// Package suggestion provides the application layer for inventory-aware
// recipe suggestions.
package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/suggestion"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// DefaultMaxSuggestions bounds a generation request when the caller does
// not choose a count.
const DefaultMaxSuggestions = 6

// cacheTTL bounds how long a ranked payload is reused before the
// generator is consulted again. Pantry contents drift slowly, so a
// short window trades freshness for one external call per browse.
const cacheTTL = 15 * time.Minute

// Service implements the suggestion use case: gather the user's pantry
// and preferences, call the external generator, rank the results.
type Service struct {
	generator  outbound.SuggestionService
	pantryRepo outbound.PantryRepository
	userRepo   outbound.UserRepository
	logRepo    outbound.SuggestionLogRepository
	cache      outbound.CacheRepository
	logger     *zap.Logger
}

// NewService creates a new suggestion service.
func NewService(
	generator outbound.SuggestionService,
	pantryRepo outbound.PantryRepository,
	userRepo outbound.UserRepository,
	logRepo outbound.SuggestionLogRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.SuggestionService {
	return &Service{
		generator:  generator,
		pantryRepo: pantryRepo,
		userRepo:   userRepo,
		logRepo:    logRepo,
		cache:      cache,
		logger:     logger.Named("suggestion-service"),
	}
}

// SuggestFromPantry generates and ranks recipe suggestions for the
// user's current inventory.
func (s *Service) SuggestFromPantry(ctx context.Context, cmd inbound.SuggestCommand) (*suggestion.Ranked, error) {
	if s.generator == nil {
		return nil, errors.NewAppError(errors.CodeServiceUnavailable, "Suggestions are not enabled", "")
	}

	u, err := s.userRepo.FindByID(ctx, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewNotFoundError("user").WithCause(err)
	}

	inventory, err := s.pantryRepo.FindActiveByOwner(ctx, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory", err)
	}
	names := make([]string, 0, len(inventory))
	for _, item := range inventory {
		names = append(names, item.Name())
	}

	prefs := u.Preferences()
	restrictions := make([]string, 0, len(prefs.DietaryRestrictions))
	for _, r := range prefs.DietaryRestrictions {
		restrictions = append(restrictions, string(r))
	}
	allergies := make([]string, 0, len(prefs.Allergies))
	for _, a := range prefs.Allergies {
		allergies = append(allergies, string(a))
	}

	max := cmd.MaxSuggestions
	if max <= 0 {
		max = DefaultMaxSuggestions
	}

	cacheKey := fmt.Sprintf("suggestions:%s:%d", cmd.OwnerID, max)
	if cached := s.cachedRanked(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	suggestions, err := s.generator.GenerateSuggestions(ctx, outbound.SuggestionRequest{
		InventoryNames:      names,
		DietaryRestrictions: restrictions,
		Allergies:           allergies,
		DislikedIngredients: prefs.DislikedIngredients,
		MaxSuggestions:      max,
	})
	if err != nil {
		return nil, errors.NewExternalServiceError("suggestion-generator", err)
	}

	ranked := suggestion.Rank(suggestions)
	s.storeRanked(ctx, cacheKey, &ranked)
	if s.logRepo != nil {
		if err := s.logRepo.Save(ctx, suggestion.NewLogEntry(cmd.OwnerID, suggestions)); err != nil {
			s.logger.Warn("Failed to record generation run", zap.Error(err))
		}
	}
	s.logger.Info("Suggestions generated",
		zap.String("owner_id", cmd.OwnerID.String()),
		zap.Int("ready_now", len(ranked.ReadyNow)),
		zap.Int("almost_makeable", len(ranked.AlmostMakeable)),
		zap.Int("quick_ideas", len(ranked.QuickIdeas)),
	)
	return &ranked, nil
}

// ListHistory returns past generation runs for an owner, newest first.
func (s *Service) ListHistory(ctx context.Context, ownerID uuid.UUID, limit int) ([]suggestion.LogEntry, error) {
	if s.logRepo == nil {
		return nil, errors.NewAppError(errors.CodeServiceUnavailable, "Suggestions are not enabled", "")
	}
	entries, err := s.logRepo.FindRecentByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("list suggestion history", err)
	}
	return entries, nil
}

// cachedRanked returns a previously ranked payload, or nil. Cache
// failures are logged and treated as misses.
func (s *Service) cachedRanked(ctx context.Context, key string) *suggestion.Ranked {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}
	var ranked suggestion.Ranked
	if err := json.Unmarshal(data, &ranked); err != nil {
		s.logger.Debug("Dropping undecodable cached suggestions", zap.Error(err))
		return nil
	}
	return &ranked
}

func (s *Service) storeRanked(ctx context.Context, key string, ranked *suggestion.Ranked) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(ranked)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, cacheTTL); err != nil {
		s.logger.Debug("Suggestion cache write failed", zap.Error(err))
	}
}
