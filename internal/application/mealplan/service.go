// Package mealplan provides the application layer for calendar meal
// planning.
package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/mealplan"
	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// Service implements the meal plan use cases.
type Service struct {
	mealPlanRepo outbound.MealPlanRepository
	recipeRepo   outbound.RecipeRepository
	logger       *zap.Logger
}

// NewService creates a new meal plan service.
func NewService(
	mealPlanRepo outbound.MealPlanRepository,
	recipeRepo outbound.RecipeRepository,
	logger *zap.Logger,
) inbound.MealPlanService {
	return &Service{
		mealPlanRepo: mealPlanRepo,
		recipeRepo:   recipeRepo,
		logger:       logger.Named("mealplan-service"),
	}
}

// PlanMeal schedules a recipe for a calendar day and meal slot. The
// recipe must exist and not be deleted.
func (s *Service) PlanMeal(ctx context.Context, cmd inbound.PlanMealCommand) (*inbound.MealPlanEntryDTO, error) {
	rec, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID.String()).WithCause(err)
	}
	if rec.IsDeleted() {
		return nil, errors.NewBadRequestError("cannot plan a deleted recipe")
	}

	entry, err := mealplan.NewEntry(cmd.OwnerID, cmd.RecipeID, cmd.Date, recipe.MealType(cmd.MealType), cmd.Servings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to plan meal")
	}
	if cmd.Notes != "" {
		entry.SetNotes(cmd.Notes)
	}

	if err := s.mealPlanRepo.Create(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("create meal plan entry", err)
	}

	s.logger.Info("Meal planned",
		zap.String("entry_id", entry.ID().String()),
		zap.String("recipe_id", cmd.RecipeID.String()),
		zap.Time("date", entry.Date()),
	)

	dto := toDTO(entry, rec.Title())
	return &dto, nil
}

// Reschedule moves or edits an existing entry.
func (s *Service) Reschedule(ctx context.Context, cmd inbound.RescheduleCommand) (*inbound.MealPlanEntryDTO, error) {
	entry, err := s.ownedEntry(ctx, cmd.EntryID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	if cmd.Date != nil {
		entry.Reschedule(*cmd.Date)
	}
	if cmd.MealType != nil {
		if err := entry.ChangeMealType(recipe.MealType(*cmd.MealType)); err != nil {
			return nil, errors.Wrap(err, "invalid meal type")
		}
	}
	if cmd.Servings != nil {
		if err := entry.SetServings(*cmd.Servings); err != nil {
			return nil, errors.Wrap(err, "invalid servings")
		}
	}
	if cmd.Notes != nil {
		entry.SetNotes(*cmd.Notes)
	}

	if err := s.mealPlanRepo.Update(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("update meal plan entry", err)
	}

	dto := toDTO(entry, s.recipeTitle(ctx, entry.RecipeID()))
	return &dto, nil
}

// Unplan removes an entry.
func (s *Service) Unplan(ctx context.Context, entryID, ownerID uuid.UUID) error {
	if _, err := s.ownedEntry(ctx, entryID, ownerID); err != nil {
		return err
	}
	if err := s.mealPlanRepo.Delete(ctx, entryID); err != nil {
		return errors.NewDatabaseError("delete meal plan entry", err)
	}
	return nil
}

// GetEntry fetches one entry by ID.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*inbound.MealPlanEntryDTO, error) {
	entry, err := s.mealPlanRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, errors.NewMealPlanNotFoundError(entryID.String()).WithCause(err)
	}
	dto := toDTO(entry, s.recipeTitle(ctx, entry.RecipeID()))
	return &dto, nil
}

// ListRange returns the owner's entries within [from, to], inclusive.
func (s *Service) ListRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]inbound.MealPlanEntryDTO, error) {
	entries, err := s.mealPlanRepo.FindByOwnerInRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, errors.NewDatabaseError("list meal plans", err)
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.RecipeID())
	}
	recipes, err := s.recipeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewDatabaseError("resolve recipes", err)
	}

	dtos := make([]inbound.MealPlanEntryDTO, 0, len(entries))
	for _, e := range entries {
		title := ""
		if rec, ok := recipes[e.RecipeID()]; ok {
			title = rec.Title()
		}
		dtos = append(dtos, toDTO(e, title))
	}
	return dtos, nil
}

func (s *Service) ownedEntry(ctx context.Context, entryID, ownerID uuid.UUID) (*mealplan.Entry, error) {
	entry, err := s.mealPlanRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, errors.NewMealPlanNotFoundError(entryID.String()).WithCause(err)
	}
	if entry.OwnerID() != ownerID {
		return nil, errors.NewForbiddenError("meal plan entry belongs to another user")
	}
	return entry, nil
}

func (s *Service) recipeTitle(ctx context.Context, recipeID uuid.UUID) string {
	rec, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return ""
	}
	return rec.Title()
}

func toDTO(entry *mealplan.Entry, recipeTitle string) inbound.MealPlanEntryDTO {
	return inbound.MealPlanEntryDTO{
		ID:          entry.ID(),
		RecipeID:    entry.RecipeID(),
		RecipeTitle: recipeTitle,
		Date:        entry.Date(),
		MealType:    string(entry.MealType()),
		Servings:    entry.Servings(),
		Notes:       entry.Notes(),
	}
}
