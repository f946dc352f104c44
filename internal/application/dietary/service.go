// Package dietary provides the application layer for preference
// management and recipe safety checks.
package dietary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/dietary"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// Service implements the dietary use cases.
type Service struct {
	userRepo   outbound.UserRepository
	recipeRepo outbound.RecipeRepository
	checker    *dietary.Checker
	logger     *zap.Logger
}

// NewService creates a new dietary service. A nil checker uses the
// built-in rule base.
func NewService(
	userRepo outbound.UserRepository,
	recipeRepo outbound.RecipeRepository,
	checker *dietary.Checker,
	logger *zap.Logger,
) inbound.DietaryService {
	if checker == nil {
		checker = dietary.NewChecker(nil)
	}
	return &Service{
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		checker:    checker,
		logger:     logger.Named("dietary-service"),
	}
}

// GetPreferences returns the user's stored dietary preferences.
func (s *Service) GetPreferences(ctx context.Context, userID uuid.UUID) (*inbound.PreferencesDTO, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewNotFoundError("user").WithCause(err)
	}
	return prefsToDTO(u.Preferences().DietaryRestrictions, u.Preferences().Allergies, u.Preferences().DislikedIngredients, u.Preferences().ExpiryAlertDays), nil
}

// UpdatePreferences replaces the user's dietary preference sets. Labels
// are validated against the rule base so a typo cannot silently disable
// a safety check.
func (s *Service) UpdatePreferences(ctx context.Context, cmd inbound.UpdatePreferencesCommand) (*inbound.PreferencesDTO, error) {
	u, err := s.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user").WithCause(err)
	}

	restrictions, err := parseRestrictions(cmd.DietaryRestrictions)
	if err != nil {
		return nil, err
	}
	allergies, err := parseAllergens(cmd.Allergies)
	if err != nil {
		return nil, err
	}

	oldRestrictions := append([]dietary.Restriction(nil), u.Preferences().DietaryRestrictions...)
	for _, r := range oldRestrictions {
		u.RemoveRestriction(r)
	}
	for _, r := range restrictions {
		u.AddRestriction(r)
	}
	oldAllergies := append([]dietary.Allergen(nil), u.Preferences().Allergies...)
	for _, a := range oldAllergies {
		u.RemoveAllergy(a)
	}
	for _, a := range allergies {
		u.AddAllergy(a)
	}
	u.SetDislikedIngredients(cmd.DislikedIngredients)
	if cmd.ExpiryAlertDays != nil {
		u.SetExpiryAlertDays(*cmd.ExpiryAlertDays)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("update preferences", err)
	}

	s.logger.Info("Preferences updated",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("restrictions", len(restrictions)),
		zap.Int("allergies", len(allergies)),
	)

	p := u.Preferences()
	return prefsToDTO(p.DietaryRestrictions, p.Allergies, p.DislikedIngredients, p.ExpiryAlertDays), nil
}

// CheckRecipe evaluates a stored recipe against the user's profile.
func (s *Service) CheckRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*inbound.WarningsDTO, error) {
	rec, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String()).WithCause(err)
	}
	return s.CheckIngredients(ctx, userID, rec.IngredientNames())
}

// CheckIngredients evaluates an ad-hoc ingredient list against the
// user's profile.
func (s *Service) CheckIngredients(ctx context.Context, userID uuid.UUID, ingredients []string) (*inbound.WarningsDTO, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewNotFoundError("user").WithCause(err)
	}

	warnings := s.checker.Check(ingredients, u.DietaryProfile())
	return &inbound.WarningsDTO{
		Warnings: warnings,
		Summary:  dietary.Summarize(warnings),
	}, nil
}

func parseRestrictions(labels []string) ([]dietary.Restriction, error) {
	rules := dietary.DefaultRuleBase()
	out := make([]dietary.Restriction, 0, len(labels))
	for _, label := range labels {
		r := dietary.Restriction(label)
		if _, ok := rules.Restrictions[r]; !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown dietary restriction %q", label))
		}
		out = append(out, r)
	}
	return out, nil
}

func parseAllergens(labels []string) ([]dietary.Allergen, error) {
	rules := dietary.DefaultRuleBase()
	out := make([]dietary.Allergen, 0, len(labels))
	for _, label := range labels {
		a := dietary.Allergen(label)
		if _, ok := rules.Allergens[a]; !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown allergen %q", label))
		}
		out = append(out, a)
	}
	return out, nil
}

func prefsToDTO(restrictions []dietary.Restriction, allergies []dietary.Allergen, disliked []string, expiryDays int) *inbound.PreferencesDTO {
	rs := make([]string, 0, len(restrictions))
	for _, r := range restrictions {
		rs = append(rs, string(r))
	}
	as := make([]string, 0, len(allergies))
	for _, a := range allergies {
		as = append(as, string(a))
	}
	return &inbound.PreferencesDTO{
		DietaryRestrictions: rs,
		Allergies:           as,
		DislikedIngredients: disliked,
		ExpiryAlertDays:     expiryDays,
	}
}
