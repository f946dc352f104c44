// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// Service implements the recipe use cases.
type Service struct {
	recipeRepo outbound.RecipeRepository
	userRepo   outbound.UserRepository
	scraper    outbound.RecipeScraper
	logger     *zap.Logger
}

// NewService creates a new recipe service. The scraper may be nil when
// URL import is disabled.
func NewService(
	recipeRepo outbound.RecipeRepository,
	userRepo outbound.UserRepository,
	scraper outbound.RecipeScraper,
	logger *zap.Logger,
) inbound.RecipeService {
	return &Service{
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		scraper:    scraper,
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe.
func (s *Service) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating new recipe",
		zap.String("title", cmd.Title),
		zap.String("owner_id", cmd.OwnerID.String()),
	)

	if _, err := s.userRepo.FindByID(ctx, cmd.OwnerID); err != nil {
		return nil, errors.NewNotFoundError("user").WithCause(err)
	}

	entity, err := recipe.New(cmd.Title, cmd.Description, cmd.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}

	for _, ing := range cmd.Ingredients {
		if err := entity.AddIngredient(recipe.Ingredient{
			Item:   ing.Item,
			Amount: ing.Amount,
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		}); err != nil {
			return nil, errors.Wrap(err, "failed to add ingredient")
		}
	}
	for _, step := range cmd.Instructions {
		if err := entity.AddInstruction(step); err != nil {
			return nil, errors.Wrap(err, "failed to add instruction")
		}
	}

	if cmd.MealType != "" {
		if err := entity.SetMealType(recipe.MealType(cmd.MealType)); err != nil {
			return nil, errors.Wrap(err, "invalid meal type")
		}
	}
	if cmd.Cuisine != "" {
		entity.SetCuisine(cmd.Cuisine)
	}
	if cmd.Nutrition != "" {
		entity.SetNutrition(cmd.Nutrition)
	}
	if cmd.ImageURL != "" || cmd.SourceURL != "" {
		entity.SetSourceLinks(cmd.ImageURL, cmd.SourceURL)
	}
	if cmd.PrepMinutes > 0 || cmd.CookMinutes > 0 {
		if err := entity.SetTiming(cmd.PrepMinutes, cmd.CookMinutes); err != nil {
			return nil, errors.Wrap(err, "invalid timing")
		}
	}
	if cmd.Servings > 0 {
		if err := entity.SetServings(cmd.Servings); err != nil {
			return nil, errors.Wrap(err, "invalid servings")
		}
	}
	if len(cmd.Tags) > 0 {
		entity.SetTags(cmd.Tags)
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.logger.Info("Recipe created",
		zap.String("recipe_id", entity.ID().String()),
	)

	return toDTO(entity), nil
}

// UpdateRecipe applies a partial update to a recipe.
func (s *Service) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	entity, err := s.ownedRecipe(ctx, cmd.RecipeID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := entity.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.Wrap(err, "invalid title")
		}
	}
	if cmd.Description != nil {
		entity.UpdateDescription(*cmd.Description)
	}
	if cmd.Ingredients != nil {
		ingredients := make([]recipe.Ingredient, 0, len(*cmd.Ingredients))
		for _, ing := range *cmd.Ingredients {
			ingredients = append(ingredients, recipe.Ingredient{
				Item:   ing.Item,
				Amount: ing.Amount,
				Unit:   ing.Unit,
				Notes:  ing.Notes,
			})
		}
		if err := entity.ReplaceIngredients(ingredients); err != nil {
			return nil, errors.Wrap(err, "invalid ingredients")
		}
	}
	if cmd.Instructions != nil {
		if err := entity.ReplaceInstructions(*cmd.Instructions); err != nil {
			return nil, errors.Wrap(err, "invalid instructions")
		}
	}
	if cmd.MealType != nil {
		if err := entity.SetMealType(recipe.MealType(*cmd.MealType)); err != nil {
			return nil, errors.Wrap(err, "invalid meal type")
		}
	}
	if cmd.Cuisine != nil {
		entity.SetCuisine(*cmd.Cuisine)
	}
	if cmd.Nutrition != nil {
		entity.SetNutrition(*cmd.Nutrition)
	}
	if cmd.ImageURL != nil || cmd.SourceURL != nil {
		image := entity.ImageURL()
		source := entity.SourceURL()
		if cmd.ImageURL != nil {
			image = *cmd.ImageURL
		}
		if cmd.SourceURL != nil {
			source = *cmd.SourceURL
		}
		entity.SetSourceLinks(image, source)
	}
	if cmd.PrepMinutes != nil || cmd.CookMinutes != nil {
		prep := entity.PrepMinutes()
		cook := entity.CookMinutes()
		if cmd.PrepMinutes != nil {
			prep = *cmd.PrepMinutes
		}
		if cmd.CookMinutes != nil {
			cook = *cmd.CookMinutes
		}
		if err := entity.SetTiming(prep, cook); err != nil {
			return nil, errors.Wrap(err, "invalid timing")
		}
	}
	if cmd.Servings != nil {
		if err := entity.SetServings(*cmd.Servings); err != nil {
			return nil, errors.Wrap(err, "invalid servings")
		}
	}
	if cmd.Tags != nil {
		entity.SetTags(*cmd.Tags)
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	return toDTO(entity), nil
}

// DeleteRecipe soft deletes a recipe. The recipe stays addressable so
// meal plan history keeps resolving, but aggregation skips it.
func (s *Service) DeleteRecipe(ctx context.Context, recipeID, ownerID uuid.UUID) error {
	entity, err := s.ownedRecipe(ctx, recipeID, ownerID)
	if err != nil {
		return err
	}

	if err := entity.Delete(); err != nil {
		return errors.Wrap(err, "failed to delete recipe")
	}
	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.logger.Info("Recipe deleted",
		zap.String("recipe_id", recipeID.String()),
	)
	return nil
}

// GetRecipe fetches one recipe by ID.
func (s *Service) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String()).WithCause(err)
	}
	return toDTO(entity), nil
}

// ListRecipes returns the owner's recipes, paginated.
func (s *Service) ListRecipes(ctx context.Context, ownerID uuid.UUID, params inbound.PaginationParams) (*inbound.RecipeList, error) {
	params.Normalize()

	recipes, total, err := s.recipeRepo.FindByOwner(ctx, ownerID, params.Offset, params.Limit)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}
	return toList(recipes, total, params), nil
}

// SearchRecipes filters the owner's recipes by title substring.
func (s *Service) SearchRecipes(ctx context.Context, ownerID uuid.UUID, query string, params inbound.PaginationParams) (*inbound.RecipeList, error) {
	params.Normalize()

	recipes, total, err := s.recipeRepo.SearchByTitle(ctx, ownerID, query, params.Offset, params.Limit)
	if err != nil {
		return nil, errors.NewDatabaseError("search recipes", err)
	}
	return toList(recipes, total, params), nil
}

// ExportCSV renders the owner's recipes as CSV, one row per recipe with
// ingredient lines joined by semicolons.
func (s *Service) ExportCSV(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	recipes, _, err := s.recipeRepo.FindByOwner(ctx, ownerID, 0, 0)
	if err != nil {
		return nil, errors.NewDatabaseError("export recipes", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"title", "description", "meal_type", "prep_minutes", "cook_minutes", "servings", "ingredients", "instructions", "tags"}
	if err := w.Write(header); err != nil {
		return nil, errors.Wrap(err, "failed to write csv header")
	}

	for _, rec := range recipes {
		lines := make([]string, 0, len(rec.Ingredients()))
		for _, ing := range rec.Ingredients() {
			line := strings.TrimSpace(ing.Amount + " " + ing.Unit + " " + ing.Item)
			lines = append(lines, line)
		}
		row := []string{
			rec.Title(),
			rec.Description(),
			string(rec.MealType()),
			strconv.Itoa(rec.PrepMinutes()),
			strconv.Itoa(rec.CookMinutes()),
			strconv.Itoa(rec.Servings()),
			strings.Join(lines, "; "),
			strings.Join(rec.Instructions(), " | "),
			strings.Join(rec.Tags(), ", "),
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, "failed to write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush csv")
	}

	s.logger.Info("Recipes exported",
		zap.String("owner_id", ownerID.String()),
		zap.Int("count", len(recipes)),
	)
	return buf.Bytes(), nil
}

func (s *Service) ownedRecipe(ctx context.Context, recipeID, ownerID uuid.UUID) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String()).WithCause(err)
	}
	if entity.OwnerID() != ownerID {
		return nil, errors.NewForbiddenError("recipe belongs to another user")
	}
	return entity, nil
}

func toDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	return &inbound.RecipeDTO{
		ID:           entity.ID(),
		Title:        entity.Title(),
		Description:  entity.Description(),
		OwnerID:      entity.OwnerID(),
		Ingredients:  entity.Ingredients(),
		Instructions: entity.Instructions(),
		MealType:     string(entity.MealType()),
		Cuisine:      entity.Cuisine(),
		Nutrition:    entity.Nutrition(),
		ImageURL:     entity.ImageURL(),
		SourceURL:    entity.SourceURL(),
		PrepMinutes:  entity.PrepMinutes(),
		CookMinutes:  entity.CookMinutes(),
		Servings:     entity.Servings(),
		Tags:         entity.Tags(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func toList(recipes []*recipe.Recipe, total int, params inbound.PaginationParams) *inbound.RecipeList {
	dtos := make([]inbound.RecipeDTO, 0, len(recipes))
	for _, rec := range recipes {
		dtos = append(dtos, *toDTO(rec))
	}
	return &inbound.RecipeList{
		Recipes: dtos,
		Total:   total,
		Offset:  params.Offset,
		Limit:   params.Limit,
	}
}
