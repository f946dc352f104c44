package recipe

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// ingredientLine splits "2 cups flour" into amount, unit and item.
var ingredientLine = regexp.MustCompile(`^(\d+(?:/\d+)?(?:\.\d+)?)\s*([a-zA-Z]+)?\s+(.+)$`)

// ImportFromURL scrapes a recipe from a web page and saves it for the
// owner. Fields the page does not carry are left at their defaults.
func (s *Service) ImportFromURL(ctx context.Context, cmd inbound.ImportURLCommand) (*inbound.RecipeDTO, error) {
	if s.scraper == nil {
		return nil, errors.NewAppError(errors.CodeServiceUnavailable, "URL import is not enabled", "")
	}

	if _, err := s.userRepo.FindByID(ctx, cmd.OwnerID); err != nil {
		return nil, errors.NewNotFoundError("user").WithCause(err)
	}

	scraped, err := s.scraper.Scrape(ctx, cmd.URL)
	if err != nil {
		return nil, errors.NewExternalServiceError("recipe scraper", err)
	}

	title := scraped.Title
	if title == "" {
		title = "Imported Recipe"
	}

	entity, err := recipe.New(title, scraped.Description, cmd.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}
	for _, ing := range scraped.Ingredients {
		if err := entity.AddIngredient(ing); err != nil {
			return nil, errors.Wrap(err, "failed to add ingredient")
		}
	}
	for _, step := range scraped.Instructions {
		if err := entity.AddInstruction(step); err != nil {
			return nil, errors.Wrap(err, "failed to add instruction")
		}
	}
	if scraped.PrepMinutes > 0 || scraped.CookMinutes > 0 {
		if err := entity.SetTiming(scraped.PrepMinutes, scraped.CookMinutes); err != nil {
			return nil, errors.Wrap(err, "invalid timing")
		}
	}
	if scraped.Servings > 0 {
		if err := entity.SetServings(scraped.Servings); err != nil {
			return nil, errors.Wrap(err, "invalid servings")
		}
	}
	if scraped.Cuisine != "" {
		entity.SetCuisine(scraped.Cuisine)
	}
	if len(scraped.Tags) > 0 {
		entity.SetTags(scraped.Tags)
	}
	entity.SetSourceLinks(scraped.ImageURL, cmd.URL)

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("import recipe", err)
	}

	s.logger.Info("Recipe imported from URL",
		zap.String("recipe_id", entity.ID().String()),
		zap.String("source_url", cmd.URL),
	)
	return toDTO(entity), nil
}

// ImportCSV parses the uploaded CSV and saves one recipe per row.
// Rows the parser cannot make sense of are skipped rather than failing
// the whole upload.
func (s *Service) ImportCSV(ctx context.Context, ownerID uuid.UUID, data []byte) (*inbound.ImportResult, error) {
	if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
		return nil, errors.NewNotFoundError("user").WithCause(err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, errors.NewValidationError("CSV file must have a header row and at least one data row")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["title"]; !ok {
		return nil, errors.NewValidationError("CSV header must include a title column")
	}

	result := &inbound.ImportResult{Recipes: []inbound.RecipeDTO{}}
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewValidationError("malformed CSV row").WithCause(err)
		}
		row++
		if len(record) != len(header) {
			s.logger.Warn("Skipping CSV row with wrong column count",
				zap.Int("row", row),
				zap.Int("columns", len(record)),
			)
			continue
		}

		entity, err := s.recipeFromRow(columns, record, row, ownerID)
		if err != nil {
			s.logger.Warn("Skipping unparseable CSV row",
				zap.Int("row", row),
				zap.Error(err),
			)
			continue
		}
		if err := s.recipeRepo.Create(ctx, entity); err != nil {
			return nil, errors.NewDatabaseError("import recipe", err)
		}
		result.Recipes = append(result.Recipes, *toDTO(entity))
	}
	result.Count = len(result.Recipes)

	s.logger.Info("Recipes imported from CSV",
		zap.String("owner_id", ownerID.String()),
		zap.Int("count", result.Count),
	)
	return result, nil
}

// recipeFromRow builds one recipe from a CSV record. Column names are
// matched case-insensitively and accept both snake_case and run-together
// forms so exports from other tools round-trip.
func (s *Service) recipeFromRow(columns map[string]int, record []string, row int, ownerID uuid.UUID) (*recipe.Recipe, error) {
	field := func(names ...string) string {
		for _, name := range names {
			if i, ok := columns[name]; ok {
				return strings.TrimSpace(record[i])
			}
		}
		return ""
	}

	title := field("title")
	if title == "" {
		title = fmt.Sprintf("Imported Recipe %d", row)
	}

	entity, err := recipe.New(title, field("description"), ownerID)
	if err != nil {
		return nil, err
	}

	for _, line := range splitList(field("ingredients"), ";") {
		ing := recipe.Ingredient{Item: line}
		if m := ingredientLine.FindStringSubmatch(line); m != nil {
			ing = recipe.Ingredient{Amount: m[1], Unit: m[2], Item: strings.TrimSpace(m[3])}
		}
		if err := entity.AddIngredient(ing); err != nil {
			return nil, err
		}
	}

	instructions := field("instructions")
	steps := splitList(instructions, "|")
	if len(steps) <= 1 {
		steps = splitList(instructions, ";")
	}
	for _, step := range steps {
		if err := entity.AddInstruction(step); err != nil {
			return nil, err
		}
	}

	if mealType := field("meal_type", "mealtype"); mealType != "" {
		if err := entity.SetMealType(recipe.MealType(strings.ToLower(mealType))); err != nil {
			return nil, err
		}
	}
	if cuisine := field("cuisine"); cuisine != "" {
		entity.SetCuisine(cuisine)
	}

	prep := intField(field("prep_minutes", "prep_time", "preptime"))
	cook := intField(field("cook_minutes", "cook_time", "cooktime"))
	if prep > 0 || cook > 0 {
		if err := entity.SetTiming(prep, cook); err != nil {
			return nil, err
		}
	}
	if servings := intField(field("servings")); servings > 0 {
		if err := entity.SetServings(servings); err != nil {
			return nil, err
		}
	}
	if tags := splitList(field("tags"), ","); len(tags) > 0 {
		entity.SetTags(tags)
	}
	if image := field("image_url", "imageurl"); image != "" {
		entity.SetSourceLinks(image, "")
	}
	return entity, nil
}

func splitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intField(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
