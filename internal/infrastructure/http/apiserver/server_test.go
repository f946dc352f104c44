package apiserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dietaryapp "github.com/pantrysage/v2/internal/application/dietary"
	mealplanapp "github.com/pantrysage/v2/internal/application/mealplan"
	pantryapp "github.com/pantrysage/v2/internal/application/pantry"
	recipeapp "github.com/pantrysage/v2/internal/application/recipe"
	shoppingapp "github.com/pantrysage/v2/internal/application/shopping"
	suggestionapp "github.com/pantrysage/v2/internal/application/suggestion"
	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/infrastructure/monitoring"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/test/testutils"
)

var apiMetrics = monitoring.NewMetrics()

type apiFixture struct {
	server  *APIServer
	factory *testutils.Factory
	userID  uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	recipes := memory.NewRecipeRepository()
	pantryItems := memory.NewPantryRepository()
	plans := memory.NewMealPlanRepository()
	lists := memory.NewShoppingListRepository()
	users := memory.NewUserRepository()

	log := zap.NewNop()
	services := Services{
		Recipes:     recipeapp.NewService(recipes, users, nil, log),
		Pantry:      pantryapp.NewService(pantryItems, recipes, nil, nil, nil, log),
		Shopping:    shoppingapp.NewService(lists, plans, recipes, nil, log),
		MealPlans:   mealplanapp.NewService(plans, recipes, log),
		Dietary:     dietaryapp.NewService(users, recipes, nil, log),
		Suggestions: suggestionapp.NewService(nil, pantryItems, users, nil, nil, log),
	}

	cfg := &config.Config{}
	cfg.App.Version = "test"
	cfg.Server.Port = 0
	cfg.Features.EnableCSVExport = true

	factory := testutils.NewFactory(42)
	owner := factory.User()
	require.NoError(t, users.Create(context.Background(), owner))

	return &apiFixture{
		server:  New(cfg, log, services, apiMetrics),
		factory: factory,
		userID:  owner.ID(),
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", f.userID.String())

	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestRequestsWithoutUserAreRejected(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/", nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecipeLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	create := f.do(t, http.MethodPost, "/api/v1/recipes/", map[string]interface{}{
		"title": "Veggie Omelette",
		"ingredients": []map[string]string{
			{"item": "eggs", "amount": "3"},
			{"item": "spinach", "amount": "1", "unit": "cup"},
		},
		"instructions": []string{"Whisk eggs.", "Cook with spinach."},
		"servings":     2,
	})
	require.Equal(t, http.StatusCreated, create.Code, create.Body.String())

	var created struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(create.Body.Bytes(), &created))

	get := f.do(t, http.MethodGet, "/api/v1/recipes/"+created.Data.ID.String(), nil)
	assert.Equal(t, http.StatusOK, get.Code)
	assert.Contains(t, get.Body.String(), "Veggie Omelette")

	list := f.do(t, http.MethodGet, "/api/v1/recipes/", nil)
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), `"total":1`)

	del := f.do(t, http.MethodDelete, "/api/v1/recipes/"+created.Data.ID.String(), nil)
	assert.Equal(t, http.StatusOK, del.Code)

	afterDelete := f.do(t, http.MethodGet, "/api/v1/recipes/", nil)
	assert.Contains(t, afterDelete.Body.String(), `"total":0`)
}

func TestPantryAndShoppingFlowOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	add := f.do(t, http.MethodPost, "/api/v1/pantry/items", map[string]string{
		"name": "cheddar cheese",
	})
	require.Equal(t, http.StatusCreated, add.Code, add.Body.String())
	assert.Contains(t, add.Body.String(), `"category":"dairy"`)

	items := f.do(t, http.MethodGet, "/api/v1/pantry/items", nil)
	assert.Equal(t, http.StatusOK, items.Code)
	assert.Contains(t, items.Body.String(), "cheddar cheese")

	createList := f.do(t, http.MethodPost, "/api/v1/shopping-lists/", map[string]string{
		"name": "Weekly",
	})
	require.Equal(t, http.StatusCreated, createList.Code)

	var created struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(createList.Body.Bytes(), &created))

	addItem := f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/shopping-lists/%s/items", created.Data.ID),
		map[string]string{"item": "tortillas"})
	assert.Equal(t, http.StatusCreated, addItem.Code)
	assert.Contains(t, addItem.Body.String(), "tortillas")
}

func TestDietaryCheckOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	update := f.do(t, http.MethodPut, "/api/v1/preferences/", map[string]interface{}{
		"allergies": []string{"Peanuts"},
	})
	require.Equal(t, http.StatusOK, update.Code, update.Body.String())

	check := f.do(t, http.MethodPost, "/api/v1/dietary/check", map[string]interface{}{
		"ingredients": []string{"peanut butter", "bread"},
	})
	require.Equal(t, http.StatusOK, check.Code)
	assert.Contains(t, check.Body.String(), "ALLERGY WARNING: Contains Peanuts")
}

func TestSuggestionsDisabledByDefault(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/suggestions", map[string]int{"maxSuggestions": 3})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
