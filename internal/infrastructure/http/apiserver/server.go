// Package apiserver provides the JSON API HTTP server.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/infrastructure/http/handlers"
	"github.com/pantrysage/v2/internal/infrastructure/http/middleware"
	"github.com/pantrysage/v2/internal/infrastructure/monitoring"
	"github.com/pantrysage/v2/internal/ports/inbound"
)

// Services bundles the inbound ports the server exposes.
type Services struct {
	Recipes     inbound.RecipeService
	Pantry      inbound.PantryService
	Shopping    inbound.ShoppingListService
	MealPlans   inbound.MealPlanService
	Dietary     inbound.DietaryService
	Suggestions inbound.SuggestionService
}

// APIServer serves the JSON API.
type APIServer struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	router   *chi.Mux
	services Services
	metrics  *monitoring.Metrics
}

// New creates a new API server instance
func New(cfg *config.Config, log *zap.Logger, services Services, metrics *monitoring.Metrics) *APIServer {
	s := &APIServer{
		config:   cfg,
		logger:   log,
		services: services,
		metrics:  metrics,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  durationOr(cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: durationOr(cfg.Server.WriteTimeout, 30*time.Second),
		IdleTimeout:  durationOr(cfg.Server.IdleTimeout, 60*time.Second),
	}
	return s
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())
	if s.config.Monitoring.EnableMetrics {
		r.Use(s.metrics.Middleware)
	}

	healthPath := s.config.Monitoring.HealthCheckPath
	if healthPath == "" {
		healthPath = "/health"
	}
	r.Get(healthPath, s.handleHealthCheck)

	if s.config.Monitoring.EnableMetrics {
		metricsPath := s.config.Monitoring.MetricsPath
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		r.Handle(metricsPath, s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	recipeH := handlers.NewRecipeHandlers(s.services.Recipes, s.logger)
	pantryH := handlers.NewPantryHandlers(s.services.Pantry, s.logger)
	shoppingH := handlers.NewShoppingHandlers(s.services.Shopping, s.metrics, s.logger)
	mealPlanH := handlers.NewMealPlanHandlers(s.services.MealPlans, s.logger)
	dietaryH := handlers.NewDietaryHandlers(s.services.Dietary, s.metrics, s.logger)
	suggestionH := handlers.NewSuggestionHandlers(s.services.Suggestions, s.logger)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser())

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipeH.List)
			r.Post("/", recipeH.Create)
			if s.config.Features.EnableCSVExport {
				r.Get("/export", recipeH.ExportCSV)
				r.Post("/import-csv", recipeH.ImportCSV)
			}
			if s.config.Features.EnableURLImport {
				r.Post("/import-url", recipeH.ImportURL)
			}
			r.Get("/{id}", recipeH.Get)
			r.Put("/{id}", recipeH.Update)
			r.Delete("/{id}", recipeH.Delete)
			r.Get("/{id}/warnings", dietaryH.CheckRecipe)
		})

		r.Route("/pantry", func(r chi.Router) {
			r.Get("/items", pantryH.ListActive)
			r.Post("/items", pantryH.AddItem)
			r.Get("/items/expiring", pantryH.ListExpiring)
			r.Post("/items/{id}/used", pantryH.MarkUsed)
			r.Post("/items/{id}/wasted", pantryH.MarkWasted)
			r.Get("/missing/{recipeId}", pantryH.MissingForRecipe)
			if s.config.Features.EnableReceiptOCR {
				r.Post("/receipts", pantryH.IngestReceipt)
			}
			if s.config.Features.EnableBarcodes {
				r.Post("/barcodes", pantryH.IngestBarcode)
			}
		})

		r.Route("/shopping-lists", func(r chi.Router) {
			r.Get("/", shoppingH.List)
			r.Post("/", shoppingH.Create)
			r.Get("/{id}", shoppingH.Get)
			r.Delete("/{id}", shoppingH.Delete)
			r.Post("/{id}/items", shoppingH.AddItem)
			r.Patch("/{id}/items/{itemId}/checked", shoppingH.SetItemChecked)
			r.Patch("/{id}/items/{itemId}/category", shoppingH.RecategorizeItem)
			r.Delete("/{id}/items/{itemId}", shoppingH.RemoveItem)
			r.Post("/{id}/clear-checked", shoppingH.ClearChecked)
			r.Post("/{id}/generate", shoppingH.Generate)
			r.Post("/{id}/missing", shoppingH.AddMissing)
		})

		r.Route("/meal-plans", func(r chi.Router) {
			r.Get("/", mealPlanH.ListRange)
			r.Post("/", mealPlanH.Plan)
			r.Get("/{id}", mealPlanH.Get)
			r.Patch("/{id}", mealPlanH.Reschedule)
			r.Delete("/{id}", mealPlanH.Unplan)
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", dietaryH.GetPreferences)
			r.Put("/", dietaryH.UpdatePreferences)
		})

		r.Post("/dietary/check", dietaryH.CheckIngredients)

		if s.config.Features.EnableSuggestions {
			r.Post("/suggestions", suggestionH.Suggest)
			r.Get("/suggestions/history", suggestionH.History)
		}
	})
}

func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","version":%q,"timestamp":%d}`,
		s.config.App.Version, time.Now().Unix())
}

// Start begins serving. It blocks until the server stops.
func (s *APIServer) Start() error {
	s.logger.Info("API server starting",
		zap.Int("port", s.config.Server.Port),
		zap.String("environment", s.config.App.Environment),
	)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("API server shutting down")
	return s.server.Shutdown(ctx)
}

// Router exposes the configured router, for tests.
func (s *APIServer) Router() *chi.Mux {
	return s.router
}
