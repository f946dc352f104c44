// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dietaryapp "github.com/pantrysage/v2/internal/application/dietary"
	mealplanapp "github.com/pantrysage/v2/internal/application/mealplan"
	pantryapp "github.com/pantrysage/v2/internal/application/pantry"
	recipeapp "github.com/pantrysage/v2/internal/application/recipe"
	shoppingapp "github.com/pantrysage/v2/internal/application/shopping"
	suggestionapp "github.com/pantrysage/v2/internal/application/suggestion"
	"github.com/pantrysage/v2/internal/domain/dietary"
	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/infrastructure/external/barcode"
	"github.com/pantrysage/v2/internal/infrastructure/external/ocr"
	"github.com/pantrysage/v2/internal/infrastructure/external/scraper"
	"github.com/pantrysage/v2/internal/infrastructure/external/suggestions"
	"github.com/pantrysage/v2/internal/infrastructure/http/apiserver"
	"github.com/pantrysage/v2/internal/infrastructure/monitoring"
	gormrepo "github.com/pantrysage/v2/internal/infrastructure/persistence/gorm"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	redisrepo "github.com/pantrysage/v2/internal/infrastructure/persistence/redis"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	RepositoryModule,
	DomainModule,
	ExternalModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// Repositories bundles the persistence ports so the driver switch
// happens in one place.
type Repositories struct {
	fx.Out

	Recipes   outbound.RecipeRepository
	Pantry    outbound.PantryRepository
	MealPlans outbound.MealPlanRepository
	Shopping  outbound.ShoppingListRepository
	Users     outbound.UserRepository
	Log       outbound.SuggestionLogRepository

	// DB is nil when the memory driver is selected.
	DB *gorm.DB
}

// RepositoryModule provides repository implementations for the
// configured database driver, plus the cache.
var RepositoryModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (Repositories, error) {
		if cfg.Database.Driver == "memory" {
			log.Info("Using in-memory repositories")
			return Repositories{
				Recipes:   memory.NewRecipeRepository(),
				Pantry:    memory.NewPantryRepository(),
				MealPlans: memory.NewMealPlanRepository(),
				Shopping:  memory.NewShoppingListRepository(),
				Users:     memory.NewUserRepository(),
				Log:       memory.NewSuggestionLogRepository(),
			}, nil
		}

		db, err := gormrepo.Connect(cfg, log)
		if err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Recipes:   gormrepo.NewRecipeRepository(db),
			Pantry:    gormrepo.NewPantryRepository(db),
			MealPlans: gormrepo.NewMealPlanRepository(db),
			Shopping:  gormrepo.NewShoppingListRepository(db),
			Users:     gormrepo.NewUserRepository(db),
			Log:       gormrepo.NewSuggestionLogRepository(db),
			DB:        db,
		}, nil
	},

	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if !cfg.Redis.Enabled {
			log.Info("Using in-memory cache")
			return memory.NewCacheRepository(), nil
		}
		client, err := redisrepo.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return redisrepo.NewCacheRepository(client, cfg.Redis.DefaultTTL, log), nil
	},
)

// DomainModule provides the shared domain collaborators.
var DomainModule = fx.Provide(
	func(metrics *monitoring.Metrics) grocery.Classifier {
		return metrics.InstrumentClassifier(grocery.NewClassifier(nil, nil))
	},
	func() *dietary.Checker {
		return dietary.NewChecker(nil)
	},
)

// ExternalModule provides the external service clients. Disabled
// features yield nil ports; the services answer with 503 for those.
var ExternalModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.SuggestionService {
		if !cfg.Features.EnableSuggestions {
			return nil
		}
		return suggestions.NewClient(cfg.Suggestion, log)
	},
	func(cfg *config.Config, log *zap.Logger) outbound.ReceiptOCRService {
		if !cfg.Features.EnableReceiptOCR {
			return nil
		}
		return ocr.NewClient(cfg.Receipt, log)
	},
	func(cfg *config.Config, log *zap.Logger) outbound.BarcodeLookupService {
		if !cfg.Features.EnableBarcodes {
			return nil
		}
		return barcode.NewClient(cfg.Barcode, log)
	},
	func(cfg *config.Config, log *zap.Logger) outbound.RecipeScraper {
		if !cfg.Features.EnableURLImport {
			return nil
		}
		return scraper.NewClient(cfg.Scraper, log)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	recipeapp.NewService,
	pantryapp.NewService,
	shoppingapp.NewService,
	mealplanapp.NewService,
	dietaryapp.NewService,
	suggestionapp.NewService,
)

// HTTPModule provides the API server and metrics
var HTTPModule = fx.Provide(
	monitoring.NewMetrics,
	func(services apiserver.Services, cfg *config.Config, log *zap.Logger, metrics *monitoring.Metrics) *apiserver.APIServer {
		return apiserver.New(cfg, log, services, metrics)
	},
	func(params ServiceParams) apiserver.Services {
		return apiserver.Services{
			Recipes:     params.Recipes,
			Pantry:      params.Pantry,
			Shopping:    params.Shopping,
			MealPlans:   params.MealPlans,
			Dietary:     params.Dietary,
			Suggestions: params.Suggestions,
		}
	},
)

// ServiceParams collects the inbound ports for the HTTP server.
type ServiceParams struct {
	fx.In

	Recipes     inbound.RecipeService
	Pantry      inbound.PantryService
	Shopping    inbound.ShoppingListService
	MealPlans   inbound.MealPlanService
	Dietary     inbound.DietaryService
	Suggestions inbound.SuggestionService
}

// LifecycleModule registers start and stop hooks
var LifecycleModule = fx.Invoke(RegisterLifecycleHooks)

// LifecycleParams carries the hook dependencies. DB is optional since
// the memory driver runs without one.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *zap.Logger
	Server    *apiserver.APIServer
	DB        *gorm.DB `optional:"true"`
}

// RegisterLifecycleHooks wires server startup and graceful shutdown.
func RegisterLifecycleHooks(p LifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("Starting PantrySage",
				zap.String("version", p.Config.App.Version),
				zap.String("environment", p.Config.App.Environment),
			)
			go func() {
				if err := p.Server.Start(); err != nil {
					p.Logger.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("Shutting down PantrySage")
			if err := p.Server.Shutdown(ctx); err != nil {
				p.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
			}
			if p.DB != nil {
				if sqlDB, err := p.DB.DB(); err == nil {
					if err := sqlDB.Close(); err != nil {
						p.Logger.Error("Failed to close database connection", zap.Error(err))
					}
				}
			}
			_ = p.Logger.Sync()
			return nil
		},
	})
}
