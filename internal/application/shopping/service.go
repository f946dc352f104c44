// Package shopping provides the application layer for shopping lists,
// including generation from planned meals.
package shopping

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/shopping"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/errors"
)

// Service implements the shopping list use cases. Mutating operations on
// a list are serialized per list ID so concurrent generation requests
// cannot interleave read-modify-write cycles and double-add lines.
type Service struct {
	listRepo     outbound.ShoppingListRepository
	mealPlanRepo outbound.MealPlanRepository
	recipeRepo   outbound.RecipeRepository
	aggregator   *shopping.Aggregator
	classifier   grocery.Classifier
	match        grocery.Matcher
	logger       *zap.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewService creates a new shopping list service.
func NewService(
	listRepo outbound.ShoppingListRepository,
	mealPlanRepo outbound.MealPlanRepository,
	recipeRepo outbound.RecipeRepository,
	classifier grocery.Classifier,
	logger *zap.Logger,
) inbound.ShoppingListService {
	if classifier == nil {
		classifier = grocery.NewClassifier(nil, nil)
	}
	return &Service{
		listRepo:     listRepo,
		mealPlanRepo: mealPlanRepo,
		recipeRepo:   recipeRepo,
		aggregator:   shopping.NewAggregator(nil, classifier),
		classifier:   classifier,
		match:        grocery.ContainsEither,
		logger:       logger.Named("shopping-service"),
		locks:        make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *Service) listLock(listID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[listID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[listID] = lock
	}
	return lock
}

// CreateList creates an empty shopping list.
func (s *Service) CreateList(ctx context.Context, ownerID uuid.UUID, name string) (*inbound.ShoppingListDTO, error) {
	list, err := shopping.NewList(ownerID, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shopping list")
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, errors.NewDatabaseError("create shopping list", err)
	}

	s.logger.Info("Shopping list created",
		zap.String("list_id", list.ID().String()),
		zap.String("owner_id", ownerID.String()),
	)
	return toDTO(list), nil
}

// DeleteList removes a list entirely.
func (s *Service) DeleteList(ctx context.Context, listID, ownerID uuid.UUID) error {
	lock := s.listLock(listID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.ownedList(ctx, listID, ownerID); err != nil {
		return err
	}
	if err := s.listRepo.Delete(ctx, listID); err != nil {
		return errors.NewDatabaseError("delete shopping list", err)
	}
	return nil
}

// GetList fetches one list by ID.
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (*inbound.ShoppingListDTO, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, errors.NewShoppingListNotFoundError(listID.String()).WithCause(err)
	}
	return toDTO(list), nil
}

// ListByOwner returns all of a user's lists.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]inbound.ShoppingListDTO, error) {
	lists, err := s.listRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list shopping lists", err)
	}
	dtos := make([]inbound.ShoppingListDTO, 0, len(lists))
	for _, list := range lists {
		dtos = append(dtos, *toDTO(list))
	}
	return dtos, nil
}

// AddItem adds one manual line to a list. An empty category gets
// classified from the item name.
func (s *Service) AddItem(ctx context.Context, cmd inbound.AddListItemCommand) (*inbound.ShoppingListDTO, error) {
	lock := s.listLock(cmd.ListID)
	lock.Lock()
	defer lock.Unlock()

	list, err := s.ownedList(ctx, cmd.ListID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	category := grocery.Category(cmd.Category)
	if cmd.Category == "" {
		category = s.classifier.Classify(cmd.Item)
	}

	if _, err := list.AddManualItem(cmd.Item, cmd.Amount, cmd.Unit, category); err != nil {
		return nil, errors.Wrap(err, "failed to add item")
	}
	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, errors.NewDatabaseError("update shopping list", err)
	}
	return toDTO(list), nil
}

// SetItemChecked marks a line picked up or puts it back.
func (s *Service) SetItemChecked(ctx context.Context, listID, itemID, ownerID uuid.UUID, checked bool) error {
	return s.mutate(ctx, listID, ownerID, func(list *shopping.List) error {
		return list.SetChecked(itemID, checked)
	})
}

// RemoveItem deletes one line.
func (s *Service) RemoveItem(ctx context.Context, listID, itemID, ownerID uuid.UUID) error {
	return s.mutate(ctx, listID, ownerID, func(list *shopping.List) error {
		return list.RemoveItem(itemID)
	})
}

// RecategorizeItem moves a line to another category.
func (s *Service) RecategorizeItem(ctx context.Context, listID, itemID, ownerID uuid.UUID, category string) error {
	return s.mutate(ctx, listID, ownerID, func(list *shopping.List) error {
		return list.RecategorizeItem(itemID, grocery.Category(category))
	})
}

// ClearChecked removes all checked lines and reports how many went.
func (s *Service) ClearChecked(ctx context.Context, listID, ownerID uuid.UUID) (int, error) {
	lock := s.listLock(listID)
	lock.Lock()
	defer lock.Unlock()

	list, err := s.ownedList(ctx, listID, ownerID)
	if err != nil {
		return 0, err
	}

	removed := list.ClearChecked()
	if removed > 0 {
		if err := s.listRepo.Update(ctx, list); err != nil {
			return 0, errors.NewDatabaseError("update shopping list", err)
		}
	}
	return removed, nil
}

// GenerateFromMealPlans aggregates the owner's planned meals in the date
// range into the list.
func (s *Service) GenerateFromMealPlans(ctx context.Context, cmd inbound.GenerateListCommand) (*inbound.GenerateResult, error) {
	lock := s.listLock(cmd.ListID)
	lock.Lock()
	defer lock.Unlock()

	list, err := s.ownedList(ctx, cmd.ListID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.mealPlanRepo.FindByOwnerInRange(ctx, cmd.OwnerID, cmd.From, cmd.To)
	if err != nil {
		return nil, errors.NewDatabaseError("list meal plans", err)
	}

	recipeIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		recipeIDs = append(recipeIDs, e.RecipeID())
	}
	recipes, err := s.recipeRepo.FindByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, errors.NewDatabaseError("resolve recipes", err)
	}

	added, outcome := s.aggregator.Build(entries, recipes, list.Items(), cmd.From, cmd.To)
	if outcome == shopping.OutcomeAdded {
		list.MergeGenerated(added)
		if err := s.listRepo.Update(ctx, list); err != nil {
			return nil, errors.NewDatabaseError("update shopping list", err)
		}
	}

	s.logger.Info("Shopping list generated from meal plans",
		zap.String("list_id", cmd.ListID.String()),
		zap.String("outcome", string(outcome)),
		zap.Int("added", len(added)),
	)

	return &inbound.GenerateResult{
		Outcome:    outcome,
		AddedCount: len(added),
		List:       toDTO(list),
	}, nil
}

// AddMissingIngredients adds reconciler or suggestion output to a list,
// skipping lines the list already covers by containment and lines the
// classifier says to omit.
func (s *Service) AddMissingIngredients(ctx context.Context, cmd inbound.AddMissingCommand) (*inbound.GenerateResult, error) {
	lock := s.listLock(cmd.ListID)
	lock.Lock()
	defer lock.Unlock()

	list, err := s.ownedList(ctx, cmd.ListID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	existing := list.Items()
	added := 0
	for _, input := range cmd.Items {
		if input.Item == "" {
			continue
		}
		category := s.classifier.Classify(input.Item)
		if category == grocery.CategorySkip {
			continue
		}
		if s.alreadyListed(input.Item, existing) {
			continue
		}
		line, err := list.AddRoutedItem(input.Item, input.Amount, input.Unit, category)
		if err != nil {
			continue
		}
		existing = append(existing, line)
		added++
	}

	if added > 0 {
		if err := s.listRepo.Update(ctx, list); err != nil {
			return nil, errors.NewDatabaseError("update shopping list", err)
		}
	}

	outcome := shopping.OutcomeAdded
	if added == 0 {
		outcome = shopping.OutcomeNoNewItems
	}
	return &inbound.GenerateResult{
		Outcome:    outcome,
		AddedCount: added,
		List:       toDTO(list),
	}, nil
}

func (s *Service) alreadyListed(item string, existing []shopping.ListItem) bool {
	for _, line := range existing {
		if s.match(item, line.Item) {
			return true
		}
	}
	return false
}

func (s *Service) mutate(ctx context.Context, listID, ownerID uuid.UUID, fn func(*shopping.List) error) error {
	lock := s.listLock(listID)
	lock.Lock()
	defer lock.Unlock()

	list, err := s.ownedList(ctx, listID, ownerID)
	if err != nil {
		return err
	}
	if err := fn(list); err != nil {
		return errors.Wrap(err, "failed to update shopping list")
	}
	if err := s.listRepo.Update(ctx, list); err != nil {
		return errors.NewDatabaseError("update shopping list", err)
	}
	return nil
}

func (s *Service) ownedList(ctx context.Context, listID, ownerID uuid.UUID) (*shopping.List, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, errors.NewShoppingListNotFoundError(listID.String()).WithCause(err)
	}
	if list.OwnerID() != ownerID {
		return nil, errors.NewForbiddenError("shopping list belongs to another user")
	}
	return list, nil
}

func toDTO(list *shopping.List) *inbound.ShoppingListDTO {
	return &inbound.ShoppingListDTO{
		ID:        list.ID(),
		OwnerID:   list.OwnerID(),
		Name:      list.Name(),
		Items:     list.Items(),
		CreatedAt: list.CreatedAt(),
		UpdatedAt: list.UpdatedAt(),
	}
}
