package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodhubdev/foodhub/app/cart"
	"github.com/foodhubdev/foodhub/app/models"
	"github.com/foodhubdev/foodhub/app/repositories"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound         = errors.New("menu item not found")
	ErrInvalidCustomization = errors.New("invalid customization")
)

// CatalogService serves the menu read side and turns the catalog into the
// snapshots the cart engine prices against.
type CatalogService struct {
	itemRepo     repositories.MenuItemRepositoryImpl
	categoryRepo repositories.MenuCategoryRepositoryImpl
	custRepo     repositories.CustomizationRepositoryImpl
}

func NewCatalogService(
	itemRepo repositories.MenuItemRepositoryImpl,
	categoryRepo repositories.MenuCategoryRepositoryImpl,
	custRepo repositories.CustomizationRepositoryImpl,
) *CatalogService {
	return &CatalogService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		custRepo:     custRepo,
	}
}

func (s *CatalogService) Items(ctx context.Context) ([]models.MenuItem, error) {
	return s.itemRepo.GetActiveItems(ctx)
}

func (s *CatalogService) ItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	return s.itemRepo.GetByCategory(ctx, category)
}

func (s *CatalogService) PopularItems(ctx context.Context, limit int) ([]models.MenuItem, error) {
	return s.itemRepo.GetPopular(ctx, limit)
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.MenuCategory, error) {
	return s.categoryRepo.GetActiveCategories(ctx)
}

func (s *CatalogService) ItemByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load menu item %d: %w", id, err)
	}
	return item, nil
}

// CustomizationsForCategory returns the customization groups configured for a
// menu category, with active options preloaded in display order.
func (s *CatalogService) CustomizationsForCategory(ctx context.Context, menuCategory string) ([]models.CategoryCustomization, error) {
	return s.custRepo.GetForMenuCategory(ctx, menuCategory)
}

// Snapshot builds the cart engine's point-in-time catalog view: every active
// item plus every active option's price adjustment keyed by menu category and
// group name.
func (s *CatalogService) Snapshot(ctx context.Context) (*cart.Snapshot, error) {
	items, err := s.itemRepo.GetActiveItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items for snapshot: %w", err)
	}

	engineItems := make([]cart.Item, 0, len(items))
	for _, item := range items {
		engineItems = append(engineItems, toEngineItem(item))
	}
	snapshot := cart.NewSnapshot(engineItems...)

	links, err := s.custRepo.GetAllLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customizations for snapshot: %w", err)
	}
	for _, link := range links {
		if !link.CustomizationCategory.IsActive {
			continue
		}
		group := link.CustomizationCategory.Name
		for _, option := range link.CustomizationCategory.Options {
			snapshot.SetAdjustment(link.MenuCategory, group, option.Name, option.PriceAdjustment)
		}
	}
	return snapshot, nil
}

// CustomizationInput is the raw payload a client submits when adding a line:
// option names keyed by customization group, using the persisted union shape.
type CustomizationInput struct {
	Selections   map[string]cart.Selection `json:"selections"`
	Instructions string                    `json:"specialInstructions"`
}

// ResolveCustomization validates a raw payload against the groups configured
// for the item's menu category and fills in per-unit price adjustments. An
// empty payload resolves to nil so the line is treated as plain.
func (s *CatalogService) ResolveCustomization(ctx context.Context, menuCategory string, input *CustomizationInput) (*cart.Customization, error) {
	if input == nil || (len(input.Selections) == 0 && input.Instructions == "") {
		return nil, nil
	}

	links, err := s.custRepo.GetForMenuCategory(ctx, menuCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to load customizations for %q: %w", menuCategory, err)
	}

	groups := make(map[string]models.CategoryCustomization, len(links))
	for _, link := range links {
		if link.CustomizationCategory.IsActive {
			groups[link.CustomizationCategory.Name] = link
		}
	}

	resolved := &cart.Customization{Instructions: input.Instructions}
	for name, sel := range input.Selections {
		if len(sel.Choices) == 0 {
			continue
		}
		link, ok := groups[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown group %q for category %q", ErrInvalidCustomization, name, menuCategory)
		}

		single := link.MaxSelections <= 1
		if single && len(sel.Choices) > 1 {
			return nil, fmt.Errorf("%w: group %q allows one selection", ErrInvalidCustomization, name)
		}
		if !single && len(sel.Choices) > link.MaxSelections {
			return nil, fmt.Errorf("%w: group %q allows at most %d selections", ErrInvalidCustomization, name, link.MaxSelections)
		}

		options := make(map[string]models.CustomizationOption, len(link.CustomizationCategory.Options))
		for _, option := range link.CustomizationCategory.Options {
			options[option.Name] = option
		}

		choices := make([]cart.Choice, 0, len(sel.Choices))
		for _, choice := range sel.Choices {
			option, ok := options[choice.Option]
			if !ok {
				return nil, fmt.Errorf("%w: unknown option %q in group %q", ErrInvalidCustomization, choice.Option, name)
			}
			choices = append(choices, cart.Choice{Option: option.Name, Adjustment: option.PriceAdjustment})
		}

		if resolved.Selections == nil {
			resolved.Selections = make(map[string]cart.Selection)
		}
		if single {
			resolved.Selections[name] = cart.Single(choices[0].Option, choices[0].Adjustment)
		} else {
			resolved.Selections[name] = cart.Multi(choices...)
		}
	}

	if resolved.Empty() {
		return nil, nil
	}
	return resolved, nil
}

func toEngineItem(m models.MenuItem) cart.Item {
	return cart.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		Category:    m.Category,
		Rating:      m.Rating,
		Popular:     m.Popular,
	}
}
