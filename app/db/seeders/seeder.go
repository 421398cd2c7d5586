package seeders

import (
	"log"

	"github.com/foodhubdev/foodhub/app/db/fakers"
	"github.com/foodhubdev/foodhub/app/helpers"
	"github.com/foodhubdev/foodhub/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func menuCategories() []models.MenuCategory {
	return []models.MenuCategory{
		{Name: "Italian", Icon: "🍕", DisplayOrder: 1, IsActive: true},
		{Name: "Indian", Icon: "🍛", DisplayOrder: 2, IsActive: true},
		{Name: "Chinese", Icon: "🥡", DisplayOrder: 3, IsActive: true},
		{Name: "Desserts", Icon: "🍰", DisplayOrder: 4, IsActive: true},
	}
}

func menuItems() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Margherita Pizza", Description: "Classic delight with fresh mozzarella and basil", Price: price("299"), Image: "/images/menu/margherita.jpg", Category: "Italian", Rating: 4.5, Popular: true, IsActive: true},
		{Name: "Pasta Alfredo", Description: "Creamy fettuccine with parmesan", Price: price("249"), Image: "/images/menu/alfredo.jpg", Category: "Italian", Rating: 4.3, IsActive: true},
		{Name: "Paneer Butter Masala", Description: "Cottage cheese in rich tomato gravy", Price: price("279"), Image: "/images/menu/paneer.jpg", Category: "Indian", Rating: 4.7, Popular: true, IsActive: true},
		{Name: "Chicken Biryani", Description: "Fragrant basmati rice with spiced chicken", Price: price("329"), Image: "/images/menu/biryani.jpg", Category: "Indian", Rating: 4.8, Popular: true, IsActive: true},
		{Name: "Hakka Noodles", Description: "Stir-fried noodles with vegetables", Price: price("199"), Image: "/images/menu/noodles.jpg", Category: "Chinese", Rating: 4.2, IsActive: true},
		{Name: "Chocolate Brownie", Description: "Warm brownie with a molten center", Price: price("149"), Image: "/images/menu/brownie.jpg", Category: "Desserts", Rating: 4.6, IsActive: true},
	}
}

func customizationCategories() []models.CustomizationCategory {
	return []models.CustomizationCategory{
		{
			Name:        "spice_level",
			DisplayName: "Spice Level",
			Description: "How hot should it be?",
			IsActive:    true,
			Options: []models.CustomizationOption{
				{Name: "mild", DisplayName: "Mild", PriceAdjustment: price("0"), IsDefault: true, IsActive: true, SortOrder: 1},
				{Name: "medium", DisplayName: "Medium", PriceAdjustment: price("0"), IsActive: true, SortOrder: 2},
				{Name: "hot", DisplayName: "Hot", PriceAdjustment: price("0"), IsActive: true, SortOrder: 3},
			},
		},
		{
			Name:        "extra_toppings",
			DisplayName: "Extra Toppings",
			Description: "Pile it on",
			IsActive:    true,
			Options: []models.CustomizationOption{
				{Name: "cheese", DisplayName: "Extra Cheese", PriceAdjustment: price("20"), IsActive: true, SortOrder: 1},
				{Name: "olives", DisplayName: "Olives", PriceAdjustment: price("20"), IsActive: true, SortOrder: 2},
				{Name: "mushrooms", DisplayName: "Mushrooms", PriceAdjustment: price("20"), IsActive: true, SortOrder: 3},
				{Name: "paneer", DisplayName: "Paneer", PriceAdjustment: price("20"), IsActive: true, SortOrder: 4},
			},
		},
	}
}

func adminUser() *models.User {
	return &models.User{
		FirstName: "Food",
		LastName:  "Admin",
		Email:     "admin@foodhub.dev",
		Password:  helpers.HashPassword("admin12345"),
		Role:      models.RoleAdmin,
	}
}

// DBSeed fills a development database with the canonical menu, the
// customization groups wired to each menu category, an admin account and a
// handful of fake customers. It is idempotent on names and emails.
func DBSeed(db *gorm.DB) error {
	for _, category := range menuCategories() {
		if err := db.FirstOrCreate(&category, models.MenuCategory{Name: category.Name}).Error; err != nil {
			return err
		}
	}

	for _, item := range menuItems() {
		if err := db.FirstOrCreate(&item, models.MenuItem{Name: item.Name}).Error; err != nil {
			return err
		}
	}

	customizations := make(map[string]int64)
	for _, category := range customizationCategories() {
		existing := models.CustomizationCategory{}
		err := db.Where("name = ?", category.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&category).Error; err != nil {
				return err
			}
			customizations[category.Name] = category.ID
			continue
		}
		if err != nil {
			return err
		}
		customizations[category.Name] = existing.ID
	}

	links := []models.CategoryCustomization{
		{MenuCategory: "Italian", CustomizationCategoryID: customizations["extra_toppings"], MaxSelections: 4, SortOrder: 1},
		{MenuCategory: "Indian", CustomizationCategoryID: customizations["spice_level"], IsRequired: true, MaxSelections: 1, SortOrder: 1},
		{MenuCategory: "Indian", CustomizationCategoryID: customizations["extra_toppings"], MaxSelections: 4, SortOrder: 2},
		{MenuCategory: "Chinese", CustomizationCategoryID: customizations["spice_level"], MaxSelections: 1, SortOrder: 1},
	}
	for _, link := range links {
		where := models.CategoryCustomization{
			MenuCategory:            link.MenuCategory,
			CustomizationCategoryID: link.CustomizationCategoryID,
		}
		if err := db.FirstOrCreate(&link, where).Error; err != nil {
			return err
		}
	}

	admin := adminUser()
	if err := db.FirstOrCreate(admin, models.User{Email: admin.Email}).Error; err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		customer := fakers.UserFaker(db)
		if err := db.FirstOrCreate(customer, models.User{Email: customer.Email}).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Seed complete")
	return nil
}
