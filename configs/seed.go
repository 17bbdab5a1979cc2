package configs

import (
	"log"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
)

// SeedOperator creates the first staff account.
func SeedOperator() error {
	operators := repository.NewOperatorRepository(DB())
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding operator: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	count, err := operators.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("operator already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Operator{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return operators.Create(&admin)
}

// SeedCatalog loads the reference data a fresh till needs. All prices are
// cents.
func SeedCatalog() error {
	db := DB()

	// Categories
	var mains, drinks, sides, combos entity.Category
	db.FirstOrCreate(&mains, entity.Category{Name: "Mains"})
	db.FirstOrCreate(&drinks, entity.Category{Name: "Drinks"})
	db.FirstOrCreate(&sides, entity.Category{Name: "Sides"})
	db.FirstOrCreate(&combos, entity.Category{Name: "Combos"})

	// Tags
	var spicy, veggie, bestseller entity.Tag
	db.FirstOrCreate(&spicy, entity.Tag{Name: "spicy"})
	db.FirstOrCreate(&veggie, entity.Tag{Name: "veggie"})
	db.FirstOrCreate(&bestseller, entity.Tag{Name: "bestseller"})

	// Modifier groups
	protein := entity.ModifierGroup{Name: "Protein", Required: true, MaxSelections: 1, SortOrder: 0}
	db.FirstOrCreate(&protein, entity.ModifierGroup{Name: "Protein"})
	spiceLevel := entity.ModifierGroup{Name: "Spice Level", Required: true, MaxSelections: 1, SortOrder: 1}
	db.FirstOrCreate(&spiceLevel, entity.ModifierGroup{Name: "Spice Level"})
	toppings := entity.ModifierGroup{Name: "Toppings", MaxSelections: 3, SortOrder: 2}
	db.FirstOrCreate(&toppings, entity.ModifierGroup{Name: "Toppings"})
	sweetness := entity.ModifierGroup{Name: "Sweetness", MaxSelections: 1, SortOrder: 3}
	db.FirstOrCreate(&sweetness, entity.ModifierGroup{Name: "Sweetness"})

	seedOptions(protein.ID, []entity.ModifierOption{
		{Name: "Chicken", PriceDelta: 0, SortOrder: 0},
		{Name: "Beef", PriceDelta: 500, SortOrder: 1},
		{Name: "Tofu", PriceDelta: 0, SortOrder: 2},
	})
	seedOptions(spiceLevel.ID, []entity.ModifierOption{
		{Name: "Mild", PriceDelta: 0, SortOrder: 0},
		{Name: "Medium", PriceDelta: 0, SortOrder: 1},
		{Name: "Hot", PriceDelta: 0, SortOrder: 2},
	})
	seedOptions(toppings.ID, []entity.ModifierOption{
		{Name: "Fried Egg", PriceDelta: 1200, SortOrder: 0},
		{Name: "Cheese", PriceDelta: 1000, SortOrder: 1},
		{Name: "Extra Rice", PriceDelta: 1000, SortOrder: 2},
		{Name: "Crispy Pork", PriceDelta: 1500, SortOrder: 3},
	})
	seedOptions(sweetness.ID, []entity.ModifierOption{
		{Name: "Normal", PriceDelta: 0, SortOrder: 0},
		{Name: "Less Sweet", PriceDelta: 0, SortOrder: 1},
		{Name: "No Sugar", PriceDelta: 0, SortOrder: 2},
	})

	// Menu items
	krapow := entity.MenuItem{Name: "Pad Krapow", Detail: "Stir-fried holy basil over rice", Price: 4500, CategoryID: mains.ID, Popular: true, SpiceLevel: entity.SpiceHot}
	db.FirstOrCreate(&krapow, entity.MenuItem{Name: "Pad Krapow"})
	curry := entity.MenuItem{Name: "Green Curry", Detail: "Coconut green curry", Price: 6500, CategoryID: mains.ID, SpiceLevel: entity.SpiceMedium}
	db.FirstOrCreate(&curry, entity.MenuItem{Name: "Green Curry"})
	icedTea := entity.MenuItem{Name: "Thai Iced Tea", Detail: "Sweet tea with milk", Price: 3500, CategoryID: drinks.ID, Popular: true}
	db.FirstOrCreate(&icedTea, entity.MenuItem{Name: "Thai Iced Tea"})
	rolls := entity.MenuItem{Name: "Spring Rolls", Detail: "Vegetable rolls, sweet chili dip", Price: 4000, CategoryID: sides.ID}
	db.FirstOrCreate(&rolls, entity.MenuItem{Name: "Spring Rolls"})

	db.Model(&krapow).Association("Tags").Append(&spicy, &bestseller)
	db.Model(&curry).Association("Tags").Append(&spicy)
	db.Model(&rolls).Association("Tags").Append(&veggie)

	seedItemGroups(krapow.ID, []uint{protein.ID, spiceLevel.ID, toppings.ID})
	seedItemGroups(curry.ID, []uint{protein.ID, spiceLevel.ID})
	seedItemGroups(icedTea.ID, []uint{sweetness.ID})

	// Combos
	lunchSet := entity.Combo{Name: "Lunch Set A", Detail: "A main and a drink", Price: 8000}
	db.FirstOrCreate(&lunchSet, entity.Combo{Name: "Lunch Set A"})
	db.FirstOrCreate(&entity.ComboItem{}, entity.ComboItem{ComboID: lunchSet.ID, MenuItemID: krapow.ID, SortOrder: 0})
	db.FirstOrCreate(&entity.ComboItem{}, entity.ComboItem{ComboID: lunchSet.ID, MenuItemID: icedTea.ID, SortOrder: 1})

	// Payment
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{Name: "Cash"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{Name: "PromptPay"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{Name: "Credit Card"})

	// Tables
	db.FirstOrCreate(&entity.DiningTable{}, entity.DiningTable{Name: "T1", Seats: 2})
	db.FirstOrCreate(&entity.DiningTable{}, entity.DiningTable{Name: "T2", Seats: 2})
	db.FirstOrCreate(&entity.DiningTable{}, entity.DiningTable{Name: "T3", Seats: 4})
	db.FirstOrCreate(&entity.DiningTable{}, entity.DiningTable{Name: "T4", Seats: 6})

	// Loyalty
	db.FirstOrCreate(&entity.LoyaltyTier{}, entity.LoyaltyTier{Name: "Bronze", Threshold: 0})
	db.FirstOrCreate(&entity.LoyaltyTier{}, entity.LoyaltyTier{Name: "Silver", Threshold: 500_000})
	db.FirstOrCreate(&entity.LoyaltyTier{}, entity.LoyaltyTier{Name: "Gold", Threshold: 2_000_000})

	log.Println("catalog seeded")
	return nil
}

func seedOptions(groupID uint, opts []entity.ModifierOption) {
	db := DB()
	for _, opt := range opts {
		opt.ModifierGroupID = groupID
		db.FirstOrCreate(&opt, entity.ModifierOption{ModifierGroupID: groupID, Name: opt.Name})
	}
}

func seedItemGroups(itemID uint, groupIDs []uint) {
	db := DB()
	for i, gid := range groupIDs {
		db.FirstOrCreate(&entity.MenuItemGroup{}, entity.MenuItemGroup{MenuItemID: itemID, ModifierGroupID: gid, SortOrder: i})
	}
}
