package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// join tables carry per-item ordering
	if err := db.SetupJoinTable(&entity.MenuItem{}, "Groups", &entity.MenuItemGroup{}); err != nil {
		panic(err)
	}
	if err := db.SetupJoinTable(&entity.ModifierGroup{}, "MenuItems", &entity.MenuItemGroup{}); err != nil {
		panic(err)
	}
	if err := db.SetupJoinTable(&entity.Combo{}, "MenuItems", &entity.ComboItem{}); err != nil {
		panic(err)
	}

	// Migrate the schema
	db.AutoMigrate(
		&entity.Operator{},
		&entity.Category{}, &entity.Tag{},
		&entity.MenuItem{}, &entity.ModifierGroup{}, &entity.ModifierOption{}, &entity.MenuItemGroup{},
		&entity.Combo{}, &entity.ComboItem{},
		&entity.PaymentMethod{}, &entity.DiningTable{}, &entity.LoyaltyTier{},
	)
}
