package entity

import (
	"gorm.io/gorm"
)

// Combo is a fixed-price bundle of existing menu items.
type Combo struct {
	gorm.Model
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Price  int64  `json:"price"` // flat bundle price, cents

	MenuItems []MenuItem `gorm:"many2many:combo_items;" json:"-"`
}

// Join table Combo <-> menu item, ordered per bundle.
type ComboItem struct {
	ComboID    uint `gorm:"primaryKey" json:"comboId"`
	MenuItemID uint `gorm:"primaryKey" json:"menuItemId"`
	SortOrder  int  `gorm:"not null;default:0" json:"sortOrder"`
}

// ComboItemIDBase offsets the synthetic menu item id derived from a combo id,
// so a cart line can later be recognized as combo-sourced.
const ComboItemIDBase uint = 1_000_000

func ComboMenuItemID(comboID uint) uint { return ComboItemIDBase + comboID }

func IsComboMenuItemID(itemID uint) bool { return itemID >= ComboItemIDBase }
