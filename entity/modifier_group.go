package entity

import (
	"gorm.io/gorm"
)

// ModifierGroup groups the add-ons/variants attachable to a menu item.
// MaxSelections 0 means unbounded.
type ModifierGroup struct {
	gorm.Model
	Name          string `json:"name"`
	Required      bool   `json:"required"`
	MaxSelections int    `json:"maxSelections"`
	SortOrder     int    `json:"sortOrder"`

	// preload options often → keep
	Options []ModifierOption `json:"options"`

	MenuItems []MenuItem `gorm:"many2many:menu_item_groups;" json:"-"`
}

type ModifierOption struct {
	gorm.Model
	ModifierGroupID uint   `json:"modifierGroupId"`
	Name            string `json:"name"`
	PriceDelta      int64  `json:"priceDelta"` // cents, non-negative
	SortOrder       int    `json:"sortOrder"`
}
