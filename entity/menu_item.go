package entity

import (
	"gorm.io/gorm"
)

// Spice levels a kitchen can tag an item with.
const (
	SpiceNone   = ""
	SpiceMild   = "mild"
	SpiceMedium = "medium"
	SpiceHot    = "hot"
)

type MenuItem struct {
	gorm.Model
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Price  int64  `json:"price"` // cents

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for detail views

	Popular    bool   `json:"popular"`
	SpiceLevel string `json:"spiceLevel,omitempty"`

	Groups []ModifierGroup `gorm:"many2many:menu_item_groups;" json:"-"`
	Tags   []Tag           `gorm:"many2many:menu_item_tags;" json:"tags,omitempty"`
}
