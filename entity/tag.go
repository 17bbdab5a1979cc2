package entity

import (
	"gorm.io/gorm"
)

type Tag struct {
	gorm.Model
	Name string `json:"name"`

	MenuItems []MenuItem `gorm:"many2many:menu_item_tags;" json:"-"`
}
