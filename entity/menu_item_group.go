package entity

// Join table Menu item <-> modifier group, ordered per item.
type MenuItemGroup struct {
	MenuItemID      uint `gorm:"primaryKey" json:"menuItemId"`
	ModifierGroupID uint `gorm:"primaryKey" json:"modifierGroupId"`
	SortOrder       int  `gorm:"not null;default:0" json:"sortOrder"`
}
