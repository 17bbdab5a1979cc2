package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// LoadCatalog pulls the full reference catalog in one pass. Join rows are read
// directly so per-item group order and per-combo item order survive.
func (r *CatalogRepository) LoadCatalog() (*entity.Catalog, error) {
	var cat entity.Catalog

	if err := r.DB.Order("id").Find(&cat.Categories).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Preload("Tags").Order("id").Find(&cat.Items).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("menu_item_id, sort_order").Find(&cat.ItemGroups).Error; err != nil {
		return nil, err
	}
	if err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, id") }).
		Order("sort_order, id").
		Find(&cat.Groups).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("id").Find(&cat.Combos).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("combo_id, sort_order").Find(&cat.ComboItems).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("id").Find(&cat.PaymentMethods).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("id").Find(&cat.Tables).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Order("threshold").Find(&cat.LoyaltyTiers).Error; err != nil {
		return nil, err
	}

	return &cat, nil
}
