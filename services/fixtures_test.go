package services

import (
	"backend/entity"

	"gorm.io/gorm"
)

// testCatalog builds a small in-memory catalog shared by the service tests.
//
//	item 1 "Grill Bowl"    4500  groups: 10
//	item 2 "Iced Tea"      3500  no groups, tag "sweet"
//	item 3 "Mega Plate"    7000  groups: 10, 20, 30, 99 (99 missing)
//	item 4 "Strict Salad"  5200  groups: 40 (required, zero options)
//	group 10 "Protein"  required, max 1:  101 Grilled +0, 102 Crispy +500
//	group 20 "Extras"   optional, max 2:  201 Egg +1200, 202 Cheese +1000, 203 Rice +1000
//	group 30 "Sides"    required, unbounded: 301 Slaw +0, 302 Fries +300
//	group 40 "Size"     required, no options
//	combo 5 "Duo Set"   8000 = items 1 + 2
func testCatalog() *CatalogService {
	mkItem := func(id uint, name, detail string, price int64, categoryID uint, tags ...string) entity.MenuItem {
		it := entity.MenuItem{Name: name, Detail: detail, Price: price, CategoryID: categoryID}
		it.ID = id
		for i, tag := range tags {
			t := entity.Tag{Name: tag}
			t.ID = id*10 + uint(i)
			it.Tags = append(it.Tags, t)
		}
		return it
	}
	mkGroup := func(id uint, name string, required bool, max int, opts ...entity.ModifierOption) entity.ModifierGroup {
		g := entity.ModifierGroup{Name: name, Required: required, MaxSelections: max, Options: opts}
		g.ID = id
		return g
	}
	mkOpt := func(id uint, groupID uint, name string, delta int64, sort int) entity.ModifierOption {
		o := entity.ModifierOption{ModifierGroupID: groupID, Name: name, PriceDelta: delta, SortOrder: sort}
		o.ID = id
		return o
	}

	combo := entity.Combo{Name: "Duo Set", Detail: "A bowl and a drink", Price: 8000}
	combo.ID = 5

	cat := &entity.Catalog{
		Categories: []entity.Category{
			{Model: gorm.Model{ID: 1}, Name: "Mains"},
			{Model: gorm.Model{ID: 2}, Name: "Drinks"},
			{Model: gorm.Model{ID: 3}, Name: "Combos"},
		},
		Items: []entity.MenuItem{
			mkItem(1, "Grill Bowl", "Charred chicken over rice", 4500, 1, "spicy", "bestseller"),
			mkItem(2, "Iced Tea", "Brewed daily", 3500, 2, "sweet"),
			mkItem(3, "Mega Plate", "Everything at once", 7000, 1, "spicy"),
			mkItem(4, "Strict Salad", "Pick a size", 5200, 1),
		},
		ItemGroups: []entity.MenuItemGroup{
			{MenuItemID: 1, ModifierGroupID: 10, SortOrder: 0},
			{MenuItemID: 3, ModifierGroupID: 10, SortOrder: 0},
			{MenuItemID: 3, ModifierGroupID: 20, SortOrder: 1},
			{MenuItemID: 3, ModifierGroupID: 30, SortOrder: 2},
			{MenuItemID: 3, ModifierGroupID: 99, SortOrder: 3},
			{MenuItemID: 4, ModifierGroupID: 40, SortOrder: 0},
		},
		Groups: []entity.ModifierGroup{
			mkGroup(10, "Protein", true, 1,
				mkOpt(101, 10, "Grilled", 0, 0),
				mkOpt(102, 10, "Crispy", 500, 1),
			),
			mkGroup(20, "Extras", false, 2,
				mkOpt(201, 20, "Egg", 1200, 0),
				mkOpt(202, 20, "Cheese", 1000, 1),
				mkOpt(203, 20, "Rice", 1000, 2),
			),
			mkGroup(30, "Sides", true, 0,
				mkOpt(301, 30, "Slaw", 0, 0),
				mkOpt(302, 30, "Fries", 300, 1),
			),
			mkGroup(40, "Size", true, 1),
		},
		Combos: []entity.Combo{combo},
		ComboItems: []entity.ComboItem{
			{ComboID: 5, MenuItemID: 1, SortOrder: 0},
			{ComboID: 5, MenuItemID: 2, SortOrder: 1},
		},
	}
	return NewCatalogService(cat)
}

func testItem(c *CatalogService, id uint) *entity.MenuItem {
	it, ok := c.Item(id)
	if !ok {
		panic("fixture item missing")
	}
	return it
}
