package services

import (
	"strconv"
	"strings"

	"backend/entity"
)

// CatalogService is the read-only, indexed view of the reference catalog the
// whole engine works against. Built once at boot; never mutated afterwards,
// so it is safe to share across sessions without locking.
type CatalogService struct {
	itemOrder  []uint
	items      map[uint]entity.MenuItem
	groupOrder []uint
	groups     map[uint]entity.ModifierGroup
	options    map[uint]entity.ModifierOption

	itemGroups map[uint][]uint // item id -> group ids, catalog order
	itemTags   map[uint][]string

	comboOrder []uint
	combos     map[uint]entity.Combo
	comboItems map[uint][]uint // combo id -> item ids, bundle order

	comboCategoryID uint

	payments []entity.PaymentMethod
	tables   []entity.DiningTable
	tiers    []entity.LoyaltyTier
}

func NewCatalogService(cat *entity.Catalog) *CatalogService {
	s := &CatalogService{
		items:      make(map[uint]entity.MenuItem, len(cat.Items)),
		groups:     make(map[uint]entity.ModifierGroup, len(cat.Groups)),
		options:    make(map[uint]entity.ModifierOption),
		itemGroups: make(map[uint][]uint),
		itemTags:   make(map[uint][]string),
		combos:     make(map[uint]entity.Combo, len(cat.Combos)),
		comboItems: make(map[uint][]uint),
		payments:   cat.PaymentMethods,
		tables:     cat.Tables,
		tiers:      cat.LoyaltyTiers,
	}

	for _, it := range cat.Items {
		s.itemOrder = append(s.itemOrder, it.ID)
		s.items[it.ID] = it
		for _, t := range it.Tags {
			s.itemTags[it.ID] = append(s.itemTags[it.ID], t.Name)
		}
	}
	for _, g := range cat.Groups {
		s.groupOrder = append(s.groupOrder, g.ID)
		s.groups[g.ID] = g
		for _, opt := range g.Options {
			s.options[opt.ID] = opt
		}
	}
	for _, ig := range cat.ItemGroups {
		s.itemGroups[ig.MenuItemID] = append(s.itemGroups[ig.MenuItemID], ig.ModifierGroupID)
	}
	for _, cb := range cat.Combos {
		s.comboOrder = append(s.comboOrder, cb.ID)
		s.combos[cb.ID] = cb
	}
	for _, ci := range cat.ComboItems {
		s.comboItems[ci.ComboID] = append(s.comboItems[ci.ComboID], ci.MenuItemID)
	}
	for _, c := range cat.Categories {
		if c.Name == "Combos" {
			s.comboCategoryID = c.ID
		}
	}

	return s
}

func (s *CatalogService) Item(id uint) (*entity.MenuItem, bool) {
	it, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return &it, true
}

func (s *CatalogService) Group(id uint) (*entity.ModifierGroup, bool) {
	g, ok := s.groups[id]
	if !ok {
		return nil, false
	}
	return &g, true
}

// GroupsFor returns the modifier group ids an item references, in catalog order.
func (s *CatalogService) GroupsFor(itemID uint) []uint {
	return s.itemGroups[itemID]
}

// OptionPrice returns the option's price delta, or 0 when the option is
// missing from the catalog. A stale cart line must never crash pricing.
func (s *CatalogService) OptionPrice(optionID uint) int64 {
	if opt, ok := s.options[optionID]; ok {
		return opt.PriceDelta
	}
	return 0
}

// OptionName returns the option's display name, falling back to the raw id.
func (s *CatalogService) OptionName(optionID uint) string {
	if opt, ok := s.options[optionID]; ok {
		return opt.Name
	}
	return strconv.FormatUint(uint64(optionID), 10)
}

func (s *CatalogService) Combo(id uint) (*entity.Combo, bool) {
	cb, ok := s.combos[id]
	if !ok {
		return nil, false
	}
	return &cb, true
}

func (s *CatalogService) Combos() []entity.Combo {
	out := make([]entity.Combo, 0, len(s.comboOrder))
	for _, id := range s.comboOrder {
		out = append(out, s.combos[id])
	}
	return out
}

// ComboMenuItem materializes a combo into its synthetic menu item plus the
// auto note listing the bundle's constituents.
func (s *CatalogService) ComboMenuItem(comboID uint) (entity.MenuItem, string, bool) {
	cb, ok := s.combos[comboID]
	if !ok {
		return entity.MenuItem{}, "", false
	}

	names := make([]string, 0, len(s.comboItems[comboID]))
	for _, itemID := range s.comboItems[comboID] {
		if it, ok := s.items[itemID]; ok {
			names = append(names, it.Name)
		}
	}

	item := entity.MenuItem{
		Name:       cb.Name,
		Detail:     cb.Detail,
		Price:      cb.Price,
		CategoryID: s.comboCategoryID,
	}
	item.ID = entity.ComboMenuItemID(comboID)
	return item, strings.Join(names, ", "), true
}

// FilteredMenu intersects a case-insensitive substring search over
// name/detail/tags with an exact category match and an optional exact tag
// match. Zero values mean "no filter".
func (s *CatalogService) FilteredMenu(categoryID uint, search, tag string) []entity.MenuItem {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]entity.MenuItem, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		it := s.items[id]
		if categoryID != 0 && it.CategoryID != categoryID {
			continue
		}
		if tag != "" && !s.hasTag(id, tag) {
			continue
		}
		if search != "" && !s.matches(it, search) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *CatalogService) hasTag(itemID uint, tag string) bool {
	for _, t := range s.itemTags[itemID] {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *CatalogService) matches(it entity.MenuItem, search string) bool {
	if strings.Contains(strings.ToLower(it.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Detail), search) {
		return true
	}
	for _, t := range s.itemTags[it.ID] {
		if strings.Contains(strings.ToLower(t), search) {
			return true
		}
	}
	return false
}

// Groups returns every modifier group in catalog order.
func (s *CatalogService) Groups() []entity.ModifierGroup {
	out := make([]entity.ModifierGroup, 0, len(s.groupOrder))
	for _, id := range s.groupOrder {
		out = append(out, s.groups[id])
	}
	return out
}

func (s *CatalogService) PaymentMethods() []entity.PaymentMethod { return s.payments }
func (s *CatalogService) Tables() []entity.DiningTable           { return s.tables }
func (s *CatalogService) LoyaltyTiers() []entity.LoyaltyTier     { return s.tiers }
