package services

import (
	"backend/entity"
)

// SelectionService enforces the per-group cardinality and requiredness rules.
type SelectionService struct {
	Catalog *CatalogService
}

func NewSelectionService(catalog *CatalogService) *SelectionService {
	return &SelectionService{Catalog: catalog}
}

// Defaults builds the starting selections for an item: a required group with
// at least one option pre-selects its first option in catalog order, any
// other group starts empty. Groups missing from the catalog are skipped.
func (s *SelectionService) Defaults(item *entity.MenuItem) entity.SelectionSet {
	sel := entity.SelectionSet{}
	for _, gid := range s.Catalog.GroupsFor(item.ID) {
		group, ok := s.Catalog.Group(gid)
		if !ok {
			continue
		}
		if group.Required && len(group.Options) > 0 {
			sel[gid] = []uint{group.Options[0].ID}
		} else {
			sel[gid] = []uint{}
		}
	}
	return sel
}

// Toggle flips optionID in groupID on sel, in place.
//
// Deselecting the only option of a required group is refused. Selecting into
// a maxSelections=1 group replaces the whole sequence (radio semantics).
// Selecting into a full bounded group evicts the oldest pick and appends the
// new one; the new selection is never refused. An unknown group is a no-op.
func (s *SelectionService) Toggle(sel entity.SelectionSet, groupID, optionID uint) {
	group, ok := s.Catalog.Group(groupID)
	if !ok {
		return
	}

	current := sel[groupID]

	if sel.Has(groupID, optionID) {
		if group.Required && len(current) == 1 {
			return
		}
		next := make([]uint, 0, len(current)-1)
		for _, id := range current {
			if id != optionID {
				next = append(next, id)
			}
		}
		sel[groupID] = next
		return
	}

	switch {
	case group.MaxSelections == 1:
		sel[groupID] = []uint{optionID}
	case group.MaxSelections > 1 && len(current) >= group.MaxSelections:
		sel[groupID] = append(current[1:], optionID)
	default:
		sel[groupID] = append(current, optionID)
	}
}

// IsValid reports whether every required modifier group the item references
// (and the catalog knows about) has at least one selection. Optional or
// missing groups never block validity.
func (s *SelectionService) IsValid(item *entity.MenuItem, sel entity.SelectionSet) bool {
	for _, gid := range s.Catalog.GroupsFor(item.ID) {
		group, ok := s.Catalog.Group(gid)
		if !ok || !group.Required {
			continue
		}
		if len(sel[gid]) == 0 {
			return false
		}
	}
	return true
}
