package repository

import (
	"backend/entity"
)

// CartRepository holds one session's committed lines in memory. Carts are
// never persisted. Line ids are assigned monotonically and never reused, even
// after removal. Callers serialize access per session; the repository itself
// does no locking.
type CartRepository struct {
	lines  []*entity.CartLine
	nextID uint
}

func NewCartRepository() *CartRepository {
	return &CartRepository{nextID: 1}
}

// AddLine snapshots item and appends a new line, returning its id.
func (r *CartRepository) AddLine(item entity.MenuItem, source string, qty int, note string, sel entity.SelectionSet) uint {
	if qty < 1 {
		qty = 1
	}
	line := &entity.CartLine{
		ID:         r.nextID,
		Source:     source,
		Item:       item,
		Qty:        qty,
		Note:       note,
		Selections: sel.Clone(),
	}
	r.nextID++
	r.lines = append(r.lines, line)
	return line.ID
}

// UpdateLine overwrites quantity, note and selections in place. Item and
// source are untouched. No-op when the id is absent.
func (r *CartRepository) UpdateLine(id uint, qty int, note string, sel entity.SelectionSet) {
	line, ok := r.Find(id)
	if !ok {
		return
	}
	if qty < 1 {
		qty = 1
	}
	line.Qty = qty
	line.Note = note
	line.Selections = sel.Clone()
}

func (r *CartRepository) RemoveLine(id uint) {
	for i, line := range r.lines {
		if line.ID == id {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return
		}
	}
}

// AdjustQty applies a delta. A result of zero or below removes the line
// entirely; any positive result is stored as-is, so a stored quantity never
// drops below 1.
func (r *CartRepository) AdjustQty(id uint, delta int) {
	line, ok := r.Find(id)
	if !ok {
		return
	}
	next := line.Qty + delta
	if next <= 0 {
		r.RemoveLine(id)
		return
	}
	line.Qty = next
}

func (r *CartRepository) Find(id uint) (*entity.CartLine, bool) {
	for _, line := range r.lines {
		if line.ID == id {
			return line, true
		}
	}
	return nil, false
}

// Lines returns the committed lines in insertion order.
func (r *CartRepository) Lines() []*entity.CartLine {
	return r.lines
}

func (r *CartRepository) Len() int { return len(r.lines) }
