package services

import (
	"errors"

	"backend/entity"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrLineNotFound = errors.New("cart line not found")
	ErrNoDraft      = errors.New("no draft in progress")
	ErrDraftInvalid = errors.New("required modifier selections missing")
)

// DraftService is the customization workflow: Idle -> Drafting -> Idle. A
// session holds at most one draft; commit is gated on validation and leaves
// the draft in place when refused.
type DraftService struct {
	Sessions  *SessionManager
	Catalog   *CatalogService
	Selection *SelectionService
	Pricing   *PricingService
}

func NewDraftService(sessions *SessionManager, catalog *CatalogService, selection *SelectionService, pricing *PricingService) *DraftService {
	return &DraftService{Sessions: sessions, Catalog: catalog, Selection: selection, Pricing: pricing}
}

// DraftView is the live preview: the working line, its validity, its subtotal
// and the bill as it would look with the draft included.
type DraftView struct {
	Item       entity.MenuItem     `json:"item"`
	LineID     uint                `json:"lineId,omitempty"`
	Editing    bool                `json:"editing"`
	Qty        int                 `json:"qty"`
	Note       string              `json:"note"`
	Selections entity.SelectionSet `json:"selections"`
	Valid      bool                `json:"valid"`
	Subtotal   int64               `json:"subtotal"`
	Preview    Totals              `json:"preview"`
}

// Begin starts a new-item draft: quantity 1, empty note, default selections.
// Any draft already in progress is discarded.
func (s *DraftService) Begin(sessionID string, itemID uint) error {
	item, ok := s.Catalog.Item(itemID)
	if !ok {
		return ErrItemNotFound
	}
	return s.Sessions.With(sessionID, func(sess *Session) error {
		sess.Draft = &Draft{
			Item:       *item,
			Qty:        1,
			Selections: s.Selection.Defaults(item),
		}
		return nil
	})
}

// BeginEdit starts an edit draft from a committed line. Selections are deep
// copied so draft toggles never touch the committed line.
func (s *DraftService) BeginEdit(sessionID string, lineID uint) error {
	return s.Sessions.With(sessionID, func(sess *Session) error {
		line, ok := sess.Cart.Find(lineID)
		if !ok {
			return ErrLineNotFound
		}
		sess.Draft = &Draft{
			Item:       line.Item,
			LineID:     line.ID,
			Qty:        line.Qty,
			Note:       line.Note,
			Selections: line.Selections.Clone(),
		}
		return nil
	})
}

// Toggle flips an option on the working selections.
func (s *DraftService) Toggle(sessionID string, groupID, optionID uint) error {
	return s.Sessions.With(sessionID, func(sess *Session) error {
		if sess.Draft == nil {
			return ErrNoDraft
		}
		s.Selection.Toggle(sess.Draft.Selections, groupID, optionID)
		return nil
	})
}

// SetQty updates the working quantity, clamped to 1 or above.
func (s *DraftService) SetQty(sessionID string, qty int) error {
	return s.Sessions.With(sessionID, func(sess *Session) error {
		if sess.Draft == nil {
			return ErrNoDraft
		}
		if qty < 1 {
			qty = 1
		}
		sess.Draft.Qty = qty
		return nil
	})
}

func (s *DraftService) SetNote(sessionID string, note string) error {
	return s.Sessions.With(sessionID, func(sess *Session) error {
		if sess.Draft == nil {
			return ErrNoDraft
		}
		sess.Draft.Note = note
		return nil
	})
}

// Cancel discards the draft; the committed cart is untouched.
func (s *DraftService) Cancel(sessionID string) error {
	return s.Sessions.With(sessionID, func(sess *Session) error {
		sess.Draft = nil
		return nil
	})
}

// Commit validates the draft and writes it into the cart: an edit draft
// overwrites its target line, a new-item draft appends. Refused (draft kept)
// when a required group has no selection.
func (s *DraftService) Commit(sessionID string) error {
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		d := sess.Draft
		if d == nil {
			return ErrNoDraft
		}
		if !s.Selection.IsValid(&d.Item, d.Selections) {
			return ErrDraftInvalid
		}

		if d.LineID != 0 {
			sess.Cart.UpdateLine(d.LineID, d.Qty, d.Note, d.Selections)
		} else {
			source := entity.SourceMenu
			if entity.IsComboMenuItemID(d.Item.ID) {
				source = entity.SourceCombo
			}
			sess.Cart.AddLine(d.Item, source, d.Qty, d.Note, d.Selections)
		}
		sess.Draft = nil
		return nil
	})
	if err == nil {
		s.Sessions.Changed(sessionID)
	}
	return err
}

// View returns the draft preview, or ErrNoDraft when the session is idle.
func (s *DraftService) View(sessionID string) (*DraftView, error) {
	var view *DraftView
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		d := sess.Draft
		if d == nil {
			return ErrNoDraft
		}

		draftLine := &entity.CartLine{Item: d.Item, Qty: d.Qty, Selections: d.Selections}

		// an edit draft stands in for its target line in the preview
		preview := make([]*entity.CartLine, 0, sess.Cart.Len()+1)
		replaced := false
		for _, line := range sess.Cart.Lines() {
			if d.LineID != 0 && line.ID == d.LineID {
				preview = append(preview, draftLine)
				replaced = true
				continue
			}
			preview = append(preview, line)
		}
		if !replaced {
			preview = append(preview, draftLine)
		}

		view = &DraftView{
			Item:       d.Item,
			LineID:     d.LineID,
			Editing:    d.LineID != 0,
			Qty:        d.Qty,
			Note:       d.Note,
			Selections: d.Selections,
			Valid:      s.Selection.IsValid(&d.Item, d.Selections),
			Subtotal:   s.Pricing.LineSubtotal(draftLine),
			Preview:    s.Pricing.Totals(preview, sess.ServiceMode, sess.Discount),
		}
		return nil
	})
	return view, err
}
