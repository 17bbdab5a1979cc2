package services

import (
	"errors"

	"backend/entity"
)

var (
	ErrComboNotFound  = errors.New("combo not found")
	ErrBadServiceMode = errors.New("unknown service mode")
)

// CartService runs the direct cart commands of a session: quantity
// adjustments, removals, combo quick-adds and the scalar settings feeding the
// pricing calculator.
type CartService struct {
	Sessions *SessionManager
	Catalog  *CatalogService
	Pricing  *PricingService
}

func NewCartService(sessions *SessionManager, catalog *CatalogService, pricing *PricingService) *CartService {
	return &CartService{Sessions: sessions, Catalog: catalog, Pricing: pricing}
}

// LineView is a committed line plus its computed subtotal.
type LineView struct {
	*entity.CartLine
	Subtotal int64 `json:"subtotal"`
}

// SessionView is what the terminal renders: lines, the itemized bill and the
// session settings.
type SessionView struct {
	ID              string             `json:"id"`
	ServiceMode     entity.ServiceMode `json:"serviceMode"`
	Discount        int64              `json:"discount"`
	TableID         uint               `json:"tableId"`
	PaymentMethodID uint               `json:"paymentMethodId"`
	Lines           []LineView         `json:"lines"`
	Totals          Totals             `json:"totals"`
	HasDraft        bool               `json:"hasDraft"`
}

func (s *CartService) View(sessionID string) (*SessionView, error) {
	var view *SessionView
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		view = s.buildView(sess)
		return nil
	})
	return view, err
}

func (s *CartService) buildView(sess *Session) *SessionView {
	lines := make([]LineView, 0, sess.Cart.Len())
	for _, line := range sess.Cart.Lines() {
		lines = append(lines, LineView{CartLine: line, Subtotal: s.Pricing.LineSubtotal(line)})
	}
	return &SessionView{
		ID:              sess.ID,
		ServiceMode:     sess.ServiceMode,
		Discount:        sess.Discount,
		TableID:         sess.TableID,
		PaymentMethodID: sess.PaymentMethodID,
		Lines:           lines,
		Totals:          s.Pricing.Totals(sess.Cart.Lines(), sess.ServiceMode, sess.Discount),
		HasDraft:        sess.Draft != nil,
	}
}

func (s *CartService) Totals(sessionID string) (Totals, error) {
	var totals Totals
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		totals = s.Pricing.Totals(sess.Cart.Lines(), sess.ServiceMode, sess.Discount)
		return nil
	})
	return totals, err
}

// AdjustQty shifts a line's quantity by delta; going non-positive removes the
// line. An unknown line id is a silent no-op.
func (s *CartService) AdjustQty(sessionID string, lineID uint, delta int) error {
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		sess.Cart.AdjustQty(lineID, delta)
		return nil
	})
	if err == nil {
		s.Sessions.Changed(sessionID)
	}
	return err
}

func (s *CartService) RemoveLine(sessionID string, lineID uint) error {
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		sess.Cart.RemoveLine(lineID)
		return nil
	})
	if err == nil {
		s.Sessions.Changed(sessionID)
	}
	return err
}

// AddCombo quick-adds a combo: one line, quantity 1, note listing the
// bundle's items, no modifier selections, bypassing the draft workflow.
func (s *CartService) AddCombo(sessionID string, comboID uint) (uint, error) {
	item, note, ok := s.Catalog.ComboMenuItem(comboID)
	if !ok {
		return 0, ErrComboNotFound
	}
	var lineID uint
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		lineID = sess.Cart.AddLine(item, entity.SourceCombo, 1, note, entity.SelectionSet{})
		return nil
	})
	if err == nil {
		s.Sessions.Changed(sessionID)
	}
	return lineID, err
}

func (s *CartService) SetServiceMode(sessionID string, mode entity.ServiceMode) error {
	if !mode.Valid() {
		return ErrBadServiceMode
	}
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		sess.ServiceMode = mode
		return nil
	})
	if err == nil {
		s.Sessions.Changed(sessionID)
	}
	return err
}

// SetDiscount stores an operator-entered discount; negative input clamps to 0.
func (s *CartService) SetDiscount(sessionID string, amount int64) error {
	if amount < 0 {
		amount = 0
	}
	err := s.Sessions.With(sessionID, func(sess *Session) error {
		sess.Discount = amount
		return nil
	})
	if err == nil {
		s.Sessions.Changed(sessionID)
	}
	return err
}

func (s *CartService) SetTable(sessionID string, tableID uint) error {
	return s.Sessions.With(sessionID, func(sess *Session) error {
		sess.TableID = tableID
		return nil
	})
}

func (s *CartService) SetPaymentMethod(sessionID string, methodID uint) error {
	return s.Sessions.With(sessionID, func(sess *Session) error {
		sess.PaymentMethodID = methodID
		return nil
	})
}
