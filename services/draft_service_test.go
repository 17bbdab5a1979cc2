package services

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"backend/entity"
)

func newTestServices() (*SessionManager, *CartService, *DraftService) {
	catalog := testCatalog()
	sessions := NewSessionManager()
	selection := NewSelectionService(catalog)
	pricing := NewPricingService(catalog)
	carts := NewCartService(sessions, catalog, pricing)
	drafts := NewDraftService(sessions, catalog, selection, pricing)
	return sessions, carts, drafts
}

func TestBeginCommitNewItem(t *testing.T) {
	sessions, carts, drafts := newTestServices()
	sid := sessions.Create().ID

	if err := drafts.Begin(sid, 1); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := drafts.SetQty(sid, 2); err != nil {
		t.Fatalf("set qty: %v", err)
	}
	if err := drafts.Commit(sid); err != nil {
		t.Fatalf("commit: %v", err)
	}

	view, _ := carts.View(sid)
	if len(view.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(view.Lines))
	}
	l := view.Lines[0]
	if l.Source != entity.SourceMenu || l.Qty != 2 {
		t.Fatalf("line = %+v", l)
	}
	// default protein is Grilled (+0): 45.00 * 2
	if l.Subtotal != 9000 {
		t.Fatalf("subtotal = %d, want 9000", l.Subtotal)
	}
	if view.HasDraft {
		t.Fatal("draft should be cleared after commit")
	}
}

func TestEditSwitchesOptionAndReprices(t *testing.T) {
	sessions, carts, drafts := newTestServices()
	sid := sessions.Create().ID

	drafts.Begin(sid, 1)
	drafts.SetQty(sid, 2)
	drafts.Commit(sid)

	view, _ := carts.View(sid)
	lineID := view.Lines[0].ID

	if err := drafts.BeginEdit(sid, lineID); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	drafts.Toggle(sid, 10, 102) // switch to Crispy +5.00
	if err := drafts.Commit(sid); err != nil {
		t.Fatalf("commit edit: %v", err)
	}

	view, _ = carts.View(sid)
	if len(view.Lines) != 1 {
		t.Fatalf("edit must overwrite, not append: %d lines", len(view.Lines))
	}
	if view.Lines[0].Subtotal != 10000 {
		t.Fatalf("subtotal = %d, want 10000", view.Lines[0].Subtotal)
	}
}

func TestCommitInvalidDraftRefused(t *testing.T) {
	sessions, carts, drafts := newTestServices()
	sid := sessions.Create().ID

	// item 4's required Size group has no options, so it can never validate
	drafts.Begin(sid, 4)
	err := drafts.Commit(sid)
	if !errors.Is(err, ErrDraftInvalid) {
		t.Fatalf("err = %v, want ErrDraftInvalid", err)
	}

	view, _ := carts.View(sid)
	if len(view.Lines) != 0 {
		t.Fatalf("refused commit must not touch the cart: %d lines", len(view.Lines))
	}
	if !view.HasDraft {
		t.Fatal("refused commit must keep the draft for correction")
	}
}

func TestBeginEditDeepCopiesSelections(t *testing.T) {
	sessions, carts, drafts := newTestServices()
	sid := sessions.Create().ID

	drafts.Begin(sid, 3)
	drafts.Commit(sid)

	view, _ := carts.View(sid)
	lineID := view.Lines[0].ID
	before := view.Lines[0].Selections.Clone()

	drafts.BeginEdit(sid, lineID)
	drafts.Toggle(sid, 20, 201)
	drafts.Toggle(sid, 10, 102)
	drafts.Cancel(sid)

	view, _ = carts.View(sid)
	if !reflect.DeepEqual(view.Lines[0].Selections, before) {
		t.Fatalf("cancelled draft leaked into committed line: %v", view.Lines[0].Selections)
	}
}

func TestCancelLeavesCartUntouched(t *testing.T) {
	sessions, carts, drafts := newTestServices()
	sid := sessions.Create().ID

	drafts.Begin(sid, 1)
	drafts.Commit(sid)

	drafts.Begin(sid, 2)
	if err := drafts.Cancel(sid); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	view, _ := carts.View(sid)
	if len(view.Lines) != 1 || view.HasDraft {
		t.Fatalf("view = %+v", view)
	}
}

func TestToggleWithoutDraft(t *testing.T) {
	sessions, _, drafts := newTestServices()
	sid := sessions.Create().ID

	if err := drafts.Toggle(sid, 10, 101); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("err = %v, want ErrNoDraft", err)
	}
}

func TestDraftQtyClampsToOne(t *testing.T) {
	sessions, _, drafts := newTestServices()
	sid := sessions.Create().ID

	drafts.Begin(sid, 1)
	drafts.SetQty(sid, -3)
	view, _ := drafts.View(sid)
	if view.Qty != 1 {
		t.Fatalf("qty = %d, want 1", view.Qty)
	}
}

func TestDraftPreviewReplacesEditedLine(t *testing.T) {
	sessions, carts, drafts := newTestServices()
	sid := sessions.Create().ID

	drafts.Begin(sid, 1) // 45.00, default Grilled
	drafts.SetQty(sid, 2)
	drafts.Commit(sid)

	view, _ := carts.View(sid)
	lineID := view.Lines[0].ID

	drafts.BeginEdit(sid, lineID)
	drafts.SetQty(sid, 3)

	preview, err := drafts.View(sid)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if preview.Subtotal != 13500 {
		t.Fatalf("draft subtotal = %d, want 13500", preview.Subtotal)
	}
	// the preview bill replaces the edited line rather than double counting it
	if preview.Preview.Subtotal != 13500 {
		t.Fatalf("preview subtotal = %d, want 13500", preview.Preview.Subtotal)
	}

	// committed line is still qty 2 until the edit is committed
	view, _ = carts.View(sid)
	if view.Lines[0].Qty != 2 {
		t.Fatalf("committed qty = %d, want 2", view.Lines[0].Qty)
	}
}

func TestAddComboQuickAdd(t *testing.T) {
	sessions, carts, _ := newTestServices()
	sid := sessions.Create().ID

	lineID, err := carts.AddCombo(sid, 5)
	if err != nil {
		t.Fatalf("add combo: %v", err)
	}

	view, _ := carts.View(sid)
	if len(view.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(view.Lines))
	}
	l := view.Lines[0]
	if l.ID != lineID || l.Source != entity.SourceCombo || l.Qty != 1 {
		t.Fatalf("line = %+v", l)
	}
	if !strings.Contains(l.Note, "Grill Bowl") || !strings.Contains(l.Note, "Iced Tea") {
		t.Fatalf("note = %q, want both constituent names", l.Note)
	}
	if len(l.Selections) != 0 {
		t.Fatalf("selections = %v, want empty", l.Selections)
	}
	if l.Subtotal != 8000 {
		t.Fatalf("subtotal = %d, want 8000 (flat bundle price)", l.Subtotal)
	}
	if !entity.IsComboMenuItemID(l.Item.ID) {
		t.Fatalf("item id %d should mark the line as combo-derived", l.Item.ID)
	}
}

func TestAddComboUnknown(t *testing.T) {
	sessions, carts, _ := newTestServices()
	sid := sessions.Create().ID

	if _, err := carts.AddCombo(sid, 77); !errors.Is(err, ErrComboNotFound) {
		t.Fatalf("err = %v, want ErrComboNotFound", err)
	}
}

func TestSessionNotFound(t *testing.T) {
	_, carts, drafts := newTestServices()

	if err := drafts.Begin("nope", 1); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	if _, err := carts.Totals("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
