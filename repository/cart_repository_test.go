package repository

import (
	"reflect"
	"testing"

	"backend/entity"
)

func item(price int64) entity.MenuItem {
	it := entity.MenuItem{Name: "Test Item", Price: price}
	it.ID = 1
	return it
}

func TestAddLineAssignsMonotonicIDs(t *testing.T) {
	cart := NewCartRepository()

	a := cart.AddLine(item(4500), entity.SourceMenu, 1, "", nil)
	b := cart.AddLine(item(4500), entity.SourceMenu, 1, "", nil)
	if a != 1 || b != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a, b)
	}

	cart.RemoveLine(b)
	c := cart.AddLine(item(4500), entity.SourceMenu, 1, "", nil)
	if c != 3 {
		t.Fatalf("id after removal = %d, want 3 (ids are never reused)", c)
	}
}

func TestAddLineClampsQuantity(t *testing.T) {
	cart := NewCartRepository()

	id := cart.AddLine(item(4500), entity.SourceMenu, 0, "", nil)
	l, _ := cart.Find(id)
	if l.Qty != 1 {
		t.Fatalf("qty = %d, want 1", l.Qty)
	}
}

func TestAdjustQtyUnitStepsStopAtOneUntilRemoval(t *testing.T) {
	cart := NewCartRepository()
	id := cart.AddLine(item(4500), entity.SourceMenu, 3, "", nil)

	cart.AdjustQty(id, -1)
	cart.AdjustQty(id, -1)
	l, ok := cart.Find(id)
	if !ok || l.Qty != 1 {
		t.Fatalf("qty = %v, want 1", l)
	}

	// one more unit step takes the computed quantity to 0 and drops the line
	cart.AdjustQty(id, -1)
	if _, ok := cart.Find(id); ok {
		t.Fatal("line should be removed once quantity goes non-positive")
	}
}

func TestAdjustQtyLargeNegativeDeltaRemoves(t *testing.T) {
	cart := NewCartRepository()
	id := cart.AddLine(item(4500), entity.SourceMenu, 5, "", nil)

	cart.AdjustQty(id, -10)
	if _, ok := cart.Find(id); ok {
		t.Fatal("line should be removed")
	}
	if cart.Len() != 0 {
		t.Fatalf("len = %d, want 0", cart.Len())
	}
}

func TestAdjustQtyUnknownLineIsNoop(t *testing.T) {
	cart := NewCartRepository()
	cart.AddLine(item(4500), entity.SourceMenu, 2, "", nil)

	cart.AdjustQty(42, -1)
	if cart.Len() != 1 {
		t.Fatalf("len = %d, want 1", cart.Len())
	}
}

func TestUpdateLineOverwritesInPlace(t *testing.T) {
	cart := NewCartRepository()
	id := cart.AddLine(item(4500), entity.SourceCombo, 1, "old", entity.SelectionSet{10: {101}})

	cart.UpdateLine(id, 3, "new", entity.SelectionSet{10: {102}})
	l, _ := cart.Find(id)
	if l.Qty != 3 || l.Note != "new" {
		t.Fatalf("line = %+v", l)
	}
	if !reflect.DeepEqual(l.Selections, entity.SelectionSet{10: {102}}) {
		t.Fatalf("selections = %v", l.Selections)
	}
	if l.Source != entity.SourceCombo {
		t.Fatalf("source changed to %q", l.Source)
	}
}

func TestUpdateLineAbsentIsNoop(t *testing.T) {
	cart := NewCartRepository()
	cart.UpdateLine(7, 3, "ghost", nil)
	if cart.Len() != 0 {
		t.Fatalf("len = %d, want 0", cart.Len())
	}
}

func TestAddLineCopiesSelections(t *testing.T) {
	cart := NewCartRepository()
	sel := entity.SelectionSet{10: {101}}
	id := cart.AddLine(item(4500), entity.SourceMenu, 1, "", sel)

	sel[10][0] = 999 // caller keeps mutating its own copy
	l, _ := cart.Find(id)
	if l.Selections[10][0] != 101 {
		t.Fatalf("committed selections aliased the caller's slice: %v", l.Selections)
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	cart := NewCartRepository()
	a := cart.AddLine(item(1000), entity.SourceMenu, 1, "", nil)
	b := cart.AddLine(item(2000), entity.SourceMenu, 1, "", nil)
	c := cart.AddLine(item(3000), entity.SourceMenu, 1, "", nil)

	cart.RemoveLine(b)
	lines := cart.Lines()
	if len(lines) != 2 || lines[0].ID != a || lines[1].ID != c {
		t.Fatalf("order = %v", lines)
	}
}
