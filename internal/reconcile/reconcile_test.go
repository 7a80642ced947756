package reconcile

import (
	"testing"
)

func TestMergeSumsQuantitiesPerKey(t *testing.T) {
	records := []Record{
		{ID: "a", Product: "Big Mac", Size: "", Quantity: 2},
		{ID: "b", Product: "Coca-Cola", Size: "Grand", Quantity: 3},
		{ID: "c", Product: "Big Mac", Size: "", Quantity: 5},
		{ID: "d", Product: "Coca-Cola", Size: "Moyen", Quantity: 1},
	}

	cells := Merge(records)

	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if got := cells[Key{"Big Mac", ""}].Quantity; got != 7 {
		t.Errorf("Big Mac quantity = %d, want 7", got)
	}
	if got := cells[Key{"Coca-Cola", "Grand"}].Quantity; got != 3 {
		t.Errorf("Coca-Cola Grand quantity = %d, want 3", got)
	}
	if got := cells[Key{"Coca-Cola", "Moyen"}].Quantity; got != 1 {
		t.Errorf("Coca-Cola Moyen quantity = %d, want 1", got)
	}
}

func TestMergeQuantityIsOrderIndependent(t *testing.T) {
	forward := []Record{
		{ID: "a", Product: "Frites", Size: "Grand", Quantity: 1},
		{ID: "b", Product: "Frites", Size: "Grand", Quantity: 4},
		{ID: "c", Product: "Frites", Size: "Petit", Quantity: 2},
	}
	reversed := []Record{forward[2], forward[1], forward[0]}

	a := Merge(forward)
	b := Merge(reversed)

	for key, cell := range a {
		if b[key].Quantity != cell.Quantity {
			t.Errorf("key %v: %d vs %d across orders", key, cell.Quantity, b[key].Quantity)
		}
	}
}

func TestMergeKeepsFirstSeenTarget(t *testing.T) {
	records := []Record{
		{ID: "newest", Product: "Nuggets", Size: "", Quantity: 4},
		{ID: "older", Product: "Nuggets", Size: "", Quantity: 2},
	}

	cells := Merge(records)
	cell := cells[Key{"Nuggets", ""}]

	if cell.TargetID != "newest" {
		t.Errorf("target = %q, want first-seen row %q", cell.TargetID, "newest")
	}
	if cell.Quantity != 6 {
		t.Errorf("quantity = %d, want 6", cell.Quantity)
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	records := []Record{
		{ID: "a", Product: "Big Mac", Size: "", Quantity: 2},
		{ID: "b", Product: "Big Mac", Size: "", Quantity: 3},
	}

	first := Merge(records)
	second := Merge(records)

	if records[0].Quantity != 2 || records[1].Quantity != 3 {
		t.Fatal("merge mutated its input")
	}
	if first[Key{"Big Mac", ""}].Quantity != second[Key{"Big Mac", ""}].Quantity {
		t.Fatal("merge is not idempotent over the same input")
	}
}

func TestApplyDeltaUpdateClampsAtZero(t *testing.T) {
	key := Key{"Big Mac", ""}
	cell := &MergedCell{Key: key, Quantity: 2, TargetID: "rec-1"}

	cmd := ApplyDelta(key, cell, -3)

	if cmd.Op != OpUpdate {
		t.Fatalf("expected update, got op %d", cmd.Op)
	}
	if cmd.Quantity != 0 {
		t.Errorf("quantity = %d, want clamp at 0", cmd.Quantity)
	}
	if cmd.RecordID != "rec-1" {
		t.Errorf("target = %q, want rec-1", cmd.RecordID)
	}
}

func TestApplyDeltaNeverGoesNegative(t *testing.T) {
	key := Key{"Frites", "Grand"}
	quantity := 0
	deltas := []int{3, -1, -5, 2, -2, -2, 10, -30}

	for _, d := range deltas {
		var cell *MergedCell
		if quantity > 0 || d < 0 {
			cell = &MergedCell{Key: key, Quantity: quantity, TargetID: "rec-1"}
		}
		cmd := ApplyDelta(key, cell, d)
		switch cmd.Op {
		case OpCreate, OpUpdate:
			quantity = cmd.Quantity
		}
		if quantity < 0 {
			t.Fatalf("quantity went negative after delta %d", d)
		}
	}
}

func TestApplyDeltaCreatesOnAbsentCell(t *testing.T) {
	key := Key{"Coca-Cola", "Grand"}

	cmd := ApplyDelta(key, nil, 2)
	if cmd.Op != OpCreate || cmd.Quantity != 2 {
		t.Fatalf("expected create with quantity 2, got %+v", cmd)
	}

	if cmd := ApplyDelta(key, nil, 0); cmd.Op != OpNone {
		t.Errorf("zero delta on absent cell should be a no-op, got %+v", cmd)
	}
	if cmd := ApplyDelta(key, nil, -1); cmd.Op != OpNone {
		t.Errorf("negative delta on absent cell should be a no-op, got %+v", cmd)
	}
}

func TestSetQuantity(t *testing.T) {
	key := Key{"Cappuccino", "Moyen"}
	cell := &MergedCell{Key: key, Quantity: 4, TargetID: "rec-9"}

	if cmd := SetQuantity(key, cell, 0); cmd.Op != OpUpdate || cmd.Quantity != 0 {
		t.Errorf("setting 0 should update the row to 0, got %+v", cmd)
	}
	if cmd := SetQuantity(key, cell, -1); cmd.Op != OpNone {
		t.Errorf("negative input should be rejected, got %+v", cmd)
	}
	if cmd := SetQuantity(key, nil, 5); cmd.Op != OpCreate || cmd.Quantity != 5 {
		t.Errorf("absent cell with positive quantity should create, got %+v", cmd)
	}
	if cmd := SetQuantity(key, nil, 0); cmd.Op != OpNone {
		t.Errorf("absent cell with 0 should be a no-op, got %+v", cmd)
	}
}

// An edit targets one row even when the cell aggregates several; the
// untouched siblings keep their quantity, so the next merge shows
// (sum of siblings) + new target quantity.
func TestEditOnAggregatedCellStrandsSiblingQuantity(t *testing.T) {
	records := []Record{
		{ID: "voice", Product: "Big Mac", Size: "", Quantity: 2},
		{ID: "manual", Product: "Big Mac", Size: "", Quantity: 3},
	}
	key := Key{"Big Mac", ""}

	cells := Merge(records)
	cell := cells[key]

	cmd := ApplyDelta(key, &cell, 1)
	if cmd.Op != OpUpdate || cmd.RecordID != "voice" {
		t.Fatalf("expected update on first-seen row, got %+v", cmd)
	}

	// Apply the command to the backing rows and re-merge.
	for i := range records {
		if records[i].ID == cmd.RecordID {
			records[i].Quantity = cmd.Quantity
		}
	}
	after := Merge(records)

	// The target row took the merged total plus the delta (5+1=6) while
	// the sibling keeps its 3: displayed total is 9, not the naive 6.
	if got := after[key].Quantity; got != 9 {
		t.Errorf("total after edit = %d, want 9 (6 on target + 3 stranded)", got)
	}
}

func TestApplyDeltaRoundTrip(t *testing.T) {
	key := Key{"Big Mac", ""}
	var records []Record

	// Day starts empty: manual create of 2.
	cmd := ApplyDelta(key, nil, 2)
	if cmd.Op != OpCreate {
		t.Fatalf("expected create, got %+v", cmd)
	}
	records = append(records, Record{ID: "rec-1", Product: cmd.Product, Size: cmd.Size, Quantity: cmd.Quantity})

	cells := Merge(records)
	if cells[key].Quantity != 2 {
		t.Fatalf("merge after create = %d, want 2", cells[key].Quantity)
	}

	// Decrement by 3: clamps to 0, the row stays.
	cell := cells[key]
	cmd = ApplyDelta(key, &cell, -3)
	if cmd.Op != OpUpdate || cmd.Quantity != 0 {
		t.Fatalf("expected update to 0, got %+v", cmd)
	}
	records[0].Quantity = cmd.Quantity

	cells = Merge(records)
	got, ok := cells[key]
	if !ok {
		t.Fatal("zero-quantity cell must stay present, not revert to absent")
	}
	if got.Quantity != 0 {
		t.Errorf("merge after clamp = %d, want 0", got.Quantity)
	}
}

func TestBuildGridCoversFullCatalog(t *testing.T) {
	size := "Grand"
	cells := Merge([]Record{
		{ID: "a", Product: "Coca-Cola", Size: size, Quantity: 3},
	})

	grid := BuildGrid(cells)

	if len(grid) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(grid))
	}

	var found bool
	var empty int
	for _, group := range grid {
		for _, cell := range group.Cells {
			if cell.Product == "Coca-Cola" && cell.Size != nil && *cell.Size == size {
				found = true
				if cell.Quantity != 3 {
					t.Errorf("Coca-Cola Grand quantity = %d, want 3", cell.Quantity)
				}
				if cell.RecordID == nil || *cell.RecordID != "a" {
					t.Error("expected record id on the merged cell")
				}
			}
			if cell.Quantity == 0 {
				empty++
			}
		}
	}

	if !found {
		t.Fatal("Coca-Cola Grand cell missing from grid")
	}
	if empty == 0 {
		t.Error("catalog cells without history should still render at 0")
	}

	// Frites expands to three cells regardless of history.
	var fritesCells int
	for _, group := range grid {
		for _, cell := range group.Cells {
			if cell.Product == "Frites" {
				fritesCells++
			}
		}
	}
	if fritesCells != 3 {
		t.Errorf("Frites cells = %d, want 3", fritesCells)
	}
}
