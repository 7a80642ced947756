package reconcile

import "github.com/teizred/web-speech-api/internal/catalog"

// Key identifies one grid cell. Size is the empty string for products
// tracked without a size.
type Key struct {
	Product string
	Size    string
}

// Record is the slice of a loss row the engine needs. Several records may
// share a Key: one row from dictation plus one from a manual edit is the
// normal case, not an anomaly.
type Record struct {
	ID       string
	Product  string
	Size     string
	Quantity int
}

// MergedCell is the displayed total for a Key. TargetID is the row an
// edit command will touch: the first record seen for the key in fetch
// order. Sibling rows under the same key keep their own quantity.
type MergedCell struct {
	Key      Key
	Quantity int
	TargetID string
}

// Merge folds the day's records into one cell per (product, size) key.
// Quantities are summed, so the output total is independent of record
// order, and the input slice is never modified.
func Merge(records []Record) map[Key]MergedCell {
	cells := make(map[Key]MergedCell, len(records))
	for _, rec := range records {
		key := Key{Product: rec.Product, Size: rec.Size}
		if cell, ok := cells[key]; ok {
			cell.Quantity += rec.Quantity
			cells[key] = cell
		} else {
			cells[key] = MergedCell{Key: key, Quantity: rec.Quantity, TargetID: rec.ID}
		}
	}
	return cells
}

// --------------------------------------------------
// EDIT COMMANDS
// --------------------------------------------------

type Op int

const (
	OpNone Op = iota
	OpCreate
	OpUpdate
)

// Command is the store mutation an edit resolves to. The engine never
// talks to the store itself; it only decides what the store should do.
type Command struct {
	Op       Op
	RecordID string // update target, OpUpdate only
	Product  string
	Size     string
	Quantity int
}

// ApplyDelta turns an increment/decrement on a cell into a command.
// Existing cells are updated on their target row, clamped at zero and
// never deleted; an absent cell is created only for a positive delta.
func ApplyDelta(key Key, cell *MergedCell, delta int) Command {
	if cell != nil {
		quantity := cell.Quantity + delta
		if quantity < 0 {
			quantity = 0
		}
		return Command{
			Op:       OpUpdate,
			RecordID: cell.TargetID,
			Product:  key.Product,
			Size:     key.Size,
			Quantity: quantity,
		}
	}

	if delta <= 0 {
		return Command{Op: OpNone}
	}

	return Command{
		Op:       OpCreate,
		Product:  key.Product,
		Size:     key.Size,
		Quantity: delta,
	}
}

// SetQuantity is the direct-entry variant: the new quantity is used
// verbatim. Negative input is rejected as a no-op.
func SetQuantity(key Key, cell *MergedCell, quantity int) Command {
	if quantity < 0 {
		return Command{Op: OpNone}
	}

	if cell != nil {
		return Command{
			Op:       OpUpdate,
			RecordID: cell.TargetID,
			Product:  key.Product,
			Size:     key.Size,
			Quantity: quantity,
		}
	}

	if quantity == 0 {
		return Command{Op: OpNone}
	}

	return Command{
		Op:       OpCreate,
		Product:  key.Product,
		Size:     key.Size,
		Quantity: quantity,
	}
}

// --------------------------------------------------
// DISPLAY EXPANSION
// --------------------------------------------------

type Cell struct {
	Product  string  `json:"product"`
	Size     *string `json:"size"`
	Quantity int     `json:"quantity"`
	RecordID *string `json:"record_id"`
}

type CategoryGrid struct {
	Category string `json:"category"`
	Cells    []Cell `json:"cells"`
}

// BuildGrid expands the full catalog into cells and fills quantities from
// the merged map. The catalog drives iteration: every (product, size)
// variant is present, quantity 0 when the day has no matching record.
func BuildGrid(cells map[Key]MergedCell) []CategoryGrid {
	var grid []CategoryGrid
	for _, cat := range catalog.Categories() {
		group := CategoryGrid{Category: cat.Label}
		for _, product := range cat.Products {
			for _, size := range catalog.SizesFor(product, cat.Label) {
				cell := Cell{Product: product}
				if size != "" {
					s := size
					cell.Size = &s
				}
				if merged, ok := cells[Key{Product: product, Size: size}]; ok {
					cell.Quantity = merged.Quantity
					id := merged.TargetID
					cell.RecordID = &id
				}
				group.Cells = append(group.Cells, cell)
			}
		}
		grid = append(grid, group)
	}
	return grid
}
