package losses

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines all database operations for loss records. Day
// boundaries are always passed in explicitly: the store never decides
// what "today" means.
type Repository interface {

	// Records within [from, to), newest first.
	ListDay(ctx context.Context, from, to time.Time) ([]LossRecord, error)

	// One direct insert (manual grid entry).
	Insert(ctx context.Context, rec NewRecord) (*LossRecord, error)

	// All-or-nothing insert of a validated transcript batch.
	InsertBatch(ctx context.Context, recs []NewRecord) ([]LossRecord, error)

	// Overwrite one record's quantity; the record must sit in [from, to).
	UpdateQuantity(
		ctx context.Context,
		id uuid.UUID,
		quantity int,
		from, to time.Time,
	) (*LossRecord, error)

	// Full day reset. Returns how many rows went away.
	DeleteDay(ctx context.Context, from, to time.Time) (int64, error)
}
