package losses

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// LossRecord is one persisted loss event. A (product, size) pair can own
// several records on the same day — one from dictation plus one from a
// manual grid edit is normal. Size is nil for single-format products.
type LossRecord struct {
	ID        uuid.UUID `json:"id"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Size      *string   `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord is a validated row waiting to be inserted.
type NewRecord struct {
	Product  string
	Quantity int
	Size     *string
}

var (
	ErrNotFound        = errors.New("loss record not found for today")
	ErrUnknownProduct  = errors.New("product is not in the catalog")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidSize     = errors.New("size is not valid for this product")
	ErrEmptyTranscript = errors.New("transcript is empty")
)
