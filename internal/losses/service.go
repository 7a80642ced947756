package losses

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teizred/web-speech-api/internal/catalog"
	"github.com/teizred/web-speech-api/internal/llm"
	"github.com/teizred/web-speech-api/internal/reconcile"
)

type Service struct {
	repo   Repository
	interp llm.Client
	loc    *time.Location
	now    func() time.Time
}

// NewService wires the ledger. loc fixes what "today" means — the
// calendar day filter is computed here, never by the database server.
func NewService(repo Repository, interp llm.Client, loc *time.Location) *Service {
	return &Service{
		repo:   repo,
		interp: interp,
		loc:    loc,
		now:    time.Now,
	}
}

// dayRange returns [midnight, next midnight) in the store's timezone.
func (s *Service) dayRange() (time.Time, time.Time) {
	now := s.now().In(s.loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return from, from.AddDate(0, 0, 1)
}

// --------------------------------------------------
// READS
// --------------------------------------------------

func (s *Service) Today(ctx context.Context) ([]LossRecord, error) {
	from, to := s.dayRange()
	return s.repo.ListDay(ctx, from, to)
}

// Grid returns the merged catalog view: every (product, size) variant in
// menu order with the day's summed quantity, 0 when nothing happened.
func (s *Service) Grid(ctx context.Context) ([]reconcile.CategoryGrid, error) {
	records, err := s.Today(ctx)
	if err != nil {
		return nil, err
	}

	return reconcile.BuildGrid(reconcile.Merge(toEngineRecords(records))), nil
}

func toEngineRecords(records []LossRecord) []reconcile.Record {
	out := make([]reconcile.Record, 0, len(records))
	for _, rec := range records {
		size := ""
		if rec.Size != nil {
			size = *rec.Size
		}
		out = append(out, reconcile.Record{
			ID:       rec.ID.String(),
			Product:  rec.Product,
			Size:     size,
			Quantity: rec.Quantity,
		})
	}
	return out
}

// --------------------------------------------------
// TRANSCRIPT PIPELINE
// --------------------------------------------------

// RecordTranscript runs the interpreter on one dictated utterance and
// persists whatever survives validation, in a single transaction. An
// interpreter failure is not an error to the caller: it returns zero
// rows, which the UI reads as "nothing understood, retry". Items that
// fail validation are dropped one by one without sinking the batch.
func (s *Service) RecordTranscript(
	ctx context.Context,
	transcript string,
) ([]LossRecord, error) {

	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	triples, err := llm.Interpret(ctx, s.interp, transcript)
	if err != nil {
		log.Println("interpreter failed, treating as zero results:", err)
		return []LossRecord{}, nil
	}

	validated := make([]NewRecord, 0, len(triples))
	for _, t := range triples {
		rec, ok := s.validateTriple(t)
		if !ok {
			log.Printf("dropping interpreter item %q (qty %v)", t.Product, t.Quantity)
			continue
		}
		validated = append(validated, rec)
	}

	return s.repo.InsertBatch(ctx, validated)
}

// validateTriple enforces the interpreter output contract: exact catalog
// product match, positive integer quantity, size coerced to the
// product's policy (Grand default for sizeable drinks and McCafé when
// the model gave none or an invalid one).
func (s *Service) validateTriple(t llm.Triple) (NewRecord, bool) {
	product, ok := catalog.FindProduct(t.Product)
	if !ok {
		return NewRecord{}, false
	}

	quantity := int(math.Round(t.Quantity))
	if quantity < 1 {
		return NewRecord{}, false
	}

	size := ""
	if t.Size != nil {
		size = *t.Size
	}
	if !catalog.ValidSize(product.Name, product.Category, size) {
		size = catalog.DefaultSize(product.Name, product.Category)
	}

	return NewRecord{
		Product:  product.Name,
		Quantity: quantity,
		Size:     sizePtr(size),
	}, true
}

func sizePtr(size string) *string {
	if size == "" {
		return nil
	}
	return &size
}

// --------------------------------------------------
// MANUAL EDITS
// --------------------------------------------------

// CreateManual is the grid's first increment on a previously absent
// (product, size) cell.
func (s *Service) CreateManual(
	ctx context.Context,
	productName string,
	quantity int,
	size *string,
) (*LossRecord, error) {

	product, ok := catalog.FindProduct(productName)
	if !ok {
		return nil, ErrUnknownProduct
	}

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	sizeValue := ""
	if size != nil {
		sizeValue = *size
	}
	if !catalog.ValidSize(product.Name, product.Category, sizeValue) {
		return nil, ErrInvalidSize
	}

	return s.repo.Insert(ctx, NewRecord{
		Product:  product.Name,
		Quantity: quantity,
		Size:     sizePtr(sizeValue),
	})
}

// AdjustQuantity overwrites one record's quantity. Zero is a valid,
// retained state; rows are never deleted by an edit.
func (s *Service) AdjustQuantity(
	ctx context.Context,
	id uuid.UUID,
	quantity int,
) (*LossRecord, error) {

	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	from, to := s.dayRange()
	return s.repo.UpdateQuantity(ctx, id, quantity, from, to)
}

// ResetDay wipes today's ledger. The only path back to an absent cell.
func (s *Service) ResetDay(ctx context.Context) (int64, error) {
	from, to := s.dayRange()
	return s.repo.DeleteDay(ctx, from, to)
}
