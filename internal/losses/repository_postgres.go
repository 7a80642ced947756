package losses

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST DAY (NEWEST FIRST)
// --------------------------------------------------

func (r *PostgresRepository) ListDay(
	ctx context.Context,
	from, to time.Time,
) ([]LossRecord, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, product, quantity, size, created_at
		FROM losses
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []LossRecord{}

	for rows.Next() {
		var rec LossRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Product,
			&rec.Quantity,
			&rec.Size,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// --------------------------------------------------
// SINGLE INSERT (MANUAL GRID ENTRY)
// --------------------------------------------------

func (r *PostgresRepository) Insert(
	ctx context.Context,
	rec NewRecord,
) (*LossRecord, error) {

	inserted := LossRecord{
		ID:       uuid.New(),
		Product:  rec.Product,
		Quantity: rec.Quantity,
		Size:     rec.Size,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO losses (id, product, quantity, size)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, inserted.ID, inserted.Product, inserted.Quantity, inserted.Size).
		Scan(&inserted.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &inserted, nil
}

// --------------------------------------------------
// BATCH INSERT (TRANSCRIPT, ALL-OR-NOTHING)
// --------------------------------------------------
// One transaction for the whole batch: a failure mid-loop must not leave
// half a transcript in the ledger.

func (r *PostgresRepository) InsertBatch(
	ctx context.Context,
	recs []NewRecord,
) ([]LossRecord, error) {

	if len(recs) == 0 {
		return []LossRecord{}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	inserted := make([]LossRecord, 0, len(recs))

	for _, rec := range recs {
		row := LossRecord{
			ID:       uuid.New(),
			Product:  rec.Product,
			Quantity: rec.Quantity,
			Size:     rec.Size,
		}

		err := tx.QueryRow(ctx, `
			INSERT INTO losses (id, product, quantity, size)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at
		`, row.ID, row.Product, row.Quantity, row.Size).
			Scan(&row.CreatedAt)
		if err != nil {
			return nil, err
		}

		inserted = append(inserted, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return inserted, nil
}

// --------------------------------------------------
// UPDATE QUANTITY (DAY-SCOPED)
// --------------------------------------------------

func (r *PostgresRepository) UpdateQuantity(
	ctx context.Context,
	id uuid.UUID,
	quantity int,
	from, to time.Time,
) (*LossRecord, error) {

	var rec LossRecord

	err := r.db.QueryRow(ctx, `
		UPDATE losses
		SET quantity = $1
		WHERE id = $2
		  AND created_at >= $3 AND created_at < $4
		RETURNING id, product, quantity, size, created_at
	`, quantity, id, from, to).Scan(
		&rec.ID,
		&rec.Product,
		&rec.Quantity,
		&rec.Size,
		&rec.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &rec, nil
}

// --------------------------------------------------
// DELETE DAY (FULL RESET)
// --------------------------------------------------

func (r *PostgresRepository) DeleteDay(
	ctx context.Context,
	from, to time.Time,
) (int64, error) {

	cmd, err := r.db.Exec(ctx, `
		DELETE FROM losses
		WHERE created_at >= $1 AND created_at < $2
	`, from, to)
	if err != nil {
		return 0, err
	}

	return cmd.RowsAffected(), nil
}
