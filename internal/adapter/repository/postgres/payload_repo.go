package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/epcqr-backend/internal/domain"
)

// payloadRepository implements domain.PayloadRepository
type payloadRepository struct {
	db *DB
}

// NewPayloadRepository creates a new issued payload repository
func NewPayloadRepository(db *DB) domain.PayloadRepository {
	return &payloadRepository{db: db}
}

// Create archives an issued payload
func (r *payloadRepository) Create(ctx context.Context, payload *domain.IssuedPayload) error {
	query := `
		INSERT INTO issued_payloads (id, payload, iban, amount, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		payload.ID,
		string(payload.Payload),
		payload.IBAN,
		payload.Amount.StringFixed(2),
		payload.Reference,
		payload.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create issued payload: %w", err)
	}

	return nil
}

// GetByID retrieves an issued payload by its ID
func (r *payloadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.IssuedPayload, error) {
	query := `
		SELECT id, payload, iban, amount, reference, created_at
		FROM issued_payloads
		WHERE id = $1
	`

	record, err := scanPayload(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("issued payload %s: %w", id, domain.ErrPayloadNotFound)
		}
		return nil, fmt.Errorf("failed to get issued payload by ID: %w", err)
	}

	return record, nil
}

// List retrieves issued payloads, newest first
func (r *payloadRepository) List(ctx context.Context, limit, offset int) ([]*domain.IssuedPayload, error) {
	query := `
		SELECT id, payload, iban, amount, reference, created_at
		FROM issued_payloads
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query issued payloads: %w", err)
	}
	defer rows.Close()

	records := []*domain.IssuedPayload{}
	for rows.Next() {
		record, err := scanPayload(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan issued payload: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issued payloads: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayload(row rowScanner) (*domain.IssuedPayload, error) {
	var record domain.IssuedPayload
	var payload string
	var amountStr string

	if err := row.Scan(
		&record.ID,
		&payload,
		&record.IBAN,
		&amountStr,
		&record.Reference,
		&record.CreatedAt,
	); err != nil {
		return nil, err
	}

	// Parse amount (DECIMAL)
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	record.Payload = domain.Payload(payload)
	record.Amount = amount
	record.CreatedAt = record.CreatedAt.UTC()

	return &record, nil
}
