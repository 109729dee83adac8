package domain

import (
	"context"

	"github.com/google/uuid"
)

// PayloadRepository defines the persistence operations for issued payloads
type PayloadRepository interface {
	// Create archives an issued payload
	Create(ctx context.Context, payload *IssuedPayload) error

	// GetByID retrieves an issued payload, ErrPayloadNotFound if it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*IssuedPayload, error)

	// List retrieves issued payloads, newest first
	List(ctx context.Context, limit, offset int) ([]*IssuedPayload, error)
}

// QRRenderer turns a payload into a scannable image.
// Implementations must encode at error-correction level M and must not
// reinterpret the payload content.
type QRRenderer interface {
	Render(ctx context.Context, payload Payload) ([]byte, error)
}
