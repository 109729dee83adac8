package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IssuedPayload is an archived, successfully encoded payload
type IssuedPayload struct {
	ID        uuid.UUID
	Payload   Payload
	IBAN      string
	Amount    decimal.Decimal // rounded to 2 decimals
	Reference string          // SCOR if one was given
	CreatedAt time.Time
}

// Validate ensures the record can be archived
func (p *IssuedPayload) Validate() error {
	if p.ID == uuid.Nil {
		return errors.New("issued payload must have an ID")
	}
	if p.Payload == "" {
		return errors.New("issued payload must not be empty")
	}
	if p.IBAN == "" {
		return errors.New("issued payload must reference an IBAN")
	}
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("issued payload amount must be positive")
	}
	return nil
}
