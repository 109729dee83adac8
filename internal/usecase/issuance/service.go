package issuance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/epcqr-backend/internal/domain"
	"github.com/simaogato/epcqr-backend/internal/usecase/payload"
	"github.com/simaogato/epcqr-backend/internal/validator"
)

// IssuanceService encodes transfer requests, renders them and archives the result
type IssuanceService struct {
	Renderer    domain.QRRenderer
	PayloadRepo domain.PayloadRepository // nil disables archiving
}

// NewIssuanceService creates a new IssuanceService instance
func NewIssuanceService(renderer domain.QRRenderer, payloadRepo domain.PayloadRepository) *IssuanceService {
	return &IssuanceService{
		Renderer:    renderer,
		PayloadRepo: payloadRepo,
	}
}

// IssueResult is the outcome of a successful Issue call
type IssueResult struct {
	Record *domain.IssuedPayload
	Image  []byte // nil unless rendering was requested
}

// Issue encodes the request and archives the payload
// If render is true the QR image is produced as well.
// Nothing is archived when encoding or rendering fails.
func (s *IssuanceService) Issue(ctx context.Context, req domain.TransferRequest, render bool) (*IssueResult, error) {
	encoded, err := payload.Encode(req)
	if err != nil {
		return nil, err
	}

	// Encode already validated both fields, this only recovers the normalized values
	amount, err := validator.TransferAmount(req.TransferAmount)
	if err != nil {
		return nil, err
	}
	reference, err := validator.SCOR(req.SCOR)
	if err != nil {
		return nil, err
	}

	var image []byte
	if render {
		image, err = s.Render(ctx, encoded)
		if err != nil {
			return nil, err
		}
	}

	record := &domain.IssuedPayload{
		ID:        uuid.New(),
		Payload:   encoded,
		IBAN:      validator.NormalizeIBAN(req.IBAN),
		Amount:    amount,
		Reference: reference,
		CreatedAt: time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if s.PayloadRepo != nil {
		if err := s.PayloadRepo.Create(ctx, record); err != nil {
			return nil, err
		}
	}

	return &IssueResult{Record: record, Image: image}, nil
}

// Render turns an already encoded payload into a QR image
func (s *IssuanceService) Render(ctx context.Context, encoded domain.Payload) ([]byte, error) {
	if s.Renderer == nil {
		return nil, errors.New("no QR renderer configured")
	}
	return s.Renderer.Render(ctx, encoded)
}

// Get retrieves an archived payload
func (s *IssuanceService) Get(ctx context.Context, id uuid.UUID) (*domain.IssuedPayload, error) {
	if s.PayloadRepo == nil {
		return nil, domain.ErrPayloadNotFound
	}
	return s.PayloadRepo.GetByID(ctx, id)
}

// List retrieves archived payloads, newest first
func (s *IssuanceService) List(ctx context.Context, limit, offset int) ([]*domain.IssuedPayload, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	if offset < 0 {
		return nil, errors.New("offset must be non-negative")
	}
	if s.PayloadRepo == nil {
		return []*domain.IssuedPayload{}, nil
	}
	return s.PayloadRepo.List(ctx, limit, offset)
}
