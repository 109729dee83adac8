package qrcode

import (
	"context"
	"errors"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"

	"github.com/simaogato/epcqr-backend/internal/domain"
)

// DefaultSize is the PNG edge length in pixels used when none is configured
const DefaultSize = 256

// renderer implements domain.QRRenderer at error-correction level M
type renderer struct {
	size int
}

// NewRenderer creates a PNG renderer; a non-positive size falls back to DefaultSize
func NewRenderer(size int) domain.QRRenderer {
	if size <= 0 {
		size = DefaultSize
	}
	return &renderer{size: size}
}

// Render encodes the payload verbatim into a PNG image
func (r *renderer) Render(ctx context.Context, payload domain.Payload) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if payload == "" {
		return nil, errors.New("payload must not be empty")
	}

	png, err := goqrcode.Encode(string(payload), goqrcode.Medium, r.size)
	if err != nil {
		return nil, fmt.Errorf("could not generate a QR code: %w", err)
	}
	return png, nil
}
