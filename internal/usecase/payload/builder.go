package payload

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simaogato/epcqr-backend/internal/domain"
	"github.com/simaogato/epcqr-backend/internal/validator"
)

// ErrFinalized is returned when Build is called on a builder that was already consumed
var ErrFinalized = errors.New("payload builder already finalized")

// Builder accumulates the fields of one transfer and is consumed by Build.
// Setters trim their input; the last write to a field wins. After Build
// every setter is a no-op and further Build calls return ErrFinalized.
// A Builder must not be shared between goroutines.
type Builder struct {
	req       domain.TransferRequest
	amountErr error // parse error of the last amount write, if it failed
	finalized bool
}

// NewBuilder returns an empty builder carrying the protocol defaults
func NewBuilder() *Builder {
	return &Builder{req: domain.NewTransferRequest()}
}

func (b *Builder) set(fn func(req *domain.TransferRequest)) *Builder {
	if !b.finalized {
		fn(&b.req)
	}
	return b
}

// WithLineFeed sets the row separator for the whole payload
func (b *Builder) WithLineFeed(lf domain.LineFeed) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.LineFeed = lf })
}

// WithVersion sets the protocol revision; 001 makes the BIC mandatory
func (b *Builder) WithVersion(v domain.Version) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.Version = v })
}

// WithCharacterEncoding sets the charset digit, 1-8
func (b *Builder) WithCharacterEncoding(e domain.CharacterEncoding) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.CharacterEncoding = e })
}

// WithExtendedCharset allows German umlauts in text fields
func (b *Builder) WithExtendedCharset(allow bool) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.AllowExtendedCharset = allow })
}

// WithStrictIBAN additionally requires valid IBAN check digits
func (b *Builder) WithStrictIBAN(strict bool) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.StrictIBAN = strict })
}

func (b *Builder) WithBIC(value string) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.BIC = strings.TrimSpace(value) })
}

// WithIssuer sets the name of the beneficiary
func (b *Builder) WithIssuer(value string) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.Issuer = strings.TrimSpace(value) })
}

func (b *Builder) WithIBAN(value string) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.IBAN = validator.NormalizeIBAN(value) })
}

// WithTransferAmount sets the amount in euro
func (b *Builder) WithTransferAmount(amount decimal.Decimal) *Builder {
	return b.set(func(req *domain.TransferRequest) {
		req.TransferAmount = decimal.NewNullDecimal(amount)
		b.amountErr = nil
	})
}

// WithTransferAmountString parses "123.45" or "123,45".
// A parse failure leaves the amount unset; Build reports it in place of
// the missing amount unless a later amount write replaces it.
func (b *Builder) WithTransferAmountString(value string) *Builder {
	amount, err := validator.ParseAmount(value)
	if err != nil {
		return b.set(func(req *domain.TransferRequest) {
			req.TransferAmount = decimal.NullDecimal{}
			b.amountErr = err
		})
	}
	return b.WithTransferAmount(amount)
}

func (b *Builder) WithSepaPurpose(p domain.SepaPurpose) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.SepaPurpose = p })
}

// WithSCOR sets the structured creditor reference; spaces are stripped on Build
func (b *Builder) WithSCOR(value string) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.SCOR = strings.TrimSpace(value) })
}

// WithIntendedUse sets the unstructured remittance information
func (b *Builder) WithIntendedUse(value string) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.IntendedUse = strings.TrimSpace(value) })
}

// WithMessage sets the beneficiary to originator information
func (b *Builder) WithMessage(value string) *Builder {
	return b.set(func(req *domain.TransferRequest) { req.Message = strings.TrimSpace(value) })
}

// request returns a copy of the accumulated request
func (b *Builder) request() domain.TransferRequest {
	return b.req
}

// Build finalizes the builder and encodes the payload.
// The builder is consumed whether or not encoding succeeds.
func (b *Builder) Build() (domain.Payload, error) {
	if b.finalized {
		return "", ErrFinalized
	}
	b.finalized = true

	return encode(b.req, b.amountErr)
}
