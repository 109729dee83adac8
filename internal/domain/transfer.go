package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransferRequest holds the field values of one SEPA credit transfer
// Use NewTransferRequest to get the protocol defaults (V002, LF, UTF-8).
type TransferRequest struct {
	LineFeed          LineFeed
	Version           Version
	CharacterEncoding CharacterEncoding
	BIC               string
	Issuer            string // beneficiary name
	IBAN              string
	TransferAmount    decimal.NullDecimal // Valid == false means unset
	SepaPurpose       SepaPurpose
	SCOR              string // ISO 11649 structured creditor reference
	IntendedUse       string // unstructured remittance information
	Message           string // beneficiary to originator information

	// AllowExtendedCharset additionally permits öäüÖÄÜß in text fields
	AllowExtendedCharset bool
	// StrictIBAN additionally requires a valid IBAN check digit pair
	StrictIBAN bool
}

// NewTransferRequest returns an empty request carrying the protocol defaults
func NewTransferRequest() TransferRequest {
	return TransferRequest{
		LineFeed:          LineFeedLF,
		Version:           VersionV002,
		CharacterEncoding: EncodingUTF8,
	}
}

// Payload is the serialized EPC record handed to a QR renderer
type Payload string

// Lines splits the payload on the given separator
func (p Payload) Lines(lf LineFeed) []string {
	return strings.Split(string(p), string(lf))
}

func (p Payload) String() string {
	return string(p)
}
