// Package validator holds one validator per EPC payment field.
//
// Every validator is pure: it normalizes its input (trim, strip spaces) and
// returns either the value to serialize or a *domain.ValidationError whose
// message names the field and the rule that failed.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/simaogato/epcqr-backend/internal/domain"
)

// Field length limits
const (
	MaxBICLength         = 11
	MaxIssuerLength      = 70
	MaxIBANLength        = 34
	MaxSCORLength        = 25
	MaxIntendedUseLength = 140
	MaxMessageLength     = 70
)

var (
	// sepaText is the base SEPA character set
	sepaText = regexp.MustCompile(`^[a-zA-Z0-9/\-?:().,+'& ]+$`)
	// sepaTextExtended adds German umlauts and sharp s
	sepaTextExtended = regexp.MustCompile(`(?i)^[a-zA-Z0-9/\-?:().,+'& öäüÖÄÜß]+$`)
)

// MatchesCharset reports whether the whole value consists of permitted characters
func MatchesCharset(value string, extended bool) bool {
	if extended {
		return sepaTextExtended.MatchString(value)
	}
	return sepaText.MatchString(value)
}

// text validates an optional free text field; "" is returned unchanged
func text(field, value string, maxLength int, extended bool) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	if utf8.RuneCountInString(value) > maxLength {
		return "", domain.NewValidationError(domain.CategoryLengthExceeded, field,
			fmt.Sprintf("%s exceeds allowed length, max. %d", field, maxLength))
	}

	if !MatchesCharset(value, extended) {
		return "", domain.NewValidationError(domain.CategoryFormatInvalid, field,
			fmt.Sprintf("%s contains invalid character(s)", field))
	}

	return value, nil
}

// Issuer validates the beneficiary name, which is mandatory
func Issuer(value string, extended bool) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", domain.NewValidationError(domain.CategoryMissingMandatory, "issuer", "issuer is mandatory")
	}
	return text("issuer", value, MaxIssuerLength, extended)
}

// IntendedUse validates the unstructured remittance information
func IntendedUse(value string, extended bool) (string, error) {
	return text("intended use", value, MaxIntendedUseLength, extended)
}

// Message validates the beneficiary to originator information
func Message(value string, extended bool) (string, error) {
	return text("message", value, MaxMessageLength, extended)
}
