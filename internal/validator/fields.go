package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/simaogato/epcqr-backend/internal/checksum"
	"github.com/simaogato/epcqr-backend/internal/domain"
)

var (
	// institution(4) country(2) location(2) [branch(3) | XXX]
	bicPattern  = regexp.MustCompile(`(?i)^[A-Z]{4}[A-Z]{2}[2-9A-Z][0-9A-NP-Z](?:[0-9A-WY-Z][0-9A-Z]{2}|XXX)?$`)
	scorPattern = regexp.MustCompile(`^RF[0-9]{2}[0-9A-Z]+$`)
)

// Version rejects unknown protocol revisions
func Version(v domain.Version) error {
	if !v.IsValid() {
		return domain.NewValidationError(domain.CategoryFormatInvalid, "version",
			fmt.Sprintf("version must be %s or %s", domain.VersionV001, domain.VersionV002))
	}
	return nil
}

// LineFeed rejects anything but LF and CRLF
func LineFeed(lf domain.LineFeed) error {
	if !lf.IsValid() {
		return domain.NewValidationError(domain.CategoryFormatInvalid, "line feed", "line feed must be LF or CRLF")
	}
	return nil
}

// CharacterEncoding requires a digit between 1 and 8
func CharacterEncoding(e domain.CharacterEncoding) (domain.CharacterEncoding, error) {
	if !e.IsValid() {
		return 0, domain.NewValidationError(domain.CategoryRangeInvalid, "character encoding",
			"character encoding must be between 1 and 8")
	}
	return e, nil
}

// BIC validates the beneficiary bank code; it may only be empty for version 002
func BIC(value string, version domain.Version) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		if version == domain.VersionV001 {
			return "", domain.NewValidationError(domain.CategoryMissingMandatory, "BIC",
				fmt.Sprintf("BIC can not be empty if version is %s", domain.VersionV001))
		}
		return "", nil
	}
	if len(value) > MaxBICLength {
		return "", domain.NewValidationError(domain.CategoryLengthExceeded, "BIC",
			fmt.Sprintf("BIC exceeds allowed length, max. %d", MaxBICLength))
	}
	if !bicPattern.MatchString(value) {
		return "", domain.NewValidationError(domain.CategoryFormatInvalid, "BIC", "BIC contains invalid character(s)")
	}
	return value, nil
}

// SepaPurpose returns the literal purpose code, or "" if none is set
func SepaPurpose(p domain.SepaPurpose) (string, error) {
	if !p.IsKnown() {
		return "", domain.NewValidationError(domain.CategoryFormatInvalid, "SEPA purpose",
			fmt.Sprintf("SEPA purpose %q is not a known purpose code", string(p)))
	}
	return string(p), nil
}

// SCOR validates an optional structured creditor reference
func SCOR(value string) (string, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), " ", "")
	if value == "" {
		return "", nil
	}
	if len(value) > MaxSCORLength {
		return "", domain.NewValidationError(domain.CategoryLengthExceeded, "SCOR",
			fmt.Sprintf("SCOR exceeds allowed length, max. %d", MaxSCORLength))
	}
	if !scorPattern.MatchString(value) {
		return "", domain.NewValidationError(domain.CategoryFormatInvalid, "SCOR", "SCOR has invalid format")
	}
	if !checksum.SCORCheckValid(value) {
		return "", domain.NewValidationError(domain.CategoryChecksumInvalid, "SCOR", "SCOR has invalid checksum")
	}
	return value, nil
}
