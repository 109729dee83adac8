// Package checksum implements the ISO 7064 MOD 97-10 arithmetic shared by
// IBAN (ISO 13616) and the Structured Creditor Reference (ISO 11649).
//
// Letters are expanded to two digits (A=10 ... Z=35) and the remainder is
// computed digit by digit, so arbitrarily long numeric strings never need a
// big integer.
package checksum

import (
	"errors"
	"fmt"
	"strings"
)

const (
	scorPrefix = "RF"

	// MaxSCORLength is the maximum length of a creditor reference including RF and check digits
	MaxSCORLength = 25

	// MaxReferenceLength is the longest reference GenerateSCOR accepts
	MaxReferenceLength = MaxSCORLength - 4
)

var (
	ErrNotAlphanumeric  = errors.New("value must contain only letters and digits")
	ErrNotNumeric       = errors.New("value must contain only digits")
	ErrEmptyInput       = errors.New("value must not be empty")
	ErrReferenceTooLong = fmt.Errorf("reference exceeds allowed length, max. %d", MaxReferenceLength)
)

// SubstituteLetters replaces every ASCII letter, regardless of case, with its
// two digit value and passes digits through unchanged
func SubstituteLetters(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s) * 2)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			sb.WriteByte(c)
		case c >= 'a' && c <= 'z':
			writeLetterValue(&sb, c-'a')
		case c >= 'A' && c <= 'Z':
			writeLetterValue(&sb, c-'A')
		default:
			return "", fmt.Errorf("%w: %q", ErrNotAlphanumeric, s)
		}
	}

	return sb.String(), nil
}

func writeLetterValue(sb *strings.Builder, offset byte) {
	v := offset + 10
	sb.WriteByte('0' + v/10)
	sb.WriteByte('0' + v%10)
}

// Mod97 computes numeric mod 97 for a decimal string of any length
func Mod97(numeric string) (int, error) {
	if numeric == "" {
		return 0, ErrEmptyInput
	}

	remainder := 0
	for i := 0; i < len(numeric); i++ {
		c := numeric[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, numeric)
		}
		remainder = (remainder*10 + int(c-'0')) % 97
	}

	return remainder, nil
}

// remainderOf substitutes letters in an already rearranged value and reduces it mod 97
func remainderOf(arranged string) (int, error) {
	numeric, err := SubstituteLetters(arranged)
	if err != nil {
		return 0, err
	}
	return Mod97(numeric)
}

// IBANCheckValid reports whether the IBAN check digits are correct.
// The IBAN is rearranged as body + country code + check digits.
// Spaces are ignored; any other non alphanumeric character yields false.
func IBANCheckValid(iban string) bool {
	iban = strings.ReplaceAll(iban, " ", "")
	if len(iban) < 5 {
		return false
	}

	remainder, err := remainderOf(iban[4:] + iban[:4])
	if err != nil {
		return false
	}
	return remainder == 1
}

// GenerateSCOR builds a creditor reference from a bare reference: RF + two
// check digits + reference. Spaces are removed and letters upper-cased.
func GenerateSCOR(reference string) (string, error) {
	reference = strings.ToUpper(strings.ReplaceAll(reference, " ", ""))
	if reference == "" {
		return "", ErrEmptyInput
	}
	if len(reference) > MaxReferenceLength {
		return "", ErrReferenceTooLong
	}

	remainder, err := remainderOf(reference + scorPrefix + "00")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%02d%s", scorPrefix, 98-remainder, reference), nil
}

// SCORCheckValid reports whether a full creditor reference carries correct
// check digits. It is rearranged as reference + RF + check digits.
// Spaces are ignored.
func SCORCheckValid(scor string) bool {
	scor = strings.ReplaceAll(scor, " ", "")
	if len(scor) < 5 || !strings.HasPrefix(scor, scorPrefix) {
		return false
	}

	checkDigits := scor[2:4]
	if checkDigits[0] < '0' || checkDigits[0] > '9' || checkDigits[1] < '0' || checkDigits[1] > '9' {
		return false
	}

	remainder, err := remainderOf(scor[4:] + scorPrefix + checkDigits)
	if err != nil {
		return false
	}
	return remainder == 1
}
