package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/simaogato/epcqr-backend/internal/checksum"
	"github.com/simaogato/epcqr-backend/internal/domain"
)

// ibanFormat describes the BBAN layout shared by a group of countries,
// following the two letter country code and two check digits
type ibanFormat struct {
	countries []string
	bban      string
}

// ibanFormats is the closed list of supported countries
var ibanFormats = []ibanFormat{
	{countries: []string{"IT", "SM"}, bban: `[A-Z]\d{22}`},
	{countries: []string{"NL"}, bban: `[A-Z]{4}\d{10}`},
	{countries: []string{"LV"}, bban: `[A-Z]{4}\d{13}`},
	{countries: []string{"BG", "GB", "IE"}, bban: `[A-Z]{4}\d{14}`},
	{countries: []string{"GI"}, bban: `[A-Z]{4}\d{15}`},
	{countries: []string{"RO"}, bban: `[A-Z]{4}\d{16}`},
	{countries: []string{"MT"}, bban: `[A-Z]{4}\d{23}`},
	{countries: []string{"NO"}, bban: `\d{11}`},
	{countries: []string{"DK", "FI", "FO"}, bban: `\d{14}`},
	{countries: []string{"SI"}, bban: `\d{15}`},
	{countries: []string{"AT", "EE", "LU", "LT"}, bban: `\d{16}`},
	{countries: []string{"HR", "LI", "CH"}, bban: `\d{17}`},
	{countries: []string{"DE"}, bban: `\d{18}`},
	{countries: []string{"CZ", "ES", "SK", "SE"}, bban: `\d{20}`},
	{countries: []string{"PT"}, bban: `\d{21}`},
	{countries: []string{"IS"}, bban: `\d{22}`},
	{countries: []string{"BE"}, bban: `\d{12}`},
	{countries: []string{"FR", "MC", "GR"}, bban: `\d{23}`},
	{countries: []string{"PL", "HU", "CY"}, bban: `\d{24}`},
}

var ibanPattern = compileIBANPattern(ibanFormats)

func compileIBANPattern(formats []ibanFormat) *regexp.Regexp {
	alternatives := make([]string, 0, len(formats))
	for _, f := range formats {
		alternatives = append(alternatives,
			fmt.Sprintf(`(?:%s)\d{2}%s`, strings.Join(f.countries, "|"), f.bban))
	}
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(alternatives, "|") + `)$`)
}

// NormalizeIBAN removes all spaces
func NormalizeIBAN(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, " ", ""))
}

// IBAN validates the beneficiary account number against the country table
func IBAN(value string) (string, error) {
	value = NormalizeIBAN(value)
	if value == "" {
		return "", domain.NewValidationError(domain.CategoryMissingMandatory, "IBAN", "IBAN is mandatory")
	}
	if len(value) > MaxIBANLength {
		return "", domain.NewValidationError(domain.CategoryLengthExceeded, "IBAN",
			fmt.Sprintf("IBAN exceeds allowed length, max. %d", MaxIBANLength))
	}
	if !ibanPattern.MatchString(value) {
		return "", domain.NewValidationError(domain.CategoryFormatInvalid, "IBAN", "IBAN has invalid format")
	}
	return value, nil
}

// StrictIBAN validates the format and additionally the mod 97 check digits
func StrictIBAN(value string) (string, error) {
	iban, err := IBAN(value)
	if err != nil {
		return "", err
	}
	if !checksum.IBANCheckValid(iban) {
		return "", domain.NewValidationError(domain.CategoryChecksumInvalid, "IBAN", "IBAN has invalid checksum")
	}
	return iban, nil
}
