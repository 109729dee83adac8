package payload

import (
	"strconv"
	"strings"

	"github.com/simaogato/epcqr-backend/internal/domain"
	"github.com/simaogato/epcqr-backend/internal/validator"
)

// Encode validates a transfer request and serializes it into an EPC payload
// Logic:
//  1. Unset line feed, version and encoding take the protocol defaults
//     (LF, 002, UTF-8), so the zero TransferRequest is usable
//  2. Cross-field rules, in this order: BIC under 001, IBAN present, amount
//     present, SCOR and intended use not both set
//  3. Per-field validators in row order; the first failure aborts
//  4. Rows are joined with the configured line feed; the record has no
//     trailing line feed, so it has 11 rows without a message and 12 with one
func Encode(req domain.TransferRequest) (domain.Payload, error) {
	return encode(req, nil)
}

// encode is Encode with the parse error of an unset amount, if any.
// That error replaces the missing amount error at the same position.
func encode(req domain.TransferRequest, amountErr error) (domain.Payload, error) {
	req = applyDefaults(req)

	if err := checkCrossFieldRules(req, amountErr); err != nil {
		return "", err
	}

	rows, err := validateRows(req)
	if err != nil {
		return "", err
	}

	return domain.Payload(strings.Join(rows, string(req.LineFeed))), nil
}

func applyDefaults(req domain.TransferRequest) domain.TransferRequest {
	if req.LineFeed == "" {
		req.LineFeed = domain.LineFeedLF
	}
	if req.Version == "" {
		req.Version = domain.VersionV002
	}
	if req.CharacterEncoding == 0 {
		req.CharacterEncoding = domain.EncodingUTF8
	}
	return req
}

func checkCrossFieldRules(req domain.TransferRequest, amountErr error) error {
	if req.Version == domain.VersionV001 && strings.TrimSpace(req.BIC) == "" {
		return domain.NewValidationError(domain.CategoryMissingMandatory, "BIC",
			"BIC can not be empty if version is "+string(domain.VersionV001))
	}

	if validator.NormalizeIBAN(req.IBAN) == "" {
		return domain.NewValidationError(domain.CategoryMissingMandatory, "IBAN", "IBAN can not be empty")
	}

	if !req.TransferAmount.Valid {
		if amountErr != nil {
			return amountErr
		}
		return domain.NewValidationError(domain.CategoryMissingMandatory, "transfer amount",
			"transfer amount can not be empty")
	}

	if strings.TrimSpace(req.SCOR) != "" && strings.TrimSpace(req.IntendedUse) != "" {
		return domain.NewValidationError(domain.CategoryMutuallyExclusive, "SCOR",
			"either SCOR or intended use can be set")
	}

	return nil
}

// validateRows runs every field validator and returns the rows in payload order
func validateRows(req domain.TransferRequest) ([]string, error) {
	if err := validator.LineFeed(req.LineFeed); err != nil {
		return nil, err
	}
	if err := validator.Version(req.Version); err != nil {
		return nil, err
	}

	encoding, err := validator.CharacterEncoding(req.CharacterEncoding)
	if err != nil {
		return nil, err
	}

	bic, err := validator.BIC(req.BIC, req.Version)
	if err != nil {
		return nil, err
	}

	issuer, err := validator.Issuer(req.Issuer, req.AllowExtendedCharset)
	if err != nil {
		return nil, err
	}

	validateIBAN := validator.IBAN
	if req.StrictIBAN {
		validateIBAN = validator.StrictIBAN
	}
	iban, err := validateIBAN(req.IBAN)
	if err != nil {
		return nil, err
	}

	amount, err := validator.TransferAmount(req.TransferAmount)
	if err != nil {
		return nil, err
	}

	purpose, err := validator.SepaPurpose(req.SepaPurpose)
	if err != nil {
		return nil, err
	}

	scor, err := validator.SCOR(req.SCOR)
	if err != nil {
		return nil, err
	}

	intendedUse, err := validator.IntendedUse(req.IntendedUse, req.AllowExtendedCharset)
	if err != nil {
		return nil, err
	}

	message, err := validator.Message(req.Message, req.AllowExtendedCharset)
	if err != nil {
		return nil, err
	}

	rows := []string{
		domain.ServiceTag,
		string(req.Version),
		strconv.Itoa(int(encoding)),
		domain.IdentifierCode,
		bic,
		issuer,
		iban,
		validator.FormatAmount(amount),
		purpose,
		scor,
		intendedUse,
	}
	if message != "" {
		rows = append(rows, message)
	}

	return rows, nil
}
