package grpc

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/epcqr-backend/internal/domain"
	"github.com/simaogato/epcqr-backend/internal/validator"
)

// Keys accepted in a transfer request Struct
const (
	fieldLineFeed          = "line_feed"
	fieldVersion           = "version"
	fieldCharacterEncoding = "character_encoding"
	fieldBIC               = "bic"
	fieldIssuer            = "issuer"
	fieldIBAN              = "iban"
	fieldAmount            = "amount"
	fieldPurpose           = "purpose"
	fieldSCOR              = "scor"
	fieldIntendedUse       = "intended_use"
	fieldMessage           = "message"
	fieldExtendedCharset   = "extended_charset"
	fieldStrictIBAN        = "strict_iban"
)

// transferRequestFromStruct converts a request Struct into a TransferRequest.
// Absent keys keep the defaults of domain.NewTransferRequest.
func transferRequestFromStruct(in *structpb.Struct) (domain.TransferRequest, error) {
	req := domain.NewTransferRequest()

	for key, value := range in.GetFields() {
		var err error
		switch key {
		case fieldLineFeed:
			var lf string
			lf, err = stringField(key, value)
			req.LineFeed = parseLineFeed(lf)
		case fieldVersion:
			var v string
			v, err = stringField(key, value)
			req.Version = domain.Version(v)
		case fieldCharacterEncoding:
			var e int
			e, err = intField(key, value)
			req.CharacterEncoding = domain.CharacterEncoding(e)
		case fieldBIC:
			req.BIC, err = stringField(key, value)
		case fieldIssuer:
			req.Issuer, err = stringField(key, value)
		case fieldIBAN:
			req.IBAN, err = stringField(key, value)
		case fieldAmount:
			req.TransferAmount, err = amountField(value)
		case fieldPurpose:
			var p string
			p, err = stringField(key, value)
			req.SepaPurpose = domain.SepaPurpose(strings.ToUpper(p))
		case fieldSCOR:
			req.SCOR, err = stringField(key, value)
		case fieldIntendedUse:
			req.IntendedUse, err = stringField(key, value)
		case fieldMessage:
			req.Message, err = stringField(key, value)
		case fieldExtendedCharset:
			req.AllowExtendedCharset, err = boolField(key, value)
		case fieldStrictIBAN:
			req.StrictIBAN, err = boolField(key, value)
		default:
			err = status.Errorf(codes.InvalidArgument, "unknown field %q", key)
		}
		if err != nil {
			return domain.TransferRequest{}, err
		}
	}

	return req, nil
}

func parseLineFeed(value string) domain.LineFeed {
	switch strings.ToUpper(value) {
	case "LF":
		return domain.LineFeedLF
	case "CRLF":
		return domain.LineFeedCRLF
	}
	// unrecognised names are passed through and rejected by validation
	return domain.LineFeed(value)
}

func stringField(key string, value *structpb.Value) (string, error) {
	s, ok := value.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "field %q must be a string", key)
	}
	return s.StringValue, nil
}

func boolField(key string, value *structpb.Value) (bool, error) {
	b, ok := value.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, status.Errorf(codes.InvalidArgument, "field %q must be a bool", key)
	}
	return b.BoolValue, nil
}

func intField(key string, value *structpb.Value) (int, error) {
	n, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, status.Errorf(codes.InvalidArgument, "field %q must be an integer", key)
	}
	return int(n.NumberValue), nil
}

// amountField accepts "123.45", "123,45" or a JSON number
func amountField(value *structpb.Value) (decimal.NullDecimal, error) {
	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		amount, err := validator.ParseAmount(kind.StringValue)
		if err != nil {
			return decimal.NullDecimal{}, err
		}
		return decimal.NewNullDecimal(amount), nil
	case *structpb.Value_NumberValue:
		return decimal.NewNullDecimal(decimal.NewFromFloat(kind.NumberValue)), nil
	case *structpb.Value_NullValue:
		return decimal.NullDecimal{}, nil
	default:
		return decimal.NullDecimal{}, status.Errorf(codes.InvalidArgument, "field %q must be a string or number", fieldAmount)
	}
}

// issuedPayloadToStruct converts an archived payload into its wire form.
// The line feed is needed to split the payload into rows.
func issuedPayloadToStruct(record *domain.IssuedPayload, lf domain.LineFeed) (*structpb.Struct, error) {
	lines := record.Payload.Lines(lf)
	rows := make([]any, len(lines))
	for i, line := range lines {
		rows[i] = line
	}

	return structpb.NewStruct(map[string]any{
		"id":         record.ID.String(),
		"payload":    record.Payload.String(),
		"lines":      rows,
		"iban":       record.IBAN,
		"amount":     record.Amount.StringFixed(2),
		"reference":  record.Reference,
		"created_at": record.CreatedAt.Format(time.RFC3339Nano),
	})
}

// lineFeedOf detects the separator an archived payload was encoded with
func lineFeedOf(p domain.Payload) domain.LineFeed {
	if strings.Contains(string(p), string(domain.LineFeedCRLF)) {
		return domain.LineFeedCRLF
	}
	return domain.LineFeedLF
}
