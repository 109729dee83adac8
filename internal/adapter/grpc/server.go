package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/epcqr-backend/internal/checksum"
	"github.com/simaogato/epcqr-backend/internal/domain"
	"github.com/simaogato/epcqr-backend/internal/usecase/issuance"
	"github.com/simaogato/epcqr-backend/internal/validator"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Server implements the PayloadService gRPC server
type Server struct {
	IssuanceService *issuance.IssuanceService
}

// NewServer creates a new gRPC server instance
func NewServer(issuanceService *issuance.IssuanceService) *Server {
	return &Server{
		IssuanceService: issuanceService,
	}
}

var _ PayloadServiceServer = (*Server)(nil)

// BuildPayload handles the BuildPayload RPC
func (s *Server) BuildPayload(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := transferRequestFromStruct(in)
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.IssuanceService.Issue(ctx, req, false)
	if err != nil {
		return nil, mapError(err)
	}

	out, err := issuedPayloadToStruct(result.Record, req.LineFeed)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// RenderPayload handles the RenderPayload RPC
func (s *Server) RenderPayload(ctx context.Context, in *structpb.Struct) (*wrapperspb.BytesValue, error) {
	req, err := transferRequestFromStruct(in)
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.IssuanceService.Issue(ctx, req, true)
	if err != nil {
		return nil, mapError(err)
	}

	return wrapperspb.Bytes(result.Image), nil
}

// GenerateReference handles the GenerateReference RPC
func (s *Server) GenerateReference(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	scor, err := checksum.GenerateSCOR(in.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid reference: %v", err)
	}
	return wrapperspb.String(scor), nil
}

// ValidateIBAN handles the ValidateIBAN RPC
// It reports whether the IBAN passes both the country format and the checksum.
func (s *Server) ValidateIBAN(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_, err := validator.StrictIBAN(in.GetValue())
	return wrapperspb.Bool(err == nil), nil
}

// GetPayload handles the GetPayload RPC
func (s *Server) GetPayload(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	id, err := uuid.Parse(in.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid payload id format: %v", err)
	}

	record, err := s.IssuanceService.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	out, err := issuedPayloadToStruct(record, lineFeedOf(record.Payload))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// ListPayloads handles the ListPayloads RPC
// Accepts optional "limit" and "offset" numbers.
func (s *Server) ListPayloads(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	limit, offset := defaultListLimit, 0
	for key, value := range in.GetFields() {
		var err error
		switch key {
		case "limit":
			limit, err = intField(key, value)
		case "offset":
			offset, err = intField(key, value)
		default:
			err = status.Errorf(codes.InvalidArgument, "unknown field %q", key)
		}
		if err != nil {
			return nil, err
		}
	}
	if limit <= 0 || limit > maxListLimit {
		return nil, status.Errorf(codes.InvalidArgument, "limit must be between 1 and %d", maxListLimit)
	}
	if offset < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset must be non-negative")
	}

	records, err := s.IssuanceService.List(ctx, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	items := make([]any, 0, len(records))
	for _, record := range records {
		item, err := issuedPayloadToStruct(record, lineFeedOf(record.Payload))
		if err != nil {
			return nil, mapError(err)
		}
		items = append(items, item.AsMap())
	}

	out, err := structpb.NewStruct(map[string]any{"payloads": items})
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	// Already a status, e.g. from request conversion
	if _, ok := status.FromError(err); ok {
		return err
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return status.Errorf(codes.InvalidArgument, "%s", validationErr.Message)
	}

	if errors.Is(err, domain.ErrPayloadNotFound) {
		return status.Errorf(codes.NotFound, "%s", err.Error())
	}

	if errors.Is(err, context.Canceled) {
		return status.Errorf(codes.Canceled, "%s", err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
