package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/epcqr-backend/internal/adapter/qrcode"
	"github.com/simaogato/epcqr-backend/internal/domain"
	"github.com/simaogato/epcqr-backend/internal/usecase/issuance"
)

// MockPayloadRepository is a mock implementation of PayloadRepository for testing
type MockPayloadRepository struct {
	mock.Mock
}

func (m *MockPayloadRepository) Create(ctx context.Context, payload *domain.IssuedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockPayloadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.IssuedPayload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssuedPayload), args.Error(1)
}

func (m *MockPayloadRepository) List(ctx context.Context, limit, offset int) ([]*domain.IssuedPayload, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IssuedPayload), args.Error(1)
}

const donationPayload = "BCD\n002\n1\nSCT\nBFSWDE33BER\nWikimedia Foerdergesellschaft\nDE33100205000001194700\nEUR123.45\n\n\nSpende fuer Wikipedia"

func donationRequest(t *testing.T) *structpb.Struct {
	t.Helper()
	in, err := structpb.NewStruct(map[string]any{
		"bic":          "BFSWDE33BER",
		"issuer":       "Wikimedia Foerdergesellschaft",
		"iban":         "DE33 1002 0500 0001 1947 00",
		"amount":       "123,45",
		"intended_use": "Spende fuer Wikipedia",
	})
	require.NoError(t, err)
	return in
}

func newTestServer(repo domain.PayloadRepository) *Server {
	return NewServer(issuance.NewIssuanceService(qrcode.NewRenderer(128), repo))
}

func TestBuildPayload(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPayloadRepository)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.IssuedPayload")).Return(nil)

	server := newTestServer(mockRepo)

	out, err := server.BuildPayload(ctx, donationRequest(t))
	require.NoError(t, err)

	fields := out.AsMap()
	assert.Equal(t, donationPayload, fields["payload"])
	assert.Equal(t, "DE33100205000001194700", fields["iban"])
	assert.Equal(t, "123.45", fields["amount"])
	assert.Len(t, fields["lines"], 11)

	_, err = uuid.Parse(fields["id"].(string))
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestBuildPayload_CRLFAndOptions(t *testing.T) {
	server := newTestServer(nil)

	in := donationRequest(t)
	in.Fields["line_feed"] = structpb.NewStringValue("crlf")
	in.Fields["version"] = structpb.NewStringValue("001")
	in.Fields["character_encoding"] = structpb.NewNumberValue(2)
	in.Fields["amount"] = structpb.NewNumberValue(5)
	in.Fields["message"] = structpb.NewStringValue("Danke")
	in.Fields["strict_iban"] = structpb.NewBoolValue(true)

	out, err := server.BuildPayload(context.Background(), in)
	require.NoError(t, err)

	fields := out.AsMap()
	lines := fields["lines"].([]any)
	require.Len(t, lines, 12)
	assert.Equal(t, "001", lines[1])
	assert.Equal(t, "2", lines[2])
	assert.Equal(t, "EUR5.00", lines[7])
	assert.Equal(t, "Danke", lines[11])
	assert.Contains(t, fields["payload"], "\r\n")
}

func TestBuildPayload_InvalidArgument(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *structpb.Struct)
		errMsg string
	}{
		{
			name:   "missing IBAN",
			mutate: func(in *structpb.Struct) { delete(in.Fields, "iban") },
			errMsg: "IBAN can not be empty",
		},
		{
			name: "SCOR and intended use",
			mutate: func(in *structpb.Struct) {
				in.Fields["scor"] = structpb.NewStringValue("RF18539007547034")
			},
			errMsg: "either SCOR or intended use can be set",
		},
		{
			name:   "unparsable amount",
			mutate: func(in *structpb.Struct) { in.Fields["amount"] = structpb.NewStringValue("12x") },
			errMsg: "transfer amount has invalid format",
		},
		{
			name:   "amount of wrong type",
			mutate: func(in *structpb.Struct) { in.Fields["amount"] = structpb.NewBoolValue(true) },
			errMsg: `field "amount" must be a string or number`,
		},
		{
			name:   "fractional encoding",
			mutate: func(in *structpb.Struct) { in.Fields["character_encoding"] = structpb.NewNumberValue(1.5) },
			errMsg: `field "character_encoding" must be an integer`,
		},
		{
			name:   "encoding out of range",
			mutate: func(in *structpb.Struct) { in.Fields["character_encoding"] = structpb.NewNumberValue(9) },
			errMsg: "character encoding must be between 1 and 8",
		},
		{
			name:   "unknown line feed",
			mutate: func(in *structpb.Struct) { in.Fields["line_feed"] = structpb.NewStringValue("CR") },
			errMsg: "line feed must be LF or CRLF",
		},
		{
			name:   "issuer not a string",
			mutate: func(in *structpb.Struct) { in.Fields["issuer"] = structpb.NewNumberValue(1) },
			errMsg: `field "issuer" must be a string`,
		},
		{
			name:   "unknown field",
			mutate: func(in *structpb.Struct) { in.Fields["currency"] = structpb.NewStringValue("USD") },
			errMsg: `unknown field "currency"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPayloadRepository)
			server := newTestServer(mockRepo)

			in := donationRequest(t)
			tt.mutate(in)

			out, err := server.BuildPayload(context.Background(), in)
			assert.Nil(t, out)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Contains(t, err.Error(), tt.errMsg)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRenderPayload(t *testing.T) {
	server := newTestServer(nil)

	out, err := server.RenderPayload(context.Background(), donationRequest(t))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, out.GetValue()[:4])
}

func TestGenerateReference(t *testing.T) {
	server := newTestServer(nil)

	out, err := server.GenerateReference(context.Background(), wrapperspb.String("4723 m108"))
	require.NoError(t, err)
	assert.Equal(t, "RF794723M108", out.GetValue())

	_, err = server.GenerateReference(context.Background(), wrapperspb.String("ÄÖÜ"))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = server.GenerateReference(context.Background(), wrapperspb.String(""))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestValidateIBAN(t *testing.T) {
	server := newTestServer(nil)

	tests := []struct {
		iban string
		want bool
	}{
		{"DE89 3704 0044 0532 0130 00", true},
		{"GB82WEST12345698765432", true},
		{"DE89370400440532013001", false},
		{"US12345", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.iban, func(t *testing.T) {
			out, err := server.ValidateIBAN(context.Background(), wrapperspb.String(tt.iban))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.GetValue())
		})
	}
}

func TestGetPayload(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPayloadRepository)
	server := newTestServer(mockRepo)

	record := &domain.IssuedPayload{
		ID:        uuid.New(),
		Payload:   domain.Payload(donationPayload),
		IBAN:      "DE33100205000001194700",
		Amount:    decimal.RequireFromString("123.45"),
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	missing := uuid.New()

	mockRepo.On("GetByID", ctx, record.ID).Return(record, nil)
	mockRepo.On("GetByID", ctx, missing).Return(nil, fmt.Errorf("issued payload %s: %w", missing, domain.ErrPayloadNotFound))

	out, err := server.GetPayload(ctx, wrapperspb.String(record.ID.String()))
	require.NoError(t, err)
	assert.Equal(t, record.ID.String(), out.AsMap()["id"])
	assert.Equal(t, "2024-05-01T12:00:00Z", out.AsMap()["created_at"])
	assert.Len(t, out.AsMap()["lines"], 11)

	_, err = server.GetPayload(ctx, wrapperspb.String(missing.String()))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = server.GetPayload(ctx, wrapperspb.String("not-a-uuid"))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	mockRepo.AssertExpectations(t)
}

func TestListPayloads(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPayloadRepository)
	server := newTestServer(mockRepo)

	record := &domain.IssuedPayload{
		ID:      uuid.New(),
		Payload: domain.Payload(donationPayload),
		IBAN:    "DE33100205000001194700",
		Amount:  decimal.RequireFromString("123.45"),
	}
	mockRepo.On("List", ctx, defaultListLimit, 0).Return([]*domain.IssuedPayload{record}, nil)
	mockRepo.On("List", ctx, 5, 10).Return([]*domain.IssuedPayload{}, nil)

	out, err := server.ListPayloads(ctx, &structpb.Struct{})
	require.NoError(t, err)
	items := out.AsMap()["payloads"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, record.ID.String(), items[0].(map[string]any)["id"])

	page, err := structpb.NewStruct(map[string]any{"limit": 5, "offset": 10})
	require.NoError(t, err)
	out, err = server.ListPayloads(ctx, page)
	require.NoError(t, err)
	assert.Empty(t, out.AsMap()["payloads"])

	tooMany, err := structpb.NewStruct(map[string]any{"limit": maxListLimit + 1})
	require.NoError(t, err)
	_, err = server.ListPayloads(ctx, tooMany)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	mockRepo.AssertExpectations(t)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"nil", nil, codes.OK},
		{"validation", domain.NewValidationError(domain.CategoryFormatInvalid, "IBAN", "IBAN has invalid format"), codes.InvalidArgument},
		{"wrapped validation", fmt.Errorf("encode: %w", domain.NewValidationError(domain.CategoryRangeInvalid, "x", "y")), codes.InvalidArgument},
		{"not found", fmt.Errorf("lookup: %w", domain.ErrPayloadNotFound), codes.NotFound},
		{"status passthrough", status.Error(codes.PermissionDenied, "nope"), codes.PermissionDenied},
		{"canceled", context.Canceled, codes.Canceled},
		{"unknown", errors.New("failed to create issued payload: connection refused"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(mapError(tt.err)))
		})
	}
}

func TestPayloadService_RoundTrip(t *testing.T) {
	const token = "test-token-123"

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(AuthInterceptor(token)),
	)
	RegisterPayloadServiceServer(grpcServer, newTestServer(nil))
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client := NewPayloadServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = client.ValidateIBAN(ctx, wrapperspb.String("GB82WEST12345698765432"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authCtx := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)

	valid, err := client.ValidateIBAN(authCtx, wrapperspb.String("GB82WEST12345698765432"))
	require.NoError(t, err)
	assert.True(t, valid.GetValue())

	out, err := client.BuildPayload(authCtx, donationRequest(t))
	require.NoError(t, err)
	assert.Equal(t, donationPayload, out.AsMap()["payload"])

	_, err = client.GetPayload(authCtx, wrapperspb.String(out.AsMap()["id"].(string)))
	assert.Equal(t, codes.NotFound, status.Code(err))
}
