package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "epcqr.v1.PayloadService"

// PayloadServiceServer is the server API for the payload service.
// Messages are protobuf well-known types so no generated code is required.
type PayloadServiceServer interface {
	BuildPayload(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenderPayload(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
	GenerateReference(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	ValidateIBAN(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	GetPayload(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListPayloads(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPayloadServiceServer registers srv on the given gRPC server
func RegisterPayloadServiceServer(s grpc.ServiceRegistrar, srv PayloadServiceServer) {
	s.RegisterService(&payloadServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryMethod builds a MethodDesc the same way protoc-gen-go-grpc does
func unaryMethod(name string, newReq func() any, call func(PayloadServiceServer, context.Context, any) (any, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(PayloadServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(PayloadServiceServer), ctx, req)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func newStruct() any      { return new(structpb.Struct) }
func newStringValue() any { return new(wrapperspb.StringValue) }

var payloadServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PayloadServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("BuildPayload", newStruct, func(s PayloadServiceServer, ctx context.Context, req any) (any, error) {
			return s.BuildPayload(ctx, req.(*structpb.Struct))
		}),
		unaryMethod("RenderPayload", newStruct, func(s PayloadServiceServer, ctx context.Context, req any) (any, error) {
			return s.RenderPayload(ctx, req.(*structpb.Struct))
		}),
		unaryMethod("GenerateReference", newStringValue, func(s PayloadServiceServer, ctx context.Context, req any) (any, error) {
			return s.GenerateReference(ctx, req.(*wrapperspb.StringValue))
		}),
		unaryMethod("ValidateIBAN", newStringValue, func(s PayloadServiceServer, ctx context.Context, req any) (any, error) {
			return s.ValidateIBAN(ctx, req.(*wrapperspb.StringValue))
		}),
		unaryMethod("GetPayload", newStringValue, func(s PayloadServiceServer, ctx context.Context, req any) (any, error) {
			return s.GetPayload(ctx, req.(*wrapperspb.StringValue))
		}),
		unaryMethod("ListPayloads", newStruct, func(s PayloadServiceServer, ctx context.Context, req any) (any, error) {
			return s.ListPayloads(ctx, req.(*structpb.Struct))
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "epcqr/v1/payload_service",
}

// PayloadServiceClient is the client API for the payload service
type PayloadServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPayloadServiceClient creates a client bound to the given connection
func NewPayloadServiceClient(cc grpc.ClientConnInterface) *PayloadServiceClient {
	return &PayloadServiceClient{cc: cc}
}

func (c *PayloadServiceClient) BuildPayload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("BuildPayload"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PayloadServiceClient) RenderPayload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, fullMethod("RenderPayload"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PayloadServiceClient) GenerateReference(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, fullMethod("GenerateReference"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PayloadServiceClient) ValidateIBAN(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, fullMethod("ValidateIBAN"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PayloadServiceClient) GetPayload(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("GetPayload"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PayloadServiceClient) ListPayloads(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("ListPayloads"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
