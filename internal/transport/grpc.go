package transport

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "presale.v1.PresaleService"

// PresaleServiceServer is the server side of presale.v1.PresaleService. Every method takes
// and returns a google.protobuf.Struct.
type PresaleServiceServer interface {
	Call(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error)
}

// GRPCServer serves the operation table over gRPC.
type GRPCServer struct {
	handler *Handler
	auth    Authenticator
}

func NewGRPCServer(handler *Handler, auth Authenticator) *GRPCServer {
	return &GRPCServer{handler: handler, auth: auth}
}

// Call authenticates the caller from metadata and invokes method.
func (s *GRPCServer) Call(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	caller, err := s.auth.Authenticate(method, credentialsFromMetadata(ctx))
	if err != nil {
		return nil, err
	}
	return s.handler.Invoke(ctx, method, caller, in)
}

// RegisterPresaleServiceServer registers srv for every operation.
func RegisterPresaleServiceServer(registrar grpc.ServiceRegistrar, srv PresaleServiceServer) {
	registrar.RegisterService(serviceDesc(), srv)
}

func serviceDesc() *grpc.ServiceDesc {
	methods := make([]grpc.MethodDesc, 0, len(operations))
	for _, op := range operations {
		methods = append(methods, grpc.MethodDesc{
			MethodName: op.name,
			Handler:    methodHandler(op.name),
		})
	}
	return &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*PresaleServiceServer)(nil),
		Methods:     methods,
		Streams:     []grpc.StreamDesc{},
		Metadata:    "presale/v1/presale.proto",
	}
}

func methodHandler(method string) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(PresaleServiceServer)
		if interceptor == nil {
			return server.Call(ctx, method, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return server.Call(ctx, method, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func credentialsFromMetadata(ctx context.Context) Credentials {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return Credentials{}
	}
	first := func(key string) string {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
		return ""
	}
	return Credentials{
		Address:   first(CallerMetadataKey),
		Signature: first(SignatureMetadataKey),
		Timestamp: first(TimestampMetadataKey),
	}
}
