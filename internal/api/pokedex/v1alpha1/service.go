// Package v1alpha1 defines the pokedex gRPC contract. Messages are plain
// structs carried by the json codec registered in this package.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// ServiceName is the fully qualified service name
	ServiceName = "pokedex.api.v1alpha1.PokedexService"

	// SearchFullMethodName is the full method name for Search
	SearchFullMethodName = "/" + ServiceName + "/Search"
)

// PokedexServiceServer is the server API for PokedexService
type PokedexServiceServer interface {
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
}

// UnimplementedPokedexServiceServer can be embedded to have forward
// compatible implementations
type UnimplementedPokedexServiceServer struct{}

// Search returns Unimplemented
func (UnimplementedPokedexServiceServer) Search(context.Context, *SearchRequest) (*SearchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Search not implemented")
}

// RegisterPokedexServiceServer registers srv with the grpc server
func RegisterPokedexServiceServer(s grpc.ServiceRegistrar, srv PokedexServiceServer) {
	s.RegisterService(&PokedexServiceDesc, srv)
}

func searchHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).Search(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SearchFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).Search(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PokedexServiceDesc is the grpc.ServiceDesc for PokedexService
var PokedexServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PokedexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Search",
			Handler:    searchHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokedex/api/v1alpha1/pokedex.go",
}

// PokedexServiceClient is the client API for PokedexService
type PokedexServiceClient interface {
	Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
}

type pokedexServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPokedexServiceClient creates a client that speaks the json codec
func NewPokedexServiceClient(cc grpc.ClientConnInterface) PokedexServiceClient {
	return &pokedexServiceClient{cc: cc}
}

func (c *pokedexServiceClient) Search(
	ctx context.Context,
	in *SearchRequest,
	opts ...grpc.CallOption,
) (*SearchResponse, error) {
	out := new(SearchResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, SearchFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
