// Package matchpb defines the wire types and service descriptor for the
// SubmitOrder RPC described in the spec's §6 external interfaces. In a
// production checkout these would be generated by protoc-gen-go and
// protoc-gen-go-grpc from a matchpb.proto; this package hand-writes the
// same shapes (message structs, a service interface, an Unimplemented
// embed, and a grpc.ServiceDesc) in the structure those generators
// produce, since no protobuf toolchain runs as part of building this
// repository.
package matchpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OrderRequest is the SubmitOrder request message.
type OrderRequest struct {
	UserID    string
	Symbol    string
	Side      string // "buy" | "sell", case-insensitive
	OrderType string // "limit" | "market", case-insensitive
	Price     int64  // meaningful only for "limit"
	Quantity  uint64
}

// Trade is one fill reported back to the caller.
type Trade struct {
	Price     int64
	Quantity  uint64
	Buyer     string
	Seller    string
	Timestamp string // RFC3339 / ISO-8601
}

// SubmitResponse is the SubmitOrder response message.
type SubmitResponse struct {
	Trades []*Trade
}

// OrderMatchingServer is the service interface generated clients and
// servers are built against.
type OrderMatchingServer interface {
	SubmitOrder(context.Context, *OrderRequest) (*SubmitResponse, error)
}

// UnimplementedOrderMatchingServer can be embedded to satisfy
// OrderMatchingServer without implementing every method, the way
// generated code always does for forward compatibility.
type UnimplementedOrderMatchingServer struct{}

func (UnimplementedOrderMatchingServer) SubmitOrder(context.Context, *OrderRequest) (*SubmitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitOrder not implemented")
}

var orderMatchingServiceDesc = grpc.ServiceDesc{
	ServiceName: "matchd.OrderMatching",
	HandlerType: (*OrderMatchingServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitOrder",
			Handler:    submitOrderHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "matchd.proto",
}

func submitOrderHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderMatchingServer).SubmitOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/matchd.OrderMatching/SubmitOrder",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderMatchingServer).SubmitOrder(ctx, req.(*OrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RegisterOrderMatchingServer wires srv into s the way
// protoc-gen-go-grpc's generated registration function does.
func RegisterOrderMatchingServer(s *grpc.Server, srv OrderMatchingServer) {
	s.RegisterService(&orderMatchingServiceDesc, srv)
}

// OrderMatchingClient is the client side of OrderMatchingServer.
type OrderMatchingClient interface {
	SubmitOrder(ctx context.Context, in *OrderRequest) (*SubmitResponse, error)
}

type orderMatchingClient struct {
	cc *grpc.ClientConn
}

// NewOrderMatchingClient wraps cc the way protoc-gen-go-grpc's generated
// client constructor does.
func NewOrderMatchingClient(cc *grpc.ClientConn) OrderMatchingClient {
	return &orderMatchingClient{cc: cc}
}

func (c *orderMatchingClient) SubmitOrder(ctx context.Context, in *OrderRequest) (*SubmitResponse, error) {
	out := new(SubmitResponse)
	err := c.cc.Invoke(ctx, "/matchd.OrderMatching/SubmitOrder", in, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
