package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "storefront.v1.Storefront"

// Every storefront method takes and returns a google.protobuf.Struct
// holding the same JSON shapes the stores persist.
type storefrontServer interface {
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Signup(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CurrentUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateQuantity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearCart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Checkout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Search(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleWishlist(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetWishlist(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var _ storefrontServer = (*GRPCServer)(nil)

type method func(*GRPCServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*storefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", (*GRPCServer).Ping),
		unary("Signup", (*GRPCServer).Signup),
		unary("Login", (*GRPCServer).Login),
		unary("Logout", (*GRPCServer).Logout),
		unary("CurrentUser", (*GRPCServer).CurrentUser),
		unary("GetCart", (*GRPCServer).GetCart),
		unary("AddItem", (*GRPCServer).AddItem),
		unary("RemoveItem", (*GRPCServer).RemoveItem),
		unary("UpdateQuantity", (*GRPCServer).UpdateQuantity),
		unary("ClearCart", (*GRPCServer).ClearCart),
		unary("Checkout", (*GRPCServer).Checkout),
		unary("ListProducts", (*GRPCServer).ListProducts),
		unary("Search", (*GRPCServer).Search),
		unary("ToggleWishlist", (*GRPCServer).ToggleWishlist),
		unary("GetWishlist", (*GRPCServer).GetWishlist),
	},
	Metadata: "storefront/v1/storefront.proto",
}

// FullMethod returns the gRPC path of a storefront method.
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unary(name string, m method) grpc.MethodDesc {
	fullMethod := FullMethod(name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(*GRPCServer)
			if interceptor == nil {
				return m(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return m(s, ctx, req.(*structpb.Struct))
			})
		},
	}
}
