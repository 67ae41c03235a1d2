package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/services"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return encode(map[string]string{"status": "OK"})
}

func (s *GRPCServer) Signup(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in credentialsRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}

	res, err := s.stores.Session.Signup(ctx, in.Name, in.Email, in.Password)
	return s.authResult(ctx, res, err)
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in credentialsRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}

	res, err := s.stores.Session.Login(ctx, in.Email, in.Password)
	return s.authResult(ctx, res, err)
}

// authResult issues a token for a successful Login or Signup. A rejected
// attempt is a normal response with ok=false.
func (s *GRPCServer) authResult(ctx context.Context, res services.Result, err error) (*structpb.Struct, error) {
	if err != nil && !res.OK {
		s.logger.Error(ctx, "auth failed", "error", err)
		return nil, mapError(err)
	}
	if err != nil {
		// The identity is active; only loading its partitions failed.
		s.logger.Warn(ctx, "identity activated with load errors", "error", err)
	}

	out := authResponse{OK: res.OK, Message: res.Message, Identity: res.Identity}
	if res.OK {
		token, err := auth.GenerateToken(res.Identity.ID, s.jwtSecret, s.tokenTTL)
		if err != nil {
			return nil, mapError(err)
		}
		out.AccessToken = token
	}
	return encode(out)
}

func (s *GRPCServer) Logout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.stores.Session.Logout(ctx); err != nil {
		return nil, mapError(err)
	}
	return encode(currentUserResponse{State: services.StateUnauthenticated.String()})
}

func (s *GRPCServer) CurrentUser(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	session := s.stores.Session
	return encode(currentUserResponse{State: session.State().String(), Identity: session.Current()})
}

func (s *GRPCServer) GetCart(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return encode(s.cartView())
}

func (s *GRPCServer) AddItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in lineRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}

	p, err := s.product(in.ProductID)
	if err != nil {
		return nil, err
	}
	if err := checkSize(p, in.Size); err != nil {
		return nil, err
	}
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}

	out, err := s.stores.Cart.AddItem(ctx, p.CartLine(qty, in.Size))
	if err != nil {
		return nil, mapError(err)
	}

	view := s.cartView()
	view.Merged = &out.Merged
	view.Quantity = out.Quantity
	return encode(view)
}

func (s *GRPCServer) RemoveItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in lineRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}
	if err := s.stores.Cart.RemoveItem(ctx, in.ProductID, in.Size); err != nil {
		return nil, mapError(err)
	}
	return encode(s.cartView())
}

func (s *GRPCServer) UpdateQuantity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in lineRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}
	if err := s.stores.Cart.UpdateQuantity(ctx, in.ProductID, in.Quantity, in.Size); err != nil {
		return nil, mapError(err)
	}
	return encode(s.cartView())
}

func (s *GRPCServer) ClearCart(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.stores.Cart.ClearCart(ctx); err != nil {
		return nil, mapError(err)
	}
	return encode(s.cartView())
}

func (s *GRPCServer) Checkout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	form := s.stores.Checkout.PrefillForm()
	if err := decode(req, &form); err != nil {
		return nil, err
	}

	receipt, verrs, err := s.stores.Checkout.PlaceOrder(ctx, form)
	if err != nil {
		return nil, mapError(err)
	}
	if verrs != nil {
		return encode(checkoutResponse{Errors: verrs})
	}
	identityID, _ := IdentityIDFromContext(ctx)
	s.logger.Info(ctx, "checkout", "order", receipt.OrderID, "identity", identityID)
	return encode(checkoutResponse{Receipt: receipt})
}

func (s *GRPCServer) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}

	var products []models.Product
	switch in.Filter {
	case "":
		category := in.Category
		if category == "" {
			category = catalog.CategoryAll
		}
		products = s.catalog.ByCategory(category)
	case "sale":
		products = s.catalog.OnSale()
	case "deals":
		products = s.catalog.ChristmasDeals()
	case "featured":
		products = s.catalog.Featured()
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown filter %q", in.Filter)
	}
	return encode(productsResponse{Products: nonNil(products)})
}

func (s *GRPCServer) Search(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in searchRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}
	products := s.catalog.Search(catalog.Query{Text: in.Text, Category: in.Category, Sort: in.Sort})
	return encode(productsResponse{Products: nonNil(products)})
}

func (s *GRPCServer) ToggleWishlist(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in wishlistRequest
	if err := decode(req, &in); err != nil {
		return nil, err
	}
	p, err := s.product(in.ProductID)
	if err != nil {
		return nil, err
	}

	added, err := s.stores.Wishlist.Toggle(ctx, p)
	if err != nil {
		return nil, mapError(err)
	}
	return encode(wishlistResponse{Added: &added, Items: nonNil(s.stores.Wishlist.Items())})
}

func (s *GRPCServer) GetWishlist(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return encode(wishlistResponse{Items: nonNil(s.stores.Wishlist.Items())})
}

func (s *GRPCServer) cartView() cartResponse {
	cart := s.stores.Cart
	return cartResponse{
		Items:      nonNil(cart.Items()),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

func (s *GRPCServer) product(id string) (models.Product, error) {
	p, ok := s.catalog.ByID(id)
	if !ok {
		return models.Product{}, status.Errorf(codes.NotFound, "product %q not found", id)
	}
	return p, nil
}

// checkSize requires a listed size for sized products and no size otherwise.
func checkSize(p models.Product, size string) error {
	switch {
	case len(p.Sizes) > 0 && size == "":
		return status.Error(codes.InvalidArgument, "Please select a size")
	case size != "" && !p.HasSize(size):
		return status.Errorf(codes.InvalidArgument, "size %q is not available for %s", size, p.Name)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
