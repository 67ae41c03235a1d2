package client

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/models"

	gs "github.com/dmitrijs2005/storefront/internal/server/grpc"
)

// AuthResult is the outcome of Login or Signup. A rejected attempt has
// OK false and a user-facing Message.
type AuthResult struct {
	OK       bool             `json:"ok"`
	Message  string           `json:"message"`
	Identity *models.Identity `json:"identity"`
}

type Cart struct {
	Items      []models.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

// CheckoutResult carries either a receipt or per-field validation errors.
type CheckoutResult struct {
	Receipt *models.Receipt   `json:"receipt"`
	Errors  map[string]string `json:"errors"`
}

// GRPCClient talks to storefrontd. It keeps the access token from the last
// successful Login or Signup and attaches it to every call.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects to endpointURL. Extra dial options are appended
// after the defaults (insecure transport and the token interceptor).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) call(ctx context.Context, name string, req, out any) error {
	if req == nil {
		req = struct{}{}
	}
	in, err := gs.Encode(req)
	if err != nil {
		return err
	}

	resp := &structpb.Struct{}
	if err := s.conn.Invoke(ctx, gs.FullMethod(name), in, resp); err != nil {
		return s.mapError(err)
	}
	if out == nil {
		return nil
	}
	return gs.Decode(resp, out)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := s.call(ctx, "Ping", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Signup(ctx context.Context, name, email, password string) (AuthResult, error) {
	return s.authenticate(ctx, "Signup", map[string]string{"name": name, "email": email, "password": password})
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (AuthResult, error) {
	return s.authenticate(ctx, "Login", map[string]string{"email": email, "password": password})
}

func (s *GRPCClient) authenticate(ctx context.Context, method string, req map[string]string) (AuthResult, error) {
	var resp struct {
		AuthResult
		AccessToken string `json:"access_token"`
	}
	if err := s.call(ctx, method, req, &resp); err != nil {
		return AuthResult{}, err
	}
	if resp.OK {
		s.setToken(resp.AccessToken)
	}
	return resp.AuthResult, nil
}

// Logout ends the server session and forgets the token.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if err := s.call(ctx, "Logout", nil, nil); err != nil {
		return err
	}
	s.setToken("")
	return nil
}

// CurrentUser returns the identity active on the server, or nil.
func (s *GRPCClient) CurrentUser(ctx context.Context) (*models.Identity, error) {
	var resp struct {
		Identity *models.Identity `json:"identity"`
	}
	if err := s.call(ctx, "CurrentUser", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Identity, nil
}

// Products lists a category (empty means all) or, when filter is set, one
// of "sale", "deals" or "featured".
func (s *GRPCClient) Products(ctx context.Context, category, filter string) ([]models.Product, error) {
	var resp struct {
		Products []models.Product `json:"products"`
	}
	err := s.call(ctx, "ListProducts", map[string]string{"category": category, "filter": filter}, &resp)
	return resp.Products, err
}

func (s *GRPCClient) Search(ctx context.Context, q catalog.Query) ([]models.Product, error) {
	var resp struct {
		Products []models.Product `json:"products"`
	}
	err := s.call(ctx, "Search", map[string]string{"text": q.Text, "category": q.Category, "sort": q.Sort}, &resp)
	return resp.Products, err
}

func (s *GRPCClient) Cart(ctx context.Context) (Cart, error) {
	var c Cart
	err := s.call(ctx, "GetCart", nil, &c)
	return c, err
}

func (s *GRPCClient) AddItem(ctx context.Context, productID, size string, quantity int) (Cart, error) {
	var c Cart
	err := s.call(ctx, "AddItem", lineRequest(productID, size, quantity), &c)
	return c, err
}

func (s *GRPCClient) RemoveItem(ctx context.Context, productID, size string) (Cart, error) {
	var c Cart
	err := s.call(ctx, "RemoveItem", lineRequest(productID, size, 0), &c)
	return c, err
}

func (s *GRPCClient) UpdateQuantity(ctx context.Context, productID, size string, quantity int) (Cart, error) {
	var c Cart
	err := s.call(ctx, "UpdateQuantity", lineRequest(productID, size, quantity), &c)
	return c, err
}

func (s *GRPCClient) ClearCart(ctx context.Context) (Cart, error) {
	var c Cart
	err := s.call(ctx, "ClearCart", nil, &c)
	return c, err
}

func (s *GRPCClient) Checkout(ctx context.Context, form models.CheckoutForm) (CheckoutResult, error) {
	var res CheckoutResult
	err := s.call(ctx, "Checkout", form, &res)
	return res, err
}

// ToggleWishlist reports whether the product was added (true) or removed.
func (s *GRPCClient) ToggleWishlist(ctx context.Context, productID string) (bool, error) {
	var resp struct {
		Added bool `json:"added"`
	}
	err := s.call(ctx, "ToggleWishlist", map[string]string{"productId": productID}, &resp)
	return resp.Added, err
}

func (s *GRPCClient) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var resp struct {
		Items []models.WishlistItem `json:"items"`
	}
	err := s.call(ctx, "GetWishlist", nil, &resp)
	return resp.Items, err
}

func lineRequest(productID, size string, quantity int) map[string]any {
	return map[string]any{"productId": productID, "size": size, "quantity": quantity}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.ResourceExhausted:
		return ErrRateLimited
	case codes.InvalidArgument, codes.NotFound, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
