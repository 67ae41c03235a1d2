package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/models"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t, Options{Address: "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	srv := newTestServer(t, Options{Address: "127.0.0.1:99999"})
	require.Error(t, srv.Run(context.Background()))
}

func TestPing(t *testing.T) {
	h := startHarness(t, Options{})
	var out map[string]string
	require.NoError(t, h.call(context.Background(), "Ping", "", obj{}, &out))
	assert.Equal(t, "OK", out["status"])
}

func TestSignupLoginLogoutFlow(t *testing.T) {
	ctx := context.Background()
	h := startHarness(t, Options{})

	token := h.signup(t, "Ana", "ana@x.com", "pw1")

	var dup authResponse
	require.NoError(t, h.call(ctx, "Signup", "", obj{"name": "X", "email": "ana@x.com", "password": "p"}, &dup))
	assert.False(t, dup.OK)
	assert.Equal(t, "Email already in use", dup.Message)
	assert.Empty(t, dup.AccessToken)

	var who currentUserResponse
	require.NoError(t, h.call(ctx, "CurrentUser", "", obj{}, &who))
	assert.Equal(t, "authenticated", who.State)
	require.NotNil(t, who.Identity)
	assert.Equal(t, "Ana", who.Identity.Name)

	require.NoError(t, h.call(ctx, "Logout", token, obj{}, nil))
	require.NoError(t, h.call(ctx, "CurrentUser", "", obj{}, &who))
	assert.Equal(t, "unauthenticated", who.State)
	assert.Nil(t, who.Identity)

	var bad authResponse
	require.NoError(t, h.call(ctx, "Login", "", obj{"email": "ana@x.com", "password": "nope"}, &bad))
	assert.False(t, bad.OK)
	assert.Equal(t, "Invalid email or password", bad.Message)

	var good authResponse
	require.NoError(t, h.call(ctx, "Login", "", obj{"email": "ana@x.com", "password": "pw1"}, &good))
	assert.True(t, good.OK)
	assert.NotEmpty(t, good.AccessToken)
}

func TestCartOverGRPC(t *testing.T) {
	ctx := context.Background()
	h := startHarness(t, Options{})
	token := h.signup(t, "Ana", "ana@x.com", "pw1")

	var cart cartResponse
	require.NoError(t, h.call(ctx, "AddItem", token, obj{"productId": "clothing-1", "size": "M", "quantity": 1}, &cart))
	require.NotNil(t, cart.Merged)
	assert.False(t, *cart.Merged)

	require.NoError(t, h.call(ctx, "AddItem", token, obj{"productId": "clothing-1", "size": "M", "quantity": 2}, &cart))
	assert.True(t, *cart.Merged)
	assert.Equal(t, 3, cart.Quantity)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Holiday Sweater", cart.Items[0].Name)
	assert.InDelta(t, 3*399.0, cart.TotalPrice, 1e-9)

	require.NoError(t, h.call(ctx, "AddItem", token, obj{"productId": "toys-1"}, &cart))
	assert.Equal(t, 4, cart.TotalItems)

	require.NoError(t, h.call(ctx, "UpdateQuantity", token, obj{"productId": "toys-1", "quantity": 5}, &cart))
	assert.Equal(t, 8, cart.TotalItems)

	err := h.call(ctx, "UpdateQuantity", token, obj{"productId": "toys-1", "quantity": 0}, nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	require.NoError(t, h.call(ctx, "RemoveItem", token, obj{"productId": "clothing-1", "size": "M"}, &cart))
	require.Len(t, cart.Items, 1)

	require.NoError(t, h.call(ctx, "GetCart", token, obj{}, &cart))
	assert.Equal(t, 5, cart.TotalItems)

	require.NoError(t, h.call(ctx, "ClearCart", token, obj{}, &cart))
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
}

func TestAddItem_Validation(t *testing.T) {
	ctx := context.Background()
	h := startHarness(t, Options{})
	token := h.signup(t, "Ana", "ana@x.com", "pw1")

	tests := []struct {
		name string
		req  obj
		code codes.Code
	}{
		{"unknown product", obj{"productId": "nope"}, codes.NotFound},
		{"size required", obj{"productId": "clothing-1"}, codes.InvalidArgument},
		{"size not offered", obj{"productId": "clothing-1", "size": "XXL"}, codes.InvalidArgument},
		{"size on unsized product", obj{"productId": "toys-1", "size": "M"}, codes.InvalidArgument},
		{"negative quantity", obj{"productId": "toys-1", "quantity": -1}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.call(ctx, "AddItem", token, tt.req, nil)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
	assert.Empty(t, h.stores.Cart.Items())
}

func TestAccessTokenGate(t *testing.T) {
	ctx := context.Background()
	h := startHarness(t, Options{})
	anaToken := h.signup(t, "Ana", "ana@x.com", "pw1")

	err := h.call(ctx, "GetCart", "", obj{}, nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err), "missing token")

	err = h.call(ctx, "GetCart", "garbage", obj{}, nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err), "invalid token")

	require.NoError(t, h.call(ctx, "Logout", anaToken, obj{}, nil))
	bobToken := h.signup(t, "Bob", "bob@x.com", "pw2")

	err = h.call(ctx, "AddItem", anaToken, obj{"productId": "toys-1"}, nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err), "token of an inactive identity")

	require.NoError(t, h.call(ctx, "GetCart", bobToken, obj{}, nil))

	var products productsResponse
	require.NoError(t, h.call(ctx, "ListProducts", "", obj{"category": "toys"}, &products), "catalog is public")
	assert.Len(t, products.Products, 6)
}

func TestAccessTokenGate_Expired(t *testing.T) {
	h := startHarness(t, Options{TokenTTL: -time.Second})
	token := h.signup(t, "Ana", "ana@x.com", "pw1")

	err := h.call(context.Background(), "GetCart", token, obj{}, nil)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, "token expired", st.Message())
}

func TestRateLimit(t *testing.T) {
	ctx := context.Background()
	h := startHarness(t, Options{AuthRate: 0.001, AuthBurst: 2})

	req := obj{"email": "nobody@x.com", "password": "x"}
	require.NoError(t, h.call(ctx, "Login", "", req, nil))
	require.NoError(t, h.call(ctx, "Login", "", req, nil))

	err := h.call(ctx, "Login", "", req, nil)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	require.NoError(t, h.call(ctx, "Ping", "", obj{}, nil), "other methods are not limited")
}

func TestCheckoutOverGRPC(t *testing.T) {
	ctx := context.Background()
	h := startHarness(t, Options{})
	token := h.signup(t, "Ana", "ana@x.com", "pw1")

	err := h.call(ctx, "Checkout", token, obj{"phone": "1", "address": "a", "city": "c", "paymentMethod": "cod"}, nil)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "empty cart")

	require.NoError(t, h.call(ctx, "AddItem", token, obj{"productId": "toys-1", "quantity": 2}, nil))

	var res checkoutResponse
	require.NoError(t, h.call(ctx, "Checkout", token, obj{"paymentMethod": "bank"}, &res))
	assert.Nil(t, res.Receipt)
	assert.Contains(t, res.Errors, "bankName")
	assert.Contains(t, res.Errors, "phone")
	assert.NotContains(t, res.Errors, "fullName", "name is prefilled from the session")

	res = checkoutResponse{}
	require.NoError(t, h.call(ctx, "Checkout", token, obj{"phone": "0917", "address": "12 Mabini", "city": "Manila", "paymentMethod": "cod"}, &res))
	require.NotNil(t, res.Receipt)
	assert.Equal(t, 2, res.Receipt.TotalItems)
	assert.InDelta(t, 498.0, res.Receipt.TotalPrice, 1e-9)
	assert.Equal(t, models.PaymentCOD, res.Receipt.PaymentMethod)
	assert.Empty(t, h.stores.Cart.Items())
}

func TestCatalogAndWishlist(t *testing.T) {
	ctx := context.Background()
	h := startHarness(t, Options{})

	var products productsResponse
	require.NoError(t, h.call(ctx, "Search", "", obj{"text": "christmas", "sort": "price-high"}, &products))
	require.Len(t, products.Products, 3)
	assert.Equal(t, "home-decor-1", products.Products[2].ID, "cheapest last")

	require.NoError(t, h.call(ctx, "ListProducts", "", obj{"filter": "featured"}, &products))
	assert.Equal(t, "electronics-7", products.Products[0].ID)

	err := h.call(ctx, "ListProducts", "", obj{"filter": "clearance"}, nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	token := h.signup(t, "Ana", "ana@x.com", "pw1")
	var wl wishlistResponse
	require.NoError(t, h.call(ctx, "ToggleWishlist", token, obj{"productId": "electronics-7"}, &wl))
	require.NotNil(t, wl.Added)
	assert.True(t, *wl.Added)
	require.Len(t, wl.Items, 1)

	require.NoError(t, h.call(ctx, "ToggleWishlist", token, obj{"productId": "electronics-7"}, &wl))
	assert.False(t, *wl.Added)

	require.NoError(t, h.call(ctx, "GetWishlist", token, obj{}, &wl))
	assert.Empty(t, wl.Items)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.Equal(t, codes.Internal, status.Code(mapError(assert.AnError)))
	assert.Equal(t, codes.Canceled, status.Code(mapError(context.Canceled)))
	passthrough := status.Error(codes.NotFound, "x")
	assert.Equal(t, passthrough, mapError(passthrough))
}

func TestRecoveryInterceptor(t *testing.T) {
	s := newTestServer(t, Options{})
	info := &grpc.UnaryServerInfo{FullMethod: FullMethod("AddItem")}

	_, err := s.recoveryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic(common.ErrNoActiveIdentity)
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.recoveryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})
	assert.Equal(t, codes.Internal, status.Code(err))
}
