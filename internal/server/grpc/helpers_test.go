package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/kvstore"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/services"
)

const testSecret = "test-secret"

type harness struct {
	server *GRPCServer
	stores *services.Stores
	store  *kvstore.MemoryStore
	conn   *grpc.ClientConn
}

func newTestServer(t *testing.T, opts Options) *GRPCServer {
	t.Helper()
	stores, err := services.NewStores(context.Background(), kvstore.NewMemoryStore())
	require.NoError(t, err)
	if opts.SecretKey == "" {
		opts.SecretKey = testSecret
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}
	return NewGRPCServer(opts, logging.Nop{}, stores, catalog.Default())
}

// startHarness serves the storefront over an in-memory listener.
func startHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	store := kvstore.NewMemoryStore()
	stores, err := services.NewStores(context.Background(), store)
	require.NoError(t, err)

	if opts.SecretKey == "" {
		opts.SecretKey = testSecret
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}
	s := NewGRPCServer(opts, logging.Nop{}, stores, catalog.Default())

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		require.NoError(t, <-done)
	})

	return &harness{server: s, stores: stores, store: store, conn: conn}
}

// call invokes a storefront method with a JSON-shaped request and decodes
// the JSON-shaped response into out (if non-nil).
func (h *harness) call(ctx context.Context, name string, token string, req any, out any) error {
	in, err := Encode(req)
	if err != nil {
		return err
	}
	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
	}
	resp := &structpb.Struct{}
	if err := h.conn.Invoke(ctx, FullMethod(name), in, resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return Decode(resp, out)
}

type obj = map[string]any

func (h *harness) signup(t *testing.T, name, email, password string) string {
	t.Helper()
	var res authResponse
	require.NoError(t, h.call(context.Background(), "Signup", "", obj{"name": name, "email": email, "password": password}, &res))
	require.True(t, res.OK, res.Message)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}
