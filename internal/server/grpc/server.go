package grpc

import (
	"context"
	"net"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/services"
)

// Options configures a GRPCServer.
type Options struct {
	Address   string
	SecretKey string
	TokenTTL  time.Duration
	// AuthRate limits Login and Signup calls per second; 0 disables it.
	AuthRate  float64
	AuthBurst int
}

type GRPCServer struct {
	address   string
	stores    *services.Stores
	catalog   *catalog.Catalog
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	limiter   *rate.Limiter
}

func NewGRPCServer(opts Options, l logging.Logger, stores *services.Stores, cat *catalog.Catalog) *GRPCServer {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.AuthRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.AuthRate), max(opts.AuthBurst, 1))
	}
	return &GRPCServer{
		address:   opts.Address,
		stores:    stores,
		catalog:   cat,
		logger:    l.With("module", "grpc_server"),
		jwtSecret: []byte(opts.SecretKey),
		tokenTTL:  opts.TokenTTL,
		limiter:   limiter,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and the
// storefront service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.recoveryInterceptor,
		s.loggingInterceptor,
		s.rateLimitInterceptor,
		s.accessTokenInterceptor,
	))
	srv.RegisterService(&serviceDesc, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}
