package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/logging"
)

type options struct {
	notifier       Notifier
	logger         logging.Logger
	latency        time.Duration
	passwordScheme string
	newID          func() string
	now            func() time.Time
}

// Option configures a store.
type Option func(*options)

func defaultOptions() options {
	return options{
		notifier:       nopNotifier{},
		logger:         logging.Nop{},
		passwordScheme: PasswordPlain,
		newID:          func() string { return uuid.NewString() },
		now:            time.Now,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithNotifier(n Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLatency delays login and signup by d to mimic a remote call.
func WithLatency(d time.Duration) Option {
	return func(o *options) { o.latency = d }
}

// WithPasswordScheme selects how account passwords are stored and checked.
func WithPasswordScheme(scheme string) Option {
	return func(o *options) { o.passwordScheme = scheme }
}

// WithIDGenerator overrides the random part of new identity and order ids.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
