package platform

import (
	"log/slog"

	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/timeutil"
)

// options holds the internal configuration for the satchel service.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	clock        timeutil.Clock
	countryCode  string
	autoInit     bool
	mustExist    bool
	errorHandler func(error)
}

// Option defines a functional option for configuring satchel.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoInit: true,
	}
}

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a custom storage adapter (e.g. a mock).
// If provided, the default file-backed adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithClock injects the time source used by the birthday calculator.
func WithClock(clock timeutil.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithCountryCode sets the country code used to normalize 10-digit
// national phone numbers.
func WithCountryCode(code string) Option {
	return func(o *options) {
		o.countryCode = code
	}
}

// WithAutoInit enables creating the data directory when missing.
// Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist requires the data file to already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring inside
// the watch loop.
func WithWatcherErrorHandler(handler func(error)) Option {
	return func(o *options) {
		o.errorHandler = handler
	}
}
