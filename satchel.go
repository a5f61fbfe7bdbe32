package satchel

import (
	"log/slog"

	"github.com/aretw0/satchel/internal/platform"
	"github.com/aretw0/satchel/pkg/assistant"
	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/timeutil"
)

// --- Types ---

// Service is the public alias for the assistant service.
type Service = assistant.Service

// ContactParams carries raw user input for a contact record.
type ContactParams = assistant.ContactParams

// Upcoming pairs a contact with the days remaining until its next birthday.
type Upcoming = assistant.Upcoming

// Result bundles contact and note matches for a global search.
type Result = assistant.Result

// --- Configuration ---

// Option defines a functional option for configuring satchel.
type Option = platform.Option

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithClock injects the time source used by the birthday calculator.
func WithClock(clock timeutil.Clock) Option {
	return platform.WithClock(clock)
}

// WithCountryCode sets the country code used to normalize national phone
// numbers.
func WithCountryCode(code string) Option {
	return platform.WithCountryCode(code)
}

// WithAutoInit enables creating the data directory when missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist requires the data file to already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithWatcherErrorHandler registers a callback for watch loop errors.
func WithWatcherErrorHandler(handler func(error)) Option {
	return platform.WithWatcherErrorHandler(handler)
}

// --- Factory ---

// New creates a new assistant Service backed by the snapshot file at path.
func New(path string, opts ...Option) (*assistant.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly, without building a service.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}
