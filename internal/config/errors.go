package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrMissingAPIKey indicates that no node provider API key was supplied.
	ErrMissingAPIKey = errors.New("missing api key")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty DApp name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid wallet client settings
	// (for example, missing node URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrNegativeTimeout indicates a negative timeout in any source.
	ErrNegativeTimeout = errors.New("timeouts must not be negative")
)
