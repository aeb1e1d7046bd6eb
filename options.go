package soa

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultMaxBytes is the largest allocation a table performs by default.
// Larger requests are considered a bug and panic.
const DefaultMaxBytes uintptr = 1 << 40

type options struct {
	capacity int
	logger   *zap.Logger
	maxBytes uintptr
	names    []string
}

type Option func(opts *options)

// WithCapacity reserves room for the given number of rows up front.
func WithCapacity(capacity int) Option {
	return func(opts *options) {
		opts.capacity = capacity
	}
}

// WithLogger overwrites the logger of a single table.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithMaxBytes sets the allocation size above which a table panics.
func WithMaxBytes(maxBytes uintptr) Option {
	return func(opts *options) {
		opts.maxBytes = maxBytes
	}
}

// Named assigns symbolic names to the columns of a typed vector, in column order.
// An empty string leaves a column unnamed. The option is ignored by NewTable,
// as a Schema already carries the names of its columns.
func Named(names ...string) Option {
	return func(opts *options) {
		opts.names = names
	}
}

func applyOptions(opts []Option) options {
	result := options{
		maxBytes: DefaultMaxBytes,
	}

	for _, opt := range opts {
		opt(&result)
	}

	if result.capacity < 0 {
		panic("capacity must not be negative")
	}

	return result
}

// columnNames returns the names configured using Named, padded to count columns.
func columnNames(count int, opts []Option) []string {
	names := applyOptions(opts).names
	if len(names) > count {
		panic(fmt.Sprintf("got %d names for %d columns", len(names), count))
	}

	padded := make([]string, count)
	copy(padded, names)

	return padded
}
