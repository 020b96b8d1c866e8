package zipkit

import "log/slog"

// unpackConfig holds configuration for archive parsing.
type unpackConfig struct {
	logger       *slog.Logger
	maxEntries   int
	maxEntrySize uint64
}

// UnpackOption configures archive parsing.
type UnpackOption func(*unpackConfig)

// UnpackWithLogger sets a logger for unpack operations. By default
// nothing is logged.
func UnpackWithLogger(logger *slog.Logger) UnpackOption {
	return func(cfg *unpackConfig) {
		cfg.logger = logger
	}
}

// UnpackWithMaxEntries limits how many entries are accepted before the
// operation fails with ErrTooManyEntries. Zero means no limit.
func UnpackWithMaxEntries(n int) UnpackOption {
	return func(cfg *unpackConfig) {
		cfg.maxEntries = n
	}
}

// UnpackWithMaxEntrySize limits the uncompressed size of a single entry,
// guarding against decompression bombs in untrusted input. Entries over
// the limit fail with ErrEntryTooLarge. Zero means no limit.
func UnpackWithMaxEntrySize(limit uint64) UnpackOption {
	return func(cfg *unpackConfig) {
		cfg.maxEntrySize = limit
	}
}
