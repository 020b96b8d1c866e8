package zipkit

import (
	"log/slog"
	"time"
)

// packConfig holds configuration for archive assembly.
type packConfig struct {
	logger    *slog.Logger
	modTime   time.Time
	comment   string
	checksums bool
}

// PackOption configures archive assembly.
type PackOption func(*packConfig)

// PackWithLogger sets a logger for pack operations. By default nothing
// is logged.
func PackWithLogger(logger *slog.Logger) PackOption {
	return func(cfg *packConfig) {
		cfg.logger = logger
	}
}

// PackWithModTime stamps every entry with the given modification time.
// By default timestamp fields are zeroed, which keeps output byte-stable
// across runs.
func PackWithModTime(t time.Time) PackOption {
	return func(cfg *packConfig) {
		cfg.modTime = t
	}
}

// PackWithComment sets the archive-level comment stored in the trailer.
func PackWithComment(comment string) PackOption {
	return func(cfg *packConfig) {
		cfg.comment = comment
	}
}

// PackWithoutChecksums leaves every CRC-32 field zeroed instead of
// computing real checksums.
//
// The result is readable by permissive readers but fails integrity
// verification in strict ones; use only when byte-compatibility with
// checksum-less writers matters.
func PackWithoutChecksums() PackOption {
	return func(cfg *packConfig) {
		cfg.checksums = false
	}
}
