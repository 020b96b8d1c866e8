package zipkit

// defaultExtractWorkers is used when no ExtractWithWorkers option is set.
const defaultExtractWorkers = 4

// extractConfig holds configuration for extraction.
type extractConfig struct {
	overwrite  bool
	workers    int
	unpackOpts []UnpackOption
}

// ExtractOption configures Extract.
type ExtractOption func(*extractConfig)

// ExtractWithOverwrite allows overwriting existing files.
// By default, existing files are skipped.
func ExtractWithOverwrite(overwrite bool) ExtractOption {
	return func(cfg *extractConfig) {
		cfg.overwrite = overwrite
	}
}

// ExtractWithWorkers sets the number of concurrent file writers.
// Values < 1 are treated as 1.
func ExtractWithWorkers(n int) ExtractOption {
	return func(cfg *extractConfig) {
		if n < 1 {
			n = 1
		}
		cfg.workers = n
	}
}

// ExtractWithUnpackOptions forwards options to the underlying unpack,
// such as entry count and size limits for untrusted input.
func ExtractWithUnpackOptions(opts ...UnpackOption) ExtractOption {
	return func(cfg *extractConfig) {
		cfg.unpackOpts = append(cfg.unpackOpts, opts...)
	}
}
