package ring

// ErrorPolicy selects how construction reports an unusable capacity.
type ErrorPolicy int

const (
	// FailFast returns an error from New and Init.
	FailFast ErrorPolicy = iota
	// SilentInvalid leaves the buffer unbound and returns no error. Valid
	// reports false and every operation is a no-op.
	SilentInvalid
)

// String returns the policy name.
func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case SilentInvalid:
		return "silent-invalid"
	default:
		return "unknown"
	}
}

// Config holds the construction settings of a Buffer.
type Config struct {
	Policy ErrorPolicy
	// SafeErase zero-fills the storage on Init and on every Clear.
	SafeErase bool
	// ZeroOnInit zero-fills the storage on Init only. Clear keeps the stale
	// contents unless SafeErase is also set.
	ZeroOnInit bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{Policy: FailFast}
}

// WithErrorPolicy sets the construction error policy.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(cfg *Config) {
		if p == FailFast || p == SilentInvalid {
			cfg.Policy = p
		}
	}
}

// WithSafeErase enables or disables zero-filling on Init and Clear.
func WithSafeErase(enabled bool) Option {
	return func(cfg *Config) {
		cfg.SafeErase = enabled
	}
}

// WithZeroOnInit enables or disables zero-filling when storage is bound.
func WithZeroOnInit(enabled bool) Option {
	return func(cfg *Config) {
		cfg.ZeroOnInit = enabled
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
