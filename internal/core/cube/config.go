package cube

// Config holds step engine settings.
type Config struct {
	MaxHops       int  `json:"max_hops" yaml:"max_hops"`             // Face crossings allowed per step
	VerifyResults bool `json:"verify_results" yaml:"verify_results"` // Re-locate every step result
}

// DefaultConfig returns the settings used when no option overrides them.
func DefaultConfig() Config {
	return Config{
		MaxHops:       8,
		VerifyResults: true,
	}
}

// Option configures a Surface.
type Option func(*options)

type options struct {
	config    Config
	tracer    Tracer
	adjacency []AdjacencyEntry
}

// WithConfig replaces the whole Config.
func WithConfig(c Config) Option {
	return func(o *options) { o.config = c }
}

// WithMaxHops sets how many face crossings a single step may make.
func WithMaxHops(n int) Option {
	return func(o *options) { o.config.MaxHops = n }
}

// WithVerifyResults enables or disables re-locating step results.
func WithVerifyResults(enabled bool) Option {
	return func(o *options) { o.config.VerifyResults = enabled }
}

// WithTracer installs a hook receiving locate, hop and step events.
func WithTracer(t Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithAdjacency replaces the built-in transition table. The table is still
// validated by New.
func WithAdjacency(entries []AdjacencyEntry) Option {
	return func(o *options) { o.adjacency = entries }
}
