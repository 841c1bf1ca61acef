package engine

// Option is an engine creation option.
type Option func(*Engine)

// WithZobrist configures the engine to use the given random seed for position hashing
// instead of the default seed of zero.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}
