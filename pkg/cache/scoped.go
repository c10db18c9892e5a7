package cache

// ScopedKeyer wraps a Keyer with a prefix so that several consumers can
// share one backend without colliding:
//
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "server:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey generates a prefixed result key.
func (k *ScopedKeyer) ResultKey(scenarioHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(scenarioHash, opts)
}

// SweepKey generates a prefixed sweep key.
func (k *ScopedKeyer) SweepKey(scenarioHash string, opts SweepKeyOpts) string {
	return k.prefix + k.inner.SweepKey(scenarioHash, opts)
}
