package cache

// ScopedKeyer wraps a Keyer with a prefix so that several runs (or users of
// a shared Redis) keep separate namespaces.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "smallworld:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer falls back to [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// EntryKey returns the prefixed entry key.
func (k *ScopedKeyer) EntryKey(opts EntryKeyOpts) string {
	return k.prefix + k.inner.EntryKey(opts)
}
