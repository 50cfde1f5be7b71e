package cache

import "strconv"

// Keyer produces cache keys.
type Keyer interface {
	// EntryKey returns the key for one generated beta entry.
	EntryKey(opts EntryKeyOpts) string
}

// EntryKeyOpts lists every input that determines a generated entry.
type EntryKeyOpts struct {
	N         int     `json:"n"`
	K         int     `json:"k"`
	Beta      float64 `json:"beta"`
	Seed      uint64  `json:"seed"`
	Parallel  bool    `json:"parallel"`
	Index     int     `json:"index"`
	Empirical bool    `json:"empirical"`

	// Preceding lists the betas generated earlier from the same random
	// stream. Sequential runs share one source across betas, so an entry
	// depends on everything drawn before it.
	Preceding []float64 `json:"preceding,omitempty"`
}

// DefaultKeyer hashes the key options into a fixed-length key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// EntryKey returns "entry:<n>:<k>:<sha256>".
//
// n and k stay readable so that all entries of one lattice can be found by
// prefix; the remaining options are hashed.
func (DefaultKeyer) EntryKey(opts EntryKeyOpts) string {
	return hashKey("entry:"+strconv.Itoa(opts.N)+":"+strconv.Itoa(opts.K), opts)
}

var _ Keyer = DefaultKeyer{}
