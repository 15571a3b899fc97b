package combine

// Entry is a single item from a directory listing.
type Entry struct {
	Name    string
	Regular bool
}

// SkipSet holds the names that are never combined, however they are
// classified. Matching is by literal base name, not by file identity.
type SkipSet map[string]bool

// NewSkipSet returns a SkipSet containing the given names. Empty names are
// ignored, so an unknown program name never matches anything.
func NewSkipSet(names ...string) SkipSet {
	s := SkipSet{}
	for _, n := range names {
		if n != "" {
			s[n] = true
		}
	}
	return s
}

// Contains reports whether name is in the set.
func (s SkipSet) Contains(name string) bool {
	return s[name]
}

// Admits reports whether e is a candidate: a regular file whose name is not
// in the set.
func (s SkipSet) Admits(e Entry) bool {
	return e.Regular && !s.Contains(e.Name)
}
