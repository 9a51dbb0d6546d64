package mime

// Set is an ordered collection of distinct MIME types. A nil Set means no
// filter was given, which is different from an empty one.
type Set []string

// NewSet builds a Set from the given types, dropping duplicates while keeping
// first-seen order. A nil argument yields an empty, non-nil Set.
func NewSet(types ...string) Set {
	s := make(Set, 0, len(types))
	for _, t := range types {
		if !s.Contains(t) {
			s = append(s, t)
		}
	}
	return s
}

// Contains reports whether the type is in the set.
func (s Set) Contains(mimeType string) bool {
	for _, t := range s {
		if t == mimeType {
			return true
		}
	}
	return false
}
