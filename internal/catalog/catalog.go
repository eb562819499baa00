// Package catalog holds the static registry of benchmarked algorithms:
// their identifiers inside the external executable, display metadata,
// theoretical complexity and applicability constraints.
package catalog

// Algorithm describes one matcher exposed by the external executable.
// The numeric ID is the identifier the executable expects after
// --benchmark; it is part of the external contract and never changes.
type Algorithm struct {
	ID         int
	Key        string
	Name       string
	Complexity string
	Color      string

	// MaxPatternLen caps the pattern lengths the algorithm can handle.
	// Zero means no ceiling.
	MaxPatternLen int
}

// Applicable reports whether the algorithm can run against a pattern of
// the given length.
func (a Algorithm) Applicable(patternLen int) bool {
	return a.MaxPatternLen == 0 || patternLen <= a.MaxPatternLen
}

// MemoryBytes is the closed-form theoretical memory footprint of the
// algorithm's auxiliary structures for the given input dimensions. It is
// a static model, not a runtime measurement.
func (a Algorithm) MemoryBytes(textLen, patternLen int) int64 {
	n := int64(textLen)
	m := int64(patternLen)
	switch a.Key {
	case "kmp":
		return m * 4 // LPS array
	case "boyer-moore":
		return (m + 256) * 4 // bad-character table + good-suffix shifts
	case "suffix-array":
		return n * 4
	case "shift-or":
		return 256 * 8 // per-symbol bitmasks
	case "z-algorithm":
		return (n + m) * 4 // Z array over pattern$text
	default:
		return 0 // naive, rabin-karp run in constant space
	}
}

// Default returns the immutable algorithm registry. Build it once at
// process start and pass it explicitly to whoever needs it.
func Default() []Algorithm {
	return []Algorithm{
		{ID: 15, Key: "naive", Name: "Naive", Complexity: "O(nm)", Color: "#FF6B6B"},
		{ID: 3, Key: "kmp", Name: "KMP", Complexity: "O(n+m)", Color: "#4ECDC4"},
		{ID: 4, Key: "boyer-moore", Name: "Boyer-Moore", Complexity: "O(n/m)", Color: "#45B7D1"},
		{ID: 5, Key: "suffix-array", Name: "Suffix Array", Complexity: "O(m log n)", Color: "#96CEB4"},
		{ID: 6, Key: "shift-or", Name: "Shift-Or", Complexity: "O(n)", Color: "#FFEAA7", MaxPatternLen: 64},
		{ID: 11, Key: "rabin-karp", Name: "Rabin-Karp", Complexity: "O(n+m)", Color: "#DFE6E9"},
		{ID: 12, Key: "z-algorithm", Name: "Z-Algorithm", Complexity: "O(n+m)", Color: "#A29BFE"},
	}
}

// Find looks an algorithm up by its key.
func Find(algos []Algorithm, key string) (Algorithm, bool) {
	for _, a := range algos {
		if a.Key == key {
			return a, true
		}
	}
	return Algorithm{}, false
}
