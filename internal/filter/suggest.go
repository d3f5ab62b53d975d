package filter

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the name of the record that comes nearest to text, for a
// "did you mean" hint when a name query matches nothing. Names are compared
// case-insensitively against every window of the query's length, so a typo
// anywhere inside a long name still counts. ok is false when no name is
// within a third of the query's length in edits, so queries shorter than
// three runes never get a hint.
func Closest[T Record](text string, records []T) (name string, ok bool) {
	q := strings.ToLower(text)
	n := len([]rune(q))
	if n == 0 {
		return "", false
	}
	best := n/3 + 1
	for _, r := range records {
		if d := windowDistance(q, strings.ToLower(r.Name()), n); d < best {
			best, name, ok = d, r.Name(), true
		}
	}
	return name, ok
}

// windowDistance is the smallest edit distance between q and any n-rune
// window of name.
func windowDistance(q, name string, n int) int {
	runes := []rune(name)
	if len(runes) <= n {
		return levenshtein.ComputeDistance(q, name)
	}
	best := n
	for i := 0; i+n <= len(runes); i++ {
		if d := levenshtein.ComputeDistance(q, string(runes[i:i+n])); d < best {
			best = d
		}
	}
	return best
}
