package quiz

import "strings"

// Normalize lowercases s and keeps only ASCII letters and digits.
func Normalize(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// IsMatch reports whether input is close enough to reference.
//
// Both sides are normalized first. The score is the number of positional mismatches over the
// shared prefix length plus the length difference; references longer than six characters
// tolerate a score of 2, shorter ones a score of 1. This is not an edit distance: an insertion
// near the front shifts every following position.
func IsMatch(input, reference string) bool {
	u, a := Normalize(input), Normalize(reference)
	if u == "" || a == "" {
		return false
	}
	if u == a {
		return true
	}

	diff := 0
	for i := 0; i < min(len(u), len(a)); i++ {
		if u[i] != a[i] {
			diff++
		}
	}
	diff += abs(len(u) - len(a))

	tolerance := 1
	if len(a) > 6 {
		tolerance = 2
	}
	return diff <= tolerance
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
