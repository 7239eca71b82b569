package search

// LevenshteinDistance is the classic single-character-edit distance between
// two strings (insert, delete, substitute, each at unit cost), computed over
// runes with a full dynamic-programming matrix.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(rb)+1)
	for j := range matrix {
		matrix[j] = make([]int, len(ra)+1)
		matrix[j][0] = j
	}
	for i := 0; i <= len(ra); i++ {
		matrix[0][i] = i
	}

	for j := 1; j <= len(rb); j++ {
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			deletion := matrix[j][i-1] + 1
			insertion := matrix[j-1][i] + 1
			substitution := matrix[j-1][i-1] + cost

			best := deletion
			if insertion < best {
				best = insertion
			}
			if substitution < best {
				best = substitution
			}
			matrix[j][i] = best
		}
	}

	return matrix[len(rb)][len(ra)]
}

// Similarity maps edit distance into [0,1]: (maxLen-distance)/maxLen.
// Two empty strings are defined as identical (1.0).
func Similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	return float64(maxLen-LevenshteinDistance(a, b)) / float64(maxLen)
}
