package helpers

// Ratio is original/compressed, reported as 0 when there is nothing
// compressed to divide by.
func Ratio(original, compressed int64) float64 {
	if compressed <= 0 {
		return 0
	}
	return float64(original) / float64(compressed)
}
