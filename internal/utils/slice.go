package utils

// StringSliceToMap converts a string slice to a map for fast lookups.
func StringSliceToMap(items []string) map[string]bool {
	m := make(map[string]bool)
	for _, item := range items {
		m[item] = true
	}
	return m
}

// Deduplicate removes duplicate items from a slice using a key function.
func Deduplicate[T any](items []T, keyFunc func(T) string) []T {
	seen := make(map[string]bool)
	var deduplicated []T
	for _, item := range items {
		key := keyFunc(item)
		if !seen[key] {
			deduplicated = append(deduplicated, item)
			seen[key] = true
		}
	}
	return deduplicated
}
