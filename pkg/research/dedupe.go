package research

// MergeSources appends newSources to accumulated and drops every entry
// whose URL was already seen, keeping the first occurrence. The input
// slices are not modified.
func MergeSources(accumulated, newSources []Source) []Source {
	merged := make([]Source, 0, len(accumulated)+len(newSources))
	seen := make(map[string]bool, len(accumulated)+len(newSources))

	for _, s := range append(append([]Source{}, accumulated...), newSources...) {
		if seen[s.URL] {
			continue
		}
		seen[s.URL] = true
		merged = append(merged, s)
	}

	return merged
}
