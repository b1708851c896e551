package utils

import "strconv"

// ParseID parses a positive int64 identifier.
// ok is false for non numeric, zero or negative input.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// DistinctIDs drops repeated ids, keeping the first occurrence of each
func DistinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// MissingIDs returns the ids of want that are absent from have, in want order
func MissingIDs(want []int64, have map[int64]bool) []int64 {
	var missing []int64
	for _, id := range want {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
