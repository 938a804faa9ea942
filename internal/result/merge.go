package result

import "sort"

// Merge combines previously persisted records with freshly scraped ones.
// Existing records are seeded first and always win over incoming records
// with the same identity key, preserving any out-of-band corrections to
// the persisted data. The merged collection is returned sorted by parsed
// date descending; ties keep insertion order so a single run is
// deterministic.
func Merge(existing, incoming []Record) []Record {
	byKey := make(map[string]Record, len(existing)+len(incoming))
	order := make([]string, 0, len(existing)+len(incoming))

	for _, r := range existing {
		k := r.Key()
		if _, ok := byKey[k]; ok {
			continue
		}
		byKey[k] = r
		order = append(order, k)
	}

	for _, r := range incoming {
		k := r.Key()
		if _, ok := byKey[k]; ok {
			continue
		}
		byKey[k] = r
		order = append(order, k)
	}

	merged := make([]Record, 0, len(order))
	for _, k := range order {
		merged = append(merged, byKey[k])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return SortValue(merged[i].Date) > SortValue(merged[j].Date)
	})

	return merged
}
