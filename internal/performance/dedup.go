package performance

// Dedup collapses records that share the same identity tuple
// (date, time, status, href) into one. The first occurrence of each identity
// wins and the relative order of survivors is preserved, so the operation is
// stable and idempotent.
func Dedup(records []Record) []Record {
	seen := make(map[string]bool, len(records))
	unique := make([]Record, 0, len(records))
	for _, rec := range records {
		key := rec.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, rec)
	}
	return unique
}
