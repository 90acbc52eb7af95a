package pipeline

import "strings"

// Dedupe trims each raw transaction string, drops the ones that are empty
// after trimming, and removes exact duplicates. Comparison is case-sensitive
// with no normalization beyond the trim: two lines differing only in case
// stay distinct. First-seen order is preserved so downstream output is
// deterministic.
func Dedupe(raw []string) []string {
	return dedupe(raw, false)
}

// DedupeFold is the case-insensitive variant: lines differing only in case
// collapse onto the first-seen spelling.
func DedupeFold(raw []string) []string {
	return dedupe(raw, true)
}

func dedupe(raw []string, foldCase bool) []string {
	seen := make(map[string]struct{}, len(raw))
	unique := make([]string, 0, len(raw))

	for _, txn := range raw {
		txn = strings.TrimSpace(txn)
		if txn == "" {
			continue
		}

		key := txn
		if foldCase {
			key = strings.ToLower(key)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, txn)
	}

	return unique
}
