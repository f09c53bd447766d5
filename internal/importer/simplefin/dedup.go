package simplefin

import "github.com/finbridge/simplefin-import/internal/ledger"

// Duplicates reports whether two entries describe the same real-world
// transaction. Only transactions can be duplicates; balance assertions and
// mixed pairings never match.
//
// When both entries carry a SimpleFIN id the ids decide alone: re-imports of
// the same feed match even if incidental fields changed, while a statement
// import and a live feed with identical date and amount stay distinct. An
// entry with an id never collapses into one without. Only when neither side
// has an id does the comparison fall back to the date plus the first
// posting's account and amount.
func Duplicates(a, b ledger.Entry) bool {
	ta, ok := a.(*ledger.Transaction)
	if !ok {
		return false
	}
	tb, ok := b.(*ledger.Transaction)
	if !ok {
		return false
	}

	ida := ta.Meta[MetaKeyID]
	idb := tb.Meta[MetaKeyID]

	if ida != "" && idb != "" {
		return ida == idb
	}
	if ida != "" || idb != "" {
		return false
	}

	if ta.Date != tb.Date {
		return false
	}

	// Only the first posting carries identity; descriptions and counter
	// postings are ignored.
	if len(ta.Postings) > 0 && len(tb.Postings) > 0 {
		pa, pb := ta.Postings[0], tb.Postings[0]
		if pa.Account != pb.Account {
			return false
		}
		if !amountsEqual(pa.Amount, pb.Amount) {
			return false
		}
	}

	return true
}

func amountsEqual(a, b *ledger.Amount) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Merge returns the extracted entries that do not duplicate an entry in
// existing. Duplicates within the extracted batch itself are also dropped,
// so overlapping exports can be merged in one pass and re-imports stay
// idempotent.
func Merge(existing, extracted []ledger.Entry) []ledger.Entry {
	kept := make([]ledger.Entry, 0, len(extracted))
	for _, entry := range extracted {
		if duplicatesAny(entry, existing) || duplicatesAny(entry, kept) {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

func duplicatesAny(entry ledger.Entry, entries []ledger.Entry) bool {
	for _, prior := range entries {
		if Duplicates(entry, prior) {
			return true
		}
	}
	return false
}
