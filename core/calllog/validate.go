package calllog

import "telephone-bill/core/types"

// DropInvalid removes records that end before they start, keeping order.
// It reuses the backing array of records and returns how many were removed.
func DropInvalid(records []types.CallRecord) ([]types.CallRecord, int) {
	kept := records[:0]
	for _, r := range records {
		if r.Valid() {
			kept = append(kept, r)
		}
	}
	return kept, len(records) - len(kept)
}
