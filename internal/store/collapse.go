package store

import (
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// Collapse keeps one staged record per (contract, token), in first-seen
// order. A record linked to an artwork wins over unlinked ones, then the most
// recently updated.
func Collapse(records []schema.ArtworkIndex) []schema.ArtworkIndex {
	best := make(map[domain.TokenKey]int, len(records))
	out := make([]schema.ArtworkIndex, 0, len(records))

	for _, r := range records {
		key := r.TokenKey()
		i, ok := best[key]
		if !ok {
			best[key] = len(out)
			out = append(out, r)
			continue
		}
		if preferred(r, out[i]) {
			out[i] = r
		}
	}
	return out
}

func preferred(candidate, current schema.ArtworkIndex) bool {
	if (candidate.ArtworkID != nil) != (current.ArtworkID != nil) {
		return candidate.ArtworkID != nil
	}
	return candidate.UpdatedAt.After(current.UpdatedAt)
}
