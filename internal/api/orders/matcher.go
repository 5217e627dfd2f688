package orders

import (
	"strings"

	"chitrakalakar/internal/domain/users"
)

// FallbackCap bounds the fallback list; a pagination limit, not a ranking.
const FallbackCap = 20

type MatchResult struct {
	Priority []string `json:"priority"`
	Fallback []string `json:"fallback"`
}

// MatchArtists splits the candidate set into a priority list (approved,
// active artists in the preferred city, compared case-insensitively) and a
// fallback list (every other approved, active artist, capped). No scoring,
// no distance; array order is preserved. The result is computed once at
// order creation and stored on the order.
func MatchArtists(candidates []users.User, preferredCity string) MatchResult {
	result := MatchResult{
		Priority: []string{},
		Fallback: []string{},
	}

	city := strings.TrimSpace(strings.ToLower(preferredCity))
	for _, artist := range candidates {
		if artist.Role != users.RoleArtist || !artist.IsApproved || !artist.IsActive {
			continue
		}

		if city != "" && strings.TrimSpace(strings.ToLower(artist.Location)) == city {
			result.Priority = append(result.Priority, artist.ID)
			continue
		}
		if len(result.Fallback) < FallbackCap {
			result.Fallback = append(result.Fallback, artist.ID)
		}
	}

	return result
}
