package league

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Rank orders standings by weekly XP descending, then participant id
// ascending, and assigns 1-based positions
func Rank(rows []domain.Standing) []domain.Standing {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WeeklyXP != rows[j].WeeklyXP {
			return rows[i].WeeklyXP > rows[j].WeeklyXP
		}
		return rows[i].ParticipantID < rows[j].ParticipantID
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

// SameCity compares city scopes case-insensitively
func SameCity(a, b string) bool {
	// a Caser keeps state and cannot be shared between goroutines
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// rewardFor returns the coins paid to a final position
func rewardFor(rewards []domain.LeagueReward, position int) int64 {
	for _, r := range rewards {
		if r.Position == position {
			return r.Coins
		}
	}
	return 0
}
