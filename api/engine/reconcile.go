/* reconcile.go
 * Contains the bracket reconciler that fills winners from the knockout results log
 */

package engine

import (
	"github.com/sirupsen/logrus"

	"clancup-bot/api/shared"
)

// pairKey identifies a match by its two normalized team keys regardless of
// which side reported red or blue.
type pairKey struct {
	low  string
	high string
}

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{low: a, high: b}
}

// Reconcile rebuilds every round after round 0 from the knockout results log.
// Bracket progression is stateless: each call re-derives the full forward
// state from the round 0 seeding plus all results reported so far, which
// makes reconciliation idempotent and safe to re-run after late or corrected
// reports. The input bracket is not modified.
//
// Within a round, a slot with one empty side auto-advances the other side, a
// full slot consults the results log by pair, and a slot with no matching
// result stays unresolved. A reported winner matching neither slot side is a
// consistency fault: it is logged and the slot stays unresolved, but every
// other slot is still processed.
func Reconcile(bracket [][]shared.Slot, results []shared.KnockoutResult, logger *logrus.Logger) [][]shared.Slot {
	out := make([][]shared.Slot, len(bracket))
	for i, round := range bracket {
		out[i] = make([]shared.Slot, len(round))
		copy(out[i], round)
	}
	// rounds after the first are fully re-derived below
	for i := 1; i < len(out); i++ {
		for j := range out[i] {
			out[i][j] = shared.Slot{}
		}
	}

	winners := winnersByPair(results, logger)

	for r := 0; r < len(out)-1; r++ {
		advancing := make([]string, 0, len(out[r]))
		for _, slot := range out[r] {
			advancing = append(advancing, slotWinner(slot, winners, logger))
		}

		next := out[r+1]
		for i := range next {
			var team1, team2 string
			if 2*i < len(advancing) {
				team1 = advancing[2*i]
			}
			if 2*i+1 < len(advancing) {
				team2 = advancing[2*i+1]
			}
			next[i] = shared.Slot{Team1: team1, Team2: team2}
		}
	}

	return out
}

// winnersByPair folds the results log into a typed pair -> winner lookup so a
// reconcile pass costs O(results + slots). The log is walked in report order,
// so the last report for a pair wins; a divergent re-report is a consistency
// fault and is logged before being applied.
func winnersByPair(results []shared.KnockoutResult, logger *logrus.Logger) map[pairKey]string {
	winners := make(map[pairKey]string, len(results))

	for _, res := range results {
		key := newPairKey(Normalize(res.RedTeam), Normalize(res.BlueTeam))
		winner := Normalize(res.Winner)
		if prev, ok := winners[key]; ok && prev != winner {
			logger.WithFields(logrus.Fields{
				"red_team":  res.RedTeam,
				"blue_team": res.BlueTeam,
				"previous":  prev,
				"latest":    winner,
			}).Warn("divergent re-report for knockout pair, keeping the later result")
		}
		winners[key] = winner
	}

	return winners
}

// slotWinner resolves a single slot: byes auto-advance, full slots consult
// the results log, anything else stays unresolved (empty string).
func slotWinner(slot shared.Slot, winners map[pairKey]string, logger *logrus.Logger) string {
	if slot.Team1 == "" && slot.Team2 == "" {
		return ""
	}
	if slot.Team2 == "" {
		return slot.Team1
	}
	if slot.Team1 == "" {
		return slot.Team2
	}

	winner, ok := winners[newPairKey(slot.Team1, slot.Team2)]
	if !ok {
		return ""
	}
	switch winner {
	case slot.Team1:
		return slot.Team1
	case slot.Team2:
		return slot.Team2
	}

	logger.WithFields(logrus.Fields{
		"team1":  slot.Team1,
		"team2":  slot.Team2,
		"winner": winner,
	}).Warn("reported knockout winner matches neither slot side")
	return ""
}
