/* standings.go
 * Contains the group standings calculator and ranking order
 */

package engine

import (
	"sort"

	"clancup-bot/api/shared"
)

// ComputeStandings derives per-team tallies from every match that has a
// result. Scoring is 3/1/0: three points and a win for the strictly higher
// score, one point and a draw each on a tie, only a loss increment for the
// loser. Score differential accumulates (for - against) on both sides.
//
// Pure function with no side effects; safe to call repeatedly as results
// trickle in. Teams without a completed match are absent from the map and
// read as the zero Standing.
func ComputeStandings(matches []shared.Match) map[string]shared.Standing {
	standings := make(map[string]shared.Standing)

	for _, m := range matches {
		if m.Result == nil {
			continue
		}
		res := m.Result
		t1 := standings[m.Team1]
		t2 := standings[m.Team2]

		t1.Played++
		t2.Played++
		t1.ScoreDiff += res.RedScore - res.BlueScore
		t2.ScoreDiff += res.BlueScore - res.RedScore

		switch {
		case res.RedScore > res.BlueScore:
			t1.Wins++
			t1.Points += 3
			t2.Losses++
		case res.BlueScore > res.RedScore:
			t2.Wins++
			t2.Points += 3
			t1.Losses++
		default:
			t1.Draws++
			t2.Draws++
			t1.Points++
			t2.Points++
		}

		standings[m.Team1] = t1
		standings[m.Team2] = t2
	}

	return standings
}

// RankTeams orders team keys by descending points, then descending score
// differential. Ties beyond that keep the input order; there is no tertiary
// tiebreak. The input slice is not modified.
func RankTeams(teams []string, standings map[string]shared.Standing) []string {
	ranked := make([]string, len(teams))
	copy(ranked, teams)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := standings[ranked[i]], standings[ranked[j]]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.ScoreDiff > b.ScoreDiff
	})

	return ranked
}
