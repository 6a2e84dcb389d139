/* schedule.go
 * Contains the group stage schedule generator
 */

package engine

import (
	"math/rand"

	"clancup-bot/api/shared"
)

// GenerateSchedule builds a best-effort round-robin style fixture list where
// each team plays at most roundsPerTeam matches. All unordered pairs of
// distinct teams are visited in random order and greedily accepted while both
// sides are still below their quota. The shuffle avoids a systematic bias
// toward teams that happen to sort first, at the cost of determinism.
//
// The packing is not guaranteed to be complete: depending on the team count
// and the shuffle, some teams can end up with fewer than roundsPerTeam
// matches. Those teams are returned in the second value; the partial schedule
// is still valid and is always returned.
func GenerateSchedule(teams []string, roundsPerTeam int) ([]shared.Match, []string) {
	type pair struct {
		team1 string
		team2 string
	}

	var pairs []pair
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			pairs = append(pairs, pair{team1: teams[i], team2: teams[j]})
		}
	}
	rand.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	counts := make(map[string]int, len(teams))
	var matches []shared.Match
	for _, p := range pairs {
		if counts[p.team1] < roundsPerTeam && counts[p.team2] < roundsPerTeam {
			matches = append(matches, shared.Match{Team1: p.team1, Team2: p.team2})
			counts[p.team1]++
			counts[p.team2]++
		}
	}

	var short []string
	for _, team := range teams {
		if counts[team] < roundsPerTeam {
			short = append(short, team)
		}
	}

	return matches, short
}
