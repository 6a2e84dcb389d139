/* bracket.go
 * Contains the single elimination bracket generator
 */

package engine

import "clancup-bot/api/shared"

// GenerateBracket seeds a single elimination bracket from a qualifier list
// ordered by standing rank, best first. The seed array is padded with byes up
// to the next power of two, and round 0 pairs seed[i] against seed[p-1-i] so
// the top seed meets the weakest present seed first and every bye lands on a
// highest-ranked qualifier.
//
// Rounds after the first are allocated as empty placeholder slots sized
// p/4, p/8, ..., 1 and are only ever filled by Reconcile.
func GenerateBracket(qualifiers []string) [][]shared.Slot {
	n := len(qualifiers)
	p := 1
	for p < n {
		p <<= 1
	}

	seeds := make([]string, p)
	copy(seeds, qualifiers)

	round := make([]shared.Slot, 0, p/2)
	for i := 0; i < p/2; i++ {
		round = append(round, shared.Slot{Team1: seeds[i], Team2: seeds[p-1-i]})
	}

	bracket := [][]shared.Slot{round}
	for size := p / 4; size >= 1; size /= 2 {
		bracket = append(bracket, make([]shared.Slot, size))
	}

	return bracket
}
