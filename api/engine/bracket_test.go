/* bracket_test.go
 * Contains unit tests for bracket.go functions
 */

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clancup-bot/api/shared"
)

// TestGenerateBracket_FiveQualifiers tests the fold seeding with byes on the
// top three seeds: round 0 is (A,-), (B,-), (C,-), (D,E)
func TestGenerateBracket_FiveQualifiers(t *testing.T) {
	bracket := GenerateBracket([]string{"a", "b", "c", "d", "e"})

	assert.Len(t, bracket, 3) // 8-slot bracket: 4, 2, 1
	assert.Equal(t, []shared.Slot{
		{Team1: "a", Team2: ""},
		{Team1: "b", Team2: ""},
		{Team1: "c", Team2: ""},
		{Team1: "d", Team2: "e"},
	}, bracket[0])
	assert.Equal(t, []shared.Slot{{}, {}}, bracket[1])
	assert.Equal(t, []shared.Slot{{}}, bracket[2])
}

// TestGenerateBracket_PowerOfTwo tests the no-bye case
func TestGenerateBracket_PowerOfTwo(t *testing.T) {
	bracket := GenerateBracket([]string{"a", "b", "c", "d"})

	assert.Len(t, bracket, 2)
	assert.Equal(t, []shared.Slot{
		{Team1: "a", Team2: "d"},
		{Team1: "b", Team2: "c"},
	}, bracket[0])
	assert.Equal(t, []shared.Slot{{}}, bracket[1])
}

// TestGenerateBracket_FoldPairing tests seed[i] vs seed[p-1-i] on a full eight
func TestGenerateBracket_FoldPairing(t *testing.T) {
	bracket := GenerateBracket([]string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8"})

	assert.Equal(t, []shared.Slot{
		{Team1: "s1", Team2: "s8"},
		{Team1: "s2", Team2: "s7"},
		{Team1: "s3", Team2: "s6"},
		{Team1: "s4", Team2: "s5"},
	}, bracket[0])
}

// TestGenerateBracket_SingleQualifier tests the degenerate one-team bracket
func TestGenerateBracket_SingleQualifier(t *testing.T) {
	bracket := GenerateBracket([]string{"a"})

	// p stays 1, so the only round has no pairs to fold
	assert.Len(t, bracket, 1)
	assert.Empty(t, bracket[0])
}

// TestGenerateBracket_TwoQualifiers tests the single-final bracket
func TestGenerateBracket_TwoQualifiers(t *testing.T) {
	bracket := GenerateBracket([]string{"a", "b"})

	assert.Len(t, bracket, 1)
	assert.Equal(t, []shared.Slot{{Team1: "a", Team2: "b"}}, bracket[0])
}

// TestGenerateBracket_ByesOnTopSeeds tests that every bye lands on the
// highest-ranked qualifiers, never on the tail
func TestGenerateBracket_ByesOnTopSeeds(t *testing.T) {
	bracket := GenerateBracket([]string{"a", "b", "c", "d", "e", "f"})

	byes := 0
	for _, slot := range bracket[0] {
		if slot.Team2 == "" {
			byes++
			assert.Contains(t, []string{"a", "b"}, slot.Team1)
		}
	}
	assert.Equal(t, 2, byes)
}
