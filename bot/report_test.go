/* report_test.go
 * Contains unit tests for report.go functions
 */

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleAnnouncement = `**Match Finished!**
**Red Team:**
Clan: Red Foxes
Players: amy, bob

**Blue Team:**
Clan: Night Owls
Players: cat, dan

**Red: 13 | Blue 7**`

// TestParseResultReport_FullAnnouncement tests parsing the standard game post
func TestParseResultReport_FullAnnouncement(t *testing.T) {
	report, ok := ParseResultReport(sampleAnnouncement)

	assert.True(t, ok)
	assert.Equal(t, "Red Foxes", report.RedClan)
	assert.Equal(t, "Night Owls", report.BlueClan)
	assert.Equal(t, 13, report.RedScore)
	assert.Equal(t, 7, report.BlueScore)
}

// TestParseResultReport_BoldMarkersStripped tests markdown tolerance on every line
func TestParseResultReport_BoldMarkersStripped(t *testing.T) {
	content := "**Red Team:**\n**Clan: Alpha**\n**Blue Team:**\n**Clan: Beta**\nRed: 2 | Blue 2"

	report, ok := ParseResultReport(content)

	assert.True(t, ok)
	assert.Equal(t, "Alpha", report.RedClan)
	assert.Equal(t, "Beta", report.BlueClan)
	assert.Equal(t, 2, report.RedScore)
	assert.Equal(t, 2, report.BlueScore)
}

// TestParseResultReport_LastScoreLineWins tests that interim score lines are
// skipped in favor of the final one
func TestParseResultReport_LastScoreLineWins(t *testing.T) {
	content := "Red Team:\nClan: Alpha\nBlue Team:\nClan: Beta\nRed: 5 | Blue 5\nRed: 13 | Blue 9"

	report, ok := ParseResultReport(content)

	assert.True(t, ok)
	assert.Equal(t, 13, report.RedScore)
	assert.Equal(t, 9, report.BlueScore)
}

// TestParseResultReport_NotAnAnnouncement tests that chat noise is ignored
func TestParseResultReport_NotAnAnnouncement(t *testing.T) {
	for _, content := range []string{
		"gg wp",
		"!unknowncommand",
		"Red Team:\nClan: Alpha", // no blue team
		"Red Team:\nClan: Alpha\nBlue Team:\nClan: Beta", // no score line
		"",
	} {
		_, ok := ParseResultReport(content)
		assert.False(t, ok, "content %q", content)
	}
}

// TestParseResultReport_MissingClanLine tests a header without its clan line below
func TestParseResultReport_MissingClanLine(t *testing.T) {
	content := "Red Team:\nPlayers: amy\nBlue Team:\nClan: Beta\nRed: 1 | Blue 0"

	_, ok := ParseResultReport(content)

	assert.False(t, ok)
}

// TestParseResultReport_CaseInsensitiveHeaders tests header matching tolerance
func TestParseResultReport_CaseInsensitiveHeaders(t *testing.T) {
	content := "RED TEAM:\nClan: Alpha\nblue team:\nClan: Beta\nred: 4 | blue 1"

	report, ok := ParseResultReport(content)

	assert.True(t, ok)
	assert.Equal(t, 4, report.RedScore)
	assert.Equal(t, 1, report.BlueScore)
}
