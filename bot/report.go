/* report.go
 * Contains the parser for match result announcements posted to the results channel
 */

package bot

import (
	"regexp"
	"strconv"
	"strings"

	"clancup-bot/api/shared"
)

var (
	scoreLineRe = regexp.MustCompile(`(?i)^Red:\s*(\d+)\s*\|\s*Blue\s*(\d+)`)
	clanLineRe  = regexp.MustCompile(`^Clan:\s*(.+)`)
)

// ParseResultReport extracts a match report from the announcement format the
// game posts into the results channel:
//
//	Red Team:
//	Clan: <red clan>
//	...
//	Blue Team:
//	Clan: <blue clan>
//	...
//	Red: <n> | Blue <n>
//
// The clan line is expected directly below its team header; the score line is
// the last "Red: N | Blue N" line in the message. Markdown bold markers are
// stripped before matching. ok is false when the message is not a result
// announcement.
func ParseResultReport(content string) (shared.ResultReport, bool) {
	lines := strings.Split(content, "\n")

	redIdx := findLineContaining(lines, "red team:")
	blueIdx := findLineContaining(lines, "blue team:")
	if redIdx == -1 || blueIdx == -1 || redIdx+1 >= len(lines) || blueIdx+1 >= len(lines) {
		return shared.ResultReport{}, false
	}

	redClan := matchClanLine(lines[redIdx+1])
	blueClan := matchClanLine(lines[blueIdx+1])
	if redClan == "" || blueClan == "" {
		return shared.ResultReport{}, false
	}

	var scoreLine string
	for i := len(lines) - 1; i >= 0; i-- {
		plain := stripMarkers(lines[i])
		lower := strings.ToLower(plain)
		if strings.HasPrefix(lower, "red:") && strings.Contains(lower, "blue") {
			scoreLine = plain
			break
		}
	}
	if scoreLine == "" {
		return shared.ResultReport{}, false
	}

	m := scoreLineRe.FindStringSubmatch(scoreLine)
	if m == nil {
		return shared.ResultReport{}, false
	}
	redScore, errRed := strconv.Atoi(m[1])
	blueScore, errBlue := strconv.Atoi(m[2])
	if errRed != nil || errBlue != nil {
		return shared.ResultReport{}, false
	}

	return shared.ResultReport{
		RedClan:   redClan,
		BlueClan:  blueClan,
		RedScore:  redScore,
		BlueScore: blueScore,
	}, true
}

// matchClanLine pulls the clan name out of a "Clan: <name>" line.
func matchClanLine(line string) string {
	m := clanLineRe.FindStringSubmatch(stripMarkers(line))
	if m == nil {
		return ""
	}
	return strings.Trim(strings.TrimSpace(m[1]), "*")
}

// findLineContaining returns the index of the first line containing keyword,
// case insensitive, or -1.
func findLineContaining(lines []string, keyword string) int {
	for i, line := range lines {
		if strings.Contains(strings.ToLower(stripMarkers(line)), keyword) {
			return i
		}
	}
	return -1
}

// stripMarkers removes surrounding whitespace and markdown bold markers.
func stripMarkers(line string) string {
	return strings.Trim(strings.TrimSpace(line), "*")
}
