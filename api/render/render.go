/* render.go
 * Contains the plain-text renderings published to the update channel:
 * standings table, group schedule, bracket tree and team list
 */

package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"clancup-bot/api/engine"
	"clancup-bot/api/shared"
)

// minTeamColWidth keeps the table readable when every team name is short.
const minTeamColWidth = 12

// StandingsTable renders the group table in rank order. The team column width
// is measured in display cells, not characters, so wide-glyph team names stay
// aligned inside a code block.
func StandingsTable(ranked []string, standings map[string]shared.Standing, teams map[string]shared.Team) string {
	colWidth := minTeamColWidth
	for _, key := range ranked {
		if w := runewidth.StringWidth(displayName(teams, key)); w > colWidth {
			colWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Pos | Team%s | Pld | W | D | L | Pts | +/-\n", strings.Repeat(" ", colWidth-4)))
	b.WriteString(fmt.Sprintf("--- | %s | --- | - | - | - | --- | ---\n", strings.Repeat("-", colWidth)))
	for i, key := range ranked {
		s := standings[key]
		b.WriteString(fmt.Sprintf("%3d | %s | %3d | %d | %d | %d | %3d | %3d\n",
			i+1, padToWidth(displayName(teams, key), colWidth),
			s.Played, s.Wins, s.Draws, s.Losses, s.Points, s.ScoreDiff))
	}
	return strings.TrimRight(b.String(), "\n")
}

// GroupSchedule lists the group fixtures in schedule order, striking through
// matches that already have a result.
func GroupSchedule(matches []shared.Match, teams map[string]shared.Team) string {
	var b strings.Builder
	b.WriteString("**Upcoming Group Matches (strikethrough = played):**\n")
	for i, m := range matches {
		t1 := displayName(teams, m.Team1)
		t2 := displayName(teams, m.Team2)
		if m.Result != nil {
			b.WriteString(fmt.Sprintf("~~%d. %s vs %s [%d - %d] Winner: %s~~\n",
				i+1, t1, t2, m.Result.RedScore, m.Result.BlueScore, winnerName(teams, m.Result.Winner)))
		} else {
			b.WriteString(fmt.Sprintf("%d. %s vs %s\n", i+1, t1, t2))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// BracketTree renders every round of the bracket, attaching the reported
// score where the results log has an entry for the slot's pair. Matches are
// numbered across rounds, the way the bracket is read top to bottom.
func BracketTree(bracket [][]shared.Slot, results []shared.KnockoutResult, teams map[string]shared.Team) string {
	type pair struct {
		low  string
		high string
	}
	byPair := make(map[pair]shared.KnockoutResult, len(results))
	for _, res := range results {
		a, b := engine.Normalize(res.RedTeam), engine.Normalize(res.BlueTeam)
		if a > b {
			a, b = b, a
		}
		byPair[pair{low: a, high: b}] = res
	}

	var b strings.Builder
	b.WriteString("**Knockout Bracket:**\n")
	matchNo := 0
	for r, round := range bracket {
		b.WriteString(fmt.Sprintf("\nRound %d:\n", r+1))
		for _, slot := range round {
			matchNo++

			var res shared.KnockoutResult
			found := false
			if slot.Team1 != "" && slot.Team2 != "" {
				a, c := slot.Team1, slot.Team2
				if a > c {
					a, c = c, a
				}
				res, found = byPair[pair{low: a, high: c}]
			}

			switch {
			case found:
				b.WriteString(fmt.Sprintf("  Match %d: %s [%d] vs %s [%d] -> Winner: %s\n",
					matchNo, slotName(teams, slot.Team1), res.RedScore,
					slotName(teams, slot.Team2), res.BlueScore, winnerName(teams, res.Winner)))
			case slot.Team1 != "" && slot.Team2 == "":
				b.WriteString(fmt.Sprintf("  Match %d: %s receives a bye.\n", matchNo, slotName(teams, slot.Team1)))
			case slot.Team1 == "" && slot.Team2 != "":
				b.WriteString(fmt.Sprintf("  Match %d: %s receives a bye.\n", matchNo, slotName(teams, slot.Team2)))
			default:
				b.WriteString(fmt.Sprintf("  Match %d: %s vs %s [Not played yet]\n",
					matchNo, slotName(teams, slot.Team1), slotName(teams, slot.Team2)))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// TeamList renders the persistent registered-teams message. Teams are listed
// in key order so the message is stable between edits.
func TeamList(teams map[string]shared.Team) string {
	if len(teams) == 0 {
		return "**Registered Teams:**\n_No teams registered yet._"
	}

	keys := make([]string, 0, len(teams))
	for key := range teams {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("**Registered Teams:**\n")
	for _, key := range keys {
		team := teams[key]
		names := make([]string, len(team.Members))
		for i, m := range team.Members {
			names[i] = m.Name
		}
		b.WriteString(fmt.Sprintf("- **%s**: %s\n", team.DisplayName, strings.Join(names, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ResultsMessage assembles the persistent results/standings message body from
// whichever renderings the current phase provides.
func ResultsMessage(standingsText, scheduleText, bracketText string) string {
	var b strings.Builder
	b.WriteString("**Tournament Results / Standings:**\n")
	if standingsText != "" {
		b.WriteString(fmt.Sprintf("```%s```\n", standingsText))
	}
	if scheduleText != "" {
		b.WriteString(scheduleText + "\n")
	}
	if bracketText != "" {
		b.WriteString(bracketText + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// displayName resolves a team key to its registered display name, falling
// back to the key for names that never went through registration.
func displayName(teams map[string]shared.Team, key string) string {
	if team, ok := teams[key]; ok {
		return team.DisplayName
	}
	return key
}

func slotName(teams map[string]shared.Team, key string) string {
	if key == "" {
		return "BYE"
	}
	return displayName(teams, key)
}

func winnerName(teams map[string]shared.Team, winner string) string {
	if winner == shared.DrawWinner {
		return winner
	}
	return displayName(teams, winner)
}

// padToWidth right-pads text with spaces up to width display cells.
func padToWidth(text string, width int) string {
	pad := width - runewidth.StringWidth(text)
	if pad <= 0 {
		return text
	}
	return text + strings.Repeat(" ", pad)
}
