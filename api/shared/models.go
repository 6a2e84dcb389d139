/* models.go
 * This file contains the structs that are shared between sub packages
 */

package shared

// Tournament phases. Transitions are linear: registration -> group -> knockout.
const (
	PhaseRegistration = "registration"
	PhaseGroup        = "group"
	PhaseKnockout     = "knockout"
)

// DrawWinner is stored in a result's winner field when neither side won.
const DrawWinner = "Draw"

type Member struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
}

// Team is created at registration and never deleted. Key is the normalized
// identity used for all lookups; DisplayName keeps the original casing for
// rendering. The captain is always Members[0].
type Team struct {
	Key         string   `bson:"key"`
	DisplayName string   `bson:"display_name"`
	Captain     Member   `bson:"captain"`
	Members     []Member `bson:"members"`
}

// MatchResult is immutable once attached to a match. Scores are oriented to
// the match's stored team1/team2 order, regardless of which side reported
// red or blue. Winner holds the winning team's key, or DrawWinner.
type MatchResult struct {
	RedScore  int    `bson:"red_score"`
	BlueScore int    `bson:"blue_score"`
	Winner    string `bson:"winner"`
}

// Match is one scheduled group stage fixture. Result stays nil until a report
// for this pair arrives and is set exactly once; later reports for the same
// pair are rejected, not overwritten.
type Match struct {
	Team1  string       `bson:"team1"`
	Team2  string       `bson:"team2"`
	Result *MatchResult `bson:"result,omitempty"`
}

// KnockoutResult is one entry of the append-only knockout results log.
// Entries are matched to bracket slots by team pair at reconcile time, never
// by a stored slot reference.
type KnockoutResult struct {
	RedTeam    string `bson:"red_team"`
	BlueTeam   string `bson:"blue_team"`
	RedScore   int    `bson:"red_score"`
	BlueScore  int    `bson:"blue_score"`
	Winner     string `bson:"winner"`
	ReportedAt int64  `bson:"reported_at"`
}

// Slot is one pairing in a bracket round. An empty side is a bye in round 0
// and an unresolved winner position in every later round.
type Slot struct {
	Team1 string `bson:"team1"`
	Team2 string `bson:"team2"`
}

// Group holds the single active group's team list and fixtures.
type Group struct {
	Teams   []string `bson:"teams"`
	Matches []Match  `bson:"matches"`
}

// Standing is derived from group matches on demand and never persisted, so
// the table can not drift from the recorded results.
type Standing struct {
	Played    int
	Wins      int
	Draws     int
	Losses    int
	Points    int
	ScoreDiff int
}

// TournamentState is the single persisted tournament document. It is loaded
// in full before an event is handled and written back in full before any
// reply or update message goes out.
type TournamentState struct {
	Phase           string           `bson:"phase"`
	Group           *Group           `bson:"group,omitempty"`
	Qualifiers      []string         `bson:"qualifiers,omitempty"`
	Bracket         [][]Slot         `bson:"bracket,omitempty"`
	KnockoutResults []KnockoutResult `bson:"knockout_results"`
}

// NewTournamentState returns the default document used before anything has
// been persisted.
func NewTournamentState() *TournamentState {
	return &TournamentState{
		Phase:           PhaseRegistration,
		KnockoutResults: []KnockoutResult{},
	}
}

// ResultReport is a parsed match announcement as it enters the engine. Clan
// names are raw display names; the engine normalizes them on use.
type ResultReport struct {
	RedClan   string
	BlueClan  string
	RedScore  int
	BlueScore int
}
