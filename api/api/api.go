/* api.go
 * This file contains the public methods for interacting with this package: the tournament
 * state machine. Every operation loads the persisted state, applies a pure engine
 * computation, saves the state in full and only then returns renderings to publish.
 * For consistent results, functions should only be called from this file, not the sub packages.
 */

package api

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"clancup-bot/api/engine"
	"clancup-bot/api/render"
	"clancup-bot/api/shared"
	"clancup-bot/api/store"
)

// API provides methods for interacting with the tournament data layer. It is
// the only component with mutation authority over the tournament document.
type API struct {
	Store  store.Interface
	Logger *logrus.Logger
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, logger *logrus.Logger) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}
	if logger == nil {
		logger = logrus.New()
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:  s,
		Logger: logger,
	}, nil
}

// RegisterTeam adds a team to the registry. The first member is the captain.
// Duplicate keys are rejected; teams are never deleted once created.
func (a *API) RegisterTeam(name string, members []shared.Member) (*CommandOutcome, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("team name cannot be empty")
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("please mention at least one team member (including the captain)")
	}

	teams, err := a.Store.LoadTeams()
	if err != nil {
		return nil, err
	}

	key := engine.Normalize(name)
	if _, ok := teams[key]; ok {
		return nil, fmt.Errorf("team **%s** is already registered", name)
	}

	team := shared.Team{
		Key:         key,
		DisplayName: name,
		Captain:     members[0],
		Members:     members,
	}
	if err := a.Store.InsertTeam(team); err != nil {
		return nil, err
	}
	teams[key] = team

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}

	return &CommandOutcome{
		Message: fmt.Sprintf("Team **%s** registered!\nCaptain: %s\nMembers: %s",
			name, members[0].Name, strings.Join(names, ", ")),
		TeamsText: render.TeamList(teams),
	}, nil
}

// StartGroupStage moves the tournament from registration to the group phase,
// generating the fixture list. Requires at least 2 registered teams and a
// round count of at least 1. A schedule that leaves some teams short of their
// round count is still accepted; the shortfall is surfaced as a warning.
func (a *API) StartGroupStage(roundsPerTeam int) (*CommandOutcome, error) {
	state, err := a.Store.LoadState()
	if err != nil {
		return nil, err
	}
	if state.Phase != shared.PhaseRegistration {
		return nil, fmt.Errorf("groups already started or tournament not in registration phase")
	}
	if roundsPerTeam < 1 {
		return nil, fmt.Errorf("number of rounds must be at least 1")
	}

	teams, err := a.Store.LoadTeams()
	if err != nil {
		return nil, err
	}
	if len(teams) < 2 {
		return nil, fmt.Errorf("not enough teams registered to start the group stage")
	}

	keys := sortedKeys(teams)
	matches, short := engine.GenerateSchedule(keys, roundsPerTeam)

	state = &shared.TournamentState{
		Phase:           shared.PhaseGroup,
		Group:           &shared.Group{Teams: keys, Matches: matches},
		KnockoutResults: []shared.KnockoutResult{},
	}
	if err := a.Store.SaveState(state); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Group stage started with %d teams, %d rounds per team. Matches scheduled.", len(keys), roundsPerTeam)
	if len(short) > 0 {
		a.Logger.WithField("teams", short).Warn("could not give every team its full round count")
		msg += fmt.Sprintf("\nWarning: could not schedule %d matches for: %s",
			roundsPerTeam, strings.Join(displayNames(teams, short), ", "))
	}

	outcome := &CommandOutcome{Message: msg}
	a.attachGroupRenderings(outcome, state, teams)
	return outcome, nil
}

// StartKnockout ends the group phase early with an explicit qualifier spec:
// an integer, a fraction like "2/3", or a decimal like "0.5". Qualifiers are
// taken from the top of the current standings.
func (a *API) StartKnockout(qualifySpec string) (*CommandOutcome, error) {
	state, err := a.Store.LoadState()
	if err != nil {
		return nil, err
	}
	if state.Phase != shared.PhaseGroup {
		return nil, fmt.Errorf("knockout phase can only be started after the group phase")
	}
	if state.Group == nil {
		return nil, fmt.Errorf("no group data found")
	}

	teams, err := a.Store.LoadTeams()
	if err != nil {
		return nil, err
	}

	standings := engine.ComputeStandings(state.Group.Matches)
	ranked := engine.RankTeams(state.Group.Teams, standings)

	count, err := engine.ParseQualifySpec(qualifySpec, len(ranked))
	if err != nil {
		return nil, err
	}
	qualifiers := ranked[:count]

	state.Phase = shared.PhaseKnockout
	state.Qualifiers = qualifiers
	state.KnockoutResults = []shared.KnockoutResult{}
	state.Bracket = engine.GenerateBracket(qualifiers)
	if err := a.Store.SaveState(state); err != nil {
		return nil, err
	}

	outcome := &CommandOutcome{
		Message: fmt.Sprintf("Group stage ended! Qualifiers for the knockout phase: %s",
			strings.Join(displayNames(teams, qualifiers), ", ")),
		BracketText: render.BracketTree(state.Bracket, state.KnockoutResults, teams),
	}
	a.attachGroupRenderings(outcome, state, teams)
	return outcome, nil
}

// HandleResultReport routes a parsed match announcement to the current phase.
// Group phase reports must match a scheduled, unplayed fixture; knockout
// phase reports are appended to the results log and the bracket is
// re-reconciled from scratch.
func (a *API) HandleResultReport(report shared.ResultReport) (*CommandOutcome, error) {
	state, err := a.Store.LoadState()
	if err != nil {
		return nil, err
	}
	teams, err := a.Store.LoadTeams()
	if err != nil {
		return nil, err
	}

	switch state.Phase {
	case shared.PhaseGroup:
		return a.applyGroupResult(state, teams, report)
	case shared.PhaseKnockout:
		return a.applyKnockoutResult(state, teams, report)
	default:
		return nil, fmt.Errorf("no tournament phase is accepting match results right now")
	}
}

// applyGroupResult matches the report against the fixture list by unordered
// key pair and stores the result oriented to the fixture's team order. An
// unknown pair or a fixture that already has a result is rejected with a
// diagnostic and no state change. Once every fixture has a result, the
// tournament auto-transitions to the knockout phase.
func (a *API) applyGroupResult(state *shared.TournamentState, teams map[string]shared.Team, report shared.ResultReport) (*CommandOutcome, error) {
	group := state.Group
	if group == nil {
		return nil, fmt.Errorf("no group data found")
	}

	red := engine.Normalize(report.RedClan)
	blue := engine.Normalize(report.BlueClan)
	if red == blue {
		return nil, fmt.Errorf("a match needs two distinct teams: %s vs %s", report.RedClan, report.BlueClan)
	}

	idx := -1
	for i, m := range group.Matches {
		if (m.Team1 == red && m.Team2 == blue) || (m.Team1 == blue && m.Team2 == red) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("match result does not match scheduled group stage matches: %s vs %s%s",
			report.RedClan, report.BlueClan, suggestUnknownTeams(teams, red, blue))
	}

	match := &group.Matches[idx]
	if match.Result != nil {
		a.Logger.WithFields(logrus.Fields{
			"team1": match.Team1,
			"team2": match.Team2,
		}).Warn("duplicate report for a group match that already has a result")
		return nil, fmt.Errorf("a result for %s vs %s has already been recorded and was not overwritten",
			report.RedClan, report.BlueClan)
	}

	// orient the reported scores to the fixture's stored team order
	redScore, blueScore := report.RedScore, report.BlueScore
	if match.Team1 == blue {
		redScore, blueScore = blueScore, redScore
	}
	winner := shared.DrawWinner
	switch {
	case redScore > blueScore:
		winner = match.Team1
	case blueScore > redScore:
		winner = match.Team2
	}
	match.Result = &shared.MatchResult{RedScore: redScore, BlueScore: blueScore, Winner: winner}

	outcome := &CommandOutcome{
		Message: fmt.Sprintf("Recorded group result: %s %d - %d %s",
			displayNames(teams, []string{match.Team1})[0], redScore,
			blueScore, displayNames(teams, []string{match.Team2})[0]),
	}

	allPlayed := true
	for _, m := range group.Matches {
		if m.Result == nil {
			allPlayed = false
			break
		}
	}
	if allPlayed {
		standings := engine.ComputeStandings(group.Matches)
		ranked := engine.RankTeams(group.Teams, standings)
		qualifiers := ranked[:engine.AutoQualifyCount(len(ranked))]

		state.Phase = shared.PhaseKnockout
		state.Qualifiers = qualifiers
		state.KnockoutResults = []shared.KnockoutResult{}
		state.Bracket = engine.GenerateBracket(qualifiers)

		outcome.Message += fmt.Sprintf("\nGroup stage completed! Qualifiers: %s",
			strings.Join(displayNames(teams, qualifiers), ", "))
		outcome.BracketText = render.BracketTree(state.Bracket, state.KnockoutResults, teams)
	}

	if err := a.Store.SaveState(state); err != nil {
		return nil, err
	}
	a.attachGroupRenderings(outcome, state, teams)
	return outcome, nil
}

// applyKnockoutResult appends the report to the knockout results log and
// re-derives the whole bracket from round 0 plus the log. Reports are not
// matched against a fixed slot, but both sides must at least be qualifiers;
// anything else is rejected so a typo cannot silently vanish into the log.
func (a *API) applyKnockoutResult(state *shared.TournamentState, teams map[string]shared.Team, report shared.ResultReport) (*CommandOutcome, error) {
	red := engine.Normalize(report.RedClan)
	blue := engine.Normalize(report.BlueClan)

	known := make(map[string]bool, len(state.Qualifiers))
	for _, q := range state.Qualifiers {
		known[q] = true
	}
	if !known[red] || !known[blue] {
		return nil, fmt.Errorf("match result does not match any knockout pairing: %s vs %s%s",
			report.RedClan, report.BlueClan, suggestUnknownTeams(teams, red, blue))
	}

	winner := shared.DrawWinner
	switch {
	case report.RedScore > report.BlueScore:
		winner = red
	case report.BlueScore > report.RedScore:
		winner = blue
	}

	state.KnockoutResults = append(state.KnockoutResults, shared.KnockoutResult{
		RedTeam:    red,
		BlueTeam:   blue,
		RedScore:   report.RedScore,
		BlueScore:  report.BlueScore,
		Winner:     winner,
		ReportedAt: time.Now().Unix(),
	})
	state.Bracket = engine.Reconcile(state.Bracket, state.KnockoutResults, a.Logger)
	if err := a.Store.SaveState(state); err != nil {
		return nil, err
	}

	outcome := &CommandOutcome{
		Message: fmt.Sprintf("Recorded knockout result: %s %d - %d %s",
			report.RedClan, report.RedScore, report.BlueScore, report.BlueClan),
		BracketText: render.BracketTree(state.Bracket, state.KnockoutResults, teams),
	}
	a.attachGroupRenderings(outcome, state, teams)
	return outcome, nil
}

// StandingsTable renders the current group table. Only available during the
// group phase.
func (a *API) StandingsTable() (string, error) {
	state, err := a.Store.LoadState()
	if err != nil {
		return "", err
	}
	if state.Phase != shared.PhaseGroup {
		return "", fmt.Errorf("group standings are only available during the group phase")
	}
	if state.Group == nil {
		return "", fmt.Errorf("no group data found")
	}

	teams, err := a.Store.LoadTeams()
	if err != nil {
		return "", err
	}

	standings := engine.ComputeStandings(state.Group.Matches)
	ranked := engine.RankTeams(state.Group.Teams, standings)
	return render.StandingsTable(ranked, standings, teams), nil
}

// BracketTree renders the current knockout bracket. Only available during the
// knockout phase.
func (a *API) BracketTree() (string, error) {
	state, err := a.Store.LoadState()
	if err != nil {
		return "", err
	}
	if state.Phase != shared.PhaseKnockout {
		return "", fmt.Errorf("the knockout bracket is only available during the knockout phase")
	}

	teams, err := a.Store.LoadTeams()
	if err != nil {
		return "", err
	}
	return render.BracketTree(state.Bracket, state.KnockoutResults, teams), nil
}

// TeamsList renders the registered team list.
func (a *API) TeamsList() (string, error) {
	teams, err := a.Store.LoadTeams()
	if err != nil {
		return "", err
	}
	return render.TeamList(teams), nil
}

// ReloadTeams re-reads the team registry. Useful after the teams collection
// has been edited out of band.
func (a *API) ReloadTeams() (*CommandOutcome, error) {
	teams, err := a.Store.LoadTeams()
	if err != nil {
		return nil, err
	}
	return &CommandOutcome{
		Message:   "Teams reloaded.",
		TeamsText: render.TeamList(teams),
	}, nil
}

// CurrentRenderings rebuilds every rendering from the persisted state. Used
// to refresh the update messages without a triggering mutation, e.g. on
// startup.
func (a *API) CurrentRenderings() (*CommandOutcome, error) {
	state, err := a.Store.LoadState()
	if err != nil {
		return nil, err
	}
	teams, err := a.Store.LoadTeams()
	if err != nil {
		return nil, err
	}

	outcome := &CommandOutcome{TeamsText: render.TeamList(teams)}
	a.attachGroupRenderings(outcome, state, teams)
	if state.Phase == shared.PhaseKnockout {
		outcome.BracketText = render.BracketTree(state.Bracket, state.KnockoutResults, teams)
	}
	return outcome, nil
}

// attachGroupRenderings fills the standings and schedule renderings whenever
// group data exists. The knockout phase keeps showing the final group table
// under the bracket, like the original update message did.
func (a *API) attachGroupRenderings(outcome *CommandOutcome, state *shared.TournamentState, teams map[string]shared.Team) {
	if state.Group == nil {
		return
	}
	standings := engine.ComputeStandings(state.Group.Matches)
	ranked := engine.RankTeams(state.Group.Teams, standings)
	outcome.StandingsText = render.StandingsTable(ranked, standings, teams)
	outcome.ScheduleText = render.GroupSchedule(state.Group.Matches, teams)
}

func sortedKeys(teams map[string]shared.Team) []string {
	keys := make([]string, 0, len(teams))
	for key := range teams {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func displayNames(teams map[string]shared.Team, keys []string) []string {
	names := make([]string, len(keys))
	for i, key := range keys {
		if team, ok := teams[key]; ok {
			names[i] = team.DisplayName
		} else {
			names[i] = key
		}
	}
	return names
}
