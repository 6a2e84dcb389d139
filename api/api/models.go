/* models.go
 * Contains the structs returned by API operations
 */

package api

// CommandOutcome carries an operation's reply message plus the refreshed
// renderings the transport should publish to the persistent update messages.
// Empty rendering fields mean "nothing to publish for that message".
//
// By the time an outcome is returned the mutated state has already been
// persisted; publishing is best effort and never affects correctness.
type CommandOutcome struct {
	Message       string
	TeamsText     string
	StandingsText string
	ScheduleText  string
	BracketText   string
}
