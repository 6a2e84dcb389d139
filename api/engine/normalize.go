/* normalize.go
 * Contains the team name normalization applied everywhere a name enters the system
 */

package engine

import "strings"

// Normalize canonicalizes a team display name into its lookup key: surrounding
// whitespace is stripped, the name is lowercased, and the reserved underscore
// delimiter is replaced with a backslash so display names containing it can
// never collide with keys that used it as a separator.
//
// Every call site that accepts a name (registration, result reports,
// qualifier lists) must go through this function; any asymmetry between two
// call sites causes silent result-matching failures.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", `\`)
}
