/* suggestions.go
 * Contains fuzzy "did you mean" hints attached to rejected result reports
 */

package api

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"clancup-bot/api/shared"
)

// suggestUnknownTeams builds a hint block for report names that do not match
// any registered team key. Matching stays strictly exact everywhere results
// are recorded; the fuzzy lookup is only used to tell the reporter what they
// probably meant.
func suggestUnknownTeams(teams map[string]shared.Team, keys ...string) string {
	registered := make([]string, 0, len(teams))
	for key := range teams {
		registered = append(registered, key)
	}
	sort.Strings(registered)

	var hints []string
	for _, key := range keys {
		if _, ok := teams[key]; ok {
			continue
		}
		matches := fuzzy.RankFindFold(key, registered)
		if len(matches) == 0 {
			hints = append(hints, fmt.Sprintf("'%s' does not match any registered team", key))
			continue
		}
		sort.Sort(matches)
		hints = append(hints, fmt.Sprintf("'%s' does not match any registered team, closest match is '%s'",
			key, teams[matches[0].Target].DisplayName))
	}

	if len(hints) == 0 {
		return ""
	}
	return "\n" + strings.Join(hints, "\n")
}
