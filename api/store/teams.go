/* teams.go
 * Contains the methods for interacting with the teams collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"clancup-bot/api/shared"
)

// LoadTeams returns the full team registry keyed by normalized team key.
// An empty collection yields an empty map, not an error.
func (s *Store) LoadTeams() (map[string]shared.Team, error) {
	cursor, err := s.Collections.Teams.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching teams from db: %w", err)
	}

	var docs []shared.Team
	if err = cursor.All(context.TODO(), &docs); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of teams: %w", err)
	}

	teams := make(map[string]shared.Team, len(docs))
	for _, team := range docs {
		teams[team.Key] = team
	}
	return teams, nil
}

// InsertTeam stores a newly registered team. Registration is the only writer
// and teams are never deleted, so a plain insert is enough; duplicate keys
// are rejected by the caller before it gets here.
func (s *Store) InsertTeam(team shared.Team) error {
	if team.Key == "" {
		return fmt.Errorf("team key cannot be empty")
	}
	_, err := s.Collections.Teams.InsertOne(context.TODO(), team)
	if err != nil {
		return fmt.Errorf("failed to insert team %q: %w", team.DisplayName, err)
	}
	return nil
}
