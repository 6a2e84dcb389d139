/* tournament_state.go
 * Contains the methods for interacting with the tournament_state collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clancup-bot/api/shared"
)

// Exactly one tournament runs at a time, so the state lives in a single
// well-known document.
const stateDocID = "current"

// LoadState fetches the tournament document, returning a fresh registration
// phase document when nothing has been stored yet.
func (s *Store) LoadState() (*shared.TournamentState, error) {
	var state shared.TournamentState
	err := s.Collections.TournamentState.FindOne(context.TODO(), bson.D{{Key: "_id", Value: stateDocID}}).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.NewTournamentState(), nil
		}
		return nil, fmt.Errorf("error fetching tournament state from db: %w", err)
	}
	return &state, nil
}

// SaveState writes the whole document in one replace so a concurrent reader
// never sees a partially updated tournament.
func (s *Store) SaveState(state *shared.TournamentState) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.Collections.TournamentState.ReplaceOne(context.TODO(), bson.D{{Key: "_id", Value: stateDocID}}, state, opts)
	if err != nil {
		return fmt.Errorf("failed to save tournament state: %w", err)
	}
	return nil
}
