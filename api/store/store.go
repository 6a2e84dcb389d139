/* store.go
 * Contains the Store struct and NewStore function. The methods for this package are split across
 * teams.go, tournament_state.go and update_messages.go, one file per collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Teams           *mongo.Collection
		TournamentState *mongo.Collection
		UpdateMessages  *mongo.Collection
	}
}

// NewStore initialises the db connection and binds the collections.
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Teams = db.Collection("teams")
	s.Collections.TournamentState = db.Collection("tournament_state")
	s.Collections.UpdateMessages = db.Collection("update_messages")

	return s, nil
}
