/* test_helpers.go
 * Contains test helper functions for store package tests
 */

package store

import (
	"context"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	s, err := NewStore("test_clancup", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if s.Client != nil {
			// Drop test database
			s.Database.Drop(context.TODO())
			// Disconnect client
			s.Client.Disconnect(context.TODO())
		}
	}

	return s, cleanup, nil
}
