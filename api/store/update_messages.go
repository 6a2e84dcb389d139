/* update_messages.go
 * Contains the methods for interacting with the update_messages collection.
 * The bot edits two persistent messages in the update channel; their IDs are
 * kept here so they survive restarts instead of being reposted
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type updateMessageDoc struct {
	Key       string `bson:"key"`
	MessageID string `bson:"message_id"`
}

// GetUpdateMessageID returns the cached Discord message ID for a given update
// message key, or an empty string if none has been created yet.
func (s *Store) GetUpdateMessageID(key string) (string, error) {
	var doc updateMessageDoc
	err := s.Collections.UpdateMessages.FindOne(context.TODO(), bson.D{{Key: "key", Value: key}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("error fetching update message id: %w", err)
	}
	return doc.MessageID, nil
}

// SetUpdateMessageID stores or replaces the Discord message ID for a key.
func (s *Store) SetUpdateMessageID(key string, messageID string) error {
	opts := options.Replace().SetUpsert(true)
	doc := updateMessageDoc{Key: key, MessageID: messageID}
	_, err := s.Collections.UpdateMessages.ReplaceOne(context.TODO(), bson.D{{Key: "key", Value: key}}, doc, opts)
	if err != nil {
		return fmt.Errorf("failed to store update message id: %w", err)
	}
	return nil
}
