/* mock_session.go
 * Contains mock implementation of DiscordSession for testing
 */

package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// MockDiscordSession implements DiscordSession for testing purposes
type MockDiscordSession struct {
	// SentMessages stores all messages sent during tests
	SentMessages []MockMessage
	// EditedMessages stores all message edits during tests
	EditedMessages []MockMessage
	// Permissions is returned from UserChannelPermissions
	Permissions int64
	// ErrorToReturn allows tests to simulate errors
	ErrorToReturn error
	// EditErrorToReturn allows tests to simulate failing edits independently
	EditErrorToReturn error

	nextMessageID int
}

// MockMessage represents a message sent or edited in a channel
type MockMessage struct {
	ChannelID string
	MessageID string
	Content   string
}

// ChannelMessageSend implements DiscordSession.ChannelMessageSend
func (m *MockDiscordSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}

	m.nextMessageID++
	id := fmt.Sprintf("mock_message_%d", m.nextMessageID)
	m.SentMessages = append(m.SentMessages, MockMessage{
		ChannelID: channelID,
		MessageID: id,
		Content:   content,
	})

	return &discordgo.Message{
		ID:        id,
		ChannelID: channelID,
		Content:   content,
	}, nil
}

// ChannelMessageEdit implements DiscordSession.ChannelMessageEdit
func (m *MockDiscordSession) ChannelMessageEdit(channelID string, messageID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.EditErrorToReturn != nil {
		return nil, m.EditErrorToReturn
	}

	m.EditedMessages = append(m.EditedMessages, MockMessage{
		ChannelID: channelID,
		MessageID: messageID,
		Content:   content,
	})

	return &discordgo.Message{
		ID:        messageID,
		ChannelID: channelID,
		Content:   content,
	}, nil
}

// UserChannelPermissions implements DiscordSession.UserChannelPermissions
func (m *MockDiscordSession) UserChannelPermissions(userID string, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error) {
	return m.Permissions, nil
}

// GetLastMessage returns the last message sent, or empty MockMessage if none
func (m *MockDiscordSession) GetLastMessage() MockMessage {
	if len(m.SentMessages) == 0 {
		return MockMessage{}
	}
	return m.SentMessages[len(m.SentMessages)-1]
}

// ClearMessages clears all stored messages
func (m *MockDiscordSession) ClearMessages() {
	m.SentMessages = nil
	m.EditedMessages = nil
}

// NewMockDiscordSession creates a new MockDiscordSession for testing
func NewMockDiscordSession() *MockDiscordSession {
	return &MockDiscordSession{
		SentMessages: make([]MockMessage, 0),
	}
}
