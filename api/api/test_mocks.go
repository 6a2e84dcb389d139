/* test_mocks.go
 * Contains mock structures for testing the API package
 */

package api

import (
	"context"
	"fmt"

	"clancup-bot/api/shared"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Storage for mock data
	Teams      map[string]shared.Team
	State      *shared.TournamentState
	MessageIDs map[string]string

	// Error injection for testing error paths
	LoadTeamsError  error
	InsertTeamError error
	LoadStateError  error
	SaveStateError  error

	// SaveCount tracks how many times the state document was written
	SaveCount int
}

// NewMockStore creates a new MockStore with default values
func NewMockStore() *MockStore {
	return &MockStore{
		Teams:      make(map[string]shared.Team),
		State:      shared.NewTournamentState(),
		MessageIDs: make(map[string]string),
	}
}

// AddTeam registers a team directly in the mock registry
func (m *MockStore) AddTeam(key, displayName string, memberNames ...string) {
	members := make([]shared.Member, len(memberNames))
	for i, name := range memberNames {
		members[i] = shared.Member{ID: fmt.Sprintf("id-%s-%d", key, i), Name: name}
	}
	if len(members) == 0 {
		members = []shared.Member{{ID: "id-" + key, Name: displayName + " captain"}}
	}
	m.Teams[key] = shared.Team{
		Key:         key,
		DisplayName: displayName,
		Captain:     members[0],
		Members:     members,
	}
}

// LoadTeams mock implementation
func (m *MockStore) LoadTeams() (map[string]shared.Team, error) {
	if m.LoadTeamsError != nil {
		return nil, m.LoadTeamsError
	}
	teams := make(map[string]shared.Team, len(m.Teams))
	for key, team := range m.Teams {
		teams[key] = team
	}
	return teams, nil
}

// InsertTeam mock implementation
func (m *MockStore) InsertTeam(team shared.Team) error {
	if m.InsertTeamError != nil {
		return m.InsertTeamError
	}
	if _, ok := m.Teams[team.Key]; ok {
		return fmt.Errorf("duplicate key: %s", team.Key)
	}
	m.Teams[team.Key] = team
	return nil
}

// LoadState mock implementation
func (m *MockStore) LoadState() (*shared.TournamentState, error) {
	if m.LoadStateError != nil {
		return nil, m.LoadStateError
	}
	if m.State == nil {
		return shared.NewTournamentState(), nil
	}
	// shallow copy; nested slices and the group pointer stay shared
	state := *m.State
	return &state, nil
}

// SaveState mock implementation
func (m *MockStore) SaveState(state *shared.TournamentState) error {
	if m.SaveStateError != nil {
		return m.SaveStateError
	}
	saved := *state
	m.State = &saved
	m.SaveCount++
	return nil
}

// GetUpdateMessageID mock implementation
func (m *MockStore) GetUpdateMessageID(key string) (string, error) {
	return m.MessageIDs[key], nil
}

// SetUpdateMessageID mock implementation
func (m *MockStore) SetUpdateMessageID(key string, messageID string) error {
	m.MessageIDs[key] = messageID
	return nil
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// GetDatabase returns a stub database handle
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: "test_db"}
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

// GetClient returns a stub client handle
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}
