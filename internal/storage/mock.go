package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hayate891/naev/pkg/mission"
	"github.com/hayate891/naev/pkg/state"
)

// MockStorage is an in-memory implementation of Storage for testing and
// for running the terminal client without Redis.
type MockStorage struct {
	sessions  map[uuid.UUID]*state.Session
	missions  map[string]*mission.Data
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		sessions: make(map[uuid.UUID]*state.Session),
		missions: make(map[string]*mission.Data),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.pingError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveSession mocks saving a session
func (m *MockStorage) SaveSession(ctx context.Context, s *state.Session) error {
	if s == nil {
		return errors.New("session cannot be nil")
	}
	m.sessions[s.ID] = s
	return nil
}

// LoadSession mocks loading a session
func (m *MockStorage) LoadSession(ctx context.Context, id uuid.UUID) (*state.Session, error) {
	s, exists := m.sessions[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	return s, nil
}

// DeleteSession mocks deleting a session
func (m *MockStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	delete(m.sessions, id)
	return nil
}

// ListMissions mocks listing the mission catalog
func (m *MockStorage) ListMissions(ctx context.Context) ([]*mission.Data, error) {
	result := make([]*mission.Data, 0, len(m.missions))
	for _, d := range m.missions {
		result = append(result, d)
	}
	return result, nil
}

// GetMission mocks getting a mission definition by filename
func (m *MockStorage) GetMission(ctx context.Context, filename string) (*mission.Data, error) {
	d, exists := m.missions[filename]
	if !exists {
		return nil, errors.New("mission not found")
	}
	return d, nil
}

// AddMission adds a mission definition to the mock storage (for testing)
func (m *MockStorage) AddMission(filename string, d *mission.Data) {
	m.missions[filename] = d
}
