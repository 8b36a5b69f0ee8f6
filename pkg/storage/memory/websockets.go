package memory

import (
	"context"

	"github.com/chris/savings-vaults/pkg/storage"
)

var _ storage.WebSocketManager = (*Store)(nil)

// AddConnection records a WebSocket connection id.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connections == nil {
		s.connections = make(map[string]struct{})
	}
	s.connections[connectionID] = struct{}{}
	return nil
}

// RemoveConnection drops a WebSocket connection id. Removing an unknown
// id is a no-op.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.connections, connectionID)
	return nil
}

// GetAllConnections returns every live connection id.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.connections))
	for id := range s.connections {
		out = append(out, id)
	}
	return out, nil
}
