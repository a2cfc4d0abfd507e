package ai

import (
	"fmt"
	"log/slog"
	"time"
)

// Manager holds the enemies of one world in registration order.
// Not thread-safe: owned by the world's simulation goroutine.
type Manager struct {
	enemies []*Enemy
	byID    map[string]*Enemy
}

// NewManager creates an empty enemy roster.
func NewManager() *Manager {
	return &Manager{
		byID: make(map[string]*Enemy),
	}
}

// Register adds an enemy. Re-registering the same id replaces it.
func (m *Manager) Register(e *Enemy) {
	if _, exists := m.byID[e.ID()]; exists {
		m.Unregister(e.ID())
	}
	m.enemies = append(m.enemies, e)
	m.byID[e.ID()] = e

	slog.Debug("enemy registered",
		"id", e.ID(),
		"name", e.Name(),
		"state", e.State())
}

// Unregister removes an enemy by id.
func (m *Manager) Unregister(id string) {
	if _, ok := m.byID[id]; !ok {
		return
	}
	delete(m.byID, id)
	for i, e := range m.enemies {
		if e.ID() == id {
			m.enemies = append(m.enemies[:i], m.enemies[i+1:]...)
			break
		}
	}
}

// Count returns number of registered enemies.
func (m *Manager) Count() int {
	return len(m.enemies)
}

// Get returns the enemy with id.
func (m *Manager) Get(id string) (*Enemy, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("enemy %q not found", id)
	}
	return e, nil
}

// Enemies returns registered enemies in registration order.
func (m *Manager) Enemies() []*Enemy {
	result := make([]*Enemy, len(m.enemies))
	copy(result, m.enemies)
	return result
}

// AdvanceAll ticks every live enemy.
func (m *Manager) AdvanceAll(dt time.Duration, quarry Quarry) {
	for _, e := range m.enemies {
		e.Advance(dt, quarry)
	}

	if IsDebugEnabled() && len(m.enemies) > 0 {
		slog.Debug("AI tick completed", "enemies", len(m.enemies))
	}
}

// RemoveDead unregisters dead enemies and returns their ids.
func (m *Manager) RemoveDead() []string {
	var removed []string
	n := 0
	for _, e := range m.enemies {
		if e.IsDead() {
			removed = append(removed, e.ID())
			delete(m.byID, e.ID())
			continue
		}
		m.enemies[n] = e
		n++
	}
	clear(m.enemies[n:])
	m.enemies = m.enemies[:n]
	return removed
}
