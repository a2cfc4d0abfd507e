package testutil

import (
	"time"

	"github.com/udisondev/warband/internal/model"
)

// Dummy — простая цель для unit тестов: записывает полученный урон и оглушения.
type Dummy struct {
	id      string
	pos     model.Vec2
	health  float64
	stunned bool

	Hits   []float64
	Stuns  []time.Duration
	Immune bool // TakeDamage returns false while set
}

// NewDummy creates a live target with the given health.
func NewDummy(id string, pos model.Vec2, health float64) *Dummy {
	return &Dummy{id: id, pos: pos, health: health}
}

func (d *Dummy) ID() string           { return d.id }
func (d *Dummy) Position() model.Vec2 { return d.pos }
func (d *Dummy) IsDead() bool         { return d.health <= 0 }
func (d *Dummy) IsStunned() bool      { return d.stunned }
func (d *Dummy) Health() float64      { return d.health }

// MoveTo teleports the dummy.
func (d *Dummy) MoveTo(pos model.Vec2) { d.pos = pos }

func (d *Dummy) TakeDamage(amount float64) bool {
	if d.Immune || d.IsDead() {
		return false
	}
	d.health -= amount
	d.Hits = append(d.Hits, amount)
	return true
}

func (d *Dummy) Stun(duration time.Duration) {
	d.stunned = true
	d.Stuns = append(d.Stuns, duration)
}

// Targets is a slice-backed TargetQuery.
type Targets []model.Target

// Within returns targets whose position lies within radius of center.
func (ts Targets) Within(center model.Vec2, radius float64) []model.Target {
	var result []model.Target
	for _, t := range ts {
		if center.Distance(t.Position()) <= radius {
			result = append(result, t)
		}
	}
	return result
}
