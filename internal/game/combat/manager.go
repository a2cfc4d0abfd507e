package combat

import (
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/warband/internal/model"
)

// DamageEvent describes applied damage for floating damage numbers.
type DamageEvent struct {
	SourceID string
	TargetID string
	Amount   float64
	Position model.Vec2
	Class    model.WeaponClass

	// PlayerDamage is true when the player is the victim (highlighted number).
	PlayerDamage bool
}

// Manager applies resolved damage to targets.
// Single point of cross-actor mutation: every hit goes through Target.TakeDamage.
type Manager struct {
	rng *rand.Rand

	// damageObserver receives every applied hit (nil allowed).
	damageObserver func(DamageEvent)
}

// NewManager creates a Manager rolling weapon damage from rng.
func NewManager(rng *rand.Rand) *Manager {
	return &Manager{rng: rng}
}

// SetDamageObserver sets callback for applied damage.
func (m *Manager) SetDamageObserver(fn func(DamageEvent)) {
	m.damageObserver = fn
}

// Strike resolves one hit instance of attacker against target and applies it.
// Axe hits notify the attacker's buffs once per instance, applied or not.
// Returns damage and whether the target accepted it.
func (m *Manager) Strike(a Attacker, target model.Target, hand Hand) (float64, bool) {
	if target == nil || target.IsDead() {
		return 0, false
	}

	damage, class := ResolveHit(a, hand, m.rng)
	applied := m.apply(a.ID, target, damage, class, false)

	if class == model.ClassAxe && a.Buffs != nil {
		a.Buffs.OnAxeHit()
	}

	slog.Debug("strike",
		"attacker", a.ID,
		"target", target.ID(),
		"hand", hand,
		"class", class,
		"damage", damage,
		"applied", applied)

	return damage, applied
}

// Deal applies a flat amount (charge contact, enemy contact).
// playerDamage marks the player as the victim.
func (m *Manager) Deal(sourceID string, target model.Target, amount float64, playerDamage bool) bool {
	if target == nil || target.IsDead() {
		return false
	}
	return m.apply(sourceID, target, max(amount, 0), model.ClassNone, playerDamage)
}

func (m *Manager) apply(sourceID string, target model.Target, amount float64, class model.WeaponClass, playerDamage bool) bool {
	if !target.TakeDamage(amount) {
		return false
	}
	if m.damageObserver != nil {
		m.damageObserver(DamageEvent{
			SourceID:     sourceID,
			TargetID:     target.ID(),
			Amount:       amount,
			Position:     target.Position(),
			Class:        class,
			PlayerDamage: playerDamage,
		})
	}
	return true
}
