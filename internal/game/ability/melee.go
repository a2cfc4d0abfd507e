package ability

import (
	"log/slog"
	"time"

	"github.com/udisondev/warband/internal/game/combat"
	"github.com/udisondev/warband/internal/model"
)

// MeleeOwner is the actor swinging a weapon.
type MeleeOwner interface {
	Owner
	AttackCooldown() time.Duration
	IsDualWielding() bool
	IsDead() bool
	Strike(target model.Target, hand combat.Hand)
}

// Melee — удар оружием по дуге перед игроком.
// Cooldown равен текущему AttackCooldown экипировки и читается лениво.
type Melee struct {
	cycle
	cfg     MeleeConfig
	owner   MeleeOwner
	targets TargetQuery
}

// NewMelee creates a ready melee ability.
func NewMelee(env Env, cfg MeleeConfig, owner MeleeOwner, targets TargetQuery) *Melee {
	return &Melee{
		cycle:   cycle{kind: KindMelee, env: env},
		cfg:     cfg,
		owner:   owner,
		targets: targets,
	}
}

// Cooldown returns the owner's current attack cooldown.
func (m *Melee) Cooldown() time.Duration {
	return m.owner.AttackCooldown()
}

// Range returns the attack range including talent bonuses.
func (m *Melee) Range() float64 {
	return m.cfg.Range + m.owner.TalentBonus(model.EffectIncreaseMeleeRange)
}

// Arc returns the full attack arc in degrees including talent bonuses.
func (m *Melee) Arc() float64 {
	return m.cfg.Arc + m.owner.TalentBonus(model.EffectIncreaseMeleeArc)
}

// CanActivate reports whether a swing may start now.
func (m *Melee) CanActivate() bool {
	return m.ready(m.Cooldown())
}

// CooldownFraction returns the normalized cooldown in [0,1].
func (m *Melee) CooldownFraction() float64 {
	return m.fraction(m.Cooldown())
}

// Activate swings toward aim. Every live target within range and half-arc
// of aim takes a hit; dual wielding adds an off-hand hit after SecondHitDelay.
// The off-hand hit is dropped if the owner dies or the ability is Reset first.
// Returns false when blocked, executing or on cooldown.
func (m *Melee) Activate(aim model.Vec2) bool {
	if m.blocked(true) {
		logRejected(m.kind, "input blocked")
		return false
	}
	if !m.CanActivate() {
		return false
	}

	m.start(m.cfg.Swing)
	gen := m.gen

	origin := m.owner.Position()
	radius, arc := m.Range(), m.Arc()
	dual := m.owner.IsDualWielding()

	hits := 0
	for _, t := range m.targets.Within(origin, radius) {
		if t.IsDead() || !model.WithinArc(origin, aim, t.Position(), radius, arc) {
			continue
		}
		hits++

		if !dual {
			m.owner.Strike(t, combat.HandCombined)
			continue
		}

		m.owner.Strike(t, combat.HandMain)
		m.env.Scheduler.After(m.cfg.SecondHitDelay, func() {
			if m.gen == gen && !m.owner.IsDead() && !t.IsDead() {
				m.owner.Strike(t, combat.HandOff)
			}
		})
	}

	slog.Debug("melee swing",
		"owner", m.owner.ID(),
		"targets", hits,
		"dualWield", dual,
		"cooldown", m.Cooldown())
	return true
}
