package ability

import (
	"time"

	"github.com/udisondev/warband/internal/model"
)

// Dash — короткий рывок с неуязвимостью на время выполнения.
// После старта не отменяется.
type Dash struct {
	cycle
	cfg       DashConfig
	owner     Owner
	direction model.Vec2
}

// NewDash creates a ready dash ability.
func NewDash(env Env, cfg DashConfig, owner Owner) *Dash {
	return &Dash{
		cycle: cycle{kind: KindDash, env: env},
		cfg:   cfg,
		owner: owner,
	}
}

// Cooldown returns the dash cooldown reduced by talents.
func (d *Dash) Cooldown() time.Duration {
	return scaleDown(d.cfg.Cooldown, d.owner.TalentBonus(model.EffectDecreaseDashCooldown))
}

// Speed returns the dash speed increased by talents.
func (d *Dash) Speed() float64 {
	return d.cfg.Speed * (1 + d.owner.TalentBonus(model.EffectIncreaseDashDistance)/100)
}

// CanActivate reports whether a dash may start now.
func (d *Dash) CanActivate() bool {
	return d.ready(d.Cooldown())
}

// CooldownFraction returns the normalized cooldown in [0,1].
func (d *Dash) CooldownFraction() float64 {
	return d.fraction(d.Cooldown())
}

// Activate starts a dash along dir. A zero direction is rejected.
func (d *Dash) Activate(dir model.Vec2) bool {
	if d.blocked(false) {
		logRejected(d.kind, "input blocked")
		return false
	}
	if dir.IsZero() || !d.CanActivate() {
		return false
	}

	d.direction = dir.Normalize()
	d.start(d.cfg.Duration)
	return true
}

// IsInvulnerable reports whether the owner ignores damage (mid-dash).
func (d *Dash) IsInvulnerable() bool {
	return d.executing
}

// Velocity returns the override velocity while executing, zero otherwise.
func (d *Dash) Velocity() model.Vec2 {
	if !d.executing {
		return model.Vec2{}
	}
	return d.direction.Scale(d.Speed())
}
