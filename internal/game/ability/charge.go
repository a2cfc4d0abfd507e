package ability

import (
	"log/slog"
	"time"

	"github.com/udisondev/warband/internal/model"
)

// ChargeOwner is the actor performing a charge.
type ChargeOwner interface {
	Owner
	AttackDamage() float64
	Deal(target model.Target, amount float64) bool
}

// Charge — прицельный рывок: Ready → Aiming → Executing.
//
// Прицеливание отменяется отпусканием без направления. Во время выполнения
// каждая цель в радиусе контакта получает урон не более одного раза за рывок.
type Charge struct {
	cycle
	cfg     ChargeConfig
	owner   ChargeOwner
	targets TargetQuery

	aiming    bool
	direction model.Vec2
	hit       map[string]struct{}
}

// NewCharge creates a ready charge ability.
func NewCharge(env Env, cfg ChargeConfig, owner ChargeOwner, targets TargetQuery) *Charge {
	return &Charge{
		cycle:   cycle{kind: KindCharge, env: env},
		cfg:     cfg,
		owner:   owner,
		targets: targets,
		hit:     make(map[string]struct{}),
	}
}

// Cooldown returns the charge cooldown reduced by talents.
func (c *Charge) Cooldown() time.Duration {
	return scaleDown(c.cfg.Cooldown, c.owner.TalentBonus(model.EffectDecreaseChargeCooldown))
}

// Speed returns the charge speed increased by talents.
func (c *Charge) Speed() float64 {
	return c.cfg.Speed * (1 + c.owner.TalentBonus(model.EffectIncreaseChargeDistance)/100)
}

// CanActivate reports whether aiming may begin now.
func (c *Charge) CanActivate() bool {
	return !c.aiming && c.ready(c.Cooldown())
}

// CooldownFraction returns 1 while aiming or executing.
func (c *Charge) CooldownFraction() float64 {
	if c.aiming {
		return 1
	}
	return c.fraction(c.Cooldown())
}

// IsAiming reports whether the charge is being aimed.
func (c *Charge) IsAiming() bool { return c.aiming }

// MovementMultiplier slows normal movement while aiming.
func (c *Charge) MovementMultiplier() float64 {
	if c.aiming {
		return c.cfg.AimMoveMultiplier
	}
	return 1
}

// BeginAim enters Aiming (input down).
func (c *Charge) BeginAim() bool {
	if c.blocked(false) {
		logRejected(c.kind, "input blocked")
		return false
	}
	if !c.CanActivate() {
		return false
	}
	c.aiming = true
	return true
}

// Release executes the charge along dir (input up).
// A zero direction cancels aiming back to Ready without a cooldown.
func (c *Charge) Release(dir model.Vec2) bool {
	if !c.aiming {
		return false
	}
	c.aiming = false
	if dir.IsZero() {
		slog.Debug("charge cancelled", "owner", c.owner.ID())
		return false
	}

	c.direction = dir.Normalize()
	clear(c.hit)
	c.start(c.cfg.Duration)
	return true
}

// Cancel drops aiming. No-op when executing: a running charge completes.
func (c *Charge) Cancel() {
	c.aiming = false
}

// Velocity returns the override velocity while executing, zero otherwise.
func (c *Charge) Velocity() model.Vec2 {
	if !c.executing {
		return model.Vec2{}
	}
	return c.direction.Scale(c.Speed())
}

// CheckContacts damages targets touching the owner during execution.
// Returns the number of new contacts.
func (c *Charge) CheckContacts() int {
	if !c.executing {
		return 0
	}

	damage := c.owner.AttackDamage() * c.cfg.DamageMultiplier
	contacts := 0
	for _, t := range c.targets.Within(c.owner.Position(), c.cfg.ContactRadius) {
		if t.IsDead() {
			continue
		}
		if _, done := c.hit[t.ID()]; done {
			continue
		}
		c.hit[t.ID()] = struct{}{}
		contacts++
		c.owner.Deal(t, damage)
	}
	return contacts
}

// Reset returns the charge to Ready (respawn).
func (c *Charge) Reset() {
	c.cycle.Reset()
	c.aiming = false
	clear(c.hit)
}
