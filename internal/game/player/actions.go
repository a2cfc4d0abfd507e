package player

import (
	"time"

	"github.com/udisondev/warband/internal/game/ability"
	"github.com/udisondev/warband/internal/game/buff"
	"github.com/udisondev/warband/internal/model"
)

// Attack swings toward aim. A zero aim swings along the current facing.
func (p *Player) Attack(aim model.Vec2) bool {
	if p.IsDead() {
		return false
	}
	aim = p.face(aim)
	return p.melee.Activate(aim)
}

// Dash starts a dash along dir.
func (p *Player) Dash(dir model.Vec2) bool {
	if p.IsDead() {
		return false
	}
	return p.dash.Activate(dir)
}

// BeginCharge enters charge aiming.
func (p *Player) BeginCharge() bool {
	if p.IsDead() {
		return false
	}
	return p.charge.BeginAim()
}

// ReleaseCharge executes the aimed charge along dir. Zero dir cancels.
func (p *Player) ReleaseCharge(dir model.Vec2) bool {
	return p.charge.Release(dir)
}

// CancelCharge drops charge aiming.
func (p *Player) CancelCharge() {
	p.charge.Cancel()
}

// Gather swings the tool toward aim and returns the total yield.
func (p *Player) Gather(aim model.Vec2) (int, bool) {
	if p.IsDead() {
		return 0, false
	}
	aim = p.face(aim)
	return p.gather.Activate(aim)
}

// WarCry shouts: starts the damage buff and stuns enemies around.
func (p *Player) WarCry() (int, bool) {
	if p.IsDead() {
		return 0, false
	}
	return p.warCry.Activate()
}

func (p *Player) face(aim model.Vec2) model.Vec2 {
	if aim.IsZero() {
		return p.facing
	}
	p.facing = aim.Normalize()
	return p.facing
}

// SetMoveInput sets the walking direction. Zero stops.
func (p *Player) SetMoveInput(dir model.Vec2) {
	p.moveInput = dir
}

// Velocity returns the current velocity: dash and charge override walking,
// aiming a charge slows it.
func (p *Player) Velocity() model.Vec2 {
	if p.IsDead() {
		return model.Vec2{}
	}
	if p.dash.IsExecuting() {
		return p.dash.Velocity()
	}
	if p.charge.IsExecuting() {
		return p.charge.Velocity()
	}
	if p.moveInput.IsZero() {
		return model.Vec2{}
	}
	return p.moveInput.Normalize().Scale(p.cfg.MoveSpeed * p.charge.MovementMultiplier())
}

// AdvanceBuffs ticks buff timers.
func (p *Player) AdvanceBuffs(dt time.Duration) {
	p.buffs.Advance(dt)
}

// AdvanceMotion integrates velocity over dt and resolves charge contacts.
// Returns the number of enemies hit by the charge this tick.
func (p *Player) AdvanceMotion(dt time.Duration) int {
	if dt <= 0 || p.IsDead() {
		return 0
	}
	p.pos = p.pos.Add(p.Velocity().Scale(dt.Seconds()))
	return p.charge.CheckContacts()
}

// Snapshot is the player state exposed to UI and reports.
type Snapshot struct {
	ID             string
	Position       model.Vec2
	Health         float64
	MaxHealth      float64
	Strength       float64
	Vitality       float64
	AttackDamage   float64
	AttackCooldown time.Duration
	DualWielding   bool
	TalentPoints   int
	Resources      int
	Cooldowns      map[ability.Kind]float64
	Buffs          buff.Status
}

// Snapshot returns the current player state.
func (p *Player) Snapshot() Snapshot {
	return Snapshot{
		ID:             p.id,
		Position:       p.pos,
		Health:         p.health.Current(),
		MaxHealth:      p.health.Max(),
		Strength:       p.stats.Strength(),
		Vitality:       p.stats.Vitality(),
		AttackDamage:   p.stats.AttackDamage(),
		AttackCooldown: p.AttackCooldown(),
		DualWielding:   p.equipment.IsDualWielding(),
		TalentPoints:   p.talents.Points(),
		Resources:      p.resources,
		Cooldowns:      p.Cooldowns(),
		Buffs:          p.buffs.Status(),
	}
}

// Cooldowns returns the normalized cooldown fraction of every ability.
func (p *Player) Cooldowns() map[ability.Kind]float64 {
	return map[ability.Kind]float64{
		ability.KindMelee:  p.melee.CooldownFraction(),
		ability.KindDash:   p.dash.CooldownFraction(),
		ability.KindCharge: p.charge.CooldownFraction(),
		ability.KindGather: p.gather.CooldownFraction(),
		ability.KindWarCry: p.warCry.CooldownFraction(),
	}
}
