package player

import (
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/warband/internal/game/ability"
	"github.com/udisondev/warband/internal/game/buff"
	"github.com/udisondev/warband/internal/game/combat"
	"github.com/udisondev/warband/internal/game/equipment"
	"github.com/udisondev/warband/internal/game/talent"
	"github.com/udisondev/warband/internal/model"
)

// Deps holds the world-side collaborators of a player.
// Gate, Notifier and Nodes may be nil.
type Deps struct {
	ID        string // generated when empty
	Clock     model.Clock
	Scheduler ability.Scheduler
	Gate      ability.InputGate
	Notifier  ability.Notifier
	Combat    *combat.Manager
	Targets   ability.TargetQuery
	Nodes     ability.NodeQuery
}

// Player — агрегат игрока: характеристики, экипировка, таланты, баффы и способности.
//
// Все компоненты создаются в конструкторе и связываются колбэками:
//   - экипировка → бонусы характеристик (и лечение, если включено)
//   - таланты силы/живучести → бонусы характеристик
//   - таланты скорости оружия → пересчёт экипировки
//   - баффы → бонус скорости атаки в экипировке
//
// Not thread-safe: owned by the world's simulation goroutine.
type Player struct {
	id    string
	cfg   Config
	clock model.Clock

	pos       model.Vec2
	facing    model.Vec2
	moveInput model.Vec2

	stats     *model.Stats
	health    *model.Health
	equipment *equipment.Equipment
	talents   *talent.Tree
	buffs     *buff.Manager
	combat    *combat.Manager

	melee  *ability.Melee
	dash   *ability.Dash
	charge *ability.Charge
	gather *ability.Gather
	warCry *ability.WarCry

	// extra* are permanent additions (AddStrength/AddVitality) kept apart
	// from equipment and talent bonuses.
	extraStrength float64
	extraVitality float64

	// last equipment bonuses seen, to detect stat changes from equipment.
	equipStrength float64
	equipVitality float64

	resources int
}

// New creates a player at the origin with full health and every ability ready.
func New(cfg Config, abilities ability.Config, buffs buff.Config, deps Deps) *Player {
	id := deps.ID
	if id == "" {
		id = uuid.NewString()
	}

	p := &Player{
		id:      id,
		cfg:     cfg,
		clock:   deps.Clock,
		facing:  model.V(1, 0),
		stats:   model.NewStats(cfg.BaseStrength, cfg.BaseVitality, cfg.StrengthRatio, cfg.VitalityRatio),
		talents: talent.NewTree(cfg.TalentPoints),
		combat:  deps.Combat,
	}
	p.health = model.NewHealth(p.stats.MaxHealth(), cfg.Invulnerability)
	p.equipment = equipment.New(p.talents)
	p.buffs = buff.NewManager(buffs, func() bool {
		return p.talents.HasEffect(model.EffectAxeFrenzy)
	})

	p.equipment.SetOnChange(p.onEquipmentChange)
	p.talents.SetOnLearn(p.onTalentLearned)
	p.buffs.SetOnChange(func() {
		p.equipment.SetAttackSpeedBonus(p.buffs.AttackSpeedBonus())
	})

	env := ability.Env{
		Clock:     deps.Clock,
		Scheduler: deps.Scheduler,
		Gate:      deps.Gate,
		Notifier:  deps.Notifier,
	}
	p.melee = ability.NewMelee(env, abilities.Melee, p, deps.Targets)
	p.dash = ability.NewDash(env, abilities.Dash, p)
	p.charge = ability.NewCharge(env, abilities.Charge, p, deps.Targets)
	p.gather = ability.NewGather(env, abilities.Gather, p, deps.Nodes, func(_ ability.Gatherable, amount int) {
		p.resources += amount
	})
	p.warCry = ability.NewWarCry(env, abilities.WarCry, p, p.buffs, deps.Targets)

	return p
}

func (p *Player) ID() string                      { return p.id }
func (p *Player) Position() model.Vec2            { return p.pos }
func (p *Player) Facing() model.Vec2              { return p.facing }
func (p *Player) Stats() *model.Stats             { return p.stats }
func (p *Player) Health() *model.Health           { return p.health }
func (p *Player) Equipment() *equipment.Equipment { return p.equipment }
func (p *Player) Talents() *talent.Tree           { return p.talents }
func (p *Player) Buffs() *buff.Manager            { return p.buffs }
func (p *Player) Resources() int                  { return p.resources }

func (p *Player) MeleeAbility() *ability.Melee   { return p.melee }
func (p *Player) DashAbility() *ability.Dash     { return p.dash }
func (p *Player) ChargeAbility() *ability.Charge { return p.charge }
func (p *Player) GatherAbility() *ability.Gather { return p.gather }
func (p *Player) WarCryAbility() *ability.WarCry { return p.warCry }

// SetPosition teleports the player (external physics, spawn).
func (p *Player) SetPosition(pos model.Vec2) { p.pos = pos }

// TalentBonus returns Σ effectValue × rank for a non-class effect.
func (p *Player) TalentBonus(effect model.TalentEffectType) float64 {
	return p.talents.EffectBonus(effect)
}

// AttackDamage returns the derived attack damage.
func (p *Player) AttackDamage() float64 {
	return p.stats.AttackDamage()
}

// AttackCooldown returns the current equipment attack cooldown.
func (p *Player) AttackCooldown() time.Duration {
	return time.Duration(math.Round(p.equipment.AttackCooldown() * float64(time.Second)))
}

// IsDualWielding reports whether both hands hold one-handed weapons.
func (p *Player) IsDualWielding() bool {
	return p.equipment.IsDualWielding()
}

// Strike resolves one melee hit instance against target.
func (p *Player) Strike(target model.Target, hand combat.Hand) {
	p.combat.Strike(p.attacker(), target, hand)
}

// Deal applies flat damage from the player (charge contact).
func (p *Player) Deal(target model.Target, amount float64) bool {
	return p.combat.Deal(p.id, target, amount, false)
}

func (p *Player) attacker() combat.Attacker {
	return combat.Attacker{
		ID:        p.id,
		Stats:     p.stats,
		Equipment: p.equipment,
		Talents:   p.talents,
		Buffs:     p.buffs,
	}
}

// IsDead reports whether the player's health reached zero.
func (p *Player) IsDead() bool {
	return p.health.IsDead()
}

// IsInvulnerable reports whether incoming damage is ignored right now:
// inside the post-hit window or mid-dash.
func (p *Player) IsInvulnerable() bool {
	return p.dash.IsInvulnerable() || p.health.IsInvulnerable(p.clock.Now())
}

// TakeDamage applies incoming damage. Ignored while dashing, inside the
// post-hit window and after death.
func (p *Player) TakeDamage(amount float64) bool {
	if p.dash.IsInvulnerable() {
		return false
	}
	if !p.health.TakeDamage(p.clock.Now(), amount) {
		return false
	}
	if p.health.IsDead() {
		p.charge.Cancel()
		slog.Info("player died", "id", p.id)
	}
	return true
}

// Stun is ignored: only enemies can be stunned.
func (p *Player) Stun(time.Duration) {}

// IsStunned always returns false.
func (p *Player) IsStunned() bool { return false }

// Equip puts w into the main hand. nil unequips.
// A successful equip heals to full when HealOnRecalculate is set.
func (p *Player) Equip(w *model.Weapon) error {
	if err := p.equipment.EquipMainHand(w); err != nil {
		return err
	}
	p.syncStats(p.cfg.HealOnRecalculate)
	return nil
}

// EquipOffHand puts w into the off hand. nil unequips.
func (p *Player) EquipOffHand(w *model.Weapon) error {
	if err := p.equipment.EquipOffHand(w); err != nil {
		return err
	}
	p.syncStats(p.cfg.HealOnRecalculate)
	return nil
}

// LearnTalent spends one point on tal.
func (p *Player) LearnTalent(tal *model.Talent) error {
	return p.talents.Learn(tal)
}

// AddStrength permanently raises strength. Health is untouched.
func (p *Player) AddStrength(amount float64) {
	p.extraStrength += amount
	p.syncStats(false)
}

// AddVitality permanently raises vitality and, if configured, heals to full.
func (p *Player) AddVitality(amount float64) {
	p.extraVitality += amount
	p.syncStats(p.cfg.HealOnRecalculate)
}

// onEquipmentChange tracks equipment bonuses. Implicit recomputes
// (frenzy, weapon speed talents) never heal.
func (p *Player) onEquipmentChange() {
	str, vit := p.equipment.BonusStrength(), p.equipment.BonusVitality()
	if str == p.equipStrength && vit == p.equipVitality {
		return
	}
	p.equipStrength, p.equipVitality = str, vit
	p.syncStats(false)
}

func (p *Player) onTalentLearned(tal *model.Talent, rank int) {
	switch tal.Effect {
	case model.EffectIncreaseStrength:
		p.syncStats(false)
	case model.EffectIncreaseVitality:
		p.syncStats(p.cfg.HealOnRecalculate)
	case model.EffectWeaponSpeedBonus:
		p.equipment.Recalculate()
	}
}

// syncStats pushes equipment, talent and permanent bonuses into Stats and
// resizes health. heal refills health to the new maximum.
func (p *Player) syncStats(heal bool) {
	p.stats.SetBonuses(
		p.equipStrength+p.talents.EffectBonus(model.EffectIncreaseStrength)+p.extraStrength,
		p.equipVitality+p.talents.EffectBonus(model.EffectIncreaseVitality)+p.extraVitality,
	)

	maxHealth := p.stats.MaxHealth()
	if heal {
		p.health.SetMax(maxHealth)
	} else {
		p.health.Resize(maxHealth)
	}

	slog.Debug("player stats recalculated",
		"id", p.id,
		"strength", p.stats.Strength(),
		"vitality", p.stats.Vitality(),
		"attackDamage", p.stats.AttackDamage(),
		"maxHealth", maxHealth,
		"healed", heal)
}

// Respawn revives the player at pos with full health, no buffs and every
// ability ready. Equipment, talents and resources are kept.
func (p *Player) Respawn(pos model.Vec2) {
	p.pos = pos
	p.moveInput = model.Vec2{}
	p.health.Reset()
	p.buffs.Reset()
	p.equipment.SetAttackSpeedBonus(0)
	p.melee.Reset()
	p.dash.Reset()
	p.charge.Reset()
	p.gather.Reset()
	p.warCry.Reset()
	slog.Info("player respawned", "id", p.id, "pos", pos)
}
