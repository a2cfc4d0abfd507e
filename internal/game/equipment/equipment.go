package equipment

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/warband/internal/model"
)

// DefaultAttackCooldown is used when nothing is held in the main hand.
const DefaultAttackCooldown = 0.5

// minAttackCooldown bounds the cooldown when speed bonuses add up to 100% or more.
const minAttackCooldown = 0.05

var (
	ErrOffHandBlocked   = errors.New("off hand blocked by two-handed main hand")
	ErrTwoHandedOffHand = errors.New("two-handed weapon cannot be equipped in off hand")
	ErrShieldMainHand   = errors.New("shield cannot be equipped in main hand")
)

// MasterySource provides weapon-mastery speed bonuses.
// Implemented by talent.Tree.
type MasterySource interface {
	WeaponMasterySpeedBonus(class model.WeaponClass) float64
}

// Equipment — выбранное оружие в двух слотах и производные от него значения.
//
// Инварианты:
//   - двуручное оружие в mainHand означает offHand == nil
//   - offHand никогда не содержит двуручное оружие
//
// Производные значения пересчитываются синхронно при каждом изменении входов.
type Equipment struct {
	mainHand *model.Weapon
	offHand  *model.Weapon

	mastery       MasterySource
	frenzyPercent float64

	// derived
	minDamage      float64
	maxDamage      float64
	attackCooldown float64
	bonusStrength  float64
	bonusVitality  float64
	dualWielding   bool

	onChange func()
}

// New creates empty Equipment. mastery may be nil (no talents).
func New(mastery MasterySource) *Equipment {
	e := &Equipment{mastery: mastery}
	e.Recalculate()
	return e
}

// SetOnChange sets the callback fired after every slot change.
// The owner uses it to push new stat bonuses and attack speed downstream.
func (e *Equipment) SetOnChange(fn func()) {
	e.onChange = fn
}

// MainHand returns the main hand weapon or nil.
func (e *Equipment) MainHand() *model.Weapon { return e.mainHand }

// OffHand returns the off hand weapon or nil.
func (e *Equipment) OffHand() *model.Weapon { return e.offHand }

// EquipMainHand заменяет оружие в основной руке. nil снимает оружие.
// Двуручное оружие освобождает offHand.
//
// Returns:
//   - ErrShieldMainHand если передан щит
//   - ошибку валидации оружия
//
// При ошибке состояние не меняется.
func (e *Equipment) EquipMainHand(w *model.Weapon) error {
	if w != nil {
		if w.Type == model.WeaponShield {
			return fmt.Errorf("%s: %w", w.Name, ErrShieldMainHand)
		}
		if err := w.Validate(); err != nil {
			return err
		}
	}

	e.mainHand = w
	if w.IsTwoHanded() && e.offHand != nil {
		slog.Debug("two-handed weapon cleared off hand",
			"mainHand", w.Name,
			"offHand", e.offHand.Name)
		e.offHand = nil
	}

	e.changed()
	return nil
}

// EquipOffHand устанавливает одноручное оружие или щит во вторую руку. nil снимает.
//
// Returns:
//   - ErrOffHandBlocked если в основной руке двуручное оружие
//   - ErrTwoHandedOffHand если передано двуручное оружие
//
// При ошибке состояние не меняется.
func (e *Equipment) EquipOffHand(w *model.Weapon) error {
	if w == nil {
		e.offHand = nil
		e.changed()
		return nil
	}
	if e.mainHand.IsTwoHanded() {
		return fmt.Errorf("%s: %w", w.Name, ErrOffHandBlocked)
	}
	if w.IsTwoHanded() {
		return fmt.Errorf("%s: %w", w.Name, ErrTwoHandedOffHand)
	}
	if err := w.Validate(); err != nil {
		return err
	}

	e.offHand = w
	e.changed()
	return nil
}

// SetAttackSpeedBonus sets the buff-driven attack speed percent (Axe Frenzy)
// and recomputes derived values.
func (e *Equipment) SetAttackSpeedBonus(percent float64) {
	if percent == e.frenzyPercent {
		return
	}
	e.frenzyPercent = percent
	e.changed()
}

// AttackSpeedBonus returns the current buff-driven attack speed percent.
func (e *Equipment) AttackSpeedBonus() float64 {
	return e.frenzyPercent
}

// Recalculate recomputes the damage range, attack cooldown, dual-wield flag and
// stat bonuses from the current slots. Idempotent.
func (e *Equipment) Recalculate() {
	e.minDamage, e.maxDamage = 0, 0
	e.bonusStrength, e.bonusVitality = 0, 0

	for _, w := range []*model.Weapon{e.mainHand, e.offHand} {
		if w == nil {
			continue
		}
		e.bonusStrength += w.BonusStrength
		e.bonusVitality += w.BonusVitality
		if w.Type == model.WeaponShield {
			continue
		}
		e.minDamage += w.MinDamage
		e.maxDamage += w.MaxDamage
	}

	e.dualWielding = e.mainHand != nil && e.offHand != nil && e.offHand.Type == model.WeaponOneHanded

	cooldown := DefaultAttackCooldown
	if e.mainHand != nil {
		cooldown = e.masteryCooldown(e.mainHand)
		if e.dualWielding {
			cooldown = (cooldown + e.masteryCooldown(e.offHand)) / 2
		}
	}
	cooldown *= 1 - e.frenzyPercent/100
	e.attackCooldown = max(cooldown, minAttackCooldown)
}

func (e *Equipment) masteryCooldown(w *model.Weapon) float64 {
	if e.mastery == nil {
		return w.AttackCooldown
	}
	return w.AttackCooldown * (1 - e.mastery.WeaponMasterySpeedBonus(w.Class)/100)
}

func (e *Equipment) changed() {
	e.Recalculate()
	if e.onChange != nil {
		e.onChange()
	}
}

// IsDualWielding reports whether both hands hold weapons and the off hand is one-handed.
func (e *Equipment) IsDualWielding() bool { return e.dualWielding }

// DamageRange returns the summed min and max damage of equipped weapons.
func (e *Equipment) DamageRange() (float64, float64) { return e.minDamage, e.maxDamage }

// AttackCooldown returns seconds between swings after mastery and buff bonuses.
func (e *Equipment) AttackCooldown() float64 { return e.attackCooldown }

// BonusStrength returns strength granted by equipped items.
func (e *Equipment) BonusStrength() float64 { return e.bonusStrength }

// BonusVitality returns vitality granted by equipped items.
func (e *Equipment) BonusVitality() float64 { return e.bonusVitality }

// WeaponDamage rolls uniformly in [sum(min), sum(max)] over equipped weapons.
func (e *Equipment) WeaponDamage(rng *rand.Rand) float64 {
	return roll(rng, e.minDamage, e.maxDamage)
}

// MainHandDamage rolls the main hand weapon alone. Zero when empty.
func (e *Equipment) MainHandDamage(rng *rand.Rand) float64 {
	if e.mainHand == nil {
		return 0
	}
	return roll(rng, e.mainHand.MinDamage, e.mainHand.MaxDamage)
}

// OffHandDamage rolls the off hand weapon alone. Shields deal no damage.
func (e *Equipment) OffHandDamage(rng *rand.Rand) float64 {
	if e.offHand == nil || e.offHand.Type == model.WeaponShield {
		return 0
	}
	return roll(rng, e.offHand.MinDamage, e.offHand.MaxDamage)
}

func roll(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
