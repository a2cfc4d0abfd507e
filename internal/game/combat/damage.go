package combat

import (
	"math/rand/v2"

	"github.com/udisondev/warband/internal/game/buff"
	"github.com/udisondev/warband/internal/game/equipment"
	"github.com/udisondev/warband/internal/game/talent"
	"github.com/udisondev/warband/internal/model"
)

// Hand selects which weapons contribute to one hit instance.
type Hand int32

const (
	// HandCombined rolls the summed damage range of all equipped weapons
	// and uses the main hand class for mastery.
	HandCombined Hand = iota
	HandMain
	HandOff
)

// String returns human-readable hand name.
func (h Hand) String() string {
	switch h {
	case HandCombined:
		return "Combined"
	case HandMain:
		return "Main"
	case HandOff:
		return "Off"
	default:
		return "Unknown"
	}
}

// Attacker is a read-only view of the attacking actor's state.
// Any field may be nil and then contributes nothing.
type Attacker struct {
	ID        string
	Stats     *model.Stats
	Equipment *equipment.Equipment
	Talents   *talent.Tree
	Buffs     *buff.Manager
}

// WeaponClass returns the class of the weapon used for hand.
func (a Attacker) WeaponClass(hand Hand) model.WeaponClass {
	if a.Equipment == nil {
		return model.ClassNone
	}
	w := a.Equipment.MainHand()
	if hand == HandOff {
		w = a.Equipment.OffHand()
	}
	if w == nil {
		return model.ClassNone
	}
	return w.Class
}

// ResolveHit computes the damage of one hit instance.
//
//  1. base = attackDamage + weapon roll for hand
//  2. base *= 1 + mastery%/100 for the weapon class
//  3. base *= War Cry multiplier
//
// Never mutates attacker state. Result is ≥ 0.
func ResolveHit(a Attacker, hand Hand, rng *rand.Rand) (float64, model.WeaponClass) {
	class := a.WeaponClass(hand)

	damage := 0.0
	if a.Stats != nil {
		damage = a.Stats.AttackDamage()
	}
	if a.Equipment != nil {
		switch hand {
		case HandMain:
			damage += a.Equipment.MainHandDamage(rng)
		case HandOff:
			damage += a.Equipment.OffHandDamage(rng)
		default:
			damage += a.Equipment.WeaponDamage(rng)
		}
	}

	if a.Talents != nil && class != model.ClassNone {
		if mastery := a.Talents.WeaponMasteryDamageBonus(class); mastery > 0 {
			damage *= 1 + mastery/100
		}
	}

	if a.Buffs != nil {
		damage *= a.Buffs.DamageMultiplier()
	}

	return max(damage, 0), class
}
