package model

import "fmt"

// TalentEffectType определяет, что даёт талант за каждый ранг.
type TalentEffectType int32

const (
	// Stat bonuses, applied eagerly on learn.
	EffectIncreaseStrength TalentEffectType = iota
	EffectIncreaseVitality

	// Weapon masteries, looked up lazily per weapon class.
	EffectWeaponDamageBonus // +X% damage with AffectedClass
	EffectWeaponSpeedBonus  // -X% cooldown with AffectedClass

	// Ability modifiers, looked up lazily when abilities are read.
	EffectIncreaseDashDistance
	EffectDecreaseDashCooldown
	EffectIncreaseChargeDistance
	EffectDecreaseChargeCooldown
	EffectIncreaseMeleeRange
	EffectIncreaseMeleeArc

	// Special effects.
	EffectDualWieldExtraHit
	EffectTwoHandedCritChance
	EffectShieldBlock
	EffectAxeFrenzy
)

var effectNames = map[TalentEffectType]string{
	EffectIncreaseStrength:       "IncreaseStrength",
	EffectIncreaseVitality:       "IncreaseVitality",
	EffectWeaponDamageBonus:      "WeaponDamageBonus",
	EffectWeaponSpeedBonus:       "WeaponSpeedBonus",
	EffectIncreaseDashDistance:   "IncreaseDashDistance",
	EffectDecreaseDashCooldown:   "DecreaseDashCooldown",
	EffectIncreaseChargeDistance: "IncreaseChargeDistance",
	EffectDecreaseChargeCooldown: "DecreaseChargeCooldown",
	EffectIncreaseMeleeRange:     "IncreaseMeleeRange",
	EffectIncreaseMeleeArc:       "IncreaseMeleeArc",
	EffectDualWieldExtraHit:      "DualWieldExtraHit",
	EffectTwoHandedCritChance:    "TwoHandedCritChance",
	EffectShieldBlock:            "ShieldBlock",
	EffectAxeFrenzy:              "AxeFrenzy",
}

// String returns the catalog name of the effect.
func (e TalentEffectType) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "Unknown"
}

// ParseTalentEffect converts a catalog name into TalentEffectType.
func ParseTalentEffect(s string) (TalentEffectType, error) {
	for effect, name := range effectNames {
		if name == s {
			return effect, nil
		}
	}
	return 0, fmt.Errorf("unknown talent effect %q", s)
}

// Talent — описание таланта из каталога.
// Prerequisite образует лес (ацикличность проверяет загрузчик каталога).
type Talent struct {
	ID            string
	Name          string
	Description   string
	MaxRank       int
	RequiredLevel int
	Prerequisite  *Talent

	Effect        TalentEffectType
	EffectValue   float64
	AffectedClass WeaponClass // ClassNone unless Effect is a weapon mastery
}

// IsMastery reports whether the talent is a per-weapon-class mastery.
func (t *Talent) IsMastery() bool {
	return t.Effect == EffectWeaponDamageBonus || t.Effect == EffectWeaponSpeedBonus
}
