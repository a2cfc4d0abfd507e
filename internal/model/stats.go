package model

// Derived holds values computed from Stats. Never stored independently of the inputs.
type Derived struct {
	AttackDamage float64
	MaxHealth    float64
}

// Stats aggregates base attributes with bonus attributes.
//
// Единственный источник истины — четыре входа и коэффициенты;
// производные значения пересчитываются при каждом чтении.
type Stats struct {
	BaseStrength  float64
	BaseVitality  float64
	BonusStrength float64
	BonusVitality float64

	StrengthRatio float64 // attack damage per point of strength
	VitalityRatio float64 // max health per point of vitality
}

// NewStats creates Stats with the given base attributes and ratios.
func NewStats(baseStrength, baseVitality, strengthRatio, vitalityRatio float64) *Stats {
	return &Stats{
		BaseStrength:  baseStrength,
		BaseVitality:  baseVitality,
		StrengthRatio: strengthRatio,
		VitalityRatio: vitalityRatio,
	}
}

// Recalculate returns derived values. Pure: calling it twice with unchanged inputs
// yields identical results.
func (s *Stats) Recalculate() Derived {
	return Derived{
		AttackDamage: s.Strength() * s.StrengthRatio,
		MaxHealth:    s.Vitality() * s.VitalityRatio,
	}
}

// AttackDamage returns (base + bonus strength) × StrengthRatio.
func (s *Stats) AttackDamage() float64 {
	return s.Recalculate().AttackDamage
}

// MaxHealth returns (base + bonus vitality) × VitalityRatio.
func (s *Stats) MaxHealth() float64 {
	return s.Recalculate().MaxHealth
}

// Strength returns total strength.
func (s *Stats) Strength() float64 {
	return s.BaseStrength + s.BonusStrength
}

// Vitality returns total vitality.
func (s *Stats) Vitality() float64 {
	return s.BaseVitality + s.BonusVitality
}

// SetBonuses replaces the whole bonus contribution (equipment + talents).
func (s *Stats) SetBonuses(strength, vitality float64) {
	s.BonusStrength = strength
	s.BonusVitality = vitality
}

// AddStrength adds to bonus strength.
func (s *Stats) AddStrength(amount float64) {
	s.BonusStrength += amount
}

// AddVitality adds to bonus vitality.
func (s *Stats) AddVitality(amount float64) {
	s.BonusVitality += amount
}
