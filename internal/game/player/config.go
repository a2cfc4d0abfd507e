package player

import "time"

// Config holds the player's base attributes and survival parameters.
type Config struct {
	BaseStrength  float64 `yaml:"base_strength" json:"base_strength"`
	BaseVitality  float64 `yaml:"base_vitality" json:"base_vitality"`
	StrengthRatio float64 `yaml:"strength_ratio" json:"strength_ratio"`
	VitalityRatio float64 `yaml:"vitality_ratio" json:"vitality_ratio"`

	// HealOnRecalculate heals to full after an explicit equip or a
	// vitality change. Frenzy recomputes never heal.
	HealOnRecalculate bool `yaml:"heal_on_recalculate" json:"heal_on_recalculate"`

	Invulnerability time.Duration `yaml:"invulnerability" json:"invulnerability"`
	MoveSpeed       float64       `yaml:"move_speed" json:"move_speed"`
	TalentPoints    int           `yaml:"talent_points" json:"talent_points"`
}

// DefaultConfig returns player defaults.
func DefaultConfig() Config {
	return Config{
		BaseStrength:      10,
		BaseVitality:      10,
		StrengthRatio:     1,
		VitalityRatio:     10,
		HealOnRecalculate: true,
		Invulnerability:   time.Second,
		MoveSpeed:         5,
		TalentPoints:      10,
	}
}
