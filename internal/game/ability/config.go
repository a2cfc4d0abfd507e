package ability

import "time"

// Config holds tuning for all player abilities.
type Config struct {
	Melee  MeleeConfig  `yaml:"melee" json:"melee"`
	Dash   DashConfig   `yaml:"dash" json:"dash"`
	Charge ChargeConfig `yaml:"charge" json:"charge"`
	Gather GatherConfig `yaml:"gather" json:"gather"`
	WarCry WarCryConfig `yaml:"war_cry" json:"war_cry"`
}

// MeleeConfig — параметры удара ближнего боя.
// Cooldown берётся из Equipment, здесь его нет.
type MeleeConfig struct {
	Range          float64       `yaml:"range" json:"range"`
	Arc            float64       `yaml:"arc" json:"arc"` // degrees, full width
	Swing          time.Duration `yaml:"swing" json:"swing"`
	SecondHitDelay time.Duration `yaml:"second_hit_delay" json:"second_hit_delay"`
}

type DashConfig struct {
	Speed    float64       `yaml:"speed" json:"speed"`
	Duration time.Duration `yaml:"duration" json:"duration"`
	Cooldown time.Duration `yaml:"cooldown" json:"cooldown"`
}

type ChargeConfig struct {
	Speed             float64       `yaml:"speed" json:"speed"`
	Duration          time.Duration `yaml:"duration" json:"duration"`
	Cooldown          time.Duration `yaml:"cooldown" json:"cooldown"`
	AimMoveMultiplier float64       `yaml:"aim_move_multiplier" json:"aim_move_multiplier"`
	DamageMultiplier  float64       `yaml:"damage_multiplier" json:"damage_multiplier"`
	ContactRadius     float64       `yaml:"contact_radius" json:"contact_radius"`
}

type GatherConfig struct {
	Range    float64       `yaml:"range" json:"range"`
	Arc      float64       `yaml:"arc" json:"arc"`
	Swing    time.Duration `yaml:"swing" json:"swing"`
	Cooldown time.Duration `yaml:"cooldown" json:"cooldown"`
}

type WarCryConfig struct {
	Radius       float64       `yaml:"radius" json:"radius"`
	StunDuration time.Duration `yaml:"stun_duration" json:"stun_duration"`
	Cooldown     time.Duration `yaml:"cooldown" json:"cooldown"`
}

// DefaultConfig returns the stock ability tuning.
func DefaultConfig() Config {
	return Config{
		Melee: MeleeConfig{
			Range:          1.5,
			Arc:            90,
			Swing:          200 * time.Millisecond,
			SecondHitDelay: 100 * time.Millisecond,
		},
		Dash: DashConfig{
			Speed:    20,
			Duration: 200 * time.Millisecond,
			Cooldown: time.Second,
		},
		Charge: ChargeConfig{
			Speed:             12,
			Duration:          400 * time.Millisecond,
			Cooldown:          3 * time.Second,
			AimMoveMultiplier: 0.3,
			DamageMultiplier:  1.5,
			ContactRadius:     0.75,
		},
		Gather: GatherConfig{
			Range:    1.5,
			Arc:      90,
			Swing:    200 * time.Millisecond,
			Cooldown: 800 * time.Millisecond,
		},
		WarCry: WarCryConfig{
			Radius:       5,
			StunDuration: 1500 * time.Millisecond,
			Cooldown:     15 * time.Second,
		},
	}
}
