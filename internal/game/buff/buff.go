package buff

import "time"

// Config holds buff tuning.
type Config struct {
	FrenzyMaxStacks       int           `yaml:"frenzy_max_stacks" json:"frenzy_max_stacks"`
	FrenzyWindow          time.Duration `yaml:"frenzy_window" json:"frenzy_window"`
	FrenzyPercentPerStack float64       `yaml:"frenzy_percent_per_stack" json:"frenzy_percent_per_stack"`

	WarCryPercent  float64       `yaml:"war_cry_percent" json:"war_cry_percent"`
	WarCryDuration time.Duration `yaml:"war_cry_duration" json:"war_cry_duration"`
}

// DefaultConfig returns the stock buff tuning.
func DefaultConfig() Config {
	return Config{
		FrenzyMaxStacks:       5,
		FrenzyWindow:          5 * time.Second,
		FrenzyPercentPerStack: 5,
		WarCryPercent:         20,
		WarCryDuration:        10 * time.Second,
	}
}

// Kind identifies a buff type.
type Kind int32

const (
	KindAxeFrenzy Kind = iota
	KindWarCry
)

// String returns human-readable buff name.
func (k Kind) String() string {
	switch k {
	case KindAxeFrenzy:
		return "AxeFrenzy"
	case KindWarCry:
		return "WarCry"
	default:
		return "Unknown"
	}
}

// Active is a running buff instance.
// Stacks is 1 for non-stacking buffs.
type Active struct {
	Kind      Kind
	Stacks    int
	Remaining time.Duration
}

// IsExpired returns true if the buff duration has elapsed.
func (a *Active) IsExpired() bool {
	return a.Remaining <= 0
}

// Tick decrements remaining time by dt.
// Returns true if the buff is still active, false if expired.
func (a *Active) Tick(dt time.Duration) bool {
	a.Remaining -= dt
	return a.Remaining > 0
}
