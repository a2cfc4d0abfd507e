package scenario

import (
	"log/slog"
	"time"

	"github.com/udisondev/warband/internal/game/player"
)

// Hit is one applied damage event.
type Hit struct {
	At           time.Duration
	Source       string
	Target       string
	Amount       float64
	PlayerDamage bool
}

// Kill records an enemy removed after death.
type Kill struct {
	At       time.Duration
	ID       string
	Template string
}

// Report is the outcome of one scenario run.
type Report struct {
	Name     string
	Seed     uint64
	Duration time.Duration

	Hits     []Hit
	Kills    []Kill
	Rejected int // actions the player refused (cooldown, dead, blocked)

	Player       player.Snapshot
	EnemiesAlive int
	NodesLeft    int
}

// DamageDealt returns the total damage the player applied to others.
func (r *Report) DamageDealt() float64 {
	total := 0.0
	for _, h := range r.Hits {
		if !h.PlayerDamage {
			total += h.Amount
		}
	}
	return total
}

// DamageTaken returns the total damage the player received.
func (r *Report) DamageTaken() float64 {
	total := 0.0
	for _, h := range r.Hits {
		if h.PlayerDamage {
			total += h.Amount
		}
	}
	return total
}

// HitsOn returns hits landed on target in order.
func (r *Report) HitsOn(target string) []Hit {
	var result []Hit
	for _, h := range r.Hits {
		if h.Target == target {
			result = append(result, h)
		}
	}
	return result
}

// Log writes the report summary to logger.
func (r *Report) Log(logger *slog.Logger) {
	p := r.Player
	logger.Info("scenario report",
		"name", r.Name,
		"seed", r.Seed,
		"duration", r.Duration,
		"hits", len(r.Hits),
		"kills", len(r.Kills),
		"rejected", r.Rejected,
		"damageDealt", r.DamageDealt(),
		"damageTaken", r.DamageTaken(),
		"enemiesAlive", r.EnemiesAlive,
		"nodesLeft", r.NodesLeft)

	logger.Info("player state",
		"scenario", r.Name,
		"health", p.Health,
		"maxHealth", p.MaxHealth,
		"strength", p.Strength,
		"vitality", p.Vitality,
		"attackDamage", p.AttackDamage,
		"attackCooldown", p.AttackCooldown,
		"dualWielding", p.DualWielding,
		"resources", p.Resources,
		"frenzyStacks", p.Buffs.FrenzyStacks,
		"warCry", p.Buffs.WarCryActive)

	for kind, frac := range p.Cooldowns {
		logger.Debug("cooldown", "scenario", r.Name, "ability", kind, "fraction", frac)
	}
}
