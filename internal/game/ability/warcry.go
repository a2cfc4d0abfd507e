package ability

import (
	"log/slog"
	"time"
)

// BuffActivator starts the War Cry self-buff. Implemented by buff.Manager.
type BuffActivator interface {
	ActivateWarCry()
}

// WarCry — оглушение врагов в радиусе и бафф урона на себя.
// Мгновенная: состояние Executing не используется.
type WarCry struct {
	cycle
	cfg     WarCryConfig
	owner   Owner
	buffs   BuffActivator
	targets TargetQuery
}

// NewWarCry creates a ready war cry ability.
func NewWarCry(env Env, cfg WarCryConfig, owner Owner, buffs BuffActivator, targets TargetQuery) *WarCry {
	return &WarCry{
		cycle:   cycle{kind: KindWarCry, env: env},
		cfg:     cfg,
		owner:   owner,
		buffs:   buffs,
		targets: targets,
	}
}

// Cooldown returns the war cry cooldown.
func (w *WarCry) Cooldown() time.Duration { return w.cfg.Cooldown }

// CanActivate reports whether war cry may be used now.
func (w *WarCry) CanActivate() bool {
	return w.ready(w.Cooldown())
}

// CooldownFraction returns the normalized cooldown in [0,1].
func (w *WarCry) CooldownFraction() float64 {
	return w.fraction(w.Cooldown())
}

// Activate starts the buff and stuns live targets within radius.
// On cooldown nothing changes. Returns the number of stunned targets and
// whether the cry happened.
func (w *WarCry) Activate() (int, bool) {
	if w.blocked(false) {
		logRejected(w.kind, "input blocked")
		return 0, false
	}
	if !w.CanActivate() {
		return 0, false
	}

	w.start(0)
	w.buffs.ActivateWarCry()

	stunned := 0
	for _, t := range w.targets.Within(w.owner.Position(), w.cfg.Radius) {
		if t.IsDead() {
			continue
		}
		t.Stun(w.cfg.StunDuration)
		stunned++
	}

	slog.Debug("war cry",
		"owner", w.owner.ID(),
		"stunned", stunned)
	return stunned, true
}
