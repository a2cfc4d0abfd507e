package ability

import (
	"log/slog"
	"math"
	"time"

	"github.com/udisondev/warband/internal/model"
)

//go:generate go tool mockgen -destination=../../testutil/mocks/ability_mock.go -package=mocks . InputGate,Notifier

// Kind identifies a player ability.
type Kind int32

const (
	KindMelee Kind = iota
	KindDash
	KindCharge
	KindGather
	KindWarCry
)

// String returns human-readable ability name.
func (k Kind) String() string {
	switch k {
	case KindMelee:
		return "Melee"
	case KindDash:
		return "Dash"
	case KindCharge:
		return "Charge"
	case KindGather:
		return "Gather"
	case KindWarCry:
		return "WarCry"
	default:
		return "Unknown"
	}
}

// InputGate reports whether UI state blocks gameplay input.
// CombatBlocked gates melee only; PlayerBlocked gates every ability.
type InputGate interface {
	CombatBlocked() bool
	PlayerBlocked() bool
}

// Notifier is the render/animation layer. Calls are fire-and-forget.
type Notifier interface {
	AbilityStarted(kind Kind)
	AbilityEnded(kind Kind)
}

// Scheduler runs one-shot callbacks after a simulation-time delay.
// Implemented by timer.Scheduler.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// TargetQuery answers "all potential targets within radius of center".
type TargetQuery interface {
	Within(center model.Vec2, radius float64) []model.Target
}

// Owner is the actor using an ability.
type Owner interface {
	ID() string
	Position() model.Vec2
	// TalentBonus returns Σ effectValue × rank for the effect.
	TalentBonus(effect model.TalentEffectType) float64
}

// Env holds collaborators shared by all abilities of one actor.
// Gate and Notifier may be nil.
type Env struct {
	Clock     model.Clock
	Scheduler Scheduler
	Gate      InputGate
	Notifier  Notifier
}

// cycle — общий автомат Ready → Executing → (Ready после cooldown).
//
// Готовность: !executing && now >= lastActivation + cooldown.
// До первой активации способность готова.
type cycle struct {
	kind Kind
	env  Env

	lastActivation time.Duration
	activated      bool
	executing      bool
	gen            uint64 // invalidates pending end callbacks after Reset
}

func (c *cycle) blocked(combat bool) bool {
	if c.env.Gate == nil {
		return false
	}
	if c.env.Gate.PlayerBlocked() {
		return true
	}
	return combat && c.env.Gate.CombatBlocked()
}

func (c *cycle) ready(cooldown time.Duration) bool {
	if c.executing {
		return false
	}
	if !c.activated {
		return true
	}
	return c.env.Clock.Now() >= c.lastActivation+cooldown
}

// fraction = executing ? 1 : clamp01(1 − elapsed/cooldown).
func (c *cycle) fraction(cooldown time.Duration) float64 {
	if c.executing {
		return 1
	}
	if !c.activated || cooldown <= 0 {
		return 0
	}
	elapsed := c.env.Clock.Now() - c.lastActivation
	f := 1 - float64(elapsed)/float64(cooldown)
	return min(max(f, 0), 1)
}

// start records activation and schedules the return to Ready after duration.
// A zero duration never enters Executing.
func (c *cycle) start(duration time.Duration) {
	c.lastActivation = c.env.Clock.Now()
	c.activated = true

	if c.env.Notifier != nil {
		c.env.Notifier.AbilityStarted(c.kind)
	}

	if duration <= 0 {
		c.end()
		return
	}
	c.executing = true
	c.gen++
	gen := c.gen
	c.env.Scheduler.After(duration, func() {
		if c.gen == gen {
			c.end()
		}
	})
}

func (c *cycle) end() {
	c.executing = false
	if c.env.Notifier != nil {
		c.env.Notifier.AbilityEnded(c.kind)
	}
}

// Kind returns the ability kind.
func (c *cycle) Kind() Kind { return c.kind }

// IsExecuting reports whether the action is still running.
func (c *cycle) IsExecuting() bool { return c.executing }

// Reset returns the ability to Ready (respawn).
func (c *cycle) Reset() {
	c.activated = false
	c.executing = false
	c.lastActivation = 0
	c.gen++
}

// scaleDown reduces d by percent, never below zero.
func scaleDown(d time.Duration, percent float64) time.Duration {
	return time.Duration(math.Round(float64(d) * max(0, 1-percent/100)))
}

func logRejected(kind Kind, reason string) {
	slog.Debug("ability rejected", "ability", kind, "reason", reason)
}
