package buff

import (
	"log/slog"
	"time"
)

// Status is a snapshot of buff state for UI.
type Status struct {
	FrenzyStacks    int
	FrenzyRemaining time.Duration
	AttackSpeed     float64 // percent

	WarCryActive    bool
	WarCryRemaining time.Duration
	DamageMult      float64
}

// Manager tracks the owner's Axe Frenzy and War Cry buffs.
//
// Axe Frenzy shares one timer for all stacks: every qualifying hit adds a
// stack (capped) and refreshes the window to full. War Cry is binary.
// Both decay only through Advance.
type Manager struct {
	cfg Config

	frenzy *Active
	warCry *Active

	// frenzyEnabled gates OnAxeHit (talent rank > 0).
	frenzyEnabled func() bool

	// onChange fires after any change of stacks or activity, including expiry.
	onChange func()
}

// NewManager creates a Manager with no active buffs.
// frenzyEnabled may be nil, meaning Axe Frenzy never triggers.
func NewManager(cfg Config, frenzyEnabled func() bool) *Manager {
	return &Manager{
		cfg:           cfg,
		frenzyEnabled: frenzyEnabled,
	}
}

// SetOnChange sets the callback fired on stack change or expiry.
func (m *Manager) SetOnChange(fn func()) {
	m.onChange = fn
}

// OnAxeHit registers one axe hit instance.
// Returns false if the Axe Frenzy talent is not learned.
func (m *Manager) OnAxeHit() bool {
	if m.frenzyEnabled == nil || !m.frenzyEnabled() {
		return false
	}

	if m.frenzy == nil {
		m.frenzy = &Active{Kind: KindAxeFrenzy}
	}
	prev := m.frenzy.Stacks
	m.frenzy.Stacks = min(m.frenzy.Stacks+1, m.cfg.FrenzyMaxStacks)
	m.frenzy.Remaining = m.cfg.FrenzyWindow

	if m.frenzy.Stacks != prev {
		slog.Debug("axe frenzy stack",
			"stacks", m.frenzy.Stacks,
			"speedBonus", m.AttackSpeedBonus())
		m.notify()
	}
	return true
}

// ActivateWarCry starts (or refreshes) the War Cry buff.
// Cooldown gating is the ability's concern.
func (m *Manager) ActivateWarCry() {
	wasActive := m.warCry != nil
	m.warCry = &Active{Kind: KindWarCry, Stacks: 1, Remaining: m.cfg.WarCryDuration}
	if !wasActive {
		m.notify()
	}
}

// Advance decrements buff timers by dt and drops expired buffs.
func (m *Manager) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}

	changed := false
	if m.frenzy != nil && !m.frenzy.Tick(dt) {
		slog.Debug("axe frenzy expired", "stacks", m.frenzy.Stacks)
		m.frenzy = nil
		changed = true
	}
	if m.warCry != nil && !m.warCry.Tick(dt) {
		slog.Debug("war cry buff expired")
		m.warCry = nil
		changed = true
	}

	if changed {
		m.notify()
	}
}

// Reset drops all buffs without notification (respawn).
func (m *Manager) Reset() {
	m.frenzy = nil
	m.warCry = nil
}

// FrenzyStacks returns current Axe Frenzy stacks.
func (m *Manager) FrenzyStacks() int {
	if m.frenzy == nil {
		return 0
	}
	return m.frenzy.Stacks
}

// AttackSpeedBonus returns stacks × percent per stack.
func (m *Manager) AttackSpeedBonus() float64 {
	return float64(m.FrenzyStacks()) * m.cfg.FrenzyPercentPerStack
}

// WarCryActive reports whether the War Cry buff is running.
func (m *Manager) WarCryActive() bool {
	return m.warCry != nil
}

// DamageMultiplier returns 1 + percent/100 while War Cry is active, 1 otherwise.
func (m *Manager) DamageMultiplier() float64 {
	if m.warCry == nil {
		return 1
	}
	return 1 + m.cfg.WarCryPercent/100
}

// Active returns copies of running buffs.
func (m *Manager) Active() []Active {
	result := make([]Active, 0, 2)
	if m.frenzy != nil {
		result = append(result, *m.frenzy)
	}
	if m.warCry != nil {
		result = append(result, *m.warCry)
	}
	return result
}

// Status returns a snapshot of buff state.
func (m *Manager) Status() Status {
	s := Status{
		FrenzyStacks: m.FrenzyStacks(),
		AttackSpeed:  m.AttackSpeedBonus(),
		WarCryActive: m.WarCryActive(),
		DamageMult:   m.DamageMultiplier(),
	}
	if m.frenzy != nil {
		s.FrenzyRemaining = m.frenzy.Remaining
	}
	if m.warCry != nil {
		s.WarCryRemaining = m.warCry.Remaining
	}
	return s
}

func (m *Manager) notify() {
	if m.onChange != nil {
		m.onChange()
	}
}
