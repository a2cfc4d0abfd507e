package model

import "time"

// Health — текущее и максимальное здоровье с окном неуязвимости после удара.
// Не потокобезопасен: симуляция однопоточная, мутирует только владелец
// и единственная точка входа TakeDamage.
type Health struct {
	current float64
	max     float64

	// invulnerability is the post-hit window during which further damage is ignored.
	invulnerability time.Duration
	lastDamageAt    time.Duration
	damaged         bool

	dead bool
}

// NewHealth создаёт здоровье, заполненное до максимума.
func NewHealth(maxHealth float64, invulnerability time.Duration) *Health {
	if maxHealth < 0 {
		maxHealth = 0
	}
	return &Health{
		current:         maxHealth,
		max:             maxHealth,
		invulnerability: invulnerability,
	}
}

// Current returns current health.
func (h *Health) Current() float64 {
	return h.current
}

// Max returns max health.
func (h *Health) Max() float64 {
	return h.max
}

// IsDead returns true once health reached zero. Terminal.
func (h *Health) IsDead() bool {
	return h.dead
}

// Percent returns current/max in [0, 1].
func (h *Health) Percent() float64 {
	if h.max <= 0 {
		return 0
	}
	return h.current / h.max
}

// SetMax re-initialises health: sets the new maximum and heals to full.
// Dead entities stay dead.
func (h *Health) SetMax(maxHealth float64) {
	if maxHealth < 0 {
		maxHealth = 0
	}
	h.max = maxHealth
	if !h.dead {
		h.current = maxHealth
	}
}

// Resize changes the maximum without healing. Current health is clamped to the new maximum.
func (h *Health) Resize(maxHealth float64) {
	h.max = max(maxHealth, 0)
	h.current = min(h.current, h.max)
}

// Reset revives the entity at full health and clears the post-hit window.
func (h *Health) Reset() {
	h.current = h.max
	h.dead = false
	h.damaged = false
	h.lastDamageAt = 0
}

// IsInvulnerable reports whether now falls inside the post-hit window.
func (h *Health) IsInvulnerable(now time.Duration) bool {
	return h.damaged && h.invulnerability > 0 && now < h.lastDamageAt+h.invulnerability
}

// TakeDamage subtracts amount and returns true if the damage was applied.
// Ignored while dead or invulnerable. Negative amounts are treated as zero.
// Reaching zero marks the entity dead.
func (h *Health) TakeDamage(now time.Duration, amount float64) bool {
	if h.dead || h.IsInvulnerable(now) {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	h.current = max(h.current-amount, 0)
	h.lastDamageAt = now
	h.damaged = true

	if h.current <= 0 {
		h.dead = true
	}
	return true
}
