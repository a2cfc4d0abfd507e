package model

import "time"

//go:generate go tool mockgen -destination=../testutil/mocks/target_mock.go -package=mocks . Target

// Damageable is implemented by everything that can be hit.
// TakeDamage returns false when the hit was ignored (dead or invulnerable).
type Damageable interface {
	TakeDamage(amount float64) bool
}

// Stunnable is implemented by entities that can be stunned.
type Stunnable interface {
	Stun(duration time.Duration)
	IsStunned() bool
}

// Target is a hit candidate returned by spatial queries.
type Target interface {
	Damageable
	Stunnable
	ID() string
	Position() Vec2
	IsDead() bool
}

// Clock returns the current simulation time.
type Clock interface {
	Now() time.Duration
}
