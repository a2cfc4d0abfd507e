package model

import (
	"errors"
	"fmt"
)

// WeaponType определяет, какой слот может занять оружие.
type WeaponType int32

const (
	WeaponTwoHanded WeaponType = iota
	WeaponOneHanded
	WeaponShield
)

// String returns human-readable weapon type name.
func (wt WeaponType) String() string {
	switch wt {
	case WeaponTwoHanded:
		return "TwoHanded"
	case WeaponOneHanded:
		return "OneHanded"
	case WeaponShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// ParseWeaponType converts a catalog name into WeaponType.
func ParseWeaponType(s string) (WeaponType, error) {
	switch s {
	case "TwoHanded", "two_handed":
		return WeaponTwoHanded, nil
	case "OneHanded", "one_handed":
		return WeaponOneHanded, nil
	case "Shield", "shield":
		return WeaponShield, nil
	default:
		return 0, fmt.Errorf("unknown weapon type %q", s)
	}
}

// WeaponClass groups weapons for mastery talents and on-hit triggers.
type WeaponClass int32

const (
	ClassDagger WeaponClass = iota
	ClassAxe
	ClassMace
	ClassSword
	ClassShield
	ClassNone
)

// String returns human-readable weapon class name.
func (wc WeaponClass) String() string {
	switch wc {
	case ClassDagger:
		return "Dagger"
	case ClassAxe:
		return "Axe"
	case ClassMace:
		return "Mace"
	case ClassSword:
		return "Sword"
	case ClassShield:
		return "Shield"
	case ClassNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ParseWeaponClass converts a catalog name into WeaponClass.
// Empty string maps to ClassNone.
func ParseWeaponClass(s string) (WeaponClass, error) {
	switch s {
	case "Dagger", "dagger":
		return ClassDagger, nil
	case "Axe", "axe":
		return ClassAxe, nil
	case "Mace", "mace":
		return ClassMace, nil
	case "Sword", "sword":
		return ClassSword, nil
	case "Shield", "shield":
		return ClassShield, nil
	case "", "None", "none":
		return ClassNone, nil
	default:
		return 0, fmt.Errorf("unknown weapon class %q", s)
	}
}

var (
	ErrWeaponDamageRange = errors.New("weapon min damage exceeds max damage")
	ErrWeaponCooldown    = errors.New("weapon attack cooldown must be positive")
)

// Weapon — неизменяемое описание оружия из каталога.
// Equipment хранит ссылки на Weapon, но не владеет ими.
type Weapon struct {
	ID    string
	Name  string
	Type  WeaponType
	Class WeaponClass

	MinDamage      float64
	MaxDamage      float64
	AttackCooldown float64 // seconds between swings

	BonusStrength float64
	BonusVitality float64
}

// Validate checks catalog invariants: MinDamage ≤ MaxDamage and AttackCooldown > 0.
func (w *Weapon) Validate() error {
	if w.MinDamage > w.MaxDamage {
		return fmt.Errorf("weapon %q: %w", w.ID, ErrWeaponDamageRange)
	}
	if w.AttackCooldown <= 0 {
		return fmt.Errorf("weapon %q: %w", w.ID, ErrWeaponCooldown)
	}
	return nil
}

// IsTwoHanded reports whether the weapon occupies both hands.
func (w *Weapon) IsTwoHanded() bool {
	return w != nil && w.Type == WeaponTwoHanded
}
