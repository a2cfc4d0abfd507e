package talent

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/warband/internal/model"
)

var (
	ErrUnknownTalent = errors.New("unknown talent")
	ErrNoPoints      = errors.New("no talent points available")
	ErrMaxRank       = errors.New("talent already at max rank")
	ErrPrerequisite  = errors.New("talent prerequisite not learned")
)

// Learned is a talent with its current rank.
type Learned struct {
	Talent *model.Talent
	Rank   int
}

// Tree tracks learned talent ranks and available points.
//
// Ranks only grow, never exceed MaxRank, and a talent can be learned only
// after its prerequisite has rank > 0.
type Tree struct {
	points  int
	ranks   map[string]int
	learned []*model.Talent // learn order, for deterministic iteration

	onLearn func(t *model.Talent, rank int)
}

// NewTree creates a tree with the given number of unspent points.
func NewTree(points int) *Tree {
	return &Tree{
		points: points,
		ranks:  make(map[string]int),
	}
}

// SetOnLearn sets the callback fired after a successful Learn.
// Used by the owner to apply immediate effects (stat bonuses).
func (t *Tree) SetOnLearn(fn func(tal *model.Talent, rank int)) {
	t.onLearn = fn
}

// Points returns unspent talent points.
func (t *Tree) Points() int {
	return t.points
}

// AddPoints grants additional talent points (level up).
func (t *Tree) AddPoints(n int) {
	if n > 0 {
		t.points += n
	}
}

// Rank returns the learned rank of tal, 0 if not learned.
func (t *Tree) Rank(tal *model.Talent) int {
	if tal == nil {
		return 0
	}
	return t.ranks[tal.ID]
}

// Check returns the reason tal cannot be learned, or nil.
func (t *Tree) Check(tal *model.Talent) error {
	if tal == nil {
		return ErrUnknownTalent
	}
	if t.points <= 0 {
		return ErrNoPoints
	}
	if t.Rank(tal) >= tal.MaxRank {
		return fmt.Errorf("%s: %w", tal.Name, ErrMaxRank)
	}
	if tal.Prerequisite != nil && t.Rank(tal.Prerequisite) == 0 {
		return fmt.Errorf("%s requires %s: %w", tal.Name, tal.Prerequisite.Name, ErrPrerequisite)
	}
	return nil
}

// CanLearn reports whether Learn(tal) would succeed.
func (t *Tree) CanLearn(tal *model.Talent) bool {
	return t.Check(tal) == nil
}

// Learn increments the rank of tal and spends one point.
// On error nothing changes.
func (t *Tree) Learn(tal *model.Talent) error {
	if err := t.Check(tal); err != nil {
		return err
	}

	if t.ranks[tal.ID] == 0 {
		t.learned = append(t.learned, tal)
	}
	t.ranks[tal.ID]++
	t.points--

	rank := t.ranks[tal.ID]
	slog.Debug("talent learned",
		"talent", tal.Name,
		"rank", rank,
		"pointsLeft", t.points)

	if t.onLearn != nil {
		t.onLearn(tal, rank)
	}
	return nil
}

// Learned returns all talents with rank > 0 in learn order.
func (t *Tree) Learned() []Learned {
	result := make([]Learned, 0, len(t.learned))
	for _, tal := range t.learned {
		result = append(result, Learned{Talent: tal, Rank: t.ranks[tal.ID]})
	}
	return result
}

// WeaponMasteryDamageBonus returns the summed damage percent for class.
func (t *Tree) WeaponMasteryDamageBonus(class model.WeaponClass) float64 {
	return t.classBonus(model.EffectWeaponDamageBonus, class)
}

// WeaponMasterySpeedBonus returns the summed cooldown reduction percent for class.
func (t *Tree) WeaponMasterySpeedBonus(class model.WeaponClass) float64 {
	return t.classBonus(model.EffectWeaponSpeedBonus, class)
}

// EffectBonus returns Σ effectValue × rank over talents of the given effect,
// regardless of weapon class.
func (t *Tree) EffectBonus(effect model.TalentEffectType) float64 {
	total := 0.0
	for _, tal := range t.learned {
		if tal.Effect == effect {
			total += tal.EffectValue * float64(t.ranks[tal.ID])
		}
	}
	return total
}

// HasEffect reports whether any talent with the given effect has rank > 0.
func (t *Tree) HasEffect(effect model.TalentEffectType) bool {
	for _, tal := range t.learned {
		if tal.Effect == effect && t.ranks[tal.ID] > 0 {
			return true
		}
	}
	return false
}

func (t *Tree) classBonus(effect model.TalentEffectType, class model.WeaponClass) float64 {
	total := 0.0
	for _, tal := range t.learned {
		if tal.Effect == effect && tal.AffectedClass == class {
			total += tal.EffectValue * float64(t.ranks[tal.ID])
		}
	}
	return total
}
