package combat

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/udisondev/warband/internal/game/buff"
	"github.com/udisondev/warband/internal/game/equipment"
	"github.com/udisondev/warband/internal/game/talent"
	"github.com/udisondev/warband/internal/model"
)

var (
	testAxe = &model.Weapon{ID: "axe", Name: "Axe", Type: model.WeaponOneHanded, Class: model.ClassAxe,
		MinDamage: 5, MaxDamage: 5, AttackCooldown: 0.5}
	testDagger = &model.Weapon{ID: "dagger", Name: "Dagger", Type: model.WeaponOneHanded, Class: model.ClassDagger,
		MinDamage: 3, MaxDamage: 3, AttackCooldown: 0.3}
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 1))
}

func newAttacker(t *testing.T) Attacker {
	t.Helper()
	tree := talent.NewTree(10)
	eq := equipment.New(tree)
	require.NoError(t, eq.EquipMainHand(testAxe))
	return Attacker{
		ID:        "player",
		Stats:     model.NewStats(10, 10, 1, 10),
		Equipment: eq,
		Talents:   tree,
		Buffs:     buff.NewManager(buff.DefaultConfig(), nil),
	}
}

func TestResolveHit_Base(t *testing.T) {
	a := newAttacker(t)

	damage, class := ResolveHit(a, HandCombined, testRand())
	assert.InDelta(t, 15, damage, 1e-9)
	assert.Equal(t, model.ClassAxe, class)
}

func TestResolveHit_MasteryOnSum(t *testing.T) {
	a := newAttacker(t)
	mastery := &model.Talent{ID: "axe_dmg", Name: "Axe Mastery", MaxRank: 5,
		Effect: model.EffectWeaponDamageBonus, EffectValue: 10, AffectedClass: model.ClassAxe}
	require.NoError(t, a.Talents.Learn(mastery))
	require.NoError(t, a.Talents.Learn(mastery))

	damage, _ := ResolveHit(a, HandCombined, testRand())
	// (10 + 5) × 1.2
	assert.InDelta(t, 18, damage, 1e-9)
}

func TestResolveHit_WarCry(t *testing.T) {
	a := newAttacker(t)
	a.Buffs.ActivateWarCry()

	damage, _ := ResolveHit(a, HandCombined, testRand())
	assert.InDelta(t, 18, damage, 1e-9)
}

func TestResolveHit_Hands(t *testing.T) {
	a := newAttacker(t)
	require.NoError(t, a.Equipment.EquipOffHand(testDagger))

	main, mainClass := ResolveHit(a, HandMain, testRand())
	off, offClass := ResolveHit(a, HandOff, testRand())
	both, _ := ResolveHit(a, HandCombined, testRand())

	assert.InDelta(t, 15, main, 1e-9)
	assert.Equal(t, model.ClassAxe, mainClass)
	assert.InDelta(t, 13, off, 1e-9)
	assert.Equal(t, model.ClassDagger, offClass)
	assert.InDelta(t, 18, both, 1e-9)
}

func TestResolveHit_DoesNotMutateAttacker(t *testing.T) {
	a := newAttacker(t)
	statsBefore := *a.Stats
	cooldownBefore := a.Equipment.AttackCooldown()

	for range 10 {
		ResolveHit(a, HandCombined, testRand())
	}

	assert.Equal(t, statsBefore, *a.Stats)
	assert.Equal(t, cooldownBefore, a.Equipment.AttackCooldown())
	assert.Zero(t, a.Buffs.FrenzyStacks())
}

func TestResolveHit_NonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Attacker{ID: "a"}
		if rapid.Bool().Draw(t, "withStats") {
			a.Stats = model.NewStats(
				rapid.Float64Range(0, 100).Draw(t, "str"),
				rapid.Float64Range(0, 100).Draw(t, "vit"),
				rapid.Float64Range(0, 5).Draw(t, "ratio"), 10)
		}
		if rapid.Bool().Draw(t, "withWeapon") {
			lo := rapid.Float64Range(0, 50).Draw(t, "min")
			w := &model.Weapon{ID: "w", Type: model.WeaponOneHanded, Class: model.ClassSword,
				MinDamage: lo, MaxDamage: lo + rapid.Float64Range(0, 50).Draw(t, "spread"), AttackCooldown: 1}
			a.Equipment = equipment.New(nil)
			if err := a.Equipment.EquipMainHand(w); err != nil {
				t.Fatalf("equip: %v", err)
			}
		}
		hand := Hand(rapid.IntRange(0, 2).Draw(t, "hand"))

		damage, _ := ResolveHit(a, hand, rand.New(rand.NewPCG(rapid.Uint64().Draw(t, "seed"), 0)))
		if damage < 0 {
			t.Fatalf("negative damage %v", damage)
		}
	})
}

func BenchmarkResolveHit(b *testing.B) {
	tree := talent.NewTree(10)
	eq := equipment.New(tree)
	if err := eq.EquipMainHand(testAxe); err != nil {
		b.Fatal(err)
	}
	a := Attacker{
		ID:        "bench",
		Stats:     model.NewStats(10, 10, 1, 10),
		Equipment: eq,
		Talents:   tree,
		Buffs:     buff.NewManager(buff.DefaultConfig(), nil),
	}
	rng := testRand()

	b.ReportAllocs()
	for range b.N {
		_, _ = ResolveHit(a, HandCombined, rng)
	}
}
