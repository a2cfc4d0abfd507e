package combat_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/udisondev/warband/internal/game/buff"
	"github.com/udisondev/warband/internal/game/combat"
	"github.com/udisondev/warband/internal/game/equipment"
	"github.com/udisondev/warband/internal/game/talent"
	"github.com/udisondev/warband/internal/model"
	"github.com/udisondev/warband/internal/testutil"
)

func benchAttacker(b *testing.B, main, off *model.Weapon) combat.Attacker {
	b.Helper()
	tree := talent.NewTree(10)
	if err := tree.Learn(frenzyTalent); err != nil {
		b.Fatal(err)
	}
	eq := equipment.New(tree)
	if err := eq.EquipMainHand(main); err != nil {
		b.Fatal(err)
	}
	if off != nil {
		if err := eq.EquipOffHand(off); err != nil {
			b.Fatal(err)
		}
	}
	return combat.Attacker{
		ID:        "bench",
		Stats:     model.NewStats(10, 10, 1, 10),
		Equipment: eq,
		Talents:   tree,
		Buffs: buff.NewManager(buff.DefaultConfig(), func() bool {
			return tree.HasEffect(model.EffectAxeFrenzy)
		}),
	}
}

var (
	benchAxe = &model.Weapon{ID: "axe", Name: "Axe", Type: model.WeaponOneHanded, Class: model.ClassAxe,
		MinDamage: 4, MaxDamage: 7, AttackCooldown: 0.5}
	benchDagger = &model.Weapon{ID: "dagger", Name: "Dagger", Type: model.WeaponOneHanded, Class: model.ClassDagger,
		MinDamage: 2, MaxDamage: 4, AttackCooldown: 0.35}
)

// BenchmarkManagerStrike measures the full hit path: resolve, apply, observer
// and frenzy bookkeeping.
func BenchmarkManagerStrike(b *testing.B) {
	a := benchAttacker(b, benchAxe, nil)
	m := combat.NewManager(rand.New(rand.NewPCG(1, 1)))
	m.SetDamageObserver(func(combat.DamageEvent) {})
	target := testutil.NewDummy("target", model.V(1, 0), math.MaxFloat64)

	b.ReportAllocs()
	for range b.N {
		_, _ = m.Strike(a, target, combat.HandCombined)
	}
}

// BenchmarkResolveHitDualWield measures both hand instances of a dual-wield swing.
func BenchmarkResolveHitDualWield(b *testing.B) {
	a := benchAttacker(b, benchAxe, benchDagger)
	rng := rand.New(rand.NewPCG(1, 1))

	b.ReportAllocs()
	for range b.N {
		_, _ = combat.ResolveHit(a, combat.HandMain, rng)
		_, _ = combat.ResolveHit(a, combat.HandOff, rng)
	}
}
