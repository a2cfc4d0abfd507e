package equipment

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/udisondev/warband/internal/game/talent"
	"github.com/udisondev/warband/internal/model"
)

var (
	axe = &model.Weapon{ID: "axe", Name: "Axe", Type: model.WeaponOneHanded, Class: model.ClassAxe,
		MinDamage: 5, MaxDamage: 5, AttackCooldown: 0.5, BonusStrength: 1}
	dagger = &model.Weapon{ID: "dagger", Name: "Dagger", Type: model.WeaponOneHanded, Class: model.ClassDagger,
		MinDamage: 2, MaxDamage: 4, AttackCooldown: 0.3}
	greatsword = &model.Weapon{ID: "greatsword", Name: "Greatsword", Type: model.WeaponTwoHanded, Class: model.ClassSword,
		MinDamage: 10, MaxDamage: 20, AttackCooldown: 1.2, BonusStrength: 3}
	shield = &model.Weapon{ID: "shield", Name: "Shield", Type: model.WeaponShield, Class: model.ClassShield,
		MinDamage: 1, MaxDamage: 1, AttackCooldown: 1, BonusVitality: 4}
)

func TestEquipment_Empty(t *testing.T) {
	e := New(nil)

	assert.InDelta(t, DefaultAttackCooldown, e.AttackCooldown(), 1e-9)
	assert.False(t, e.IsDualWielding())
	lo, hi := e.DamageRange()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
	assert.Zero(t, e.WeaponDamage(rand.New(rand.NewPCG(1, 2))))
}

func TestEquipment_TwoHandedClearsOffHand(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.EquipMainHand(axe))
	require.NoError(t, e.EquipOffHand(dagger))
	require.True(t, e.IsDualWielding())

	require.NoError(t, e.EquipMainHand(greatsword))
	assert.Nil(t, e.OffHand())
	assert.False(t, e.IsDualWielding())

	err := e.EquipOffHand(shield)
	require.ErrorIs(t, err, ErrOffHandBlocked)
	assert.Nil(t, e.OffHand())
}

func TestEquipment_RejectsInvalidSlots(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.EquipMainHand(axe))

	require.ErrorIs(t, e.EquipOffHand(greatsword), ErrTwoHandedOffHand)
	assert.Nil(t, e.OffHand())

	require.ErrorIs(t, e.EquipMainHand(shield), ErrShieldMainHand)
	assert.Equal(t, axe, e.MainHand())

	broken := &model.Weapon{ID: "broken", Type: model.WeaponOneHanded, MinDamage: 5, MaxDamage: 1, AttackCooldown: 1}
	require.ErrorIs(t, e.EquipOffHand(broken), model.ErrWeaponDamageRange)
	assert.Nil(t, e.OffHand())
}

func TestEquipment_DamageRange(t *testing.T) {
	tests := []struct {
		name     string
		main     *model.Weapon
		off      *model.Weapon
		wantMin  float64
		wantMax  float64
		wantDual bool
		wantStr  float64
		wantVit  float64
	}{
		{name: "main only", main: dagger, wantMin: 2, wantMax: 4},
		{name: "dual wield", main: axe, off: dagger, wantMin: 7, wantMax: 9, wantDual: true, wantStr: 1},
		{name: "shield adds stats only", main: axe, off: shield, wantMin: 5, wantMax: 5, wantStr: 1, wantVit: 4},
		{name: "two-handed", main: greatsword, wantMin: 10, wantMax: 20, wantStr: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(nil)
			require.NoError(t, e.EquipMainHand(tt.main))
			if tt.off != nil {
				require.NoError(t, e.EquipOffHand(tt.off))
			}

			lo, hi := e.DamageRange()
			assert.InDelta(t, tt.wantMin, lo, 1e-9)
			assert.InDelta(t, tt.wantMax, hi, 1e-9)
			assert.Equal(t, tt.wantDual, e.IsDualWielding())
			assert.InDelta(t, tt.wantStr, e.BonusStrength(), 1e-9)
			assert.InDelta(t, tt.wantVit, e.BonusVitality(), 1e-9)

			rng := rand.New(rand.NewPCG(7, 7))
			for range 100 {
				d := e.WeaponDamage(rng)
				assert.GreaterOrEqual(t, d, lo)
				assert.LessOrEqual(t, d, hi)
			}
		})
	}
}

func TestEquipment_SingleHandRolls(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.EquipMainHand(axe))
	require.NoError(t, e.EquipOffHand(shield))
	rng := rand.New(rand.NewPCG(3, 4))

	assert.InDelta(t, 5, e.MainHandDamage(rng), 1e-9)
	assert.Zero(t, e.OffHandDamage(rng))
}

func TestEquipment_AttackCooldownWithMastery(t *testing.T) {
	tree := talent.NewTree(10)
	axeSpeed := &model.Talent{ID: "axe_speed", Name: "Axe Speed", MaxRank: 5,
		Effect: model.EffectWeaponSpeedBonus, EffectValue: 10, AffectedClass: model.ClassAxe}
	require.NoError(t, tree.Learn(axeSpeed))
	require.NoError(t, tree.Learn(axeSpeed))

	e := New(tree)
	require.NoError(t, e.EquipMainHand(axe))
	// 0.5 × (1 − 20/100)
	assert.InDelta(t, 0.4, e.AttackCooldown(), 1e-9)

	require.NoError(t, e.EquipOffHand(dagger))
	// среднее (0.4 + 0.3) / 2
	assert.InDelta(t, 0.35, e.AttackCooldown(), 1e-9)
}

func TestEquipment_AttackSpeedBonus(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.EquipMainHand(axe))

	calls := 0
	e.SetOnChange(func() { calls++ })

	e.SetAttackSpeedBonus(15)
	assert.InDelta(t, 0.5*0.85, e.AttackCooldown(), 1e-9)
	assert.Equal(t, 1, calls)

	e.SetAttackSpeedBonus(15)
	assert.Equal(t, 1, calls, "unchanged bonus must not notify")

	e.SetAttackSpeedBonus(0)
	assert.InDelta(t, 0.5, e.AttackCooldown(), 1e-9)

	e.SetAttackSpeedBonus(250)
	assert.InDelta(t, minAttackCooldown, e.AttackCooldown(), 1e-9)
}

func TestEquipment_RecalculateIdempotent(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.EquipMainHand(axe))
	require.NoError(t, e.EquipOffHand(dagger))

	before := *e
	e.Recalculate()
	e.Recalculate()
	assert.Equal(t, before.attackCooldown, e.attackCooldown)
	assert.Equal(t, before.minDamage, e.minDamage)
	assert.Equal(t, before.maxDamage, e.maxDamage)
	assert.Equal(t, before.dualWielding, e.dualWielding)
}

// После экипировки двуручного оружия никакой EquipOffHand не заполняет offHand.
func TestEquipment_TwoHandedExclusivity(t *testing.T) {
	pool := []*model.Weapon{axe, dagger, greatsword, shield, nil}

	rapid.Check(t, func(t *rapid.T) {
		e := New(nil)
		if err := e.EquipMainHand(greatsword); err != nil {
			t.Fatalf("equip main: %v", err)
		}

		for _, idx := range rapid.SliceOfN(rapid.IntRange(0, len(pool)-1), 1, 20).Draw(t, "offhands") {
			_ = e.EquipOffHand(pool[idx])
			if e.OffHand() != nil {
				t.Fatalf("off hand filled with %s under two-handed main", e.OffHand().Name)
			}
		}
	})
}
