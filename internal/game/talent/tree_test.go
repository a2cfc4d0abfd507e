package talent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/udisondev/warband/internal/model"
)

func newTalents() (root, child, axeDmg, axeSpeed *model.Talent) {
	root = &model.Talent{ID: "str", Name: "Strength", MaxRank: 3, Effect: model.EffectIncreaseStrength, EffectValue: 2}
	child = &model.Talent{ID: "frenzy", Name: "Axe Frenzy", MaxRank: 1, Prerequisite: root, Effect: model.EffectAxeFrenzy}
	axeDmg = &model.Talent{ID: "axe_dmg", Name: "Axe Mastery", MaxRank: 5, Effect: model.EffectWeaponDamageBonus, EffectValue: 4, AffectedClass: model.ClassAxe}
	axeSpeed = &model.Talent{ID: "axe_speed", Name: "Axe Speed", MaxRank: 5, Effect: model.EffectWeaponSpeedBonus, EffectValue: 10, AffectedClass: model.ClassAxe}
	return
}

func TestTree_Learn(t *testing.T) {
	root, child, _, _ := newTalents()
	tree := NewTree(10)

	require.NoError(t, tree.Learn(root))
	assert.Equal(t, 1, tree.Rank(root))
	assert.Equal(t, 9, tree.Points())

	require.NoError(t, tree.Learn(child))
	assert.Equal(t, 1, tree.Rank(child))
	assert.Equal(t, 8, tree.Points())
}

func TestTree_LearnRejections(t *testing.T) {
	root, child, _, _ := newTalents()

	tests := []struct {
		name    string
		points  int
		prepare func(*Tree)
		talent  *model.Talent
		wantErr error
	}{
		{name: "nil talent", points: 1, talent: nil, wantErr: ErrUnknownTalent},
		{name: "no points", points: 0, talent: root, wantErr: ErrNoPoints},
		{name: "prerequisite missing", points: 5, talent: child, wantErr: ErrPrerequisite},
		{
			name:   "max rank",
			points: 5,
			prepare: func(tr *Tree) {
				for range 3 {
					require.NoError(t, tr.Learn(root))
				}
			},
			talent:  root,
			wantErr: ErrMaxRank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree(tt.points)
			if tt.prepare != nil {
				tt.prepare(tree)
			}
			pointsBefore := tree.Points()
			rankBefore := tree.Rank(tt.talent)

			assert.False(t, tree.CanLearn(tt.talent))
			err := tree.Learn(tt.talent)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			assert.Equal(t, pointsBefore, tree.Points(), "points must not change on rejection")
			assert.Equal(t, rankBefore, tree.Rank(tt.talent), "rank must not change on rejection")
		})
	}
}

func TestTree_OnLearnCallback(t *testing.T) {
	root, _, _, _ := newTalents()
	tree := NewTree(2)

	var got []int
	tree.SetOnLearn(func(tal *model.Talent, rank int) {
		assert.Equal(t, root, tal)
		got = append(got, rank)
	})

	require.NoError(t, tree.Learn(root))
	require.NoError(t, tree.Learn(root))
	require.ErrorIs(t, tree.Learn(root), ErrNoPoints)

	assert.Equal(t, []int{1, 2}, got)
}

func TestTree_MasteryBonuses(t *testing.T) {
	_, _, axeDmg, axeSpeed := newTalents()
	axeDmg2 := &model.Talent{ID: "axe_dmg2", Name: "Axe Mastery II", MaxRank: 2, Effect: model.EffectWeaponDamageBonus, EffectValue: 3, AffectedClass: model.ClassAxe}
	swordDmg := &model.Talent{ID: "sword_dmg", Name: "Sword Mastery", MaxRank: 2, Effect: model.EffectWeaponDamageBonus, EffectValue: 7, AffectedClass: model.ClassSword}

	tree := NewTree(10)
	require.NoError(t, tree.Learn(axeDmg))
	require.NoError(t, tree.Learn(axeDmg))
	require.NoError(t, tree.Learn(axeDmg2))
	require.NoError(t, tree.Learn(axeSpeed))
	require.NoError(t, tree.Learn(swordDmg))

	assert.InDelta(t, 4*2+3*1, tree.WeaponMasteryDamageBonus(model.ClassAxe), 1e-9)
	assert.InDelta(t, 10, tree.WeaponMasterySpeedBonus(model.ClassAxe), 1e-9)
	assert.InDelta(t, 7, tree.WeaponMasteryDamageBonus(model.ClassSword), 1e-9)
	assert.Zero(t, tree.WeaponMasteryDamageBonus(model.ClassDagger))
	assert.Zero(t, tree.WeaponMasterySpeedBonus(model.ClassSword))
}

func TestTree_EffectLookups(t *testing.T) {
	root, child, _, _ := newTalents()
	tree := NewTree(10)

	assert.False(t, tree.HasEffect(model.EffectAxeFrenzy))

	require.NoError(t, tree.Learn(root))
	require.NoError(t, tree.Learn(root))
	require.NoError(t, tree.Learn(child))

	assert.True(t, tree.HasEffect(model.EffectAxeFrenzy))
	assert.InDelta(t, 4, tree.EffectBonus(model.EffectIncreaseStrength), 1e-9)
	assert.Zero(t, tree.EffectBonus(model.EffectIncreaseVitality))

	learned := tree.Learned()
	require.Len(t, learned, 2)
	assert.Equal(t, "str", learned[0].Talent.ID)
	assert.Equal(t, 2, learned[0].Rank)
	assert.Equal(t, "frenzy", learned[1].Talent.ID)
}

// Ранг не убывает и не превышает MaxRank при любой последовательности Learn.
func TestTree_RankMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root, child, axeDmg, axeSpeed := newTalents()
		all := []*model.Talent{root, child, axeDmg, axeSpeed}

		tree := NewTree(rapid.IntRange(0, 20).Draw(t, "points"))
		prev := make(map[string]int)

		steps := rapid.SliceOfN(rapid.IntRange(0, len(all)-1), 0, 40).Draw(t, "steps")
		for _, idx := range steps {
			tal := all[idx]
			can := tree.CanLearn(tal)
			err := tree.Learn(tal)
			if can != (err == nil) {
				t.Fatalf("CanLearn=%v but Learn err=%v", can, err)
			}

			for _, x := range all {
				r := tree.Rank(x)
				if r < prev[x.ID] {
					t.Fatalf("rank of %s decreased: %d -> %d", x.ID, prev[x.ID], r)
				}
				if r > x.MaxRank {
					t.Fatalf("rank of %s exceeds max: %d > %d", x.ID, r, x.MaxRank)
				}
				if r > 0 && x.Prerequisite != nil && tree.Rank(x.Prerequisite) == 0 {
					t.Fatalf("%s learned without prerequisite", x.ID)
				}
				prev[x.ID] = r
			}
			if tree.Points() < 0 {
				t.Fatalf("negative points: %d", tree.Points())
			}
		}
	})
}
