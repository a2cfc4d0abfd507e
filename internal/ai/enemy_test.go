package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/udisondev/warband/internal/game/timer"
	"github.com/udisondev/warband/internal/model"
	"github.com/udisondev/warband/internal/testutil"
	"github.com/udisondev/warband/internal/testutil/mocks"
)

const tick = 100 * time.Millisecond

func villager() *Template {
	return &Template{
		ID:             "villager",
		Name:           "Hostile Villager",
		MaxHealth:      3,
		MoveSpeed:      2,
		ContactDamage:  1,
		ContactRange:   0.5,
		DetectionRange: 3,
		Dialogue: []string{
			"You shouldn't have come here...",
			"This is your last warning!",
		},
	}
}

func TestEnemy_InitialState(t *testing.T) {
	clock := &timer.Clock{}

	tests := []struct {
		name string
		tmpl *Template
		want model.AggroState
	}{
		{"dialogue", villager(), model.AggroPassive},
		{"hostile", &Template{ID: "slime", MaxHealth: 3, Hostile: true}, model.AggroAggressive},
		{"hostile with dialogue talks first", &Template{ID: "x", MaxHealth: 3, Hostile: true, Dialogue: []string{"hi"}}, model.AggroPassive},
		{"peaceful", &Template{ID: "deer", MaxHealth: 3}, model.AggroPassive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy("e1", tt.tmpl, model.Vec2{}, clock, nil)
			assert.Equal(t, tt.want, e.State())
		})
	}
}

func TestEnemy_DialogueFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockDialoguePresenter(ctrl)
	clock := &timer.Clock{}
	tmpl := villager()

	e := NewEnemy("v1", tmpl, model.Vec2{}, clock, presenter)
	player := testutil.NewDummy("player", model.V(5, 0), 10)

	e.Advance(tick, player)
	assert.Equal(t, model.AggroPassive, e.State())

	gomock.InOrder(
		presenter.EXPECT().ShowDialogue(tmpl.Name, tmpl.Dialogue[0]),
		presenter.EXPECT().ShowDialogue(tmpl.Name, tmpl.Dialogue[1]),
		presenter.EXPECT().HideDialogue(),
	)

	player.MoveTo(model.V(2, 0))
	e.Advance(tick, player)
	assert.Equal(t, model.AggroDialogue, e.State())
	assert.Equal(t, 1, e.DialogueIndex())

	e.AdvanceDialogue()
	assert.Equal(t, model.AggroDialogue, e.State())

	e.AdvanceDialogue()
	assert.Equal(t, model.AggroAggressive, e.State())
	assert.True(t, e.CanContact())
}

func TestEnemy_LeavingRangeResetsDialogue(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockDialoguePresenter(ctrl)
	clock := &timer.Clock{}
	tmpl := villager()

	e := NewEnemy("v1", tmpl, model.Vec2{}, clock, presenter)
	player := testutil.NewDummy("player", model.V(1, 0), 10)

	presenter.EXPECT().ShowDialogue(tmpl.Name, tmpl.Dialogue[0]).Times(2)
	presenter.EXPECT().ShowDialogue(tmpl.Name, tmpl.Dialogue[1])
	presenter.EXPECT().HideDialogue()

	e.Advance(tick, player)
	e.AdvanceDialogue()
	require.Equal(t, 2, e.DialogueIndex())

	player.MoveTo(model.V(10, 0))
	e.Advance(tick, player)
	assert.Equal(t, model.AggroPassive, e.State())
	assert.Zero(t, e.DialogueIndex())

	player.MoveTo(model.V(1, 0))
	e.Advance(tick, player)
	assert.Equal(t, model.AggroDialogue, e.State())
	assert.Equal(t, 1, e.DialogueIndex())
}

// Урон в Passive сразу переводит в Aggressive, минуя диалог.
func TestEnemy_DamageSkipsDialogue(t *testing.T) {
	for _, index := range []int{0, 1, 2} {
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockDialoguePresenter(ctrl)
		presenter.EXPECT().ShowDialogue(gomock.Any(), gomock.Any()).AnyTimes()
		presenter.EXPECT().HideDialogue().AnyTimes()

		clock := &timer.Clock{}
		e := NewEnemy("v1", villager(), model.Vec2{}, clock, presenter)
		e.dialogueIndex = index

		require.True(t, e.TakeDamage(1))
		assert.Equal(t, model.AggroAggressive, e.State(), "index %d", index)
		assert.False(t, e.IsDead())
	}
}

func TestEnemy_DamageDuringDialogueHidesIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockDialoguePresenter(ctrl)
	clock := &timer.Clock{}
	tmpl := villager()

	e := NewEnemy("v1", tmpl, model.Vec2{}, clock, presenter)
	player := testutil.NewDummy("player", model.V(1, 0), 10)

	presenter.EXPECT().ShowDialogue(tmpl.Name, tmpl.Dialogue[0])
	e.Advance(tick, player)

	presenter.EXPECT().HideDialogue()
	require.True(t, e.TakeDamage(1))
	assert.Equal(t, model.AggroAggressive, e.State())
}

func TestEnemy_StunSuspendsAndResumes(t *testing.T) {
	clock := &timer.Clock{}
	tmpl := &Template{ID: "slime", MaxHealth: 10, MoveSpeed: 2, ContactRange: 0.5, Hostile: true}
	e := NewEnemy("s1", tmpl, model.Vec2{}, clock, nil)
	player := testutil.NewDummy("player", model.V(10, 0), 10)

	e.Stun(1500 * time.Millisecond)
	assert.True(t, e.IsStunned())
	assert.False(t, e.CanContact())

	// damage does not cancel the stun
	require.True(t, e.TakeDamage(1))
	assert.True(t, e.IsStunned())

	for range 14 {
		e.Advance(tick, player)
	}
	assert.True(t, e.IsStunned())
	assert.Equal(t, model.Vec2{}, e.Position(), "no movement while stunned")

	e.Advance(tick, player)
	assert.False(t, e.IsStunned())
	assert.Equal(t, model.AggroAggressive, e.State(), "prior state resumes")

	e.Advance(time.Second, player)
	assert.InDelta(t, 2, e.Position().X, 1e-9)
}

func TestEnemy_StunHidesDialogue(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockDialoguePresenter(ctrl)
	clock := &timer.Clock{}
	tmpl := villager()
	e := NewEnemy("v1", tmpl, model.Vec2{}, clock, presenter)
	player := testutil.NewDummy("player", model.V(1, 0), 10)

	presenter.EXPECT().ShowDialogue(tmpl.Name, tmpl.Dialogue[0])
	e.Advance(tick, player)

	presenter.EXPECT().HideDialogue()
	e.Stun(time.Second)
	e.AdvanceDialogue() // ignored while stunned
	assert.Equal(t, 1, e.DialogueIndex())
}

func TestEnemy_ChaseStopsAtContactRange(t *testing.T) {
	clock := &timer.Clock{}
	tmpl := &Template{ID: "slime", MaxHealth: 10, MoveSpeed: 2, ContactRange: 0.5, Hostile: true}
	e := NewEnemy("s1", tmpl, model.Vec2{}, clock, nil)
	player := testutil.NewDummy("player", model.V(1, 0), 10)

	assert.False(t, e.InContact(player.Position()))
	e.Advance(time.Second, player)
	assert.InDelta(t, 0.5, e.Position().X, 1e-9)
	assert.True(t, e.InContact(player.Position()))
}

func TestEnemy_DeathIsTerminal(t *testing.T) {
	clock := &timer.Clock{}
	e := NewEnemy("s1", &Template{ID: "slime", MaxHealth: 2, Hostile: true}, model.Vec2{}, clock, nil)

	require.True(t, e.TakeDamage(5))
	assert.True(t, e.IsDead())
	assert.Equal(t, model.AggroDead, e.State())
	assert.False(t, e.CanContact())

	assert.False(t, e.TakeDamage(1))
	e.Stun(time.Second)
	assert.False(t, e.IsStunned())
}

func TestEnemy_Invulnerability(t *testing.T) {
	clock := &timer.Clock{}
	e := NewEnemy("s1", &Template{ID: "golem", MaxHealth: 10, Invulnerability: 500 * time.Millisecond}, model.Vec2{}, clock, nil)

	require.True(t, e.TakeDamage(1))
	assert.False(t, e.TakeDamage(1))

	clock.Advance(500 * time.Millisecond)
	assert.True(t, e.TakeDamage(1))
	assert.InDelta(t, 8, e.Health().Current(), 1e-9)
}

func TestTemplate_Validate(t *testing.T) {
	assert.NoError(t, villager().Validate())
	assert.ErrorIs(t, (&Template{ID: "x"}).Validate(), ErrEnemyHealth)
	assert.ErrorIs(t, (&Template{ID: "x", MaxHealth: 1, MoveSpeed: -1}).Validate(), ErrEnemySpeed)
}
