package ability_test

import (
	"time"

	"github.com/udisondev/warband/internal/game/ability"
	"github.com/udisondev/warband/internal/game/combat"
	"github.com/udisondev/warband/internal/game/timer"
	"github.com/udisondev/warband/internal/model"
)

type strike struct {
	target string
	hand   combat.Hand
	at     time.Duration
}

type fakeOwner struct {
	clock    *timer.Clock
	pos      model.Vec2
	bonus    map[model.TalentEffectType]float64
	cooldown time.Duration
	dual     bool
	dead     bool
	attack   float64

	strikes []strike
	dealt   map[string][]float64
}

func newOwner(clock *timer.Clock) *fakeOwner {
	return &fakeOwner{
		clock:    clock,
		bonus:    make(map[model.TalentEffectType]float64),
		cooldown: 500 * time.Millisecond,
		attack:   10,
		dealt:    make(map[string][]float64),
	}
}

func (o *fakeOwner) ID() string                                   { return "player" }
func (o *fakeOwner) Position() model.Vec2                         { return o.pos }
func (o *fakeOwner) TalentBonus(e model.TalentEffectType) float64 { return o.bonus[e] }
func (o *fakeOwner) AttackCooldown() time.Duration                { return o.cooldown }
func (o *fakeOwner) IsDualWielding() bool                         { return o.dual }
func (o *fakeOwner) IsDead() bool                                 { return o.dead }
func (o *fakeOwner) AttackDamage() float64                        { return o.attack }

func (o *fakeOwner) Strike(t model.Target, hand combat.Hand) {
	o.strikes = append(o.strikes, strike{target: t.ID(), hand: hand, at: o.clock.Now()})
	t.TakeDamage(1)
}

func (o *fakeOwner) Deal(t model.Target, amount float64) bool {
	o.dealt[t.ID()] = append(o.dealt[t.ID()], amount)
	return t.TakeDamage(amount)
}

type sim struct {
	clock *timer.Clock
	sched *timer.Scheduler
}

func newSim() *sim {
	clock := &timer.Clock{}
	return &sim{clock: clock, sched: timer.NewScheduler(clock)}
}

func (s *sim) env() ability.Env {
	return ability.Env{Clock: s.clock, Scheduler: s.sched}
}

// step advances the clock and fires due callbacks.
func (s *sim) step(dt time.Duration) {
	s.clock.Advance(dt)
	s.sched.Run()
}

type node struct {
	id    string
	pos   model.Vec2
	hits  int
	max   int
	yield int
}

func (n *node) ID() string           { return n.id }
func (n *node) Position() model.Vec2 { return n.pos }
func (n *node) IsDepleted() bool     { return n.hits >= n.max }
func (n *node) Gather() int {
	n.hits++
	return n.yield
}

type nodes []ability.Gatherable

func (ns nodes) NodesWithin(center model.Vec2, radius float64) []ability.Gatherable {
	var result []ability.Gatherable
	for _, n := range ns {
		if center.Distance(n.Position()) <= radius {
			result = append(result, n)
		}
	}
	return result
}
