package world

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/warband/internal/ai"
	"github.com/udisondev/warband/internal/game/ability"
	"github.com/udisondev/warband/internal/game/buff"
	"github.com/udisondev/warband/internal/game/combat"
	"github.com/udisondev/warband/internal/game/player"
	"github.com/udisondev/warband/internal/game/timer"
	"github.com/udisondev/warband/internal/model"
)

// Options configures a world. Zero-value collaborators are allowed.
type Options struct {
	Seed     uint64
	PlayerID string
	CellSize float64

	Player    player.Config
	Abilities ability.Config
	Buffs     buff.Config

	Gate      ability.InputGate
	Notifier  ability.Notifier
	Presenter ai.DialoguePresenter
}

// DefaultOptions returns options with default game constants.
func DefaultOptions() Options {
	return Options{
		CellSize:  DefaultCellSize,
		Player:    player.DefaultConfig(),
		Abilities: ability.DefaultConfig(),
		Buffs:     buff.DefaultConfig(),
	}
}

// World — единственный владелец симуляции: часы, планировщик, игрок,
// враги и ресурсные узлы. Advance(dt) продвигает всё в фиксированном порядке:
//
//  1. часы, таймеры баффов и движение игрока с контактами рывка
//  2. отложенные колбэки способностей (второй удар, конец взмаха/рывка)
//  3. шаги 1-2 повторяются, пока не пройден весь dt
//  4. ИИ врагов
//  5. перестроение сетки врагов
//  6. контактный урон врагов
//  7. удаление мёртвых врагов и истощённых узлов
//
// Not thread-safe. Independent worlds share nothing and may run concurrently.
type World struct {
	clock  *timer.Clock
	sched  *timer.Scheduler
	rng    *rand.Rand
	combat *combat.Manager

	player    *player.Player
	enemies   *ai.Manager
	enemyGrid *Grid[*ai.Enemy]

	nodes    []*Node
	nodeGrid *Grid[*Node]

	presenter ai.DialoguePresenter
	onKill    func(e *ai.Enemy)
	kills     int
}

// New creates a world with the player at the origin.
func New(opts Options) *World {
	clock := &timer.Clock{}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	w := &World{
		clock:     clock,
		sched:     timer.NewScheduler(clock),
		rng:       rng,
		combat:    combat.NewManager(rng),
		enemies:   ai.NewManager(),
		enemyGrid: NewGrid[*ai.Enemy](opts.CellSize),
		nodeGrid:  NewGrid[*Node](opts.CellSize),
		presenter: opts.Presenter,
	}

	w.player = player.New(opts.Player, opts.Abilities, opts.Buffs, player.Deps{
		ID:        opts.PlayerID,
		Clock:     clock,
		Scheduler: w.sched,
		Gate:      opts.Gate,
		Notifier:  opts.Notifier,
		Combat:    w.combat,
		Targets:   w,
		Nodes:     nodeQuery{w},
	})
	return w
}

func (w *World) Clock() *timer.Clock         { return w.clock }
func (w *World) Scheduler() *timer.Scheduler { return w.sched }
func (w *World) Now() time.Duration          { return w.clock.Now() }
func (w *World) Player() *player.Player      { return w.player }
func (w *World) Enemies() *ai.Manager        { return w.enemies }
func (w *World) Combat() *combat.Manager     { return w.combat }
func (w *World) Nodes() []*Node              { return w.nodes }
func (w *World) Kills() int                  { return w.kills }

// SetDamageObserver forwards every applied hit to fn (floating damage numbers).
func (w *World) SetDamageObserver(fn func(combat.DamageEvent)) {
	w.combat.SetDamageObserver(fn)
}

// SetOnKill sets callback for enemies removed after death.
func (w *World) SetOnKill(fn func(e *ai.Enemy)) {
	w.onKill = fn
}

// SpawnEnemy places an enemy. An empty id is replaced by a generated one.
func (w *World) SpawnEnemy(id string, tmpl *ai.Template, pos model.Vec2) (*ai.Enemy, error) {
	if err := tmpl.Validate(); err != nil {
		return nil, fmt.Errorf("spawning enemy: %w", err)
	}
	if id == "" {
		id = uuid.NewString()
	}

	e := ai.NewEnemy(id, tmpl, pos, w.clock, w.presenter)
	w.enemies.Register(e)
	w.enemyGrid.Rebuild(w.enemies.Enemies())
	return e, nil
}

// SpawnNode places a resource node. An empty id is replaced by a generated one.
func (w *World) SpawnNode(id string, tmpl *NodeTemplate, pos model.Vec2) (*Node, error) {
	if err := tmpl.Validate(); err != nil {
		return nil, fmt.Errorf("spawning node: %w", err)
	}
	if id == "" {
		id = uuid.NewString()
	}

	n := NewNode(id, tmpl, pos, w.rng)
	w.nodes = append(w.nodes, n)
	w.nodeGrid.Insert(n)
	return n, nil
}

// Within returns live enemies within radius of center.
func (w *World) Within(center model.Vec2, radius float64) []model.Target {
	var result []model.Target
	for _, e := range w.enemyGrid.Within(center, radius) {
		if !e.IsDead() {
			result = append(result, e)
		}
	}
	return result
}

type nodeQuery struct{ w *World }

// NodesWithin returns non-depleted nodes within radius of center.
func (q nodeQuery) NodesWithin(center model.Vec2, radius float64) []ability.Gatherable {
	var result []ability.Gatherable
	for _, n := range q.w.nodeGrid.Within(center, radius) {
		if !n.IsDepleted() {
			result = append(result, n)
		}
	}
	return result
}

// Advance steps the simulation by dt.
func (w *World) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}

	w.advancePlayer(dt)

	w.enemies.AdvanceAll(dt, w.player)
	w.enemyGrid.Rebuild(w.enemies.Enemies())

	w.applyContactDamage()
	w.removeDead()
	w.removeDepleted()
}

// advancePlayer splits dt at scheduler due times so a dash or charge moves
// for exactly its duration regardless of the tick size.
func (w *World) advancePlayer(dt time.Duration) {
	end := w.clock.Now() + dt
	for {
		w.sched.Run()
		now := w.clock.Now()
		if now >= end {
			return
		}
		step := end - now
		if due, ok := w.sched.NextDue(); ok && due < end {
			step = due - now
		}
		w.clock.Advance(step)
		w.player.AdvanceBuffs(step)
		w.player.AdvanceMotion(step)
	}
}

func (w *World) applyContactDamage() {
	if w.player.IsDead() {
		return
	}
	for _, e := range w.enemyGrid.Within(w.player.Position(), w.maxContactRange()) {
		if !e.CanContact() || !e.InContact(w.player.Position()) {
			continue
		}
		if w.combat.Deal(e.ID(), w.player, e.ContactDamage(), true) && w.player.IsDead() {
			slog.Info("player killed", "by", e.ID(), "name", e.Name())
			return
		}
	}
}

func (w *World) maxContactRange() float64 {
	r := 0.0
	for _, e := range w.enemies.Enemies() {
		r = max(r, e.Template().ContactRange)
	}
	return r
}

func (w *World) removeDead() {
	dead := make(map[string]*ai.Enemy)
	for _, e := range w.enemies.Enemies() {
		if e.IsDead() {
			dead[e.ID()] = e
		}
	}

	removed := w.enemies.RemoveDead()
	if len(removed) == 0 {
		return
	}
	w.enemyGrid.Rebuild(w.enemies.Enemies())

	for _, id := range removed {
		w.kills++
		if w.onKill != nil {
			w.onKill(dead[id])
		}
	}
}

func (w *World) removeDepleted() {
	kept := w.nodes[:0]
	for _, n := range w.nodes {
		if !n.IsDepleted() {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(w.nodes) {
		return
	}
	clear(w.nodes[len(kept):])
	w.nodes = kept
	w.nodeGrid.Rebuild(w.nodes)
}
