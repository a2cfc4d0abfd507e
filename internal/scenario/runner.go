package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/warband/internal/ai"
	"github.com/udisondev/warband/internal/data"
	"github.com/udisondev/warband/internal/game/combat"
	"github.com/udisondev/warband/internal/model"
	"github.com/udisondev/warband/internal/world"
)

// PlayerID is the id of the scripted player in every run.
const PlayerID = "player"

// DefaultTick is used when neither the script nor the runner set a tick.
const DefaultTick = 20 * time.Millisecond

// Runner executes scripts against fresh worlds. Safe for concurrent use:
// every Run builds its own world and the catalog is read-only.
type Runner struct {
	catalog *data.Catalog
	opts    world.Options
	tick    time.Duration
}

// NewRunner creates a runner. opts carries game tuning; opts.Seed is a base
// added to every script seed. tick ≤ 0 falls back to DefaultTick.
func NewRunner(catalog *data.Catalog, opts world.Options, tick time.Duration) *Runner {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Runner{catalog: catalog, opts: opts, tick: tick}
}

// Run plays s to its end and returns the report. Cancellation of ctx is
// honoured between ticks.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	tick := s.Tick
	if tick <= 0 {
		tick = r.tick
	}

	opts := r.opts
	opts.Seed += s.Seed
	opts.PlayerID = PlayerID
	w := world.New(opts)

	rep := &Report{Name: s.Name, Seed: opts.Seed}
	w.SetDamageObserver(func(ev combat.DamageEvent) {
		rep.Hits = append(rep.Hits, Hit{
			At:           w.Now(),
			Source:       ev.SourceID,
			Target:       ev.TargetID,
			Amount:       ev.Amount,
			PlayerDamage: ev.PlayerDamage,
		})
	})
	w.SetOnKill(func(e *ai.Enemy) {
		rep.Kills = append(rep.Kills, Kill{At: w.Now(), ID: e.ID(), Template: e.Template().ID})
	})

	if err := r.setup(w, s); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	actions := s.sortedActions()
	next := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario %q interrupted at %s: %w", s.Name, w.Now(), err)
		}
		for next < len(actions) && actions[next].At <= w.Now() {
			if !apply(w, actions[next]) {
				rep.Rejected++
			}
			next++
		}
		if w.Now() >= s.Duration {
			break
		}
		w.Advance(min(tick, s.Duration-w.Now()))
	}

	rep.Duration = w.Now()
	rep.Player = w.Player().Snapshot()
	rep.EnemiesAlive = w.Enemies().Count()
	rep.NodesLeft = len(w.Nodes())

	slog.Debug("scenario finished",
		"name", s.Name,
		"hits", len(rep.Hits),
		"kills", len(rep.Kills),
		"rejected", rep.Rejected)
	return rep, nil
}

func (r *Runner) setup(w *world.World, s *Script) error {
	p := w.Player()
	lo := s.Loadout
	p.SetPosition(lo.position())

	if lo.MainHand != "" {
		weapon, ok := r.catalog.Weapon(lo.MainHand)
		if !ok {
			return fmt.Errorf("main hand %q: %w", lo.MainHand, ErrUnknownWeapon)
		}
		if err := p.Equip(weapon); err != nil {
			return fmt.Errorf("equipping %q: %w", lo.MainHand, err)
		}
	}
	if lo.OffHand != "" {
		weapon, ok := r.catalog.Weapon(lo.OffHand)
		if !ok {
			return fmt.Errorf("off hand %q: %w", lo.OffHand, ErrUnknownWeapon)
		}
		if err := p.EquipOffHand(weapon); err != nil {
			return fmt.Errorf("equipping off hand %q: %w", lo.OffHand, err)
		}
	}
	for _, id := range lo.Talents {
		tal, ok := r.catalog.Talent(id)
		if !ok {
			return fmt.Errorf("talent %q: %w", id, ErrUnknownTalent)
		}
		if err := p.LearnTalent(tal); err != nil {
			return fmt.Errorf("learning %q: %w", id, err)
		}
	}
	if lo.Strength != 0 {
		p.AddStrength(lo.Strength)
	}
	if lo.Vitality != 0 {
		p.AddVitality(lo.Vitality)
	}

	ids := make(map[string]struct{})
	for i, sp := range s.Enemies {
		tmpl, ok := r.catalog.Enemy(sp.Template)
		if !ok {
			return fmt.Errorf("enemy %d %q: %w", i, sp.Template, ErrUnknownEnemy)
		}
		id, err := spawnID(ids, sp, i)
		if err != nil {
			return err
		}
		if _, err := w.SpawnEnemy(id, tmpl, sp.Position()); err != nil {
			return err
		}
	}
	for i, sp := range s.Nodes {
		tmpl, ok := r.catalog.Node(sp.Template)
		if !ok {
			return fmt.Errorf("node %d %q: %w", i, sp.Template, ErrUnknownNode)
		}
		id, err := spawnID(ids, sp, i)
		if err != nil {
			return err
		}
		if _, err := w.SpawnNode(id, tmpl, sp.Position()); err != nil {
			return err
		}
	}
	return nil
}

func spawnID(seen map[string]struct{}, sp Spawn, i int) (string, error) {
	id := sp.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", sp.Template, i)
	}
	if _, dup := seen[id]; dup {
		return "", fmt.Errorf("spawn %q: %w", id, ErrDuplicateSpawn)
	}
	seen[id] = struct{}{}
	return id, nil
}

// apply dispatches one action. Returns false when the player rejected it.
func apply(w *world.World, a Action) bool {
	p := w.Player()
	switch a.Kind {
	case ActionAttack:
		return p.Attack(a.Vec())
	case ActionDash:
		return p.Dash(a.Vec())
	case ActionBeginCharge:
		return p.BeginCharge()
	case ActionReleaseCharge:
		return p.ReleaseCharge(a.Vec())
	case ActionCancelCharge:
		p.CancelCharge()
	case ActionGather:
		_, ok := p.Gather(a.Vec())
		return ok
	case ActionWarCry:
		_, ok := p.WarCry()
		return ok
	case ActionMove:
		p.SetMoveInput(a.Vec())
	case ActionStop:
		p.SetMoveInput(model.Vec2{})
	case ActionRespawn:
		p.Respawn(a.Vec())
	case ActionTalk:
		e, err := w.Enemies().Get(a.Target)
		if err != nil || e.State() != model.AggroDialogue || e.IsStunned() {
			return false
		}
		e.AdvanceDialogue()
	}
	return true
}
