package ability

import (
	"time"

	"github.com/udisondev/warband/internal/model"
)

// Gatherable is a resource node.
type Gatherable interface {
	ID() string
	Position() model.Vec2
	IsDepleted() bool
	// Gather takes one hit and returns the rolled yield.
	Gather() int
}

// NodeQuery answers "all resource nodes within radius of center".
type NodeQuery interface {
	NodesWithin(center model.Vec2, radius float64) []Gatherable
}

// Gather — удар инструментом по ресурсным узлам в дуге.
type Gather struct {
	cycle
	cfg     GatherConfig
	owner   Owner
	nodes   NodeQuery
	onYield func(node Gatherable, amount int)
}

// NewGather creates a ready gather ability. onYield may be nil.
func NewGather(env Env, cfg GatherConfig, owner Owner, nodes NodeQuery, onYield func(node Gatherable, amount int)) *Gather {
	return &Gather{
		cycle:   cycle{kind: KindGather, env: env},
		cfg:     cfg,
		owner:   owner,
		nodes:   nodes,
		onYield: onYield,
	}
}

// Cooldown returns the gather cooldown.
func (g *Gather) Cooldown() time.Duration { return g.cfg.Cooldown }

// CanActivate reports whether a gather swing may start now.
func (g *Gather) CanActivate() bool {
	return g.ready(g.Cooldown())
}

// CooldownFraction returns the normalized cooldown in [0,1].
func (g *Gather) CooldownFraction() float64 {
	return g.fraction(g.Cooldown())
}

// Activate swings toward aim and hits every non-depleted node in range and arc.
// Returns the total yield and whether the swing happened.
func (g *Gather) Activate(aim model.Vec2) (int, bool) {
	if g.blocked(false) {
		logRejected(g.kind, "input blocked")
		return 0, false
	}
	if !g.CanActivate() {
		return 0, false
	}

	g.start(g.cfg.Swing)

	origin := g.owner.Position()
	total := 0
	if g.nodes == nil {
		return 0, true
	}
	for _, n := range g.nodes.NodesWithin(origin, g.cfg.Range) {
		if n.IsDepleted() || !model.WithinArc(origin, aim, n.Position(), g.cfg.Range, g.cfg.Arc) {
			continue
		}
		amount := n.Gather()
		total += amount
		if g.onYield != nil {
			g.onYield(n, amount)
		}
	}
	return total, true
}
