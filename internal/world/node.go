package world

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/warband/internal/model"
)

var (
	ErrNodeHits  = errors.New("resource node needs at least one hit")
	ErrNodeYield = errors.New("resource node yield range is invalid")
)

// NodeTemplate describes a kind of resource node (tree, ore vein).
type NodeTemplate struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	MaxHits  int    `yaml:"max_hits" json:"max_hits"`
	MinYield int    `yaml:"min_yield" json:"min_yield"`
	MaxYield int    `yaml:"max_yield" json:"max_yield"`
}

// Validate checks MaxHits ≥ 1 and 0 ≤ MinYield ≤ MaxYield.
func (t *NodeTemplate) Validate() error {
	if t.MaxHits < 1 {
		return fmt.Errorf("node %q: %w", t.ID, ErrNodeHits)
	}
	if t.MinYield < 0 || t.MinYield > t.MaxYield {
		return fmt.Errorf("node %q: %w", t.ID, ErrNodeYield)
	}
	return nil
}

// Node — ресурсный узел: каждый удар инструментом даёт случайный выход
// в [MinYield, MaxYield], после MaxHits ударов узел истощён.
type Node struct {
	id   string
	tmpl *NodeTemplate
	pos  model.Vec2
	rng  *rand.Rand
	hits int
}

// NewNode creates a fresh node rolling yields from rng.
func NewNode(id string, tmpl *NodeTemplate, pos model.Vec2, rng *rand.Rand) *Node {
	return &Node{id: id, tmpl: tmpl, pos: pos, rng: rng}
}

func (n *Node) ID() string              { return n.id }
func (n *Node) Position() model.Vec2    { return n.pos }
func (n *Node) Template() *NodeTemplate { return n.tmpl }
func (n *Node) Hits() int               { return n.hits }

// IsDepleted reports whether the node has taken MaxHits hits.
func (n *Node) IsDepleted() bool {
	return n.hits >= n.tmpl.MaxHits
}

// Gather takes one hit and returns the rolled yield. Depleted nodes yield 0.
func (n *Node) Gather() int {
	if n.IsDepleted() {
		return 0
	}
	n.hits++

	yield := n.tmpl.MinYield
	if spread := n.tmpl.MaxYield - n.tmpl.MinYield; spread > 0 {
		yield += n.rng.IntN(spread + 1)
	}

	if n.IsDepleted() {
		slog.Debug("resource node depleted", "id", n.id, "name", n.tmpl.Name)
	}
	return yield
}
