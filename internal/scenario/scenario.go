// Package scenario runs scripted, deterministic combat simulations.
package scenario

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/warband/internal/model"
)

var (
	ErrDuration       = errors.New("scenario duration must be positive")
	ErrTick           = errors.New("scenario tick must not be negative")
	ErrUnknownAction  = errors.New("unknown scenario action")
	ErrActionTime     = errors.New("action time outside scenario duration")
	ErrUnknownWeapon  = errors.New("unknown weapon")
	ErrUnknownTalent  = errors.New("unknown talent")
	ErrUnknownEnemy   = errors.New("unknown enemy template")
	ErrUnknownNode    = errors.New("unknown node template")
	ErrDuplicateSpawn = errors.New("duplicate spawn id")
	ErrActionTarget   = errors.New("talk action needs a target")
)

// ActionKind is a scripted player input.
type ActionKind string

const (
	ActionAttack        ActionKind = "attack"
	ActionDash          ActionKind = "dash"
	ActionBeginCharge   ActionKind = "begin_charge"
	ActionReleaseCharge ActionKind = "release_charge"
	ActionCancelCharge  ActionKind = "cancel_charge"
	ActionGather        ActionKind = "gather"
	ActionWarCry        ActionKind = "war_cry"
	ActionMove          ActionKind = "move"
	ActionStop          ActionKind = "stop"
	ActionRespawn       ActionKind = "respawn"
	ActionTalk          ActionKind = "talk"
)

var knownActions = []ActionKind{
	ActionAttack, ActionDash, ActionBeginCharge, ActionReleaseCharge, ActionCancelCharge,
	ActionGather, ActionWarCry, ActionMove, ActionStop, ActionRespawn, ActionTalk,
}

// Script — сценарий: стартовая экипировка и таланты, расстановка врагов и
// узлов, список действий игрока по времени симуляции.
type Script struct {
	Name     string        `yaml:"name"`
	Seed     uint64        `yaml:"seed"`
	Duration time.Duration `yaml:"duration"`
	Tick     time.Duration `yaml:"tick"` // zero uses the runner default

	Loadout Loadout  `yaml:"loadout"`
	Enemies []Spawn  `yaml:"enemies"`
	Nodes   []Spawn  `yaml:"nodes"`
	Actions []Action `yaml:"actions"`
}

// Loadout is the player's starting state.
type Loadout struct {
	MainHand string   `yaml:"main_hand"`
	OffHand  string   `yaml:"off_hand"`
	Talents  []string `yaml:"talents"` // learned in order, one rank per entry
	Strength float64  `yaml:"strength"`
	Vitality float64  `yaml:"vitality"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
}

func (l Loadout) position() model.Vec2 { return model.V(l.X, l.Y) }

// Spawn places a catalog template. An empty ID becomes "<template>-<n>".
type Spawn struct {
	ID       string  `yaml:"id"`
	Template string  `yaml:"template"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
}

// Position returns the spawn point.
func (s Spawn) Position() model.Vec2 { return model.V(s.X, s.Y) }

// Action is one input at simulation time At. X/Y carry the aim, dash or
// move direction, or the respawn point. Target names the enemy spoken to.
type Action struct {
	At     time.Duration `yaml:"at"`
	Kind   ActionKind    `yaml:"do"`
	X      float64       `yaml:"x"`
	Y      float64       `yaml:"y"`
	Target string        `yaml:"target"`
}

// Vec returns the action vector.
func (a Action) Vec() model.Vec2 { return model.V(a.X, a.Y) }

// LoadFile reads and validates a scenario file.
func LoadFile(path string) (*Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(raw []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks script-level invariants. Catalog references are checked
// by the runner.
func (s *Script) Validate() error {
	if s.Duration <= 0 {
		return ErrDuration
	}
	if s.Tick < 0 {
		return ErrTick
	}
	for i, a := range s.Actions {
		if !slices.Contains(knownActions, a.Kind) {
			return fmt.Errorf("action %d %q: %w", i, a.Kind, ErrUnknownAction)
		}
		if a.At < 0 || a.At > s.Duration {
			return fmt.Errorf("action %d at %s: %w", i, a.At, ErrActionTime)
		}
		if a.Kind == ActionTalk && a.Target == "" {
			return fmt.Errorf("action %d: %w", i, ErrActionTarget)
		}
	}
	return nil
}

// sortedActions returns actions ordered by time, keeping file order for ties.
func (s *Script) sortedActions() []Action {
	actions := slices.Clone(s.Actions)
	slices.SortStableFunc(actions, func(a, b Action) int {
		return cmp.Compare(a.At, b.At)
	})
	return actions
}
