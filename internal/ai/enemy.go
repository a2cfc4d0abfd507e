package ai

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/warband/internal/model"
)

var (
	ErrEnemyHealth = errors.New("enemy max health must be positive")
	ErrEnemySpeed  = errors.New("enemy move speed must not be negative")
)

// Template describes an enemy kind.
//
// Enemies with Dialogue start Passive and talk when the player comes within
// DetectionRange. Without dialogue, Hostile enemies start Aggressive and the
// rest stay Passive until hit.
type Template struct {
	ID              string        `yaml:"id" json:"id"`
	Name            string        `yaml:"name" json:"name"`
	MaxHealth       float64       `yaml:"max_health" json:"max_health"`
	MoveSpeed       float64       `yaml:"move_speed" json:"move_speed"`
	ContactDamage   float64       `yaml:"contact_damage" json:"contact_damage"`
	ContactRange    float64       `yaml:"contact_range" json:"contact_range"`
	DetectionRange  float64       `yaml:"detection_range" json:"detection_range"`
	Invulnerability time.Duration `yaml:"invulnerability" json:"invulnerability"`
	Hostile         bool          `yaml:"hostile" json:"hostile"`
	Dialogue        []string      `yaml:"dialogue" json:"dialogue,omitempty"`
}

// Validate checks template invariants.
func (t *Template) Validate() error {
	if t.MaxHealth <= 0 {
		return fmt.Errorf("enemy %q: %w", t.ID, ErrEnemyHealth)
	}
	if t.MoveSpeed < 0 {
		return fmt.Errorf("enemy %q: %w", t.ID, ErrEnemySpeed)
	}
	return nil
}

// HasDialogue reports whether the enemy talks before fighting.
func (t *Template) HasDialogue() bool {
	return len(t.Dialogue) > 0
}

// Enemy — враг с автоматом агрессии и ортогональным оглушением.
//
// Состояния: Passive → [ShowingDialogue] → Aggressive, терминальное Dead.
// Урон всегда переводит сразу в Aggressive. Оглушение приостанавливает
// движение и контактный урон, но не меняет состояние агрессии.
type Enemy struct {
	id    string
	tmpl  *Template
	pos   model.Vec2
	clock model.Clock

	health *model.Health
	state  model.AggroState

	dialogueIndex int
	stunRemaining time.Duration

	presenter DialoguePresenter
}

// NewEnemy creates an enemy at pos. presenter may be nil.
func NewEnemy(id string, tmpl *Template, pos model.Vec2, clock model.Clock, presenter DialoguePresenter) *Enemy {
	state := model.AggroPassive
	if tmpl.Hostile && !tmpl.HasDialogue() {
		state = model.AggroAggressive
	}
	return &Enemy{
		id:        id,
		tmpl:      tmpl,
		pos:       pos,
		clock:     clock,
		health:    model.NewHealth(tmpl.MaxHealth, tmpl.Invulnerability),
		state:     state,
		presenter: presenter,
	}
}

func (e *Enemy) ID() string                   { return e.id }
func (e *Enemy) Name() string                 { return e.tmpl.Name }
func (e *Enemy) Template() *Template          { return e.tmpl }
func (e *Enemy) Position() model.Vec2         { return e.pos }
func (e *Enemy) State() model.AggroState      { return e.state }
func (e *Enemy) IsDead() bool                 { return e.health.IsDead() }
func (e *Enemy) IsStunned() bool              { return e.stunRemaining > 0 }
func (e *Enemy) StunRemaining() time.Duration { return e.stunRemaining }
func (e *Enemy) Health() *model.Health        { return e.health }
func (e *Enemy) DialogueIndex() int           { return e.dialogueIndex }

// TakeDamage applies damage. Any accepted hit turns a non-aggressive enemy
// Aggressive immediately, skipping remaining dialogue. Stun is not cancelled.
func (e *Enemy) TakeDamage(amount float64) bool {
	if !e.health.TakeDamage(e.clock.Now(), amount) {
		return false
	}

	if e.health.IsDead() {
		e.die()
		return true
	}

	if e.state != model.AggroAggressive {
		if e.state == model.AggroDialogue {
			e.hideDialogue()
		}
		e.becomeAggressive("damaged")
	}
	return true
}

// Stun suspends movement and attacks for duration. A new stun replaces the
// remaining time. Visible dialogue is hidden.
func (e *Enemy) Stun(duration time.Duration) {
	if e.IsDead() || duration <= 0 {
		return
	}
	e.stunRemaining = duration
	if e.state == model.AggroDialogue {
		e.hideDialogue()
	}

	if IsDebugEnabled() {
		slog.Debug("enemy stunned",
			"id", e.id,
			"name", e.tmpl.Name,
			"duration", duration)
	}
}

// AdvanceDialogue shows the next line, or turns Aggressive once lines are exhausted.
// Ignored outside ShowingDialogue and while stunned.
func (e *Enemy) AdvanceDialogue() {
	if e.state != model.AggroDialogue || e.IsStunned() {
		return
	}
	e.showNextLine()
}

// Advance performs one AI tick.
//
// While stunned only the stun timer runs. Otherwise dialogue enemies react to
// quarry entering or leaving DetectionRange, and Aggressive enemies move toward
// quarry at MoveSpeed, stopping at ContactRange.
func (e *Enemy) Advance(dt time.Duration, quarry Quarry) {
	if e.IsDead() || dt <= 0 {
		return
	}

	if e.IsStunned() {
		e.stunRemaining -= dt
		if e.stunRemaining <= 0 {
			e.stunRemaining = 0
			if IsDebugEnabled() {
				slog.Debug("enemy stun ended", "id", e.id)
			}
		}
		return
	}

	if quarry == nil || quarry.IsDead() {
		return
	}

	distance := e.pos.Distance(quarry.Position())

	if e.tmpl.HasDialogue() {
		inRange := distance <= e.tmpl.DetectionRange
		switch {
		case inRange && e.state == model.AggroPassive:
			e.state = model.AggroDialogue
			e.showNextLine()
		case !inRange && e.state == model.AggroDialogue:
			e.hideDialogue()
			e.state = model.AggroPassive
			e.dialogueIndex = 0
		}
	}

	if e.state == model.AggroAggressive {
		e.chase(quarry.Position(), distance, dt)
	}
}

// CanContact reports whether touching the player deals damage now.
func (e *Enemy) CanContact() bool {
	return e.state == model.AggroAggressive && !e.IsStunned() && !e.IsDead()
}

// InContact reports whether pos is within contact range.
func (e *Enemy) InContact(pos model.Vec2) bool {
	return e.pos.Distance(pos) <= e.tmpl.ContactRange
}

// ContactDamage returns the fixed per-enemy contact damage.
func (e *Enemy) ContactDamage() float64 {
	return e.tmpl.ContactDamage
}

func (e *Enemy) chase(target model.Vec2, distance float64, dt time.Duration) {
	gap := distance - e.tmpl.ContactRange
	if gap <= 0 {
		return
	}
	step := min(e.tmpl.MoveSpeed*dt.Seconds(), gap)
	e.pos = e.pos.Add(target.Sub(e.pos).Normalize().Scale(step))
}

func (e *Enemy) showNextLine() {
	if e.dialogueIndex < len(e.tmpl.Dialogue) {
		if e.presenter != nil {
			e.presenter.ShowDialogue(e.tmpl.Name, e.tmpl.Dialogue[e.dialogueIndex])
		}
		e.dialogueIndex++
		return
	}
	e.hideDialogue()
	e.becomeAggressive("dialogue exhausted")
}

func (e *Enemy) hideDialogue() {
	if e.presenter != nil {
		e.presenter.HideDialogue()
	}
}

func (e *Enemy) becomeAggressive(reason string) {
	e.state = model.AggroAggressive
	slog.Debug("enemy aggressive",
		"id", e.id,
		"name", e.tmpl.Name,
		"reason", reason)
}

func (e *Enemy) die() {
	if e.state == model.AggroDialogue {
		e.hideDialogue()
	}
	e.state = model.AggroDead
	e.stunRemaining = 0
	slog.Debug("enemy died", "id", e.id, "name", e.tmpl.Name)
}
