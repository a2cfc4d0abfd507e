package data

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/warband/internal/ai"
	"github.com/udisondev/warband/internal/model"
	"github.com/udisondev/warband/internal/world"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrDuplicateID         = errors.New("duplicate catalog id")
	ErrUnknownPrerequisite = errors.New("unknown prerequisite talent")
	ErrPrerequisiteCycle   = errors.New("talent prerequisites form a cycle")
	ErrTalentRank          = errors.New("talent max rank must be at least 1")
	ErrMasteryClass        = errors.New("weapon mastery talent needs an affected class")
)

// File is the on-disk catalog format (YAML or JSON).
type File struct {
	Weapons []WeaponDef          `yaml:"weapons" json:"weapons" jsonschema:"description=Weapon definitions"`
	Talents []TalentDef          `yaml:"talents" json:"talents" jsonschema:"description=Talent tree nodes"`
	Enemies []ai.Template        `yaml:"enemies" json:"enemies,omitempty" jsonschema:"description=Enemy templates"`
	Nodes   []world.NodeTemplate `yaml:"nodes" json:"nodes,omitempty" jsonschema:"description=Resource node templates"`
}

// WeaponDef describes one weapon in the catalog file.
type WeaponDef struct {
	ID             string  `yaml:"id" json:"id" jsonschema:"required"`
	Name           string  `yaml:"name" json:"name" jsonschema:"required"`
	Type           string  `yaml:"type" json:"type" jsonschema:"required,enum=two_handed,enum=one_handed,enum=shield"`
	Class          string  `yaml:"class" json:"class" jsonschema:"required,enum=dagger,enum=axe,enum=mace,enum=sword,enum=shield"`
	MinDamage      float64 `yaml:"min_damage" json:"min_damage"`
	MaxDamage      float64 `yaml:"max_damage" json:"max_damage"`
	AttackCooldown float64 `yaml:"attack_cooldown" json:"attack_cooldown" jsonschema:"required,description=Seconds between swings"`
	BonusStrength  float64 `yaml:"bonus_strength" json:"bonus_strength,omitempty"`
	BonusVitality  float64 `yaml:"bonus_vitality" json:"bonus_vitality,omitempty"`
}

// TalentDef describes one talent in the catalog file.
type TalentDef struct {
	ID            string  `yaml:"id" json:"id" jsonschema:"required"`
	Name          string  `yaml:"name" json:"name" jsonschema:"required"`
	Description   string  `yaml:"description" json:"description,omitempty"`
	MaxRank       int     `yaml:"max_rank" json:"max_rank" jsonschema:"required,minimum=1"`
	RequiredLevel int     `yaml:"required_level" json:"required_level,omitempty"`
	Prerequisite  string  `yaml:"prerequisite" json:"prerequisite,omitempty" jsonschema:"description=ID of the talent that must be learned first"`
	Effect        string  `yaml:"effect" json:"effect" jsonschema:"required"`
	EffectValue   float64 `yaml:"effect_value" json:"effect_value"`
	AffectedClass string  `yaml:"affected_class" json:"affected_class,omitempty"`
}

// Catalog — проверенный набор игрового контента: оружие, таланты, враги и
// ресурсные узлы. Неизменяем после загрузки, безопасен для чтения из
// нескольких горутин.
type Catalog struct {
	weapons map[string]*model.Weapon
	talents map[string]*model.Talent
	enemies map[string]*ai.Template
	nodes   map[string]*world.NodeTemplate

	// order preserves file order for listings.
	weaponOrder []string
	talentOrder []string
}

// Default parses the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML (JSON is valid YAML) and builds a validated catalog.
func Parse(raw []byte) (*Catalog, error) {
	f, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// Decode decodes a catalog file without validating it.
func Decode(raw []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parsing catalog: %w", err)
	}
	return f, nil
}

// DefaultFile decodes the catalog compiled into the binary.
func DefaultFile() (File, error) {
	return Decode(defaultCatalog)
}

// Build converts and validates a decoded catalog file.
//
// Checks:
//   - unique ids per section
//   - weapon min ≤ max damage and cooldown > 0
//   - talent maxRank ≥ 1, known effect, mastery class present
//   - prerequisites reference known talents and form a forest
//   - enemy and node template invariants
func Build(f File) (*Catalog, error) {
	c := &Catalog{
		weapons: make(map[string]*model.Weapon, len(f.Weapons)),
		talents: make(map[string]*model.Talent, len(f.Talents)),
		enemies: make(map[string]*ai.Template, len(f.Enemies)),
		nodes:   make(map[string]*world.NodeTemplate, len(f.Nodes)),
	}

	for _, def := range f.Weapons {
		w, err := def.toWeapon()
		if err != nil {
			return nil, err
		}
		if _, dup := c.weapons[w.ID]; dup {
			return nil, fmt.Errorf("weapon %q: %w", w.ID, ErrDuplicateID)
		}
		c.weapons[w.ID] = w
		c.weaponOrder = append(c.weaponOrder, w.ID)
	}

	if err := c.buildTalents(f.Talents); err != nil {
		return nil, err
	}

	for i := range f.Enemies {
		tmpl := &f.Enemies[i]
		if err := tmpl.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.enemies[tmpl.ID]; dup {
			return nil, fmt.Errorf("enemy %q: %w", tmpl.ID, ErrDuplicateID)
		}
		c.enemies[tmpl.ID] = tmpl
	}

	for i := range f.Nodes {
		tmpl := &f.Nodes[i]
		if err := tmpl.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.nodes[tmpl.ID]; dup {
			return nil, fmt.Errorf("node %q: %w", tmpl.ID, ErrDuplicateID)
		}
		c.nodes[tmpl.ID] = tmpl
	}

	slog.Debug("catalog loaded",
		"weapons", len(c.weapons),
		"talents", len(c.talents),
		"enemies", len(c.enemies),
		"nodes", len(c.nodes))
	return c, nil
}

func (def WeaponDef) toWeapon() (*model.Weapon, error) {
	wt, err := model.ParseWeaponType(def.Type)
	if err != nil {
		return nil, fmt.Errorf("weapon %q: %w", def.ID, err)
	}
	wc, err := model.ParseWeaponClass(def.Class)
	if err != nil {
		return nil, fmt.Errorf("weapon %q: %w", def.ID, err)
	}

	w := &model.Weapon{
		ID:             def.ID,
		Name:           def.Name,
		Type:           wt,
		Class:          wc,
		MinDamage:      def.MinDamage,
		MaxDamage:      def.MaxDamage,
		AttackCooldown: def.AttackCooldown,
		BonusStrength:  def.BonusStrength,
		BonusVitality:  def.BonusVitality,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// buildTalents converts talents in two passes: nodes first, then
// prerequisite links, then a cycle check over the links.
func (c *Catalog) buildTalents(defs []TalentDef) error {
	for _, def := range defs {
		if _, dup := c.talents[def.ID]; dup {
			return fmt.Errorf("talent %q: %w", def.ID, ErrDuplicateID)
		}
		if def.MaxRank < 1 {
			return fmt.Errorf("talent %q: %w", def.ID, ErrTalentRank)
		}
		effect, err := model.ParseTalentEffect(def.Effect)
		if err != nil {
			return fmt.Errorf("talent %q: %w", def.ID, err)
		}
		class, err := model.ParseWeaponClass(def.AffectedClass)
		if err != nil {
			return fmt.Errorf("talent %q: %w", def.ID, err)
		}

		tal := &model.Talent{
			ID:            def.ID,
			Name:          def.Name,
			Description:   def.Description,
			MaxRank:       def.MaxRank,
			RequiredLevel: def.RequiredLevel,
			Effect:        effect,
			EffectValue:   def.EffectValue,
			AffectedClass: class,
		}
		if tal.IsMastery() && class == model.ClassNone {
			return fmt.Errorf("talent %q: %w", def.ID, ErrMasteryClass)
		}
		c.talents[def.ID] = tal
		c.talentOrder = append(c.talentOrder, def.ID)
	}

	for _, def := range defs {
		if def.Prerequisite == "" {
			continue
		}
		pre, ok := c.talents[def.Prerequisite]
		if !ok {
			return fmt.Errorf("talent %q requires %q: %w", def.ID, def.Prerequisite, ErrUnknownPrerequisite)
		}
		c.talents[def.ID].Prerequisite = pre
	}

	for _, id := range c.talentOrder {
		seen := make(map[string]struct{})
		for t := c.talents[id]; t != nil; t = t.Prerequisite {
			if _, loop := seen[t.ID]; loop {
				return fmt.Errorf("talent %q: %w", id, ErrPrerequisiteCycle)
			}
			seen[t.ID] = struct{}{}
		}
	}
	return nil
}

// Weapon returns the weapon with id.
func (c *Catalog) Weapon(id string) (*model.Weapon, bool) {
	w, ok := c.weapons[id]
	return w, ok
}

// Talent returns the talent with id.
func (c *Catalog) Talent(id string) (*model.Talent, bool) {
	t, ok := c.talents[id]
	return t, ok
}

// Enemy returns the enemy template with id.
func (c *Catalog) Enemy(id string) (*ai.Template, bool) {
	t, ok := c.enemies[id]
	return t, ok
}

// Node returns the resource node template with id.
func (c *Catalog) Node(id string) (*world.NodeTemplate, bool) {
	t, ok := c.nodes[id]
	return t, ok
}

// Weapons returns all weapons in file order.
func (c *Catalog) Weapons() []*model.Weapon {
	result := make([]*model.Weapon, 0, len(c.weaponOrder))
	for _, id := range c.weaponOrder {
		result = append(result, c.weapons[id])
	}
	return result
}

// Talents returns all talents in file order.
func (c *Catalog) Talents() []*model.Talent {
	result := make([]*model.Talent, 0, len(c.talentOrder))
	for _, id := range c.talentOrder {
		result = append(result, c.talents[id])
	}
	return result
}

// Counts returns the number of entries per section.
func (c *Catalog) Counts() (weapons, talents, enemies, nodes int) {
	return len(c.weapons), len(c.talents), len(c.enemies), len(c.nodes)
}
