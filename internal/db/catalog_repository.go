package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/warband/internal/ai"
	"github.com/udisondev/warband/internal/data"
	"github.com/udisondev/warband/internal/world"
)

// CatalogRepository хранит каталог контента (оружие, таланты, враги, узлы)
// в PostgreSQL. Порядок записей сохраняется через колонку position.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a catalog repository over pool.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Load builds a validated catalog from the stored rows.
func (r *CatalogRepository) Load(ctx context.Context) (*data.Catalog, error) {
	f, err := r.LoadFile(ctx)
	if err != nil {
		return nil, err
	}
	c, err := data.Build(f)
	if err != nil {
		return nil, fmt.Errorf("building catalog from database: %w", err)
	}
	return c, nil
}

// LoadFile reads every catalog table into the file representation.
func (r *CatalogRepository) LoadFile(ctx context.Context) (data.File, error) {
	var (
		f   data.File
		err error
	)
	if f.Weapons, err = r.loadWeapons(ctx); err != nil {
		return data.File{}, err
	}
	if f.Talents, err = r.loadTalents(ctx); err != nil {
		return data.File{}, err
	}
	if f.Enemies, err = r.loadEnemies(ctx); err != nil {
		return data.File{}, err
	}
	if f.Nodes, err = r.loadNodes(ctx); err != nil {
		return data.File{}, err
	}
	return f, nil
}

func (r *CatalogRepository) loadWeapons(ctx context.Context) ([]data.WeaponDef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, weapon_type, weapon_class, min_damage, max_damage,
		       attack_cooldown, bonus_strength, bonus_vitality
		FROM weapons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying weapons: %w", err)
	}
	defer rows.Close()

	var result []data.WeaponDef
	for rows.Next() {
		var w data.WeaponDef
		if err := rows.Scan(&w.ID, &w.Name, &w.Type, &w.Class, &w.MinDamage, &w.MaxDamage,
			&w.AttackCooldown, &w.BonusStrength, &w.BonusVitality); err != nil {
			return nil, fmt.Errorf("scanning weapon row: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weapon rows: %w", err)
	}
	return result, nil
}

func (r *CatalogRepository) loadTalents(ctx context.Context) ([]data.TalentDef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, max_rank, required_level, prerequisite,
		       effect, effect_value, affected_class
		FROM talents ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying talents: %w", err)
	}
	defer rows.Close()

	var result []data.TalentDef
	for rows.Next() {
		var (
			t   data.TalentDef
			pre *string
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.MaxRank, &t.RequiredLevel, &pre,
			&t.Effect, &t.EffectValue, &t.AffectedClass); err != nil {
			return nil, fmt.Errorf("scanning talent row: %w", err)
		}
		if pre != nil {
			t.Prerequisite = *pre
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating talent rows: %w", err)
	}
	return result, nil
}

func (r *CatalogRepository) loadEnemies(ctx context.Context) ([]ai.Template, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, max_health, move_speed, contact_damage, contact_range,
		       detection_range, invulnerability_ms, hostile, dialogue
		FROM enemies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying enemies: %w", err)
	}
	defer rows.Close()

	var result []ai.Template
	for rows.Next() {
		var (
			t        ai.Template
			invulnMs int64
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.MaxHealth, &t.MoveSpeed, &t.ContactDamage, &t.ContactRange,
			&t.DetectionRange, &invulnMs, &t.Hostile, &t.Dialogue); err != nil {
			return nil, fmt.Errorf("scanning enemy row: %w", err)
		}
		t.Invulnerability = time.Duration(invulnMs) * time.Millisecond
		if len(t.Dialogue) == 0 {
			t.Dialogue = nil
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating enemy rows: %w", err)
	}
	return result, nil
}

func (r *CatalogRepository) loadNodes(ctx context.Context) ([]world.NodeTemplate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, max_hits, min_yield, max_yield
		FROM resource_nodes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying resource nodes: %w", err)
	}
	defer rows.Close()

	var result []world.NodeTemplate
	for rows.Next() {
		var n world.NodeTemplate
		if err := rows.Scan(&n.ID, &n.Name, &n.MaxHits, &n.MinYield, &n.MaxYield); err != nil {
			return nil, fmt.Errorf("scanning resource node row: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resource node rows: %w", err)
	}
	return result, nil
}

// Save replaces the stored catalog with f in one transaction.
// f is validated with data.Build first; an invalid catalog is never written.
func (r *CatalogRepository) Save(ctx context.Context, f data.File) error {
	if _, err := data.Build(f); err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after commit is expected to fail.
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `TRUNCATE weapons, talents, enemies, resource_nodes`); err != nil {
		return fmt.Errorf("clearing catalog tables: %w", err)
	}

	batch := &pgx.Batch{}
	for i, w := range f.Weapons {
		batch.Queue(`
			INSERT INTO weapons (id, position, name, weapon_type, weapon_class, min_damage, max_damage,
			                     attack_cooldown, bonus_strength, bonus_vitality)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			w.ID, i, w.Name, w.Type, w.Class, w.MinDamage, w.MaxDamage,
			w.AttackCooldown, w.BonusStrength, w.BonusVitality)
	}
	for i, t := range f.Talents {
		batch.Queue(`
			INSERT INTO talents (id, position, name, description, max_rank, required_level, prerequisite,
			                     effect, effect_value, affected_class)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			t.ID, i, t.Name, t.Description, t.MaxRank, t.RequiredLevel, nullIfEmpty(t.Prerequisite),
			t.Effect, t.EffectValue, t.AffectedClass)
	}
	for i, e := range f.Enemies {
		dialogue := e.Dialogue
		if dialogue == nil {
			dialogue = []string{}
		}
		batch.Queue(`
			INSERT INTO enemies (id, position, name, max_health, move_speed, contact_damage, contact_range,
			                     detection_range, invulnerability_ms, hostile, dialogue)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			e.ID, i, e.Name, e.MaxHealth, e.MoveSpeed, e.ContactDamage, e.ContactRange,
			e.DetectionRange, e.Invulnerability.Milliseconds(), e.Hostile, dialogue)
	}
	for i, n := range f.Nodes {
		batch.Queue(`
			INSERT INTO resource_nodes (id, position, name, max_hits, min_yield, max_yield)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			n.ID, i, n.Name, n.MaxHits, n.MinYield, n.MaxYield)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting catalog rows: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing catalog save: %w", err)
	}

	slog.Info("catalog saved",
		"weapons", len(f.Weapons),
		"talents", len(f.Talents),
		"enemies", len(f.Enemies),
		"nodes", len(f.Nodes))
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
