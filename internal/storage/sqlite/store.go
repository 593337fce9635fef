// Package sqlite provides the SQLite-backed character catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/mythic.nexus/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/mythic.nexus/internal/showcase/catalog"
	"github.com/louisbranch/mythic.nexus/internal/storage"
	"github.com/louisbranch/mythic.nexus/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const dsnParams = "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Store persists the character catalog in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite catalog store at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	sqlDB, err := sql.Open("sqlite", filepath.Clean(path)+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceCatalog validates characters and swaps the stored roster for them.
func (s *Store) ReplaceCatalog(ctx context.Context, characters []catalog.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := catalog.New(characters); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace catalog: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{
		"character_fan_art_seed",
		"character_guide_steps",
		"character_guides",
		"character_strengths",
		"character_abilities",
		"characters",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	for position, character := range characters {
		if err := insertCharacter(ctx, tx, position, character); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("character %q: %w", character.ID, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("insert character %q: %w", character.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace catalog: %w", err)
	}
	return nil
}

func insertCharacter(ctx context.Context, tx *sql.Tx, position int, c catalog.Character) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO characters (id, position, name, tagline, background, image_url, role, difficulty, faction)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, position, c.Name, c.Tagline, c.Background, c.ImageURL, c.Role, c.Difficulty, c.Faction,
	); err != nil {
		return err
	}
	for i, ability := range c.Abilities {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO character_abilities (character_id, position, type, name, description) VALUES (?, ?, ?, ?, ?)`,
			c.ID, i, ability.Type, ability.Name, ability.Description,
		); err != nil {
			return err
		}
	}
	for i, strength := range c.Strengths {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO character_strengths (character_id, position, text) VALUES (?, ?, ?)`,
			c.ID, i, strength,
		); err != nil {
			return err
		}
	}
	for i, guide := range c.Guides {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO character_guides (character_id, position, title, summary) VALUES (?, ?, ?, ?)`,
			c.ID, i, guide.Title, guide.Summary,
		); err != nil {
			return err
		}
		for j, step := range guide.Steps {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO character_guide_steps (character_id, guide_position, position, text) VALUES (?, ?, ?, ?)`,
				c.ID, i, j, step,
			); err != nil {
				return err
			}
		}
	}
	for i, art := range c.FanArt {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO character_fan_art_seed (character_id, position, id, artist, image_url, caption) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, i, art.ID, art.Artist, art.ImageURL, art.Caption,
		); err != nil {
			return err
		}
	}
	return nil
}

// LoadCatalog returns every stored character in roster order.
func (s *Store) LoadCatalog(ctx context.Context) ([]catalog.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return s.load(ctx, "")
}

// GetCharacter returns one stored character.
func (s *Store) GetCharacter(ctx context.Context, id string) (catalog.Character, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Character{}, err
	}
	if s == nil || s.sqlDB == nil {
		return catalog.Character{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Character{}, fmt.Errorf("character id is required")
	}
	characters, err := s.load(ctx, id)
	if err != nil {
		return catalog.Character{}, err
	}
	if len(characters) == 0 {
		return catalog.Character{}, storage.ErrNotFound
	}
	return characters[0], nil
}

// load reads characters with their child rows, restricted to one id when only
// is set.
func (s *Store) load(ctx context.Context, only string) ([]catalog.Character, error) {
	where, args := "", []any{}
	if only != "" {
		where, args = " WHERE id = ?", []any{only}
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, tagline, background, image_url, role, difficulty, faction
		 FROM characters`+where+` ORDER BY position`, args...)
	if err != nil {
		return nil, fmt.Errorf("query characters: %w", err)
	}
	var characters []catalog.Character
	index := map[string]int{}
	for rows.Next() {
		var c catalog.Character
		if err := rows.Scan(&c.ID, &c.Name, &c.Tagline, &c.Background, &c.ImageURL, &c.Role, &c.Difficulty, &c.Faction); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan character: %w", err)
		}
		index[c.ID] = len(characters)
		characters = append(characters, c)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	if len(characters) == 0 {
		return []catalog.Character{}, nil
	}

	childWhere := ""
	if only != "" {
		childWhere = " WHERE character_id = ?"
	}

	if err := s.each(ctx, `SELECT character_id, type, name, description FROM character_abilities`+childWhere+` ORDER BY character_id, position`, args,
		func(rows *sql.Rows) error {
			var characterID string
			var a catalog.Ability
			if err := rows.Scan(&characterID, &a.Type, &a.Name, &a.Description); err != nil {
				return err
			}
			c := &characters[index[characterID]]
			c.Abilities = append(c.Abilities, a)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load abilities: %w", err)
	}

	if err := s.each(ctx, `SELECT character_id, text FROM character_strengths`+childWhere+` ORDER BY character_id, position`, args,
		func(rows *sql.Rows) error {
			var characterID, text string
			if err := rows.Scan(&characterID, &text); err != nil {
				return err
			}
			c := &characters[index[characterID]]
			c.Strengths = append(c.Strengths, text)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load strengths: %w", err)
	}

	if err := s.each(ctx, `SELECT character_id, title, summary FROM character_guides`+childWhere+` ORDER BY character_id, position`, args,
		func(rows *sql.Rows) error {
			var characterID string
			var g catalog.GuideEntry
			if err := rows.Scan(&characterID, &g.Title, &g.Summary); err != nil {
				return err
			}
			c := &characters[index[characterID]]
			c.Guides = append(c.Guides, g)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load guides: %w", err)
	}

	if err := s.each(ctx, `SELECT character_id, guide_position, text FROM character_guide_steps`+childWhere+` ORDER BY character_id, guide_position, position`, args,
		func(rows *sql.Rows) error {
			var characterID, text string
			var guidePosition int
			if err := rows.Scan(&characterID, &guidePosition, &text); err != nil {
				return err
			}
			c := &characters[index[characterID]]
			if guidePosition < 0 || guidePosition >= len(c.Guides) {
				return fmt.Errorf("character %q: step for missing guide %d", characterID, guidePosition)
			}
			c.Guides[guidePosition].Steps = append(c.Guides[guidePosition].Steps, text)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load guide steps: %w", err)
	}

	if err := s.each(ctx, `SELECT character_id, id, artist, image_url, caption FROM character_fan_art_seed`+childWhere+` ORDER BY character_id, position`, args,
		func(rows *sql.Rows) error {
			var characterID string
			var art catalog.FanArt
			if err := rows.Scan(&characterID, &art.ID, &art.Artist, &art.ImageURL, &art.Caption); err != nil {
				return err
			}
			c := &characters[index[characterID]]
			c.FanArt = append(c.FanArt, art)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("load fan art: %w", err)
	}

	return characters, nil
}

func (s *Store) each(ctx context.Context, query string, args []any, scan func(*sql.Rows) error) error {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	for rows.Next() {
		if err := scan(rows); err != nil {
			_ = rows.Close()
			return err
		}
	}
	return closeRows(rows)
}

func closeRows(rows *sql.Rows) error {
	err := rows.Err()
	if closeErr := rows.Close(); err == nil {
		err = closeErr
	}
	return err
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.CatalogStore = (*Store)(nil)
