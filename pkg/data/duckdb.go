package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS wallpapers (
	id           VARCHAR PRIMARY KEY,
	name         VARCHAR NOT NULL,
	identifier   INTEGER NOT NULL,
	width        INTEGER NOT NULL,
	height       INTEGER NOT NULL,
	scale_factor INTEGER NOT NULL,
	frame_count  INTEGER NOT NULL,
	duration     DOUBLE NOT NULL,
	output_path  VARCHAR NOT NULL,
	created_at   TIMESTAMP NOT NULL
)`

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Repository is the library of previously built wallpapers.
type Repository struct {
	db *sql.DB
}

// NewRepository opens (or creates) the library database under the user's home
// directory.
func NewRepository() (*Repository, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(homeDir, ".tendies")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	db, err := InitDuckDB(filepath.Join(dir, "library.db"))
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) SaveWallpaper(w *Wallpaper) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO wallpapers
		(id, name, identifier, width, height, scale_factor, frame_count, duration, output_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Identifier, w.Width, w.Height, w.ScaleFactor,
		w.FrameCount, w.Duration, w.OutputPath, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save wallpaper: %w", err)
	}
	return nil
}

func (r *Repository) GetWallpaper(id string) (*Wallpaper, error) {
	row := r.db.QueryRow(`
		SELECT id, name, identifier, width, height, scale_factor, frame_count, duration, output_path, created_at
		FROM wallpapers WHERE id = ?`, id)

	var w Wallpaper
	err := row.Scan(&w.ID, &w.Name, &w.Identifier, &w.Width, &w.Height,
		&w.ScaleFactor, &w.FrameCount, &w.Duration, &w.OutputPath, &w.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallpaper: %w", err)
	}
	return &w, nil
}

func (r *Repository) ListWallpapers() ([]*Wallpaper, error) {
	rows, err := r.db.Query(`
		SELECT id, name, identifier, width, height, scale_factor, frame_count, duration, output_path, created_at
		FROM wallpapers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallpapers: %w", err)
	}
	defer rows.Close()

	var wallpapers []*Wallpaper
	for rows.Next() {
		var w Wallpaper
		err := rows.Scan(&w.ID, &w.Name, &w.Identifier, &w.Width, &w.Height,
			&w.ScaleFactor, &w.FrameCount, &w.Duration, &w.OutputPath, &w.CreatedAt)
		if err != nil {
			return nil, err
		}
		wallpapers = append(wallpapers, &w)
	}
	return wallpapers, rows.Err()
}

func (r *Repository) DeleteWallpaper(id string) error {
	_, err := r.db.Exec(`DELETE FROM wallpapers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wallpaper: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
