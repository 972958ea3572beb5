package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	// Create temp directory for test database
	tmpDir, err := os.MkdirTemp("", "tendies-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := InitDuckDB(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	repo := &Repository{db: db}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func testWallpaper(id string) *Wallpaper {
	return &Wallpaper{
		ID:          id,
		Name:        "Ocean",
		Identifier:  9136,
		Width:       1290,
		Height:      2796,
		ScaleFactor: 3,
		FrameCount:  24,
		Duration:    2.0,
		OutputPath:  "/tmp/Ocean.tendies",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestSaveAndGetWallpaper(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	w := testWallpaper("wp-1")
	if err := repo.SaveWallpaper(w); err != nil {
		t.Fatalf("Failed to save wallpaper: %v", err)
	}

	retrieved, err := repo.GetWallpaper("wp-1")
	if err != nil {
		t.Fatalf("Failed to get wallpaper: %v", err)
	}
	if retrieved == nil {
		t.Fatal("Expected wallpaper to be found")
	}

	if retrieved.Name != w.Name || retrieved.Identifier != w.Identifier {
		t.Errorf("Identity mismatch: %s/%d", retrieved.Name, retrieved.Identifier)
	}
	if retrieved.Width != 1290 || retrieved.Height != 2796 || retrieved.ScaleFactor != 3 {
		t.Errorf("Geometry mismatch: %dx%d@%dx", retrieved.Width, retrieved.Height, retrieved.ScaleFactor)
	}
	if retrieved.FrameCount != 24 || retrieved.Duration != 2.0 {
		t.Errorf("Animation mismatch: %d frames %.2fs", retrieved.FrameCount, retrieved.Duration)
	}
}

func TestGetWallpaperNotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	retrieved, err := repo.GetWallpaper("nope")
	if err != nil {
		t.Fatalf("GetWallpaper failed: %v", err)
	}
	if retrieved != nil {
		t.Error("Expected nil for unknown id")
	}
}

func TestListWallpapers(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, id := range []string{"wp-1", "wp-2"} {
		if err := repo.SaveWallpaper(testWallpaper(id)); err != nil {
			t.Fatalf("Failed to save %s: %v", id, err)
		}
	}

	wallpapers, err := repo.ListWallpapers()
	if err != nil {
		t.Fatalf("ListWallpapers failed: %v", err)
	}
	if len(wallpapers) != 2 {
		t.Errorf("Expected 2 wallpapers, got %d", len(wallpapers))
	}
}

func TestDeleteWallpaper(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	if err := repo.SaveWallpaper(testWallpaper("wp-1")); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := repo.DeleteWallpaper("wp-1"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	retrieved, err := repo.GetWallpaper("wp-1")
	if err != nil {
		t.Fatalf("GetWallpaper failed: %v", err)
	}
	if retrieved != nil {
		t.Error("Expected wallpaper to be gone")
	}
}
