package store

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/lox/cosmicweather/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store := New(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

var testWeather = []models.Weather{
	{ID: 1, Condition: "Sunny", Temperature: 25, Emoji: "☀️", Mood: "energetic"},
	{ID: 2, Condition: "Rainy", Temperature: 15, Emoji: "🌧️", Mood: "cozy"},
	{ID: 3, Condition: "Snowy", Temperature: -2, Emoji: "❄️", Mood: "serene"},
}

func TestMigrate_Idempotent(t *testing.T) {
	store := setupTestStore(t)

	if err := store.Migrate(); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	version, err := store.MigrationVersion()
	if err != nil {
		t.Fatalf("MigrationVersion: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("version = %d, want %d", version, len(migrations))
	}
}

func TestEmptyStore(t *testing.T) {
	store := setupTestStore(t)

	w, err := store.GetRandomWeather()
	if err != nil {
		t.Fatalf("GetRandomWeather: %v", err)
	}
	if w != nil {
		t.Errorf("GetRandomWeather on empty store = %+v, want nil", w)
	}

	w, err = store.GetWeatherByID(1)
	if err != nil {
		t.Fatalf("GetWeatherByID: %v", err)
	}
	if w != nil {
		t.Errorf("GetWeatherByID on empty store = %+v, want nil", w)
	}

	n, err := store.CountWeather()
	if err != nil {
		t.Fatalf("CountWeather: %v", err)
	}
	if n != 0 {
		t.Errorf("CountWeather = %d, want 0", n)
	}
}

func TestUpsertAndGetWeather(t *testing.T) {
	store := setupTestStore(t)

	if err := store.UpsertWeather(testWeather...); err != nil {
		t.Fatalf("UpsertWeather: %v", err)
	}

	w, err := store.GetWeatherByID(3)
	if err != nil {
		t.Fatalf("GetWeatherByID: %v", err)
	}
	if w == nil {
		t.Fatal("GetWeatherByID returned nil")
	}
	if *w != testWeather[2] {
		t.Errorf("GetWeatherByID(3) = %+v, want %+v", *w, testWeather[2])
	}

	all, err := store.ListWeather()
	if err != nil {
		t.Fatalf("ListWeather: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	for i, w := range all {
		if w.ID != i+1 {
			t.Errorf("all[%d].ID = %d, want %d", i, w.ID, i+1)
		}
	}
}

func TestUpsertWeather_Update(t *testing.T) {
	store := setupTestStore(t)

	if err := store.UpsertWeather(testWeather[0]); err != nil {
		t.Fatalf("UpsertWeather: %v", err)
	}
	updated := testWeather[0]
	updated.Temperature = 31
	updated.Mood = "passionate"
	if err := store.UpsertWeather(updated); err != nil {
		t.Fatalf("UpsertWeather update: %v", err)
	}

	w, err := store.GetWeatherByID(1)
	if err != nil {
		t.Fatalf("GetWeatherByID: %v", err)
	}
	if w.Temperature != 31 || w.Mood != "passionate" {
		t.Errorf("updated weather = %+v", *w)
	}
	n, _ := store.CountWeather()
	if n != 1 {
		t.Errorf("CountWeather = %d, want 1", n)
	}
}

func TestGetRandomWeather(t *testing.T) {
	store := setupTestStore(t)
	if err := store.UpsertWeather(testWeather...); err != nil {
		t.Fatalf("UpsertWeather: %v", err)
	}

	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		w, err := store.GetRandomWeather()
		if err != nil {
			t.Fatalf("GetRandomWeather: %v", err)
		}
		if w == nil {
			t.Fatal("GetRandomWeather returned nil")
		}
		if w.ID < 1 || w.ID > 3 {
			t.Fatalf("unexpected id %d", w.ID)
		}
		seen[w.ID] = true
	}
	if len(seen) < 2 {
		t.Errorf("50 random draws only returned ids %v", seen)
	}
}

func TestEnsureSeeded(t *testing.T) {
	store := setupTestStore(t)

	seeded, err := store.EnsureSeeded(testWeather)
	if err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}
	if !seeded {
		t.Error("EnsureSeeded on empty store should seed")
	}

	seeded, err = store.EnsureSeeded(testWeather[:1])
	if err != nil {
		t.Fatalf("EnsureSeeded again: %v", err)
	}
	if seeded {
		t.Error("EnsureSeeded on populated store should be a no-op")
	}
	n, _ := store.CountWeather()
	if n != 3 {
		t.Errorf("CountWeather = %d, want 3", n)
	}
}

func TestDeleteAllWeather(t *testing.T) {
	store := setupTestStore(t)
	if err := store.UpsertWeather(testWeather...); err != nil {
		t.Fatalf("UpsertWeather: %v", err)
	}
	if err := store.DeleteAllWeather(); err != nil {
		t.Fatalf("DeleteAllWeather: %v", err)
	}
	n, _ := store.CountWeather()
	if n != 0 {
		t.Errorf("CountWeather = %d, want 0", n)
	}
}
