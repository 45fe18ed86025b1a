package store

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lox/cosmicweather/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (or creates) the sqlite database at path and applies the
// connection pragmas the store expects.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return db, nil
}

const weatherColumns = `id, condition, temperature, emoji, mood`

// UpsertWeather inserts the given scenarios, replacing any existing rows with
// the same id.
func (s *Store) UpsertWeather(ws ...models.Weather) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO weather_conditions (id, condition, temperature, emoji, mood)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			condition = excluded.condition,
			temperature = excluded.temperature,
			emoji = excluded.emoji,
			mood = excluded.mood
	`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, w := range ws {
		if _, err := stmt.Exec(w.ID, w.Condition, w.Temperature, w.Emoji, w.Mood); err != nil {
			return fmt.Errorf("upsert weather %d: %w", w.ID, err)
		}
	}
	return tx.Commit()
}

// EnsureSeeded inserts defaults when the table is empty. It reports whether
// any rows were written.
func (s *Store) EnsureSeeded(defaults []models.Weather) (bool, error) {
	n, err := s.CountWeather()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.UpsertWeather(defaults...); err != nil {
		return false, fmt.Errorf("seed weather: %w", err)
	}
	log.Printf("store: seeded %d weather scenarios", len(defaults))
	return true, nil
}

func (s *Store) CountWeather() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM weather_conditions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count weather: %w", err)
	}
	return n, nil
}

// GetRandomWeather returns a random scenario, or nil if the table is empty.
func (s *Store) GetRandomWeather() (*models.Weather, error) {
	row := s.db.QueryRow(`SELECT ` + weatherColumns + ` FROM weather_conditions ORDER BY RANDOM() LIMIT 1`)
	return scanWeather(row)
}

// GetWeatherByID returns the scenario with the given id, or nil if missing.
func (s *Store) GetWeatherByID(id int) (*models.Weather, error) {
	row := s.db.QueryRow(`SELECT `+weatherColumns+` FROM weather_conditions WHERE id = ? LIMIT 1`, id)
	return scanWeather(row)
}

func (s *Store) ListWeather() ([]models.Weather, error) {
	rows, err := s.db.Query(`SELECT ` + weatherColumns + ` FROM weather_conditions ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ws []models.Weather
	for rows.Next() {
		var w models.Weather
		if err := rows.Scan(&w.ID, &w.Condition, &w.Temperature, &w.Emoji, &w.Mood); err != nil {
			return nil, err
		}
		ws = append(ws, w)
	}
	return ws, rows.Err()
}

func (s *Store) DeleteAllWeather() error {
	_, err := s.db.Exec(`DELETE FROM weather_conditions`)
	return err
}

func scanWeather(row *sql.Row) (*models.Weather, error) {
	var w models.Weather
	err := row.Scan(&w.ID, &w.Condition, &w.Temperature, &w.Emoji, &w.Mood)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}
