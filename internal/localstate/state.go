// Package localstate keeps the CLI's own session history in a SQLite file so
// a session can be compared to the one before it without a server.
package localstate

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// State is the CLI state database.
type State struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite state database at dir/state.db.
func Open(dir string) (*State, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "state.db"))
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS session_summaries (
		id              TEXT PRIMARY KEY,
		source_hash     TEXT NOT NULL UNIQUE,
		performed_at    TIMESTAMP NOT NULL,
		duration_sec    REAL NOT NULL,
		calories        REAL NOT NULL,
		volume_kg       REAL NOT NULL,
		total_exercises INTEGER NOT NULL,
		exercises_done  INTEGER NOT NULL,
		body_mass_kg    REAL NOT NULL,
		created_at      TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &State{db: db}, nil
}

// Previous returns the latest remembered session other than the one with
// excludeHash, or nil when there is none.
func (s *State) Previous(excludeHash string) (*sessionstats.Previous, error) {
	var p sessionstats.Previous
	err := s.db.QueryRow(
		`SELECT duration_sec, volume_kg FROM session_summaries
		 WHERE source_hash <> ?
		 ORDER BY performed_at DESC, created_at DESC
		 LIMIT 1`,
		excludeHash,
	).Scan(&p.DurationSec, &p.VolumeKg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying previous session: %w", err)
	}
	return &p, nil
}

// Remember stores a session result keyed by the hash of its source file.
// It reports false when that file was already remembered.
func (s *State) Remember(sourceHash string, performedAt time.Time, r sessionstats.Result) (bool, error) {
	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO session_summaries (id, source_hash, performed_at, duration_sec,
			calories, volume_kg, total_exercises, exercises_done, body_mass_kg)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), sourceHash, performedAt.UTC(), r.DurationSec,
		r.Calories, r.VolumeKg, r.TotalExercises, r.ExercisesDone, r.BodyMassKg,
	)
	if err != nil {
		return false, fmt.Errorf("remembering session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Recent returns up to limit remembered sessions, newest first.
func (s *State) Recent(limit int) ([]models.SessionSummaryRow, error) {
	rows, err := s.db.Query(
		`SELECT id, performed_at, duration_sec, calories, volume_kg,
			total_exercises, exercises_done, body_mass_kg, created_at
		 FROM session_summaries
		 ORDER BY performed_at DESC, created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []models.SessionSummaryRow
	for rows.Next() {
		var r models.SessionSummaryRow
		var id string
		if err := rows.Scan(&id, &r.PerformedAt, &r.DurationSec, &r.Calories, &r.VolumeKg,
			&r.TotalExercises, &r.ExercisesDone, &r.BodyMassKg, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing session id %q: %w", id, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the state database.
func (s *State) Close() error {
	return s.db.Close()
}

// HashFile computes the SHA-256 hash of a file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
