package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errEmptyLogin = errors.New("empty login")

// GetOrCreateUser returns the id for a tailnet login, creating the row on
// first sight. last_seen is bumped on every call; a blank display name keeps
// the stored one.
func (db *DB) GetOrCreateUser(ctx context.Context, login, displayName string) (int, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return 0, errEmptyLogin
	}

	var id int
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (login, display_name)
		VALUES ($1, $2)
		ON CONFLICT (login) DO UPDATE
			SET last_seen = NOW(), display_name = COALESCE(NULLIF($2, ''), users.display_name)
		RETURNING id
	`, login, strings.TrimSpace(displayName)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting user %s: %w", login, err)
	}
	return id, nil
}
