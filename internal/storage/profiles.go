package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/splitfit/internal/models"
)

// GetProfile returns the user's training profile, or nil when none has been
// saved yet.
func (db *DB) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	var p models.Profile
	var excluded []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, first_name, split_template, supplements, amount, excluded, updated_at
		 FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.FirstName, &p.SplitTemplate, &p.Supplements, &p.Amount, &excluded, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying profile: %w", err)
	}
	if len(excluded) > 0 {
		if err := json.Unmarshal(excluded, &p.Excluded); err != nil {
			return nil, fmt.Errorf("unmarshaling exclusions: %w", err)
		}
	}
	return &p, nil
}

// UpsertProfile creates or replaces the user's profile. The exclusion bag is
// preserved as-is, stale labels included: the resolver ignores them at read
// time.
func (db *DB) UpsertProfile(ctx context.Context, p models.Profile) error {
	excluded, err := json.Marshal(p.Excluded)
	if err != nil {
		return fmt.Errorf("marshaling exclusions: %w", err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO profiles (user_id, first_name, split_template, supplements, amount, excluded, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = $2, split_template = $3, supplements = $4,
			amount = $5, excluded = $6, updated_at = NOW()
	`, p.UserID, p.FirstName, p.SplitTemplate, p.Supplements, p.Amount, excluded)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// SetExclusion flips one category in the profile's exclusion bag. A profile
// must exist; callers get ErrNoProfile otherwise.
func (db *DB) SetExclusion(ctx context.Context, userID int, category string, excluded bool) error {
	p, err := db.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNoProfile
	}
	if p.Excluded == nil {
		p.Excluded = make(map[string]bool)
	}
	p.Excluded[category] = excluded
	return db.UpsertProfile(ctx, *p)
}

// ErrNoProfile is returned when an operation needs a saved profile and the
// user has none.
var ErrNoProfile = errors.New("no profile saved")
