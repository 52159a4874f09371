package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewhub/internal/domain"
)

type ProfileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, verified FROM users WHERE id=$1
	`, userID).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Verified)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkPhoneVerified merge-writes the verification flag and phone onto
// the profile row. Account management owns the rest of the row, so
// only these columns are touched; a missing row is created.
func (r *ProfileRepo) MarkPhoneVerified(ctx context.Context, userID, phone string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, phone, verified, updated_at)
		VALUES ($1,$2,TRUE,NOW())
		ON CONFLICT (id) DO UPDATE SET
			phone=EXCLUDED.phone,
			verified=TRUE,
			updated_at=NOW()
	`, userID, phone)
	return err
}
