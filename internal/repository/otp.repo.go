package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewhub/internal/domain"
)

type OTPRepo struct {
	db *pgxpool.Pool
}

func NewOTPRepo(db *pgxpool.Pool) *OTPRepo {
	return &OTPRepo{db: db}
}

// GetChallenge returns the live challenge row for a phone number, or
// nil when none exists.
func (r *OTPRepo) GetChallenge(ctx context.Context, phone string) (*domain.OtpChallenge, error) {
	var ch domain.OtpChallenge
	err := r.db.QueryRow(ctx, `
		SELECT phone, code, owner_id, attempts, created_at, expires_at
		FROM otp_challenges
		WHERE phone=$1
	`, phone).Scan(&ch.Phone, &ch.Code, &ch.OwnerID, &ch.Attempts, &ch.CreatedAt, &ch.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *OTPRepo) GetRateLimit(ctx context.Context, userID string) (*domain.RateLimitRecord, error) {
	var rec domain.RateLimitRecord
	err := r.db.QueryRow(ctx, `
		SELECT user_id, count, reset_at FROM otp_rate_limits WHERE user_id=$1
	`, userID).Scan(&rec.UserID, &rec.Count, &rec.ResetAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CommitSend stores a freshly dispatched challenge together with the
// consumed quota in one transaction. Either both rows land or neither
// does; a challenge without a counted send (or the reverse) must never
// be observable.
func (r *OTPRepo) CommitSend(ctx context.Context, ch *domain.OtpChallenge, rate *domain.RateLimitRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO otp_challenges (phone, code, owner_id, attempts, created_at, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (phone) DO UPDATE SET
			code=EXCLUDED.code,
			owner_id=EXCLUDED.owner_id,
			attempts=EXCLUDED.attempts,
			created_at=EXCLUDED.created_at,
			expires_at=EXCLUDED.expires_at
	`, ch.Phone, ch.Code, ch.OwnerID, ch.Attempts, ch.CreatedAt, ch.ExpiresAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO otp_rate_limits (user_id, count, reset_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (user_id) DO UPDATE SET
			count=EXCLUDED.count,
			reset_at=EXCLUDED.reset_at
	`, rate.UserID, rate.Count, rate.ResetAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *OTPRepo) IncrementAttempts(ctx context.Context, phone string, attempts int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE otp_challenges SET attempts=$2 WHERE phone=$1
	`, phone, attempts)
	return err
}

func (r *OTPRepo) DeleteChallenge(ctx context.Context, phone string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM otp_challenges WHERE phone=$1`, phone)
	return err
}
