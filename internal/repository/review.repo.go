package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewhub/internal/domain"
)

type ReviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepo(db *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{db: db}
}

const reviewColumns = `
	id, entity_name, entity_type, rating, text, tags, images, meta,
	is_scam, keywords, status, toxicity_score, verified_badge,
	likes, comments, user_id, user_name, created_at`

func (r *ReviewRepo) Create(ctx context.Context, rev *domain.Review) error {
	meta, err := json.Marshal(rev.Meta)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO reviews (`+reviewColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`, rev.ID, rev.EntityName, rev.EntityType, rev.Rating, rev.Text,
		rev.Tags, rev.Images, meta, rev.IsScam, rev.Keywords, rev.Status,
		rev.ToxicityScore, rev.VerifiedBadge, rev.Likes, rev.Comments,
		rev.UserID, rev.UserName, rev.CreatedAt)
	return err
}

// List returns the newest visible reviews. filter is "All",
// "High Risk" (scam reports only) or an entity type.
func (r *ReviewRepo) List(ctx context.Context, filter string, limit int) ([]domain.Review, error) {
	q := `SELECT ` + reviewColumns + ` FROM reviews WHERE status <> 'hidden'`
	args := []any{}
	switch filter {
	case "", "All":
	case "High Risk":
		q += ` AND is_scam`
	default:
		q += ` AND entity_type=$1`
		args = append(args, filter)
	}
	q += ` ORDER BY created_at DESC LIMIT ` + itoa(limit)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (r *ReviewRepo) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reviewColumns+` FROM reviews
		WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// SearchKeyword matches the prefix-keyword index built at create time.
func (r *ReviewRepo) SearchKeyword(ctx context.Context, term string, limit int) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reviewColumns+` FROM reviews
		WHERE $1 = ANY(keywords) AND status <> 'hidden'
		ORDER BY created_at DESC
		LIMIT `+itoa(limit), term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// Vote moves the denormalized likes counter.
func (r *ReviewRepo) Vote(ctx context.Context, reviewID string, delta int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reviews SET likes = likes + $2 WHERE id=$1
	`, reviewID, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AddComment inserts the comment and bumps the review's denormalized
// comment counter in the same transaction.
func (r *ReviewRepo) AddComment(ctx context.Context, c *domain.Comment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO review_comments (id, review_id, user_id, user_name, text, likes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, c.ID, c.ReviewID, c.UserID, c.UserName, c.Text, c.Likes, c.CreatedAt)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE reviews SET comments = comments + 1 WHERE id=$1
	`, c.ReviewID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *ReviewRepo) ListComments(ctx context.Context, reviewID string) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, review_id, user_id, user_name, text, likes, created_at
		FROM review_comments
		WHERE review_id=$1
		ORDER BY created_at DESC
	`, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ReviewID, &c.UserID, &c.UserName, &c.Text, &c.Likes, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ReviewRepo) AddFlag(ctx context.Context, f *domain.Flag) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO review_flags (id, review_id, reason, status, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, f.ID, f.ReviewID, f.Reason, f.Status, f.CreatedAt)
	return err
}

func scanReviews(rows pgx.Rows) ([]domain.Review, error) {
	var out []domain.Review
	for rows.Next() {
		var rev domain.Review
		var meta []byte
		err := rows.Scan(&rev.ID, &rev.EntityName, &rev.EntityType, &rev.Rating,
			&rev.Text, &rev.Tags, &rev.Images, &meta, &rev.IsScam, &rev.Keywords,
			&rev.Status, &rev.ToxicityScore, &rev.VerifiedBadge, &rev.Likes,
			&rev.Comments, &rev.UserID, &rev.UserName, &rev.CreatedAt)
		if err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &rev.Meta); err != nil {
				return nil, err
			}
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

func itoa(n int) string {
	if n <= 0 {
		n = 50
	}
	return strconv.Itoa(n)
}
