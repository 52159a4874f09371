package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reviewhub/internal/domain"
	"reviewhub/pkg/xerrors"
)

// toxicityThreshold rejects a review outright; scores below it are
// stored for moderation.
const toxicityThreshold = 0.7

type ReviewStore interface {
	Create(ctx context.Context, rev *domain.Review) error
	List(ctx context.Context, filter string, limit int) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Review, error)
	SearchKeyword(ctx context.Context, term string, limit int) ([]domain.Review, error)
	Vote(ctx context.Context, reviewID string, delta int) error
	AddComment(ctx context.Context, c *domain.Comment) error
	ListComments(ctx context.Context, reviewID string) ([]domain.Comment, error)
	AddFlag(ctx context.Context, f *domain.Flag) error
}

type ProfileStore interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
}

type ToxicityScorer interface {
	ToxicityScore(ctx context.Context, text string) float64
}

type ReviewService struct {
	store    ReviewStore
	profiles ProfileStore
	scorer   ToxicityScorer
	log      *zap.Logger
	now      func() time.Time
}

func NewReviewService(store ReviewStore, profiles ProfileStore, scorer ToxicityScorer, log *zap.Logger) *ReviewService {
	return &ReviewService{
		store:    store,
		profiles: profiles,
		scorer:   scorer,
		log:      log,
		now:      time.Now,
	}
}

type CreateReviewInput struct {
	EntityName string            `json:"entityName"`
	EntityType string            `json:"entityType"`
	Rating     int               `json:"rating"`
	Text       string            `json:"text"`
	Tags       []string          `json:"tags"`
	Images     []string          `json:"images"`
	Meta       map[string]string `json:"meta"`
	IsScam     bool              `json:"isScam"`
}

func (s *ReviewService) Create(ctx context.Context, userID, userName string, in CreateReviewInput) (*domain.Review, error) {
	if userID == "" {
		return nil, xerrors.ErrUnauthorized
	}
	if in.EntityName == "" {
		in.EntityName = "Unknown"
	}
	if in.EntityType == "" {
		in.EntityType = "General"
	}

	var toxicity float64
	if len(in.Text) > 5 {
		toxicity = s.scorer.ToxicityScore(ctx, in.Text)
		if toxicity > toxicityThreshold {
			return nil, xerrors.ErrToxicContent
		}
	}

	verified := false
	if p, err := s.profiles.Get(ctx, userID); err == nil && p != nil {
		verified = p.Verified
		if userName == "" {
			userName = p.Name
		}
	}

	rev := &domain.Review{
		ID:            uuid.NewString(),
		EntityName:    in.EntityName,
		EntityType:    in.EntityType,
		Rating:        in.Rating,
		Text:          in.Text,
		Tags:          in.Tags,
		Images:        in.Images,
		Meta:          in.Meta,
		IsScam:        in.IsScam,
		Keywords:      Keywords(in.EntityName),
		Status:        domain.ReviewStatusActive,
		ToxicityScore: toxicity,
		VerifiedBadge: verified,
		UserID:        userID,
		UserName:      userName,
		CreatedAt:     s.now(),
	}
	if err := s.store.Create(ctx, rev); err != nil {
		return nil, fmt.Errorf("%w: create review: %v", xerrors.ErrInternalServer, err)
	}

	s.log.Info("review created",
		zap.String("review_id", rev.ID),
		zap.String("entity", rev.EntityName),
		zap.Float64("toxicity", toxicity),
	)
	return rev, nil
}

func (s *ReviewService) List(ctx context.Context, filter string) ([]domain.Review, error) {
	return s.store.List(ctx, filter, 50)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.store.ListByUser(ctx, userID)
}

// Search matches the prefix-keyword index; terms shorter than two
// characters never match anything.
func (s *ReviewService) Search(ctx context.Context, term string) ([]domain.Review, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if len(term) < 2 {
		return nil, nil
	}
	return s.store.SearchKeyword(ctx, term, 20)
}

func (s *ReviewService) Vote(ctx context.Context, reviewID, direction string) error {
	delta := 1
	if direction == "down" {
		delta = -1
	}
	if err := s.store.Vote(ctx, reviewID, delta); err != nil {
		return xerrors.ErrReviewMissing
	}
	return nil
}

func (s *ReviewService) AddComment(ctx context.Context, reviewID, userID, userName, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: comment text required", xerrors.ErrInvalidRequest)
	}
	c := &domain.Comment{
		ID:        uuid.NewString(),
		ReviewID:  reviewID,
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: s.now(),
	}
	if err := s.store.AddComment(ctx, c); err != nil {
		return nil, xerrors.ErrReviewMissing
	}
	return c, nil
}

func (s *ReviewService) Comments(ctx context.Context, reviewID string) ([]domain.Comment, error) {
	return s.store.ListComments(ctx, reviewID)
}

func (s *ReviewService) Report(ctx context.Context, reviewID, reason string) error {
	f := &domain.Flag{
		ID:        uuid.NewString(),
		ReviewID:  reviewID,
		Reason:    reason,
		Status:    "pending",
		CreatedAt: s.now(),
	}
	if err := s.store.AddFlag(ctx, f); err != nil {
		return fmt.Errorf("%w: record flag: %v", xerrors.ErrInternalServer, err)
	}
	return nil
}

// Keywords builds the search index for an entity name: every prefix of
// length two or more of the lowercased name, plus each word longer
// than two characters.
func Keywords(name string) []string {
	if name == "" {
		return nil
	}
	s := strings.ToLower(name)

	seen := map[string]bool{}
	var out []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	var cur strings.Builder
	for _, r := range s {
		cur.WriteRune(r)
		if cur.Len() >= 2 {
			add(cur.String())
		}
	}
	for _, word := range strings.Fields(s) {
		if len(word) > 2 {
			add(word)
		}
	}
	return out
}
