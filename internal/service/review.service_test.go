package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reviewhub/internal/domain"
	"reviewhub/pkg/xerrors"
)

type fakeReviewStore struct {
	created  []*domain.Review
	comments []*domain.Comment
	flags    []*domain.Flag
	votes    map[string]int
	voteErr  error
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{votes: map[string]int{}}
}

func (f *fakeReviewStore) Create(_ context.Context, rev *domain.Review) error {
	f.created = append(f.created, rev)
	return nil
}

func (f *fakeReviewStore) List(_ context.Context, _ string, _ int) ([]domain.Review, error) {
	return nil, nil
}

func (f *fakeReviewStore) ListByUser(_ context.Context, _ string) ([]domain.Review, error) {
	return nil, nil
}

func (f *fakeReviewStore) SearchKeyword(_ context.Context, _ string, _ int) ([]domain.Review, error) {
	return nil, nil
}

func (f *fakeReviewStore) Vote(_ context.Context, reviewID string, delta int) error {
	if f.voteErr != nil {
		return f.voteErr
	}
	f.votes[reviewID] += delta
	return nil
}

func (f *fakeReviewStore) AddComment(_ context.Context, c *domain.Comment) error {
	f.comments = append(f.comments, c)
	return nil
}

func (f *fakeReviewStore) ListComments(_ context.Context, _ string) ([]domain.Comment, error) {
	return nil, nil
}

func (f *fakeReviewStore) AddFlag(_ context.Context, fl *domain.Flag) error {
	f.flags = append(f.flags, fl)
	return nil
}

type fakeProfiles struct {
	profiles map[string]*domain.UserProfile
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (*domain.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, nil
}

type fixedScorer struct {
	score float64
	calls int
}

func (f *fixedScorer) ToxicityScore(_ context.Context, _ string) float64 {
	f.calls++
	return f.score
}

func newReviewService(store *fakeReviewStore, profiles *fakeProfiles, scorer *fixedScorer) *ReviewService {
	if profiles == nil {
		profiles = &fakeProfiles{}
	}
	svc := NewReviewService(store, profiles, scorer, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateReviewDefaultsAndBadge(t *testing.T) {
	store := newFakeReviewStore()
	profiles := &fakeProfiles{profiles: map[string]*domain.UserProfile{
		"user-1": {ID: "user-1", Name: "Nimal", Verified: true},
	}}
	svc := newReviewService(store, profiles, &fixedScorer{score: 0.2})

	rev, err := svc.Create(context.Background(), "user-1", "", CreateReviewInput{
		Text: "terrible service, avoid",
	})
	require.NoError(t, err)

	assert.Equal(t, "Unknown", rev.EntityName)
	assert.Equal(t, "General", rev.EntityType)
	assert.Equal(t, "Nimal", rev.UserName, "name backfilled from profile")
	assert.True(t, rev.VerifiedBadge)
	assert.Equal(t, domain.ReviewStatusActive, rev.Status)
	assert.InDelta(t, 0.2, rev.ToxicityScore, 0.001)
	require.Len(t, store.created, 1)
}

func TestCreateReviewRejectsToxic(t *testing.T) {
	store := newFakeReviewStore()
	svc := newReviewService(store, nil, &fixedScorer{score: 0.9})

	_, err := svc.Create(context.Background(), "user-1", "Nimal", CreateReviewInput{
		Text: "something vile here",
	})
	assert.ErrorIs(t, err, xerrors.ErrToxicContent)
	assert.Empty(t, store.created)
}

func TestCreateReviewShortTextSkipsScoring(t *testing.T) {
	store := newFakeReviewStore()
	scorer := &fixedScorer{score: 0.9}
	svc := newReviewService(store, nil, scorer)

	rev, err := svc.Create(context.Background(), "user-1", "Nimal", CreateReviewInput{
		EntityName: "QuickCabs",
		Text:       "bad",
	})
	require.NoError(t, err)
	assert.Zero(t, scorer.calls)
	assert.Zero(t, rev.ToxicityScore)
}

func TestCreateReviewUnauthenticated(t *testing.T) {
	svc := newReviewService(newFakeReviewStore(), nil, &fixedScorer{})
	_, err := svc.Create(context.Background(), "", "Nimal", CreateReviewInput{})
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestVoteDirection(t *testing.T) {
	store := newFakeReviewStore()
	svc := newReviewService(store, nil, &fixedScorer{})
	ctx := context.Background()

	require.NoError(t, svc.Vote(ctx, "rev-1", "up"))
	require.NoError(t, svc.Vote(ctx, "rev-1", "down"))
	require.NoError(t, svc.Vote(ctx, "rev-1", "up"))
	assert.Equal(t, 1, store.votes["rev-1"])

	store.voteErr = errors.New("no rows")
	assert.ErrorIs(t, svc.Vote(ctx, "gone", "up"), xerrors.ErrReviewMissing)
}

func TestAddCommentRequiresText(t *testing.T) {
	store := newFakeReviewStore()
	svc := newReviewService(store, nil, &fixedScorer{})

	_, err := svc.AddComment(context.Background(), "rev-1", "user-1", "Nimal", "")
	assert.ErrorIs(t, err, xerrors.ErrInvalidRequest)

	c, err := svc.AddComment(context.Background(), "rev-1", "user-1", "Nimal", "same happened to me")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	require.Len(t, store.comments, 1)
}

func TestSearchShortTermReturnsNothing(t *testing.T) {
	svc := newReviewService(newFakeReviewStore(), nil, &fixedScorer{})

	out, err := svc.Search(context.Background(), " a ")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestKeywords(t *testing.T) {
	got := Keywords("Quick Cabs")
	assert.Contains(t, got, "qu")
	assert.Contains(t, got, "quick")
	assert.Contains(t, got, "quick cabs")
	assert.Contains(t, got, "cabs")
	assert.NotContains(t, got, "q", "single chars never indexed")

	for i, k := range got {
		for j := i + 1; j < len(got); j++ {
			assert.NotEqual(t, k, got[j], "duplicate keyword %q", k)
		}
	}

	assert.Nil(t, Keywords(""))
}
