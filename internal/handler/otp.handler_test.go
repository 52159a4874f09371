package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reviewhub/internal/config"
	"reviewhub/internal/domain"
	"reviewhub/internal/middleware"
	"reviewhub/internal/service"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"0771234567", "94771234567"},
		{"077-123 4567", "94771234567"},
		{"94771234567", "94771234567"},
		{"+94 77 123 4567", "94771234567"},
		{"(077) 1234567", "94771234567"},
		{"", ""},
		{"abc", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizePhone(tc.raw, "94"), "raw %q", tc.raw)
	}
}

// stubStore seeds just enough state to drive each outcome of the
// verification flow through the HTTP layer.
type stubStore struct {
	challenge *domain.OtpChallenge
	rate      *domain.RateLimitRecord
}

func (s *stubStore) GetChallenge(context.Context, string) (*domain.OtpChallenge, error) {
	return s.challenge, nil
}

func (s *stubStore) GetRateLimit(context.Context, string) (*domain.RateLimitRecord, error) {
	return s.rate, nil
}

func (s *stubStore) CommitSend(_ context.Context, ch *domain.OtpChallenge, rate *domain.RateLimitRecord) error {
	s.challenge, s.rate = ch, rate
	return nil
}

func (s *stubStore) IncrementAttempts(_ context.Context, _ string, attempts int) error {
	s.challenge.Attempts = attempts
	return nil
}

func (s *stubStore) DeleteChallenge(context.Context, string) error {
	s.challenge = nil
	return nil
}

func (s *stubStore) MarkPhoneVerified(context.Context, string, string) error { return nil }

type stubGateway struct{ err error }

func (g *stubGateway) Send(context.Context, string, string) error { return g.err }

func otpTestHandler(store *stubStore, gw *stubGateway) *OTPHandler {
	policy := config.OTPPolicy{
		DailyQuota:  5,
		QuotaWindow: 24 * time.Hour,
		Cooldown:    60 * time.Second,
		Lifetime:    5 * time.Minute,
		MaxAttempts: 3,
		CodeDigits:  6,
		CountryCode: "94",
		PhonePrefix: "947",
		PhoneLength: 11,
	}
	svc := service.NewOTPService(store, gw, policy, zap.NewNop())
	return NewOTPHandler(svc, policy.CountryCode)
}

func doOTP(h http.HandlerFunc, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextUserID, userID))
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandleRequestOTPStatusMapping(t *testing.T) {
	body := `{"phone":"0771234567"}`

	t.Run("no identity", func(t *testing.T) {
		h := otpTestHandler(&stubStore{}, &stubGateway{})
		rr := doOTP(h.HandleRequestOTP, body, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing phone", func(t *testing.T) {
		h := otpTestHandler(&stubStore{}, &stubGateway{})
		rr := doOTP(h.HandleRequestOTP, `{}`, "user-1")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad phone shape", func(t *testing.T) {
		h := otpTestHandler(&stubStore{}, &stubGateway{})
		rr := doOTP(h.HandleRequestOTP, `{"phone":"0111234567"}`, "user-1")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("success", func(t *testing.T) {
		store := &stubStore{}
		h := otpTestHandler(store, &stubGateway{})
		rr := doOTP(h.HandleRequestOTP, body, "user-1")
		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, store.challenge)
		assert.Equal(t, "94771234567", store.challenge.Phone)
	})

	t.Run("cooldown", func(t *testing.T) {
		store := &stubStore{challenge: &domain.OtpChallenge{
			Phone: "94771234567", Code: "123456", OwnerID: "user-1",
			CreatedAt: time.Now().Add(-10 * time.Second),
			ExpiresAt: time.Now().Add(4 * time.Minute),
		}}
		h := otpTestHandler(store, &stubGateway{})
		rr := doOTP(h.HandleRequestOTP, body, "user-1")
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Contains(t, rr.Body.String(), "wait")
	})

	t.Run("quota exhausted", func(t *testing.T) {
		store := &stubStore{rate: &domain.RateLimitRecord{
			UserID: "user-1", Count: 5, ResetAt: time.Now().Add(6 * time.Hour),
		}}
		h := otpTestHandler(store, &stubGateway{})
		rr := doOTP(h.HandleRequestOTP, body, "user-1")
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})

	t.Run("delivery failure", func(t *testing.T) {
		h := otpTestHandler(&stubStore{}, &stubGateway{err: errors.New("provider down")})
		rr := doOTP(h.HandleRequestOTP, body, "user-1")
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestHandleVerifyOTPStatusMapping(t *testing.T) {
	liveChallenge := func(owner string) *domain.OtpChallenge {
		return &domain.OtpChallenge{
			Phone: "94771234567", Code: "123456", OwnerID: owner,
			CreatedAt: time.Now().Add(-time.Minute),
			ExpiresAt: time.Now().Add(4 * time.Minute),
		}
	}
	body := `{"phone":"0771234567","code":"123456"}`

	t.Run("success", func(t *testing.T) {
		store := &stubStore{challenge: liveChallenge("user-1")}
		h := otpTestHandler(store, &stubGateway{})
		rr := doOTP(h.HandleVerifyOTP, body, "user-1")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, store.challenge)
	})

	t.Run("no challenge", func(t *testing.T) {
		h := otpTestHandler(&stubStore{}, &stubGateway{})
		rr := doOTP(h.HandleVerifyOTP, body, "user-1")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("wrong owner", func(t *testing.T) {
		store := &stubStore{challenge: liveChallenge("someone-else")}
		h := otpTestHandler(store, &stubGateway{})
		rr := doOTP(h.HandleVerifyOTP, body, "user-1")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("expired", func(t *testing.T) {
		ch := liveChallenge("user-1")
		ch.ExpiresAt = time.Now().Add(-time.Second)
		store := &stubStore{challenge: ch}
		h := otpTestHandler(store, &stubGateway{})
		rr := doOTP(h.HandleVerifyOTP, body, "user-1")
		assert.Equal(t, http.StatusGone, rr.Code)
	})

	t.Run("wrong code", func(t *testing.T) {
		store := &stubStore{challenge: liveChallenge("user-1")}
		h := otpTestHandler(store, &stubGateway{})
		rr := doOTP(h.HandleVerifyOTP, `{"phone":"0771234567","code":"000000"}`, "user-1")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "attempts remaining")
	})

	t.Run("missing code", func(t *testing.T) {
		store := &stubStore{challenge: liveChallenge("user-1")}
		h := otpTestHandler(store, &stubGateway{})
		rr := doOTP(h.HandleVerifyOTP, `{"phone":"0771234567"}`, "user-1")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
