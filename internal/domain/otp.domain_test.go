package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	const maxAttempts = 3

	live := func(attempts int, expiresIn time.Duration) *OtpChallenge {
		return &OtpChallenge{
			Phone:     "94771234567",
			Code:      "123456",
			Attempts:  attempts,
			CreatedAt: now.Add(-time.Minute),
			ExpiresAt: now.Add(expiresIn),
		}
	}

	tests := []struct {
		name string
		ch   *OtpChallenge
		want ChallengeState
	}{
		{"nil challenge", nil, StateNoChallenge},
		{"fresh", live(0, 4*time.Minute), StateActive},
		{"attempts left", live(2, 4*time.Minute), StateActive},
		{"expired", live(0, -time.Second), StateExpired},
		{"exactly at expiry", live(0, 0), StateActive},
		{"exhausted", live(3, 4*time.Minute), StateExhausted},
		{"exhausted and expired", live(3, -time.Minute), StateExhausted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StateOf(tc.ch, now, maxAttempts))
		})
	}
}

func TestRateLimitRecordLapsed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec := &RateLimitRecord{UserID: "u", Count: 5, ResetAt: now.Add(time.Hour)}
	assert.False(t, rec.Lapsed(now))

	rec.ResetAt = now.Add(-time.Second)
	assert.True(t, rec.Lapsed(now))

	rec.ResetAt = now
	assert.False(t, rec.Lapsed(now), "window lapses strictly after reset")
}

func TestChallengeStateString(t *testing.T) {
	assert.Equal(t, "none", StateNoChallenge.String())
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "expired", StateExpired.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
}
