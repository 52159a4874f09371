package domain

import "time"

// ChallengeState classifies a stored challenge against the server clock.
// State is never persisted; it is derived on every touch so that
// "deleted", "expired-but-present" and "never existed" stay distinct.
type ChallengeState int

const (
	StateNoChallenge ChallengeState = iota
	StateActive
	StateExpired
	StateExhausted
)

func (s ChallengeState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateExpired:
		return "expired"
	case StateExhausted:
		return "exhausted"
	default:
		return "none"
	}
}

// OtpChallenge is the outstanding one-time code for a phone number.
// At most one row exists per number; a new request overwrites it.
type OtpChallenge struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	OwnerID   string    `json:"owner_id"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StateOf derives the challenge state. Exhaustion wins over expiry:
// both are terminal, but an exhausted challenge must never accept
// another attempt even if its lifetime has not elapsed.
func StateOf(ch *OtpChallenge, now time.Time, maxAttempts int) ChallengeState {
	switch {
	case ch == nil:
		return StateNoChallenge
	case ch.Attempts >= maxAttempts:
		return StateExhausted
	case now.After(ch.ExpiresAt):
		return StateExpired
	default:
		return StateActive
	}
}

// RateLimitRecord counts successful OTP sends for one user within a
// rolling day. Count only moves inside the same transaction that
// stores the challenge after the gateway accepted the send.
type RateLimitRecord struct {
	UserID  string    `json:"user_id"`
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

// Lapsed reports whether the window has rolled over. A lapsed record
// is treated as count zero at check time but only rewritten when a
// send actually commits.
func (r *RateLimitRecord) Lapsed(now time.Time) bool {
	return now.After(r.ResetAt)
}

// UserProfile is the slice of the account record this service touches.
// The verification subsystem merge-writes Verified and Phone only;
// everything else belongs to account management.
type UserProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}
