package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"reviewhub/internal/config"
	"reviewhub/internal/domain"
	"reviewhub/pkg/xerrors"
)

// VerificationStore is the record-store contract the state machine
// runs against. CommitSend must be atomic: challenge and quota land
// together or not at all.
type VerificationStore interface {
	GetChallenge(ctx context.Context, phone string) (*domain.OtpChallenge, error)
	GetRateLimit(ctx context.Context, userID string) (*domain.RateLimitRecord, error)
	CommitSend(ctx context.Context, ch *domain.OtpChallenge, rate *domain.RateLimitRecord) error
	IncrementAttempts(ctx context.Context, phone string, attempts int) error
	DeleteChallenge(ctx context.Context, phone string) error
	MarkPhoneVerified(ctx context.Context, userID, phone string) error
}

// SMSGateway dispatches one message. nil means the provider accepted
// it; a rejection and a transport error are treated identically by
// the caller.
type SMSGateway interface {
	Send(ctx context.Context, to, body string) error
}

type OTPService struct {
	store   VerificationStore
	gateway SMSGateway
	policy  config.OTPPolicy
	log     *zap.Logger
	now     func() time.Time
}

func NewOTPService(store VerificationStore, gateway SMSGateway, policy config.OTPPolicy, log *zap.Logger) *OTPService {
	return &OTPService{
		store:   store,
		gateway: gateway,
		policy:  policy,
		log:     log,
		now:     time.Now,
	}
}

// RequestCode runs the send half of the verification flow: quota
// check, cooldown check, dispatch, then the atomic commit of the new
// challenge together with the consumed quota. A failed dispatch
// commits nothing, so the quota survives for the retry.
func (s *OTPService) RequestCode(ctx context.Context, userID, phone string) error {
	if userID == "" {
		return xerrors.ErrUnauthorized
	}
	if !s.canonicalPhone(phone) {
		return fmt.Errorf("%w: expected %s followed by %d digits",
			xerrors.ErrInvalidPhoneFormat, s.policy.PhonePrefix, s.policy.PhoneLength-len(s.policy.PhonePrefix))
	}

	now := s.now()

	rate, err := s.store.GetRateLimit(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: load rate limit: %v", xerrors.ErrInternalServer, err)
	}
	if rate == nil || rate.Lapsed(now) {
		rate = &domain.RateLimitRecord{UserID: userID, Count: 0, ResetAt: now.Add(s.policy.QuotaWindow)}
	}
	if rate.Count >= s.policy.DailyQuota {
		return fmt.Errorf("%w: try again tomorrow", xerrors.ErrQuotaExceeded)
	}

	ch, err := s.store.GetChallenge(ctx, phone)
	if err != nil {
		return fmt.Errorf("%w: load challenge: %v", xerrors.ErrInternalServer, err)
	}
	if domain.StateOf(ch, now, s.policy.MaxAttempts) == domain.StateActive {
		if elapsed := now.Sub(ch.CreatedAt); elapsed < s.policy.Cooldown {
			remaining := int(math.Ceil((s.policy.Cooldown - elapsed).Seconds()))
			return fmt.Errorf("%w: wait %ds", xerrors.ErrCooldownActive, remaining)
		}
	}

	code := randomCode(s.policy.CodeDigits)
	next := &domain.OtpChallenge{
		Phone:     phone,
		Code:      code,
		OwnerID:   userID,
		Attempts:  0,
		CreatedAt: now,
		ExpiresAt: now.Add(s.policy.Lifetime),
	}

	if err := s.gateway.Send(ctx, phone, "ReviewHub Code: "+code); err != nil {
		s.log.Warn("otp dispatch failed", zap.String("phone", phone), zap.Error(err))
		return fmt.Errorf("%w: %v", xerrors.ErrDeliveryFailed, err)
	}

	rate.Count++
	if err := s.store.CommitSend(ctx, next, rate); err != nil {
		return fmt.Errorf("%w: commit send: %v", xerrors.ErrInternalServer, err)
	}

	s.log.Info("otp sent",
		zap.String("phone", phone),
		zap.String("user_id", userID),
		zap.Int("quota_used", rate.Count),
	)
	return nil
}

// VerifyCode runs the verify half: ownership, expiry, then the code
// comparison with bounded attempts. Terminal outcomes delete the
// challenge; success additionally merge-writes the profile flag.
func (s *OTPService) VerifyCode(ctx context.Context, userID, phone, code string) error {
	if userID == "" {
		return xerrors.ErrUnauthorized
	}
	if phone == "" || code == "" {
		return fmt.Errorf("%w: phone and code required", xerrors.ErrInvalidRequest)
	}

	ch, err := s.store.GetChallenge(ctx, phone)
	if err != nil {
		return fmt.Errorf("%w: load challenge: %v", xerrors.ErrInternalServer, err)
	}

	now := s.now()
	switch domain.StateOf(ch, now, s.policy.MaxAttempts) {
	case domain.StateNoChallenge:
		return xerrors.ErrChallengeNotFound
	case domain.StateExhausted:
		// Terminal leftover; clean it up and report as absent.
		_ = s.store.DeleteChallenge(ctx, phone)
		return xerrors.ErrChallengeNotFound
	}

	if ch.OwnerID != "" && ch.OwnerID != userID {
		return xerrors.ErrPermissionDenied
	}

	if now.After(ch.ExpiresAt) {
		if err := s.store.DeleteChallenge(ctx, phone); err != nil {
			s.log.Warn("expired challenge cleanup failed", zap.String("phone", phone), zap.Error(err))
		}
		return fmt.Errorf("%w: request a new code", xerrors.ErrCodeExpired)
	}

	if ch.Code == code {
		if err := s.store.DeleteChallenge(ctx, phone); err != nil {
			return fmt.Errorf("%w: consume challenge: %v", xerrors.ErrInternalServer, err)
		}
		if err := s.store.MarkPhoneVerified(ctx, userID, phone); err != nil {
			return fmt.Errorf("%w: mark verified: %v", xerrors.ErrInternalServer, err)
		}
		s.log.Info("phone verified", zap.String("phone", phone), zap.String("user_id", userID))
		return nil
	}

	ch.Attempts++
	if ch.Attempts >= s.policy.MaxAttempts {
		if err := s.store.DeleteChallenge(ctx, phone); err != nil {
			return fmt.Errorf("%w: discard challenge: %v", xerrors.ErrInternalServer, err)
		}
		return fmt.Errorf("%w: request a new code", xerrors.ErrAttemptsExhausted)
	}
	if err := s.store.IncrementAttempts(ctx, phone, ch.Attempts); err != nil {
		return fmt.Errorf("%w: record attempt: %v", xerrors.ErrInternalServer, err)
	}
	return fmt.Errorf("%w: %d attempts remaining", xerrors.ErrInvalidCode, s.policy.MaxAttempts-ch.Attempts)
}

// canonicalPhone checks the already-normalized shape: country prefix
// plus subscriber digits at a fixed total length.
func (s *OTPService) canonicalPhone(phone string) bool {
	if len(phone) != s.policy.PhoneLength {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(phone) >= len(s.policy.PhonePrefix) && phone[:len(s.policy.PhonePrefix)] == s.policy.PhonePrefix
}
