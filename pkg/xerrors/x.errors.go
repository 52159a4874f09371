package xerrors

import "errors"

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
)

// Phone verification
var (
	ErrInvalidPhoneFormat = errors.New("invalid phone format")
	ErrQuotaExceeded      = errors.New("daily SMS limit reached")
	ErrCooldownActive     = errors.New("cooldown active")
	ErrDeliveryFailed     = errors.New("SMS delivery failed")
	ErrChallengeNotFound  = errors.New("code expired or not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrCodeExpired        = errors.New("code expired")
	ErrInvalidCode        = errors.New("invalid code")
	ErrAttemptsExhausted  = errors.New("too many failed attempts")
)

// Reviews
var (
	ErrToxicContent  = errors.New("review rejected: content flagged as toxic/harmful")
	ErrReviewMissing = errors.New("review not found")
)
