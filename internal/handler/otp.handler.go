package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"reviewhub/internal/middleware"
	"reviewhub/internal/service"
	"reviewhub/pkg/response"
	"reviewhub/pkg/xerrors"
)

type OTPHandler struct {
	svc         *service.OTPService
	countryCode string
}

func NewOTPHandler(svc *service.OTPService, countryCode string) *OTPHandler {
	return &OTPHandler{svc: svc, countryCode: countryCode}
}

type requestOTPBody struct {
	Phone string `json:"phone"`
}

type verifyOTPBody struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

func (h *OTPHandler) HandleRequestOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Auth required.")
		return
	}

	var body requestOTPBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Phone == "" {
		response.Error(w, http.StatusBadRequest, "phone is required")
		return
	}

	phone := NormalizePhone(body.Phone, h.countryCode)
	if err := h.svc.RequestCode(r.Context(), userID, phone); err != nil {
		writeOTPError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *OTPHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Auth required.")
		return
	}

	var body verifyOTPBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "phone and code are required")
		return
	}

	phone := NormalizePhone(body.Phone, h.countryCode)
	if err := h.svc.VerifyCode(r.Context(), userID, phone, body.Code); err != nil {
		writeOTPError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeOTPError maps state-machine outcomes 1:1 onto transport codes.
// The message is passed through verbatim; record shapes never leak.
func writeOTPError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, xerrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, xerrors.ErrInvalidPhoneFormat),
		errors.Is(err, xerrors.ErrInvalidRequest),
		errors.Is(err, xerrors.ErrInvalidCode):
		status = http.StatusBadRequest
	case errors.Is(err, xerrors.ErrQuotaExceeded),
		errors.Is(err, xerrors.ErrCooldownActive):
		status = http.StatusTooManyRequests
	case errors.Is(err, xerrors.ErrDeliveryFailed):
		status = http.StatusBadGateway
	case errors.Is(err, xerrors.ErrChallengeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, xerrors.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, xerrors.ErrCodeExpired),
		errors.Is(err, xerrors.ErrAttemptsExhausted):
		status = http.StatusGone
	default:
		response.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	response.Error(w, status, err.Error())
}

// NormalizePhone strips everything but digits and maps the local
// leading-zero form onto the international country-code form.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	p := b.String()
	if strings.HasPrefix(p, "0") {
		p = countryCode + p[1:]
	}
	return p
}
