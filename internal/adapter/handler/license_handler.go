package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kwheeler7/license_seats/internal/core/domain"
	"github.com/kwheeler7/license_seats/internal/core/services"
)

type LicenseHandler struct {
	allocSvc *services.AllocationService
	usageSvc *services.UsageService
	maxSeats int
}

func NewLicenseHandler(allocSvc *services.AllocationService, usageSvc *services.UsageService, maxSeats int) *LicenseHandler {
	return &LicenseHandler{
		allocSvc: allocSvc,
		usageSvc: usageSvc,
		maxSeats: maxSeats,
	}
}

func (h *LicenseHandler) AssignLicense(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, `{"error": "method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	var req services.AssignLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	resp, err := h.allocSvc.AssignLicense(r.Context(), req)
	if err != nil {
		h.writeAllocationError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (h *LicenseHandler) RedeemGift(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, `{"error": "method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	var req services.RedeemGiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	resp, err := h.allocSvc.RedeemGift(r.Context(), req)
	if err != nil {
		h.writeAllocationError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (h *LicenseHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, `{"error": "method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	usage, err := h.usageSvc.ComputeUsage(r.Context(), h.maxSeats)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	json.NewEncoder(w).Encode(usage)
}

func (h *LicenseHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// writeAllocationError maps the domain taxonomy onto HTTP. The three
// business rejections are shown verbatim; anything else is opaque.
func (h *LicenseHandler) writeAllocationError(w http.ResponseWriter, err error) {
	var unavailable *domain.UnavailableError
	if errors.As(err, &unavailable) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":               unavailable.Error(),
			"unavailable":         unavailable.Impact,
			"retry_with_override": true,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrLicenseNotFound),
		errors.Is(err, domain.ErrGiftNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrIneligibleOwner),
		errors.Is(err, domain.ErrGiftAlreadyRedeemed):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrAssignmentConflict):
		writeError(w, http.StatusConflict, err.Error())
	case err.Error() == "invalid owner id":
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "operation failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
