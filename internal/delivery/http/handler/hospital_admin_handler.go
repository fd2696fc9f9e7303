package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/delivery/http/middleware"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/jwt"
	"hospital-appointment-api/pkg/response"
	"hospital-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type HospitalAdminHandler struct {
	adminUsecase usecase.HospitalAdminUsecase
	validator    *validator.CustomValidator
}

func NewHospitalAdminHandler(adminUsecase usecase.HospitalAdminUsecase, validator *validator.CustomValidator) *HospitalAdminHandler {
	return &HospitalAdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// adminClaims pulls the caller's claims; hospital admins always carry a
// hospital code in their token.
func adminClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || claims.HospitalCode == "" {
		response.Unauthorized(w, "Hospital affiliation missing from token")
		return nil, false
	}
	return claims, true
}

func doctorIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func (h *HospitalAdminHandler) ListPendingDoctors(w http.ResponseWriter, r *http.Request) {
	claims, ok := adminClaims(w, r)
	if !ok {
		return
	}

	list, err := h.adminUsecase.ListPendingDoctors(r.Context(), claims.HospitalCode)
	if err != nil {
		response.InternalServerError(w, "Failed to list pending doctors")
		return
	}

	response.Success(w, http.StatusOK, "Pending doctors retrieved", list)
}

func (h *HospitalAdminHandler) ListApprovedDoctors(w http.ResponseWriter, r *http.Request) {
	claims, ok := adminClaims(w, r)
	if !ok {
		return
	}

	list, err := h.adminUsecase.ListApprovedDoctors(r.Context(), claims.HospitalCode)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved", list)
}

func (h *HospitalAdminHandler) ApproveDoctor(w http.ResponseWriter, r *http.Request) {
	claims, ok := adminClaims(w, r)
	if !ok {
		return
	}

	doctorID, err := doctorIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.adminUsecase.ApproveDoctor(r.Context(), claims.UserID, claims.HospitalCode, doctorID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrDoctorAlreadyApproved):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to approve doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor approved", nil)
}

func (h *HospitalAdminHandler) RejectDoctor(w http.ResponseWriter, r *http.Request) {
	claims, ok := adminClaims(w, r)
	if !ok {
		return
	}

	doctorID, err := doctorIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.adminUsecase.RejectDoctor(r.Context(), claims.UserID, claims.HospitalCode, doctorID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrDoctorAlreadyApproved):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to reject doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor registration rejected", nil)
}

func (h *HospitalAdminHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	claims, ok := adminClaims(w, r)
	if !ok {
		return
	}

	doctorID, err := doctorIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.AdminUpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.adminUsecase.UpdateDoctor(r.Context(), claims.UserID, claims.HospitalCode, doctorID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated", doctor)
}

func (h *HospitalAdminHandler) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := adminClaims(w, r)
	if !ok {
		return
	}

	list, err := h.adminUsecase.ListLeaveRequests(r.Context(), claims.HospitalCode)
	if err != nil {
		response.InternalServerError(w, "Failed to list leave requests")
		return
	}

	response.Success(w, http.StatusOK, "Leave requests retrieved", list)
}

func (h *HospitalAdminHandler) ReviewLeaveRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := adminClaims(w, r)
	if !ok {
		return
	}

	leaveID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid leave request ID")
		return
	}

	var req struct {
		Approve *bool `json:"approve" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.adminUsecase.ReviewLeaveRequest(r.Context(), claims.UserID, claims.HospitalCode, leaveID, *req.Approve); err != nil {
		switch {
		case errors.Is(err, usecase.ErrLeaveRequestNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrLeaveAlreadyReviewed):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to review leave request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Leave request reviewed", nil)
}

func (h *HospitalAdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := adminClaims(w, r)
	if !ok {
		return
	}

	dashboard, err := h.adminUsecase.GetDashboard(r.Context(), claims.HospitalCode)
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved", dashboard)
}
