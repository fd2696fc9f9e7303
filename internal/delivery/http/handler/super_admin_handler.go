package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/delivery/http/middleware"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/response"
	"hospital-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SuperAdminHandler struct {
	superAdminUsecase usecase.SuperAdminUsecase
	validator         *validator.CustomValidator
}

func NewSuperAdminHandler(superAdminUsecase usecase.SuperAdminUsecase, validator *validator.CustomValidator) *SuperAdminHandler {
	return &SuperAdminHandler{
		superAdminUsecase: superAdminUsecase,
		validator:         validator,
	}
}

func (h *SuperAdminHandler) ListPendingAdmins(w http.ResponseWriter, r *http.Request) {
	list, err := h.superAdminUsecase.ListPendingAdmins(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pending admins")
		return
	}

	response.Success(w, http.StatusOK, "Pending admins retrieved", list)
}

func (h *SuperAdminHandler) ApproveAdmin(w http.ResponseWriter, r *http.Request) {
	h.reviewAdmin(w, r, h.superAdminUsecase.ApproveAdmin, "Hospital admin approved", "Failed to approve hospital admin")
}

func (h *SuperAdminHandler) RejectAdmin(w http.ResponseWriter, r *http.Request) {
	h.reviewAdmin(w, r, h.superAdminUsecase.RejectAdmin, "Hospital admin registration rejected", "Failed to reject hospital admin")
}

func (h *SuperAdminHandler) reviewAdmin(
	w http.ResponseWriter,
	r *http.Request,
	review func(ctx context.Context, superAdminID, adminID uuid.UUID) error,
	successMessage, failureMessage string,
) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	adminID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid admin ID")
		return
	}

	if err := review(r.Context(), userID, adminID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrHospitalAdminNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrHospitalAdminAlreadyApproved):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, failureMessage)
		}
		return
	}

	response.Success(w, http.StatusOK, successMessage, nil)
}

func (h *SuperAdminHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.superAdminUsecase.CreateHospital(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalCodeExists) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to create hospital")
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created", hospital)
}

func (h *SuperAdminHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	list, err := h.superAdminUsecase.ListHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved", list)
}

func (h *SuperAdminHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.superAdminUsecase.GetAnalytics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load analytics")
		return
	}

	response.Success(w, http.StatusOK, "Analytics retrieved", analytics)
}

func (h *SuperAdminHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	logs, err := h.superAdminUsecase.ListAuditLogs(r.Context(), query.Get("action"), limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved", logs)
}
