package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/delivery/http/middleware"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/response"
	"hospital-appointment-api/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	profile, err := h.doctorUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to load profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved", profile)
}

func (h *DoctorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.doctorUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated", profile)
}

func (h *DoctorHandler) GetRatingStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	stats, err := h.doctorUsecase.GetRatingStats(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to load rating stats")
		return
	}

	response.Success(w, http.StatusOK, "Rating stats retrieved", stats)
}

func (h *DoctorHandler) RequestLeave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	leave, err := h.doctorUsecase.RequestLeave(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateFormat),
			errors.Is(err, usecase.ErrLeaveDatesInvalid),
			errors.Is(err, usecase.ErrLeaveInPast):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create leave request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Leave request submitted", leave)
}

func (h *DoctorHandler) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	list, err := h.doctorUsecase.ListLeaveRequests(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list leave requests")
		return
	}

	response.Success(w, http.StatusOK, "Leave requests retrieved", list)
}
