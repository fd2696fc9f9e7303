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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// appointmentIDFromRequest parses the {id} path variable.
func appointmentIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAppointmentDate), errors.Is(err, usecase.ErrAppointmentInPast):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrDoctorNotAvailable):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked", appointment)
}

func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	list, err := h.appointmentUsecase.ListForPatient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved", list)
}

func (h *AppointmentHandler) CancelByPatient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	appointmentID, err := appointmentIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.CancelByPatient(r.Context(), userID, appointmentID); err != nil {
		h.writeTransitionError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled", nil)
}

func (h *AppointmentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.doctorTransition(w, r, h.appointmentUsecase.Approve, "Appointment approved", "Failed to approve appointment")
}

func (h *AppointmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.doctorTransition(w, r, h.appointmentUsecase.Start, "Appointment started", "Failed to start appointment")
}

func (h *AppointmentHandler) CancelByDoctor(w http.ResponseWriter, r *http.Request) {
	h.doctorTransition(w, r, h.appointmentUsecase.CancelByDoctor, "Appointment cancelled", "Failed to cancel appointment")
}

func (h *AppointmentHandler) doctorTransition(
	w http.ResponseWriter,
	r *http.Request,
	transition func(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error,
	successMessage, failureMessage string,
) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	appointmentID, err := appointmentIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := transition(r.Context(), userID, appointmentID); err != nil {
		h.writeTransitionError(w, err, failureMessage)
		return
	}

	response.Success(w, http.StatusOK, successMessage, nil)
}

// Complete finishes a session; an optional medical record payload rides in
// the same request and lands in the same transaction.
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	appointmentID, err := appointmentIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.CompleteAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.Complete(r.Context(), userID, appointmentID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed", nil)
}

func (h *AppointmentHandler) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	appointmentID, err := appointmentIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	record, err := h.appointmentUsecase.GetMedicalRecord(r.Context(), claims.UserID, claims.RoleID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound), errors.Is(err, usecase.ErrMedicalRecordNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to load medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved", record)
}

func (h *AppointmentHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	appointmentID, err := appointmentIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.SubmitRating(r.Context(), userID, appointmentID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound), errors.Is(err, usecase.ErrMedicalRecordNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrRatingAlreadySubmitted):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to submit rating")
		}
		return
	}

	response.Success(w, http.StatusOK, "Rating submitted", nil)
}

func (h *AppointmentHandler) writeTransitionError(w http.ResponseWriter, err error, failureMessage string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalServerError(w, failureMessage)
	}
}
