package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
)

// LeaveRequestToResponse converts a DoctorLeaveRequest entity to its response DTO
func LeaveRequestToResponse(request *entity.DoctorLeaveRequest) *dto.LeaveRequestResponse {
	if request == nil {
		return nil
	}

	response := &dto.LeaveRequestResponse{
		ID:         request.ID,
		DoctorID:   request.DoctorID,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		Reason:     request.Reason,
		Status:     string(request.Status),
		ReviewedBy: request.ReviewedBy,
		CreatedAt:  request.CreatedAt,
	}

	if request.Doctor.UserID != uuid.Nil {
		response.DoctorName = request.Doctor.User.FullName()
	}

	return response
}

// LeaveRequestsToResponses converts a slice of DoctorLeaveRequest entities to response DTOs
func LeaveRequestsToResponses(requests []entity.DoctorLeaveRequest) []dto.LeaveRequestResponse {
	responses := make([]dto.LeaveRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *LeaveRequestToResponse(&requests[i])
	}
	return responses
}
