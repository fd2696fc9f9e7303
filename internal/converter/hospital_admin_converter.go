package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// HospitalAdminToResponse converts a HospitalAdminProfile entity to its response DTO
func HospitalAdminToResponse(profile *entity.HospitalAdminProfile) *dto.HospitalAdminResponse {
	if profile == nil {
		return nil
	}

	return &dto.HospitalAdminResponse{
		UserID:       profile.UserID,
		Email:        profile.User.Email,
		FirstName:    profile.User.FirstName,
		LastName:     profile.User.LastName,
		HospitalID:   profile.HospitalID,
		HospitalCode: profile.HospitalCode,
		HospitalName: profile.Hospital.Name,
		IsApproved:   profile.IsApproved,
	}
}

// HospitalAdminsToResponses converts a slice of HospitalAdminProfile entities to response DTOs
func HospitalAdminsToResponses(profiles []entity.HospitalAdminProfile) []dto.HospitalAdminResponse {
	responses := make([]dto.HospitalAdminResponse, len(profiles))
	for i := range profiles {
		responses[i] = *HospitalAdminToResponse(&profiles[i])
	}
	return responses
}
