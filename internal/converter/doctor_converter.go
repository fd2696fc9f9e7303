package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to its response DTO
func DoctorToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              profile.UserID,
		Email:           profile.User.Email,
		FirstName:       profile.User.FirstName,
		LastName:        profile.User.LastName,
		Specialization:  profile.Specialization,
		Biography:       profile.Biography,
		ConsultationFee: profile.ConsultationFee,
		IsApproved:      profile.IsApproved,
		IsAvailable:     profile.IsAvailable,
		HospitalID:      profile.HospitalID,
	}

	// Either affiliation path may carry the code
	if profile.HospitalCode != nil {
		response.HospitalCode = *profile.HospitalCode
	} else if profile.Hospital != nil {
		response.HospitalCode = profile.Hospital.Code
	}

	return response
}

// DoctorsToResponses converts a slice of DoctorProfile entities to response DTOs
func DoctorsToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorToResponse(&profiles[i])
	}
	return responses
}
