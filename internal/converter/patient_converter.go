package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// PatientToResponse converts a PatientProfile entity to its response DTO
func PatientToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		UserID:                profile.UserID,
		Email:                 profile.User.Email,
		FirstName:             profile.User.FirstName,
		LastName:              profile.User.LastName,
		PhoneNumber:           profile.PhoneNumber,
		DateOfBirth:           profile.DateOfBirth,
		Gender:                profile.Gender,
		Address:               profile.Address,
		BloodType:             profile.BloodType,
		Allergies:             profile.Allergies,
		ChronicConditions:     profile.ChronicConditions,
		InsuranceProvider:     profile.InsuranceProvider,
		InsuranceNumber:       profile.InsuranceNumber,
		EmergencyContactName:  profile.EmergencyContactName,
		EmergencyContactPhone: profile.EmergencyContactPhone,
	}
}
