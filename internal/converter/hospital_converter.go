package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to its response DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:        hospital.ID,
		Name:      hospital.Name,
		Code:      hospital.Code,
		Address:   hospital.Address,
		Phone:     hospital.Phone,
		Email:     hospital.Email,
		CreatedAt: hospital.CreatedAt,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to response DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}
