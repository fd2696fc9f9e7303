package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its response DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:                  record.ID,
		AppointmentID:       record.AppointmentID,
		Symptoms:            record.Symptoms,
		Diagnosis:           record.Diagnosis,
		Treatment:           record.Treatment,
		PrescribedMedicines: record.PrescribedMedicines,
		FollowUpDate:        record.FollowUpDate,
		DoctorNotes:         record.DoctorNotes,
		SessionStartedAt:    record.SessionStartedAt,
		SessionEndedAt:      record.SessionEndedAt,
		PatientRating:       record.PatientRating,
		DoctorRating:        record.DoctorRating,
		ServiceRating:       record.ServiceRating,
		Feedback:            record.Feedback,
		WouldRecommend:      record.WouldRecommend,
		RatingStatus:        string(record.RatingStatus),
		CreatedAt:           record.CreatedAt,
	}
}
