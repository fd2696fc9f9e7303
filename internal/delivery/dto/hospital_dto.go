package dto

import "time"

type CreateHospitalRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Code    string `json:"code" validate:"required,min=2,max=50"`
	Address string `json:"address" validate:"omitempty"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type HospitalResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
