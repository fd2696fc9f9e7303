package repository

import (
	"hospital-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(db *gorm.DB, hospital *entity.Hospital) error
	FindByID(db *gorm.DB, id int) (*entity.Hospital, error)
	FindByCode(db *gorm.DB, code string) (*entity.Hospital, error)
	FindAll(db *gorm.DB) ([]entity.Hospital, error)
}
