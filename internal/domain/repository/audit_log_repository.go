package repository

import (
	"hospital-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindRecent(db *gorm.DB, action string, limit, offset int) ([]entity.AuditLog, error)
}
