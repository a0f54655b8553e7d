package repository

import (
	"fisiogestao/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
	FindAll(db *gorm.DB, limit int) ([]entity.AuditLog, error)

	// FindByRecord returns the most recent entries scoped to (tabela, registroId),
	// newest first, capped at limit.
	FindByRecord(db *gorm.DB, tabela string, registroID int64, limit int) ([]entity.AuditLog, error)
}
