package repository

import (
	"errors"

	"fisiogestao/internal/domain/entity"
	domainRepo "fisiogestao/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *auditLogRepository) FindAll(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	query := db.Model(&entity.AuditLog{}).Order("data_hora DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logs []entity.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByRecord(db *gorm.DB, tabela string, registroID int64, limit int) ([]entity.AuditLog, error) {
	query := db.Where("tabela = ? AND registro_id = ?", tabela, registroID).
		Order("data_hora DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logs []entity.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
