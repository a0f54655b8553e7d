package repository

import (
	"fisiogestao/internal/domain/entity"

	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(db *gorm.DB, assessment *entity.Assessment) error
	FindByID(db *gorm.DB, id int64) (*entity.Assessment, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Assessment, error)
	FindAll(db *gorm.DB, patientID *int64) ([]entity.Assessment, error)
	Update(db *gorm.DB, assessment *entity.Assessment) error
	Delete(db *gorm.DB, id int64) error

	CreateAttachment(db *gorm.DB, attachment *entity.AssessmentAttachment) error
	FindAttachment(db *gorm.DB, assessmentID, attachmentID int64) (*entity.AssessmentAttachment, error)
	DeleteAttachment(db *gorm.DB, id int64) error
	DeleteAttachmentsByAssessmentID(db *gorm.DB, assessmentID int64) error
}
