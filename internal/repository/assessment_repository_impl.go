package repository

import (
	"errors"

	"fisiogestao/internal/domain/entity"
	domainRepo "fisiogestao/internal/domain/repository"

	"gorm.io/gorm"
)

type assessmentRepository struct{}

func NewAssessmentRepository() domainRepo.AssessmentRepository {
	return &assessmentRepository{}
}

func (r *assessmentRepository) Create(db *gorm.DB, assessment *entity.Assessment) error {
	return db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Assessment, error) {
	var assessment entity.Assessment
	err := db.Preload("Anexos").Where("id = ?", id).First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Assessment, error) {
	var assessments []entity.Assessment
	err := db.Where("paciente_id = ?", patientID).
		Order("data_avaliacao DESC").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) FindAll(db *gorm.DB, patientID *int64) ([]entity.Assessment, error) {
	query := db.Model(&entity.Assessment{})
	if patientID != nil {
		query = query.Where("paciente_id = ?", *patientID)
	}

	var assessments []entity.Assessment
	if err := query.Order("data_avaliacao DESC").Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) Update(db *gorm.DB, assessment *entity.Assessment) error {
	return db.Save(assessment).Error
}

func (r *assessmentRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.Assessment{}).Error
}

func (r *assessmentRepository) CreateAttachment(db *gorm.DB, attachment *entity.AssessmentAttachment) error {
	return db.Create(attachment).Error
}

func (r *assessmentRepository) FindAttachment(db *gorm.DB, assessmentID, attachmentID int64) (*entity.AssessmentAttachment, error) {
	var attachment entity.AssessmentAttachment
	err := db.Where("id = ? AND avaliacao_id = ?", attachmentID, assessmentID).First(&attachment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attachment, nil
}

func (r *assessmentRepository) DeleteAttachment(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.AssessmentAttachment{}).Error
}

func (r *assessmentRepository) DeleteAttachmentsByAssessmentID(db *gorm.DB, assessmentID int64) error {
	return db.Where("avaliacao_id = ?", assessmentID).Delete(&entity.AssessmentAttachment{}).Error
}
