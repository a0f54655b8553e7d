package repository

import (
	"errors"

	"fisiogestao/internal/domain/entity"
	domainRepo "fisiogestao/internal/domain/repository"

	"gorm.io/gorm"
)

type progressNoteRepository struct{}

func NewProgressNoteRepository() domainRepo.ProgressNoteRepository {
	return &progressNoteRepository{}
}

func (r *progressNoteRepository) Create(db *gorm.DB, note *entity.ProgressNote) error {
	return db.Create(note).Error
}

func (r *progressNoteRepository) FindByID(db *gorm.DB, id int64) (*entity.ProgressNote, error) {
	var note entity.ProgressNote
	err := db.Preload("Procedimentos.Procedimento").Where("id = ?", id).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *progressNoteRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.ProgressNote, error) {
	var notes []entity.ProgressNote
	err := db.Preload("Procedimentos.Procedimento").
		Where("paciente_id = ?", patientID).
		Order("data_sessao DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *progressNoteRepository) FindAll(db *gorm.DB, filter *entity.ProgressNoteFilter) ([]entity.ProgressNote, error) {
	query := db.Model(&entity.ProgressNote{}).Preload("Procedimentos.Procedimento")

	if filter != nil {
		if filter.PacienteID != nil {
			query = query.Where("paciente_id = ?", *filter.PacienteID)
		}
		if filter.AvaliacaoID != nil {
			query = query.Where("avaliacao_id = ?", *filter.AvaliacaoID)
		}
	}

	var notes []entity.ProgressNote
	if err := query.Order("data_sessao DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *progressNoteRepository) Update(db *gorm.DB, note *entity.ProgressNote) error {
	return db.Omit("Procedimentos").Save(note).Error
}

func (r *progressNoteRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.ProgressNote{}).Error
}

func (r *progressNoteRepository) CreateLink(db *gorm.DB, link *entity.ProcedureLink) error {
	return db.Create(link).Error
}

func (r *progressNoteRepository) DeleteLinksByNoteID(db *gorm.DB, noteID int64) error {
	return db.Where("evolucao_id = ?", noteID).Delete(&entity.ProcedureLink{}).Error
}
