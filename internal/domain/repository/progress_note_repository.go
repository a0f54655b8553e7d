package repository

import (
	"fisiogestao/internal/domain/entity"

	"gorm.io/gorm"
)

type ProgressNoteRepository interface {
	Create(db *gorm.DB, note *entity.ProgressNote) error
	FindByID(db *gorm.DB, id int64) (*entity.ProgressNote, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.ProgressNote, error)
	FindAll(db *gorm.DB, filter *entity.ProgressNoteFilter) ([]entity.ProgressNote, error)
	Update(db *gorm.DB, note *entity.ProgressNote) error
	Delete(db *gorm.DB, id int64) error

	CreateLink(db *gorm.DB, link *entity.ProcedureLink) error
	DeleteLinksByNoteID(db *gorm.DB, noteID int64) error
}
