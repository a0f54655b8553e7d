package repository

import (
	"fisiogestao/internal/domain/entity"

	"gorm.io/gorm"
)

type ProcedureRepository interface {
	Create(db *gorm.DB, procedure *entity.Procedure) error
	FindByID(db *gorm.DB, id int64) (*entity.Procedure, error)
	FindAll(db *gorm.DB, filter *entity.ProcedureFilter) ([]entity.Procedure, error)
	Update(db *gorm.DB, procedure *entity.Procedure) error
}
