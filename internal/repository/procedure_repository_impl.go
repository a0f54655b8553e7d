package repository

import (
	"errors"

	"fisiogestao/internal/domain/entity"
	domainRepo "fisiogestao/internal/domain/repository"

	"gorm.io/gorm"
)

type procedureRepository struct{}

func NewProcedureRepository() domainRepo.ProcedureRepository {
	return &procedureRepository{}
}

func (r *procedureRepository) Create(db *gorm.DB, procedure *entity.Procedure) error {
	return db.Create(procedure).Error
}

func (r *procedureRepository) FindByID(db *gorm.DB, id int64) (*entity.Procedure, error) {
	var procedure entity.Procedure
	err := db.Where("id = ?", id).First(&procedure).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &procedure, nil
}

func (r *procedureRepository) FindAll(db *gorm.DB, filter *entity.ProcedureFilter) ([]entity.Procedure, error) {
	query := db.Model(&entity.Procedure{})

	if filter != nil {
		if filter.Ativo != nil {
			query = query.Where("ativo = ?", *filter.Ativo)
		}
		if filter.Nome != "" {
			query = query.Where("nome ILIKE ?", "%"+filter.Nome+"%")
		}
	}

	var procedures []entity.Procedure
	if err := query.Order("nome").Find(&procedures).Error; err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *procedureRepository) Update(db *gorm.DB, procedure *entity.Procedure) error {
	return db.Save(procedure).Error
}
