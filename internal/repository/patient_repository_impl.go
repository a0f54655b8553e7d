package repository

import (
	"errors"

	"fisiogestao/internal/domain/entity"
	domainRepo "fisiogestao/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, error) {
	query := db.Model(&entity.Patient{})

	if filter != nil {
		if filter.Ativo != nil {
			query = query.Where("ativo = ?", *filter.Ativo)
		}
		if filter.Arquivado != nil {
			query = query.Where("arquivado = ?", *filter.Arquivado)
		}
		if filter.FisioterapeutaID != nil {
			query = query.Where("fisioterapeuta_id = ?", *filter.FisioterapeutaID)
		}
		if filter.Nome != "" {
			query = query.Where("nome_completo ILIKE ?", "%"+filter.Nome+"%")
		}
	}

	var patients []entity.Patient
	if err := query.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}
