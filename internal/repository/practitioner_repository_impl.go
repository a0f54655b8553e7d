package repository

import (
	"errors"

	"fisiogestao/internal/domain/entity"
	domainRepo "fisiogestao/internal/domain/repository"

	"gorm.io/gorm"
)

type practitionerRepository struct{}

func NewPractitionerRepository() domainRepo.PractitionerRepository {
	return &practitionerRepository{}
}

func (r *practitionerRepository) Create(db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.Create(practitioner).Error
}

func (r *practitionerRepository) FindByID(db *gorm.DB, id int64) (*entity.Practitioner, error) {
	var practitioner entity.Practitioner
	err := db.Where("id = ?", id).First(&practitioner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practitioner, nil
}

func (r *practitionerRepository) FindByEmail(db *gorm.DB, email string) (*entity.Practitioner, error) {
	var practitioner entity.Practitioner
	err := db.Where("email = ?", email).First(&practitioner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practitioner, nil
}

func (r *practitionerRepository) Update(db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.Save(practitioner).Error
}
