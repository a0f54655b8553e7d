package repository

import (
	"fisiogestao/internal/domain/entity"

	"gorm.io/gorm"
)

type PractitionerRepository interface {
	Create(db *gorm.DB, practitioner *entity.Practitioner) error
	FindByID(db *gorm.DB, id int64) (*entity.Practitioner, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Practitioner, error)
	Update(db *gorm.DB, practitioner *entity.Practitioner) error
}
