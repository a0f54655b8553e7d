package repository

import (
	"time"

	"fisiogestao/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error

	// FindConflicting returns a non-cancelled appointment occupying the exact
	// timestamp, excluding excludeID when > 0.
	FindConflicting(db *gorm.DB, dataHora time.Time, excludeID int64) (*entity.Appointment, error)

	// CountFutureActive counts non-cancelled appointments after now for the
	// patient; used as the legal-hold check before erasure.
	CountFutureActive(db *gorm.DB, patientID int64, now time.Time) (int64, error)

	// FindPendingReminders returns non-cancelled appointments in [start, end)
	// whose reminder has not been sent.
	FindPendingReminders(db *gorm.DB, start, end time.Time) ([]entity.Appointment, error)
}
