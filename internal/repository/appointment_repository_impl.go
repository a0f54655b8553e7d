package repository

import (
	"errors"
	"time"

	"fisiogestao/internal/domain/entity"
	domainRepo "fisiogestao/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Paciente").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("paciente_id = ?", patientID).
		Order("data_hora").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Model(&entity.Appointment{}).Preload("Paciente")

	if filter != nil {
		if filter.PacienteID != nil {
			query = query.Where("paciente_id = ?", *filter.PacienteID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.DataInicio != nil {
			query = query.Where("data_hora >= ?", *filter.DataInicio)
		}
		if filter.DataFim != nil {
			query = query.Where("data_hora <= ?", *filter.DataFim)
		}
	}

	var appointments []entity.Appointment
	if err := query.Order("data_hora").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Paciente").Save(appointment).Error
}

func (r *appointmentRepository) FindConflicting(db *gorm.DB, dataHora time.Time, excludeID int64) (*entity.Appointment, error) {
	query := db.Where("data_hora = ? AND status <> ?", dataHora, entity.AppointmentStatusCancelled)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var appointment entity.Appointment
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) CountFutureActive(db *gorm.DB, patientID int64, now time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("paciente_id = ? AND data_hora > ? AND status <> ?",
			patientID, now, entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindPendingReminders(db *gorm.DB, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Paciente").
		Where("data_hora >= ? AND data_hora < ? AND status <> ? AND lembrete_enviado = ?",
			start, end, entity.AppointmentStatusCancelled, false).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
