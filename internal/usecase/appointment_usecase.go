package usecase

import (
	"context"
	"time"

	"fisiogestao/internal/converter"
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultAppointmentMinutes = 60

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id int64) error
	Calendar(ctx context.Context, start, end time.Time) ([]dto.CalendarEvent, error)
	DispatchReminders(ctx context.Context) (*dto.RemindersDispatchedResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	dataHora, err := time.Parse(time.RFC3339, req.DataHora)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PacienteID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.IsErased() {
		return nil, ErrPatientErased
	}

	conflict, err := u.appointmentRepo.FindConflicting(tx, dataHora, 0)
	if err != nil {
		u.log.Warnf("Failed to check slot conflict: %+v", err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrSlotConflict
	}

	duracao := defaultAppointmentMinutes
	if req.DuracaoMinutos != nil {
		duracao = *req.DuracaoMinutos
	}

	appointment := &entity.Appointment{
		PacienteID:     req.PacienteID,
		DataHora:       dataHora,
		DuracaoMinutos: duracao,
		Status:         entity.AppointmentStatusScheduled,
	}
	if req.Observacoes != nil {
		appointment.Observacoes = *req.Observacoes
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Paciente = patient
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.DataHora != nil {
		dataHora, err := time.Parse(time.RFC3339, *req.DataHora)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointment.DataHora = dataHora
	}
	if req.DuracaoMinutos != nil {
		appointment.DuracaoMinutos = *req.DuracaoMinutos
	}
	if req.Status != nil {
		if !entity.ValidAppointmentStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Observacoes != nil {
		appointment.Observacoes = *req.Observacoes
	}

	// Re-check the slot unless the update cancels the appointment; the own
	// record is excluded from the scan.
	if !appointment.IsCancelled() {
		conflict, err := u.appointmentRepo.FindConflicting(tx, appointment.DataHora, appointment.ID)
		if err != nil {
			u.log.Warnf("Failed to check slot conflict: %+v", err)
			return nil, err
		}
		if conflict != nil {
			return nil, ErrSlotConflict
		}
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Cancel implements delete-as-cancel: the row stays for the clinical record
// and the ledger, the slot is freed.
func (u *appointmentUsecase) Cancel(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}

	return tx.Commit().Error
}

func (u *appointmentUsecase) Calendar(ctx context.Context, start, end time.Time) ([]dto.CalendarEvent, error) {
	filter := &entity.AppointmentFilter{
		DataInicio: &start,
		DataFim:    &end,
	}
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to load calendar window: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToCalendarEvents(appointments), nil
}

// DispatchReminders marks tomorrow's unreminded non-cancelled appointments
// as reminded and reports the contact list for the notification channel.
func (u *appointmentUsecase) DispatchReminders(ctx context.Context) (*dto.RemindersDispatchedResponse, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pending, err := u.appointmentRepo.FindPendingReminders(tx, start, end)
	if err != nil {
		u.log.Warnf("Failed to load pending reminders: %+v", err)
		return nil, err
	}

	reminders := make([]dto.ReminderResponse, 0, len(pending))
	for i := range pending {
		appointment := &pending[i]
		appointment.LembreteEnviado = true
		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to mark reminder sent: %+v", err)
			return nil, err
		}
		reminders = append(reminders, converter.AppointmentToReminder(appointment))
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RemindersDispatchedResponse{
		Mensagem:  "Lembretes processados",
		Enviados:  len(reminders),
		Lembretes: reminders,
	}, nil
}
