package usecase

import (
	"context"
	"testing"
	"time"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecase(db *gorm.DB) AppointmentUsecase {
	return NewAppointmentUsecase(
		db,
		newTestLogger(),
		repository.NewAppointmentRepository(),
		repository.NewPatientRepository(),
	)
}

func TestCreateAppointment_Defaults(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	slot := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   slot.Format(time.RFC3339),
	})
	require.NoError(t, err)

	assert.Equal(t, defaultAppointmentMinutes, resp.DuracaoMinutos)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
	assert.False(t, resp.LembreteEnviado)
	assert.Equal(t, patient.NomeCompleto, resp.PacienteNome)
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)
	other := seedPatient(t, db, fisio.ID)

	slot := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   slot.Format(time.RFC3339),
	})
	require.NoError(t, err)

	// Same timestamp, any patient.
	_, err = uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: other.ID,
		DataHora:   slot.Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateAppointment_CancelledSlotIsFree(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	slot := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	first, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   slot.Format(time.RFC3339),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(context.Background(), first.ID))

	// The cancelled row stays but no longer blocks the slot.
	var cancelled entity.Appointment
	require.NoError(t, db.First(&cancelled, first.ID).Error)
	assert.Equal(t, entity.AppointmentStatusCancelled, cancelled.Status)

	_, err = uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   slot.Format(time.RFC3339),
	})
	assert.NoError(t, err)
}

func TestCreateAppointment_InvalidTime(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: 1,
		DataHora:   "amanhã às 10h",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestCreateAppointment_ErasedPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)
	patient.Redact(time.Now(), "Solicitação do titular")
	require.NoError(t, db.Save(patient).Error)

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   time.Now().Add(72 * time.Hour).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, ErrPatientErased)
}

func TestUpdateAppointment_RejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	created, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   time.Now().Add(72 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, &dto.UpdateAppointmentRequest{
		Status: strPtr("adiado"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateAppointment_MoveIntoOccupiedSlot(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	slotA := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	slotB := slotA.Add(2 * time.Hour)

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   slotA.Format(time.RFC3339),
	})
	require.NoError(t, err)

	second, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   slotB.Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), second.ID, &dto.UpdateAppointmentRequest{
		DataHora: strPtr(slotA.Format(time.RFC3339)),
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestUpdateAppointment_OwnSlotIsNotAConflict(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	slot := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	created, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PacienteID: patient.ID,
		DataHora:   slot.Format(time.RFC3339),
	})
	require.NoError(t, err)

	resp, err := uc.Update(context.Background(), created.ID, &dto.UpdateAppointmentRequest{
		Status: strPtr(string(entity.AppointmentStatusConfirmed)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	err := uc.Cancel(context.Background(), 123)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCalendar_ReturnsWindowEvents(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	inside := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	outside := inside.AddDate(0, 1, 0)

	for _, slot := range []time.Time{inside, outside} {
		_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
			PacienteID:     patient.ID,
			DataHora:       slot.Format(time.RFC3339),
			DuracaoMinutos: intPtr(30),
		})
		require.NoError(t, err)
	}

	events, err := uc.Calendar(context.Background(), inside.Add(-time.Hour), inside.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, patient.NomeCompleto, events[0].Title)

	start, err := time.Parse(time.RFC3339, events[0].Start)
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, events[0].End)
	require.NoError(t, err)
	assert.True(t, start.Equal(inside))
	assert.True(t, end.Equal(inside.Add(30*time.Minute)))
}

func TestDispatchReminders_MarksTomorrowOnly(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	nextWeek := tomorrow.AddDate(0, 0, 7)

	tomorrowAppt := &entity.Appointment{
		PacienteID:     patient.ID,
		DataHora:       tomorrow,
		DuracaoMinutos: 60,
		Status:         entity.AppointmentStatusScheduled,
	}
	require.NoError(t, db.Create(tomorrowAppt).Error)
	require.NoError(t, db.Create(&entity.Appointment{
		PacienteID:     patient.ID,
		DataHora:       nextWeek,
		DuracaoMinutos: 60,
		Status:         entity.AppointmentStatusScheduled,
	}).Error)
	require.NoError(t, db.Create(&entity.Appointment{
		PacienteID:     patient.ID,
		DataHora:       tomorrow.Add(2 * time.Hour),
		DuracaoMinutos: 60,
		Status:         entity.AppointmentStatusCancelled,
	}).Error)

	resp, err := uc.DispatchReminders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Lembretes processados", resp.Mensagem)
	assert.Equal(t, 1, resp.Enviados)
	require.Len(t, resp.Lembretes, 1)
	assert.Equal(t, tomorrowAppt.ID, resp.Lembretes[0].AgendamentoID)
	assert.Equal(t, patient.NomeCompleto, resp.Lembretes[0].PacienteNome)
	require.NotNil(t, resp.Lembretes[0].Telefone)
	assert.Equal(t, "11 98888-7777", *resp.Lembretes[0].Telefone)

	var stored entity.Appointment
	require.NoError(t, db.First(&stored, tomorrowAppt.ID).Error)
	assert.True(t, stored.LembreteEnviado)

	// A second run finds nothing pending.
	resp, err = uc.DispatchReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Enviados)
}
