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

func newPatientUsecase(db *gorm.DB) PatientUsecase {
	return NewPatientUsecase(
		db,
		newTestLogger(),
		repository.NewPatientRepository(),
		repository.NewAssessmentRepository(),
		repository.NewProgressNoteRepository(),
		repository.NewAppointmentRepository(),
		newTestAudit(db),
	)
}

func TestCreatePatient_AppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")

	resp, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		NomeCompleto:     "Maria Oliveira",
		DataNascimento:   "1990-07-21",
		FisioterapeutaID: fisio.ID,
		Telefone:         strPtr("11 97777-6666"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Oliveira", resp.NomeCompleto)
	assert.Equal(t, "1990-07-21", resp.DataNascimento)
	assert.True(t, resp.Ativo)
	assert.False(t, resp.Arquivado)
	assert.True(t, resp.ConsentimentoTratamentoDados)
	assert.False(t, resp.ConsentimentoComunicacao)
	assert.Equal(t, "1.0", resp.VersaoTermos)
	assert.NotNil(t, resp.DataConsentimento)
}

func TestCreatePatient_InvalidBirthDate(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")

	_, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		NomeCompleto:     "Maria Oliveira",
		DataNascimento:   "21/07/1990",
		FisioterapeutaID: fisio.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestGetPatient_RecordsAccessInLedger(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	resp, err := uc.Get(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.NomeCompleto, resp.NomeCompleto)

	assert.EqualValues(t, 1, countAuditEntries(t, db, entity.AuditActionPersonalDataAccess))
}

func TestGetPatient_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)

	_, err := uc.Get(context.Background(), 77)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdatePatient_PartialMerge(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	resp, err := uc.Update(context.Background(), patient.ID, &dto.UpdatePatientRequest{
		Telefone: strPtr("11 91111-2222"),
	})
	require.NoError(t, err)

	// Untouched fields keep their values.
	assert.Equal(t, patient.NomeCompleto, resp.NomeCompleto)
	require.NotNil(t, resp.Telefone)
	assert.Equal(t, "11 91111-2222", *resp.Telefone)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "carlos@example.com", *resp.Email)
}

func TestUpdatePatient_ErasedIsImmutable(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	now := time.Now()
	patient.Redact(now, "Solicitação do titular")
	require.NoError(t, db.Save(patient).Error)

	_, err := uc.Update(context.Background(), patient.ID, &dto.UpdatePatientRequest{
		NomeCompleto: strPtr("Novo Nome"),
	})
	assert.ErrorIs(t, err, ErrPatientErased)
}

func TestDeletePatient_FlipsAtivoAndKeepsRecord(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	require.NoError(t, uc.Delete(context.Background(), patient.ID))

	var stored entity.Patient
	require.NoError(t, db.First(&stored, patient.ID).Error)
	assert.False(t, stored.Ativo)
	assert.False(t, stored.Arquivado)
	assert.Equal(t, patient.NomeCompleto, stored.NomeCompleto)
	assert.Equal(t, patient.Telefone, stored.Telefone)
}

func TestDeletePatient_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)

	err := uc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestArchivePatient_DefaultsToArchive(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	resp, err := uc.Archive(context.Background(), patient.ID, &dto.ArchivePatientRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Arquivado)

	resp, err = uc.Archive(context.Background(), patient.ID, &dto.ArchivePatientRequest{Arquivar: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, resp.Arquivado)
}

func TestArchivePatient_ErasedCannotBeUnarchived(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	patient.Redact(time.Now(), "Solicitação do titular")
	require.NoError(t, db.Save(patient).Error)

	_, err := uc.Archive(context.Background(), patient.ID, &dto.ArchivePatientRequest{Arquivar: boolPtr(false)})
	assert.ErrorIs(t, err, ErrPatientErased)
}

func TestMedicalRecord_AssemblesAllSections(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	require.NoError(t, db.Create(&entity.Assessment{
		PacienteID:      patient.ID,
		QueixaPrincipal: "Dor lombar",
		DataAvaliacao:   time.Now(),
	}).Error)
	require.NoError(t, db.Create(&entity.ProgressNote{
		PacienteID:              patient.ID,
		DataSessao:              time.Now(),
		ProcedimentosRealizados: "Alongamento",
	}).Error)
	require.NoError(t, db.Create(&entity.Appointment{
		PacienteID:     patient.ID,
		DataHora:       time.Now().Add(48 * time.Hour),
		DuracaoMinutos: 60,
		Status:         entity.AppointmentStatusScheduled,
	}).Error)

	record, err := uc.MedicalRecord(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.NomeCompleto, record.Paciente.NomeCompleto)
	assert.Len(t, record.Avaliacoes, 1)
	assert.Len(t, record.Evolucoes, 1)
	assert.Len(t, record.Agendamentos, 1)

	assert.EqualValues(t, 1, countAuditEntries(t, db, entity.AuditActionPersonalDataAccess))
}
