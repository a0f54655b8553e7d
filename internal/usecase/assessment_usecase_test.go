package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAssessmentUsecase(db *gorm.DB) AssessmentUsecase {
	return NewAssessmentUsecase(
		db,
		newTestLogger(),
		repository.NewAssessmentRepository(),
		repository.NewPatientRepository(),
	)
}

func TestCreateAssessment_StoresNarrativeAndCIF(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	resp, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{
		PacienteID:      patient.ID,
		DataAvaliacao:   "2026-08-15",
		QueixaPrincipal: "Dor no ombro direito",
		FuncoesCorpo:    json.RawMessage(`{"b280": {"qualificador": 2}}`),
	})
	require.NoError(t, err)

	assert.Equal(t, patient.ID, resp.PacienteID)
	assert.Equal(t, "Dor no ombro direito", resp.QueixaPrincipal)
	assert.JSONEq(t, `{"b280": {"qualificador": 2}}`, string(resp.FuncoesCorpo))
	// Omitted blocks come back as JSON null.
	assert.Equal(t, "null", string(resp.EstruturasCorpo))
}

func TestCreateAssessment_MalformedCIFBlock(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	_, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{
		PacienteID:   patient.ID,
		FuncoesCorpo: json.RawMessage(`{"b280": `),
	})
	assert.ErrorIs(t, err, ErrInvalidJSONBlock)
}

func TestCreateAssessment_PatientNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)

	_, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{
		PacienteID: 404,
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreateAssessment_ErasedPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)
	patient.Redact(time.Now(), "Solicitação do titular")
	require.NoError(t, db.Save(patient).Error)

	_, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{
		PacienteID: patient.ID,
	})
	assert.ErrorIs(t, err, ErrPatientErased)
}

func TestUpdateAssessment_KeepsCIFWhenOmitted(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	created, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{
		PacienteID:      patient.ID,
		QueixaPrincipal: "Dor no ombro direito",
		FuncoesCorpo:    json.RawMessage(`{"b280": {"qualificador": 2}}`),
	})
	require.NoError(t, err)

	resp, err := uc.Update(context.Background(), created.ID, &dto.UpdateAssessmentRequest{
		QueixaPrincipal: strPtr("Dor irradiando para o braço"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dor irradiando para o braço", resp.QueixaPrincipal)
	assert.JSONEq(t, `{"b280": {"qualificador": 2}}`, string(resp.FuncoesCorpo))
}

func TestListAssessments_FiltersByPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patientA := seedPatient(t, db, fisio.ID)
	patientB := seedPatient(t, db, fisio.ID)

	for _, pid := range []int64{patientA.ID, patientA.ID, patientB.ID} {
		_, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{PacienteID: pid})
		require.NoError(t, err)
	}

	all, err := uc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyA, err := uc.List(context.Background(), &patientA.ID)
	require.NoError(t, err)
	assert.Len(t, onlyA, 2)
}

func TestAddAndRemoveAttachment(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	created, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{PacienteID: patient.ID})
	require.NoError(t, err)

	attachment, err := uc.AddAttachment(context.Background(), created.ID, &dto.CreateAttachmentRequest{
		NomeArquivo:  "raio-x-ombro.png",
		TipoArquivo:  "image/png",
		TamanhoBytes: int64Ptr(204800),
		Categoria:    "exame_imagem",
	})
	require.NoError(t, err)
	assert.Equal(t, "raio-x-ombro.png", attachment.NomeArquivo)

	require.NoError(t, uc.RemoveAttachment(context.Background(), created.ID, attachment.ID))

	err = uc.RemoveAttachment(context.Background(), created.ID, attachment.ID)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestRemoveAttachment_ScopedToAssessment(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	first, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{PacienteID: patient.ID})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{PacienteID: patient.ID})
	require.NoError(t, err)

	attachment, err := uc.AddAttachment(context.Background(), first.ID, &dto.CreateAttachmentRequest{
		NomeArquivo: "laudo.pdf",
	})
	require.NoError(t, err)

	// The attachment belongs to the first assessment only.
	err = uc.RemoveAttachment(context.Background(), second.ID, attachment.ID)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestDeleteAssessment_CascadesAttachments(t *testing.T) {
	db := newTestDB(t)
	uc := newAssessmentUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	created, err := uc.Create(context.Background(), &dto.CreateAssessmentRequest{PacienteID: patient.ID})
	require.NoError(t, err)
	_, err = uc.AddAttachment(context.Background(), created.ID, &dto.CreateAttachmentRequest{
		NomeArquivo: "laudo.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, err = uc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.AssessmentAttachment{}).Where("avaliacao_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}
