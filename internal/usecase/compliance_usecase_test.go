package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newComplianceUsecase(db *gorm.DB) ComplianceUsecase {
	return NewComplianceUsecase(
		db,
		newTestLogger(),
		repository.NewPatientRepository(),
		repository.NewAssessmentRepository(),
		repository.NewProgressNoteRepository(),
		repository.NewAppointmentRepository(),
		repository.NewAuditLogRepository(),
		newTestAudit(db),
	)
}

func TestUpdateConsent_ReplacesFlags(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	resp, err := uc.UpdateConsent(context.Background(), patient.ID, &dto.ConsentRequest{
		ConsentimentoComunicacao: boolPtr(true),
		VersaoTermos:             "2.1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Consentimento atualizado com sucesso", resp.Mensagem)

	var stored entity.Patient
	require.NoError(t, db.First(&stored, patient.ID).Error)
	assert.True(t, stored.ConsentimentoTratamentoDados)
	assert.True(t, stored.ConsentimentoComunicacao)
	assert.False(t, stored.ConsentimentoPesquisa)
	assert.Equal(t, "2.1", stored.VersaoTermos)

	assert.EqualValues(t, 1, countAuditEntries(t, db, entity.AuditActionConsentUpdated))
}

func TestUpdateConsent_AbsentFlagsResetToDefaults(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	_, err := uc.UpdateConsent(context.Background(), patient.ID, &dto.ConsentRequest{
		ConsentimentoComunicacao: boolPtr(true),
		ConsentimentoPesquisa:    boolPtr(true),
		VersaoTermos:             "2.1",
	})
	require.NoError(t, err)

	_, err = uc.UpdateConsent(context.Background(), patient.ID, &dto.ConsentRequest{})
	require.NoError(t, err)

	var stored entity.Patient
	require.NoError(t, db.First(&stored, patient.ID).Error)
	assert.True(t, stored.ConsentimentoTratamentoDados)
	assert.False(t, stored.ConsentimentoComunicacao)
	assert.False(t, stored.ConsentimentoPesquisa)
	assert.Equal(t, "1.0", stored.VersaoTermos)
	assert.NotNil(t, stored.DataConsentimento)
}

func TestUpdateConsent_ErasedPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)
	patient.Redact(time.Now(), "Solicitação do titular")
	require.NoError(t, db.Save(patient).Error)

	_, err := uc.UpdateConsent(context.Background(), patient.ID, &dto.ConsentRequest{
		ConsentimentoComunicacao: boolPtr(true),
	})
	assert.ErrorIs(t, err, ErrPatientErased)
}

func TestExportData_IncludesAllSectionsAndConsent(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	require.NoError(t, db.Create(&entity.Assessment{
		PacienteID:      patient.ID,
		QueixaPrincipal: "Dor cervical",
		DataAvaliacao:   time.Now(),
	}).Error)
	require.NoError(t, db.Create(&entity.ProgressNote{
		PacienteID:              patient.ID,
		DataSessao:              time.Now(),
		ProcedimentosRealizados: "Terapia manual",
	}).Error)

	_, err := uc.UpdateConsent(context.Background(), patient.ID, &dto.ConsentRequest{
		ConsentimentoPesquisa: boolPtr(true),
	})
	require.NoError(t, err)

	resp, err := uc.ExportData(context.Background(), patient.ID)
	require.NoError(t, err)

	assert.Equal(t, patient.ID, resp.PacienteID)
	assert.Equal(t, patient.NomeCompleto, resp.Dados.InformacoesPessoais.NomeCompleto)
	assert.True(t, resp.Dados.InformacoesPessoais.ConsentimentoTratamentoDados)
	assert.False(t, resp.Dados.InformacoesPessoais.ConsentimentoComunicacao)
	assert.True(t, resp.Dados.InformacoesPessoais.ConsentimentoPesquisa)
	assert.Len(t, resp.Dados.Avaliacoes, 1)
	assert.Len(t, resp.Dados.Evolucoes, 1)
	assert.Empty(t, resp.Dados.Agendamentos)

	assert.EqualValues(t, 1, countAuditEntries(t, db, entity.AuditActionDataExport))
}

func TestExportDataCSV_SectionedOutput(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	require.NoError(t, db.Create(&entity.Assessment{
		PacienteID:      patient.ID,
		QueixaPrincipal: "Dor cervical",
		DataAvaliacao:   time.Now(),
	}).Error)

	filename, content, err := uc.ExportDataCSV(context.Background(), patient.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "dados_paciente_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	assert.True(t, strings.HasPrefix(content, "INFORMACOES PESSOAIS"))
	assert.Contains(t, content, "AVALIACOES")
	assert.Contains(t, content, "EVOLUCOES")
	assert.Contains(t, content, "AGENDAMENTOS")
	assert.Contains(t, content, patient.NomeCompleto)
	assert.Contains(t, content, "Dor cervical")
}

func TestExportData_PatientNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)

	_, err := uc.ExportData(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestEraseData_BlockedByFutureAppointment(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	require.NoError(t, db.Create(&entity.Appointment{
		PacienteID:     patient.ID,
		DataHora:       time.Now().Add(48 * time.Hour),
		DuracaoMinutos: 60,
		Status:         entity.AppointmentStatusScheduled,
	}).Error)

	_, err := uc.EraseData(context.Background(), patient.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrErasureBlocked)

	var blocked *ErasureBlockedError
	require.ErrorAs(t, err, &blocked)
	require.Len(t, blocked.Impedimentos, 1)
	assert.Contains(t, blocked.Impedimentos[0], "agendamento(s) futuro(s)")

	// Nothing was mutated.
	var stored entity.Patient
	require.NoError(t, db.First(&stored, patient.ID).Error)
	assert.Equal(t, patient.NomeCompleto, stored.NomeCompleto)
	assert.Nil(t, stored.DataExclusaoLGPD)
	assert.Zero(t, countAuditEntries(t, db, entity.AuditActionDataErasure))
}

func TestEraseData_RedactsPatientAndNarratives(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	assessment := &entity.Assessment{
		PacienteID:      patient.ID,
		QueixaPrincipal: "Dor lombar crônica",
		DataAvaliacao:   time.Now(),
	}
	require.NoError(t, db.Create(assessment).Error)
	note := &entity.ProgressNote{
		PacienteID:              patient.ID,
		DataSessao:              time.Now(),
		ProcedimentosRealizados: "Cinesioterapia",
	}
	require.NoError(t, db.Create(note).Error)

	// A cancelled future appointment is not a hold.
	require.NoError(t, db.Create(&entity.Appointment{
		PacienteID:     patient.ID,
		DataHora:       time.Now().Add(48 * time.Hour),
		DuracaoMinutos: 60,
		Status:         entity.AppointmentStatusCancelled,
	}).Error)

	resp, err := uc.EraseData(context.Background(), patient.ID, &dto.ErasureRequest{Motivo: "Mudança de cidade"})
	require.NoError(t, err)

	assert.Equal(t, "Dados pessoais excluídos conforme LGPD", resp.Mensagem)
	assert.Equal(t, 3, resp.RegistrosAfetados)

	var stored entity.Patient
	require.NoError(t, db.First(&stored, patient.ID).Error)
	assert.Equal(t, entity.RedactionPlaceholder(patient.ID), stored.NomeCompleto)
	assert.Nil(t, stored.Email)
	assert.Nil(t, stored.Telefone)
	assert.Nil(t, stored.EnderecoResidencial)
	assert.False(t, stored.Ativo)
	assert.True(t, stored.Arquivado)
	require.NotNil(t, stored.MotivoExclusaoLGPD)
	assert.Equal(t, "Mudança de cidade", *stored.MotivoExclusaoLGPD)
	assert.NotNil(t, stored.DataExclusaoLGPD)

	var storedAssessment entity.Assessment
	require.NoError(t, db.First(&storedAssessment, assessment.ID).Error)
	assert.Equal(t, entity.RedactedMarker, storedAssessment.QueixaPrincipal)

	var storedNote entity.ProgressNote
	require.NoError(t, db.First(&storedNote, note.ID).Error)
	assert.Equal(t, entity.RedactedMarker, storedNote.ProcedimentosRealizados)

	// The ledger keeps the pre-redaction snapshot.
	var log entity.AuditLog
	require.NoError(t, db.Where("acao = ?", entity.AuditActionDataErasure).First(&log).Error)
	require.NotNil(t, log.DadosAnteriores)
	assert.Contains(t, *log.DadosAnteriores, "Carlos Pereira")
}

func TestEraseData_IsTerminal(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	_, err := uc.EraseData(context.Background(), patient.ID, nil)
	require.NoError(t, err)

	_, err = uc.EraseData(context.Background(), patient.ID, nil)
	assert.ErrorIs(t, err, ErrPatientErased)
}

func TestEraseData_DefaultMotivo(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	_, err := uc.EraseData(context.Background(), patient.ID, nil)
	require.NoError(t, err)

	var stored entity.Patient
	require.NoError(t, db.First(&stored, patient.ID).Error)
	require.NotNil(t, stored.MotivoExclusaoLGPD)
	assert.Equal(t, "Solicitação do titular", *stored.MotivoExclusaoLGPD)
}

func TestRectifyData_DiffAndLedger(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	resp, err := uc.RectifyData(context.Background(), patient.ID, &dto.RectifyRequest{
		NomeCompleto: strPtr("Carlos Pereira da Silva"),
		Email:        strPtr("carlos.silva@example.com"),
		Telefone:     strPtr("11 98888-7777"), // unchanged
	})
	require.NoError(t, err)

	assert.Equal(t, "Dados retificados com sucesso", resp.Mensagem)
	assert.ElementsMatch(t, []string{"nome_completo", "email"}, resp.CamposAlterados)

	change := resp.Alteracoes["email"]
	assert.Equal(t, "carlos@example.com", change.Anterior)
	assert.Equal(t, "carlos.silva@example.com", change.Novo)

	var stored entity.Patient
	require.NoError(t, db.First(&stored, patient.ID).Error)
	assert.Equal(t, "Carlos Pereira da Silva", stored.NomeCompleto)
	require.NotNil(t, stored.Email)
	assert.Equal(t, "carlos.silva@example.com", *stored.Email)

	assert.EqualValues(t, 1, countAuditEntries(t, db, entity.AuditActionDataRectification))
}

func TestRectifyData_NoChangesWritesNothing(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	resp, err := uc.RectifyData(context.Background(), patient.ID, &dto.RectifyRequest{
		Telefone: strPtr("11 98888-7777"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Nenhuma alteração detectada", resp.Mensagem)
	assert.Empty(t, resp.CamposAlterados)
	assert.Zero(t, countAuditEntries(t, db, entity.AuditActionDataRectification))
}

func TestRectifyData_ErasedPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)
	patient.Redact(time.Now(), "Solicitação do titular")
	require.NoError(t, db.Save(patient).Error)

	_, err := uc.RectifyData(context.Background(), patient.ID, &dto.RectifyRequest{
		NomeCompleto: strPtr("Outro Nome"),
	})
	assert.ErrorIs(t, err, ErrPatientErased)
}

func TestTreatmentReport_FixedDeclarationsAndTrail(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	// Generate ledger entries tied to the patient record.
	_, err := uc.UpdateConsent(context.Background(), patient.ID, &dto.ConsentRequest{
		ConsentimentoComunicacao: boolPtr(true),
	})
	require.NoError(t, err)
	_, err = uc.ExportData(context.Background(), patient.ID)
	require.NoError(t, err)

	report, err := uc.TreatmentReport(context.Background(), patient.ID)
	require.NoError(t, err)

	assert.Equal(t, patient.ID, report.PacienteID)
	assert.Equal(t, patient.NomeCompleto, report.NomePaciente)
	assert.NotEmpty(t, report.FinalidadesTratamento)
	assert.Contains(t, report.BaseLegal, "LGPD")
	assert.Contains(t, report.PrazoRetencao, "20 anos")
	assert.True(t, report.Consentimentos.ConsentimentoComunicacao)
	assert.Len(t, report.HistoricoAcessos, 2)

	assert.EqualValues(t, 1, countAuditEntries(t, db, entity.AuditActionTreatmentReport))
}

func TestTreatmentReport_CapsAuditTrail(t *testing.T) {
	db := newTestDB(t)
	uc := newComplianceUsecase(db)
	fisio := seedPractitioner(t, db, "helena@clinica.com", "senha-correta")
	patient := seedPatient(t, db, fisio.ID)

	tabela := entity.Patient{}.TableName()
	for i := 0; i < reportAuditCap+10; i++ {
		require.NoError(t, db.Create(&entity.AuditLog{
			Acao:       entity.AuditActionPersonalDataAccess,
			Tabela:     &tabela,
			RegistroID: &patient.ID,
			Sucesso:    true,
		}).Error)
	}

	report, err := uc.TreatmentReport(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Len(t, report.HistoricoAcessos, reportAuditCap)
}
