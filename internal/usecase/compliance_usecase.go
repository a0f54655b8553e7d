package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"fisiogestao/internal/converter"
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/domain/repository"
	"fisiogestao/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErasureBlockedError reports the legal holds preventing an erasure request.
// No data is mutated when it is returned.
type ErasureBlockedError struct {
	Impedimentos []string
}

func (e *ErasureBlockedError) Error() string {
	return ErrErasureBlocked.Error()
}

func (e *ErasureBlockedError) Unwrap() error {
	return ErrErasureBlocked
}

// Fixed LGPD declarations included in every treatment report.
var (
	treatmentPurposes = []string{
		"Prestação de serviços de fisioterapia",
		"Acompanhamento da evolução clínica",
		"Agendamento e lembrete de consultas",
		"Cumprimento de obrigações legais e regulatórias (COFFITO)",
	}
	legalBasis     = "Art. 7º, II e Art. 11, II, 'a' da LGPD - tutela da saúde"
	retentionTerm  = "Prontuários mantidos por no mínimo 20 anos (Resolução COFFITO)"
	reportAuditCap = 50
)

type ComplianceUsecase interface {
	UpdateConsent(ctx context.Context, patientID int64, req *dto.ConsentRequest) (*dto.ConsentResponse, error)
	ExportData(ctx context.Context, patientID int64) (*dto.ExportResponse, error)
	ExportDataCSV(ctx context.Context, patientID int64) (filename, content string, err error)
	EraseData(ctx context.Context, patientID int64, req *dto.ErasureRequest) (*dto.ErasureResponse, error)
	RectifyData(ctx context.Context, patientID int64, req *dto.RectifyRequest) (*dto.RectifyResponse, error)
	TreatmentReport(ctx context.Context, patientID int64) (*dto.TreatmentReportResponse, error)
}

type complianceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	assessmentRepo  repository.AssessmentRepository
	noteRepo        repository.ProgressNoteRepository
	appointmentRepo repository.AppointmentRepository
	auditRepo       repository.AuditLogRepository
	audit           service.AuditService
}

func NewComplianceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	assessmentRepo repository.AssessmentRepository,
	noteRepo repository.ProgressNoteRepository,
	appointmentRepo repository.AppointmentRepository,
	auditRepo repository.AuditLogRepository,
	audit service.AuditService,
) ComplianceUsecase {
	return &complianceUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		assessmentRepo:  assessmentRepo,
		noteRepo:        noteRepo,
		appointmentRepo: appointmentRepo,
		auditRepo:       auditRepo,
		audit:           audit,
	}
}

func (u *complianceUsecase) UpdateConsent(ctx context.Context, patientID int64, req *dto.ConsentRequest) (*dto.ConsentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, patientID)
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

	// O registro de consentimento substitui o estado anterior por inteiro;
	// campos ausentes voltam aos valores padrão do termo.
	patient.ConsentimentoTratamentoDados = true
	patient.ConsentimentoComunicacao = false
	patient.ConsentimentoPesquisa = false
	patient.VersaoTermos = "1.0"
	if req.ConsentimentoTratamentoDados != nil {
		patient.ConsentimentoTratamentoDados = *req.ConsentimentoTratamentoDados
	}
	if req.ConsentimentoComunicacao != nil {
		patient.ConsentimentoComunicacao = *req.ConsentimentoComunicacao
	}
	if req.ConsentimentoPesquisa != nil {
		patient.ConsentimentoPesquisa = *req.ConsentimentoPesquisa
	}
	if req.VersaoTermos != "" {
		patient.VersaoTermos = req.VersaoTermos
	}
	now := time.Now()
	patient.DataConsentimento = &now

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update consent: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, tx, service.Entry{
		Action:   entity.AuditActionConsentUpdated,
		Table:    entity.Patient{}.TableName(),
		RecordID: &patient.ID,
		After:    converter.PatientToConsentState(patient),
		Success:  true,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.ConsentResponse{
		Mensagem:          "Consentimento atualizado com sucesso",
		DataConsentimento: now.Format(time.RFC3339),
	}, nil
}

// assembleExport loads everything the portability right covers.
func (u *complianceUsecase) assembleExport(db *gorm.DB, patientID int64) (*dto.ExportData, *entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, ErrPatientNotFound
	}

	assessments, err := u.assessmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to load assessments: %+v", err)
		return nil, nil, err
	}
	notes, err := u.noteRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to load progress notes: %+v", err)
		return nil, nil, err
	}
	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, nil, err
	}

	return &dto.ExportData{
		InformacoesPessoais: *converter.PatientToResponse(patient),
		Avaliacoes:          converter.AssessmentsToResponses(assessments),
		Evolucoes:           converter.ProgressNotesToResponses(notes),
		Agendamentos:        converter.AppointmentsToResponses(appointments),
	}, patient, nil
}

func (u *complianceUsecase) ExportData(ctx context.Context, patientID int64) (*dto.ExportResponse, error) {
	data, patient, err := u.assembleExport(u.db.WithContext(ctx), patientID)
	if err != nil {
		return nil, err
	}

	u.audit.LogDataExport(ctx, nil, patient.ID, "json")

	return &dto.ExportResponse{
		PacienteID:     patient.ID,
		DataExportacao: time.Now().Format(time.RFC3339),
		Dados:          *data,
	}, nil
}

func (u *complianceUsecase) ExportDataCSV(ctx context.Context, patientID int64) (string, string, error) {
	data, patient, err := u.assembleExport(u.db.WithContext(ctx), patientID)
	if err != nil {
		return "", "", err
	}

	u.audit.LogDataExport(ctx, nil, patient.ID, "csv")

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	w.Write([]string{"INFORMACOES PESSOAIS"})
	w.Write([]string{"campo", "valor"})
	info := data.InformacoesPessoais
	w.Write([]string{"nome_completo", info.NomeCompleto})
	w.Write([]string{"data_nascimento", info.DataNascimento})
	w.Write([]string{"genero", deref(info.Genero)})
	w.Write([]string{"estado_civil", deref(info.EstadoCivil)})
	w.Write([]string{"profissao", deref(info.Profissao)})
	w.Write([]string{"telefone", deref(info.Telefone)})
	w.Write([]string{"email", deref(info.Email)})
	w.Write([]string{"endereco_residencial", deref(info.EnderecoResidencial)})
	w.Write([]string{"endereco_comercial", deref(info.EnderecoComercial)})
	w.Write([]string{})

	w.Write([]string{"AVALIACOES"})
	w.Write([]string{"id", "data_avaliacao", "queixa_principal", "diagnostico_fisioterapeutico"})
	for _, a := range data.Avaliacoes {
		w.Write([]string{
			fmt.Sprintf("%d", a.ID),
			a.DataAvaliacao,
			a.QueixaPrincipal,
			a.DiagnosticoFisioterapeutico,
		})
	}
	w.Write([]string{})

	w.Write([]string{"EVOLUCOES"})
	w.Write([]string{"id", "data_sessao", "procedimentos_realizados", "observacoes"})
	for _, n := range data.Evolucoes {
		w.Write([]string{
			fmt.Sprintf("%d", n.ID),
			n.DataSessao,
			n.ProcedimentosRealizados,
			n.Observacoes,
		})
	}
	w.Write([]string{})

	w.Write([]string{"AGENDAMENTOS"})
	w.Write([]string{"id", "data_hora", "duracao_minutos", "status"})
	for _, a := range data.Agendamentos {
		w.Write([]string{
			fmt.Sprintf("%d", a.ID),
			a.DataHora,
			fmt.Sprintf("%d", a.DuracaoMinutos),
			a.Status,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		u.log.Warnf("Failed to render CSV export: %+v", err)
		return "", "", err
	}

	filename := fmt.Sprintf("dados_paciente_%d_%s.csv", patient.ID, time.Now().Format("20060102_150405"))
	return filename, sb.String(), nil
}

func (u *complianceUsecase) EraseData(ctx context.Context, patientID int64, req *dto.ErasureRequest) (*dto.ErasureResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, patientID)
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

	now := time.Now()
	futureCount, err := u.appointmentRepo.CountFutureActive(tx, patientID, now)
	if err != nil {
		u.log.Warnf("Failed to check future appointments: %+v", err)
		return nil, err
	}
	if futureCount > 0 {
		return nil, &ErasureBlockedError{
			Impedimentos: []string{
				fmt.Sprintf("Paciente possui %d agendamento(s) futuro(s) não cancelado(s)", futureCount),
			},
		}
	}

	motivo := "Solicitação do titular"
	if req != nil && req.Motivo != "" {
		motivo = req.Motivo
	}

	// Full snapshot goes to the ledger before anything is overwritten.
	u.audit.LogDataErasure(ctx, tx, patient.ID, motivo, converter.PatientToResponse(patient))

	patient.Redact(now, motivo)
	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to redact patient: %+v", err)
		return nil, err
	}
	registros := 1

	assessments, err := u.assessmentRepo.FindByPatientID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to load assessments: %+v", err)
		return nil, err
	}
	for i := range assessments {
		assessments[i].RedactNarrative()
		if err := u.assessmentRepo.Update(tx, &assessments[i]); err != nil {
			u.log.Warnf("Failed to redact assessment %d: %+v", assessments[i].ID, err)
			return nil, err
		}
		registros++
	}

	notes, err := u.noteRepo.FindByPatientID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to load progress notes: %+v", err)
		return nil, err
	}
	for i := range notes {
		notes[i].RedactNarrative()
		if err := u.noteRepo.Update(tx, &notes[i]); err != nil {
			u.log.Warnf("Failed to redact progress note %d: %+v", notes[i].ID, err)
			return nil, err
		}
		registros++
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.ErasureResponse{
		Mensagem:          "Dados pessoais excluídos conforme LGPD",
		PacienteID:        patient.ID,
		DataExclusao:      now.Format(time.RFC3339),
		RegistrosAfetados: registros,
	}, nil
}

func (u *complianceUsecase) RectifyData(ctx context.Context, patientID int64, req *dto.RectifyRequest) (*dto.RectifyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, patientID)
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

	alteracoes := map[string]dto.FieldChange{}

	if req.NomeCompleto != nil && *req.NomeCompleto != patient.NomeCompleto {
		alteracoes["nome_completo"] = dto.FieldChange{Anterior: patient.NomeCompleto, Novo: *req.NomeCompleto}
		patient.NomeCompleto = *req.NomeCompleto
	}

	rectifyPtr := func(field string, current **string, novo *string) {
		if novo == nil {
			return
		}
		if *current != nil && **current == *novo {
			return
		}
		var anterior interface{}
		if *current != nil {
			anterior = **current
		}
		alteracoes[field] = dto.FieldChange{Anterior: anterior, Novo: *novo}
		*current = novo
	}

	rectifyPtr("email", &patient.Email, req.Email)
	rectifyPtr("telefone", &patient.Telefone, req.Telefone)
	rectifyPtr("endereco_residencial", &patient.EnderecoResidencial, req.EnderecoResidencial)
	rectifyPtr("endereco_comercial", &patient.EnderecoComercial, req.EnderecoComercial)
	rectifyPtr("profissao", &patient.Profissao, req.Profissao)
	rectifyPtr("estado_civil", &patient.EstadoCivil, req.EstadoCivil)

	if len(alteracoes) == 0 {
		// Nothing changed: no write, no ledger entry.
		return &dto.RectifyResponse{
			Mensagem:        "Nenhuma alteração detectada",
			CamposAlterados: []string{},
			Alteracoes:      alteracoes,
			DataAtualizacao: patient.DataAtualizacao.Format(time.RFC3339),
		}, nil
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to rectify patient: %+v", err)
		return nil, err
	}

	campos := make([]string, 0, len(alteracoes))
	before := map[string]interface{}{}
	after := map[string]interface{}{}
	for campo, change := range alteracoes {
		campos = append(campos, campo)
		before[campo] = change.Anterior
		after[campo] = change.Novo
	}

	u.audit.Record(ctx, tx, service.Entry{
		Action:   entity.AuditActionDataRectification,
		Table:    entity.Patient{}.TableName(),
		RecordID: &patient.ID,
		Before:   before,
		After:    after,
		Success:  true,
		Note:     fmt.Sprintf("Campos retificados: %s", strings.Join(campos, ", ")),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RectifyResponse{
		Mensagem:        "Dados retificados com sucesso",
		CamposAlterados: campos,
		Alteracoes:      alteracoes,
		DataAtualizacao: patient.DataAtualizacao.Format(time.RFC3339),
	}, nil
}

func (u *complianceUsecase) TreatmentReport(ctx context.Context, patientID int64) (*dto.TreatmentReportResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	logs, err := u.auditRepo.FindByRecord(db, entity.Patient{}.TableName(), patientID, reportAuditCap)
	if err != nil {
		u.log.Warnf("Failed to load audit trail: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, nil, service.Entry{
		Action:   entity.AuditActionTreatmentReport,
		Table:    entity.Patient{}.TableName(),
		RecordID: &patient.ID,
		Success:  true,
	})

	return &dto.TreatmentReportResponse{
		PacienteID:            patient.ID,
		NomePaciente:          patient.NomeCompleto,
		DataRelatorio:         time.Now().Format(time.RFC3339),
		Consentimentos:        converter.PatientToConsentState(patient),
		FinalidadesTratamento: treatmentPurposes,
		BaseLegal:             legalBasis,
		PrazoRetencao:         retentionTerm,
		HistoricoAcessos:      converter.AuditLogsToResponses(logs),
	}, nil
}
