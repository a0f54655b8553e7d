package usecase

import (
	"context"
	"encoding/json"
	"time"

	"fisiogestao/internal/converter"
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AssessmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	List(ctx context.Context, patientID *int64) ([]dto.AssessmentResponse, error)
	Get(ctx context.Context, id int64) (*dto.AssessmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAssessmentRequest) (*dto.AssessmentResponse, error)
	Delete(ctx context.Context, id int64) error

	AddAttachment(ctx context.Context, assessmentID int64, req *dto.CreateAttachmentRequest) (*dto.AttachmentResponse, error)
	RemoveAttachment(ctx context.Context, assessmentID, attachmentID int64) error
}

type assessmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	assessmentRepo repository.AssessmentRepository
	patientRepo    repository.PatientRepository
}

func NewAssessmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	assessmentRepo repository.AssessmentRepository,
	patientRepo repository.PatientRepository,
) AssessmentUsecase {
	return &assessmentUsecase{
		db:             db,
		log:            log,
		assessmentRepo: assessmentRepo,
		patientRepo:    patientRepo,
	}
}

// cifBlock validates a CIF document for well-formedness and returns it as
// stored text. Empty input stays empty.
func cifBlock(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	if !json.Valid(raw) {
		return "", ErrInvalidJSONBlock
	}
	return string(raw), nil
}

func (u *assessmentUsecase) Create(ctx context.Context, req *dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
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

	dataAvaliacao := time.Now()
	if req.DataAvaliacao != "" {
		dataAvaliacao, err = time.Parse(time.RFC3339, req.DataAvaliacao)
		if err != nil {
			if dataAvaliacao, err = time.Parse("2006-01-02", req.DataAvaliacao); err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
	}

	assessment := &entity.Assessment{
		PacienteID:    req.PacienteID,
		DataAvaliacao: dataAvaliacao,

		QueixaPrincipal:         req.QueixaPrincipal,
		HabitosVida:             req.HabitosVida,
		HistoriaAtualDoenca:     req.HistoriaAtualDoenca,
		HistoriaPregressaDoenca: req.HistoriaPregressaDoenca,
		AntecedentesPessoais:    req.AntecedentesPessoais,
		AntecedentesFamiliares:  req.AntecedentesFamiliares,
		TratamentosRealizados:   req.TratamentosRealizados,

		ExameClinicoFisico:   req.ExameClinicoFisico,
		ExamesComplementares: req.ExamesComplementares,

		DiagnosticoFisioterapeutico: req.DiagnosticoFisioterapeutico,
		PrognosticoFisioterapeutico: req.PrognosticoFisioterapeutico,
		ObjetivosTerapeuticos:       req.ObjetivosTerapeuticos,
		RecursosMetodosTecnicas:     req.RecursosMetodosTecnicas,
		QuantitativoAtendimentos:    req.QuantitativoAtendimentos,
	}

	if assessment.FuncoesCorpo, err = cifBlock(req.FuncoesCorpo); err != nil {
		return nil, err
	}
	if assessment.EstruturasCorpo, err = cifBlock(req.EstruturasCorpo); err != nil {
		return nil, err
	}
	if assessment.AtividadesParticipacao, err = cifBlock(req.AtividadesParticipacao); err != nil {
		return nil, err
	}
	if assessment.FatoresAmbientais, err = cifBlock(req.FatoresAmbientais); err != nil {
		return nil, err
	}

	if err := u.assessmentRepo.Create(tx, assessment); err != nil {
		u.log.Warnf("Failed to create assessment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AssessmentToResponse(assessment), nil
}

func (u *assessmentUsecase) List(ctx context.Context, patientID *int64) ([]dto.AssessmentResponse, error) {
	assessments, err := u.assessmentRepo.FindAll(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list assessments: %+v", err)
		return nil, err
	}
	return converter.AssessmentsToResponses(assessments), nil
}

func (u *assessmentUsecase) Get(ctx context.Context, id int64) (*dto.AssessmentResponse, error) {
	assessment, err := u.assessmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find assessment: %+v", err)
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return converter.AssessmentToResponse(assessment), nil
}

func (u *assessmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAssessmentRequest) (*dto.AssessmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	assessment, err := u.assessmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find assessment: %+v", err)
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	if req.DataAvaliacao != nil {
		dataAvaliacao, err := time.Parse(time.RFC3339, *req.DataAvaliacao)
		if err != nil {
			if dataAvaliacao, err = time.Parse("2006-01-02", *req.DataAvaliacao); err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		assessment.DataAvaliacao = dataAvaliacao
	}

	if req.QueixaPrincipal != nil {
		assessment.QueixaPrincipal = *req.QueixaPrincipal
	}
	if req.HabitosVida != nil {
		assessment.HabitosVida = *req.HabitosVida
	}
	if req.HistoriaAtualDoenca != nil {
		assessment.HistoriaAtualDoenca = *req.HistoriaAtualDoenca
	}
	if req.HistoriaPregressaDoenca != nil {
		assessment.HistoriaPregressaDoenca = *req.HistoriaPregressaDoenca
	}
	if req.AntecedentesPessoais != nil {
		assessment.AntecedentesPessoais = *req.AntecedentesPessoais
	}
	if req.AntecedentesFamiliares != nil {
		assessment.AntecedentesFamiliares = *req.AntecedentesFamiliares
	}
	if req.TratamentosRealizados != nil {
		assessment.TratamentosRealizados = *req.TratamentosRealizados
	}
	if req.ExameClinicoFisico != nil {
		assessment.ExameClinicoFisico = *req.ExameClinicoFisico
	}
	if req.ExamesComplementares != nil {
		assessment.ExamesComplementares = *req.ExamesComplementares
	}
	if req.DiagnosticoFisioterapeutico != nil {
		assessment.DiagnosticoFisioterapeutico = *req.DiagnosticoFisioterapeutico
	}
	if req.PrognosticoFisioterapeutico != nil {
		assessment.PrognosticoFisioterapeutico = *req.PrognosticoFisioterapeutico
	}
	if req.ObjetivosTerapeuticos != nil {
		assessment.ObjetivosTerapeuticos = *req.ObjetivosTerapeuticos
	}
	if req.RecursosMetodosTecnicas != nil {
		assessment.RecursosMetodosTecnicas = *req.RecursosMetodosTecnicas
	}
	if req.QuantitativoAtendimentos != nil {
		assessment.QuantitativoAtendimentos = req.QuantitativoAtendimentos
	}

	if len(req.FuncoesCorpo) > 0 {
		if assessment.FuncoesCorpo, err = cifBlock(req.FuncoesCorpo); err != nil {
			return nil, err
		}
	}
	if len(req.EstruturasCorpo) > 0 {
		if assessment.EstruturasCorpo, err = cifBlock(req.EstruturasCorpo); err != nil {
			return nil, err
		}
	}
	if len(req.AtividadesParticipacao) > 0 {
		if assessment.AtividadesParticipacao, err = cifBlock(req.AtividadesParticipacao); err != nil {
			return nil, err
		}
	}
	if len(req.FatoresAmbientais) > 0 {
		if assessment.FatoresAmbientais, err = cifBlock(req.FatoresAmbientais); err != nil {
			return nil, err
		}
	}

	if err := u.assessmentRepo.Update(tx, assessment); err != nil {
		u.log.Warnf("Failed to update assessment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AssessmentToResponse(assessment), nil
}

func (u *assessmentUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	assessment, err := u.assessmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find assessment: %+v", err)
		return err
	}
	if assessment == nil {
		return ErrAssessmentNotFound
	}

	// Attachments go first so no orphan metadata survives the delete.
	if err := u.assessmentRepo.DeleteAttachmentsByAssessmentID(tx, id); err != nil {
		u.log.Warnf("Failed to delete attachments: %+v", err)
		return err
	}
	if err := u.assessmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete assessment: %+v", err)
		return err
	}

	return tx.Commit().Error
}

func (u *assessmentUsecase) AddAttachment(ctx context.Context, assessmentID int64, req *dto.CreateAttachmentRequest) (*dto.AttachmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	assessment, err := u.assessmentRepo.FindByID(tx, assessmentID)
	if err != nil {
		u.log.Warnf("Failed to find assessment: %+v", err)
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	attachment := &entity.AssessmentAttachment{
		AvaliacaoID:  assessmentID,
		NomeArquivo:  req.NomeArquivo,
		TipoArquivo:  req.TipoArquivo,
		TamanhoBytes: req.TamanhoBytes,
		URLArquivo:   req.URLArquivo,
		Categoria:    req.Categoria,
	}

	if err := u.assessmentRepo.CreateAttachment(tx, attachment); err != nil {
		u.log.Warnf("Failed to create attachment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AttachmentToResponse(attachment), nil
}

func (u *assessmentUsecase) RemoveAttachment(ctx context.Context, assessmentID, attachmentID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	attachment, err := u.assessmentRepo.FindAttachment(tx, assessmentID, attachmentID)
	if err != nil {
		u.log.Warnf("Failed to find attachment: %+v", err)
		return err
	}
	if attachment == nil {
		return ErrAttachmentNotFound
	}

	if err := u.assessmentRepo.DeleteAttachment(tx, attachment.ID); err != nil {
		u.log.Warnf("Failed to delete attachment: %+v", err)
		return err
	}

	return tx.Commit().Error
}
