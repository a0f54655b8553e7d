package usecase

import (
	"context"
	"time"

	"fisiogestao/internal/converter"
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/domain/repository"
	"fisiogestao/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, filter *entity.PatientFilter) ([]dto.PatientResponse, error)
	Get(ctx context.Context, id int64) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
	Archive(ctx context.Context, id int64, req *dto.ArchivePatientRequest) (*dto.PatientResponse, error)
	MedicalRecord(ctx context.Context, id int64) (*dto.MedicalRecordResponse, error)
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	assessmentRepo  repository.AssessmentRepository
	noteRepo        repository.ProgressNoteRepository
	appointmentRepo repository.AppointmentRepository
	audit           service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	assessmentRepo repository.AssessmentRepository,
	noteRepo repository.ProgressNoteRepository,
	appointmentRepo repository.AppointmentRepository,
	audit service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		assessmentRepo:  assessmentRepo,
		noteRepo:        noteRepo,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dataNascimento, err := time.Parse("2006-01-02", req.DataNascimento)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		FisioterapeutaID:    req.FisioterapeutaID,
		NomeCompleto:        req.NomeCompleto,
		DataNascimento:      dataNascimento,
		Genero:              req.Genero,
		EstadoCivil:         req.EstadoCivil,
		Profissao:           req.Profissao,
		Naturalidade:        req.Naturalidade,
		LocalNascimento:     req.LocalNascimento,
		Telefone:            req.Telefone,
		Email:               req.Email,
		EnderecoResidencial: req.EnderecoResidencial,
		EnderecoComercial:   req.EnderecoComercial,
		Ativo:               true,

		ConsentimentoTratamentoDados: true,
		VersaoTermos:                 "1.0",
	}
	now := time.Now()
	patient.DataConsentimento = &now

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isForeignKeyError(err, "fisioterapeuta") {
			return nil, ErrPractitionerNotFound
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, filter *entity.PatientFilter) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) Get(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	u.audit.LogPersonalDataAccess(ctx, nil, patient.ID, "consulta_cadastro")

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
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

	if req.NomeCompleto != nil {
		patient.NomeCompleto = *req.NomeCompleto
	}
	if req.DataNascimento != nil {
		dataNascimento, err := time.Parse("2006-01-02", *req.DataNascimento)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DataNascimento = dataNascimento
	}
	if req.Genero != nil {
		patient.Genero = req.Genero
	}
	if req.EstadoCivil != nil {
		patient.EstadoCivil = req.EstadoCivil
	}
	if req.Profissao != nil {
		patient.Profissao = req.Profissao
	}
	if req.Naturalidade != nil {
		patient.Naturalidade = req.Naturalidade
	}
	if req.LocalNascimento != nil {
		patient.LocalNascimento = req.LocalNascimento
	}
	if req.Telefone != nil {
		patient.Telefone = req.Telefone
	}
	if req.Email != nil {
		patient.Email = req.Email
	}
	if req.EnderecoResidencial != nil {
		patient.EnderecoResidencial = req.EnderecoResidencial
	}
	if req.EnderecoComercial != nil {
		patient.EnderecoComercial = req.EnderecoComercial
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// Delete desativa o cadastro sem apagar dados. A exclusão definitiva com
// anonimização é responsabilidade do fluxo LGPD.
func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	patient.Ativo = false

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to deactivate patient: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *patientUsecase) Archive(ctx context.Context, id int64, req *dto.ArchivePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	arquivar := true
	if req != nil && req.Arquivar != nil {
		arquivar = *req.Arquivar
	}
	// Erased records stay archived; un-archiving them is not allowed.
	if patient.IsErased() && !arquivar {
		return nil, ErrPatientErased
	}
	patient.Arquivado = arquivar

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to archive patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// MedicalRecord assembles the full clinical record (prontuário) of a patient.
func (u *patientUsecase) MedicalRecord(ctx context.Context, id int64) (*dto.MedicalRecordResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	assessments, err := u.assessmentRepo.FindByPatientID(db, id)
	if err != nil {
		u.log.Warnf("Failed to load assessments: %+v", err)
		return nil, err
	}

	notes, err := u.noteRepo.FindByPatientID(db, id)
	if err != nil {
		u.log.Warnf("Failed to load progress notes: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, id)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}

	u.audit.LogPersonalDataAccess(ctx, nil, patient.ID, "prontuario_completo")

	return &dto.MedicalRecordResponse{
		Paciente:     converter.PatientToResponse(patient),
		Avaliacoes:   converter.AssessmentsToResponses(assessments),
		Evolucoes:    converter.ProgressNotesToResponses(notes),
		Agendamentos: converter.AppointmentsToResponses(appointments),
	}, nil
}
