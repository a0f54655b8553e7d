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

type ProgressNoteUsecase interface {
	Create(ctx context.Context, req *dto.CreateProgressNoteRequest) (*dto.ProgressNoteResponse, error)
	List(ctx context.Context, filter *entity.ProgressNoteFilter) ([]dto.ProgressNoteResponse, error)
	Get(ctx context.Context, id int64) (*dto.ProgressNoteResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProgressNoteRequest) (*dto.ProgressNoteResponse, error)
	Delete(ctx context.Context, id int64) error
}

type progressNoteUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	noteRepo    repository.ProgressNoteRepository
	patientRepo repository.PatientRepository
}

func NewProgressNoteUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	noteRepo repository.ProgressNoteRepository,
	patientRepo repository.PatientRepository,
) ProgressNoteUsecase {
	return &progressNoteUsecase{
		db:          db,
		log:         log,
		noteRepo:    noteRepo,
		patientRepo: patientRepo,
	}
}

func (u *progressNoteUsecase) Create(ctx context.Context, req *dto.CreateProgressNoteRequest) (*dto.ProgressNoteResponse, error) {
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

	dataSessao := time.Now()
	if req.DataSessao != "" {
		dataSessao, err = time.Parse(time.RFC3339, req.DataSessao)
		if err != nil {
			if dataSessao, err = time.Parse("2006-01-02", req.DataSessao); err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
	}

	note := &entity.ProgressNote{
		PacienteID:  req.PacienteID,
		AvaliacaoID: req.AvaliacaoID,
		DataSessao:  dataSessao,

		ProcedimentosRealizados: req.ProcedimentosRealizados,
		RespostaPaciente:        req.RespostaPaciente,
		Intercorrencias:         req.Intercorrencias,
		Observacoes:             req.Observacoes,
	}

	if err := u.noteRepo.Create(tx, note); err != nil {
		if isForeignKeyError(err, "avaliacao") {
			return nil, ErrAssessmentNotFound
		}
		u.log.Warnf("Failed to create progress note: %+v", err)
		return nil, err
	}

	if err := u.createLinks(tx, note.ID, req.Procedimentos); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, note.ID)
}

func (u *progressNoteUsecase) createLinks(tx *gorm.DB, noteID int64, inputs []dto.ProcedureLinkInput) error {
	for _, input := range inputs {
		link := &entity.ProcedureLink{
			EvolucaoID:     noteID,
			ProcedimentoID: input.ProcedimentoID,
			Observacoes:    input.Observacoes,
		}
		if err := u.noteRepo.CreateLink(tx, link); err != nil {
			if isForeignKeyError(err, "procedimento") {
				return ErrProcedureNotFound
			}
			u.log.Warnf("Failed to link procedure %d: %+v", input.ProcedimentoID, err)
			return err
		}
	}
	return nil
}

func (u *progressNoteUsecase) List(ctx context.Context, filter *entity.ProgressNoteFilter) ([]dto.ProgressNoteResponse, error) {
	notes, err := u.noteRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list progress notes: %+v", err)
		return nil, err
	}
	return converter.ProgressNotesToResponses(notes), nil
}

func (u *progressNoteUsecase) Get(ctx context.Context, id int64) (*dto.ProgressNoteResponse, error) {
	note, err := u.noteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find progress note: %+v", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrProgressNoteNotFound
	}
	return converter.ProgressNoteToResponse(note), nil
}

func (u *progressNoteUsecase) Update(ctx context.Context, id int64, req *dto.UpdateProgressNoteRequest) (*dto.ProgressNoteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	note, err := u.noteRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find progress note: %+v", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrProgressNoteNotFound
	}

	if req.AvaliacaoID != nil {
		note.AvaliacaoID = req.AvaliacaoID
	}
	if req.DataSessao != nil {
		dataSessao, err := time.Parse(time.RFC3339, *req.DataSessao)
		if err != nil {
			if dataSessao, err = time.Parse("2006-01-02", *req.DataSessao); err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		note.DataSessao = dataSessao
	}
	if req.ProcedimentosRealizados != nil {
		note.ProcedimentosRealizados = *req.ProcedimentosRealizados
	}
	if req.RespostaPaciente != nil {
		note.RespostaPaciente = *req.RespostaPaciente
	}
	if req.Intercorrencias != nil {
		note.Intercorrencias = *req.Intercorrencias
	}
	if req.Observacoes != nil {
		note.Observacoes = *req.Observacoes
	}

	if err := u.noteRepo.Update(tx, note); err != nil {
		if isForeignKeyError(err, "avaliacao") {
			return nil, ErrAssessmentNotFound
		}
		u.log.Warnf("Failed to update progress note: %+v", err)
		return nil, err
	}

	// A procedure list in the patch replaces the existing links wholesale.
	if req.Procedimentos != nil {
		if err := u.noteRepo.DeleteLinksByNoteID(tx, note.ID); err != nil {
			u.log.Warnf("Failed to clear procedure links: %+v", err)
			return nil, err
		}
		if err := u.createLinks(tx, note.ID, req.Procedimentos); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, note.ID)
}

func (u *progressNoteUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	note, err := u.noteRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find progress note: %+v", err)
		return err
	}
	if note == nil {
		return ErrProgressNoteNotFound
	}

	if err := u.noteRepo.DeleteLinksByNoteID(tx, id); err != nil {
		u.log.Warnf("Failed to delete procedure links: %+v", err)
		return err
	}
	if err := u.noteRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete progress note: %+v", err)
		return err
	}

	return tx.Commit().Error
}
