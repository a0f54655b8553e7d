package usecase

import (
	"context"

	"fisiogestao/internal/converter"
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProcedureUsecase interface {
	Create(ctx context.Context, req *dto.CreateProcedureRequest) (*dto.ProcedureResponse, error)
	List(ctx context.Context, filter *entity.ProcedureFilter) ([]dto.ProcedureResponse, error)
	Get(ctx context.Context, id int64) (*dto.ProcedureResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProcedureRequest) (*dto.ProcedureResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type procedureUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	procedureRepo repository.ProcedureRepository
}

func NewProcedureUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	procedureRepo repository.ProcedureRepository,
) ProcedureUsecase {
	return &procedureUsecase{
		db:            db,
		log:           log,
		procedureRepo: procedureRepo,
	}
}

func parseValor(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	valor, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, ErrInvalidDecimal
	}
	return &valor, nil
}

func (u *procedureUsecase) Create(ctx context.Context, req *dto.CreateProcedureRequest) (*dto.ProcedureResponse, error) {
	valor, err := parseValor(req.Valor)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	procedure := &entity.Procedure{
		Nome:           req.Nome,
		Descricao:      req.Descricao,
		DuracaoMinutos: req.DuracaoMinutos,
		Codigo:         req.Codigo,
		Valor:          valor,
		Ativo:          true,
	}

	if err := u.procedureRepo.Create(tx, procedure); err != nil {
		u.log.Warnf("Failed to create procedure: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProcedureToResponse(procedure), nil
}

func (u *procedureUsecase) List(ctx context.Context, filter *entity.ProcedureFilter) ([]dto.ProcedureResponse, error) {
	procedures, err := u.procedureRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list procedures: %+v", err)
		return nil, err
	}
	return converter.ProceduresToResponses(procedures), nil
}

func (u *procedureUsecase) Get(ctx context.Context, id int64) (*dto.ProcedureResponse, error) {
	procedure, err := u.procedureRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find procedure: %+v", err)
		return nil, err
	}
	if procedure == nil {
		return nil, ErrProcedureNotFound
	}
	return converter.ProcedureToResponse(procedure), nil
}

func (u *procedureUsecase) Update(ctx context.Context, id int64, req *dto.UpdateProcedureRequest) (*dto.ProcedureResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	procedure, err := u.procedureRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find procedure: %+v", err)
		return nil, err
	}
	if procedure == nil {
		return nil, ErrProcedureNotFound
	}

	if req.Nome != nil {
		procedure.Nome = *req.Nome
	}
	if req.Descricao != nil {
		procedure.Descricao = *req.Descricao
	}
	if req.DuracaoMinutos != nil {
		procedure.DuracaoMinutos = req.DuracaoMinutos
	}
	if req.Codigo != nil {
		procedure.Codigo = *req.Codigo
	}
	if req.Valor != nil {
		valor, err := parseValor(req.Valor)
		if err != nil {
			return nil, err
		}
		procedure.Valor = valor
	}
	if req.Ativo != nil {
		procedure.Ativo = *req.Ativo
	}

	if err := u.procedureRepo.Update(tx, procedure); err != nil {
		u.log.Warnf("Failed to update procedure: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProcedureToResponse(procedure), nil
}

// Deactivate soft-deletes a catalog entry. Existing progress note links keep
// pointing at it.
func (u *procedureUsecase) Deactivate(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	procedure, err := u.procedureRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find procedure: %+v", err)
		return err
	}
	if procedure == nil {
		return ErrProcedureNotFound
	}

	procedure.Ativo = false
	if err := u.procedureRepo.Update(tx, procedure); err != nil {
		u.log.Warnf("Failed to deactivate procedure: %+v", err)
		return err
	}

	return tx.Commit().Error
}
