package usecase

import (
	"context"
	"testing"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProcedureUsecase(db *gorm.DB) ProcedureUsecase {
	return NewProcedureUsecase(db, newTestLogger(), repository.NewProcedureRepository())
}

func TestCreateProcedure_ParsesValor(t *testing.T) {
	db := newTestDB(t)
	uc := newProcedureUsecase(db)

	resp, err := uc.Create(context.Background(), &dto.CreateProcedureRequest{
		Nome:           "Liberação miofascial",
		DuracaoMinutos: intPtr(45),
		Codigo:         "PROC-010",
		Valor:          strPtr("120.5"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Ativo)
	require.NotNil(t, resp.Valor)
	assert.Equal(t, "120.50", *resp.Valor)
}

func TestCreateProcedure_InvalidValor(t *testing.T) {
	db := newTestDB(t)
	uc := newProcedureUsecase(db)

	_, err := uc.Create(context.Background(), &dto.CreateProcedureRequest{
		Nome:  "Liberação miofascial",
		Valor: strPtr("cento e vinte"),
	})
	assert.ErrorIs(t, err, ErrInvalidDecimal)
}

func TestCreateProcedure_ValorIsOptional(t *testing.T) {
	db := newTestDB(t)
	uc := newProcedureUsecase(db)

	resp, err := uc.Create(context.Background(), &dto.CreateProcedureRequest{
		Nome: "Avaliação postural",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Valor)
}

func TestUpdateProcedure_PartialMerge(t *testing.T) {
	db := newTestDB(t)
	uc := newProcedureUsecase(db)

	created, err := uc.Create(context.Background(), &dto.CreateProcedureRequest{
		Nome:   "Eletroterapia",
		Codigo: "PROC-020",
		Valor:  strPtr("80"),
	})
	require.NoError(t, err)

	resp, err := uc.Update(context.Background(), created.ID, &dto.UpdateProcedureRequest{
		Valor: strPtr("95.90"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Eletroterapia", resp.Nome)
	assert.Equal(t, "PROC-020", resp.Codigo)
	require.NotNil(t, resp.Valor)
	assert.Equal(t, "95.90", *resp.Valor)
}

func TestDeactivateProcedure_SoftDelete(t *testing.T) {
	db := newTestDB(t)
	uc := newProcedureUsecase(db)

	created, err := uc.Create(context.Background(), &dto.CreateProcedureRequest{
		Nome: "Crioterapia",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), created.ID))

	// The row survives with ativo=false.
	var stored entity.Procedure
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.False(t, stored.Ativo)

	resp, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, resp.Ativo)
}

func TestDeactivateProcedure_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newProcedureUsecase(db)

	err := uc.Deactivate(context.Background(), 555)
	assert.ErrorIs(t, err, ErrProcedureNotFound)
}
