package usecase

import (
	"context"
	"testing"

	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuditLogUsecase(db *gorm.DB) AuditLogUsecase {
	return NewAuditLogUsecase(db, newTestLogger(), repository.NewAuditLogRepository())
}

func seedAuditLogs(t *testing.T, db *gorm.DB, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&entity.AuditLog{
			Acao:    entity.AuditActionLoginSuccess,
			Sucesso: true,
		}).Error)
	}
}

func TestListAuditLogs_DefaultLimit(t *testing.T) {
	db := newTestDB(t)
	uc := newAuditLogUsecase(db)
	seedAuditLogs(t, db, defaultAuditLogLimit+20)

	resp, err := uc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultAuditLogLimit, resp.Total)
	assert.Len(t, resp.Logs, defaultAuditLogLimit)
}

func TestListAuditLogs_ExplicitLimit(t *testing.T) {
	db := newTestDB(t)
	uc := newAuditLogUsecase(db)
	seedAuditLogs(t, db, 10)

	resp, err := uc.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}

func TestListAuditLogs_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	uc := newAuditLogUsecase(db)
	seedAuditLogs(t, db, 5)

	resp, err := uc.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, resp.Logs, 5)
	for i := 1; i < len(resp.Logs); i++ {
		assert.Greater(t, resp.Logs[i-1].ID, resp.Logs[i].ID)
	}
}

func TestGetAuditLog_NotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newAuditLogUsecase(db)

	_, err := uc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}

func TestGetAuditLog_ReturnsEntry(t *testing.T) {
	db := newTestDB(t)
	uc := newAuditLogUsecase(db)

	tabela := entity.Patient{}.TableName()
	log := &entity.AuditLog{
		Acao:    entity.AuditActionDataExport,
		Tabela:  &tabela,
		Sucesso: true,
	}
	require.NoError(t, db.Create(log).Error)

	resp, err := uc.Get(context.Background(), log.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AuditActionDataExport, resp.Acao)
	require.NotNil(t, resp.Tabela)
	assert.Equal(t, tabela, *resp.Tabela)
}
