package usecase

import (
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/repository"
	"fisiogestao/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a throwaway in-memory database with the full schema.
// Each test gets its own named database so pooled connections share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Practitioner{},
		&entity.Patient{},
		&entity.Assessment{},
		&entity.AssessmentAttachment{},
		&entity.Procedure{},
		&entity.ProgressNote{},
		&entity.ProcedureLink{},
		&entity.Appointment{},
		&entity.AuditLog{},
	)
	require.NoError(t, err)

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAudit(db *gorm.DB) service.AuditService {
	return service.NewAuditService(db, newTestLogger(), repository.NewAuditLogRepository())
}

func seedPractitioner(t *testing.T, db *gorm.DB, email, senha string) *entity.Practitioner {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)

	p := &entity.Practitioner{
		Nome:      "Dra. Helena Souza",
		Email:     email,
		SenhaHash: string(hash),
		Crefito:   "CREFITO-3/" + email,
		Ativo:     true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedPatient(t *testing.T, db *gorm.DB, fisioterapeutaID int64) *entity.Patient {
	t.Helper()

	now := time.Now()
	p := &entity.Patient{
		FisioterapeutaID:             fisioterapeutaID,
		NomeCompleto:                 "Carlos Pereira",
		DataNascimento:               time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC),
		Telefone:                     strPtr("11 98888-7777"),
		Email:                        strPtr("carlos@example.com"),
		EnderecoResidencial:          strPtr("Rua das Flores, 100"),
		Profissao:                    strPtr("Professor"),
		Ativo:                        true,
		ConsentimentoTratamentoDados: true,
		DataConsentimento:            &now,
		VersaoTermos:                 "1.0",
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func countAuditEntries(t *testing.T, db *gorm.DB, action string) int64 {
	t.Helper()

	var count int64
	err := db.Model(&entity.AuditLog{}).Where("acao = ?", action).Count(&count).Error
	require.NoError(t, err)
	return count
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }
