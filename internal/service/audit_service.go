package service

import (
	"context"
	"encoding/json"
	"fmt"

	"fisiogestao/internal/delivery/http/middleware"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Entry describes one action to append to the audit ledger. Before/After
// snapshots are serialized to opaque JSON text on write.
type Entry struct {
	Action         string
	Table          string
	RecordID       *int64
	Before         interface{}
	After          interface{}
	PractitionerID *int64
	Success        bool
	Note           string
}

// AuditService appends entries to the append-only ledger. Writes are
// best-effort: a persistence failure is logged and swallowed so it can
// never fail or roll back the business operation that triggered it.
type AuditService interface {
	Record(ctx context.Context, tx *gorm.DB, e Entry)
	LogPersonalDataAccess(ctx context.Context, tx *gorm.DB, patientID int64, accessType string)
	LogDataExport(ctx context.Context, tx *gorm.DB, patientID int64, formato string)
	LogDataErasure(ctx context.Context, tx *gorm.DB, patientID int64, motivo string, before interface{})
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// Record appends one ledger entry on tx (or the base connection when tx is
// nil, e.g. for failed logins that run outside a transaction). When tx is an
// open transaction the entry commits together with the business mutation.
func (s *auditService) Record(ctx context.Context, tx *gorm.DB, e Entry) {
	db := tx
	if db == nil {
		db = s.db.WithContext(ctx)
	}

	practitionerID := e.PractitionerID
	if practitionerID == nil {
		if id, ok := middleware.GetPractitionerIDFromContext(ctx); ok {
			practitionerID = &id
		}
	}

	ip, _ := middleware.GetClientIPFromContext(ctx)
	userAgent, _ := middleware.GetUserAgentFromContext(ctx)

	log := &entity.AuditLog{
		FisioterapeutaID: practitionerID,
		Acao:             e.Action,
		RegistroID:       e.RecordID,
		DadosAnteriores:  marshalSnapshot(s.log, e.Before),
		DadosNovos:       marshalSnapshot(s.log, e.After),
		IPAddress:        ip,
		UserAgent:        userAgent,
		Sucesso:          e.Success,
		Observacoes:      e.Note,
	}
	if e.Table != "" {
		log.Tabela = &e.Table
	}

	if err := s.auditRepo.Create(db, log); err != nil {
		s.log.Warnf("Failed to write audit log entry (action=%s): %+v", e.Action, err)
	}
}

func (s *auditService) LogPersonalDataAccess(ctx context.Context, tx *gorm.DB, patientID int64, accessType string) {
	s.Record(ctx, tx, Entry{
		Action:   entity.AuditActionPersonalDataAccess,
		Table:    entity.Patient{}.TableName(),
		RecordID: &patientID,
		Success:  true,
		Note:     fmt.Sprintf("Tipo de acesso: %s", accessType),
	})
}

func (s *auditService) LogDataExport(ctx context.Context, tx *gorm.DB, patientID int64, formato string) {
	s.Record(ctx, tx, Entry{
		Action:   entity.AuditActionDataExport,
		Table:    entity.Patient{}.TableName(),
		RecordID: &patientID,
		Success:  true,
		Note:     fmt.Sprintf("Formato: %s", formato),
	})
}

func (s *auditService) LogDataErasure(ctx context.Context, tx *gorm.DB, patientID int64, motivo string, before interface{}) {
	s.Record(ctx, tx, Entry{
		Action:   entity.AuditActionDataErasure,
		Table:    entity.Patient{}.TableName(),
		RecordID: &patientID,
		Before:   before,
		Success:  true,
		Note:     fmt.Sprintf("Motivo: %s", motivo),
	})
}

func marshalSnapshot(log *logrus.Logger, v interface{}) *string {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Warnf("Failed to marshal audit snapshot: %+v", err)
		return nil
	}
	s := string(data)
	return &s
}
