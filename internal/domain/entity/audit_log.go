package entity

import (
	"time"
)

// AuditLog is an append-only audit trail entry (tabela logs_auditoria).
// Entries are immutable once written; snapshots are opaque serialized text.
type AuditLog struct {
	ID               int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FisioterapeutaID *int64 `gorm:"column:fisioterapeuta_id;index" json:"fisioterapeuta_id"`

	Acao       string  `gorm:"column:acao;type:varchar(100);not null;index" json:"acao"`
	Tabela     *string `gorm:"column:tabela;type:varchar(50);index" json:"tabela"`
	RegistroID *int64  `gorm:"column:registro_id;index" json:"registro_id"`

	DadosAnteriores *string `gorm:"column:dados_anteriores;type:text" json:"dados_anteriores"`
	DadosNovos      *string `gorm:"column:dados_novos;type:text" json:"dados_novos"`

	IPAddress string `gorm:"column:ip_address;type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent string `gorm:"column:user_agent;type:varchar(500)" json:"user_agent,omitempty"`

	DataHora    time.Time `gorm:"column:data_hora;autoCreateTime;index" json:"data_hora"`
	Sucesso     bool      `gorm:"column:sucesso;not null;default:true" json:"sucesso"`
	Observacoes string    `gorm:"column:observacoes;type:text" json:"observacoes,omitempty"`
}

func (AuditLog) TableName() string {
	return "logs_auditoria"
}

// Audit action codes.
const (
	AuditActionLoginSuccess         = "LOGIN_SUCESSO"
	AuditActionLoginFailed          = "LOGIN_FALHOU"
	AuditActionLogout               = "LOGOUT"
	AuditActionPractitionerCreated  = "FISIOTERAPEUTA_CADASTRADO"
	AuditActionPasswordChanged      = "ALTERACAO_SENHA_SUCESSO"
	AuditActionPasswordChangeFailed = "ALTERACAO_SENHA_FALHOU"
	AuditActionAccountUnlocked      = "CONTA_DESBLOQUEADA"
	AuditActionConsentUpdated       = "CONSENTIMENTO_ATUALIZADO"
	AuditActionPersonalDataAccess   = "ACESSO_DADOS_PESSOAIS"
	AuditActionDataExport           = "EXPORTACAO_DADOS"
	AuditActionDataErasure          = "EXCLUSAO_DADOS"
	AuditActionDataRectification    = "RETIFICACAO_DADOS"
	AuditActionTreatmentReport      = "RELATORIO_TRATAMENTO_DADOS"
)
