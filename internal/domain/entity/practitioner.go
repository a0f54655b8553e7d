package entity

import (
	"time"
)

// Practitioner represents a physiotherapist account (tabela fisioterapeutas).
type Practitioner struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome          string `gorm:"column:nome;type:varchar(200);not null" json:"nome"`
	Email         string `gorm:"column:email;type:varchar(120);uniqueIndex;not null" json:"email"`
	SenhaHash     string `gorm:"column:senha_hash;type:text;not null" json:"-"`
	Crefito       string `gorm:"column:crefito;type:varchar(20);uniqueIndex;not null" json:"crefito"`
	Especialidade string `gorm:"column:especialidade;type:varchar(100)" json:"especialidade,omitempty"`
	Telefone      string `gorm:"column:telefone;type:varchar(20)" json:"telefone,omitempty"`
	IsAdmin       bool   `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	Ativo         bool   `gorm:"column:ativo;not null;default:true" json:"ativo"`

	// Lockout state
	TentativasLoginFalhadas  int        `gorm:"column:tentativas_login_falhadas;not null;default:0" json:"-"`
	ContaBloqueada           bool       `gorm:"column:conta_bloqueada;not null;default:false" json:"-"`
	DataBloqueio             *time.Time `gorm:"column:data_bloqueio" json:"-"`
	DataUltimoLogin          *time.Time `gorm:"column:data_ultimo_login" json:"data_ultimo_login,omitempty"`
	DataUltimaTentativaLogin *time.Time `gorm:"column:data_ultima_tentativa_login" json:"-"`
	DataAlteracaoSenha       *time.Time `gorm:"column:data_alteracao_senha" json:"-"`

	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"data_atualizacao"`

	// Relationships
	Pacientes []Patient `gorm:"foreignKey:FisioterapeutaID" json:"pacientes,omitempty"`
}

func (Practitioner) TableName() string {
	return "fisioterapeutas"
}

// MaxFailedLoginAttempts locks the account once the failure counter reaches it.
const MaxFailedLoginAttempts = 5

// IsLocked reports whether the account is currently locked out.
func (p *Practitioner) IsLocked() bool {
	return p.ContaBloqueada
}

// RegisterFailedLogin increments the failure counter and locks the account
// once the threshold is reached.
func (p *Practitioner) RegisterFailedLogin(now time.Time) {
	p.TentativasLoginFalhadas++
	p.DataUltimaTentativaLogin = &now
	if p.TentativasLoginFalhadas >= MaxFailedLoginAttempts {
		p.ContaBloqueada = true
		p.DataBloqueio = &now
	}
}

// RegisterSuccessfulLogin resets the failure counter and stamps the login time.
func (p *Practitioner) RegisterSuccessfulLogin(now time.Time) {
	p.TentativasLoginFalhadas = 0
	p.DataUltimoLogin = &now
	p.DataUltimaTentativaLogin = &now
}

// Unlock clears the lockout state.
func (p *Practitioner) Unlock() {
	p.ContaBloqueada = false
	p.TentativasLoginFalhadas = 0
	p.DataBloqueio = nil
}
