package entity

import (
	"fmt"
	"time"
)

// Patient represents a clinical patient record (tabela pacientes).
//
// Personal fields cleared on erasure are pointers so the redacted record
// serializes them as null, matching the original schema.
type Patient struct {
	ID               int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	FisioterapeutaID int64 `gorm:"column:fisioterapeuta_id;not null;index" json:"fisioterapeuta_id"`

	// Dados pessoais básicos (COFFITO)
	NomeCompleto    string    `gorm:"column:nome_completo;type:varchar(200);not null" json:"nome_completo"`
	DataNascimento  time.Time `gorm:"column:data_nascimento;type:date;not null" json:"-"`
	Genero          *string   `gorm:"column:genero;type:varchar(20)" json:"genero"`
	EstadoCivil     *string   `gorm:"column:estado_civil;type:varchar(20)" json:"estado_civil"`
	Profissao       *string   `gorm:"column:profissao;type:varchar(100)" json:"profissao"`
	Naturalidade    *string   `gorm:"column:naturalidade;type:varchar(100)" json:"naturalidade"`
	LocalNascimento *string   `gorm:"column:local_nascimento;type:varchar(200)" json:"local_nascimento"`

	// Dados de contato
	Telefone            *string `gorm:"column:telefone;type:varchar(20)" json:"telefone"`
	Email               *string `gorm:"column:email;type:varchar(120)" json:"email"`
	EnderecoResidencial *string `gorm:"column:endereco_residencial;type:text" json:"endereco_residencial"`
	EnderecoComercial   *string `gorm:"column:endereco_comercial;type:text" json:"endereco_comercial"`

	// Campos de controle
	Ativo     bool `gorm:"column:ativo;not null;default:true" json:"ativo"`
	Arquivado bool `gorm:"column:arquivado;not null;default:false" json:"arquivado"`

	// Bloco de consentimento LGPD
	ConsentimentoTratamentoDados bool       `gorm:"column:consentimento_tratamento_dados;not null;default:true" json:"consentimento_tratamento_dados"`
	ConsentimentoComunicacao     bool       `gorm:"column:consentimento_comunicacao;not null;default:false" json:"consentimento_comunicacao"`
	ConsentimentoPesquisa        bool       `gorm:"column:consentimento_pesquisa;not null;default:false" json:"consentimento_pesquisa"`
	DataConsentimento            *time.Time `gorm:"column:data_consentimento" json:"data_consentimento"`
	VersaoTermos                 string     `gorm:"column:versao_termos;type:varchar(10);default:'1.0'" json:"versao_termos"`

	// Bloco de exclusão LGPD (terminal)
	DataExclusaoLGPD   *time.Time `gorm:"column:data_exclusao_lgpd" json:"data_exclusao_lgpd,omitempty"`
	MotivoExclusaoLGPD *string    `gorm:"column:motivo_exclusao_lgpd;type:text" json:"motivo_exclusao_lgpd,omitempty"`

	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"data_atualizacao"`

	// Relationships
	Avaliacoes   []Assessment   `gorm:"foreignKey:PacienteID;constraint:OnDelete:CASCADE" json:"avaliacoes,omitempty"`
	Evolucoes    []ProgressNote `gorm:"foreignKey:PacienteID;constraint:OnDelete:CASCADE" json:"evolucoes,omitempty"`
	Agendamentos []Appointment  `gorm:"foreignKey:PacienteID;constraint:OnDelete:CASCADE" json:"agendamentos,omitempty"`
}

func (Patient) TableName() string {
	return "pacientes"
}

// IsErased reports whether the LGPD erasure flow has run for this patient.
// Erasure is terminal: once set, personal fields stay redacted.
func (p *Patient) IsErased() bool {
	return p.DataExclusaoLGPD != nil
}

// RedactionPlaceholder is the value substituted for the patient name on
// erasure, keyed by patient id.
func RedactionPlaceholder(patientID int64) string {
	return fmt.Sprintf("[REMOVIDO_%d]", patientID)
}

// RedactedMarker overwrites clinical narrative text on erasure.
const RedactedMarker = "[DADOS REMOVIDOS]"

// Redact irreversibly overwrites personal fields and flips lifecycle flags.
func (p *Patient) Redact(now time.Time, motivo string) {
	p.NomeCompleto = RedactionPlaceholder(p.ID)
	p.Email = nil
	p.Telefone = nil
	p.EnderecoResidencial = nil
	p.EnderecoComercial = nil
	p.Profissao = nil
	p.Naturalidade = nil
	p.LocalNascimento = nil
	p.Ativo = false
	p.Arquivado = true
	p.DataExclusaoLGPD = &now
	p.MotivoExclusaoLGPD = &motivo
}
