package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Procedure is a catalog entry (tabela procedimentos), not owned by a patient.
type Procedure struct {
	ID             int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome           string           `gorm:"column:nome;type:varchar(200);not null" json:"nome"`
	Descricao      string           `gorm:"column:descricao;type:text" json:"descricao,omitempty"`
	DuracaoMinutos *int             `gorm:"column:duracao_minutos" json:"duracao_minutos,omitempty"`
	Codigo         string           `gorm:"column:codigo;type:varchar(50)" json:"codigo,omitempty"`
	Valor          *decimal.Decimal `gorm:"column:valor;type:decimal(10,2)" json:"valor,omitempty"`
	Ativo          bool             `gorm:"column:ativo;not null;default:true" json:"ativo"`

	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"data_atualizacao"`
}

func (Procedure) TableName() string {
	return "procedimentos"
}
