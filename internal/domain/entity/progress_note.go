package entity

import (
	"time"
)

// ProgressNote is a per-session clinical evolution record (tabela evolucoes).
type ProgressNote struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID  int64  `gorm:"column:paciente_id;not null;index" json:"paciente_id"`
	AvaliacaoID *int64 `gorm:"column:avaliacao_id;index" json:"avaliacao_id"`

	DataSessao              time.Time `gorm:"column:data_sessao;not null" json:"data_sessao"`
	ProcedimentosRealizados string    `gorm:"column:procedimentos_realizados;type:text" json:"procedimentos_realizados,omitempty"`
	RespostaPaciente        string    `gorm:"column:resposta_paciente;type:text" json:"resposta_paciente,omitempty"`
	Intercorrencias         string    `gorm:"column:intercorrencias;type:text" json:"intercorrencias,omitempty"`
	Observacoes             string    `gorm:"column:observacoes;type:text" json:"observacoes,omitempty"`

	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"data_atualizacao"`

	// Relationships
	Procedimentos []ProcedureLink `gorm:"foreignKey:EvolucaoID;constraint:OnDelete:CASCADE" json:"procedimentos,omitempty"`
}

func (ProgressNote) TableName() string {
	return "evolucoes"
}

// RedactNarrative overwrites the free-text session fields with the fixed
// redaction marker.
func (n *ProgressNote) RedactNarrative() {
	n.ProcedimentosRealizados = RedactedMarker
	n.RespostaPaciente = RedactedMarker
	n.Intercorrencias = RedactedMarker
	n.Observacoes = RedactedMarker
}

// ProcedureLink associates a catalog procedure with a progress note,
// carrying per-link notes (tabela procedimentos_evolucoes).
type ProcedureLink struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	EvolucaoID     int64  `gorm:"column:evolucao_id;not null;index" json:"evolucao_id"`
	ProcedimentoID int64  `gorm:"column:procedimento_id;not null;index" json:"procedimento_id"`
	Observacoes    string `gorm:"column:observacoes;type:text" json:"observacoes,omitempty"`

	// Relationships
	Procedimento *Procedure `gorm:"foreignKey:ProcedimentoID" json:"procedimento,omitempty"`
}

func (ProcedureLink) TableName() string {
	return "procedimentos_evolucoes"
}
