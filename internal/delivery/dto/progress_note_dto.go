package dto

import (
	"encoding/json"
	"fmt"
)

// ProcedureLinkInput accepts either a bare procedure ID or an object
// carrying the ID plus free-text observations.
type ProcedureLinkInput struct {
	ProcedimentoID int64  `json:"procedimento_id"`
	Observacoes    string `json:"observacoes,omitempty"`
}

func (p *ProcedureLinkInput) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		p.ProcedimentoID = id
		p.Observacoes = ""
		return nil
	}

	type alias ProcedureLinkInput
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("procedimento inválido: %w", err)
	}
	*p = ProcedureLinkInput(obj)
	return nil
}

type CreateProgressNoteRequest struct {
	PacienteID  int64  `json:"paciente_id" validate:"required"`
	AvaliacaoID *int64 `json:"avaliacao_id,omitempty"`
	DataSessao  string `json:"data_sessao,omitempty"`

	ProcedimentosRealizados string `json:"procedimentos_realizados,omitempty"`
	RespostaPaciente        string `json:"resposta_paciente,omitempty"`
	Intercorrencias         string `json:"intercorrencias,omitempty"`
	Observacoes             string `json:"observacoes,omitempty"`

	Procedimentos []ProcedureLinkInput `json:"procedimentos,omitempty"`
}

type UpdateProgressNoteRequest struct {
	AvaliacaoID *int64  `json:"avaliacao_id,omitempty"`
	DataSessao  *string `json:"data_sessao,omitempty"`

	ProcedimentosRealizados *string `json:"procedimentos_realizados,omitempty"`
	RespostaPaciente        *string `json:"resposta_paciente,omitempty"`
	Intercorrencias         *string `json:"intercorrencias,omitempty"`
	Observacoes             *string `json:"observacoes,omitempty"`

	Procedimentos []ProcedureLinkInput `json:"procedimentos,omitempty"`
}

type ProgressNoteResponse struct {
	ID          int64  `json:"id"`
	PacienteID  int64  `json:"paciente_id"`
	AvaliacaoID *int64 `json:"avaliacao_id"`
	DataSessao  string `json:"data_sessao"`

	ProcedimentosRealizados string `json:"procedimentos_realizados"`
	RespostaPaciente        string `json:"resposta_paciente"`
	Intercorrencias         string `json:"intercorrencias"`
	Observacoes             string `json:"observacoes"`

	Procedimentos []ProcedureLinkResponse `json:"procedimentos"`

	DataCriacao     string `json:"data_criacao"`
	DataAtualizacao string `json:"data_atualizacao"`
}

type ProcedureLinkResponse struct {
	ProcedimentoID int64  `json:"procedimento_id"`
	Nome           string `json:"nome"`
	Observacoes    string `json:"observacoes"`
}
