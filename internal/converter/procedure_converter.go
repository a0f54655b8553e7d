package converter

import (
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
)

// ProcedureToResponse converts a Procedure entity to its response DTO.
// The monetary value is rendered as a fixed two-decimal string.
func ProcedureToResponse(p *entity.Procedure) *dto.ProcedureResponse {
	if p == nil {
		return nil
	}
	var valor *string
	if p.Valor != nil {
		s := p.Valor.StringFixed(2)
		valor = &s
	}
	return &dto.ProcedureResponse{
		ID:             p.ID,
		Nome:           p.Nome,
		Descricao:      p.Descricao,
		DuracaoMinutos: p.DuracaoMinutos,
		Codigo:         p.Codigo,
		Valor:          valor,
		Ativo:          p.Ativo,
		DataCriacao:    formatTime(p.DataCriacao),
	}
}

// ProceduresToResponses converts a slice of Procedure entities.
func ProceduresToResponses(procedures []entity.Procedure) []dto.ProcedureResponse {
	responses := make([]dto.ProcedureResponse, len(procedures))
	for i := range procedures {
		responses[i] = *ProcedureToResponse(&procedures[i])
	}
	return responses
}
