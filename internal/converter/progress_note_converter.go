package converter

import (
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
)

// ProgressNoteToResponse converts a ProgressNote entity to its response DTO,
// flattening the procedure links.
func ProgressNoteToResponse(n *entity.ProgressNote) *dto.ProgressNoteResponse {
	if n == nil {
		return nil
	}
	links := make([]dto.ProcedureLinkResponse, len(n.Procedimentos))
	for i, link := range n.Procedimentos {
		links[i] = dto.ProcedureLinkResponse{
			ProcedimentoID: link.ProcedimentoID,
			Observacoes:    link.Observacoes,
		}
		if link.Procedimento != nil {
			links[i].Nome = link.Procedimento.Nome
		}
	}

	return &dto.ProgressNoteResponse{
		ID:          n.ID,
		PacienteID:  n.PacienteID,
		AvaliacaoID: n.AvaliacaoID,
		DataSessao:  formatTime(n.DataSessao),

		ProcedimentosRealizados: n.ProcedimentosRealizados,
		RespostaPaciente:        n.RespostaPaciente,
		Intercorrencias:         n.Intercorrencias,
		Observacoes:             n.Observacoes,

		Procedimentos: links,

		DataCriacao:     formatTime(n.DataCriacao),
		DataAtualizacao: formatTime(n.DataAtualizacao),
	}
}

// ProgressNotesToResponses converts a slice of ProgressNote entities.
func ProgressNotesToResponses(notes []entity.ProgressNote) []dto.ProgressNoteResponse {
	responses := make([]dto.ProgressNoteResponse, len(notes))
	for i := range notes {
		responses[i] = *ProgressNoteToResponse(&notes[i])
	}
	return responses
}
