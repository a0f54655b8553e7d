package converter

import (
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
)

// PractitionerToSummary converts a Practitioner entity to the compact
// identity block returned on login.
func PractitionerToSummary(p *entity.Practitioner) *dto.PractitionerSummary {
	if p == nil {
		return nil
	}
	return &dto.PractitionerSummary{
		ID:      p.ID,
		Nome:    p.Nome,
		Email:   p.Email,
		Crefito: p.Crefito,
		IsAdmin: p.IsAdmin,
	}
}

// PractitionerToResponse converts a Practitioner entity to its profile DTO.
func PractitionerToResponse(p *entity.Practitioner) *dto.PractitionerResponse {
	if p == nil {
		return nil
	}
	return &dto.PractitionerResponse{
		ID:              p.ID,
		Nome:            p.Nome,
		Email:           p.Email,
		Crefito:         p.Crefito,
		Especialidade:   p.Especialidade,
		Telefone:        p.Telefone,
		IsAdmin:         p.IsAdmin,
		Ativo:           p.Ativo,
		DataUltimoLogin: formatTimePtr(p.DataUltimoLogin),
		DataCriacao:     formatTime(p.DataCriacao),
		DataAtualizacao: formatTime(p.DataAtualizacao),
	}
}
