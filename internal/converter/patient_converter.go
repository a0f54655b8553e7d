package converter

import (
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO.
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:                  p.ID,
		FisioterapeutaID:    p.FisioterapeutaID,
		NomeCompleto:        p.NomeCompleto,
		DataNascimento:      formatDate(p.DataNascimento),
		Genero:              p.Genero,
		EstadoCivil:         p.EstadoCivil,
		Profissao:           p.Profissao,
		Naturalidade:        p.Naturalidade,
		LocalNascimento:     p.LocalNascimento,
		Telefone:            p.Telefone,
		Email:               p.Email,
		EnderecoResidencial: p.EnderecoResidencial,
		EnderecoComercial:   p.EnderecoComercial,
		Ativo:               p.Ativo,
		Arquivado:           p.Arquivado,

		ConsentimentoTratamentoDados: p.ConsentimentoTratamentoDados,
		ConsentimentoComunicacao:     p.ConsentimentoComunicacao,
		ConsentimentoPesquisa:        p.ConsentimentoPesquisa,
		DataConsentimento:            formatTimePtr(p.DataConsentimento),
		VersaoTermos:                 p.VersaoTermos,

		DataCriacao:     formatTime(p.DataCriacao),
		DataAtualizacao: formatTime(p.DataAtualizacao),
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs.
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientToConsentState extracts the LGPD consent block of a patient.
func PatientToConsentState(p *entity.Patient) dto.ConsentState {
	return dto.ConsentState{
		ConsentimentoTratamentoDados: p.ConsentimentoTratamentoDados,
		ConsentimentoComunicacao:     p.ConsentimentoComunicacao,
		ConsentimentoPesquisa:        p.ConsentimentoPesquisa,
		DataConsentimento:            formatTimePtr(p.DataConsentimento),
		VersaoTermos:                 p.VersaoTermos,
	}
}
