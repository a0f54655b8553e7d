package converter

import (
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
)

// AssessmentToResponse converts an Assessment entity to its response DTO.
// The CIF blocks come out as raw JSON documents.
func AssessmentToResponse(a *entity.Assessment) *dto.AssessmentResponse {
	if a == nil {
		return nil
	}
	resp := &dto.AssessmentResponse{
		ID:            a.ID,
		PacienteID:    a.PacienteID,
		DataAvaliacao: formatTime(a.DataAvaliacao),

		QueixaPrincipal:         a.QueixaPrincipal,
		HabitosVida:             a.HabitosVida,
		HistoriaAtualDoenca:     a.HistoriaAtualDoenca,
		HistoriaPregressaDoenca: a.HistoriaPregressaDoenca,
		AntecedentesPessoais:    a.AntecedentesPessoais,
		AntecedentesFamiliares:  a.AntecedentesFamiliares,
		TratamentosRealizados:   a.TratamentosRealizados,

		ExameClinicoFisico:   a.ExameClinicoFisico,
		ExamesComplementares: a.ExamesComplementares,

		DiagnosticoFisioterapeutico: a.DiagnosticoFisioterapeutico,
		PrognosticoFisioterapeutico: a.PrognosticoFisioterapeutico,
		ObjetivosTerapeuticos:       a.ObjetivosTerapeuticos,
		RecursosMetodosTecnicas:     a.RecursosMetodosTecnicas,
		QuantitativoAtendimentos:    a.QuantitativoAtendimentos,

		FuncoesCorpo:           rawJSONBlock(a.FuncoesCorpo),
		EstruturasCorpo:        rawJSONBlock(a.EstruturasCorpo),
		AtividadesParticipacao: rawJSONBlock(a.AtividadesParticipacao),
		FatoresAmbientais:      rawJSONBlock(a.FatoresAmbientais),

		DataCriacao:     formatTime(a.DataCriacao),
		DataAtualizacao: formatTime(a.DataAtualizacao),
	}

	if len(a.Anexos) > 0 {
		resp.Anexos = AttachmentsToResponses(a.Anexos)
	}

	return resp
}

// AssessmentsToResponses converts a slice of Assessment entities.
func AssessmentsToResponses(assessments []entity.Assessment) []dto.AssessmentResponse {
	responses := make([]dto.AssessmentResponse, len(assessments))
	for i := range assessments {
		responses[i] = *AssessmentToResponse(&assessments[i])
	}
	return responses
}

// AttachmentToResponse converts an AssessmentAttachment entity.
func AttachmentToResponse(a *entity.AssessmentAttachment) *dto.AttachmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AttachmentResponse{
		ID:           a.ID,
		AvaliacaoID:  a.AvaliacaoID,
		NomeArquivo:  a.NomeArquivo,
		TipoArquivo:  a.TipoArquivo,
		TamanhoBytes: a.TamanhoBytes,
		URLArquivo:   a.URLArquivo,
		Categoria:    a.Categoria,
		DataUpload:   formatTime(a.DataUpload),
	}
}

// AttachmentsToResponses converts a slice of AssessmentAttachment entities.
func AttachmentsToResponses(attachments []entity.AssessmentAttachment) []dto.AttachmentResponse {
	responses := make([]dto.AttachmentResponse, len(attachments))
	for i := range attachments {
		responses[i] = *AttachmentToResponse(&attachments[i])
	}
	return responses
}
