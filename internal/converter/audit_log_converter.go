package converter

import (
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to its response DTO.
func AuditLogToResponse(l *entity.AuditLog) *dto.AuditLogResponse {
	if l == nil {
		return nil
	}
	return &dto.AuditLogResponse{
		ID:               l.ID,
		FisioterapeutaID: l.FisioterapeutaID,
		Acao:             l.Acao,
		Tabela:           l.Tabela,
		RegistroID:       l.RegistroID,
		DadosAnteriores:  l.DadosAnteriores,
		DadosNovos:       l.DadosNovos,
		IPAddress:        l.IPAddress,
		UserAgent:        l.UserAgent,
		DataHora:         formatTime(l.DataHora),
		Sucesso:          l.Sucesso,
		Observacoes:      l.Observacoes,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities.
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
