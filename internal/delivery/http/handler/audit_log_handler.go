package handler

import (
	"net/http"
	"strconv"

	"fisiogestao/internal/usecase"
	"fisiogestao/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// List retorna as entradas mais recentes do ledger, limitado por ?limite=.
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limite"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	resp, err := h.auditLogUsecase.List(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AuditLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	resp, err := h.auditLogUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAuditLogNotFound {
			response.NotFound(w, "Registro de auditoria não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}
