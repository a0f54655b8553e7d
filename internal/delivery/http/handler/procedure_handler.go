package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/usecase"
	"fisiogestao/pkg/response"
	"fisiogestao/pkg/validator"
)

type ProcedureHandler struct {
	procedureUsecase usecase.ProcedureUsecase
	validator        *validator.CustomValidator
}

func NewProcedureHandler(procedureUsecase usecase.ProcedureUsecase, validator *validator.CustomValidator) *ProcedureHandler {
	return &ProcedureHandler{
		procedureUsecase: procedureUsecase,
		validator:        validator,
	}
}

func (h *ProcedureHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProcedureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.procedureUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidDecimal {
			response.BadRequest(w, "Valor monetário inválido")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

func (h *ProcedureHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &entity.ProcedureFilter{
		Nome: r.URL.Query().Get("nome"),
	}
	if raw := r.URL.Query().Get("ativo"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Ativo = &v
		}
	}

	resp, err := h.procedureUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *ProcedureHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	resp, err := h.procedureUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrProcedureNotFound {
			response.NotFound(w, "Procedimento não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *ProcedureHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdateProcedureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	resp, err := h.procedureUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrProcedureNotFound:
			response.NotFound(w, "Procedimento não encontrado")
		case usecase.ErrInvalidDecimal:
			response.BadRequest(w, "Valor monetário inválido")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// Deactivate desativa o procedimento sem removê-lo do catálogo.
func (h *ProcedureHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	if err := h.procedureUsecase.Deactivate(r.Context(), id); err != nil {
		if err == usecase.ErrProcedureNotFound {
			response.NotFound(w, "Procedimento não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Procedimento desativado com sucesso"})
}
