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

type ProgressNoteHandler struct {
	noteUsecase usecase.ProgressNoteUsecase
	validator   *validator.CustomValidator
}

func NewProgressNoteHandler(noteUsecase usecase.ProgressNoteUsecase, validator *validator.CustomValidator) *ProgressNoteHandler {
	return &ProgressNoteHandler{
		noteUsecase: noteUsecase,
		validator:   validator,
	}
}

func (h *ProgressNoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProgressNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.noteUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.BadRequest(w, "Paciente não encontrado")
		case usecase.ErrPatientErased:
			response.BadRequest(w, "Registro excluído conforme LGPD não pode receber evoluções")
		case usecase.ErrAssessmentNotFound:
			response.BadRequest(w, "Avaliação não encontrada")
		case usecase.ErrProcedureNotFound:
			response.BadRequest(w, "Procedimento não encontrado")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Data da sessão inválida")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

func (h *ProgressNoteHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &entity.ProgressNoteFilter{}
	if raw := r.URL.Query().Get("paciente_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.PacienteID = &v
		}
	}
	if raw := r.URL.Query().Get("avaliacao_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.AvaliacaoID = &v
		}
	}

	resp, err := h.noteUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *ProgressNoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	resp, err := h.noteUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrProgressNoteNotFound {
			response.NotFound(w, "Evolução não encontrada")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *ProgressNoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdateProgressNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	resp, err := h.noteUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrProgressNoteNotFound:
			response.NotFound(w, "Evolução não encontrada")
		case usecase.ErrAssessmentNotFound:
			response.BadRequest(w, "Avaliação não encontrada")
		case usecase.ErrProcedureNotFound:
			response.BadRequest(w, "Procedimento não encontrado")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Data da sessão inválida")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *ProgressNoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	if err := h.noteUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrProgressNoteNotFound {
			response.NotFound(w, "Evolução não encontrada")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Evolução removida com sucesso"})
}
