package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/usecase"
	"fisiogestao/pkg/response"
	"fisiogestao/pkg/validator"
)

type AssessmentHandler struct {
	assessmentUsecase usecase.AssessmentUsecase
	validator         *validator.CustomValidator
}

func NewAssessmentHandler(assessmentUsecase usecase.AssessmentUsecase, validator *validator.CustomValidator) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentUsecase: assessmentUsecase,
		validator:         validator,
	}
}

func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.assessmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.BadRequest(w, "Paciente não encontrado")
		case usecase.ErrPatientErased:
			response.BadRequest(w, "Registro excluído conforme LGPD não pode receber avaliações")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Data de avaliação inválida")
		case usecase.ErrInvalidJSONBlock:
			response.BadRequest(w, "Bloco CIF com JSON malformado")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	var patientID *int64
	if raw := r.URL.Query().Get("paciente_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			patientID = &v
		}
	}

	resp, err := h.assessmentUsecase.List(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	resp, err := h.assessmentUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAssessmentNotFound {
			response.NotFound(w, "Avaliação não encontrada")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AssessmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	resp, err := h.assessmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAssessmentNotFound:
			response.NotFound(w, "Avaliação não encontrada")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Data de avaliação inválida")
		case usecase.ErrInvalidJSONBlock:
			response.BadRequest(w, "Bloco CIF com JSON malformado")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	if err := h.assessmentUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrAssessmentNotFound {
			response.NotFound(w, "Avaliação não encontrada")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Avaliação removida com sucesso"})
}

func (h *AssessmentHandler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.CreateAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.assessmentUsecase.AddAttachment(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrAssessmentNotFound {
			response.NotFound(w, "Avaliação não encontrada")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

func (h *AssessmentHandler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}
	attachmentID, ok := pathID(r, "anexoId")
	if !ok {
		response.BadRequest(w, "ID de anexo inválido")
		return
	}

	if err := h.assessmentUsecase.RemoveAttachment(r.Context(), id, attachmentID); err != nil {
		if err == usecase.ErrAttachmentNotFound {
			response.NotFound(w, "Anexo não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Anexo removido com sucesso"})
}
