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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Data de nascimento inválida, use AAAA-MM-DD")
		case usecase.ErrPractitionerNotFound:
			response.BadRequest(w, "Fisioterapeuta não encontrado")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

// List aceita os filtros ativo, arquivado, fisioterapeuta_id e nome.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &entity.PatientFilter{
		Nome: r.URL.Query().Get("nome"),
	}
	if raw := r.URL.Query().Get("ativo"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Ativo = &v
		}
	}
	if raw := r.URL.Query().Get("arquivado"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Arquivado = &v
		}
	}
	if raw := r.URL.Query().Get("fisioterapeuta_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.FisioterapeutaID = &v
		}
	}

	resp, err := h.patientUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	resp, err := h.patientUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Paciente não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	resp, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrPatientErased:
			response.BadRequest(w, "Registro excluído conforme LGPD não pode ser alterado")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Data de nascimento inválida, use AAAA-MM-DD")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// Delete faz o soft delete do cadastro (ativo=false).
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Paciente não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Paciente excluído com sucesso"})
}

func (h *PatientHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.ArchivePatientRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	resp, err := h.patientUsecase.Archive(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrPatientErased:
			response.BadRequest(w, "Registro excluído conforme LGPD permanece arquivado")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// MedicalRecord retorna o prontuário completo do paciente.
func (h *PatientHandler) MedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	resp, err := h.patientUsecase.MedicalRecord(r.Context(), id)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Paciente não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}
