package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/usecase"
	"fisiogestao/pkg/response"
	"fisiogestao/pkg/validator"
)

type ComplianceHandler struct {
	complianceUsecase usecase.ComplianceUsecase
	validator         *validator.CustomValidator
}

func NewComplianceHandler(complianceUsecase usecase.ComplianceUsecase, validator *validator.CustomValidator) *ComplianceHandler {
	return &ComplianceHandler{
		complianceUsecase: complianceUsecase,
		validator:         validator,
	}
}

func (h *ComplianceHandler) UpdateConsent(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "pacienteId")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.ConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.complianceUsecase.UpdateConsent(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrPatientErased:
			response.BadRequest(w, "Registro excluído conforme LGPD")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// ExportData atende o direito de portabilidade. O parâmetro formato aceita
// json (padrão) ou csv.
func (h *ComplianceHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "pacienteId")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	formato := r.URL.Query().Get("formato")
	switch formato {
	case "", "json":
		resp, err := h.complianceUsecase.ExportData(r.Context(), patientID)
		if err != nil {
			if err == usecase.ErrPatientNotFound {
				response.NotFound(w, "Paciente não encontrado")
				return
			}
			response.InternalServerError(w, "")
			return
		}
		response.JSON(w, http.StatusOK, resp)
	case "csv":
		filename, content, err := h.complianceUsecase.ExportDataCSV(r.Context(), patientID)
		if err != nil {
			if err == usecase.ErrPatientNotFound {
				response.NotFound(w, "Paciente não encontrado")
				return
			}
			response.InternalServerError(w, "")
			return
		}
		response.CSVDownload(w, filename, []byte(content))
	default:
		response.BadRequest(w, "Formato não suportado, use json ou csv")
	}
}

// EraseData atende o direito ao esquecimento. Agendamentos futuros não
// cancelados bloqueiam a exclusão sem alterar nada.
func (h *ComplianceHandler) EraseData(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "pacienteId")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.ErasureRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	resp, err := h.complianceUsecase.EraseData(r.Context(), patientID, &req)
	if err != nil {
		var blocked *usecase.ErasureBlockedError
		switch {
		case errors.As(err, &blocked):
			response.JSON(w, http.StatusBadRequest, response.ErrorBody{
				Erro:         "Exclusão bloqueada por obrigações pendentes",
				Impedimentos: blocked.Impedimentos,
			})
		case err == usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case err == usecase.ErrPatientErased:
			response.BadRequest(w, "Dados já excluídos conforme LGPD")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *ComplianceHandler) RectifyData(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "pacienteId")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.RectifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.complianceUsecase.RectifyData(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrPatientErased:
			response.BadRequest(w, "Registro excluído conforme LGPD não pode ser retificado")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *ComplianceHandler) TreatmentReport(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "pacienteId")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	resp, err := h.complianceUsecase.TreatmentReport(r.Context(), patientID)
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
