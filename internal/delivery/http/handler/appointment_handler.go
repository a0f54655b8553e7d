package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/usecase"
	"fisiogestao/pkg/response"
	"fisiogestao/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotConflict:
			response.Conflict(w, "Já existe um agendamento neste horário")
		case usecase.ErrPatientNotFound:
			response.BadRequest(w, "Paciente não encontrado")
		case usecase.ErrPatientErased:
			response.BadRequest(w, "Registro excluído conforme LGPD não pode ser agendado")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Data e hora inválidas, use o formato RFC 3339")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AppointmentFilter{
		Status: r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("paciente_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.PacienteID = &v
		}
	}
	if raw := r.URL.Query().Get("data_inicio"); raw != "" {
		if v, err := parseDateOrTime(raw); err == nil {
			filter.DataInicio = &v
		}
	}
	if raw := r.URL.Query().Get("data_fim"); raw != "" {
		if v, err := parseDateOrTime(raw); err == nil {
			filter.DataFim = &v
		}
	}

	resp, err := h.appointmentUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	resp, err := h.appointmentUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Agendamento não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	resp, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Agendamento não encontrado")
		case usecase.ErrSlotConflict:
			response.Conflict(w, "Já existe um agendamento neste horário")
		case usecase.ErrInvalidStatus:
			response.BadRequest(w, "Status de agendamento inválido")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Data e hora inválidas, use o formato RFC 3339")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// Cancel implementa a remoção como cancelamento.
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), id); err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Agendamento não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Agendamento cancelado com sucesso"})
}

// Calendar exige data_inicio e data_fim.
func (h *AppointmentHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	startRaw := r.URL.Query().Get("data_inicio")
	endRaw := r.URL.Query().Get("data_fim")
	if startRaw == "" || endRaw == "" {
		response.BadRequest(w, "Parâmetros data_inicio e data_fim são obrigatórios")
		return
	}

	start, err := parseDateOrTime(startRaw)
	if err != nil {
		response.BadRequest(w, "Parâmetro data_inicio inválido")
		return
	}
	end, err := parseDateOrTime(endRaw)
	if err != nil {
		response.BadRequest(w, "Parâmetro data_fim inválido")
		return
	}

	resp, err := h.appointmentUsecase.Calendar(r.Context(), start, end)
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) DispatchReminders(w http.ResponseWriter, r *http.Request) {
	resp, err := h.appointmentUsecase.DispatchReminders(r.Context())
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func parseDateOrTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
