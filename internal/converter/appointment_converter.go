package converter

import (
	"time"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	var obs *string
	if a.Observacoes != "" {
		obs = &a.Observacoes
	}
	resp := &dto.AppointmentResponse{
		ID:              a.ID,
		PacienteID:      a.PacienteID,
		DataHora:        formatTime(a.DataHora),
		DuracaoMinutos:  a.DuracaoMinutos,
		Status:          string(a.Status),
		Observacoes:     obs,
		LembreteEnviado: a.LembreteEnviado,
		DataCriacao:     formatTime(a.DataCriacao),
	}
	if a.Paciente != nil {
		resp.PacienteNome = a.Paciente.NomeCompleto
	}
	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToCalendarEvent projects an appointment onto a calendar event.
// The end instant is the start plus the slot duration.
func AppointmentToCalendarEvent(a *entity.Appointment) dto.CalendarEvent {
	title := "Atendimento"
	if a.Paciente != nil {
		title = a.Paciente.NomeCompleto
	}
	end := a.DataHora.Add(time.Duration(a.DuracaoMinutos) * time.Minute)
	return dto.CalendarEvent{
		ID:     a.ID,
		Title:  title,
		Start:  formatTime(a.DataHora),
		End:    formatTime(end),
		Status: string(a.Status),
	}
}

// AppointmentsToCalendarEvents converts a slice of appointments to events.
func AppointmentsToCalendarEvents(appointments []entity.Appointment) []dto.CalendarEvent {
	events := make([]dto.CalendarEvent, len(appointments))
	for i := range appointments {
		events[i] = AppointmentToCalendarEvent(&appointments[i])
	}
	return events
}

// AppointmentToReminder builds the reminder payload for an appointment,
// pulling contact data from the preloaded patient.
func AppointmentToReminder(a *entity.Appointment) dto.ReminderResponse {
	r := dto.ReminderResponse{
		AgendamentoID: a.ID,
		PacienteID:    a.PacienteID,
		DataHora:      formatTime(a.DataHora),
	}
	if a.Paciente != nil {
		r.PacienteNome = a.Paciente.NomeCompleto
		r.Telefone = a.Paciente.Telefone
		r.Email = a.Paciente.Email
	}
	return r
}
