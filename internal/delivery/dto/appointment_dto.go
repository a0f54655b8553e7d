package dto

type CreateAppointmentRequest struct {
	PacienteID     int64   `json:"paciente_id" validate:"required"`
	DataHora       string  `json:"data_hora" validate:"required"`
	DuracaoMinutos *int    `json:"duracao_minutos,omitempty" validate:"omitempty,min=1,max=480"`
	Observacoes    *string `json:"observacoes,omitempty"`
}

type UpdateAppointmentRequest struct {
	DataHora       *string `json:"data_hora,omitempty"`
	DuracaoMinutos *int    `json:"duracao_minutos,omitempty" validate:"omitempty,min=1,max=480"`
	Status         *string `json:"status,omitempty"`
	Observacoes    *string `json:"observacoes,omitempty"`
}

type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PacienteID      int64   `json:"paciente_id"`
	PacienteNome    string  `json:"paciente_nome,omitempty"`
	DataHora        string  `json:"data_hora"`
	DuracaoMinutos  int     `json:"duracao_minutos"`
	Status          string  `json:"status"`
	Observacoes     *string `json:"observacoes"`
	LembreteEnviado bool    `json:"lembrete_enviado"`
	DataCriacao     string  `json:"data_criacao"`
}

// CalendarEvent is the shape consumed by calendar widgets. Start and end
// are derived from data_hora plus duracao_minutos.
type CalendarEvent struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

type ReminderResponse struct {
	AgendamentoID int64   `json:"agendamento_id"`
	PacienteID    int64   `json:"paciente_id"`
	PacienteNome  string  `json:"paciente_nome"`
	Telefone      *string `json:"telefone"`
	Email         *string `json:"email"`
	DataHora      string  `json:"data_hora"`
}

type RemindersDispatchedResponse struct {
	Mensagem  string             `json:"mensagem"`
	Enviados  int                `json:"enviados"`
	Lembretes []ReminderResponse `json:"lembretes"`
}
