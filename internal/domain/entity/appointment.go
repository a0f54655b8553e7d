package entity

import (
	"time"
)

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "agendado"
	AppointmentStatusConfirmed AppointmentStatus = "confirmado"
	AppointmentStatusCompleted AppointmentStatus = "realizado"
	AppointmentStatusCancelled AppointmentStatus = "cancelado"
)

// Appointment is a scheduled session slot (tabela agendamentos).
// At most one non-cancelled appointment may exist at a given timestamp.
type Appointment struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID int64 `gorm:"column:paciente_id;not null;index" json:"paciente_id"`

	DataHora        time.Time         `gorm:"column:data_hora;not null;index" json:"data_hora"`
	DuracaoMinutos  int               `gorm:"column:duracao_minutos;not null;default:60" json:"duracao_minutos"`
	Status          AppointmentStatus `gorm:"column:status;type:varchar(20);not null;default:'agendado';index" json:"status"`
	Observacoes     string            `gorm:"column:observacoes;type:text" json:"observacoes,omitempty"`
	LembreteEnviado bool              `gorm:"column:lembrete_enviado;not null;default:false" json:"lembrete_enviado"`

	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"data_atualizacao"`

	// Relationships
	Paciente *Patient `gorm:"foreignKey:PacienteID" json:"paciente,omitempty"`
}

func (Appointment) TableName() string {
	return "agendamentos"
}

// IsCancelled checks if the appointment was cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel marks the appointment as cancelled. Cancelled slots free their
// timestamp for new bookings.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}
