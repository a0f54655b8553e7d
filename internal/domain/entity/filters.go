package entity

import "time"

// Domain-level filters for list queries. Repositories consume these to
// avoid coupling with delivery DTOs.

type PatientFilter struct {
	Ativo            *bool
	Arquivado        *bool
	FisioterapeutaID *int64
	Nome             string // ILIKE match on nome_completo
}

type ProcedureFilter struct {
	Ativo *bool
	Nome  string // ILIKE match on nome
}

type ProgressNoteFilter struct {
	PacienteID  *int64
	AvaliacaoID *int64
}

type AppointmentFilter struct {
	PacienteID *int64
	Status     string
	DataInicio *time.Time
	DataFim    *time.Time
}
