package dto

type CreatePatientRequest struct {
	NomeCompleto        string  `json:"nome_completo" validate:"required,max=200"`
	DataNascimento      string  `json:"data_nascimento" validate:"required"`
	FisioterapeutaID    int64   `json:"fisioterapeuta_id" validate:"required"`
	Genero              *string `json:"genero,omitempty"`
	EstadoCivil         *string `json:"estado_civil,omitempty"`
	Profissao           *string `json:"profissao,omitempty"`
	Naturalidade        *string `json:"naturalidade,omitempty"`
	LocalNascimento     *string `json:"local_nascimento,omitempty"`
	Telefone            *string `json:"telefone,omitempty"`
	Email               *string `json:"email,omitempty" validate:"omitempty,email"`
	EnderecoResidencial *string `json:"endereco_residencial,omitempty"`
	EnderecoComercial   *string `json:"endereco_comercial,omitempty"`
}

// UpdatePatientRequest carries a partial patch: only non-nil fields are applied.
type UpdatePatientRequest struct {
	NomeCompleto        *string `json:"nome_completo,omitempty"`
	DataNascimento      *string `json:"data_nascimento,omitempty"`
	Genero              *string `json:"genero,omitempty"`
	EstadoCivil         *string `json:"estado_civil,omitempty"`
	Profissao           *string `json:"profissao,omitempty"`
	Naturalidade        *string `json:"naturalidade,omitempty"`
	LocalNascimento     *string `json:"local_nascimento,omitempty"`
	Telefone            *string `json:"telefone,omitempty"`
	Email               *string `json:"email,omitempty"`
	EnderecoResidencial *string `json:"endereco_residencial,omitempty"`
	EnderecoComercial   *string `json:"endereco_comercial,omitempty"`
}

type ArchivePatientRequest struct {
	Arquivar *bool `json:"arquivar,omitempty"`
}

type PatientResponse struct {
	ID                  int64   `json:"id"`
	FisioterapeutaID    int64   `json:"fisioterapeuta_id"`
	NomeCompleto        string  `json:"nome_completo"`
	DataNascimento      string  `json:"data_nascimento"`
	Genero              *string `json:"genero"`
	EstadoCivil         *string `json:"estado_civil"`
	Profissao           *string `json:"profissao"`
	Naturalidade        *string `json:"naturalidade"`
	LocalNascimento     *string `json:"local_nascimento"`
	Telefone            *string `json:"telefone"`
	Email               *string `json:"email"`
	EnderecoResidencial *string `json:"endereco_residencial"`
	EnderecoComercial   *string `json:"endereco_comercial"`
	Ativo               bool    `json:"ativo"`
	Arquivado           bool    `json:"arquivado"`

	ConsentimentoTratamentoDados bool    `json:"consentimento_tratamento_dados"`
	ConsentimentoComunicacao     bool    `json:"consentimento_comunicacao"`
	ConsentimentoPesquisa        bool    `json:"consentimento_pesquisa"`
	DataConsentimento            *string `json:"data_consentimento"`
	VersaoTermos                 string  `json:"versao_termos"`

	DataCriacao     string `json:"data_criacao"`
	DataAtualizacao string `json:"data_atualizacao"`
}

// MedicalRecordResponse is the full clinical record (prontuário) of a patient.
type MedicalRecordResponse struct {
	Paciente     *PatientResponse       `json:"paciente"`
	Avaliacoes   []AssessmentResponse   `json:"avaliacoes"`
	Evolucoes    []ProgressNoteResponse `json:"evolucoes"`
	Agendamentos []AppointmentResponse  `json:"agendamentos"`
}
