package dto

type ConsentRequest struct {
	ConsentimentoTratamentoDados *bool  `json:"consentimento_tratamento_dados,omitempty"`
	ConsentimentoComunicacao     *bool  `json:"consentimento_comunicacao,omitempty"`
	ConsentimentoPesquisa        *bool  `json:"consentimento_pesquisa,omitempty"`
	VersaoTermos                 string `json:"versao_termos,omitempty" validate:"omitempty,max=10"`
}

type ConsentResponse struct {
	Mensagem          string `json:"mensagem"`
	DataConsentimento string `json:"data_consentimento"`
}

// ExportResponse is the JSON portability envelope.
type ExportResponse struct {
	PacienteID     int64      `json:"paciente_id"`
	DataExportacao string     `json:"data_exportacao"`
	Dados          ExportData `json:"dados"`
}

type ExportData struct {
	InformacoesPessoais PatientResponse        `json:"informacoes_pessoais"`
	Avaliacoes          []AssessmentResponse   `json:"avaliacoes"`
	Evolucoes           []ProgressNoteResponse `json:"evolucoes"`
	Agendamentos        []AppointmentResponse  `json:"agendamentos"`
}

type ErasureRequest struct {
	Motivo string `json:"motivo,omitempty" validate:"omitempty,max=500"`
}

type ErasureResponse struct {
	Mensagem          string `json:"mensagem"`
	PacienteID        int64  `json:"paciente_id"`
	DataExclusao      string `json:"data_exclusao"`
	RegistrosAfetados int    `json:"registros_afetados"`
}

// RectifyRequest carries the allow-listed fields open to correction.
// Absent fields are left untouched.
type RectifyRequest struct {
	NomeCompleto        *string `json:"nome_completo,omitempty" validate:"omitempty,max=200"`
	Email               *string `json:"email,omitempty" validate:"omitempty,email"`
	Telefone            *string `json:"telefone,omitempty" validate:"omitempty,max=20"`
	EnderecoResidencial *string `json:"endereco_residencial,omitempty"`
	EnderecoComercial   *string `json:"endereco_comercial,omitempty"`
	Profissao           *string `json:"profissao,omitempty" validate:"omitempty,max=100"`
	EstadoCivil         *string `json:"estado_civil,omitempty" validate:"omitempty,max=20"`
}

type FieldChange struct {
	Anterior interface{} `json:"anterior"`
	Novo     interface{} `json:"novo"`
}

type RectifyResponse struct {
	Mensagem        string                 `json:"mensagem"`
	CamposAlterados []string               `json:"campos_alterados"`
	Alteracoes      map[string]FieldChange `json:"alteracoes"`
	DataAtualizacao string                 `json:"data_atualizacao"`
}

type ConsentState struct {
	ConsentimentoTratamentoDados bool    `json:"consentimento_tratamento_dados"`
	ConsentimentoComunicacao     bool    `json:"consentimento_comunicacao"`
	ConsentimentoPesquisa        bool    `json:"consentimento_pesquisa"`
	DataConsentimento            *string `json:"data_consentimento"`
	VersaoTermos                 string  `json:"versao_termos"`
}

type TreatmentReportResponse struct {
	PacienteID            int64              `json:"paciente_id"`
	NomePaciente          string             `json:"nome_paciente"`
	DataRelatorio         string             `json:"data_relatorio"`
	Consentimentos        ConsentState       `json:"consentimentos"`
	FinalidadesTratamento []string           `json:"finalidades_tratamento"`
	BaseLegal             string             `json:"base_legal"`
	PrazoRetencao         string             `json:"prazo_retencao"`
	HistoricoAcessos      []AuditLogResponse `json:"historico_acessos"`
}
