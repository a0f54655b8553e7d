package dto

import "encoding/json"

type CreateAssessmentRequest struct {
	PacienteID    int64  `json:"paciente_id" validate:"required"`
	DataAvaliacao string `json:"data_avaliacao,omitempty"`

	QueixaPrincipal         string `json:"queixa_principal,omitempty"`
	HabitosVida             string `json:"habitos_vida,omitempty"`
	HistoriaAtualDoenca     string `json:"historia_atual_doenca,omitempty"`
	HistoriaPregressaDoenca string `json:"historia_pregressa_doenca,omitempty"`
	AntecedentesPessoais    string `json:"antecedentes_pessoais,omitempty"`
	AntecedentesFamiliares  string `json:"antecedentes_familiares,omitempty"`
	TratamentosRealizados   string `json:"tratamentos_realizados,omitempty"`

	ExameClinicoFisico   string `json:"exame_clinico_fisico,omitempty"`
	ExamesComplementares string `json:"exames_complementares,omitempty"`

	DiagnosticoFisioterapeutico string `json:"diagnostico_fisioterapeutico,omitempty"`
	PrognosticoFisioterapeutico string `json:"prognostico_fisioterapeutico,omitempty"`
	ObjetivosTerapeuticos       string `json:"objetivos_terapeuticos,omitempty"`
	RecursosMetodosTecnicas     string `json:"recursos_metodos_tecnicas,omitempty"`
	QuantitativoAtendimentos    *int   `json:"quantitativo_atendimentos,omitempty" validate:"omitempty,min=0"`

	FuncoesCorpo           json.RawMessage `json:"funcoes_corpo,omitempty"`
	EstruturasCorpo        json.RawMessage `json:"estruturas_corpo,omitempty"`
	AtividadesParticipacao json.RawMessage `json:"atividades_participacao,omitempty"`
	FatoresAmbientais      json.RawMessage `json:"fatores_ambientais,omitempty"`
}

type UpdateAssessmentRequest struct {
	DataAvaliacao *string `json:"data_avaliacao,omitempty"`

	QueixaPrincipal         *string `json:"queixa_principal,omitempty"`
	HabitosVida             *string `json:"habitos_vida,omitempty"`
	HistoriaAtualDoenca     *string `json:"historia_atual_doenca,omitempty"`
	HistoriaPregressaDoenca *string `json:"historia_pregressa_doenca,omitempty"`
	AntecedentesPessoais    *string `json:"antecedentes_pessoais,omitempty"`
	AntecedentesFamiliares  *string `json:"antecedentes_familiares,omitempty"`
	TratamentosRealizados   *string `json:"tratamentos_realizados,omitempty"`

	ExameClinicoFisico   *string `json:"exame_clinico_fisico,omitempty"`
	ExamesComplementares *string `json:"exames_complementares,omitempty"`

	DiagnosticoFisioterapeutico *string `json:"diagnostico_fisioterapeutico,omitempty"`
	PrognosticoFisioterapeutico *string `json:"prognostico_fisioterapeutico,omitempty"`
	ObjetivosTerapeuticos       *string `json:"objetivos_terapeuticos,omitempty"`
	RecursosMetodosTecnicas     *string `json:"recursos_metodos_tecnicas,omitempty"`
	QuantitativoAtendimentos    *int    `json:"quantitativo_atendimentos,omitempty" validate:"omitempty,min=0"`

	FuncoesCorpo           json.RawMessage `json:"funcoes_corpo,omitempty"`
	EstruturasCorpo        json.RawMessage `json:"estruturas_corpo,omitempty"`
	AtividadesParticipacao json.RawMessage `json:"atividades_participacao,omitempty"`
	FatoresAmbientais      json.RawMessage `json:"fatores_ambientais,omitempty"`
}

type AssessmentResponse struct {
	ID            int64  `json:"id"`
	PacienteID    int64  `json:"paciente_id"`
	DataAvaliacao string `json:"data_avaliacao"`

	QueixaPrincipal         string `json:"queixa_principal"`
	HabitosVida             string `json:"habitos_vida"`
	HistoriaAtualDoenca     string `json:"historia_atual_doenca"`
	HistoriaPregressaDoenca string `json:"historia_pregressa_doenca"`
	AntecedentesPessoais    string `json:"antecedentes_pessoais"`
	AntecedentesFamiliares  string `json:"antecedentes_familiares"`
	TratamentosRealizados   string `json:"tratamentos_realizados"`

	ExameClinicoFisico   string `json:"exame_clinico_fisico"`
	ExamesComplementares string `json:"exames_complementares"`

	DiagnosticoFisioterapeutico string `json:"diagnostico_fisioterapeutico"`
	PrognosticoFisioterapeutico string `json:"prognostico_fisioterapeutico"`
	ObjetivosTerapeuticos       string `json:"objetivos_terapeuticos"`
	RecursosMetodosTecnicas     string `json:"recursos_metodos_tecnicas"`
	QuantitativoAtendimentos    *int   `json:"quantitativo_atendimentos"`

	FuncoesCorpo           json.RawMessage `json:"funcoes_corpo"`
	EstruturasCorpo        json.RawMessage `json:"estruturas_corpo"`
	AtividadesParticipacao json.RawMessage `json:"atividades_participacao"`
	FatoresAmbientais      json.RawMessage `json:"fatores_ambientais"`

	DataCriacao     string `json:"data_criacao"`
	DataAtualizacao string `json:"data_atualizacao"`

	Anexos []AttachmentResponse `json:"anexos,omitempty"`
}

type CreateAttachmentRequest struct {
	NomeArquivo  string `json:"nome_arquivo" validate:"required,max=255"`
	TipoArquivo  string `json:"tipo_arquivo,omitempty" validate:"omitempty,max=50"`
	TamanhoBytes *int64 `json:"tamanho_bytes,omitempty" validate:"omitempty,min=0"`
	URLArquivo   string `json:"url_arquivo,omitempty" validate:"omitempty,max=500"`
	Categoria    string `json:"categoria,omitempty" validate:"omitempty,max=100"`
}

type AttachmentResponse struct {
	ID           int64  `json:"id"`
	AvaliacaoID  int64  `json:"avaliacao_id"`
	NomeArquivo  string `json:"nome_arquivo"`
	TipoArquivo  string `json:"tipo_arquivo"`
	TamanhoBytes *int64 `json:"tamanho_bytes"`
	URLArquivo   string `json:"url_arquivo"`
	Categoria    string `json:"categoria"`
	DataUpload   string `json:"data_upload"`
}
