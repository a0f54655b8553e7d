package entity

import (
	"time"
)

// Assessment is a CIF-based physiotherapy evaluation (tabela avaliacoes).
//
// The four CIF blocks hold arbitrary nested documents serialized as text;
// they are validated for well-formedness at the boundary and stored verbatim.
type Assessment struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PacienteID int64 `gorm:"column:paciente_id;not null;index" json:"paciente_id"`

	// História clínica (COFFITO)
	QueixaPrincipal         string `gorm:"column:queixa_principal;type:text" json:"queixa_principal,omitempty"`
	HabitosVida             string `gorm:"column:habitos_vida;type:text" json:"habitos_vida,omitempty"`
	HistoriaAtualDoenca     string `gorm:"column:historia_atual_doenca;type:text" json:"historia_atual_doenca,omitempty"`
	HistoriaPregressaDoenca string `gorm:"column:historia_pregressa_doenca;type:text" json:"historia_pregressa_doenca,omitempty"`
	AntecedentesPessoais    string `gorm:"column:antecedentes_pessoais;type:text" json:"antecedentes_pessoais,omitempty"`
	AntecedentesFamiliares  string `gorm:"column:antecedentes_familiares;type:text" json:"antecedentes_familiares,omitempty"`
	TratamentosRealizados   string `gorm:"column:tratamentos_realizados;type:text" json:"tratamentos_realizados,omitempty"`

	// Exame clínico/físico
	ExameClinicoFisico   string `gorm:"column:exame_clinico_fisico;type:text" json:"exame_clinico_fisico,omitempty"`
	ExamesComplementares string `gorm:"column:exames_complementares;type:text" json:"exames_complementares,omitempty"`

	// Diagnóstico e plano terapêutico
	DiagnosticoFisioterapeutico string `gorm:"column:diagnostico_fisioterapeutico;type:text" json:"diagnostico_fisioterapeutico,omitempty"`
	PrognosticoFisioterapeutico string `gorm:"column:prognostico_fisioterapeutico;type:text" json:"prognostico_fisioterapeutico,omitempty"`
	ObjetivosTerapeuticos       string `gorm:"column:objetivos_terapeuticos;type:text" json:"objetivos_terapeuticos,omitempty"`
	RecursosMetodosTecnicas     string `gorm:"column:recursos_metodos_tecnicas;type:text" json:"recursos_metodos_tecnicas,omitempty"`
	QuantitativoAtendimentos    *int   `gorm:"column:quantitativo_atendimentos" json:"quantitativo_atendimentos,omitempty"`

	// Blocos CIF (documentos serializados, opacos)
	FuncoesCorpo           string `gorm:"column:funcoes_corpo;type:text" json:"-"`
	EstruturasCorpo        string `gorm:"column:estruturas_corpo;type:text" json:"-"`
	AtividadesParticipacao string `gorm:"column:atividades_participacao;type:text" json:"-"`
	FatoresAmbientais      string `gorm:"column:fatores_ambientais;type:text" json:"-"`

	DataAvaliacao   time.Time `gorm:"column:data_avaliacao;not null" json:"data_avaliacao"`
	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime" json:"data_atualizacao"`

	// Relationships
	Anexos    []AssessmentAttachment `gorm:"foreignKey:AvaliacaoID;constraint:OnDelete:CASCADE" json:"anexos,omitempty"`
	Evolucoes []ProgressNote         `gorm:"foreignKey:AvaliacaoID" json:"-"`
}

func (Assessment) TableName() string {
	return "avaliacoes"
}

// RedactNarrative overwrites the free-text clinical fields with the fixed
// redaction marker. The CIF blocks are not personal narrative and stay.
func (a *Assessment) RedactNarrative() {
	a.QueixaPrincipal = RedactedMarker
	a.HabitosVida = RedactedMarker
	a.HistoriaAtualDoenca = RedactedMarker
	a.HistoriaPregressaDoenca = RedactedMarker
	a.AntecedentesPessoais = RedactedMarker
	a.AntecedentesFamiliares = RedactedMarker
	a.TratamentosRealizados = RedactedMarker
	a.ExameClinicoFisico = RedactedMarker
	a.ExamesComplementares = RedactedMarker
	a.DiagnosticoFisioterapeutico = RedactedMarker
	a.PrognosticoFisioterapeutico = RedactedMarker
	a.ObjetivosTerapeuticos = RedactedMarker
	a.RecursosMetodosTecnicas = RedactedMarker
}

// AssessmentAttachment stores attachment metadata for an assessment
// (tabela anexos_avaliacoes). The file itself lives in external storage.
type AssessmentAttachment struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AvaliacaoID  int64     `gorm:"column:avaliacao_id;not null;index" json:"avaliacao_id"`
	NomeArquivo  string    `gorm:"column:nome_arquivo;type:varchar(255);not null" json:"nome_arquivo"`
	TipoArquivo  string    `gorm:"column:tipo_arquivo;type:varchar(50)" json:"tipo_arquivo,omitempty"`
	TamanhoBytes *int64    `gorm:"column:tamanho_bytes" json:"tamanho_bytes,omitempty"`
	URLArquivo   string    `gorm:"column:url_arquivo;type:varchar(500)" json:"url_arquivo,omitempty"`
	Categoria    string    `gorm:"column:categoria;type:varchar(100)" json:"categoria,omitempty"`
	DataUpload   time.Time `gorm:"column:data_upload;autoCreateTime" json:"data_upload"`
}

func (AssessmentAttachment) TableName() string {
	return "anexos_avaliacoes"
}
