package dto

type AuditLogResponse struct {
	ID               int64   `json:"id"`
	FisioterapeutaID *int64  `json:"fisioterapeuta_id"`
	Acao             string  `json:"acao"`
	Tabela           *string `json:"tabela"`
	RegistroID       *int64  `json:"registro_id"`
	DadosAnteriores  *string `json:"dados_anteriores"`
	DadosNovos       *string `json:"dados_novos"`
	IPAddress        string  `json:"ip_address"`
	UserAgent        string  `json:"user_agent"`
	DataHora         string  `json:"data_hora"`
	Sucesso          bool    `json:"sucesso"`
	Observacoes      string  `json:"observacoes"`
}

type AuditLogListResponse struct {
	Total int                `json:"total"`
	Logs  []AuditLogResponse `json:"logs"`
}
