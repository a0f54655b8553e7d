package dto

type CreateProcedureRequest struct {
	Nome           string  `json:"nome" validate:"required,max=200"`
	Descricao      string  `json:"descricao,omitempty"`
	DuracaoMinutos *int    `json:"duracao_minutos,omitempty" validate:"omitempty,min=1,max=480"`
	Codigo         string  `json:"codigo,omitempty" validate:"omitempty,max=50"`
	Valor          *string `json:"valor,omitempty"`
}

type UpdateProcedureRequest struct {
	Nome           *string `json:"nome,omitempty" validate:"omitempty,max=200"`
	Descricao      *string `json:"descricao,omitempty"`
	DuracaoMinutos *int    `json:"duracao_minutos,omitempty" validate:"omitempty,min=1,max=480"`
	Codigo         *string `json:"codigo,omitempty" validate:"omitempty,max=50"`
	Valor          *string `json:"valor,omitempty"`
	Ativo          *bool   `json:"ativo,omitempty"`
}

type ProcedureResponse struct {
	ID             int64   `json:"id"`
	Nome           string  `json:"nome"`
	Descricao      string  `json:"descricao"`
	DuracaoMinutos *int    `json:"duracao_minutos"`
	Codigo         string  `json:"codigo"`
	Valor          *string `json:"valor"`
	Ativo          bool    `json:"ativo"`
	DataCriacao    string  `json:"data_criacao"`
}
