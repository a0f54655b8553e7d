package dto

type RegisterRequest struct {
	Nome          string `json:"nome" validate:"required,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Senha         string `json:"senha" validate:"required,min=8"`
	Crefito       string `json:"crefito" validate:"required,max=20"`
	Especialidade string `json:"especialidade,omitempty" validate:"omitempty,max=100"`
	Telefone      string `json:"telefone,omitempty" validate:"omitempty,max=20"`
	IsAdmin       bool   `json:"is_admin,omitempty"`
}

type RegisterResponse struct {
	Mensagem string `json:"mensagem"`
	ID       int64  `json:"id"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type LoginResponse struct {
	Token          string               `json:"token"`
	Fisioterapeuta *PractitionerSummary `json:"fisioterapeuta"`
}

// PractitionerSummary is the compact identity block returned on login.
type PractitionerSummary struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	Email   string `json:"email"`
	Crefito string `json:"crefito"`
	IsAdmin bool   `json:"is_admin"`
}

type ChangePasswordRequest struct {
	SenhaAtual string `json:"senha_atual" validate:"required"`
	SenhaNova  string `json:"senha_nova" validate:"required,min=8"`
}

type PractitionerResponse struct {
	ID              int64   `json:"id"`
	Nome            string  `json:"nome"`
	Email           string  `json:"email"`
	Crefito         string  `json:"crefito"`
	Especialidade   string  `json:"especialidade,omitempty"`
	Telefone        string  `json:"telefone,omitempty"`
	IsAdmin         bool    `json:"is_admin"`
	Ativo           bool    `json:"ativo"`
	DataUltimoLogin *string `json:"data_ultimo_login"`
	DataCriacao     string  `json:"data_criacao"`
	DataAtualizacao string  `json:"data_atualizacao"`
}
