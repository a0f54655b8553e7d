package handler

import (
	"encoding/json"
	"net/http"

	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/delivery/http/middleware"
	"fisiogestao/internal/usecase"
	"fisiogestao/pkg/response"
	"fisiogestao/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register cria uma nova conta de fisioterapeuta.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email já cadastrado")
		case usecase.ErrCrefitoAlreadyExists:
			response.Conflict(w, "CREFITO já cadastrado")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Credenciais inválidas")
		case usecase.ErrAccountLocked:
			response.Unauthorized(w, "Conta bloqueada por excesso de tentativas. Contate o administrador.")
		case usecase.ErrAccountInactive:
			response.Unauthorized(w, "Conta inativa")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := middleware.GetPractitionerIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), practitionerID, tokenID); err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Logout realizado com sucesso"})
}

// Profile retorna os dados do fisioterapeuta autenticado.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := middleware.GetPractitionerIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	resp, err := h.authUsecase.GetProfile(r.Context(), practitionerID)
	if err != nil {
		if err == usecase.ErrPractitionerNotFound {
			response.NotFound(w, "Fisioterapeuta não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := middleware.GetPractitionerIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.authUsecase.ChangePassword(r.Context(), practitionerID, &req); err != nil {
		switch err {
		case usecase.ErrWrongCurrentPassword:
			response.Unauthorized(w, "Senha atual incorreta")
		case usecase.ErrPractitionerNotFound:
			response.NotFound(w, "Fisioterapeuta não encontrado")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Senha alterada com sucesso"})
}

// UnlockAccount é restrito a administradores.
func (h *AuthHandler) UnlockAccount(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "ID inválido")
		return
	}

	if err := h.authUsecase.UnlockAccount(r.Context(), targetID); err != nil {
		if err == usecase.ErrPractitionerNotFound {
			response.NotFound(w, "Fisioterapeuta não encontrado")
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{Mensagem: "Conta desbloqueada com sucesso"})
}
