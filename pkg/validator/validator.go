package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " é obrigatório"
			case "email":
				errors[field] = field + " deve ser um e-mail válido"
			case "min":
				errors[field] = field + " deve ter pelo menos " + e.Param() + " caracteres"
			case "max":
				errors[field] = field + " deve ter no máximo " + e.Param() + " caracteres"
			case "oneof":
				errors[field] = field + " deve ser um dos valores: " + e.Param()
			default:
				errors[field] = field + " é inválido"
			}
		}
	}

	return errors
}
