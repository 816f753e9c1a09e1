package validation

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "asset-system/pkg/errors"
)

// CustomValidator adapts validator/v10 to echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Dados inválidos", err, nil)
	}
	return nil
}

func New() *CustomValidator {
	v := validator.New()

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("failed to register custom validation rules: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
