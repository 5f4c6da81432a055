package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que falló la validación y el tag que no cumplió.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("campo '%s' no cumple '%s=%s'", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("campo '%s' no cumple '%s'", e.Field, e.Tag)
}

var validate = validator.New()

func init() {
	// Teléfonos E.164 simplificado: +, indicativo y 7-14 dígitos.
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !strings.HasPrefix(s, "+") || len(s) < 8 || len(s) > 16 {
			return false
		}
		for _, r := range s[1:] {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}

// ValidateStruct valida los tags `validate` de un struct y devuelve los campos fallidos.
func ValidateStruct(data interface{}) []FieldError {
	var errs []FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, FieldError{
				Field: fe.StructNamespace(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return errs
}
