package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			// keep the ValidationErrors in the chain so the response
			// layer maps this to a client error
			firstError := vErrs[0]
			return fmt.Errorf("field [%s] failed rule [%s]: %w",
				firstError.Field(),
				firstError.Tag(),
				vErrs)
		}
	}
	return nil
}
