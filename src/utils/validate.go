package utils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct ตรวจ payload ตาม validate tag
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
