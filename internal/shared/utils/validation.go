package utils

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotBlank rejects whitespace-only strings with the same code as validation.Required.
// Empty and nil values pass so it composes with Required and When.
var NotBlank = validation.By(func(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	}
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.ErrRequired
	}
	return nil
})
