// Package validate wraps go-playground/validator behind a tiny API.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bostel-e/christshop/internal/util"
)

// v is the package-level singleton validator. Custom rules are registered
// at package load time, before the first call to Struct.
var v = validator.New()

func init() {
	// "phone" accepts digits with an optional leading plus, spaces and
	// hyphens. Normalization happens later in the service layer.
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return util.IsValidPhone(fl.Field().String())
	})
}

// Struct validates the given struct using its validate tags and returns a
// human-readable error, or nil.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var msgs []string
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
