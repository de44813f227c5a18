package ate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRepr is returned when an inbound representation fails validation.
var ErrInvalidRepr = errors.New("invalid representation")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the validation tags of an inbound representation.
func Validate(repr any) error {
	err := validate.Struct(repr)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRepr, err)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRepr, strings.Join(fields, "; "))
}
