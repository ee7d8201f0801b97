package application

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"

	"volleyhub/internal/domain"
)

var validate = validator.New()

var tracer = otel.Tracer("volleyhub/application")

// validationError folds validator output into the given domain sentinel so
// transports can still resolve a code.
func validationError(err error, sentinel *domain.Error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("%w: field %s failed %q", sentinel, f.Field(), f.Tag())
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
