package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/08Abhinay/portfolio/common"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// InvalidInputMessage is returned for every malformed or rejected request body.
const InvalidInputMessage = "Please check the provided information and try again."

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Normalizer is implemented by request bodies that clean their own fields
// before validation runs.
type Normalizer interface {
	Normalize()
}

func Bind[T any](c *gin.Context, dest *T) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(common.Errf(http.StatusRequestEntityTooLarge, "Request body is too large."))
			return false
		}
		LoggerFrom(c).Debug("request body rejected", zap.Error(err))
		c.Error(common.Errf(http.StatusBadRequest, InvalidInputMessage))
		return false
	}

	if n, ok := any(dest).(Normalizer); ok {
		n.Normalize()
	}

	if err := validate.Struct(dest); err != nil {
		c.Error(common.APIError{
			Status:  http.StatusBadRequest,
			Message: InvalidInputMessage,
			Fields:  FormatValidationErrors(err),
		})
		return false
	}

	return true
}

func FormatValidationErrors(err error) map[string]any {
	errs := map[string]any{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs
	}
	for _, e := range verrs {
		errs[e.Field()] = "failed " + e.Tag()
	}
	return errs
}
