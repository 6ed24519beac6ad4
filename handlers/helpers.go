package handlers

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/ironnest/ironnest-backend/errors"
)

// RegisterValidatorTagNames makes validator errors report JSON field names
// instead of Go struct field names. Called once during router setup.
func RegisterValidatorTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			_ = c.Error(apperrors.ValidationFailedFields("validation_failed", fieldErrors(verrs)))
			return false
		}
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}

func fieldErrors(verrs validator.ValidationErrors) []apperrors.FieldError {
	out := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		reason := "is invalid"
		switch fe.Tag() {
		case "required":
			reason = "is required"
		case "email":
			reason = "must be a valid email address"
		case "max":
			reason = "must be at most " + fe.Param() + " characters"
		}
		out = append(out, apperrors.FieldError{Field: fe.Field(), Reason: reason})
	}
	return out
}

// blankFields reports the fields whose trimmed value is empty. Binding's
// required tag accepts whitespace-only strings, so create handlers re-check
// after trimming.
func blankFields(pairs [][2]string) []apperrors.FieldError {
	var out []apperrors.FieldError
	for _, p := range pairs {
		if strings.TrimSpace(p[1]) == "" {
			out = append(out, apperrors.FieldError{Field: p[0], Reason: "must not be blank"})
		}
	}
	return out
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperrors.ValidationFailed("invalid_id", "id must be a positive integer"))
		return 0, false
	}
	return id, true
}
