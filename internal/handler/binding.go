package handler

import (
	"errors"
	"reflect"
	"strings"

	"walks-api/pkg/response"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report validation failures under the json field name clients actually sent.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingFieldErrors flattens gin binding failures into field-level messages
func bindingFieldErrors(err error) []response.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []response.FieldError{{Field: "body", Message: "invalid request payload"}}
	}

	fields := make([]response.FieldError, 0, len(verrs))
	for _, v := range verrs {
		name := v.Field()
		if name == "" {
			name = "body"
		}
		fields = append(fields, response.FieldError{
			Field:   strings.ToLower(name[:1]) + name[1:],
			Message: "failed validation on '" + v.Tag() + "'",
		})
	}
	return fields
}
