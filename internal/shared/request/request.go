package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"

	"catalog-backend/internal/shared/apperr"
	"catalog-backend/internal/shared/utils"
)

const (
	MsgInvalidID   = "Invalid id format"
	MsgInvalidBody = "Validation failed"
	MsgMalformed   = "Malformed request body"
)

func init() {
	// report json names instead of Go field names
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

// PathID reads a positive int64 path parameter
func PathID(c *gin.Context, name string) (int64, error) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		return 0, apperr.Validation(MsgInvalidID, map[string]string{name: "must be a positive integer"})
	}
	return id, nil
}

// BindJSON decodes the body into dst, then runs its Validate method.
// Every failure is returned as an apperr validation error with
// field-level details, except ozzo internal errors which stay 500.
func BindJSON(c *gin.Context, dst validation.Validatable) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return translateBindError(err)
	}

	if err := dst.Validate(); err != nil {
		var internal validation.InternalError
		if errors.As(err, &internal) {
			return fmt.Errorf("request validation: %w", internal.InternalError())
		}
		return apperr.Validation(MsgInvalidBody, flatten("", err))
	}
	return nil
}

func translateBindError(err error) error {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fieldPath(fe)] = tagMessage(fe)
		}
		return apperr.Validation(MsgInvalidBody, details)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperr.Validation(MsgMalformed, map[string]string{field: "must be of type " + typeErr.Type.String()})
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return apperr.Validation(MsgMalformed, map[string]string{"body": "must be valid JSON"})
	default:
		return apperr.Validation(MsgMalformed, map[string]string{"body": err.Error()})
	}
}

// fieldPath turns "BookSaveRequest.authors[0].id" into "authors[0].id"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be blank"
	case "min", "gte":
		return "must be no less than " + fe.Param()
	case "max", "lte":
		return "must be no greater than " + fe.Param()
	case "len":
		return "the length must be exactly " + fe.Param()
	default:
		return "is invalid"
	}
}

// flatten converts nested ozzo errors into dotted field paths.
// Slice elements are keyed by index: authors[0].id
func flatten(prefix string, err error) map[string]string {
	out := map[string]string{}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		key := prefix
		if key == "" {
			key = "body"
		}
		out[key] = err.Error()
		return out
	}

	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		for k, v := range flatten(joinPath(prefix, field), fieldErr) {
			out[k] = v
		}
	}
	return out
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	if _, err := strconv.Atoi(field); err == nil {
		return prefix + "[" + field + "]"
	}
	return prefix + "." + field
}
