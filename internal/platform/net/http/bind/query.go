package bind

import (
	"net/http"
	"reflect"
	"strconv"

	perr "folkarchive/internal/platform/errors"
	"folkarchive/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

// ParseQuery decodes query string parameters into T by `query` tag, validates
// the result, and maps failures to project errors. An absent or blank
// parameter leaves the field at its zero value so `omitempty` rules can skip
// it
func ParseQuery[T any](r *http.Request) (T, error) {
	var zero T
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	rt := rv.Type()
	q := r.URL.Query()

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := f.Tag.Get("query")
		if name == "" || name == "-" {
			continue
		}
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		switch f.Type.Kind() {
		case reflect.String:
			rv.Field(i).SetString(raw)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return zero, perr.Newf(perr.ErrorCodeValidation, "%s must be an integer", name)
			}
			rv.Field(i).SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return zero, perr.Newf(perr.ErrorCodeValidation, "%s must be a boolean", name)
			}
			rv.Field(i).SetBool(b)
		default:
			return zero, perr.Newf(perr.ErrorCodeValidation, "unsupported query field %s", f.Name)
		}
	}

	if err := Get().Validator.Struct(dst); err != nil {
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.Newf(perr.ErrorCodeValidation, "validation error")
		}
		_, msg := ValidationFieldAndMessage(err)
		return zero, perr.Newf(perr.ErrorCodeValidation, "%s", msg)
	}

	return dst, nil
}
