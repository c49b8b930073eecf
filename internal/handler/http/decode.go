package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

// decodeBody decodes the request body into dst. On failure it returns the
// user-facing message for the 400 response: type mismatches produce the
// per-property message, anything else the generic invalid-JSON one.
func decodeBody(r *http.Request, dst any) (string, bool) {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return "", true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("Property '%s' should be of type %s, received %s.",
			typeErr.Field, jsonTypeName(typeErr.Type), typeErr.Value), false
	}

	return msgInvalidJSON, false
}

// jsonTypeName translates a Go target type into the JSON type name used in
// validation messages.
func jsonTypeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}
