package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var (
	errMissingParameter = errors.New("missing parameter")
	errInvalidMonth     = errors.New("month must be between 1 and 12")
)

func parseIDParam(r *http.Request) (int64, error) {
	value := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// parseOptionalInt returns nil for an absent or empty query value.
func parseOptionalInt(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid int %q", value)
	}
	return &parsed, nil
}

func parseRequiredInt(value, name string) (int, error) {
	parsed, err := parseOptionalInt(value)
	if err != nil {
		return 0, err
	}
	if parsed == nil {
		return 0, fmt.Errorf("%w: %s", errMissingParameter, name)
	}
	return *parsed, nil
}

func validMonth(month *int) bool {
	return month == nil || (*month >= 1 && *month <= 12)
}

// optionalInt tells an omitted field apart from an explicit null.
type optionalInt struct {
	Set   bool
	Value *int
}

func (o *optionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

// writeParamError answers a query parsing failure with missing_parameter or
// invalid_request.
func writeParamError(w http.ResponseWriter, err error) {
	if errors.Is(err, errMissingParameter) {
		writeError(w, http.StatusBadRequest, "missing_parameter", err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
}
